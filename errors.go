package sentibook

import "fmt"

// ResolutionError reports that no ticker symbol could be found for a company
// name. It is recoverable: the interactive loop prints it and re-prompts.
type ResolutionError struct {
	Company string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("Could not retrieve stock symbol for %s. Please enter a valid US public company", e.Company)
}

// NoDataError reports that the expected market-change field was absent from
// the fetched quote page. Recoverable, same as ResolutionError.
type NoDataError struct {
	Symbol string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("Could not find stock change data for symbol %s", e.Symbol)
}
