package renderer

// History is the report data for rendering a ledger's content.
type History struct {
	Ledger  string // ledger file name, shown in the title
	Company string // optional filter, shown in the title when set
	Entries []HistoryEntry
}

// HistoryEntry is one ledger record, pre-formatted for display.
type HistoryEntry struct {
	Company   string
	Symbol    string
	Date      string
	Change    string
	Sentiment string
}
