package sentibook

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sentibook/sentibook/date"
)

// Resolver maps a free-text company name to a ticker symbol. It returns ""
// when the lookup service has no match; transport failures are errors.
type Resolver interface {
	Resolve(company string) (string, error)
}

// QuoteFetcher returns the textual percentage change for a symbol.
type QuoteFetcher interface {
	Change(symbol string) (string, error)
}

// ArticleSource returns up to 20 relevance-ranked headline titles for a
// company. An empty list is a valid answer.
type ArticleSource interface {
	Headlines(company, symbol string) ([]string, error)
}

// Scorer maps a headline to a polarity score in [-1.0, 1.0].
type Scorer interface {
	Score(title string) Score
}

// Store appends a record to the ledger, reporting added=false when a record
// for the same company and date already exists.
type Store interface {
	Append(Record) (added bool, err error)
}

// Config holds the credentials for the two external services.
type Config struct {
	MarketstackAPIKey string
	NewsAPIKey        string
}

// Tracker sequences one sentiment run: resolve the symbol, fetch the quote
// change, collect headlines, average their polarity and persist a single
// daily record. Collaborators are plain fields so tests can substitute them.
type Tracker struct {
	Resolver Resolver
	Quotes   QuoteFetcher
	News     ArticleSource
	Scorer   Scorer
	Ledger   Store

	// LedgerName is how the ledger is referred to in user-facing messages.
	LedgerName string
}

// NewTracker wires a Tracker to the real collaborators: MarketStack, the
// Yahoo Finance quote page, NewsAPI, the VADER scorer and the CSV ledger
// file.
func NewTracker(cfg *Config, ledgerFile string) *Tracker {
	return &Tracker{
		Resolver:   &MarketstackResolver{APIKey: cfg.MarketstackAPIKey},
		Quotes:     &YahooQuotes{},
		News:       &NewsAPISource{APIKey: cfg.NewsAPIKey},
		Scorer:     VaderScorer{},
		Ledger:     LedgerFile{Path: ledgerFile},
		LedgerName: ledgerFile,
	}
}

// Track runs the pipeline once for the given company, writing progress to w.
// Each stage strictly follows the previous one; the first failure aborts the
// run. A duplicate record is not a failure: the run completes with an
// "already exists" line and no new row.
func (t *Tracker) Track(w io.Writer, company string) error {
	symbol, err := t.Resolver.Resolve(company)
	if err != nil {
		return err
	}
	if symbol == "" {
		return &ResolutionError{Company: company}
	}

	change, err := t.Quotes.Change(symbol)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Found stock symbol for %s: %s\n", company, symbol)
	fmt.Fprintf(w, "Stock change for %s: %s\n\n", company, change)

	titles, err := t.News.Headlines(company, symbol)
	if err != nil {
		return err
	}
	scores := make([]Score, 0, len(titles))
	for _, title := range titles {
		scores = append(scores, t.Scorer.Score(title))
	}
	average := Average(scores)
	fmt.Fprintf(w, "\nOverall Sentiment Score for %s: %s\n", company, average)

	rec := Record{
		CompanyName: company,
		Symbol:      symbol,
		Date:        date.Today(),
		StockChange: change,
		Sentiment:   average,
	}
	added, err := t.Ledger.Append(rec)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(w, "\nRecord for %s added to %s.\n", company, t.LedgerName)
	} else {
		fmt.Fprintf(w, "\nRecord for %s on %s already exists in %s.\n", company, rec.Date, t.LedgerName)
	}
	return nil
}

// Run drives the interactive loop: prompt for a company name, attempt a run,
// and on any failure print the error and re-prompt. The loop has no
// iteration cap and no backoff; it relies on the user correcting the input.
// It ends on the first successful run, or when the input stream ends.
func (t *Tracker) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "Enter the name of a public US company: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("cannot read input: %w", err)
			}
			return io.ErrUnexpectedEOF
		}
		company := strings.TrimSpace(scanner.Text())

		if err := t.Track(w, company); err != nil {
			fmt.Fprintf(w, "Error: %v. Please try again.\n", err)
			continue
		}
		return nil
	}
}
