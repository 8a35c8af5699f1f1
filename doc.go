// Package sentibook tracks daily news sentiment for publicly traded
// companies. For a given company it resolves the ticker symbol, fetches the
// day's stock change, scores the polarity of recent headlines, and appends a
// single summary record to a local, append-only CSV ledger.
//
// The core pieces are:
//   - Symbol resolution: free-text company name to ticker via MarketStack.
//   - Quote change: the textual market-change-percent field extracted from
//     the Yahoo Finance quote page. The value is kept as rendered, never
//     parsed to a number.
//   - Headlines: up to 20 relevance-ranked article titles from NewsAPI,
//     queried with the company name and symbol as co-occurring terms.
//   - Scoring: a pure, offline polarity scorer in [-1, 1]; the run's score is
//     the arithmetic mean over all headlines, zero when there are none.
//   - Ledger: one CSV row per company per day. A full scan before each append
//     suppresses duplicates; a second run the same day is a successful no-op.
//
// The ledger assumes a single process. Two concurrent runs for the same
// company and day can both pass the duplicate check and both append; that
// race is an accepted limitation of the single-user design.
//
// This package holds the domain logic for the `sbk` command-line tool.
package sentibook
