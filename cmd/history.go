package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sentibook/sentibook/renderer"
)

// historyCmd implements the "history" command.
type historyCmd struct {
	company string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the ledger as a table" }
func (*historyCmd) Usage() string {
	return `sbk history [-c <company>]

  Renders the ledger's records as a table, newest last, optionally filtered
  to a single company.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.company, "c", "", "Only show records for this company name.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := &renderer.History{Ledger: *ledgerFile, Company: c.company}
	for _, rec := range ledger.Records() {
		if c.company != "" && rec.CompanyName != c.company {
			continue
		}
		report.Entries = append(report.Entries, renderer.HistoryEntry{
			Company:   rec.CompanyName,
			Symbol:    rec.Symbol,
			Date:      rec.Date.String(),
			Change:    rec.StockChange,
			Sentiment: rec.Sentiment.String(),
		})
	}

	printMarkdown(renderer.RenderHistory(report))
	return subcommands.ExitSuccess
}
