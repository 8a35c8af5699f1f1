package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sentibook/sentibook"
)

// quoteCmd implements the "quote" command.
type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch the day's stock change for a ticker symbol" }
func (*quoteCmd) Usage() string {
	return `sbk quote <symbol>

  Fetches the quote page for the symbol and prints the market change percent
  as rendered there.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ticker symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	quotes := &sentibook.YahooQuotes{}
	change, err := quotes.Change(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Stock change for %s: %s\n", symbol, change)
	return subcommands.ExitSuccess
}
