package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// trackCmd implements the "track" command, the interactive pipeline loop.
type trackCmd struct{}

func (*trackCmd) Name() string { return "track" }
func (*trackCmd) Synopsis() string {
	return "record today's news sentiment and stock change for a company"
}
func (*trackCmd) Usage() string {
	return `sbk track [<company name>]

  Resolves the company's ticker symbol, fetches the day's stock change,
  scores the polarity of up to 20 recent headlines, and appends one summary
  row to the ledger. Without an argument it prompts for a company name and
  re-prompts after any failure until a run succeeds.

  Requires the ` + marketstackKeyEnv + ` and ` + newsKeyEnv + ` environment
  variables to be set, or the matching flags.
`
}

func (c *trackCmd) SetFlags(f *flag.FlagSet) {}

func (c *trackCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if marketstackKey() == "" {
		fmt.Fprintf(os.Stderr, "Error: MarketStack API key is not set. Use -marketstack-api-key flag or %s environment variable\n", marketstackKeyEnv)
		return subcommands.ExitFailure
	}
	if newsKey() == "" {
		fmt.Fprintf(os.Stderr, "Error: NewsAPI key is not set. Use -news-api-key flag or %s environment variable\n", newsKeyEnv)
		return subcommands.ExitFailure
	}

	tracker := newTracker()

	if f.NArg() > 0 {
		// One-shot mode: no prompt, no retry.
		company := strings.Join(f.Args(), " ")
		if err := tracker.Track(os.Stdout, company); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := tracker.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
