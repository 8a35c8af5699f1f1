package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/sentibook/sentibook"
)

// resolveCmd implements the "resolve" command.
type resolveCmd struct{}

func (*resolveCmd) Name() string     { return "resolve" }
func (*resolveCmd) Synopsis() string { return "resolve a company name to its ticker symbol" }
func (*resolveCmd) Usage() string {
	return `sbk resolve <company name>

  Searches the ticker-lookup service for the company and prints the first
  matching symbol.

  Requires the ` + marketstackKeyEnv + ` environment variable to be set or
  the -marketstack-api-key flag.
`
}

func (c *resolveCmd) SetFlags(f *flag.FlagSet) {}

func (c *resolveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a company name is required.")
		return subcommands.ExitUsageError
	}
	company := strings.Join(f.Args(), " ")

	key := marketstackKey()
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: MarketStack API key is not set. Use -marketstack-api-key flag or %s environment variable\n", marketstackKeyEnv)
		return subcommands.ExitFailure
	}

	resolver := &sentibook.MarketstackResolver{APIKey: key}
	symbol, err := resolver.Resolve(company)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving %q: %v\n", company, err)
		return subcommands.ExitFailure
	}
	if symbol == "" {
		fmt.Printf("No symbol found for %q.\n", company)
		return subcommands.ExitSuccess
	}

	fmt.Printf("Found stock symbol for %s: %s\n", company, symbol)
	return subcommands.ExitSuccess
}
