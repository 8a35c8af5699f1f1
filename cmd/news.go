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

// newsCmd implements the "news" command.
type newsCmd struct {
	symbol string
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "list recent headlines for a company with polarity scores" }
func (*newsCmd) Usage() string {
	return `sbk news [-s <symbol>] <company name>

  Lists up to 20 relevance-ranked headlines mentioning both the company name
  and its ticker symbol, with each headline's polarity score and the average.
  When -s is omitted the symbol is resolved first.

  Requires the ` + newsKeyEnv + ` environment variable (and ` + marketstackKeyEnv + `
  when resolving) or the matching flags.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol to search with. Resolved from the company name when empty.")
}

func (c *newsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a company name is required.")
		return subcommands.ExitUsageError
	}
	company := strings.Join(f.Args(), " ")

	key := newsKey()
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: NewsAPI key is not set. Use -news-api-key flag or %s environment variable\n", newsKeyEnv)
		return subcommands.ExitFailure
	}

	symbol := c.symbol
	if symbol == "" {
		mkey := marketstackKey()
		if mkey == "" {
			fmt.Fprintf(os.Stderr, "Error: MarketStack API key is not set. Use -marketstack-api-key flag or %s environment variable\n", marketstackKeyEnv)
			return subcommands.ExitFailure
		}
		resolver := &sentibook.MarketstackResolver{APIKey: mkey}
		var err error
		symbol, err = resolver.Resolve(company)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving %q: %v\n", company, err)
			return subcommands.ExitFailure
		}
		if symbol == "" {
			fmt.Fprintf(os.Stderr, "Error: no symbol found for %q. Use -s to pass one explicitly.\n", company)
			return subcommands.ExitFailure
		}
	}

	source := &sentibook.NewsAPISource{APIKey: key}
	titles, err := source.Headlines(company, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching headlines: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(titles) == 0 {
		fmt.Printf("No headlines found for %s (%s).\n", company, symbol)
		return subcommands.ExitSuccess
	}

	scorer := sentibook.VaderScorer{}
	scores := make([]sentibook.Score, 0, len(titles))
	for _, title := range titles {
		score := scorer.Score(title)
		scores = append(scores, score)
		fmt.Printf("%6s  %s\n", score, title)
	}
	fmt.Printf("\nOverall Sentiment Score for %s: %s\n", company, sentibook.Average(scores))
	return subcommands.ExitSuccess
}
