// Package cmd implements the CLI application to track company news sentiment.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sentibook/sentibook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(subcommands.HelpCommand(), "")
	c.Register(subcommands.FlagsCommand(), "")
	c.Register(subcommands.CommandsCommand(), "")

	c.Register(&trackCmd{}, "pipeline")

	c.Register(&resolveCmd{}, "lookups")
	c.Register(&quoteCmd{}, "lookups")
	c.Register(&newsCmd{}, "lookups")

	c.Register(&historyCmd{}, "ledger")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "company_sentiment.csv", "Path to the ledger file containing daily sentiment records (CSV format)")

const (
	marketstackKeyEnv = "MARKETSTACK_API_KEY"
	newsKeyEnv        = "NEWS_API_KEY"
)

var marketstackKeyFlag = flag.String("marketstack-api-key", "", "MarketStack API key used to resolve ticker symbols.\n If missing it will be read from the environment variable \""+marketstackKeyEnv+"\". You can get one at https://marketstack.com/")
var newsKeyFlag = flag.String("news-api-key", "", "NewsAPI key used to search headlines.\n If missing it will be read from the environment variable \""+newsKeyEnv+"\". You can get one at https://newsapi.org/")

// marketstackKey retrieves the MarketStack API key from the command-line flag
// or the environment variable. The flag takes precedence.
func marketstackKey() string {
	if *marketstackKeyFlag == "" {
		*marketstackKeyFlag = os.Getenv(marketstackKeyEnv)
	}
	return *marketstackKeyFlag
}

// newsKey retrieves the NewsAPI key from the command-line flag or the
// environment variable. The flag takes precedence.
func newsKey() string {
	if *newsKeyFlag == "" {
		*newsKeyFlag = os.Getenv(newsKeyEnv)
	}
	return *newsKeyFlag
}

// config assembles the two external service credentials.
func config() *sentibook.Config {
	return &sentibook.Config{
		MarketstackAPIKey: marketstackKey(),
		NewsAPIKey:        newsKey(),
	}
}

// newTracker wires a tracker to the real collaborators and the app ledger file.
func newTracker() *sentibook.Tracker {
	return sentibook.NewTracker(config(), *ledgerFile)
}

// LoadLedger decodes the app ledger file; a missing file is an empty ledger.
func LoadLedger() (*sentibook.Ledger, error) {
	return sentibook.LedgerFile{Path: *ledgerFile}.Load()
}
