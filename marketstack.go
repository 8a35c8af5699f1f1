package sentibook

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains the symbol resolver backed by the MarketStack ticker
// search API.

const marketstackURL = "http://api.marketstack.com/v1"

// MarketstackResolver resolves a free-text company name to a ticker symbol.
//
// The response payload looks like:
//
//	{
//	  "data": [
//	    { "name": "Apple Inc", "symbol": "AAPL", "stock_exchange": {...} },
//	    ...
//	  ]
//	}
type MarketstackResolver struct {
	APIKey  string
	BaseURL string       // defaults to the public MarketStack endpoint
	Client  *http.Client // defaults to the daily-cached client
}

// Resolve returns the symbol of the first matching ticker, or "" when the
// service has no match for that name. Transport failures are returned as
// errors; "no match" is not one of them.
func (m *MarketstackResolver) Resolve(company string) (string, error) {
	base := m.BaseURL
	if base == "" {
		base = marketstackURL
	}
	client := m.Client
	if client == nil {
		client = daily()
	}

	addr := fmt.Sprintf("%s/tickers?search=%s&access_key=%s", base, url.QueryEscape(company), m.APIKey)
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return "", fmt.Errorf("cannot search tickers for %q: %w", company, err)
	}

	jval, err := jsonpath.Get("$.data[0].symbol", jobj)
	if err != nil {
		// Empty or malformed result list: no match, by contract not an error.
		return "", nil
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	symbol, ok := jval.(string)
	if !ok {
		return "", nil
	}
	return symbol, nil
}
