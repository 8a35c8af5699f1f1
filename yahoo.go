package sentibook

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// This file contains the quote fetcher backed by the Yahoo Finance quote
// page. The page is a best-effort source: the change value is looked up by a
// named marker in the document, nothing else is validated.

const yahooFinanceURL = "https://finance.yahoo.com"

// changeSelector locates the market-change-percent field on the quote page.
const changeSelector = `fin-streamer[data-field="regularMarketChangePercent"]`

// YahooQuotes fetches the textual percentage change for a ticker symbol.
type YahooQuotes struct {
	BaseURL string       // defaults to finance.yahoo.com
	Client  *http.Client // defaults to the daily-cached client
}

// Change returns the change-percent text as rendered on the quote page, e.g.
// "+1.23%". It makes a single fetch attempt and returns a NoDataError when
// the page has no change field for that symbol.
func (y *YahooQuotes) Change(symbol string) (string, error) {
	base := y.BaseURL
	if base == "" {
		base = yahooFinanceURL
	}
	client := y.Client
	if client == nil {
		client = daily()
	}

	addr := fmt.Sprintf("%s/quote/%s", base, url.PathEscape(symbol))
	content, err := wget(client, addr)
	if err != nil {
		return "", fmt.Errorf("cannot fetch quote page for %s: %w", symbol, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("cannot parse quote page for %s: %w", symbol, err)
	}

	sel := doc.Find(changeSelector).First()
	if sel.Length() == 0 {
		return "", &NoDataError{Symbol: symbol}
	}
	change := strings.TrimSpace(sel.Text())
	if change == "" {
		return "", &NoDataError{Symbol: symbol}
	}
	return change, nil
}
