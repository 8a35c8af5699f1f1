package sentibook

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// This file contains the article source backed by the NewsAPI /everything
// endpoint.

const newsAPIURL = "https://newsapi.org/v2"

// maxHeadlines caps how many articles a run considers.
const maxHeadlines = 20

// NewsAPISource fetches recent headlines about a company, ordered by the
// backend's relevance ranking.
type NewsAPISource struct {
	APIKey  string
	BaseURL string       // defaults to newsapi.org
	Client  *http.Client // defaults to the daily-cached client
}

// Headlines returns up to 20 article titles matching both the company name
// and the symbol in English-language content. No matching article is an
// empty list, not an error.
func (n *NewsAPISource) Headlines(company, symbol string) ([]string, error) {
	base := n.BaseURL
	if base == "" {
		base = newsAPIURL
	}
	client := n.Client
	if client == nil {
		client = daily()
	}

	// Both terms must co-occur, so the symbol refines the name search.
	query := fmt.Sprintf("%q AND %q", company, symbol)

	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(maxHeadlines))
	params.Set("apiKey", n.APIKey)
	addr := fmt.Sprintf("%s/everything?%s", base, params.Encode())

	// that's the payload
	var content struct {
		Status   string `json:"status"`
		Code     string `json:"code"`
		Message  string `json:"message"`
		Articles []struct {
			Title string `json:"title"`
		} `json:"articles"`
	}
	if err := jwget(client, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch articles for %q: %w", company, err)
	}
	if content.Status != "ok" {
		return nil, fmt.Errorf("newsapi error %s: %s", content.Code, content.Message)
	}

	titles := make([]string, 0, len(content.Articles))
	for _, a := range content.Articles {
		titles = append(titles, a.Title)
		if len(titles) == maxHeadlines {
			break
		}
	}
	return titles, nil
}
