package renderer

import (
	"strings"
	"testing"
)

func TestRenderHistory(t *testing.T) {
	h := &History{
		Ledger: "company_sentiment.csv",
		Entries: []HistoryEntry{
			{Company: "Apple", Symbol: "AAPL", Date: "2025-08-29", Change: "+1.23%", Sentiment: "0.20"},
			{Company: "Acme Corp", Symbol: "ACME", Date: "2025-08-29", Change: "-0.40%", Sentiment: "-0.05"},
		},
	}

	got := RenderHistory(h)
	if strings.Contains(got, "error") {
		t.Fatalf("RenderHistory returned a template error:\n%s", got)
	}

	wants := []string{
		"# Sentiment History",
		"`company_sentiment.csv`",
		"| Apple | AAPL | 2025-08-29 | +1.23% | 0.20 |",
		"| Acme Corp | ACME | 2025-08-29 | -0.40% | -0.05 |",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("RenderHistory missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderHistoryWithCompanyFilter(t *testing.T) {
	h := &History{
		Ledger:  "company_sentiment.csv",
		Company: "Apple",
		Entries: []HistoryEntry{
			{Company: "Apple", Symbol: "AAPL", Date: "2025-08-29", Change: "+1.23%", Sentiment: "0.20"},
		},
	}
	got := RenderHistory(h)
	if !strings.Contains(got, "# Sentiment History for Apple") {
		t.Errorf("expected filtered title, got:\n%s", got)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	h := &History{Ledger: "company_sentiment.csv"}
	got := RenderHistory(h)
	if !strings.Contains(got, "No records yet.") {
		t.Errorf("expected empty-ledger message, got:\n%s", got)
	}
}
