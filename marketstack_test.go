package sentibook

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMarketstackResolve(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		status     int
		wantSymbol string
		wantErr    bool
	}{
		{
			name:       "first match wins",
			body:       `{"data":[{"name":"Apple Inc","symbol":"AAPL"},{"name":"Apple Hospitality","symbol":"APLE"}]}`,
			status:     http.StatusOK,
			wantSymbol: "AAPL",
		},
		{
			name:       "no match is not an error",
			body:       `{"data":[]}`,
			status:     http.StatusOK,
			wantSymbol: "",
		},
		{
			name:       "missing data field is no match",
			body:       `{"error":{"code":"function_access_restricted"}}`,
			status:     http.StatusOK,
			wantSymbol: "",
		},
		{
			name:       "symbol of unexpected type is no match",
			body:       `{"data":[{"symbol":42}]}`,
			status:     http.StatusOK,
			wantSymbol: "",
		},
		{
			name:    "http failure propagates",
			body:    `denied`,
			status:  http.StatusUnauthorized,
			wantErr: true,
		},
		{
			name:    "malformed json propagates",
			body:    `{"data":`,
			status:  http.StatusOK,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("search"); got != "Apple" {
					t.Errorf("search param = %q, want %q", got, "Apple")
				}
				if got := r.URL.Query().Get("access_key"); got != "k3y" {
					t.Errorf("access_key param = %q, want %q", got, "k3y")
				}
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			resolver := &MarketstackResolver{APIKey: "k3y", BaseURL: server.URL, Client: server.Client()}
			symbol, err := resolver.Resolve("Apple")
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Resolve expected an error, got %q", symbol)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if symbol != tc.wantSymbol {
				t.Errorf("Resolve = %q, want %q", symbol, tc.wantSymbol)
			}
		})
	}
}
