package sentibook

import (
	"fmt"
	"testing"
)

func TestAverage(t *testing.T) {
	testCases := []struct {
		name   string
		scores []Score
		want   Score
	}{
		{name: "empty list is zero", scores: nil, want: 0},
		{name: "single score", scores: []Score{0.4}, want: 0.4},
		{name: "mixed polarities", scores: []Score{0.5, -0.1, 0.2}, want: 0.2},
		{name: "all negative", scores: []Score{-1, -0.5}, want: -0.75},
		{name: "cancels out", scores: []Score{0.3, -0.3}, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Average(tc.scores)
			if !got.Equal(tc.want) {
				t.Errorf("Average(%v) = %v, want %v", tc.scores, got, tc.want)
			}
		})
	}
}

func TestScoreString(t *testing.T) {
	testCases := []struct {
		score Score
		want  string
	}{
		{score: 0.2, want: "0.20"},
		{score: 0.20000000000000004, want: "0.20"},
		{score: -0.05, want: "-0.05"},
		{score: 0, want: "0.00"},
		{score: 1, want: "1.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.score.String(); got != tc.want {
				t.Errorf("Score(%v).String() = %q, want %q", float64(tc.score), got, tc.want)
			}
			// Stringer is what user-facing formatting relies on.
			if got := fmt.Sprintf("%s", tc.score); got != tc.want {
				t.Errorf("Sprintf(%%s, %v) = %q, want %q", float64(tc.score), got, tc.want)
			}
		})
	}
}
