package sentibook

import "testing"

func TestVaderScorerBounds(t *testing.T) {
	scorer := VaderScorer{}
	titles := []string{
		"Company reports record profits, shares surge",
		"Massive fraud scandal destroys investor confidence",
		"Quarterly report released",
		"",
	}
	for _, title := range titles {
		score := scorer.Score(title)
		if score < -1 || score > 1 {
			t.Errorf("Score(%q) = %v, outside [-1, 1]", title, score)
		}
	}
}

func TestVaderScorerIsDeterministic(t *testing.T) {
	scorer := VaderScorer{}
	title := "Company beats expectations with strong growth"
	first := scorer.Score(title)
	for i := 0; i < 3; i++ {
		if got := scorer.Score(title); got != first {
			t.Fatalf("Score(%q) changed between calls: %v then %v", title, first, got)
		}
	}
}

func TestVaderScorerPolarityDirection(t *testing.T) {
	scorer := VaderScorer{}
	positive := scorer.Score("Wonderful results, great success for the company")
	negative := scorer.Score("Terrible losses, awful year for the company")
	if positive <= 0 {
		t.Errorf("positive headline scored %v, want > 0", positive)
	}
	if negative >= 0 {
		t.Errorf("negative headline scored %v, want < 0", negative)
	}
	if positive <= negative {
		t.Errorf("positive %v should exceed negative %v", positive, negative)
	}
}
