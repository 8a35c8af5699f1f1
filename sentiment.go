package sentibook

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// VaderScorer scores headline polarity with the VADER lexicon. It is a pure
// function of the title: offline, deterministic, no side effects. Only the
// polarity dimension is used.
type VaderScorer struct{}

// Score returns the compound polarity of the title, in [-1.0, 1.0].
func (VaderScorer) Score(title string) Score {
	parsed := sentitext.Parse(title, lexicon.DefaultLexicon)
	return Score(sentitext.PolarityScore(parsed).Compound)
}
