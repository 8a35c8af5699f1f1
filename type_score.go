package sentibook

import "fmt"

// Score is a sentiment polarity in [-1.0, 1.0].
type Score float64

func (s Score) Equal(t Score) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := s - t
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String renders the score rounded to two decimal places, the form shown to
// the user.
func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s))
}

// Average returns the arithmetic mean of the given scores, and 0 when there
// are none. An empty headline list is a valid run, not a division by zero.
func Average(scores []Score) Score {
	if len(scores) == 0 {
		return 0
	}
	var total Score
	for _, s := range scores {
		total += s
	}
	return total / Score(len(scores))
}
