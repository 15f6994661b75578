package pricing

import "math"

// bucket is one rung of a threshold ladder.
type bucket struct {
	Threshold float64
	Value     float64
}

// pick scans a ladder high to low and returns the value of the first rung
// the input reaches, or def when no rung matches. Boundaries are inclusive,
// so an input exactly on a threshold takes the higher rung.
func pick(ladder []bucket, input, def float64) float64 {
	for _, b := range ladder {
		if input >= b.Threshold {
			return b.Value
		}
	}
	return def
}

// pickLow is pick for ladders keyed on scarcity: rungs are checked scarcest
// first and the first rung the input stays at or under wins.
func pickLow(ladder []bucket, input, def float64) float64 {
	for _, b := range ladder {
		if input <= b.Threshold {
			return b.Value
		}
	}
	return def
}

// round1 rounds to one decimal place for percentage figures on reports.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
