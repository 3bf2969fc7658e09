package main

import "unicode/utf8"

// Accumulator keeps streaming statistics for a single kind.
// The first update initialises the extrema so no sentinel ever reaches a report.
type Accumulator struct {
	stats Statistics
}

// NewAccumulator returns an empty accumulator for kind.
func NewAccumulator(kind Kind) *Accumulator {
	return &Accumulator{stats: Statistics{Kind: kind}}
}

// AddNumber records a numeric value.
func (a *Accumulator) AddNumber(v float64) {
	s := &a.stats
	if s.Count == 0 {
		s.Min, s.Max = v, v
	} else {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	s.Sum += v
	s.Count++
}

// AddText records a text value by its length in runes.
func (a *Accumulator) AddText(text string) {
	s := &a.stats
	n := utf8.RuneCountInString(text)
	if s.Count == 0 {
		s.MinLength, s.MaxLength = n, n
	} else {
		s.MinLength = min(s.MinLength, n)
		s.MaxLength = max(s.MaxLength, n)
	}
	s.Count++
}

// Summary returns a snapshot of the accumulated statistics.
func (a *Accumulator) Summary() Statistics {
	return a.stats
}
