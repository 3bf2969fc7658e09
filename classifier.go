package main

import (
	"math"
	"regexp"
	"strconv"
)

// floatPattern is the whole-line grammar accepted for Float lines.
// strconv.ParseFloat alone also accepts hex floats, NaN, Inf and underscores, which we treat as text.
var floatPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// ParseInteger parses line as a base-10 int64 literal with an optional sign.
// The whole line must match; no whitespace is trimmed.
func ParseInteger(line string) (float64, bool) {
	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

// ParseFloat parses line as a finite decimal floating-point literal.
func ParseFloat(line string) (float64, bool) {
	if !floatPattern.MatchString(line) {
		return 0, false
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// parsers is tried in order; the first match wins and Text is the fallback.
var parsers = []struct {
	kind  Kind
	parse func(string) (float64, bool)
}{
	{KindInteger, ParseInteger},
	{KindFloat, ParseFloat},
}

// Classify determines the kind of a single line. It never fails.
func Classify(line string) ClassifiedLine {
	for _, p := range parsers {
		if v, ok := p.parse(line); ok {
			return ClassifiedLine{Kind: p.kind, Raw: line, Value: v}
		}
	}
	return ClassifiedLine{Kind: KindText, Raw: line}
}
