package main

// Kind is the classification category of an input line.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindText
)

// Kinds lists every kind in classification priority order. Reports use the same order.
var Kinds = []Kind{KindInteger, KindFloat, KindText}

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindText:
		return "String"
	default:
		return "Unknown"
	}
}

// Suffix is the fixed output file name suffix for the kind.
// Rehydration depends on these names, so they must not change.
func (k Kind) Suffix() string {
	switch k {
	case KindInteger:
		return "int.txt"
	case KindFloat:
		return "float.txt"
	default:
		return "String.txt"
	}
}

// Numeric reports whether lines of this kind carry a numeric value.
func (k Kind) Numeric() bool {
	return k == KindInteger || k == KindFloat
}

// ClassifiedLine is one input line after classification.
type ClassifiedLine struct {
	Kind  Kind
	Raw   string  // Line exactly as read, without the line terminator
	Value float64 // Parsed value; only meaningful when Kind.Numeric()
}

// Statistics is a read-only snapshot of one kind's accumulator.
// Min/Max and MinLength/MaxLength are unset while Count is zero.
type Statistics struct {
	Kind      Kind
	Count     int64
	Min       float64
	Max       float64
	Sum       float64
	MinLength int
	MaxLength int
}

// Mean returns Sum/Count, or false when there is no data.
func (s Statistics) Mean() (float64, bool) {
	if s.Count == 0 {
		return 0, false
	}
	return s.Sum / float64(s.Count), true
}

// RunMode selects how the statistics store is initialised.
type RunMode string

const (
	ModeReset  RunMode = "reset"
	ModeAppend RunMode = "append"
)

// Report holds the final result of one run.
type Report struct {
	Mode              RunMode
	Prefix            string
	OutputDir         string
	Inputs            []string
	Lines             int
	Stats             []Statistics
	RehydrateWarnings []string
}
