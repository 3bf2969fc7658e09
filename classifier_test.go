package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		kind  Kind
		value float64
	}{
		{"integer", "42", KindInteger, 42},
		{"negative integer", "-7", KindInteger, -7},
		{"signed integer", "+5", KindInteger, 5},
		{"leading zeros", "007", KindInteger, 7},
		{"float", "42.0", KindFloat, 42},
		{"float without integer part", ".5", KindFloat, 0.5},
		{"float with trailing dot", "5.", KindFloat, 5},
		{"exponent", "1e3", KindFloat, 1000},
		{"negative exponent", "-2.5E-1", KindFloat, -0.25},
		{"int64 overflow becomes float", "9223372036854775808", KindFloat, 9223372036854775808},
		{"text", "abc", KindText, 0},
		{"empty line", "", KindText, 0},
		{"leading space", " 42", KindText, 0},
		{"trailing space", "3.14 ", KindText, 0},
		{"embedded space", "4 2", KindText, 0},
		{"trailing garbage", "12abc", KindText, 0},
		{"java float suffix", "1.5f", KindText, 0},
		{"nan", "NaN", KindText, 0},
		{"infinity", "Inf", KindText, 0},
		{"hex float", "0x1p-2", KindText, 0},
		{"underscores", "1_000", KindText, 0},
		{"float overflow", "1e400", KindText, 0},
		{"lone sign", "-", KindText, 0},
		{"lone dot", ".", KindText, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.line, got.Raw)
			if tt.kind.Numeric() {
				assert.InDelta(t, tt.value, got.Value, 1e-9)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for _, line := range []string{"1", "2.5", "x", "", "-0", "1e-9"} {
		assert.Equal(t, Classify(line), Classify(line), line)
	}
}

func TestParseInteger_RejectsFloatSyntax(t *testing.T) {
	_, ok := ParseInteger("2.5")
	assert.False(t, ok)

	v, ok := ParseFloat("2.5")
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)
}
