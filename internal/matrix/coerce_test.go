package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightRounding(t *testing.T) {
	assert.Equal(t, 0.12, Weight("0.12345", L2WeightPlaces))
	assert.Equal(t, 0.1235, Weight("0.123456", L1WeightPlaces))
	assert.Equal(t, 0.3, Weight("0.3", L1WeightPlaces))
	assert.Equal(t, 2.0, Weight("2", L2WeightPlaces))
	assert.Equal(t, 0.12, Weight("0.125", L2WeightPlaces), "ties round to even")
}

func TestWeightRoundsBinaryValue(t *testing.T) {
	tests := []struct {
		cell     string
		places   int32
		expected float64
	}{
		{"2.675", L2WeightPlaces, 2.67}, // stored as 2.67499999...
		{"1.015", L2WeightPlaces, 1.01}, // stored as 1.01499999...
		{"0.135", L2WeightPlaces, 0.14}, // stored as 0.13500000...01
		{"0.375", L2WeightPlaces, 0.38}, // exact tie, rounds to even
		{"-2.675", L2WeightPlaces, -2.67},
		{"0.00005", L1WeightPlaces, 0.0001},
		{"1234567.891", L2WeightPlaces, 1234567.89},
		{"0", L1WeightPlaces, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Weight(tt.cell, tt.places), "cell %q", tt.cell)
	}
}

func TestWeightUnreadableIsZero(t *testing.T) {
	for _, cell := range []string{"", "  ", "abc", "#N/A", "1,5"} {
		assert.Zero(t, Weight(cell, L2WeightPlaces), "cell %q", cell)
	}
}

func TestScore(t *testing.T) {
	na := []string{"#N/A"}

	tests := []struct {
		cell     string
		expected float64
	}{
		{"4.5", 4.5},
		{" 3 ", 3},
		{"3.14159", 3.14},
		{"1e-1", 0.1},
		{"", 0},
		{"#N/A", 0},
		{"n/a", 0},
		{"—", 0},
		{"good", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Score(tt.cell, na), "cell %q", tt.cell)
	}
}

func TestParseNumber(t *testing.T) {
	d, ok := ParseNumber(" 0.75 ")
	assert.True(t, ok)
	assert.Equal(t, "0.75", d.String())

	_, ok = ParseNumber("")
	assert.False(t, ok)

	_, ok = ParseNumber("x1")
	assert.False(t, ok)
}
