package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in  float64
		out float64
	}{
		{123.456, 123.46},
		{2.675, 2.67},  // binary value sits below the tie
		{1.005, 1.0},   // same
		{0.125, 0.12},  // exact tie, half to even
		{0.375, 0.38},  // exact tie, half to even
		{71, 71},
		{123.5, 123.5},
		{-1.234, -1.23},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, Round2(tc.in), "Round2(%v)", tc.in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$35.00", Format(35))
	assert.Equal(t, "$123.46", Format(123.456))
}
