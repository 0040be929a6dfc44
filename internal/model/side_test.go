package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		input    string
		expected Side
	}{
		{"w", White},
		{"W", White},
		{" white ", White},
		{"b", Black},
		{"BLACK", Black},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			side, err := ParseSide(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, side)
		})
	}
}

func TestParseSideInvalid(t *testing.T) {
	for _, input := range []string{"", "x", "wb", "grey"} {
		_, err := ParseSide(input)
		assert.ErrorIs(t, err, ErrInvalidSide, "input %q", input)
	}
}

func TestSideOpponent(t *testing.T) {
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, White, Black.Opponent())
}
