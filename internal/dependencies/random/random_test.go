package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for range 20 {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.String(12, "ABC"), b.String(12, "ABC"))
}

func TestIntnBounds(t *testing.T) {
	for _, src := range []*Source{New(), NewSeeded(7)} {
		assert.Equal(t, 0, src.Intn(0))
		assert.Equal(t, 0, src.Intn(-3))
		for range 100 {
			n := src.Intn(5)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 5)
		}
	}
}

func TestStringUsesAlphabet(t *testing.T) {
	s := New().String(32, "XY")
	assert.Len(t, s, 32)
	assert.Empty(t, strings.Trim(s, "XY"))

	assert.Empty(t, New().String(0, "XY"))
	assert.Empty(t, New().String(4, ""))
}
