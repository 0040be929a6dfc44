package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacedAtRejectsNegativeHeight(t *testing.T) {
	_, err := PlacedAt(-1)
	assert.ErrorIs(t, err, ErrInvalidPiece)

	_, err = NewPlacedPiece(White, 0, 0, -3)
	assert.ErrorIs(t, err, ErrInvalidPiece)
}

func TestPlacedAtZero(t *testing.T) {
	h, err := PlacedAt(0)
	require.NoError(t, err)

	z, ok := h.Z()
	assert.True(t, ok)
	assert.Equal(t, 0, z)
}

func TestUnplacedHasNoHeight(t *testing.T) {
	p := NewPiece(Black, 1, 2)

	_, ok := p.Z()
	assert.False(t, ok)
	assert.False(t, p.IsPlaced())
}

func TestPieceEqualityIgnoresID(t *testing.T) {
	a, err := NewPlacedPiece(White, 1, 2, 3)
	require.NoError(t, err)
	b, err := NewPlacedPiece(White, 1, 2, 3)
	require.NoError(t, err)
	a.ID = 7
	b.ID = 42

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestPieceEqualityComparesPositionAndSide(t *testing.T) {
	base, err := NewPlacedPiece(White, 1, 2, 3)
	require.NoError(t, err)

	tests := []struct {
		name  string
		other func() Piece
	}{
		{"different x", func() Piece { p, _ := NewPlacedPiece(White, 0, 2, 3); return p }},
		{"different y", func() Piece { p, _ := NewPlacedPiece(White, 1, 0, 3); return p }},
		{"different z", func() Piece { p, _ := NewPlacedPiece(White, 1, 2, 0); return p }},
		{"different side", func() Piece { p, _ := NewPlacedPiece(Black, 1, 2, 3); return p }},
		{"unplaced", func() Piece { return NewPiece(White, 1, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := tt.other()
			other.ID = base.ID
			assert.False(t, base.Equal(other))
		})
	}
}

func TestPieceJSON(t *testing.T) {
	placed, err := NewPlacedPiece(White, -1, 2, 4)
	require.NoError(t, err)
	placed.ID = 9

	data, err := json.Marshal(placed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"side":"white","x":-1,"y":2,"z":4}`, string(data))

	data, err = json.Marshal(NewPiece(Black, 0, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":0,"side":"black","x":0,"y":0,"z":null}`, string(data))
}

func TestPieceJSONRejectsNegativeHeight(t *testing.T) {
	var p Piece
	err := json.Unmarshal([]byte(`{"side":"white","x":0,"y":0,"z":-1}`), &p)
	assert.ErrorIs(t, err, ErrInvalidPiece)
}

func TestPieceJSONDecodesNullHeight(t *testing.T) {
	var p Piece
	require.NoError(t, json.Unmarshal([]byte(`{"side":"b","x":3,"y":-2,"z":null}`), &p))

	assert.Equal(t, Black, p.Side)
	assert.False(t, p.IsPlaced())
}
