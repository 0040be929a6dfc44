package engine

import "github.com/mcoot/stackline/internal/model"

// Column is the stack of pieces in one (x, y) cell, bottom to top.
// The piece at index i always has z == i.
type Column struct {
	pieces []model.Piece
}

// Len returns the number of pieces in the column
func (c *Column) Len() int {
	return len(c.pieces)
}

// At returns the piece at height z, if any
func (c *Column) At(z int) (model.Piece, bool) {
	if z < 0 || z >= len(c.pieces) {
		return model.Piece{}, false
	}
	return c.pieces[z], true
}

// Top returns the highest piece, if any
func (c *Column) Top() (model.Piece, bool) {
	if len(c.pieces) == 0 {
		return model.Piece{}, false
	}
	return c.pieces[len(c.pieces)-1], true
}

// Pieces returns a copy of the stack, bottom to top
func (c *Column) Pieces() []model.Piece {
	result := make([]model.Piece, len(c.pieces))
	copy(result, c.pieces)
	return result
}

func (c *Column) push(p model.Piece) {
	c.pieces = append(c.pieces, p)
}
