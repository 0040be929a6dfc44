package model

import (
	"encoding/json"
	"fmt"
)

// PieceID is an opaque identity tag issued by the board that placed the piece.
// It never takes part in equality.
type PieceID int64

// Height is either unplaced or placed at a non-negative z
type Height struct {
	z      int
	placed bool
}

// Unplaced returns the height of a piece that has not been dropped yet
func Unplaced() Height {
	return Height{}
}

// PlacedAt returns the height of a piece resting at z
func PlacedAt(z int) (Height, error) {
	if z < 0 {
		return Height{}, fmt.Errorf("%w: z %d is below 0", ErrInvalidPiece, z)
	}
	return Height{z: z, placed: true}, nil
}

// Z returns the height and whether the piece has been placed
func (h Height) Z() (int, bool) {
	return h.z, h.placed
}

// IsPlaced reports whether the height is set
func (h Height) IsPlaced() bool {
	return h.placed
}

func (h Height) String() string {
	if !h.placed {
		return "unplaced"
	}
	return fmt.Sprintf("%d", h.z)
}

// MarshalJSON encodes an unplaced height as null
func (h Height) MarshalJSON() ([]byte, error) {
	if !h.placed {
		return []byte("null"), nil
	}
	return json.Marshal(h.z)
}

// UnmarshalJSON decodes null or a non-negative integer
func (h *Height) UnmarshalJSON(data []byte) error {
	var z *int
	if err := json.Unmarshal(data, &z); err != nil {
		return err
	}
	if z == nil {
		*h = Unplaced()
		return nil
	}
	placed, err := PlacedAt(*z)
	if err != nil {
		return err
	}
	*h = placed
	return nil
}

// Piece is a single stone, identified on the board by its position and side
type Piece struct {
	ID     PieceID `json:"id"`
	Side   Side    `json:"side"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Height Height  `json:"z"`
}

// NewPiece creates an unplaced piece
func NewPiece(side Side, x, y int) Piece {
	return Piece{Side: side, X: x, Y: y, Height: Unplaced()}
}

// NewPlacedPiece creates a standalone piece at an explicit height
func NewPlacedPiece(side Side, x, y, z int) (Piece, error) {
	h, err := PlacedAt(z)
	if err != nil {
		return Piece{}, err
	}
	return Piece{Side: side, X: x, Y: y, Height: h}, nil
}

// Z returns the piece height and whether it has been placed
func (p Piece) Z() (int, bool) {
	return p.Height.Z()
}

// IsPlaced reports whether the piece sits on a board
func (p Piece) IsPlaced() bool {
	return p.Height.IsPlaced()
}

// Equal compares position and side; the ID is ignored
func (p Piece) Equal(other Piece) bool {
	return p.X == other.X && p.Y == other.Y && p.Height == other.Height && p.Side == other.Side
}

func (p Piece) String() string {
	return fmt.Sprintf("Piece(%s, (%d, %d, %s), id=%d)", p.Side, p.X, p.Y, p.Height, p.ID)
}

// PlacementRequest asks a board to drop a piece into column (X, Y)
type PlacementRequest struct {
	Side Side `json:"side"`
	X    int  `json:"x"`
	Y    int  `json:"y"`
}
