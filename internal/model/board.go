package model

import "fmt"

// BoardConfig holds the dimensions and win rule of a board
type BoardConfig struct {
	XRad      int `json:"xrad"`       // x ranges over [-XRad, XRad]
	YRad      int `json:"yrad"`       // y ranges over [-YRad, YRad]
	MaxHeight int `json:"max_height"` // Column capacity
	WinLen    int `json:"win_len"`    // Pieces in a row needed to win
}

// Upper bounds on board dimensions. The grid is allocated up front, so a
// radius of MaxRadius is already about a million columns.
const (
	MaxRadius       = 500
	MaxColumnHeight = 10000
	MaxWinLength    = 1000
)

// DefaultBoardConfig returns a 19x19 board, 50 high, five in a row
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		XRad:      9,
		YRad:      9,
		MaxHeight: 50,
		WinLen:    5,
	}
}

// Validate checks that the config describes a usable board
func (c BoardConfig) Validate() error {
	switch {
	case c.XRad < 0 || c.YRad < 0:
		return fmt.Errorf("%w: radii must be non-negative (got %d, %d)", ErrInvalidBoardConfig, c.XRad, c.YRad)
	case c.XRad > MaxRadius || c.YRad > MaxRadius:
		return fmt.Errorf("%w: radii must be at most %d (got %d, %d)", ErrInvalidBoardConfig, MaxRadius, c.XRad, c.YRad)
	case c.MaxHeight <= 0:
		return fmt.Errorf("%w: max height must be positive (got %d)", ErrInvalidBoardConfig, c.MaxHeight)
	case c.MaxHeight > MaxColumnHeight:
		return fmt.Errorf("%w: max height must be at most %d (got %d)", ErrInvalidBoardConfig, MaxColumnHeight, c.MaxHeight)
	case c.WinLen <= 0:
		return fmt.Errorf("%w: win length must be positive (got %d)", ErrInvalidBoardConfig, c.WinLen)
	case c.WinLen > MaxWinLength:
		return fmt.Errorf("%w: win length must be at most %d (got %d)", ErrInvalidBoardConfig, MaxWinLength, c.WinLen)
	}
	return nil
}

// Width returns the number of columns along x
func (c BoardConfig) Width() int {
	return 2*c.XRad + 1
}

// Depth returns the number of columns along y
func (c BoardConfig) Depth() int {
	return 2*c.YRad + 1
}

// InBounds reports whether (x, y) is a column on the board
func (c BoardConfig) InBounds(x, y int) bool {
	return -c.XRad <= x && x <= c.XRad && -c.YRad <= y && y <= c.YRad
}
