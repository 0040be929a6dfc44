package model

import "errors"

// Common errors used across the application
var (
	// Placement errors
	ErrOutOfBounds    = errors.New("position is out of bounds")
	ErrHeightExceeded = errors.New("maximum column height reached")
	ErrInvalidPiece   = errors.New("invalid piece")
	ErrInvalidSide    = errors.New("invalid side")

	// Board errors
	ErrInvalidBoardConfig = errors.New("invalid board configuration")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrGameComplete = errors.New("game already has a winner")

	// Storage errors
	ErrPlacementConflict = errors.New("placement log changed concurrently")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrBoardFull       = errors.New("no open column")
)
