// Package engine implements the board state machine and win detection for
// gravity-stacked 3D N-in-a-row.
//
// Pieces are dropped into (x, y) columns and land on top of the stack, so a
// piece's z is always the column length at the moment it was placed. After
// every placement the board rescans its most recent history for a line of
// WinLen same-side pieces along any of the 13 Directions and stores the
// result as its Status.
//
// A Board is single-writer: it holds no locks, starts no goroutines and does
// no I/O. Callers that read from another goroutine must synchronise
// externally.
package engine
