package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Game is the persisted record of one board: its config and the ordered placement log.
// The board itself is rebuilt by replaying Placements.
type Game struct {
	ID         GameID             `json:"id"`
	Config     BoardConfig        `json:"config"`
	Placements []PlacementRequest `json:"placements,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// MoveCount returns the number of placements recorded
func (g *Game) MoveCount() int {
	return len(g.Placements)
}
