package response

import (
	"time"

	"github.com/mcoot/stackline/internal/engine"
	"github.com/mcoot/stackline/internal/model"
)

// GameSummary describes a game without its board
type GameSummary struct {
	ID        string            `json:"id"`
	Config    model.BoardConfig `json:"config"`
	MoveCount int               `json:"move_count"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// GameSummaryFromModel converts a model.Game
func GameSummaryFromModel(g *model.Game) GameSummary {
	return GameSummary{
		ID:        string(g.ID),
		Config:    g.Config,
		MoveCount: g.MoveCount(),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []GameSummary `json:"games"`
}

// Board is a game's full structural dump
type Board struct {
	GameID string `json:"game_id"`
	engine.Snapshot
}

// Status reports the winner, if any, and the winning line
type Status struct {
	GameID string        `json:"game_id"`
	Winner *string       `json:"winner"`
	Line   []model.Piece `json:"line"`
}

// StatusFromModel converts a model.Status
func StatusFromModel(gameID model.GameID, s model.Status) Status {
	var winner *string
	if side, ok := s.Winner(); ok {
		w := side.String()
		winner = &w
	}
	line := s.Line
	if line == nil {
		line = []model.Piece{}
	}
	return Status{
		GameID: string(gameID),
		Winner: winner,
		Line:   line,
	}
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
