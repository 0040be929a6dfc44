package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameCreated EventType = "game_created"
	EventPiecePlaced EventType = "piece_placed"
	EventLineFound   EventType = "line_found"
)

// Event describes something a renderer may want to react to
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	GameID    GameID    `json:"game_id"`
	Piece     *Piece    `json:"piece,omitempty"` // Set for piece_placed and line_found
	Line      []Piece   `json:"line,omitempty"`  // Set for line_found
}

// NewPiecePlacedEvent builds the event for a successful placement
func NewPiecePlacedEvent(gameID GameID, piece Piece, at time.Time) Event {
	return Event{
		Type:      EventPiecePlaced,
		Timestamp: at,
		GameID:    gameID,
		Piece:     &piece,
	}
}

// NewLineFoundEvent builds the event for a placement that produced a winning line
func NewLineFoundEvent(gameID GameID, piece Piece, status Status, at time.Time) Event {
	line := make([]Piece, len(status.Line))
	copy(line, status.Line)
	return Event{
		Type:      EventLineFound,
		Timestamp: at,
		GameID:    gameID,
		Piece:     &piece,
		Line:      line,
	}
}
