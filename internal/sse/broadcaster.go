package sse

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mcoot/stackline/internal/events"
	"github.com/mcoot/stackline/internal/model"
)

// Broadcaster forwards game events to the SSE clients watching that game
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

var _ events.Publisher = (*Broadcaster)(nil)

// Publish sends the event as JSON, named by its type. Games nobody watches
// are skipped.
func (b *Broadcaster) Publish(_ context.Context, event model.Event) error {
	hub := b.hubManager.GetHub(event.GameID)
	if hub == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("game_id", string(event.GameID)),
			slog.Any("error", err))
		return err
	}

	hub.BroadcastEvent(string(event.Type), string(data))
	return nil
}
