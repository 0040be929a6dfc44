package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/stackline/internal/events"
	"github.com/mcoot/stackline/internal/model"
)

// EventBus carries game events between processes over Redis pub/sub
type EventBus struct {
	client *redis.Client
	logger *slog.Logger
}

// NewEventBus creates an event bus on an existing client
func NewEventBus(client *redis.Client, logger *slog.Logger) *EventBus {
	return &EventBus{
		client: client,
		logger: logger.With(slog.String("component", "redis-events")),
	}
}

// Ensure EventBus can stand in for any publisher
var _ events.Publisher = (*EventBus)(nil)

// Publish sends an event to every relaying process
func (b *EventBus) Publish(ctx context.Context, event model.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, eventsChannel(), data).Err()
}

// Relay forwards every event published on the bus to sink until ctx is done.
// ready, if not nil, is closed once the subscription is confirmed.
func (b *EventBus) Relay(ctx context.Context, sink events.Publisher, ready chan<- struct{}) error {
	sub := b.client.Subscribe(ctx, eventsChannel())
	defer func() { _ = sub.Close() }()

	// Wait for the subscription confirmation so no event is missed after ready
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	if ready != nil {
		close(ready)
	}
	b.logger.Info("relaying events", slog.String("channel", eventsChannel()))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event model.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warn("dropping malformed event", slog.String("error", err.Error()))
				continue
			}
			if err := sink.Publish(ctx, event); err != nil {
				b.logger.Warn("event sink failed",
					slog.String("game_id", string(event.GameID)),
					slog.String("type", string(event.Type)),
					slog.String("error", err.Error()))
			}
		}
	}
}
