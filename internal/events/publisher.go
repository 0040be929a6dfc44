// Package events distributes game events to whoever renders or relays them.
package events

import (
	"context"
	"errors"

	"github.com/mcoot/stackline/internal/model"
)

// Publisher accepts game events
type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
}

// PublisherFunc adapts a function to the Publisher interface
type PublisherFunc func(ctx context.Context, event model.Event) error

func (f PublisherFunc) Publish(ctx context.Context, event model.Event) error {
	return f(ctx, event)
}

// Multi fans each event out to every publisher. All publishers are tried;
// their errors are joined.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, event model.Event) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards every event
type Nop struct{}

func (Nop) Publish(context.Context, model.Event) error { return nil }

var (
	_ Publisher = PublisherFunc(nil)
	_ Publisher = Multi(nil)
	_ Publisher = Nop{}
)
