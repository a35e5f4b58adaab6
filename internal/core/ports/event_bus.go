package ports

import (
	"context"

	"go.trai.ch/logolink/internal/core/domain"
)

// EventHandler reacts to a lifecycle event.
type EventHandler func(ctx context.Context, evt domain.LifecycleEvent)

// EventBus dispatches host lifecycle events to subscribers.
//
//go:generate mockgen -source=event_bus.go -destination=mocks/mock_event_bus.go -package=mocks
type EventBus interface {
	// Subscribe registers h for evt. Handlers run in registration order.
	Subscribe(evt domain.LifecycleEvent, h EventHandler)
	// Publish delivers evt to every handler subscribed to it.
	Publish(ctx context.Context, evt domain.LifecycleEvent)
}
