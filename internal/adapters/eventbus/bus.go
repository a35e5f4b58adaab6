// Package eventbus implements in-process lifecycle event dispatch.
package eventbus

import (
	"context"
	"sync"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
)

var _ ports.EventBus = (*Bus)(nil)

// Bus delivers events synchronously on the publishing goroutine.
type Bus struct {
	mu       sync.RWMutex
	handlers map[domain.LifecycleEvent][]ports.EventHandler
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[domain.LifecycleEvent][]ports.EventHandler)}
}

// Subscribe registers h for evt.
func (b *Bus) Subscribe(evt domain.LifecycleEvent, h ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[evt] = append(b.handlers[evt], h)
}

// Publish calls every handler for evt in registration order.
func (b *Bus) Publish(ctx context.Context, evt domain.LifecycleEvent) {
	b.mu.RLock()
	handlers := append([]ports.EventHandler(nil), b.handlers[evt]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, evt)
	}
}
