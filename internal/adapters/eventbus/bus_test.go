package eventbus_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/logolink/internal/adapters/eventbus"
	"go.trai.ch/logolink/internal/core/domain"
)

func TestBus_PublishOrder(t *testing.T) {
	bus := eventbus.New()
	var got []string

	bus.Subscribe(domain.EventThemeChanged, func(_ context.Context, evt domain.LifecycleEvent) {
		got = append(got, "first:"+string(evt))
	})
	bus.Subscribe(domain.EventThemeChanged, func(_ context.Context, evt domain.LifecycleEvent) {
		got = append(got, "second:"+string(evt))
	})
	bus.Subscribe(domain.EventSettingsSaved, func(context.Context, domain.LifecycleEvent) {
		got = append(got, "unrelated")
	})

	bus.Publish(t.Context(), domain.EventThemeChanged)

	assert.Equal(t, []string{"first:theme-changed", "second:theme-changed"}, got)
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	assert.NotPanics(t, func() {
		eventbus.New().Publish(t.Context(), domain.EventReady)
	})
}

func TestBus_HandlerMaySubscribe(t *testing.T) {
	bus := eventbus.New()
	calls := 0

	bus.Subscribe(domain.EventReady, func(context.Context, domain.LifecycleEvent) {
		calls++
		bus.Subscribe(domain.EventReady, func(context.Context, domain.LifecycleEvent) { calls++ })
	})

	bus.Publish(t.Context(), domain.EventReady)
	assert.Equal(t, 1, calls)

	bus.Publish(t.Context(), domain.EventReady)
	assert.Equal(t, 3, calls)
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := eventbus.New()
	var mu sync.Mutex
	count := 0
	bus.Subscribe(domain.EventCustomizerSaved, func(context.Context, domain.LifecycleEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			bus.Publish(t.Context(), domain.EventCustomizerSaved)
		})
	}
	wg.Wait()

	assert.Equal(t, 20, count)
}
