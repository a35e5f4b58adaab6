package watcher_test

import (
	"context"
	"iter"
	"slices"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logolink/internal/adapters/eventbus"
	"go.trai.ch/logolink/internal/adapters/watcher"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
	"go.trai.ch/logolink/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// chanWatcher is a ports.Watcher fed by a channel.
type chanWatcher struct {
	events  chan ports.WatchEvent
	stopped atomic.Bool
}

func (w *chanWatcher) Start(context.Context, string) error { return nil }

func (w *chanWatcher) Stop() error {
	w.stopped.Store(true)
	return nil
}

func (w *chanWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for e := range w.events {
			if !yield(e) {
				return
			}
		}
	}
}

func TestThemeMonitor_DebouncesIntoOneEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockLogger := mocks.NewMockLogger(ctrl)
		mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

		bus := eventbus.New()
		var published atomic.Int32
		bus.Subscribe(domain.EventThemeChanged, func(context.Context, domain.LifecycleEvent) {
			published.Add(1)
		})

		fw := &chanWatcher{events: make(chan ports.WatchEvent)}
		m := watcher.NewThemeMonitor(fw, bus, mockLogger, domain.DefaultThemeDebounce)

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() { done <- m.Run(ctx, "/theme") }()

		fw.events <- ports.WatchEvent{Path: "/theme/style.css", Operation: ports.OpWrite}
		time.Sleep(100 * time.Millisecond)
		fw.events <- ports.WatchEvent{Path: "/theme/functions.php", Operation: ports.OpWrite}
		time.Sleep(100 * time.Millisecond)
		fw.events <- ports.WatchEvent{Path: "/theme/style.css", Operation: ports.OpWrite}

		time.Sleep(domain.DefaultThemeDebounce - time.Millisecond)
		synctest.Wait()
		assert.Zero(t, published.Load())

		time.Sleep(2 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(1), published.Load())

		cancel()
		close(fw.events)
		require.NoError(t, <-done)
		assert.True(t, fw.stopped.Load())
	})
}

func TestThemeMonitor_FlushesWhenStreamEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockWatcher := mocks.NewMockWatcher(ctrl)
	mockBus := mocks.NewMockEventBus(ctrl)

	events := []ports.WatchEvent{
		{Path: "/theme/a.css", Operation: ports.OpCreate},
		{Path: "/theme/b.css", Operation: ports.OpWrite},
	}

	mockWatcher.EXPECT().Start(gomock.Any(), "/theme").Return(nil)
	mockWatcher.EXPECT().Events().Return(slices.Values(events))
	mockWatcher.EXPECT().Stop().Return(nil)
	mockLogger.EXPECT().Info("watching theme directory /theme")
	mockLogger.EXPECT().Info("theme changed (2 files), dropping cached logo selector")
	mockBus.EXPECT().Publish(gomock.Any(), domain.EventThemeChanged).Times(1)

	m := watcher.NewThemeMonitor(mockWatcher, mockBus, mockLogger, time.Hour)
	require.NoError(t, m.Run(t.Context(), "/theme"))
}

func TestThemeMonitor_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWatcher := mocks.NewMockWatcher(ctrl)

	mockWatcher.EXPECT().Start(gomock.Any(), "/missing").Return(domain.ErrWatcherFailed)

	m := watcher.NewThemeMonitor(mockWatcher, mocks.NewMockEventBus(ctrl), mocks.NewMockLogger(ctrl), time.Millisecond)
	err := m.Run(t.Context(), "/missing")

	require.ErrorIs(t, err, domain.ErrWatcherFailed)
}
