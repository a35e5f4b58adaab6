package watcher

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
)

var _ ports.ThemeMonitor = (*ThemeMonitor)(nil)

// ThemeMonitor publishes theme-changed when files below the theme directory change.
type ThemeMonitor struct {
	watcher ports.Watcher
	bus     ports.EventBus
	logger  ports.Logger
	window  time.Duration
}

// NewThemeMonitor wires a watcher to the event bus with the given debounce window.
func NewThemeMonitor(w ports.Watcher, bus ports.EventBus, logger ports.Logger, window time.Duration) *ThemeMonitor {
	return &ThemeMonitor{
		watcher: w,
		bus:     bus,
		logger:  logger,
		window:  window,
	}
}

// Run watches dir and blocks until the event stream ends.
// A burst still pending when ctx is cancelled is dropped.
func (m *ThemeMonitor) Run(ctx context.Context, dir string) error {
	if err := m.watcher.Start(ctx, dir); err != nil {
		return err
	}
	defer func() {
		_ = m.watcher.Stop()
	}()

	m.logger.Info("watching theme directory " + dir)

	d := NewDebouncer(m.window, func(paths []string) {
		m.logger.Info(fmt.Sprintf("theme changed (%d files), dropping cached logo selector", len(paths)))
		m.bus.Publish(ctx, domain.EventThemeChanged)
	})

	for evt := range m.watcher.Events() {
		d.Add(evt.Path)
	}

	if ctx.Err() != nil {
		d.Stop()
		return nil
	}
	d.Flush()
	return nil
}
