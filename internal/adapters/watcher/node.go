package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logolink/internal/adapters/eventbus"
	"go.trai.ch/logolink/internal/adapters/logger"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// ThemeMonitorNodeID is the unique identifier for the theme monitor Graft node.
	ThemeMonitorNodeID graft.ID = "adapter.theme_monitor"
)

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			w, err := NewWatcher(log)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	})

	graft.Register(graft.Node[ports.ThemeMonitor]{
		ID:        ThemeMonitorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WatcherNodeID, eventbus.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ThemeMonitor, error) {
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			bus, err := graft.Dep[ports.EventBus](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewThemeMonitor(w, bus, log, domain.DefaultThemeDebounce), nil
		},
	})
}
