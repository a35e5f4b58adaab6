package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logolink/internal/adapters/config"
	"go.trai.ch/logolink/internal/adapters/eventbus"
	"go.trai.ch/logolink/internal/adapters/htmldom"
	"go.trai.ch/logolink/internal/adapters/injector"
	"go.trai.ch/logolink/internal/adapters/logger"
	"go.trai.ch/logolink/internal/adapters/optionstore"
	"go.trai.ch/logolink/internal/adapters/prober"
	"go.trai.ch/logolink/internal/adapters/selectorcache"
	"go.trai.ch/logolink/internal/adapters/telemetry"
	"go.trai.ch/logolink/internal/adapters/watcher"
	"go.trai.ch/logolink/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles what the CLI needs from the wired graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			optionstore.NodeID,
			selectorcache.NodeID,
			htmldom.ScannerNodeID,
			injector.NodeID,
			prober.NodeID,
			eventbus.NodeID,
			watcher.ThemeMonitorNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			stores, err := graft.Dep[ports.OptionStoreFactory](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.SelectorCache](ctx)
			if err != nil {
				return nil, err
			}
			scanner, err := graft.Dep[ports.PageScanner](ctx)
			if err != nil {
				return nil, err
			}
			inj, err := graft.Dep[ports.ScriptInjector](ctx)
			if err != nil {
				return nil, err
			}
			probe, err := graft.Dep[ports.URLProber](ctx)
			if err != nil {
				return nil, err
			}
			bus, err := graft.Dep[ports.EventBus](ctx)
			if err != nil {
				return nil, err
			}
			monitor, err := graft.Dep[ports.ThemeMonitor](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			a := New(loader, stores, cache, scanner, inj, probe, bus, monitor, tracer, log)
			return &Components{App: a, Logger: log}, nil
		},
	})
}
