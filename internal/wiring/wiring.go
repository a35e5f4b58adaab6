// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/logolink/internal/adapters/config"
	_ "go.trai.ch/logolink/internal/adapters/eventbus"
	_ "go.trai.ch/logolink/internal/adapters/htmldom"
	_ "go.trai.ch/logolink/internal/adapters/injector"
	_ "go.trai.ch/logolink/internal/adapters/logger"
	_ "go.trai.ch/logolink/internal/adapters/optionstore"
	_ "go.trai.ch/logolink/internal/adapters/prober"
	_ "go.trai.ch/logolink/internal/adapters/selectorcache"
	_ "go.trai.ch/logolink/internal/adapters/telemetry"
	_ "go.trai.ch/logolink/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/logolink/internal/app"
)
