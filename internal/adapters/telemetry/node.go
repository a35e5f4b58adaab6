package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/logolink/internal/adapters/logger"
	"go.trai.ch/logolink/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			// Route SDK-internal failures through the application logger.
			otel.SetErrorHandler(otel.ErrorHandlerFunc(log.Error))

			t := NewOTelTracer(InstrumentationName, NewBridge(log, DefaultSlowSpan))
			otel.SetTracerProvider(t.Provider())
			return t, nil
		},
	})
}
