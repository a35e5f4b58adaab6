package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logolink/internal/adapters/detector"
	"go.trai.ch/logolink/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			// Until --log-format is parsed, follow the environment so early
			// failures in CI are already JSON.
			l := New()
			l.SetJSON(detector.DetectEnvironment() == detector.FormatJSON)
			return l, nil
		},
	})
}
