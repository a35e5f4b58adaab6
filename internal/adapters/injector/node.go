package injector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logolink/internal/core/ports"
)

// NodeID is the unique identifier for the script injector Graft node.
const NodeID graft.ID = "adapter.script_injector"

func init() {
	graft.Register(graft.Node[ports.ScriptInjector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptInjector, error) {
			return New(), nil
		},
	})
}
