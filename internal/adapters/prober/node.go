package prober

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logolink/internal/core/ports"
)

// NodeID is the unique identifier for the URL prober Graft node.
const NodeID graft.ID = "adapter.url_prober"

func init() {
	graft.Register(graft.Node[ports.URLProber]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.URLProber, error) {
			return New(), nil
		},
	})
}
