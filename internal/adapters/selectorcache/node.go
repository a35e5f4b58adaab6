package selectorcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
)

// NodeID is the unique identifier for the selector cache Graft node.
const NodeID graft.ID = "adapter.selector_cache"

func init() {
	graft.Register(graft.Node[ports.SelectorCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SelectorCache, error) {
			return New(domain.SelectorCacheTTL), nil
		},
	})
}
