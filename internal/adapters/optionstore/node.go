package optionstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logolink/internal/core/ports"
)

// NodeID is the unique identifier for the option store factory Graft node.
const NodeID graft.ID = "adapter.option_store"

// Factory opens file-backed option stores.
type Factory struct{}

// Open returns a FileStore for path.
func (Factory) Open(path string) ports.OptionStore {
	return NewFileStore(path)
}

func init() {
	graft.Register(graft.Node[ports.OptionStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OptionStoreFactory, error) {
			return Factory{}, nil
		},
	})
}
