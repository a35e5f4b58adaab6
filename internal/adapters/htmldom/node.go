package htmldom

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logolink/internal/core/ports"
)

// ScannerNodeID is the unique identifier for the page scanner Graft node.
const ScannerNodeID graft.ID = "adapter.page_scanner"

func init() {
	graft.Register(graft.Node[ports.PageScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PageScanner, error) {
			return NewScanner(), nil
		},
	})
}
