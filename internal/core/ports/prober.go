package ports

import (
	"context"

	"go.trai.ch/logolink/internal/core/domain"
)

// URLProber performs a best-effort reachability check.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type URLProber interface {
	// Probe requests rawURL and classifies the outcome. It never returns an error;
	// failures are reported in the result.
	Probe(ctx context.Context, rawURL string) domain.ProbeResult
}
