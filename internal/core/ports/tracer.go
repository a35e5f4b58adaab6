package ports

import "context"

// Tracer starts spans around application operations.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start creates a span and a context carrying it.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Shutdown flushes and releases tracer resources.
	Shutdown(ctx context.Context) error
}

// Span is a single traced operation.
type Span interface {
	// End completes the span.
	End()
	// RecordError marks the span as failed.
	RecordError(err error)
	// SetAttribute attaches a key-value pair to the span.
	SetAttribute(key string, value any)
}
