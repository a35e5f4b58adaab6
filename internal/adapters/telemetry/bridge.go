package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/logolink/internal/core/ports"
)

// DefaultSlowSpan is the duration from which a finished span is logged.
const DefaultSlowSpan = 500 * time.Millisecond

// Bridge implements sdktrace.SpanProcessor and reports failed or slow spans to a Logger.
type Bridge struct {
	logger ports.Logger
	slow   time.Duration
}

// NewBridge returns a new Bridge. A slow threshold of zero disables slow-span logging.
func NewBridge(logger ports.Logger, slow time.Duration) *Bridge {
	return &Bridge{
		logger: logger,
		slow:   slow,
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "unknown error"
		}
		b.logger.Warn(fmt.Sprintf("%s failed after %s: %s", s.Name(), elapsed, desc))
		return
	}

	if b.slow > 0 && elapsed >= b.slow {
		b.logger.Info(fmt.Sprintf("%s took %s", s.Name(), elapsed))
	}
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
