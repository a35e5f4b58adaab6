package ports

import "go.trai.ch/logolink/internal/core/domain"

// SelectorCache holds the site-wide detected logo selector.
// It has a single slot with a fixed TTL that is never extended on read.
//
//go:generate mockgen -source=selector_cache.go -destination=mocks/mock_selector_cache.go -package=mocks
type SelectorCache interface {
	// Get returns the cached selector if present and not expired.
	Get() (domain.CachedSelector, bool)
	// Set stores value, replacing any previous entry, and returns the stored entry.
	Set(value string) domain.CachedSelector
	// Invalidate drops the cached selector.
	Invalidate()
}
