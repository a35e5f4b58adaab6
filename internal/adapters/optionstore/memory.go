package optionstore

import (
	"maps"
	"sync"

	"go.trai.ch/logolink/internal/core/ports"
)

var _ ports.OptionStore = (*MemoryStore)(nil)

// MemoryStore is a process-local option store.
type MemoryStore struct {
	mu   sync.RWMutex
	opts map[string]string
}

// NewMemoryStore creates a store seeded with initial.
func NewMemoryStore(initial map[string]string) *MemoryStore {
	opts := make(map[string]string, len(initial))
	maps.Copy(opts, initial)
	return &MemoryStore{opts: opts}
}

// Get returns the stored value for key.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.opts[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts[key] = value
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.opts, key)
	return nil
}

// Snapshot returns a copy of every stored option.
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.opts)
}
