package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks every package that registers logolink nodes:
// each declared dependency is used and each used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	dirs := []string{
		"../../internal/adapters",
		"../../internal/app",
	}

	for _, dir := range dirs {
		t.Run(dir, func(t *testing.T) {
			graft.AssertDepsValid(t, dir)
		})
	}
}
