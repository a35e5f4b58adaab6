package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/logolink/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultStatePath",
			got:      domain.DefaultStatePath(),
			expected: ".logolink",
		},
		{
			name:     "DefaultOptionsPath",
			got:      domain.DefaultOptionsPath(),
			expected: filepath.Join(".logolink", "options.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}
