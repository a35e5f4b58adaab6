package htmldom

import (
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
)

var _ ports.PageScanner = (*Scanner)(nil)

// Scanner parses pages for server-side logo detection.
type Scanner struct{}

// NewScanner creates a Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan parses page and returns its Document as a matcher.
func (s *Scanner) Scan(page []byte) (domain.SelectorMatcher, error) {
	doc, err := ParseDocument(page)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
