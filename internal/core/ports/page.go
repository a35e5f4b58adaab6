package ports

import "go.trai.ch/logolink/internal/core/domain"

// PageScanner parses an HTML page so selectors can be matched against it.
//
//go:generate mockgen -source=page.go -destination=mocks/mock_page.go -package=mocks
type PageScanner interface {
	// Scan parses page and returns a matcher over its elements.
	Scan(page []byte) (domain.SelectorMatcher, error)
}

// ScriptInjector renders the widget payload and bootstrap tags into a page.
type ScriptInjector interface {
	// Inject inserts the payload before the last </body>, with script tags
	// pointing below scriptBase. The second result is false when the page has
	// no closing body tag and was returned unchanged.
	Inject(page []byte, p domain.Payload, scriptBase string) ([]byte, bool, error)
}
