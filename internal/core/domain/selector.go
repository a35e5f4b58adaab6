package domain

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	// SelectorCacheKey names the single site-wide cache slot for the detected logo selector.
	SelectorCacheKey = "logolink_logo_selector"

	// SelectorCacheTTL is how long a detected selector is trusted.
	SelectorCacheTTL = 24 * time.Hour
)

// DefaultLogoSelectors is the ordered fallback list of logo selectors for common themes.
var DefaultLogoSelectors = []string{
	".custom-logo-link",
	".site-logo",
	".site-logo a",
	".custom-logo",
	".site-branding a",
	".logo a",
	".header-logo a",
	".navbar-brand",
	".brand",
	`[class*="logo"] a`,
}

// CachedSelector is a detected selector together with its expiry.
type CachedSelector struct {
	Value     string
	ExpiresAt time.Time
}

// Expired reports whether the entry is no longer usable at now.
func (c CachedSelector) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// SelectorMatcher reports whether a selector matches an element of a page.
type SelectorMatcher interface {
	Matches(selector string) bool
}

// SelectorMatcherFunc adapts a function to SelectorMatcher.
type SelectorMatcherFunc func(selector string) bool

// Matches calls f.
func (f SelectorMatcherFunc) Matches(selector string) bool {
	return f(selector)
}

// ResolveSelector returns the logo selector for a page.
//
// An unexpired cached entry is trusted without rescanning the page, even if it
// no longer matches. Otherwise candidates are tried in order and the first one
// that matches wins. A miss returns false and is not an error.
func ResolveSelector(candidates []string, cached *CachedSelector, now time.Time, m SelectorMatcher) (string, bool) {
	if cached != nil && cached.Value != "" && !cached.Expired(now) {
		return cached.Value, true
	}

	if m == nil {
		return "", false
	}

	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if m.Matches(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// BuildSelectorList returns the candidate list for a site.
// A non-empty override replaces the defaults; extra entries are appended.
// Blank and duplicate entries are dropped, keeping first occurrences in place.
func BuildSelectorList(override, extra []string) []string {
	base := DefaultLogoSelectors
	if len(override) > 0 {
		base = override
	}

	all := make([]string, 0, len(base)+len(extra))
	all = append(all, base...)
	all = append(all, extra...)

	trimmed := lo.Map(all, func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Uniq(lo.Compact(trimmed))
}
