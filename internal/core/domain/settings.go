// Package domain contains the core types and pure policies of logolink.
package domain

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// ClickMode selects which destination the right-click prefers.
type ClickMode string

const (
	// ModeAssets sends right-clicks to the assets page or the media library.
	ModeAssets ClickMode = "assets"
	// ModeCustom sends right-clicks to an operator-configured URL.
	ModeCustom ClickMode = "custom"
)

// Valid reports whether m is a known click mode.
func (m ClickMode) Valid() bool {
	return m == ModeAssets || m == ModeCustom
}

// Presentation selects how the right-click destination is offered to the visitor.
type Presentation string

const (
	// PresentationMenu shows a two-entry context menu.
	PresentationMenu Presentation = "menu"
	// PresentationRedirect navigates straight to the destination.
	PresentationRedirect Presentation = "redirect"
)

// Valid reports whether p is a known presentation.
func (p Presentation) Valid() bool {
	return p == PresentationMenu || p == PresentationRedirect
}

// Option store keys.
const (
	OptionRightClickType = "logolink_right_click_type"
	OptionAssetsURL      = "logolink_assets_url"
	OptionCustomURL      = "logolink_custom_url"
	OptionCustomText     = "logolink_custom_text"
	OptionPresentation   = "logolink_presentation"
)

// OptionKeys lists every key owned by logolink in the option store.
var OptionKeys = []string{
	OptionRightClickType,
	OptionAssetsURL,
	OptionCustomURL,
	OptionCustomText,
	OptionPresentation,
}

// Defaults seeded on activation for keys that are still unset.
const (
	DefaultCustomText = "About Our Brand"
	DefaultCustomPath = "/about"
)

// Settings is the operator configuration as persisted in the option store.
type Settings struct {
	Mode         ClickMode    `json:"rightClickType" yaml:"right_click_type"`
	AssetsURL    string       `json:"assetsUrl" yaml:"assets_url"`
	CustomURL    string       `json:"customUrl" yaml:"custom_url"`
	CustomText   string       `json:"customText" yaml:"custom_text"`
	Presentation Presentation `json:"presentation" yaml:"presentation"`
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeText strips markup and control characters and collapses whitespace.
func SanitizeText(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// SanitizeURL trims a URL and removes embedded whitespace.
func SanitizeURL(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

// Sanitize returns a copy of s with every field normalized.
func (s Settings) Sanitize() Settings {
	return Settings{
		Mode:         ClickMode(strings.ToLower(strings.TrimSpace(string(s.Mode)))),
		AssetsURL:    SanitizeURL(s.AssetsURL),
		CustomURL:    SanitizeURL(s.CustomURL),
		CustomText:   SanitizeText(s.CustomText),
		Presentation: Presentation(strings.ToLower(strings.TrimSpace(string(s.Presentation)))),
	}
}

// ValidationError reports the form field that failed validation.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + " (" + e.Value + ")"
}

// Unwrap returns the underlying sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the settings the way the admin form does before saving.
// An empty mode or presentation is accepted and means the default.
func (s Settings) Validate() error {
	if s.Mode != "" && !s.Mode.Valid() {
		return &ValidationError{Field: OptionRightClickType, Value: string(s.Mode), Err: ErrInvalidClickMode}
	}
	if s.Presentation != "" && !s.Presentation.Valid() {
		return &ValidationError{Field: OptionPresentation, Value: string(s.Presentation), Err: ErrInvalidPresentation}
	}

	if s.Mode == ModeCustom {
		if s.CustomURL == "" {
			return &ValidationError{Field: OptionCustomURL, Err: ErrCustomURLRequired}
		}
		if !IsAbsoluteURL(s.CustomURL) {
			return &ValidationError{Field: OptionCustomURL, Value: s.CustomURL, Err: ErrInvalidURL}
		}
	} else if s.CustomURL != "" && !IsAbsoluteURL(s.CustomURL) && !IsRootRelativeURL(s.CustomURL) {
		return &ValidationError{Field: OptionCustomURL, Value: s.CustomURL, Err: ErrInvalidURL}
	}

	if s.AssetsURL != "" && !IsAbsoluteURL(s.AssetsURL) && !IsRootRelativeURL(s.AssetsURL) {
		return &ValidationError{Field: OptionAssetsURL, Value: s.AssetsURL, Err: ErrInvalidURL}
	}

	return nil
}

// EffectiveMode returns the stored mode, or ModeAssets when unset or unknown.
func (s Settings) EffectiveMode() ClickMode {
	if s.Mode == ModeCustom {
		return ModeCustom
	}
	return ModeAssets
}

// EffectivePresentation returns the stored presentation, or fallback when unset or unknown.
func (s Settings) EffectivePresentation(fallback Presentation) Presentation {
	if s.Presentation.Valid() {
		return s.Presentation
	}
	if fallback.Valid() {
		return fallback
	}
	return PresentationMenu
}

// IsAbsoluteURL reports whether raw is an absolute http or https URL with a host.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsRootRelativeURL reports whether raw is a path on the current site, such as "/wp-admin/upload.php".
func IsRootRelativeURL(raw string) bool {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return false
	}
	_, err := url.Parse(raw)
	return err == nil
}
