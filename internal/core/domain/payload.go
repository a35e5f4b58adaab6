package domain

import (
	"encoding/json"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// PayloadElementID is the id of the JSON script block carrying the payload.
const PayloadElementID = "logolink-config"

// Payload is the configuration handed from the server to the widget.
// It is immutable for the lifetime of one page view.
type Payload struct {
	HomeURL        string       `json:"homeUrl"`
	RedirectURL    string       `json:"redirectUrl"`
	MenuLabel      string       `json:"menuLabel"`
	RightClickType ClickMode    `json:"rightClickType"`
	CustomText     string       `json:"customText"`
	LogoSelector   string       `json:"logoSelector,omitempty"`
	LogoSelectors  []string     `json:"logoSelectors,omitempty"`
	Presentation   Presentation `json:"presentation,omitempty"`
}

// PayloadInput groups everything BuildPayload needs besides the settings.
type PayloadInput struct {
	HomeURL             string
	MediaLibraryURL     string
	LogoSelector        string
	Selectors           []string
	DefaultPresentation Presentation
}

// BuildPayload applies the redirect policy and returns the payload for a page.
// It returns false when the widget must not be attached.
func BuildPayload(s Settings, in PayloadInput) (Payload, bool) {
	dest, ok := ComputeDestination(s, in.MediaLibraryURL, LabelMenu)
	if !ok {
		return Payload{}, false
	}

	return Payload{
		HomeURL:        in.HomeURL,
		RedirectURL:    dest.URL,
		MenuLabel:      dest.Label,
		RightClickType: s.EffectiveMode(),
		CustomText:     s.CustomText,
		LogoSelector:   in.LogoSelector,
		LogoSelectors:  siteSelectors(in.Selectors),
		Presentation:   s.EffectivePresentation(in.DefaultPresentation),
	}, true
}

// siteSelectors returns the site's candidate list, or nil when it is the
// built-in one the widget already knows.
func siteSelectors(list []string) []string {
	if len(list) == 0 || slices.Equal(list, DefaultLogoSelectors) {
		return nil
	}
	return slices.Clone(list)
}

// Validate checks a decoded payload before the widget trusts it.
func (p Payload) Validate() error {
	if strings.TrimSpace(p.HomeURL) == "" {
		return zerr.With(ErrInvalidPayload, "field", "homeUrl")
	}
	if strings.TrimSpace(p.RedirectURL) == "" {
		return zerr.With(ErrDestinationMissing, "field", "redirectUrl")
	}
	if !p.RightClickType.Valid() {
		return zerr.With(zerr.With(ErrInvalidPayload, "field", "rightClickType"), "value", string(p.RightClickType))
	}
	if p.Presentation != "" && !p.Presentation.Valid() {
		return zerr.With(zerr.With(ErrInvalidPayload, "field", "presentation"), "value", string(p.Presentation))
	}
	return nil
}

// EffectivePresentation returns the payload presentation, defaulting to the menu.
func (p Payload) EffectivePresentation() Presentation {
	if p.Presentation == PresentationRedirect {
		return PresentationRedirect
	}
	return PresentationMenu
}

// ParsePayload decodes and validates a payload.
func ParsePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, zerr.Wrap(err, ErrInvalidPayload.Error())
	}
	if err := p.Validate(); err != nil {
		return Payload{}, err
	}
	return p, nil
}
