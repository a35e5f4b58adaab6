package domain

import "strings"

// LabelContext selects the wording of the assets label.
type LabelContext uint8

const (
	// LabelMenu is the wording used inside the context menu.
	LabelMenu LabelContext = iota
	// LabelShort is the compact wording used in summaries.
	LabelShort
)

// Fixed labels used when the operator did not provide one.
const (
	DefaultCustomLabel     = "Custom Link"
	MediaLibraryLabel      = "Media Library"
	MediaLibraryMenuLabel  = "Go to Media Library"
	DefaultMediaLibraryURL = "/wp-admin/upload.php"
)

// Destination is the effective right-click target.
type Destination struct {
	URL   string
	Label string
}

// ComputeDestination maps stored settings to the right-click destination.
// It returns false when custom mode has no URL, which leaves the feature inert.
func ComputeDestination(s Settings, mediaLibraryURL string, lc LabelContext) (Destination, bool) {
	if s.EffectiveMode() == ModeCustom {
		target := strings.TrimSpace(s.CustomURL)
		if target == "" {
			return Destination{}, false
		}
		label := strings.TrimSpace(s.CustomText)
		if label == "" {
			label = DefaultCustomLabel
		}
		return Destination{URL: target, Label: label}, true
	}

	target := strings.TrimSpace(s.AssetsURL)
	if target == "" {
		target = mediaLibraryURL
	}
	if target == "" {
		return Destination{}, false
	}

	label := MediaLibraryMenuLabel
	if lc == LabelShort {
		label = MediaLibraryLabel
	}
	return Destination{URL: target, Label: label}, true
}

// ShouldAttachWidget is the gate evaluated before any payload is serialized.
// The widget applies the same precondition on the client.
func ShouldAttachWidget(s Settings, mediaLibraryURL string) bool {
	_, ok := ComputeDestination(s, mediaLibraryURL, LabelMenu)
	return ok
}

// TooltipText returns the title describing both click behaviors.
func TooltipText(mode ClickMode, customText string) string {
	label := "More options"
	if mode == ModeCustom && strings.TrimSpace(customText) != "" {
		label = customText
	}
	return "Left-click: Homepage | Right-click: " + label
}
