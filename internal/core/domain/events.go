package domain

import "go.trai.ch/zerr"

// LifecycleEvent is a host lifecycle notification.
type LifecycleEvent string

const (
	// EventReady fires once the host is ready to serve pages.
	EventReady LifecycleEvent = "ready"
	// EventThemeChanged fires when the active theme is switched or its files change.
	EventThemeChanged LifecycleEvent = "theme-changed"
	// EventCustomizerSaved fires when theme customizations are saved.
	EventCustomizerSaved LifecycleEvent = "customizer-saved"
	// EventSettingsSaved fires after logolink settings were written or deleted.
	EventSettingsSaved LifecycleEvent = "settings-saved"
)

// InvalidatingEvents are the events that drop the cached logo selector.
var InvalidatingEvents = []LifecycleEvent{
	EventThemeChanged,
	EventCustomizerSaved,
	EventSettingsSaved,
}

// ParseLifecycleEvent converts an event name into a LifecycleEvent.
func ParseLifecycleEvent(name string) (LifecycleEvent, error) {
	switch e := LifecycleEvent(name); e {
	case EventReady, EventThemeChanged, EventCustomizerSaved, EventSettingsSaved:
		return e, nil
	default:
		return "", zerr.With(ErrUnknownEvent, "event", name)
	}
}

// DOMEventType names the browser events the widget listens to.
type DOMEventType string

const (
	// DOMContextMenu is the right-click event.
	DOMContextMenu DOMEventType = "contextmenu"
	// DOMClick is the primary click event.
	DOMClick DOMEventType = "click"
	// DOMKeyDown is the keyboard event.
	DOMKeyDown DOMEventType = "keydown"
	// DOMMouseEnter and DOMMouseLeave track the pointer over a menu entry.
	DOMMouseEnter DOMEventType = "mouseenter"
	DOMMouseLeave DOMEventType = "mouseleave"
)

// Mouse buttons as reported by MouseEvent.button.
const (
	ButtonPrimary   = 0
	ButtonSecondary = 2
)

// KeyEscape is the KeyboardEvent.key value of the Escape key.
const KeyEscape = "Escape"
