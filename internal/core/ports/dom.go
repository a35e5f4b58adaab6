package ports

import "go.trai.ch/logolink/internal/core/domain"

// EventListener receives DOM events.
type EventListener func(evt *DOMEvent)

// DOMEvent is the subset of a browser event the widget reads.
type DOMEvent struct {
	Type   domain.DOMEventType
	Button int
	PageX  float64
	PageY  float64
	Key    string
	Target Element

	defaultPrevented bool
}

// PreventDefault suppresses the browser's default action.
func (e *DOMEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *DOMEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Element is a DOM element handle.
type Element interface {
	// TagName returns the lower-case tag name.
	TagName() string
	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	// SetText replaces the children with a single text node.
	SetText(text string)
	AppendChild(child Element)
	// Contains reports whether other is this element or one of its descendants.
	Contains(other Element) bool
	SetStyle(property, value string)
	Style(property string) string
	// BoundingRect returns the laid-out box in viewport coordinates.
	BoundingRect() domain.Rect
	AddEventListener(typ domain.DOMEventType, l EventListener)
}

// Document is the page the widget runs in.
type Document interface {
	// QuerySelector returns the first element matching selector.
	// An invalid selector matches nothing.
	QuerySelector(selector string) (Element, bool)
	CreateElement(tag string) Element
	Body() Element
	AddEventListener(typ domain.DOMEventType, l EventListener)
}

// Window is the browsing context around a Document.
type Window interface {
	Document() Document
	// Viewport returns innerWidth and innerHeight.
	Viewport() domain.Size
	// Navigate assigns window.location.href.
	Navigate(url string)
	// RequestAnimationFrame schedules fn after the next layout.
	RequestAnimationFrame(fn func())
}
