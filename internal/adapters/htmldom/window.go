package htmldom

import (
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
)

var _ ports.Window = (*Window)(nil)

// DefaultViewport is the viewport used when none is configured.
var DefaultViewport = domain.Size{Width: 1280, Height: 800}

// DefaultElementSize is the laid-out size reported for every element unless a
// MeasureFunc is configured.
var DefaultElementSize = domain.Size{Width: 180, Height: 88}

// maxFrames bounds Flush when callbacks keep scheduling frames.
const maxFrames = 64

// MeasureFunc reports the laid-out size of an element.
type MeasureFunc func(el *Element) domain.Size

// Option configures a Window.
type Option func(*Window)

// WithViewport sets innerWidth and innerHeight.
func WithViewport(size domain.Size) Option {
	return func(w *Window) {
		w.viewport = size
	}
}

// WithMeasure replaces the layout measurement.
func WithMeasure(fn MeasureFunc) Option {
	return func(w *Window) {
		w.measure = fn
	}
}

// Window is a headless browsing context. Animation frames are queued until
// Flush, and navigations are recorded instead of performed.
type Window struct {
	doc         *Document
	viewport    domain.Size
	measure     MeasureFunc
	frames      []func()
	navigations []string
	nativeMenus int
}

// Open parses page and returns a Window around it.
func Open(page []byte, opts ...Option) (*Window, error) {
	doc, err := ParseDocument(page)
	if err != nil {
		return nil, err
	}
	w := &Window{doc: doc, viewport: DefaultViewport}
	for _, opt := range opts {
		opt(w)
	}
	doc.win = w
	return w, nil
}

// Document returns the page.
func (w *Window) Document() ports.Document {
	return w.doc
}

// Doc returns the concrete page.
func (w *Window) Doc() *Document {
	return w.doc
}

// Viewport returns the configured viewport size.
func (w *Window) Viewport() domain.Size {
	return w.viewport
}

// Navigate records a navigation to url.
func (w *Window) Navigate(url string) {
	w.navigations = append(w.navigations, url)
}

// Navigations returns every recorded navigation in order.
func (w *Window) Navigations() []string {
	return append([]string(nil), w.navigations...)
}

// LastNavigation returns the most recent navigation.
func (w *Window) LastNavigation() (string, bool) {
	if len(w.navigations) == 0 {
		return "", false
	}
	return w.navigations[len(w.navigations)-1], true
}

// NativeMenus counts context menu events whose default action was not prevented.
func (w *Window) NativeMenus() int {
	return w.nativeMenus
}

// RequestAnimationFrame queues fn until the next Flush.
func (w *Window) RequestAnimationFrame(fn func()) {
	w.frames = append(w.frames, fn)
}

// PendingFrames returns the number of queued frame callbacks.
func (w *Window) PendingFrames() int {
	return len(w.frames)
}

// Flush runs queued frame callbacks, including ones they schedule, and
// returns how many ran.
func (w *Window) Flush() int {
	ran := 0
	for len(w.frames) > 0 && ran < maxFrames {
		fn := w.frames[0]
		w.frames = w.frames[1:]
		fn()
		ran++
	}
	return ran
}

// Dispatch delivers evt to target and bubbles it through the ancestors to the
// document. A primary click that nobody prevented follows the nearest link.
func (w *Window) Dispatch(target ports.Element, evt *ports.DOMEvent) {
	el, _ := target.(*Element)
	if evt.Target == nil && el != nil {
		evt.Target = el
	}

	if el != nil {
		for n := el.node; n != nil; n = n.Parent {
			wrapped, ok := w.doc.elements[n]
			if !ok {
				continue
			}
			for _, l := range wrapped.listeners[evt.Type] {
				l(evt)
			}
		}
	}
	for _, l := range w.doc.listeners[evt.Type] {
		l(evt)
	}

	if evt.DefaultPrevented() {
		return
	}

	switch evt.Type {
	case domain.DOMContextMenu:
		w.nativeMenus++
	case domain.DOMClick:
		if evt.Button == domain.ButtonPrimary && el != nil {
			if href, ok := nearestLink(el); ok {
				w.Navigate(href)
			}
		}
	}
}

// RightClick dispatches a contextmenu event at page coordinates.
func (w *Window) RightClick(target ports.Element, at domain.Point) *ports.DOMEvent {
	evt := &ports.DOMEvent{Type: domain.DOMContextMenu, Button: domain.ButtonSecondary, PageX: at.X, PageY: at.Y}
	w.Dispatch(target, evt)
	return evt
}

// Click dispatches a click event with the given button.
func (w *Window) Click(target ports.Element, button int) *ports.DOMEvent {
	evt := &ports.DOMEvent{Type: domain.DOMClick, Button: button}
	w.Dispatch(target, evt)
	return evt
}

// Hover dispatches mouseenter on target, or mouseleave when over is false.
func (w *Window) Hover(target ports.Element, over bool) *ports.DOMEvent {
	typ := domain.DOMMouseLeave
	if over {
		typ = domain.DOMMouseEnter
	}
	evt := &ports.DOMEvent{Type: typ}
	w.Dispatch(target, evt)
	return evt
}

// KeyDown dispatches a keydown event on the body.
func (w *Window) KeyDown(key string) *ports.DOMEvent {
	evt := &ports.DOMEvent{Type: domain.DOMKeyDown, Key: key}
	w.Dispatch(w.doc.Body(), evt)
	return evt
}

func (d *Document) measure(el *Element) domain.Size {
	if d.win != nil && d.win.measure != nil {
		return d.win.measure(el)
	}
	return DefaultElementSize
}

func nearestLink(el *Element) (string, bool) {
	for n := el.node; n != nil; n = n.Parent {
		if n.Data == "a" {
			if href := attr(n, "href"); href != "" {
				return href, true
			}
		}
	}
	return "", false
}
