//go:build js && wasm

// Package jsdom adapts the browser DOM to the widget ports through syscall/js.
package jsdom

import (
	"syscall/js"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
)

var (
	_ ports.Window   = (*Window)(nil)
	_ ports.Document = (*Document)(nil)
	_ ports.Element  = (*Element)(nil)
)

// Window wraps the global window object.
type Window struct {
	v   js.Value
	doc *Document
}

// Global returns the Window of the running page.
func Global() *Window {
	v := js.Global()
	return &Window{v: v, doc: &Document{v: v.Get("document")}}
}

// Document returns window.document.
func (w *Window) Document() ports.Document {
	return w.doc
}

// Viewport returns innerWidth and innerHeight.
func (w *Window) Viewport() domain.Size {
	return domain.Size{
		Width:  w.v.Get("innerWidth").Float(),
		Height: w.v.Get("innerHeight").Float(),
	}
}

// Navigate assigns window.location.href.
func (w *Window) Navigate(url string) {
	w.v.Get("location").Set("href", url)
}

// RequestAnimationFrame runs fn once after the next layout.
func (w *Window) RequestAnimationFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	w.v.Call("requestAnimationFrame", cb)
}

// Document wraps a browser document.
type Document struct {
	v js.Value
}

// QuerySelector returns the first match. querySelector throws on an invalid
// selector, which counts as no match.
func (d *Document) QuerySelector(selector string) (el ports.Element, ok bool) {
	defer func() {
		if recover() != nil {
			el, ok = nil, false
		}
	}()

	v := d.v.Call("querySelector", selector)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &Element{v: v}, true
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) ports.Element {
	return &Element{v: d.v.Call("createElement", tag)}
}

// Body returns document.body.
func (d *Document) Body() ports.Element {
	return &Element{v: d.v.Get("body")}
}

// AddEventListener registers l on the document.
func (d *Document) AddEventListener(typ domain.DOMEventType, l ports.EventListener) {
	listen(d.v, typ, l)
}

// Element wraps a browser element.
type Element struct {
	v js.Value
}

// TagName returns the lower-case tag name.
func (e *Element) TagName() string {
	return e.v.Get("localName").String()
}

// Attribute returns the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

// SetAttribute sets the named attribute.
func (e *Element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

// Text returns textContent.
func (e *Element) Text() string {
	return e.v.Get("textContent").String()
}

// SetText replaces the children with text.
func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

// AppendChild appends child, which must come from this package.
func (e *Element) AppendChild(child ports.Element) {
	if c, ok := child.(*Element); ok {
		e.v.Call("appendChild", c.v)
	}
}

// Contains calls Node.contains.
func (e *Element) Contains(other ports.Element) bool {
	o, ok := other.(*Element)
	if !ok {
		return false
	}
	return e.v.Call("contains", o.v).Bool()
}

// SetStyle sets an inline style property.
func (e *Element) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

// Style returns an inline style property.
func (e *Element) Style(property string) string {
	return e.v.Get("style").Call("getPropertyValue", property).String()
}

// BoundingRect calls getBoundingClientRect.
func (e *Element) BoundingRect() domain.Rect {
	r := e.v.Call("getBoundingClientRect")
	return domain.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

// AddEventListener registers l on the element.
func (e *Element) AddEventListener(typ domain.DOMEventType, l ports.EventListener) {
	listen(e.v, typ, l)
}

// listen bridges a browser event to l. The callback lives as long as the page.
func listen(target js.Value, typ domain.DOMEventType, l ports.EventListener) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		evt := args[0]

		de := &ports.DOMEvent{Type: typ}
		if v := evt.Get("button"); v.Type() == js.TypeNumber {
			de.Button = v.Int()
		}
		if v := evt.Get("pageX"); v.Type() == js.TypeNumber {
			de.PageX = v.Float()
			de.PageY = evt.Get("pageY").Float()
		}
		if v := evt.Get("key"); v.Type() == js.TypeString {
			de.Key = v.String()
		}
		if v := evt.Get("target"); v.Type() == js.TypeObject {
			de.Target = &Element{v: v}
		}

		l(de)

		if de.DefaultPrevented() {
			evt.Call("preventDefault")
		}
		return nil
	})
	target.Call("addEventListener", string(typ), cb)
}
