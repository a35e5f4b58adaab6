package htmldom

import (
	"strconv"
	"strings"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
	"golang.org/x/net/html"
)

var _ ports.Element = (*Element)(nil)

// Element wraps an *html.Node.
type Element struct {
	node      *html.Node
	doc       *Document
	listeners map[domain.DOMEventType][]ports.EventListener
}

// Node returns the underlying node.
func (e *Element) Node() *html.Node {
	return e.node
}

// TagName returns the lower-case tag name.
func (e *Element) TagName() string {
	return strings.ToLower(e.node.Data)
}

// Attribute returns the value of name and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets or replaces name.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// SetText replaces the children with a single text node.
func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text returns the concatenated text content.
func (e *Element) Text() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

// AppendChild moves child to the end of e's children.
func (e *Element) AppendChild(child ports.Element) {
	c, ok := child.(*Element)
	if !ok || c == nil {
		return
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other ports.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	for n := o.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

// SetStyle sets one inline style property, keeping the others in order.
func (e *Element) SetStyle(property, value string) {
	decls := parseStyle(attr(e.node, "style"))
	replaced := false
	for i := range decls {
		if decls[i][0] == property {
			decls[i][1] = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, [2]string{property, value})
	}
	e.SetAttribute("style", formatStyle(decls))
}

// Style returns one inline style property.
func (e *Element) Style(property string) string {
	for _, d := range parseStyle(attr(e.node, "style")) {
		if d[0] == property {
			return d[1]
		}
	}
	return ""
}

// BoundingRect returns the inline left/top position and the measured size.
// Page and viewport coordinates coincide since the document never scrolls.
func (e *Element) BoundingRect() domain.Rect {
	size := e.doc.measure(e)
	return domain.Rect{
		Left:   parsePx(e.Style("left")),
		Top:    parsePx(e.Style("top")),
		Width:  size.Width,
		Height: size.Height,
	}
}

// AddEventListener registers l on the element.
func (e *Element) AddEventListener(typ domain.DOMEventType, l ports.EventListener) {
	e.listeners[typ] = append(e.listeners[typ], l)
}

func parseStyle(s string) [][2]string {
	var decls [][2]string
	for _, part := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		decls = append(decls, [2]string{k, strings.TrimSpace(v)})
	}
	return decls
}

func formatStyle(decls [][2]string) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d[0]+": "+d[1])
	}
	return strings.Join(parts, "; ")
}

func parsePx(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil {
		return 0
	}
	return f
}
