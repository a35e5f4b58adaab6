// Package htmldom implements the widget DOM ports over an in-memory HTML tree.
package htmldom

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _ ports.Document = (*Document)(nil)

// Document is a parsed page. Element wrappers are cached per node so listeners
// stay attached to the same handle.
type Document struct {
	root      *html.Node
	elements  map[*html.Node]*Element
	listeners map[domain.DOMEventType][]ports.EventListener
	win       *Window
}

// ParseDocument parses page into a Document.
func ParseDocument(page []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPageParseFailed.Error())
	}
	return &Document{
		root:      root,
		elements:  make(map[*html.Node]*Element),
		listeners: make(map[domain.DOMEventType][]ports.EventListener),
	}, nil
}

// QuerySelector returns the first element in document order matching selector.
// Selectors that fail to compile match nothing.
func (d *Document) QuerySelector(selector string) (ports.Element, bool) {
	n := d.matchFirst(selector)
	if n == nil {
		return nil, false
	}
	return d.wrap(n), true
}

// Matches reports whether any element matches selector.
func (d *Document) Matches(selector string) bool {
	return d.matchFirst(selector) != nil
}

func (d *Document) matchFirst(selector string) *html.Node {
	sel, err := cascadia.Compile(strings.TrimSpace(selector))
	if err != nil {
		return nil
	}
	return sel.MatchFirst(d.root)
}

// QueryAll returns every element matching selector in document order.
func (d *Document) QueryAll(selector string) []*Element {
	sel, err := cascadia.Compile(strings.TrimSpace(selector))
	if err != nil {
		return nil
	}
	nodes := sel.MatchAll(d.root)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) ports.Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// Body returns the body element. html.Parse always synthesizes one.
func (d *Document) Body() ports.Element {
	n := d.matchFirst("body")
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// AddEventListener registers l on the document.
func (d *Document) AddEventListener(typ domain.DOMEventType, l ports.EventListener) {
	d.listeners[typ] = append(d.listeners[typ], l)
}

// Render serializes the current tree.
func (d *Document) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return nil, zerr.Wrap(err, "failed to render document")
	}
	return buf.Bytes(), nil
}

// ElementByID returns the element with the given id.
func (d *Document) ElementByID(id string) (*Element, bool) {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return d.wrap(found), true
}

func (d *Document) wrap(n *html.Node) *Element {
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{
		node:      n,
		doc:       d,
		listeners: make(map[domain.DOMEventType][]ports.EventListener),
	}
	d.elements[n] = el
	return el
}

func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val
		}
	}
	return ""
}
