package htmldom_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logolink/internal/adapters/htmldom"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
)

const page = `<!doctype html>
<html><head><title>Site</title></head>
<body>
<header class="masthead">
  <div class="theme-logo-wrap"><a href="/old" id="brand">Brand</a></div>
</header>
<main><p id="para">Hello</p></main>
</body></html>`

func TestDocument_QuerySelector(t *testing.T) {
	doc, err := htmldom.ParseDocument([]byte(page))
	require.NoError(t, err)

	el, ok := doc.QuerySelector(`[class*="logo"] a`)
	require.True(t, ok)
	id, _ := el.Attribute("id")
	assert.Equal(t, "brand", id)
	assert.Equal(t, "a", el.TagName())

	_, ok = doc.QuerySelector(".site-logo")
	assert.False(t, ok)

	_, ok = doc.QuerySelector("a[")
	assert.False(t, ok, "invalid selectors match nothing")

	again, ok := doc.QuerySelector("#brand")
	require.True(t, ok)
	assert.Same(t, el, again, "wrappers are stable per node")
}

func TestDocument_Matches(t *testing.T) {
	doc, err := htmldom.ParseDocument([]byte(page))
	require.NoError(t, err)

	got, ok := domain.ResolveSelector(domain.DefaultLogoSelectors, nil, time.Time{}, doc)
	require.True(t, ok)
	assert.Equal(t, `[class*="logo"] a`, got)
}

func TestElement_Style(t *testing.T) {
	doc, err := htmldom.ParseDocument([]byte(page))
	require.NoError(t, err)

	el := doc.CreateElement("DIV")
	assert.Equal(t, "div", el.TagName())

	el.SetStyle("display", "none")
	el.SetStyle("left", "10px")
	el.SetStyle("display", "block")

	assert.Equal(t, "block", el.Style("display"))
	assert.Equal(t, "10px", el.Style("left"))
	assert.Empty(t, el.Style("top"))
	style, _ := el.Attribute("style")
	assert.Equal(t, "display: block; left: 10px", style)
}

func TestElement_TreeOperations(t *testing.T) {
	doc, err := htmldom.ParseDocument([]byte(page))
	require.NoError(t, err)

	menu := doc.CreateElement("div")
	link := doc.CreateElement("a")
	link.SetText(`<b>bold</b> & co`)
	menu.AppendChild(link)
	doc.Body().AppendChild(menu)

	assert.True(t, menu.Contains(link))
	assert.True(t, menu.Contains(menu))
	assert.False(t, link.Contains(menu))

	para, ok := doc.QuerySelector("#para")
	require.True(t, ok)
	assert.False(t, menu.Contains(para))
	assert.False(t, menu.Contains(nil))

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Contains(t, string(out), "&lt;b&gt;bold&lt;/b&gt; &amp; co")
}

func TestWindow_DispatchBubbles(t *testing.T) {
	win, err := htmldom.Open([]byte(page))
	require.NoError(t, err)
	doc := win.Doc()

	var order []string
	wrap, ok := doc.QuerySelector(".theme-logo-wrap")
	require.True(t, ok)
	brand, ok := doc.QuerySelector("#brand")
	require.True(t, ok)

	brand.AddEventListener(domain.DOMContextMenu, func(*ports.DOMEvent) { order = append(order, "brand") })
	wrap.AddEventListener(domain.DOMContextMenu, func(*ports.DOMEvent) { order = append(order, "wrap") })
	doc.AddEventListener(domain.DOMContextMenu, func(evt *ports.DOMEvent) {
		order = append(order, "document")
		assert.Same(t, brand, evt.Target)
	})

	win.RightClick(brand, domain.Point{X: 5, Y: 5})

	assert.Equal(t, []string{"brand", "wrap", "document"}, order)
	assert.Equal(t, 1, win.NativeMenus())
}

func TestWindow_ClickFollowsLinks(t *testing.T) {
	win, err := htmldom.Open([]byte(page))
	require.NoError(t, err)

	brand, ok := win.Document().QuerySelector("#brand")
	require.True(t, ok)

	win.Click(brand, domain.ButtonSecondary)
	_, navigated := win.LastNavigation()
	assert.False(t, navigated)

	win.Click(brand, domain.ButtonPrimary)
	got, navigated := win.LastNavigation()
	assert.True(t, navigated)
	assert.Equal(t, "/old", got)

	brand.AddEventListener(domain.DOMClick, func(evt *ports.DOMEvent) { evt.PreventDefault() })
	win.Click(brand, domain.ButtonPrimary)
	assert.Len(t, win.Navigations(), 1)
}

func TestWindow_Frames(t *testing.T) {
	win, err := htmldom.Open([]byte(page), htmldom.WithViewport(domain.Size{Width: 300, Height: 200}))
	require.NoError(t, err)
	assert.Equal(t, domain.Size{Width: 300, Height: 200}, win.Viewport())

	var ran []int
	win.RequestAnimationFrame(func() {
		ran = append(ran, 1)
		win.RequestAnimationFrame(func() { ran = append(ran, 2) })
	})

	assert.Equal(t, 1, win.PendingFrames())
	assert.Equal(t, 2, win.Flush())
	assert.Equal(t, []int{1, 2}, ran)
	assert.Zero(t, win.PendingFrames())
}

func TestElement_BoundingRect(t *testing.T) {
	win, err := htmldom.Open([]byte(page), htmldom.WithMeasure(func(*htmldom.Element) domain.Size {
		return domain.Size{Width: 120, Height: 40}
	}))
	require.NoError(t, err)

	el := win.Document().CreateElement("div")
	el.SetStyle("left", "15.5px")
	el.SetStyle("top", "30px")

	assert.Equal(t, domain.Rect{Left: 15.5, Top: 30, Width: 120, Height: 40}, el.BoundingRect())
}

func TestScanner_Scan(t *testing.T) {
	m, err := htmldom.NewScanner().Scan([]byte(page))
	require.NoError(t, err)
	assert.True(t, m.Matches("header.masthead"))
	assert.False(t, m.Matches(".navbar-brand"))
}
