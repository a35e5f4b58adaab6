// Package widget implements the logo interaction widget over an abstract DOM.
package widget

import (
	"strconv"
	"strings"
	"time"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
	"go.trai.ch/zerr"
)

// Markup identifiers of the context menu.
const (
	MenuID          = "logolink-context-menu"
	MenuClass       = "logolink-context-menu"
	HomeLinkClass   = "logolink-home-link"
	CustomLinkClass = "logolink-custom-link"
	HomeLabel       = "Homepage"
)

// menuZIndex keeps the menu above theme headers.
const menuZIndex = "99999"

// Menu look. The rules are inline so theme stylesheets cannot drop them.
var (
	menuStyle = [][2]string{
		{"background", "#fff"},
		{"border", "1px solid #ccc"},
		{"border-radius", "4px"},
		{"box-shadow", "0 2px 10px rgba(0, 0, 0, 0.2)"},
		{"padding", "8px 0"},
		{"min-width", "180px"},
		{"font-family", `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif`},
		{"font-size", "14px"},
	}
	linkStyle = [][2]string{
		{"display", "block"},
		{"padding", "8px 16px"},
		{"color", linkColor},
		{"background-color", linkRestBg},
		{"text-decoration", "none"},
		{"text-align", "left"},
		{"box-sizing", "border-box"},
	}
)

// Link colors at rest and under the pointer.
const (
	linkColor      = "#333"
	linkHoverColor = "#000"
	linkHoverBg    = "#f5f5f5"
	linkRestBg     = "transparent"
)

// Widget binds the click behaviors to one logo element.
type Widget struct {
	win  ports.Window
	cfg  domain.Payload
	logo ports.Element
	menu ports.Element

	state     domain.WidgetState
	menuState domain.MenuState
	origin    domain.Point
}

// New creates an unattached widget for win.
func New(win ports.Window) *Widget {
	return &Widget{win: win}
}

// State returns the attachment state.
func (w *Widget) State() domain.WidgetState {
	return w.state
}

// MenuState returns the context menu visibility.
func (w *Widget) MenuState() domain.MenuState {
	return w.menuState
}

// Menu returns the context menu element, or nil before the first right-click.
func (w *Widget) Menu() ports.Element {
	return w.menu
}

// Logo returns the attached logo element.
func (w *Widget) Logo() ports.Element {
	return w.logo
}

// Mount validates cfg, locates the logo and attaches to it.
func (w *Widget) Mount(cfg domain.Payload) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logo, selector, ok := Locate(w.win.Document(), cfg.LogoSelector, cfg.LogoSelectors)
	if !ok {
		return zerr.With(domain.ErrLogoNotFound, "preferred_selector", cfg.LogoSelector)
	}
	cfg.LogoSelector = selector

	return w.Attach(logo, cfg)
}

// Attach registers the listeners on logo. It fails closed: a missing logo or
// destination leaves the page untouched.
func (w *Widget) Attach(logo ports.Element, cfg domain.Payload) error {
	if w.state == domain.WidgetAttached {
		return domain.ErrWidgetAlreadyAttached
	}
	if logo == nil {
		return domain.ErrLogoNotFound
	}
	if strings.TrimSpace(cfg.RedirectURL) == "" {
		return domain.ErrDestinationMissing
	}

	w.cfg = cfg
	w.logo = logo

	logo.AddEventListener(domain.DOMContextMenu, w.onContextMenu)

	doc := w.win.Document()
	doc.AddEventListener(domain.DOMClick, w.onDocumentClick)
	doc.AddEventListener(domain.DOMKeyDown, w.onKeyDown)

	w.setupLeftClick()
	logo.SetAttribute("title", domain.TooltipText(cfg.RightClickType, cfg.CustomText))

	w.state = domain.WidgetAttached
	return nil
}

// Locate finds the logo element. The preferred selector is tried first, then
// the site's candidates in order, or the built-in list when the site sent none.
func Locate(doc ports.Document, preferred string, site []string) (ports.Element, string, bool) {
	candidates := domain.DefaultLogoSelectors
	if len(site) > 0 {
		candidates = site
	}
	if strings.TrimSpace(preferred) != "" {
		candidates = domain.BuildSelectorList(append([]string{preferred}, candidates...), nil)
	}

	var found ports.Element
	selector, ok := domain.ResolveSelector(candidates, nil, time.Time{}, domain.SelectorMatcherFunc(func(sel string) bool {
		el, hit := doc.QuerySelector(sel)
		if hit {
			found = el
		}
		return hit
	}))
	if !ok {
		return nil, "", false
	}
	return found, selector, true
}

func (w *Widget) setupLeftClick() {
	if w.logo.TagName() == "a" {
		w.logo.SetAttribute("href", w.cfg.HomeURL)
		return
	}

	w.logo.AddEventListener(domain.DOMClick, func(evt *ports.DOMEvent) {
		if evt.Button == domain.ButtonPrimary {
			w.win.Navigate(w.cfg.HomeURL)
		}
	})
}

func (w *Widget) onContextMenu(evt *ports.DOMEvent) {
	evt.PreventDefault()

	if w.cfg.EffectivePresentation() == domain.PresentationRedirect {
		w.win.Navigate(w.cfg.RedirectURL)
		return
	}

	w.showMenu(domain.Point{X: evt.PageX, Y: evt.PageY})
}

func (w *Widget) onDocumentClick(evt *ports.DOMEvent) {
	if w.menu == nil {
		return
	}
	if evt.Target != nil && w.menu.Contains(evt.Target) {
		return
	}
	w.hideMenu()
}

func (w *Widget) onKeyDown(evt *ports.DOMEvent) {
	if evt.Key == domain.KeyEscape && w.menu != nil {
		w.hideMenu()
	}
}

// ensureMenu creates the menu on first use and reuses it afterwards.
func (w *Widget) ensureMenu() ports.Element {
	if w.menu != nil {
		return w.menu
	}

	doc := w.win.Document()
	menu := doc.CreateElement("div")
	menu.SetAttribute("id", MenuID)
	menu.SetAttribute("class", MenuClass)
	menu.SetAttribute("role", "menu")
	menu.SetStyle("position", "absolute")
	menu.SetStyle("z-index", menuZIndex)
	menu.SetStyle("display", "none")
	setStyles(menu, menuStyle)

	menu.AppendChild(menuLink(doc, w.cfg.HomeURL, HomeLabel, HomeLinkClass))
	menu.AppendChild(menuLink(doc, w.cfg.RedirectURL, w.cfg.MenuLabel, CustomLinkClass))

	doc.Body().AppendChild(menu)
	w.menu = menu
	return menu
}

func menuLink(doc ports.Document, href, label, class string) ports.Element {
	a := doc.CreateElement("a")
	a.SetAttribute("href", href)
	a.SetAttribute("class", class)
	a.SetAttribute("role", "menuitem")
	setStyles(a, linkStyle)
	a.SetText(label)

	a.AddEventListener(domain.DOMMouseEnter, func(*ports.DOMEvent) {
		a.SetStyle("background-color", linkHoverBg)
		a.SetStyle("color", linkHoverColor)
	})
	a.AddEventListener(domain.DOMMouseLeave, func(*ports.DOMEvent) {
		a.SetStyle("background-color", linkRestBg)
		a.SetStyle("color", linkColor)
	})
	return a
}

func setStyles(el ports.Element, decls [][2]string) {
	for _, d := range decls {
		el.SetStyle(d[0], d[1])
	}
}

func (w *Widget) showMenu(at domain.Point) {
	menu := w.ensureMenu()
	w.origin = at

	menu.SetStyle("left", px(at.X))
	menu.SetStyle("top", px(at.Y))
	menu.SetStyle("display", "block")
	w.menuState = domain.MenuVisible

	w.win.RequestAnimationFrame(func() {
		if w.menuState != domain.MenuVisible || w.origin != at {
			return
		}
		pos := domain.AdjustMenuPosition(at, menu.BoundingRect(), w.win.Viewport())
		if pos.X != at.X {
			menu.SetStyle("left", px(pos.X))
		}
		if pos.Y != at.Y {
			menu.SetStyle("top", px(pos.Y))
		}
	})
}

func (w *Widget) hideMenu() {
	w.menu.SetStyle("display", "none")
	w.menuState = domain.MenuHidden
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
