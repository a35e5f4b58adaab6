package app

import (
	"context"

	"go.trai.ch/logolink/internal/adapters/htmldom"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/engine/widget"
	"go.trai.ch/zerr"
)

// PreviewOptions lists the visitor interactions replayed on a rendered page.
type PreviewOptions struct {
	Viewport   domain.Size
	LeftClick  bool
	RightClick *domain.Point
	Escape     bool
}

// PreviewReport describes what a visitor would see.
type PreviewReport struct {
	Injected    bool
	Payload     domain.Payload
	Selector    string
	Tooltip     string
	Menu        domain.MenuState
	MenuLeft    string
	MenuTop     string
	Navigations []string
	NativeMenus int
}

// Preview renders page, mounts the widget on it in a headless window and
// replays the requested interactions: left-click, right-click, then Escape.
func (a *App) Preview(ctx context.Context, page []byte, opts PreviewOptions) (PreviewReport, error) {
	rendered, err := a.RenderPage(ctx, page)
	if err != nil {
		return PreviewReport{}, err
	}

	viewport := opts.Viewport
	if viewport == (domain.Size{}) {
		viewport = htmldom.DefaultViewport
	}
	win, err := htmldom.Open(rendered, htmldom.WithViewport(viewport))
	if err != nil {
		return PreviewReport{}, err
	}

	var report PreviewReport
	script, ok := win.Doc().ElementByID(domain.PayloadElementID)
	if !ok {
		return report, nil
	}
	report.Injected = true

	p, err := domain.ParsePayload([]byte(script.Text()))
	if err != nil {
		return report, err
	}
	report.Payload = p

	logo, selector, ok := widget.Locate(win.Document(), p.LogoSelector, p.LogoSelectors)
	if !ok {
		return report, zerr.With(domain.ErrLogoNotFound, "preferred_selector", p.LogoSelector)
	}
	report.Selector = selector

	w := widget.New(win)
	if err := w.Attach(logo, p); err != nil {
		return report, err
	}
	report.Tooltip, _ = logo.Attribute("title")

	if opts.LeftClick {
		win.Click(logo, domain.ButtonPrimary)
	}
	if opts.RightClick != nil {
		win.RightClick(logo, *opts.RightClick)
		win.Flush()
	}
	if opts.Escape {
		win.KeyDown(domain.KeyEscape)
	}

	report.Menu = w.MenuState()
	if menu := w.Menu(); menu != nil {
		report.MenuLeft = menu.Style("left")
		report.MenuTop = menu.Style("top")
	}
	report.Navigations = win.Navigations()
	report.NativeMenus = win.NativeMenus()
	return report, nil
}
