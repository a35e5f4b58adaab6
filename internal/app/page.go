package app

import (
	"context"

	"go.trai.ch/logolink/internal/core/domain"
)

// Payload builds the widget payload. page is scanned for the logo when the
// selector is not cached; a nil page uses the cache only. The second result is
// false when the widget must not be attached.
func (a *App) Payload(ctx context.Context, page []byte) (domain.Payload, bool, error) {
	settings, err := a.Settings()
	if err != nil {
		return domain.Payload{}, false, err
	}

	cfg := a.Config()
	if !domain.ShouldAttachWidget(settings, cfg.MediaLibraryURL) {
		return domain.Payload{}, false, nil
	}

	var selector string
	if page != nil {
		selector, _ = a.ResolveLogoSelector(ctx, page)
	} else if entry, ok := a.cache.Get(); ok {
		selector = entry.Value
	}

	p, ok := domain.BuildPayload(settings, domain.PayloadInput{
		HomeURL:             cfg.HomeURL,
		MediaLibraryURL:     cfg.MediaLibraryURL,
		LogoSelector:        selector,
		Selectors:           cfg.Selectors,
		DefaultPresentation: cfg.DefaultPresentation,
	})
	return p, ok, nil
}

// RenderPage returns page with the widget payload and bootstrap injected.
// The page is returned unchanged when the widget is gated off or the page has
// no closing body tag. On error the original page is returned alongside it.
func (a *App) RenderPage(ctx context.Context, page []byte) ([]byte, error) {
	ctx, span := a.tracer.Start(ctx, "page.render")
	defer span.End()

	p, ok, err := a.Payload(ctx, page)
	if err != nil {
		span.RecordError(err)
		return page, err
	}
	if !ok {
		span.SetAttribute("injected", false)
		return page, nil
	}

	out, injected, err := a.injector.Inject(page, p, a.Config().ScriptBasePath)
	if err != nil {
		span.RecordError(err)
		return page, err
	}

	span.SetAttribute("injected", injected)
	if p.LogoSelector != "" {
		span.SetAttribute("selector", p.LogoSelector)
	}
	return out, nil
}
