// Package app implements the application layer for logolink.
package app

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/logolink/internal/adapters/detector"
	"go.trai.ch/logolink/internal/adapters/httpserver"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ httpserver.Service = (*App)(nil)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	stores       ports.OptionStoreFactory
	cache        ports.SelectorCache
	scanner      ports.PageScanner
	injector     ports.ScriptInjector
	prober       ports.URLProber
	bus          ports.EventBus
	monitor      ports.ThemeMonitor
	tracer       ports.Tracer
	logger       ports.Logger

	mu    sync.RWMutex
	cfg   domain.SiteConfig
	store ports.OptionStore
	getwd func() (string, error)

	teaOptions []tea.ProgramOption
}

// New creates a new App instance and subscribes it to the cache-invalidating events.
func New(
	loader ports.ConfigLoader,
	stores ports.OptionStoreFactory,
	cache ports.SelectorCache,
	scanner ports.PageScanner,
	injector ports.ScriptInjector,
	prober ports.URLProber,
	bus ports.EventBus,
	monitor ports.ThemeMonitor,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	a := &App{
		configLoader: loader,
		stores:       stores,
		cache:        cache,
		scanner:      scanner,
		injector:     injector,
		prober:       prober,
		bus:          bus,
		monitor:      monitor,
		tracer:       tracer,
		logger:       log,
		cfg:          domain.DefaultSiteConfig(),
		getwd:        os.Getwd,
	}

	for _, evt := range domain.InvalidatingEvents {
		bus.Subscribe(evt, a.onInvalidate)
	}

	return a
}

// WithTeaOptions sets the options for the settings editor program.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithWorkDir pins the directory used for config discovery.
func (a *App) WithWorkDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// Configure loads the site configuration. An empty path discovers logolink.yaml
// upward from the working directory; without one the built-in defaults apply
// and the working directory is served.
func (a *App) Configure(path string) error {
	var (
		cfg domain.SiteConfig
		err error
	)

	if path == "" {
		cfg, err = a.discover()
	} else {
		cfg, err = a.configLoader.Load(path)
	}
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	a.mu.Lock()
	a.cfg = cfg
	a.store = nil
	a.mu.Unlock()
	return nil
}

func (a *App) discover() (domain.SiteConfig, error) {
	cwd, err := a.getwd()
	if err != nil {
		return domain.SiteConfig{}, zerr.Wrap(err, "failed to get working directory")
	}

	found, err := a.configLoader.Discover(cwd)
	if err != nil {
		return domain.SiteConfig{}, err
	}
	if found != "" {
		return a.configLoader.Load(found)
	}

	cfg := domain.DefaultSiteConfig()
	cfg.Root = cwd
	cfg.OptionsPath = filepath.Join(cwd, domain.DefaultOptionsPath())
	return cfg, nil
}

// ConfigureLogging switches the logger between pretty and JSON output.
// "auto" picks JSON when stderr is not a terminal or CI is set.
func (a *App) ConfigureLogging(format string) error {
	if !detector.ValidFormat(format) {
		return zerr.With(domain.ErrInvalidLogFormat, "format", format)
	}

	resolved := detector.ResolveFormat(detector.DetectEnvironment(), format)
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(resolved == detector.FormatJSON)
	}
	return nil
}

// Config returns the active site configuration.
func (a *App) Config() domain.SiteConfig {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// options returns the option store of the active configuration, opening it on first use.
func (a *App) options() ports.OptionStore {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store == nil {
		a.store = a.stores.Open(a.cfg.OptionsPath)
	}
	return a.store
}

// Publish forwards a lifecycle event to the bus.
func (a *App) Publish(ctx context.Context, evt domain.LifecycleEvent) {
	a.bus.Publish(ctx, evt)
}

func (a *App) onInvalidate(_ context.Context, evt domain.LifecycleEvent) {
	a.cache.Invalidate()
	a.logger.Info(fmt.Sprintf("%s: cleared cached logo selector", evt))
}

// CachedSelector returns the detected logo selector if one is cached.
func (a *App) CachedSelector() (domain.CachedSelector, bool) {
	return a.cache.Get()
}

// InvalidateSelectorCache drops the cached logo selector.
func (a *App) InvalidateSelectorCache() {
	a.cache.Invalidate()
}

// ResolveLogoSelector returns the logo selector for page. An unexpired cached
// selector is returned without parsing the page. A fresh detection is cached.
func (a *App) ResolveLogoSelector(_ context.Context, page []byte) (string, bool) {
	var cached *domain.CachedSelector
	if entry, ok := a.cache.Get(); ok {
		cached = &entry
	}

	var (
		matcher domain.SelectorMatcher
		scanned bool
	)
	lazy := domain.SelectorMatcherFunc(func(selector string) bool {
		if !scanned {
			scanned = true
			m, err := a.scanner.Scan(page)
			if err != nil {
				a.logger.Warn("logo detection skipped: " + err.Error())
				return false
			}
			matcher = m
		}
		return matcher != nil && matcher.Matches(selector)
	})

	selector, ok := domain.ResolveSelector(a.Config().Selectors, cached, time.Now(), lazy)
	if ok && cached == nil {
		a.cache.Set(selector)
	}
	return selector, ok
}

// Probe checks that rawURL answers. Root-relative URLs are resolved against the home URL.
func (a *App) Probe(ctx context.Context, rawURL string) domain.ProbeResult {
	ctx, span := a.tracer.Start(ctx, "probe")
	defer span.End()

	target := a.resolveAgainstHome(strings.TrimSpace(rawURL))
	span.SetAttribute("url", target)

	result := a.prober.Probe(ctx, target)
	span.SetAttribute("status", string(result.Status))
	if result.StatusCode != 0 {
		span.SetAttribute("status_code", result.StatusCode)
	}
	return result
}

func (a *App) resolveAgainstHome(raw string) string {
	if !domain.IsRootRelativeURL(raw) {
		return raw
	}
	home := a.Config().HomeURL
	if !domain.IsAbsoluteURL(home) {
		return raw
	}
	base, err := url.Parse(home)
	if err != nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return base.ResolveReference(ref).String()
}

// Serve runs the HTTP front and the theme watcher until ctx is done.
func (a *App) Serve(ctx context.Context) error {
	defer func() {
		_ = a.tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	cfg := a.Config()
	srv, err := httpserver.New(cfg, a, a.logger)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.ListenAndServe(ctx)
	})

	if cfg.ThemeDir != "" {
		g.Go(func() error {
			// A broken watcher only costs automatic invalidation.
			if err := a.monitor.Run(ctx, cfg.ThemeDir); err != nil {
				a.logger.Error(err)
			}
			return nil
		})
	}

	a.bus.Publish(ctx, domain.EventReady)

	return g.Wait()
}
