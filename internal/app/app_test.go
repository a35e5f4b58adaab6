package app_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logolink/internal/adapters/eventbus"
	"go.trai.ch/logolink/internal/adapters/htmldom"
	"go.trai.ch/logolink/internal/adapters/injector"
	"go.trai.ch/logolink/internal/adapters/optionstore"
	"go.trai.ch/logolink/internal/adapters/selectorcache"
	"go.trai.ch/logolink/internal/adapters/telemetry"
	"go.trai.ch/logolink/internal/app"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
	"go.trai.ch/logolink/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const logoPage = `<html><head><title>Site</title></head><body>` +
	`<header><div class="site-logo"><a href="/">Brand</a></div></header>` +
	`<main>Hello</main></body></html>`

// memFactory hands out one shared MemoryStore and records the opened paths.
type memFactory struct {
	store *optionstore.MemoryStore
	paths []string
}

func (f *memFactory) Open(path string) ports.OptionStore {
	f.paths = append(f.paths, path)
	return f.store
}

type fixture struct {
	app     *app.App
	store   *optionstore.MemoryStore
	stores  *memFactory
	cache   *selectorcache.Cache
	loader  *mocks.MockConfigLoader
	prober  *mocks.MockURLProber
	monitor *mocks.MockThemeMonitor
	logger  *mocks.MockLogger
	bus     *eventbus.Bus
}

func newFixture(t *testing.T, initial map[string]string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:   optionstore.NewMemoryStore(initial),
		cache:   selectorcache.New(domain.SelectorCacheTTL),
		loader:  mocks.NewMockConfigLoader(ctrl),
		prober:  mocks.NewMockURLProber(ctrl),
		monitor: mocks.NewMockThemeMonitor(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		bus:     eventbus.New(),
	}
	f.stores = &memFactory{store: f.store}
	f.app = app.New(
		f.loader,
		f.stores,
		f.cache,
		htmldom.NewScanner(),
		injector.New(),
		f.prober,
		f.bus,
		f.monitor,
		telemetry.NewNoOpTracer(),
		f.logger,
	)
	return f
}

func TestApp_Configure(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		f := newFixture(t, nil)
		want := domain.SiteConfig{HomeURL: "https://example.com/", OptionsPath: "/srv/site/.logolink/options.yaml"}.WithDefaults()
		f.loader.EXPECT().Load("/srv/site/logolink.yaml").Return(want, nil)

		require.NoError(t, f.app.Configure("/srv/site/logolink.yaml"))
		assert.Equal(t, want, f.app.Config())

		_, err := f.app.Settings()
		require.NoError(t, err)
		assert.Equal(t, []string{want.OptionsPath}, f.stores.paths)
	})

	t.Run("discovered file", func(t *testing.T) {
		f := newFixture(t, nil)
		dir := t.TempDir()
		found := filepath.Join(dir, domain.ConfigFileName)
		f.loader.EXPECT().Discover(dir).Return(found, nil)
		f.loader.EXPECT().Load(found).Return(domain.DefaultSiteConfig(), nil)

		require.NoError(t, f.app.WithWorkDir(dir).Configure(""))
	})

	t.Run("no file uses defaults", func(t *testing.T) {
		f := newFixture(t, nil)
		dir := t.TempDir()
		f.loader.EXPECT().Discover(dir).Return("", nil)

		require.NoError(t, f.app.WithWorkDir(dir).Configure(""))

		cfg := f.app.Config()
		assert.Equal(t, dir, cfg.Root)
		assert.Equal(t, filepath.Join(dir, ".logolink", "options.yaml"), cfg.OptionsPath)
		assert.Equal(t, domain.DefaultListenAddr, cfg.ListenAddr)
	})

	t.Run("load error", func(t *testing.T) {
		f := newFixture(t, nil)
		f.loader.EXPECT().Load("broken.yaml").Return(domain.SiteConfig{}, domain.ErrConfigParseFailed)

		err := f.app.Configure("broken.yaml")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
	})
}

// jsonLogger records SetJSON calls.
type jsonLogger struct {
	*mocks.MockLogger
	json []bool
}

func (l *jsonLogger) SetJSON(enable bool) { l.json = append(l.json, enable) }

func TestApp_ConfigureLogging(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := &jsonLogger{MockLogger: mocks.NewMockLogger(ctrl)}
	a := app.New(nil, nil, nil, nil, nil, nil, eventbus.New(), nil, telemetry.NewNoOpTracer(), log)

	require.NoError(t, a.ConfigureLogging("json"))
	require.NoError(t, a.ConfigureLogging("pretty"))
	assert.Equal(t, []bool{true, false}, log.json)

	err := a.ConfigureLogging("xml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidLogFormat.Error())
}

func TestApp_SaveSettings(t *testing.T) {
	f := newFixture(t, nil)
	f.cache.Set(".stale")
	gomock.InOrder(
		f.logger.EXPECT().Info("settings saved"),
		f.logger.EXPECT().Info("settings-saved: cleared cached logo selector"),
	)

	saved, err := f.app.SaveSettings(t.Context(), domain.Settings{
		Mode:       "CUSTOM",
		CustomURL:  " https://example.com/portfolio ",
		CustomText: "<em>View</em> Portfolio",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ModeCustom, saved.Mode)
	assert.Equal(t, map[string]string{
		domain.OptionRightClickType: "custom",
		domain.OptionAssetsURL:      "",
		domain.OptionCustomURL:      "https://example.com/portfolio",
		domain.OptionCustomText:     "View Portfolio",
		domain.OptionPresentation:   "",
	}, f.store.Snapshot())

	_, cached := f.cache.Get()
	assert.False(t, cached, "saving drops the cached selector")

	got, err := f.app.Settings()
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestApp_SaveSettings_ValidationError(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.app.SaveSettings(t.Context(), domain.Settings{Mode: domain.ModeCustom})
	require.ErrorIs(t, err, domain.ErrCustomURLRequired)
	assert.Empty(t, f.store.Snapshot())
}

func TestApp_EditSettings(t *testing.T) {
	f := newFixture(t, map[string]string{
		domain.OptionRightClickType: "custom",
		domain.OptionCustomURL:      "https://example.com/portfolio",
	})
	f.logger.EXPECT().Info("settings saved")
	f.logger.EXPECT().Info("settings-saved: cleared cached logo selector")
	t.Setenv("NO_COLOR", "1")

	// 0x13 is ctrl+s.
	f.app.WithTeaOptions(tea.WithInput(strings.NewReader("\x13")))

	saved, ok, err := f.app.EditSettings(t.Context(), new(bytes.Buffer))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/portfolio", saved.CustomURL)
	assert.Equal(t, "custom", f.store.Snapshot()[domain.OptionRightClickType])
}

func TestApp_SaveSettings_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOptionStore(ctrl)
	stores := mocks.NewMockOptionStoreFactory(ctrl)
	stores.EXPECT().Open(gomock.Any()).Return(store)
	store.EXPECT().Set(domain.OptionRightClickType, "assets").Return(domain.ErrOptionStoreWriteFailed)

	a := app.New(nil, stores, selectorcache.New(domain.SelectorCacheTTL), nil, nil, nil,
		eventbus.New(), nil, telemetry.NewNoOpTracer(), mocks.NewMockLogger(ctrl))

	_, err := a.SaveSettings(t.Context(), domain.Settings{Mode: domain.ModeAssets})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrOptionStoreWriteFailed.Error())
}

func TestApp_ResetSettings(t *testing.T) {
	f := newFixture(t, map[string]string{
		domain.OptionRightClickType: "custom",
		domain.OptionCustomURL:      "https://example.com",
		"unrelated_option":          "kept",
	})
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	require.NoError(t, f.app.ResetSettings(t.Context()))
	assert.Equal(t, map[string]string{"unrelated_option": "kept"}, f.store.Snapshot())
}

func TestApp_Activate(t *testing.T) {
	f := newFixture(t, map[string]string{
		domain.OptionCustomURL:  "https://example.com/team",
		domain.OptionCustomText: "",
	})
	f.loader.EXPECT().Load("site.yaml").Return(domain.SiteConfig{HomeURL: "https://example.com/"}.WithDefaults(), nil)
	require.NoError(t, f.app.Configure("site.yaml"))
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	require.NoError(t, f.app.Activate(t.Context()))

	assert.Equal(t, map[string]string{
		domain.OptionAssetsURL:  domain.DefaultMediaLibraryURL,
		domain.OptionCustomText: domain.DefaultCustomText,
		domain.OptionCustomURL:  "https://example.com/team",
	}, f.store.Snapshot())

	// A second activation changes nothing.
	require.NoError(t, f.app.Activate(t.Context()))
	assert.Len(t, f.store.Snapshot(), 3)
}

func TestApp_RenderPage(t *testing.T) {
	f := newFixture(t, nil)

	out, err := f.app.RenderPage(t.Context(), []byte(logoPage))
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, `id="logolink-config"`)
	assert.Contains(t, page, `"logoSelector":".site-logo"`)
	assert.Contains(t, page, `"redirectUrl":"/wp-admin/upload.php"`)
	assert.True(t, strings.HasSuffix(page, "</script>\n</body></html>"))

	entry, ok := f.cache.Get()
	require.True(t, ok)
	assert.Equal(t, ".site-logo", entry.Value)
}

func TestApp_RenderPage_GateClosed(t *testing.T) {
	f := newFixture(t, map[string]string{domain.OptionRightClickType: "custom"})

	out, err := f.app.RenderPage(t.Context(), []byte(logoPage))
	require.NoError(t, err)
	assert.Equal(t, logoPage, string(out))
}

func TestApp_RenderPage_NoBody(t *testing.T) {
	f := newFixture(t, nil)
	fragment := `<div class="site-logo">Brand</div>`

	out, err := f.app.RenderPage(t.Context(), []byte(fragment))
	require.NoError(t, err)
	assert.Equal(t, fragment, string(out))
}

func TestApp_RenderPage_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOptionStore(ctrl)
	stores := mocks.NewMockOptionStoreFactory(ctrl)
	stores.EXPECT().Open(gomock.Any()).Return(store)
	store.EXPECT().Get(gomock.Any()).Return("", false, domain.ErrOptionStoreReadFailed)

	a := app.New(nil, stores, selectorcache.New(domain.SelectorCacheTTL), nil, nil, nil,
		eventbus.New(), nil, telemetry.NewNoOpTracer(), mocks.NewMockLogger(ctrl))

	out, err := a.RenderPage(t.Context(), []byte(logoPage))
	require.ErrorIs(t, err, domain.ErrOptionStoreReadFailed)
	assert.Equal(t, logoPage, string(out), "the original page is still served")
}

func TestApp_ResolveLogoSelector_TrustsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockPageScanner(ctrl)
	scanner.EXPECT().Scan(gomock.Any()).DoAndReturn(htmldom.NewScanner().Scan).Times(1)

	cache := selectorcache.New(domain.SelectorCacheTTL)
	a := app.New(nil, nil, cache, scanner, nil, nil, eventbus.New(), nil,
		telemetry.NewNoOpTracer(), mocks.NewMockLogger(ctrl))

	first, ok := a.ResolveLogoSelector(t.Context(), []byte(logoPage))
	require.True(t, ok)
	assert.Equal(t, ".site-logo", first)

	second, ok := a.ResolveLogoSelector(t.Context(), []byte(`<html><body><p>no logo</p></body></html>`))
	require.True(t, ok)
	assert.Equal(t, first, second, "cached selector is trusted without rescanning")
}

func TestApp_ResolveLogoSelector_Miss(t *testing.T) {
	f := newFixture(t, nil)

	_, ok := f.app.ResolveLogoSelector(t.Context(), []byte(`<html><body><p>plain</p></body></html>`))
	assert.False(t, ok)

	_, cached := f.cache.Get()
	assert.False(t, cached, "misses are not cached")
}

func TestApp_ResolveLogoSelector_ScanError(t *testing.T) {
	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockPageScanner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	scanner.EXPECT().Scan(gomock.Any()).Return(nil, domain.ErrPageParseFailed)
	logger.EXPECT().Warn("logo detection skipped: " + domain.ErrPageParseFailed.Error())

	a := app.New(nil, nil, selectorcache.New(domain.SelectorCacheTTL), scanner, nil, nil,
		eventbus.New(), nil, telemetry.NewNoOpTracer(), logger)

	_, ok := a.ResolveLogoSelector(t.Context(), []byte("<html>"))
	assert.False(t, ok)
}

func TestApp_Payload_CacheOnly(t *testing.T) {
	f := newFixture(t, map[string]string{domain.OptionPresentation: "redirect"})

	p, ok, err := f.app.Payload(t.Context(), nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, p.LogoSelector)
	assert.Equal(t, domain.PresentationRedirect, p.Presentation)

	f.cache.Set("#brand")
	p, _, err = f.app.Payload(t.Context(), nil)
	require.NoError(t, err)
	assert.Equal(t, "#brand", p.LogoSelector)
}

func TestApp_InvalidatingEvents(t *testing.T) {
	f := newFixture(t, nil)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	f.cache.Set(".site-logo")
	f.app.Publish(t.Context(), domain.EventReady)
	_, ok := f.app.CachedSelector()
	assert.True(t, ok, "ready keeps the cache")

	f.app.Publish(t.Context(), domain.EventThemeChanged)
	_, ok = f.app.CachedSelector()
	assert.False(t, ok)

	f.cache.Set(".site-logo")
	f.app.Publish(t.Context(), domain.EventCustomizerSaved)
	_, ok = f.app.CachedSelector()
	assert.False(t, ok)
}

func TestApp_Probe(t *testing.T) {
	f := newFixture(t, nil)
	f.loader.EXPECT().Load("site.yaml").Return(domain.SiteConfig{HomeURL: "https://example.com/blog/"}.WithDefaults(), nil)
	require.NoError(t, f.app.Configure("site.yaml"))

	f.prober.EXPECT().Probe(gomock.Any(), "https://example.com/about").
		Return(domain.ProbeResult{URL: "https://example.com/about", Status: domain.ProbeSuccess, StatusCode: 404})
	f.prober.EXPECT().Probe(gomock.Any(), "https://cdn.example.com/x").
		Return(domain.ProbeResult{Status: domain.ProbeWarning})
	f.prober.EXPECT().Probe(gomock.Any(), "").
		Return(domain.ProbeResult{Status: domain.ProbeError, Message: domain.ProbeMsgEmptyURL})

	assert.Equal(t, domain.ProbeSuccess, f.app.Probe(t.Context(), " /about ").Status)
	assert.Equal(t, domain.ProbeWarning, f.app.Probe(t.Context(), "https://cdn.example.com/x").Status)
	assert.Equal(t, domain.ProbeMsgEmptyURL, f.app.Probe(t.Context(), "   ").Message)
}

func TestApp_Probe_RelativeHome(t *testing.T) {
	f := newFixture(t, nil)
	f.prober.EXPECT().Probe(gomock.Any(), "/about").Return(domain.ProbeResult{Status: domain.ProbeError})

	assert.Equal(t, domain.ProbeError, f.app.Probe(t.Context(), "/about").Status)
}

func TestApp_ServeStopsOnCancel(t *testing.T) {
	f := newFixture(t, nil)
	cfg := domain.SiteConfig{ListenAddr: "127.0.0.1:0", AdminListenAddr: "127.0.0.1:0", Root: t.TempDir(), ThemeDir: t.TempDir()}.WithDefaults()
	f.loader.EXPECT().Load("site.yaml").Return(cfg, nil)
	require.NoError(t, f.app.Configure("site.yaml"))

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.monitor.EXPECT().Run(gomock.Any(), cfg.ThemeDir).DoAndReturn(func(ctx context.Context, _ string) error {
		<-ctx.Done()
		return nil
	})

	var ready atomic.Bool
	f.bus.Subscribe(domain.EventReady, func(context.Context, domain.LifecycleEvent) { ready.Store(true) })

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- f.app.Serve(ctx) }()

	require.Eventually(t, ready.Load, 5*time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestApp_ServeMonitorFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, nil)
	cfg := domain.SiteConfig{ListenAddr: "127.0.0.1:0", AdminListenAddr: "127.0.0.1:0", Root: t.TempDir(), ThemeDir: "/missing"}.WithDefaults()
	f.loader.EXPECT().Load("site.yaml").Return(cfg, nil)
	require.NoError(t, f.app.Configure("site.yaml"))

	monitorErr := zerr.With(domain.ErrWatcherFailed, "dir", "/missing")
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(monitorErr)
	f.monitor.EXPECT().Run(gomock.Any(), "/missing").Return(monitorErr)

	ctx, cancel := context.WithTimeout(t.Context(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, f.app.Serve(ctx))
}
