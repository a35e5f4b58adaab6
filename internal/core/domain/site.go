package domain

import (
	"strings"
	"time"
)

// Site defaults applied when logolink.yaml leaves a field empty.
const (
	DefaultListenAddr     = ":8090"
	DefaultAdminAddr      = "127.0.0.1:8091"
	DefaultHomeURL        = "/"
	DefaultScriptBasePath = "/_logolink/"
	DefaultThemeDebounce  = 250 * time.Millisecond
)

// SiteConfig describes the site logolink fronts.
type SiteConfig struct {
	ListenAddr          string
	AdminListenAddr     string
	AdminToken          string
	HomeURL             string
	MediaLibraryURL     string
	Upstream            string
	Root                string
	ThemeDir            string
	ScriptBasePath      string
	AssetsDir           string
	DefaultPresentation Presentation
	Selectors           []string
	OptionsPath         string
}

// DefaultSiteConfig returns the configuration used when no config file exists.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		ListenAddr:          DefaultListenAddr,
		AdminListenAddr:     DefaultAdminAddr,
		HomeURL:             DefaultHomeURL,
		MediaLibraryURL:     DefaultMediaLibraryURL,
		ScriptBasePath:      DefaultScriptBasePath,
		DefaultPresentation: PresentationMenu,
		Selectors:           BuildSelectorList(nil, nil),
		OptionsPath:         DefaultOptionsPath(),
	}
}

// WithDefaults fills empty fields from DefaultSiteConfig.
func (c SiteConfig) WithDefaults() SiteConfig {
	d := DefaultSiteConfig()
	if c.ListenAddr == "" {
		c.ListenAddr = d.ListenAddr
	}
	if c.AdminListenAddr == "" {
		c.AdminListenAddr = d.AdminListenAddr
	}
	if c.HomeURL == "" {
		c.HomeURL = d.HomeURL
	}
	if c.MediaLibraryURL == "" {
		c.MediaLibraryURL = d.MediaLibraryURL
	}
	if c.ScriptBasePath == "" {
		c.ScriptBasePath = d.ScriptBasePath
	}
	if !strings.HasSuffix(c.ScriptBasePath, "/") {
		c.ScriptBasePath += "/"
	}
	if !c.DefaultPresentation.Valid() {
		c.DefaultPresentation = d.DefaultPresentation
	}
	if len(c.Selectors) == 0 {
		c.Selectors = d.Selectors
	}
	if c.OptionsPath == "" {
		c.OptionsPath = d.OptionsPath
	}
	return c
}

// AboutURL returns the default custom destination seeded on activation.
func (c SiteConfig) AboutURL() string {
	return strings.TrimSuffix(c.HomeURL, "/") + DefaultCustomPath
}

// Files served under the widget script base path.
const (
	WidgetWasmFile = "widget.wasm"
	WasmExecFile   = "wasm_exec.js"
	BootstrapFile  = "bootstrap.js"
	ConfigFile     = "config.json"
)
