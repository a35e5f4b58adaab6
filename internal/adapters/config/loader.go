// Package config loads the logolink.yaml site configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// SupportedVersion is the logolink.yaml schema version this loader understands.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return newLoaderWithFS(logger, NewOSFS())
}

// newLoaderWithFS creates a Loader over a custom filesystem (used for testing).
func newLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Discover walks up from cwd looking for logolink.yaml.
// It returns an empty path when no file exists up to the filesystem root.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, statErr := l.fs.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

// Load reads the configuration file at path and returns the site configuration
// with defaults applied. Relative paths are resolved against the file's directory.
func (l *Loader) Load(path string) (domain.SiteConfig, error) {
	var file Sitefile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return domain.SiteConfig{}, zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", domain.ConfigFileName, file.Version, SupportedVersion))
	}

	configDir := filepath.Dir(path)
	cfg := domain.SiteConfig{
		ListenAddr:          strings.TrimSpace(file.Site.Listen),
		AdminListenAddr:     strings.TrimSpace(file.Admin.Listen),
		AdminToken:          strings.TrimSpace(file.Admin.Token),
		HomeURL:             strings.TrimSpace(file.Site.HomeURL),
		MediaLibraryURL:     strings.TrimSpace(file.Site.MediaLibraryURL),
		Upstream:            strings.TrimSpace(file.Site.Upstream),
		ThemeDir:            resolvePath(configDir, file.Site.ThemeDir),
		ScriptBasePath:      strings.TrimSpace(file.Widget.ScriptBase),
		AssetsDir:           resolvePath(configDir, file.Widget.AssetsDir),
		DefaultPresentation: domain.Presentation(strings.ToLower(strings.TrimSpace(file.Widget.Presentation))),
		Selectors:           domain.BuildSelectorList(file.Widget.Selectors, file.Widget.ExtraSelectors),
		OptionsPath:         resolvePath(configDir, file.Options.Path),
	}
	if cfg.Upstream == "" {
		cfg.Root = resolveRoot(path, file.Site.Root)
	} else if file.Site.Root != "" {
		return domain.SiteConfig{}, invalid(path, "site.root", "root and upstream are mutually exclusive")
	}
	if cfg.OptionsPath == "" {
		cfg.OptionsPath = filepath.Join(configDir, domain.DefaultOptionsPath())
	}

	if err := l.validate(path, cfg); err != nil {
		return domain.SiteConfig{}, err
	}
	return cfg.WithDefaults(), nil
}

func (l *Loader) validate(path string, cfg domain.SiteConfig) error {
	if cfg.DefaultPresentation != "" && !cfg.DefaultPresentation.Valid() {
		return invalid(path, "widget.presentation", domain.ErrInvalidPresentation.Error())
	}
	if cfg.Upstream != "" && !domain.IsAbsoluteURL(cfg.Upstream) {
		return invalid(path, "site.upstream", "must be an absolute http(s) URL")
	}
	if cfg.HomeURL != "" && !domain.IsAbsoluteURL(cfg.HomeURL) && !domain.IsRootRelativeURL(cfg.HomeURL) {
		return invalid(path, "site.home_url", "must be an absolute or root-relative URL")
	}
	if cfg.MediaLibraryURL != "" && !domain.IsAbsoluteURL(cfg.MediaLibraryURL) &&
		!domain.IsRootRelativeURL(cfg.MediaLibraryURL) {
		return invalid(path, "site.media_library_url", "must be an absolute or root-relative URL")
	}
	if cfg.AdminListenAddr != "" && cfg.AdminListenAddr == cfg.ListenAddr {
		return invalid(path, "admin.listen", "must differ from site.listen")
	}
	if cfg.ScriptBasePath != "" && !strings.HasPrefix(cfg.ScriptBasePath, "/") {
		return invalid(path, "widget.script_base", "must start with '/'")
	}

	if cfg.ThemeDir != "" {
		if ok, err := l.fs.IsDir(cfg.ThemeDir); err != nil || !ok {
			l.Logger.Warn(fmt.Sprintf("theme directory %s does not exist, theme changes will not be detected", cfg.ThemeDir))
		}
	}
	if cfg.AssetsDir != "" {
		if ok, err := l.fs.IsDir(cfg.AssetsDir); err != nil || !ok {
			l.Logger.Warn(fmt.Sprintf("assets directory %s does not exist, the widget cannot load", cfg.AssetsDir))
		}
	}
	return nil
}

func invalid(path, field, reason string) error {
	err := zerr.With(domain.ErrConfigInvalid, "field", field)
	err = zerr.With(err, "reason", reason)
	return zerr.With(err, "path", path)
}

// resolveRoot resolves the static site root; an empty root means the config directory.
func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if strings.TrimSpace(configuredRoot) == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

// resolvePath makes p absolute against base. An empty p stays empty.
func resolvePath(base, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Sitefile) error {
	configFile, err := l.fs.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
