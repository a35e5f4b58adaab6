package app

import (
	"context"
	"io"

	"go.trai.ch/logolink/internal/adapters/tui"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/zerr"
)

type option struct {
	key   string
	value string
}

func settingsOptions(s domain.Settings) []option {
	return []option{
		{domain.OptionRightClickType, string(s.Mode)},
		{domain.OptionAssetsURL, s.AssetsURL},
		{domain.OptionCustomURL, s.CustomURL},
		{domain.OptionCustomText, s.CustomText},
		{domain.OptionPresentation, string(s.Presentation)},
	}
}

// Settings reads the stored settings. Unset keys stay empty.
func (a *App) Settings() (domain.Settings, error) {
	store := a.options()

	values := make(map[string]string, len(domain.OptionKeys))
	for _, key := range domain.OptionKeys {
		v, ok, err := store.Get(key)
		if err != nil {
			return domain.Settings{}, err
		}
		if ok {
			values[key] = v
		}
	}

	return domain.Settings{
		Mode:         domain.ClickMode(values[domain.OptionRightClickType]),
		AssetsURL:    values[domain.OptionAssetsURL],
		CustomURL:    values[domain.OptionCustomURL],
		CustomText:   values[domain.OptionCustomText],
		Presentation: domain.Presentation(values[domain.OptionPresentation]),
	}, nil
}

// SaveSettings sanitizes, validates and stores s, then publishes settings-saved.
// It returns the settings as stored.
func (a *App) SaveSettings(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	ctx, span := a.tracer.Start(ctx, "settings.save")
	defer span.End()

	s = s.Sanitize()
	if err := s.Validate(); err != nil {
		span.RecordError(err)
		return domain.Settings{}, err
	}

	store := a.options()
	for _, opt := range settingsOptions(s) {
		if err := store.Set(opt.key, opt.value); err != nil {
			span.RecordError(err)
			return domain.Settings{}, zerr.With(err, "key", opt.key)
		}
	}

	span.SetAttribute("mode", string(s.EffectiveMode()))
	a.logger.Info("settings saved")
	a.bus.Publish(ctx, domain.EventSettingsSaved)
	return s, nil
}

// ResetSettings deletes every stored option.
func (a *App) ResetSettings(ctx context.Context) error {
	store := a.options()
	for _, key := range domain.OptionKeys {
		if err := store.Delete(key); err != nil {
			return zerr.With(err, "key", key)
		}
	}

	a.logger.Info("settings reset")
	a.bus.Publish(ctx, domain.EventSettingsSaved)
	return nil
}

// Activate seeds defaults for the options that are unset or empty.
// Options that already hold a value are left alone.
func (a *App) Activate(ctx context.Context) error {
	cfg := a.Config()
	defaults := []option{
		{domain.OptionAssetsURL, cfg.MediaLibraryURL},
		{domain.OptionCustomText, domain.DefaultCustomText},
		{domain.OptionCustomURL, cfg.AboutURL()},
	}

	store := a.options()
	seeded := 0
	for _, opt := range defaults {
		v, ok, err := store.Get(opt.key)
		if err != nil {
			return err
		}
		if ok && v != "" {
			continue
		}
		if err := store.Set(opt.key, opt.value); err != nil {
			return zerr.With(err, "key", opt.key)
		}
		seeded++
	}

	if seeded > 0 {
		a.bus.Publish(ctx, domain.EventSettingsSaved)
	}
	return nil
}

// EditSettings opens the interactive editor on w. Saving goes through
// SaveSettings, so the usual validation and cache invalidation apply.
func (a *App) EditSettings(ctx context.Context, w io.Writer) (domain.Settings, bool, error) {
	current, err := a.Settings()
	if err != nil {
		return domain.Settings{}, false, err
	}

	s, saved, err := tui.Run(ctx, w, a, current, a.teaOptions...)
	if err != nil {
		return domain.Settings{}, false, zerr.Wrap(err, "settings editor failed")
	}
	return s, saved, nil
}
