package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logolink/internal/core/domain"
)

func TestParseLifecycleEvent(t *testing.T) {
	for _, name := range []string{"ready", "theme-changed", "customizer-saved", "settings-saved"} {
		evt, err := domain.ParseLifecycleEvent(name)
		require.NoError(t, err)
		assert.Equal(t, domain.LifecycleEvent(name), evt)
	}

	_, err := domain.ParseLifecycleEvent("plugin-deleted")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownEvent.Error())
}

func TestInvalidatingEvents(t *testing.T) {
	assert.ElementsMatch(t, []domain.LifecycleEvent{
		domain.EventThemeChanged,
		domain.EventCustomizerSaved,
		domain.EventSettingsSaved,
	}, domain.InvalidatingEvents)
	assert.NotContains(t, domain.InvalidatingEvents, domain.EventReady)
}

func TestSiteConfig_WithDefaults(t *testing.T) {
	got := domain.SiteConfig{ScriptBasePath: "/assets/logolink", DefaultPresentation: "bogus"}.WithDefaults()

	assert.Equal(t, domain.DefaultListenAddr, got.ListenAddr)
	assert.Equal(t, domain.DefaultAdminAddr, got.AdminListenAddr)
	assert.Empty(t, got.AdminToken)
	assert.Equal(t, domain.DefaultHomeURL, got.HomeURL)
	assert.Equal(t, domain.DefaultMediaLibraryURL, got.MediaLibraryURL)
	assert.Equal(t, "/assets/logolink/", got.ScriptBasePath)
	assert.Equal(t, domain.PresentationMenu, got.DefaultPresentation)
	assert.Equal(t, domain.DefaultLogoSelectors, got.Selectors)
	assert.Equal(t, domain.DefaultOptionsPath(), got.OptionsPath)
}

func TestSiteConfig_AboutURL(t *testing.T) {
	assert.Equal(t, "/about", domain.SiteConfig{HomeURL: "/"}.AboutURL())
	assert.Equal(t, "https://example.com/about", domain.SiteConfig{HomeURL: "https://example.com/"}.AboutURL())
}
