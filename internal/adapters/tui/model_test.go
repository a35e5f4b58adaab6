package tui_test

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logolink/internal/adapters/tui"
	"go.trai.ch/logolink/internal/core/domain"
)

type fakeBackend struct {
	saved  []domain.Settings
	probed []string
	result domain.ProbeResult
}

func (f *fakeBackend) SaveSettings(_ context.Context, s domain.Settings) (domain.Settings, error) {
	f.saved = append(f.saved, s)
	s = s.Sanitize()
	if err := s.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

func (f *fakeBackend) Probe(_ context.Context, rawURL string) domain.ProbeResult {
	f.probed = append(f.probed, rawURL)
	return f.result
}

func newModel(t *testing.T, b *fakeBackend, initial domain.Settings) *tui.Model {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	return tui.NewModel(context.Background(), new(bytes.Buffer), b, initial)
}

func updateModel(m *tui.Model, msg tea.Msg) (*tui.Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(*tui.Model), cmd
}

func typeText(m *tui.Model, text string) *tui.Model {
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestModel_Fields(t *testing.T) {
	m := newModel(t, &fakeBackend{}, domain.Settings{})
	assert.Equal(t, []tui.Field{tui.FieldMode, tui.FieldAssetsURL, tui.FieldPresentation}, m.Fields())

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.ModeCustom, m.Settings.Mode)
	assert.Equal(t,
		[]tui.Field{tui.FieldMode, tui.FieldCustomURL, tui.FieldCustomText, tui.FieldPresentation},
		m.Fields())
}

func TestModel_Navigation(t *testing.T) {
	m := newModel(t, &fakeBackend{}, domain.Settings{})

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, tui.FieldAssetsURL, m.Focus)

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tui.FieldPresentation, m.Focus)

	// Wraps around.
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, tui.FieldMode, m.Focus)

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, tui.FieldPresentation, m.Focus)
}

func TestModel_Editing(t *testing.T) {
	m := newModel(t, &fakeBackend{}, domain.Settings{Mode: domain.ModeCustom})

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, tui.FieldCustomURL, m.Focus)
	m = typeText(m, "https://example.com/x")
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "https://example.com/", m.Settings.CustomURL)

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
	m = typeText(m, "Our")
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeySpace})
	m = typeText(m, "Brand")
	assert.Equal(t, "Our Brand", m.Settings.CustomText)

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, m.Settings.CustomText)

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, tui.FieldPresentation, m.Focus)
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, domain.PresentationRedirect, m.Settings.Presentation)
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.PresentationMenu, m.Settings.Presentation)
}

func TestModel_Probe(t *testing.T) {
	b := &fakeBackend{result: domain.ProbeResult{Status: domain.ProbeSuccess, Message: domain.ProbeMsgSuccess, StatusCode: 200}}
	m := newModel(t, b, domain.Settings{Mode: domain.ModeCustom, CustomURL: " https://example.com/ "})

	m, cmd := updateModel(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	require.NotNil(t, m.Probe)
	assert.Equal(t, domain.ProbeLoading, m.Probe.Status)
	assert.Contains(t, m.View(), domain.ProbeMsgTesting)

	m, _ = updateModel(m, cmd())
	assert.Equal(t, []string{"https://example.com/"}, b.probed)
	assert.Equal(t, domain.ProbeSuccess, m.Probe.Status)
	assert.Contains(t, m.View(), domain.ProbeMsgSuccess)

	// Editing the URL clears a stale result.
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
	m = typeText(m, "a")
	assert.Nil(t, m.Probe)
}

func TestModel_Save(t *testing.T) {
	t.Run("valid settings quit", func(t *testing.T) {
		b := &fakeBackend{}
		m := newModel(t, b, domain.Settings{Mode: domain.ModeCustom, CustomURL: "https://example.com/"})

		m, cmd := updateModel(m, tea.KeyMsg{Type: tea.KeyCtrlS})
		require.NotNil(t, cmd)

		m, cmd = updateModel(m, cmd())
		require.Len(t, b.saved, 1)
		assert.True(t, m.Saved)
		assert.Equal(t, tea.Quit(), cmd())
		assert.Empty(t, m.View())
	})

	t.Run("validation error focuses the field", func(t *testing.T) {
		b := &fakeBackend{}
		m := newModel(t, b, domain.Settings{Mode: domain.ModeCustom})

		m, cmd := updateModel(m, tea.KeyMsg{Type: tea.KeyCtrlS})
		m, cmd = updateModel(m, cmd())

		assert.Nil(t, cmd)
		assert.False(t, m.Saved)
		require.ErrorIs(t, m.Err, domain.ErrCustomURLRequired)
		assert.Equal(t, tui.FieldCustomURL, m.Focus)
		assert.Contains(t, m.View(), domain.ErrCustomURLRequired.Error())
	})
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t, &fakeBackend{}, domain.Settings{})

	m, cmd := updateModel(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, m.Quit)
	assert.False(t, m.Saved)
}
