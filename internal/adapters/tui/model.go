// Package tui provides the interactive settings editor.
package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/logolink/internal/core/domain"
)

const labelWidth = 16

// Backend saves settings and probes URLs on behalf of the editor.
type Backend interface {
	SaveSettings(ctx context.Context, s domain.Settings) (domain.Settings, error)
	Probe(ctx context.Context, rawURL string) domain.ProbeResult
}

// Field identifies one row of the form.
type Field int

const (
	// FieldMode toggles between the assets and custom right-click modes.
	FieldMode Field = iota
	// FieldAssetsURL is the brand assets URL.
	FieldAssetsURL
	// FieldCustomURL is the custom link URL.
	FieldCustomURL
	// FieldCustomText is the custom link text.
	FieldCustomText
	// FieldPresentation toggles between menu and redirect.
	FieldPresentation
)

// MsgProbeDone carries the result of a connectivity probe.
type MsgProbeDone struct {
	Result domain.ProbeResult
}

// MsgSaved reports the outcome of a save.
type MsgSaved struct {
	Settings domain.Settings
	Err      error
}

// Model is the settings form state.
type Model struct {
	ctx     context.Context
	backend Backend

	Settings domain.Settings
	Focus    Field
	Probe    *domain.ProbeResult
	Err      error
	Saved    bool
	Quit     bool
	Width    int
}

// Init initializes the model.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) Init() tea.Cmd {
	return nil
}

// Fields returns the rows shown for the current mode. URL and text rows of the
// inactive mode are hidden.
func (m *Model) Fields() []Field {
	if m.Settings.EffectiveMode() == domain.ModeCustom {
		return []Field{FieldMode, FieldCustomURL, FieldCustomText, FieldPresentation}
	}
	return []Field{FieldMode, FieldAssetsURL, FieldPresentation}
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop,gocritic // hugeParam ignored, cyclop ignored
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case MsgProbeDone:
		m.Probe = &msg.Result

	case MsgSaved:
		if msg.Err != nil {
			m.Err = msg.Err
			var vErr *domain.ValidationError
			if errors.As(msg.Err, &vErr) {
				m.focusOption(vErr.Field)
			}
			return m, nil
		}
		m.Settings = msg.Settings
		m.Saved = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

//nolint:cyclop // one branch per key binding
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Quit = true
		return tea.Quit
	case tea.KeyCtrlS:
		m.Err = nil
		return m.save()
	case tea.KeyCtrlT:
		return m.probe()
	case tea.KeyUp, tea.KeyShiftTab:
		m.move(-1)
	case tea.KeyDown, tea.KeyTab, tea.KeyEnter:
		m.move(1)
	case tea.KeyLeft, tea.KeyRight:
		m.toggle()
	case tea.KeySpace:
		if !m.toggle() {
			m.edit(func(v string) string { return v + " " })
		}
	case tea.KeyBackspace:
		m.edit(func(v string) string {
			if v == "" {
				return v
			}
			r := []rune(v)
			return string(r[:len(r)-1])
		})
	case tea.KeyCtrlU:
		m.edit(func(string) string { return "" })
	case tea.KeyRunes:
		m.edit(func(v string) string { return v + string(msg.Runes) })
	}
	return nil
}

func (m *Model) move(delta int) {
	fields := m.Fields()
	idx := 0
	for i, f := range fields {
		if f == m.Focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.Focus = fields[idx]
}

// toggle flips the focused enum field and reports whether it was one.
func (m *Model) toggle() bool {
	switch m.Focus {
	case FieldMode:
		if m.Settings.EffectiveMode() == domain.ModeCustom {
			m.Settings.Mode = domain.ModeAssets
		} else {
			m.Settings.Mode = domain.ModeCustom
		}
		m.Probe = nil
		return true
	case FieldPresentation:
		if m.Settings.Presentation == domain.PresentationRedirect {
			m.Settings.Presentation = domain.PresentationMenu
		} else {
			m.Settings.Presentation = domain.PresentationRedirect
		}
		return true
	default:
		return false
	}
}

func (m *Model) edit(fn func(string) string) {
	if v := m.value(m.Focus); v != nil {
		*v = fn(*v)
		if m.Focus == FieldAssetsURL || m.Focus == FieldCustomURL {
			m.Probe = nil
		}
	}
}

func (m *Model) value(f Field) *string {
	switch f {
	case FieldAssetsURL:
		return &m.Settings.AssetsURL
	case FieldCustomURL:
		return &m.Settings.CustomURL
	case FieldCustomText:
		return &m.Settings.CustomText
	default:
		return nil
	}
}

// probeTarget is the URL of the active mode.
func (m *Model) probeTarget() string {
	if m.Settings.EffectiveMode() == domain.ModeCustom {
		return m.Settings.CustomURL
	}
	return m.Settings.AssetsURL
}

func (m *Model) probe() tea.Cmd {
	target := strings.TrimSpace(m.probeTarget())
	m.Probe = &domain.ProbeResult{URL: target, Status: domain.ProbeLoading, Message: domain.ProbeMsgTesting}

	ctx, backend := m.ctx, m.backend
	return func() tea.Msg {
		return MsgProbeDone{Result: backend.Probe(ctx, target)}
	}
}

func (m *Model) save() tea.Cmd {
	ctx, backend, s := m.ctx, m.backend, m.Settings
	return func() tea.Msg {
		saved, err := backend.SaveSettings(ctx, s)
		return MsgSaved{Settings: saved, Err: err}
	}
}

func (m *Model) focusOption(key string) {
	fields := map[string]Field{
		domain.OptionRightClickType: FieldMode,
		domain.OptionAssetsURL:      FieldAssetsURL,
		domain.OptionCustomURL:      FieldCustomURL,
		domain.OptionCustomText:     FieldCustomText,
		domain.OptionPresentation:   FieldPresentation,
	}
	if f, ok := fields[key]; ok {
		m.Focus = f
	}
}
