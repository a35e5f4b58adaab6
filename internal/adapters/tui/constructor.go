package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/logolink/internal/core/domain"
)

// NewModel creates an editor for initial. Output to w decides the color profile.
func NewModel(ctx context.Context, w io.Writer, backend Backend, initial domain.Settings) *Model {
	out := NewOutput(w)
	lipgloss.SetColorProfile(out.Profile)

	return &Model{
		ctx:      ctx,
		backend:  backend,
		Settings: initial,
		Focus:    FieldMode,
	}
}

// Run shows the editor until the operator saves or quits. It reports whether
// settings were saved and returns them as stored.
func Run(
	ctx context.Context,
	w io.Writer,
	backend Backend,
	initial domain.Settings,
	opts ...tea.ProgramOption,
) (domain.Settings, bool, error) {
	m := NewModel(ctx, w, backend, initial)

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(w)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return domain.Settings{}, false, err
	}

	if !m.Saved {
		return initial, false, nil
	}
	return m.Settings, true, nil
}
