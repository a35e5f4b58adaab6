// Package output builds termenv outputs for command results and renders
// one-line status reports.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile honors NO_COLOR and otherwise detects the terminal.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New returns an output on w, or stderr when w is nil. Colors follow
// ColorProfile even when w is not a terminal, so piped output stays stable
// under NO_COLOR and colored otherwise.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)
	return termenv.NewOutput(w, opts...)
}

// Line renders msg prefixed by an icon in color.
func Line(out *termenv.Output, icon string, color lipgloss.Color, msg string) string {
	return out.String(icon).Foreground(out.Color(string(color))).String() + " " + msg
}
