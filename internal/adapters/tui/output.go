package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/logolink/internal/ui/output"
)

// NewOutput creates the termenv output the editor renders to.
func NewOutput(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return output.New(w, opts...)
}
