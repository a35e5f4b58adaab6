package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/ui/output"
	"go.trai.ch/logolink/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <url>",
		Short: "Check that a destination URL answers",
		Long: "Probe sends a GET request with a 10 second deadline. Any HTTP response counts as\n" +
			"reachable; a timeout is only a warning. Root-relative URLs are resolved against site.home_url.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := c.app.Probe(cmd.Context(), args[0])

			icon, color := probeIcon(res.Status)
			msg := res.Message
			if res.StatusCode != 0 {
				msg = fmt.Sprintf("%s (HTTP %d)", msg, res.StatusCode)
			}

			out := output.New(cmd.OutOrStdout())
			_, _ = fmt.Fprintln(out, output.Line(out, icon, color, msg))

			if res.Status == domain.ProbeError {
				return zerr.With(domain.ErrProbeFailed, "url", args[0])
			}
			return nil
		},
	}
}

func probeIcon(s domain.ProbeStatus) (string, lipgloss.Color) {
	switch s {
	case domain.ProbeSuccess:
		return style.Check, style.Green
	case domain.ProbeWarning:
		return style.Warning, style.Yellow
	case domain.ProbeLoading:
		return style.Circle, style.Slate
	default:
		return style.Cross, style.Red
	}
}
