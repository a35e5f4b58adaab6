package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/logolink/internal/app"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/ui/output"
	"go.trai.ch/logolink/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <page.html>",
		Short: "Render a saved page and replay visitor clicks on the logo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := readPage(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var opts app.PreviewOptions
			opts.LeftClick, _ = flags.GetBool("left-click")
			opts.Escape, _ = flags.GetBool("escape")

			if flags.Changed("right-click") {
				raw, _ := flags.GetString("right-click")
				at, err := parsePair(raw, ",")
				if err != nil {
					return zerr.With(err, "flag", "right-click")
				}
				opts.RightClick = &domain.Point{X: at[0], Y: at[1]}
			}
			if flags.Changed("viewport") {
				raw, _ := flags.GetString("viewport")
				size, err := parsePair(raw, "x")
				if err != nil {
					return zerr.With(err, "flag", "viewport")
				}
				opts.Viewport = domain.Size{Width: size[0], Height: size[1]}
			}

			report, err := c.app.Preview(cmd.Context(), page, opts)
			if err != nil {
				return err
			}

			writeReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().String("right-click", "", "Right-click the logo at page coordinates x,y")
	cmd.Flags().Bool("left-click", false, "Left-click the logo")
	cmd.Flags().Bool("escape", false, "Press Escape after the clicks")
	cmd.Flags().String("viewport", "", "Viewport size WIDTHxHEIGHT (default 1280x800)")

	return cmd
}

func writeReport(cmd *cobra.Command, r app.PreviewReport) {
	out := output.New(cmd.OutOrStdout())
	if !r.Injected {
		_, _ = fmt.Fprintln(out, output.Line(out, style.Circle, style.Slate, "widget not attached (no destination configured)"))
		return
	}

	_, _ = fmt.Fprintln(out, output.Line(out, style.Check, style.Green, "widget attached to "+r.Selector))
	_, _ = fmt.Fprintf(out, "  tooltip:      %s\n", r.Tooltip)
	_, _ = fmt.Fprintf(out, "  presentation: %s\n", r.Payload.EffectivePresentation())
	_, _ = fmt.Fprintf(out, "  destination:  %s (%s)\n", r.Payload.RedirectURL, r.Payload.MenuLabel)
	_, _ = fmt.Fprintf(out, "  menu:         %s", r.Menu)
	if r.MenuLeft != "" {
		_, _ = fmt.Fprintf(out, " at %s, %s", r.MenuLeft, r.MenuTop)
	}
	_, _ = fmt.Fprintln(out)
	for _, nav := range r.Navigations {
		_, _ = fmt.Fprintf(out, "  navigate:     %s\n", nav)
	}
}

func parsePair(raw, sep string) ([2]float64, error) {
	parts := strings.Split(raw, sep)
	if len(parts) != 2 {
		return [2]float64{}, zerr.With(zerr.New("expected two numbers separated by "+strconv.Quote(sep)), "value", raw)
	}

	var pair [2]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [2]float64{}, zerr.With(zerr.Wrap(err, "invalid number"), "value", raw)
		}
		pair[i] = v
	}
	return pair, nil
}
