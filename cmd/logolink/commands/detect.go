package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/logolink/internal/ui/output"
	"go.trai.ch/logolink/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <page.html>",
		Short: "Detect the logo selector of a saved page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := readPage(args[0])
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			selector, ok := c.app.ResolveLogoSelector(cmd.Context(), page)
			if !ok {
				_, _ = fmt.Fprintln(out, output.Line(out, style.Warning, style.Yellow, "no logo found"))
				return nil
			}
			_, _ = fmt.Fprintln(out, output.Line(out, style.Check, style.Green, selector))
			return nil
		},
	}
}

func readPage(path string) ([]byte, error) {
	page, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read page"), "path", path)
	}
	return page, nil
}
