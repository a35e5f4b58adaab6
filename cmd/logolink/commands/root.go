// Package commands implements the CLI commands for logolink.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/logolink/internal/app"
	"go.trai.ch/logolink/internal/build"
	"go.trai.ch/logolink/internal/core/domain"
)

// skipConfig marks commands that run without loading logolink.yaml.
const skipConfig = "logolink/skip-config"

// CLI represents the command line interface for logolink.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(format string) error
	Configure(path string) error
	Serve(ctx context.Context) error
	Settings() (domain.Settings, error)
	SaveSettings(ctx context.Context, s domain.Settings) (domain.Settings, error)
	ResetSettings(ctx context.Context) error
	EditSettings(ctx context.Context, w io.Writer) (domain.Settings, bool, error)
	Activate(ctx context.Context) error
	Probe(ctx context.Context, rawURL string) domain.ProbeResult
	ResolveLogoSelector(ctx context.Context, page []byte) (string, bool)
	Preview(ctx context.Context, page []byte, opts app.PreviewOptions) (app.PreviewReport, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "logolink",
		Short:         "Left-click home, right-click brand assets for any site logo",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to logolink.yaml (default: search upward from the current directory)")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, or json")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON (shorthand for --log-format=json)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.setup

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newSettingsCmd())
	rootCmd.AddCommand(c.newProbeCmd())
	rootCmd.AddCommand(c.newDetectCmd())
	rootCmd.AddCommand(c.newPreviewCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("log-format")
	if asJSON, _ := cmd.Flags().GetBool("log-json"); asJSON {
		format = "json"
	}
	if err := c.app.ConfigureLogging(format); err != nil {
		return err
	}

	if _, skip := cmd.Annotations[skipConfig]; skip {
		return nil
	}
	path, _ := cmd.Flags().GetString("config")
	return c.app.Configure(path)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
