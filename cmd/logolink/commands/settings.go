package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/logolink/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change the stored logo link settings",
	}

	cmd.AddCommand(c.newSettingsShowCmd())
	cmd.AddCommand(c.newSettingsSetCmd())
	cmd.AddCommand(c.newSettingsEditCmd())
	cmd.AddCommand(c.newSettingsResetCmd())
	cmd.AddCommand(c.newSettingsActivateCmd())

	return cmd
}

func (c *CLI) newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.app.Settings()
			if err != nil {
				return err
			}
			return writeYAML(cmd, s)
		},
	}
}

func (c *CLI) newSettingsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change stored settings; flags that are not given keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.app.Settings()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("mode") {
				v, _ := flags.GetString("mode")
				s.Mode = domain.ClickMode(v)
			}
			if flags.Changed("assets-url") {
				s.AssetsURL, _ = flags.GetString("assets-url")
			}
			if flags.Changed("custom-url") {
				s.CustomURL, _ = flags.GetString("custom-url")
			}
			if flags.Changed("custom-text") {
				s.CustomText, _ = flags.GetString("custom-text")
			}
			if flags.Changed("presentation") {
				v, _ := flags.GetString("presentation")
				s.Presentation = domain.Presentation(v)
			}

			saved, err := c.app.SaveSettings(cmd.Context(), s)
			if err != nil {
				return err
			}
			return writeYAML(cmd, saved)
		},
	}

	cmd.Flags().StringP("mode", "m", "", "Right-click mode: assets or custom")
	cmd.Flags().String("assets-url", "", "Brand assets URL (defaults to the media library)")
	cmd.Flags().String("custom-url", "", "Custom link URL, required in custom mode")
	cmd.Flags().String("custom-text", "", "Custom link text")
	cmd.Flags().StringP("presentation", "p", "", "Right-click presentation: menu or redirect")

	return cmd
}

func (c *CLI) newSettingsEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the settings in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			saved, ok, err := c.app.EditSettings(cmd.Context(), cmd.ErrOrStderr())
			if err != nil || !ok {
				return err
			}
			return writeYAML(cmd, saved)
		},
	}
}

func (c *CLI) newSettingsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ResetSettings(cmd.Context())
		},
	}
}

func (c *CLI) newSettingsActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "Seed default settings for options that are not set yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Activate(cmd.Context()); err != nil {
				return err
			}
			s, err := c.app.Settings()
			if err != nil {
				return err
			}
			return writeYAML(cmd, s)
		},
	}
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
