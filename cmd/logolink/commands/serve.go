package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site with the logo widget injected",
		Long: "Serve proxies site.upstream, or serves site.root, and injects the logo widget into\n" +
			"every HTML page. The admin endpoints live under /admin/ on admin.listen.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Serve(cmd.Context())
		},
	}
}
