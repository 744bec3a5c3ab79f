package main

import (
	"github.com/spf13/cobra"

	"github.com/vcrobe/polytext/app"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the application into an HTML document",
		Long: `Parse the shell document, mount the App component at the configured
selector and write the resulting page. A missing mount point is fatal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return mountAndWrite(cmd, cfg, &app.App{})
		},
	}

	addDocumentFlags(cmd)
	return cmd
}
