package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcrobe/polytext/components/text"
	"github.com/vcrobe/polytext/console"
)

func newSpecimensCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specimens <file.yaml|->",
		Short: "Render a specimen sheet of Text elements from YAML",
		Long: `Read a YAML file of the form

  specimens:
    - variant: heading
      size: lg
      text: Heading

and mount a sheet with one Text per entry into the shell document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			items, err := readSpecimens(cmd, args[0])
			if err != nil {
				return err
			}
			console.Logger().Debugw("loaded specimens", "count", len(items), "source", args[0])

			return mountAndWrite(cmd, cfg, &text.Sheet{Items: items})
		},
	}

	addDocumentFlags(cmd)
	return cmd
}

func readSpecimens(cmd *cobra.Command, path string) ([]*text.Text, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open specimens: %w", err)
		}
		defer f.Close()
		r = f
	}
	return text.LoadSpecimens(r)
}
