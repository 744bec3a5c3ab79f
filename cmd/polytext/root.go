package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/vcrobe/polytext/config"
	"github.com/vcrobe/polytext/console"
	"github.com/vcrobe/polytext/runtime"
	"github.com/vcrobe/polytext/vdom"
)

// defaultShell is used when no shell document is configured.
const defaultShell = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>polytext</title></head>
<body><div id="root"></div></body>
</html>
`

type rootOptions struct {
	configFile string
	verbose    bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "polytext",
		Short: "Render the polytext app and its Text component outside the browser",
		Long: `polytext mounts the application into an HTML shell document the same way
the browser build mounts it into the live DOM, and writes the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default ./polytext.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newTextCmd())
	cmd.AddCommand(newSpecimensCmd(opts))

	return cmd
}

// addDocumentFlags registers the flags that config.Load binds by name.
func addDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().String("mount-selector", "#root", "id selector of the mount point")
	cmd.Flags().String("shell-path", "", "HTML shell document (default built-in)")
	cmd.Flags().StringP("output-path", "o", "", "write output to this file instead of stdout")
	cmd.Flags().Bool("fragment", false, "write only the sanitized app markup")
	cmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")
}

func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if opts.verbose {
		level = zapcore.DebugLevel
	}
	console.SetLogger(console.New(level))
	return cfg, nil
}

func loadShell(cfg *config.Config) (*vdom.Document, error) {
	if cfg.ShellPath == "" {
		return vdom.ParseDocumentString(defaultShell)
	}

	f, err := os.Open(cfg.ShellPath)
	if err != nil {
		return nil, fmt.Errorf("open shell: %w", err)
	}
	defer f.Close()

	return vdom.ParseDocument(f)
}

// mountAndWrite bootstraps root into the configured shell document and
// writes either the full document or the sanitized fragment.
func mountAndWrite(cmd *cobra.Command, cfg *config.Config, root runtime.Component) error {
	doc, err := loadShell(cfg)
	if err != nil {
		return err
	}

	renderer, err := runtime.MountSelector(doc, cfg.MountSelector, root)
	if err != nil {
		return err
	}
	console.Logger().Debugw("mounted", "selector", cfg.MountSelector, "shell", cfg.ShellPath)

	return withOutput(cmd, cfg.OutputPath, func(w io.Writer) error {
		if cfg.Fragment {
			fragment, err := vdom.SafeHTML(renderer.CurrentVDOM())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, fragment)
			return err
		}
		return doc.Render(w)
	})
}

func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	console.Logger().Infow("wrote output", "path", path)
	return nil
}
