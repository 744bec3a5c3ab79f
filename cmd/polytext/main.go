// Command polytext renders the application outside the browser: the whole
// page into a static HTML document, single Text elements, or a specimen
// sheet read from YAML.
package main

import (
	"os"

	"github.com/fatih/color"
)

var errorColor = color.New(color.FgRed, color.Bold)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
