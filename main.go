//go:build js || wasm
// +build js wasm

package main

import (
	"github.com/vcrobe/polytext/app"
	"github.com/vcrobe/polytext/console"
	"github.com/vcrobe/polytext/vdom"
)

func main() {
	// 1. Resolve the mount point the host page provides
	mount, err := vdom.BrowserDocument().Query(app.MountSelector)
	if err != nil {
		console.Error("Error resolving mount point: ", err)
		panic("bootstrap failed: " + err.Error())
	}

	// 2. Attach the root component exactly once
	if _, err := app.Bootstrap(mount); err != nil {
		console.Error("Error mounting app: ", err)
		panic("bootstrap failed: " + err.Error())
	}

	// Keep the Go program running
	select {}
}
