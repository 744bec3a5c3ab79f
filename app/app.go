// Package app holds the root component of the application.
package app

import (
	"github.com/vcrobe/polytext/components/text"
	"github.com/vcrobe/polytext/runtime"
	"github.com/vcrobe/polytext/vdom"
)

// MountSelector is the mount point the host page must provide.
const MountSelector = "#root"

// App is the root component. It holds no state and renders a fixed tree.
type App struct {
	runtime.ComponentBase
}

// Render implements runtime.Component.
func (a *App) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "App"},
		r.RenderChild("heading", text.MustNew(text.Props{
			Variant:  text.H1,
			Size:     text.Large,
			Children: vdom.Texts("Heading"),
		})),
		r.RenderChild("paragraph", text.MustNew(text.Props{
			Variant:  text.Paragraph,
			Size:     text.Medium,
			Children: vdom.Texts("Paragraph"),
		})),
		r.RenderChild("label", text.MustNew(text.Props{
			Variant:  text.Label,
			LabelFor: "someId",
			Size:     text.Small,
			Color:    text.Secondary,
			Children: vdom.Texts("Label"),
		})),
	)
}

// Bootstrap renders a new App into mount. It is meant to be called exactly
// once at process start; a nil mount is a fatal configuration error.
func Bootstrap(mount vdom.Mount) (*runtime.RendererImpl, error) {
	return runtime.Mount(mount, &App{})
}
