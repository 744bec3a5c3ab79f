// Package testcomponents provides an in-memory renderer for exercising
// components in native tests without a browser or a host document.
package testcomponents

import (
	"github.com/vcrobe/polytext/runtime"
	"github.com/vcrobe/polytext/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree and the child keys that were rendered
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	childKeys   []string
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs a render of the component and returns the tree.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.childKeys = nil
	if receiver, ok := r.component.(runtime.ParameterReceiver); ok {
		receiver.OnPropertiesSet()
	}
	r.currentVDOM = r.component.Render(r)
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.RenderRoot()
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// ChildKeys returns the keys passed to RenderChild during the last render, in order.
func (r *TestRenderer) ChildKeys() []string {
	return r.childKeys
}

// RenderChild renders a child directly without instance tracking.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	r.childKeys = append(r.childKeys, key)
	child.SetRenderer(r)
	if receiver, ok := child.(runtime.ParameterReceiver); ok {
		receiver.OnPropertiesSet()
	}
	return child.Render(r)
}
