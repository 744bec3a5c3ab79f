//go:build js || wasm
// +build js wasm

package vdom

import (
	"fmt"
	"syscall/js"

	"github.com/vcrobe/polytext/console"
)

// Compile-time assertion to ensure browserDocument implements Host.
var _ Host = browserDocument{}

type browserDocument struct{}

// BrowserDocument returns the live DOM document as a mount host.
func BrowserDocument() Host {
	return browserDocument{}
}

// Query resolves the first element matching the CSS selector.
func (browserDocument) Query(selector string) (Mount, error) {
	if selector == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrUnsupportedSelector)
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, fmt.Errorf("%w: no document in this environment", ErrMountNotFound)
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		return nil, fmt.Errorf("%w: %s", ErrMountNotFound, selector)
	}
	return domMount{el: mount}, nil
}

type domMount struct {
	el js.Value
}

func (m domMount) Clear() {
	// Set innerHTML to an empty string to clear all children.
	m.el.Set("innerHTML", "")
}

func (m domMount) Append(n *VNode) error {
	if n == nil {
		return nil
	}
	el, err := createElement(n)
	if err != nil {
		return err
	}
	m.el.Call("appendChild", el)
	return nil
}

// setAttributeValue sets an attribute on an element, handling boolean attributes correctly.
func setAttributeValue(el js.Value, key string, value any) {
	switch v := value.(type) {
	case nil, func():
		return
	case bool:
		// For boolean attributes, set them without a value; if false, don't set the attribute at all
		if v {
			el.Call("setAttribute", key, "")
		}
	case string:
		el.Call("setAttribute", key, v)
	default:
		el.Call("setAttribute", key, fmt.Sprint(v))
	}
}

func createElement(n *VNode) (js.Value, error) {
	doc := js.Global().Get("document")

	if n.IsText() {
		// Pure text node - no HTML element wrapper
		return doc.Call("createTextNode", n.Content), nil
	}

	if n.Tag == "" {
		console.Error("Refusing to create element with empty tag")
		return js.Undefined(), ErrEmptyTag
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}

	if n.Content != "" {
		el.Set("textContent", n.Content)
	}

	for _, child := range n.Children {
		if child == nil {
			continue
		}
		childEl, err := createElement(child)
		if err != nil {
			return js.Undefined(), fmt.Errorf("<%s>: %w", n.Tag, err)
		}
		el.Call("appendChild", childEl)
	}

	return el, nil
}
