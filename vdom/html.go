package vdom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrEmptyTag is returned when an element VNode has no tag name.
var ErrEmptyTag = errors.New("vnode has empty tag")

// ToHTMLNode converts a VNode tree into an *html.Node tree.
// Attributes are emitted in key order so identical trees serialize identically.
func ToHTMLNode(n *VNode) (*html.Node, error) {
	if n == nil {
		return nil, nil
	}

	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Content}, nil
	}

	if n.Tag == "" {
		return nil, ErrEmptyTag
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n.Attributes),
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}

	for _, child := range n.Children {
		childNode, err := ToHTMLNode(child)
		if err != nil {
			return nil, fmt.Errorf("<%s>: %w", n.Tag, err)
		}
		if childNode != nil {
			el.AppendChild(childNode)
		}
	}

	return el, nil
}

// htmlAttributes mirrors the browser attribute rules: true booleans are set
// without a value, false booleans and functions are skipped.
func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, key := range keys {
		switch v := attrs[key].(type) {
		case nil:
			continue
		case bool:
			if v {
				out = append(out, html.Attribute{Key: key})
			}
		case string:
			out = append(out, html.Attribute{Key: key, Val: v})
		case func():
			continue
		default:
			out = append(out, html.Attribute{Key: key, Val: fmt.Sprint(v)})
		}
	}
	return out
}

// RenderHTML writes the HTML serialization of n to w.
func RenderHTML(w io.Writer, n *VNode) error {
	node, err := ToHTMLNode(n)
	if err != nil {
		return err
	}
	if node == nil {
		return nil
	}
	return html.Render(w, node)
}

// HTMLString returns the HTML serialization of n.
func HTMLString(n *VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
