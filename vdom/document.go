package vdom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Compile-time assertion that Document can act as a mount host.
var _ Host = (*Document)(nil)

// Document is an in-memory HTML document used as the host outside the
// browser. The app is mounted into it the same way it is mounted into the
// live DOM, and the result can be serialized back to HTML.
type Document struct {
	root *html.Node
}

// ParseDocument parses a full HTML document from r.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseDocumentString is ParseDocument for an in-memory string.
func ParseDocumentString(s string) (*Document, error) {
	return ParseDocument(strings.NewReader(s))
}

// Query resolves an id selector ("#app") to a mount point.
func (d *Document) Query(selector string) (Mount, error) {
	id, ok := strings.CutPrefix(strings.TrimSpace(selector), "#")
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: %q (only #id selectors are supported)", ErrUnsupportedSelector, selector)
	}

	node := findByID(d.root, id)
	if node == nil {
		return nil, fmt.Errorf("%w: %s", ErrMountNotFound, selector)
	}
	return &nodeMount{node: node}, nil
}

// Render writes the whole document to w.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the serialized document, or an empty string if it cannot be rendered.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func findByID(n *html.Node, id string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// nodeMount attaches rendered trees under a parsed html.Node.
type nodeMount struct {
	node *html.Node
}

func (m *nodeMount) Clear() {
	for c := m.node.FirstChild; c != nil; {
		next := c.NextSibling
		m.node.RemoveChild(c)
		c = next
	}
}

func (m *nodeMount) Append(n *VNode) error {
	child, err := ToHTMLNode(n)
	if err != nil {
		return err
	}
	if child != nil {
		m.node.AppendChild(child)
	}
	return nil
}
