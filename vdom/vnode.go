package vdom

// TextTag marks a VNode that renders as a bare text node with no element wrapper.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or TextTag for a text node
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// IsText reports whether the node is a pure text node.
func (v *VNode) IsText() bool {
	return v != nil && v.Tag == TextTag
}

// Attr returns the attribute stored under key and whether it was present.
func (v *VNode) Attr(key string) (any, bool) {
	if v == nil || v.Attributes == nil {
		return nil, false
	}
	val, ok := v.Attributes[key]
	return val, ok
}

// TextContent concatenates the content of the node and all its descendants
// in document order.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	out := v.Content
	for _, child := range v.Children {
		out += child.TextContent()
	}
	return out
}

// Text creates a text node carrying s verbatim.
func Text(s string) *VNode {
	return NewVNode(TextTag, nil, nil, s)
}

// Texts wraps each string in a text node.
func Texts(parts ...string) []*VNode {
	nodes := make([]*VNode, 0, len(parts))
	for _, p := range parts {
		nodes = append(nodes, Text(p))
	}
	return nodes
}

// Element creates a VNode for an arbitrary tag with the given children.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// Paragraph creates a <p> VNode with the given text as its content and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}
