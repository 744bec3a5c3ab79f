package vdom

import "errors"

// ErrMountNotFound is returned when the host document has no node for the
// requested mount selector. Without a mount point nothing can be rendered.
var ErrMountNotFound = errors.New("mount element not found")

// ErrUnsupportedSelector is returned by hosts that only resolve a subset of
// CSS selectors.
var ErrUnsupportedSelector = errors.New("unsupported mount selector")

// Mount is a single addressable node in a host document that a rendered
// tree can be attached under.
type Mount interface {
	// Clear removes every child of the mount point.
	Clear()

	// Append attaches the rendered node as the last child of the mount point.
	Append(n *VNode) error
}

// Host resolves mount points inside a document. The browser document and
// the parsed HTML Document both implement it.
type Host interface {
	Query(selector string) (Mount, error)
}
