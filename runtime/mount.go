package runtime

import (
	"errors"
	"fmt"

	"github.com/vcrobe/polytext/console"
	"github.com/vcrobe/polytext/vdom"
)

// ErrAlreadyMounted is returned when Mount is called on a renderer whose
// root has already been attached.
var ErrAlreadyMounted = errors.New("root component already mounted")

// Mount attaches root under the given mount point and performs the first
// render. The mount handle is required: a nil handle is the fatal
// vdom.ErrMountNotFound and nothing is rendered.
func Mount(mount vdom.Mount, root Component) (*RendererImpl, error) {
	r := NewRenderer(mount)
	if err := r.Mount(root); err != nil {
		return nil, err
	}
	return r, nil
}

// MountSelector resolves selector on host and mounts root there.
func MountSelector(host vdom.Host, selector string, root Component) (*RendererImpl, error) {
	if host == nil {
		return nil, fmt.Errorf("bootstrap %s: %w", selector, vdom.ErrMountNotFound)
	}
	mount, err := host.Query(selector)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return Mount(mount, root)
}

// Mount attaches root and renders it. It may be called once per renderer.
func (r *RendererImpl) Mount(root Component) error {
	if r.mounted {
		return ErrAlreadyMounted
	}
	if r.mount == nil {
		return fmt.Errorf("bootstrap: %w", vdom.ErrMountNotFound)
	}
	if root == nil {
		return fmt.Errorf("bootstrap: %w", ErrNoRootComponent)
	}

	r.SetCurrentComponent(root)
	if err := r.RenderRoot(); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	r.mounted = true

	console.Debug("root component mounted")
	return nil
}
