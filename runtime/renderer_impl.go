package runtime

import (
	"errors"
	"fmt"

	"github.com/vcrobe/polytext/console"
	"github.com/vcrobe/polytext/vdom"
)

// rootKey identifies the root component in the lifecycle maps.
const rootKey = "__root__"

// ErrNoRootComponent is returned when a render is requested before a root
// component has been set.
var ErrNoRootComponent = errors.New("no root component set")

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool // Track which components have been initialized
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component       // The root component
	mount            vdom.Mount
	mounted          bool
	prevVDOM         *vdom.VNode // Last rendered tree
}

// NewRenderer creates a new runtime renderer that renders into mount.
func NewRenderer(mount vdom.Mount) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		mount:       mount,
	}
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// CurrentVDOM returns the tree produced by the last successful render.
func (r *RendererImpl) CurrentVDOM() *vdom.VNode {
	return r.prevVDOM
}

// Mounted reports whether the root component has been attached.
func (r *RendererImpl) Mounted() bool {
	return r.mounted
}

// RenderRoot runs a full render pass and replaces the mount point's subtree.
func (r *RendererImpl) RenderRoot() error {
	if r.mount == nil {
		return vdom.ErrMountNotFound
	}
	if r.currentComponent == nil {
		return ErrNoRootComponent
	}

	// Reset activeKeys for this render cycle
	r.activeKeys = make(map[string]bool)

	r.currentComponent.SetRenderer(r)

	if !r.initialized[rootKey] {
		// Call OnInit only once, before first render
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}

	// Call OnPropertiesSet before every render (including first)
	if paramReceiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, rootKey)
	}

	newVDOM := r.currentComponent.Render(r)

	r.mount.Clear()
	if err := r.mount.Append(newVDOM); err != nil {
		return fmt.Errorf("attach rendered tree: %w", err)
	}

	r.prevVDOM = newVDOM

	// Clean up components that were not rendered in this cycle
	r.cleanupUnmountedComponents()
	return nil
}

// RenderChild handles instance creation and reuse for child components.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	// Mark this component as active in the current render cycle
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	isFirstRender := false

	if !exists {
		instance = childWithProps
		r.instances[key] = instance
		isFirstRender = true
	} else if updater, ok := instance.(PropUpdater); ok {
		// Preserve the existing instance and apply the new props to it.
		updater.ApplyProps(childWithProps)
	} else {
		// Nothing to carry over: take the new instance as-is.
		instance = childWithProps
		r.instances[key] = instance
	}

	instance.SetRenderer(r)

	if isFirstRender {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			r.callOnDestroy(cleaner, key)
		}
		delete(r.instances, key)
		delete(r.initialized, key)
	}
}

// ReRender re-runs the render cycle, logging instead of returning errors.
func (r *RendererImpl) ReRender() {
	if err := r.RenderRoot(); err != nil {
		console.Error("re-render failed: ", err)
	}
}
