//go:build !dev
// +build !dev

package runtime

import "github.com/vcrobe/polytext/console"

// callOnInit invokes the OnInit lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

// callOnParametersSet invokes the OnPropertiesSet lifecycle method in production mode.
func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer recoverLifecycle("OnPropertiesSet", key)
	receiver.OnPropertiesSet()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}

func recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		console.Logger().Errorw("lifecycle panic recovered",
			"hook", hook,
			"component", key,
			"panic", rec,
		)
	}
}
