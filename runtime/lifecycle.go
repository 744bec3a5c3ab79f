package runtime

// Initializer is implemented by components that need one-time setup before
// their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that derive internal
// values from their props. OnPropertiesSet runs before every render.
type ParameterReceiver interface {
	OnPropertiesSet()
}

// Cleaner is implemented by components that release resources when they
// leave the tree.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater copies the props of a freshly constructed component onto an
// instance that is being reused at the same key.
type PropUpdater interface {
	ApplyProps(source Component)
}
