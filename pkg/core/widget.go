package core

// Renderable is an opaque value produced by a widget build or a slot render
// function. The runtime composes renderables without inspecting them; the
// host decides what they mean (a string for a terminal host, a vdom node for
// a web host, a native view handle, ...).
type Renderable any

// Widget is an immutable configuration for a piece of UI.
type Widget interface {
	// Key distinguishes widgets of the same type during updates.
	// Return nil when identity does not matter.
	Key() any
}

// StatefulWidget is a widget whose behavior depends on state that outlives
// any single configuration.
type StatefulWidget interface {
	Widget

	// CreateState returns a fresh state object. Called once per element,
	// at mount.
	CreateState() State
}

// State holds per-instance mutable state for a StatefulWidget.
// Embed StateBase to get default implementations for everything except Build.
type State interface {
	// SetElement stores the element reference. Called by the runtime
	// before InitState.
	SetElement(*Element)

	// InitState runs once after the element is wired up and before the
	// first build. The widget configuration is available through
	// Element().Widget().
	InitState()

	// DidUpdateWidget runs when the host pushes a new widget
	// configuration, before the rebuild. oldWidget is the previous
	// configuration; the new one is available through Element().Widget().
	DidUpdateWidget(oldWidget StatefulWidget)

	// Build returns the renderable for the current configuration and state.
	Build(ctx BuildContext) Renderable

	// Dispose releases resources. Called once at unmount.
	Dispose()
}

// BuildContext carries per-element information into Build.
type BuildContext interface {
	// Widget returns the current widget configuration.
	Widget() StatefulWidget

	// InstanceID returns the element's unique instance identifier.
	InstanceID() uint64
}

// StatefulBase provides the default Key implementation for stateful widgets.
// Embed it in your widget struct:
//
//	type Counter struct {
//	    core.StatefulBase
//	}
//
//	func (Counter) CreateState() core.State { return &counterState{} }
type StatefulBase struct{}

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }
