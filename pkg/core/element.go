package core

// Element hosts a single stateful widget instance and its state.
//
// The host environment owns the element and drives its lifecycle from a
// single goroutine: Mount once, Update on every configuration change,
// Render whenever a fresh renderable is needed, Unmount at teardown.
type Element struct {
	widget  StatefulWidget
	state   State
	id      uint64
	built   Renderable
	dirty   bool
	mounted bool
}

// Mount creates an element for widget, initializes its state, and performs
// the first build.
func Mount(widget StatefulWidget) *Element {
	e := &Element{
		widget:  widget,
		id:      NextInstanceID(),
		mounted: true,
		dirty:   true,
	}
	e.state = widget.CreateState()
	e.state.SetElement(e)
	e.state.InitState()
	e.rebuildIfNeeded()
	return e
}

// Widget returns the current widget configuration.
func (e *Element) Widget() StatefulWidget {
	return e.widget
}

// InstanceID returns the element's unique instance identifier.
// The identifier is stable for the element's lifetime and never reused
// within a process.
func (e *Element) InstanceID() uint64 {
	return e.id
}

// Update pushes a new widget configuration and rebuilds. This is an update
// cycle: the state sees DidUpdateWidget before the rebuild. No-op after
// unmount.
func (e *Element) Update(widget StatefulWidget) {
	if !e.mounted {
		return
	}
	old := e.widget
	e.widget = widget
	e.state.DidUpdateWidget(old)
	e.dirty = true
	e.rebuildIfNeeded()
}

// MarkNeedsBuild flags the element for rebuild on the next Render.
// StateBase.SetState calls this automatically.
func (e *Element) MarkNeedsBuild() {
	e.dirty = true
}

// Render returns the latest built renderable, rebuilding first if the
// element is dirty. Returns nil after unmount.
func (e *Element) Render() Renderable {
	e.rebuildIfNeeded()
	return e.built
}

// Unmount disposes the state and detaches the element. Idempotent.
func (e *Element) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.built = nil
	e.state.Dispose()
}

// rebuildIfNeeded builds at most once per call. A SetState issued from
// inside Build leaves the element dirty; the next Render picks it up.
func (e *Element) rebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	e.built = e.state.Build(e)
}
