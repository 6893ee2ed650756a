// Package core provides the headless component runtime: widgets, state,
// and the element lifecycle that connects them.
//
// # Widgets and State
//
// A widget is an immutable configuration struct. Stateful widgets create a
// State that survives across configuration updates:
//
//	type Counter struct {
//	    core.StatefulBase
//	    Step int
//	}
//
//	func (Counter) CreateState() core.State { return &counterState{} }
//
//	type counterState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) core.Renderable {
//	    return fmt.Sprintf("count=%d", s.count)
//	}
//
// # Elements
//
// An Element hosts one widget instance and its state. The host environment
// drives the lifecycle: Mount creates the state and builds once, Update
// pushes a new configuration (an update cycle), Render returns the latest
// built value, and Unmount disposes the state.
//
// The runtime is headless: Build returns an opaque Renderable that the
// runtime composes but never inspects. Rendering is entirely the host's
// concern.
//
// # Threading
//
// The runtime is single-threaded and cooperative. All lifecycle methods and
// SetState must be called from the host's event loop; there is no internal
// synchronization around element state.
package core
