package core

// Listenable is anything that can notify listeners of changes.
// AddListener returns an unsubscribe function.
type Listenable interface {
	AddListener(listener func()) func()
}

// Notifier is a basic Listenable for controller-style objects.
// The zero value is ready to use.
//
// Notifier is NOT thread-safe; notify from the host's event loop only.
type Notifier struct {
	listeners []func()
}

// AddListener registers listener and returns an unsubscribe function.
func (n *Notifier) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	index := len(n.listeners)
	n.listeners = append(n.listeners, listener)
	return func() {
		if index < len(n.listeners) {
			n.listeners[index] = nil
		}
	}
}

// NotifyListeners invokes all registered listeners in registration order.
func (n *Notifier) NotifyListeners() {
	for _, listener := range n.listeners {
		if listener != nil {
			listener()
		}
	}
}

// UseListenable subscribes to a listenable and triggers rebuilds.
// Call once in InitState; the subscription is cleaned up on dispose.
//
//	func (s *myState) InitState() {
//	    core.UseListenable(s, s.controller)
//	}
func UseListenable(s stateBase, listenable Listenable) {
	base := s.state()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// Managed holds a value and flags the element for rebuild when it changes.
//
// Managed is NOT thread-safe. It must only be accessed from the host's
// event loop.
//
// Example:
//
//	type myState struct {
//	    core.StateBase
//	    count *core.Managed[int]
//	}
//
//	func (s *myState) InitState() {
//	    s.count = core.NewManaged(s, 0)
//	}
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged creates a new managed state value.
func NewManaged[T any](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{
		base:  s.state(),
		value: initial,
	}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and flags a rebuild.
func (m *Managed[T]) Set(value T) {
	m.value = value
	m.base.SetState(nil)
}

// Update applies a transformation to the current value and flags a rebuild.
func (m *Managed[T]) Update(transform func(T) T) {
	m.value = transform(m.value)
	m.base.SetState(nil)
}
