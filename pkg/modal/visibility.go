package modal

// visibilityLifecycle tracks whether the initial default-vs-controlled
// resolution has happened.
type visibilityLifecycle uint8

const (
	lifecycleUninitialized visibilityLifecycle = iota
	lifecycleSettled
)

// reconciler owns the authoritative visible flag. It is the only writer;
// everything else reads the value through Visible.
//
// Two observer channels: onVisible fires on every settled transition,
// onClose only when an interaction lands on the closed state.
type reconciler struct {
	id        string
	visible   bool
	lifecycle visibilityLifecycle
	onVisible func(Change)
	onClose   func(Change)
}

func newReconciler(id string) *reconciler {
	return &reconciler{id: id}
}

// Visible returns the current authoritative value. Before the first
// definite commit it is the zero value, hidden.
func (r *reconciler) Visible() bool {
	return r.visible
}

// setObservers installs the caller's observer callbacks. Called on every
// update cycle so the reconciler always holds the latest configuration.
func (r *reconciler) setObservers(onVisible, onClose func(Change)) {
	r.onVisible = onVisible
	r.onClose = onClose
}

// Resolve absorbs external visibility inputs. Runs once per update cycle.
//
// At first resolution the controlled value wins over the default; the
// lifecycle settles regardless of whether either was supplied, and the
// default is never consulted again. The first settle establishes the
// baseline silently. Afterwards only a controlled value that differs from
// the current one produces a transition, notified without an event
// attached.
func (r *reconciler) Resolve(controlled, initial *bool) {
	if r.lifecycle == lifecycleUninitialized {
		r.lifecycle = lifecycleSettled
		next := controlled
		if next == nil {
			next = initial
		}
		if next != nil {
			r.visible = *next
		}
		return
	}

	if controlled == nil || *controlled == r.visible {
		return
	}

	next := *controlled
	// Notify before committing so observers can compare against the
	// value still rendered.
	if r.onVisible != nil {
		r.onVisible(Change{Visible: next})
	}
	r.visible = next
	emitResolved(r.id, next)
}

// Toggle flips visibility in response to an interaction. The dispatcher
// has already evaluated the guard; an unpermitted toggle changes nothing
// and notifies nobody (the caller's own handler is the dispatcher's
// responsibility).
func (r *reconciler) Toggle(ev Event, permitted bool) {
	if !permitted {
		return
	}

	next := !r.visible
	r.visible = next

	ch := Change{Visible: next, Event: &ev}
	if r.onVisible != nil {
		r.onVisible(ch)
	}
	if !next && r.onClose != nil {
		r.onClose(ch)
	}
	emitToggled(r.id, ev, next)
}
