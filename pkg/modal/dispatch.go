package modal

// dispatcher wraps caller handlers with the transition guard. It holds no
// state of its own and is rebuilt on every build from the current widget
// configuration.
type dispatcher struct {
	id           string
	loading      bool
	disableClose bool
	toggle       func(Event, bool)
	handlers     map[Kind]Handler
}

// newDispatcher infers kind registration from which handler fields are
// non-nil. toggle receives the event and the guard verdict; the modal
// state routes it through SetState so permitted toggles trigger a rebuild.
func newDispatcher(id string, w Modal, toggle func(Event, bool)) *dispatcher {
	d := &dispatcher{
		id:           id,
		loading:      w.Loading,
		disableClose: w.DisableModalClose,
		toggle:       toggle,
	}
	if w.OnClick != nil || w.OnTouchEnd != nil || w.OnPress != nil {
		d.handlers = make(map[Kind]Handler, 3)
		if w.OnClick != nil {
			d.handlers[KindClick] = w.OnClick
		}
		if w.OnTouchEnd != nil {
			d.handlers[KindTouchEnd] = w.OnTouchEnd
		}
		if w.OnPress != nil {
			d.handlers[KindPress] = w.OnPress
		}
	}
	return d
}

// permits reports whether an interaction on slot may drive a toggle.
//
//	container slot → !loading && !disableClose
//	other slots    → !loading
//
// DisableModalClose gates the container slot in both directions: with the
// flag set, the container gesture neither closes nor opens.
func (d *dispatcher) permits(slot Slot) bool {
	if d.loading {
		return false
	}
	if slot == SlotContainer && d.disableClose {
		return false
	}
	return true
}

// wrap builds the guarded handler for one slot and kind. The guard is
// evaluated when the event arrives, the reconciler runs next, and the
// caller's own handler always runs last with the untouched payload.
func (d *dispatcher) wrap(slot Slot, kind Kind) func(payload any) {
	own := d.handlers[kind]
	return func(payload any) {
		ev := Event{Kind: kind, Slot: slot, Payload: payload}
		permitted := d.permits(slot)
		if !permitted {
			emitSuppressed(d.id, ev, d.suppressReason())
		}
		d.toggle(ev, permitted)
		own(ev)
	}
}

func (d *dispatcher) suppressReason() string {
	if d.loading {
		return "loading"
	}
	return "close_disabled"
}

// slotHandlers returns the wrapped handlers for slot, one per registered
// kind. Returns nil when no kinds are registered; slots never see
// handlers the caller did not ask for.
func (d *dispatcher) slotHandlers(slot Slot) map[Kind]func(payload any) {
	if len(d.handlers) == 0 {
		return nil
	}
	m := make(map[Kind]func(payload any), len(d.handlers))
	for _, kind := range kinds {
		if _, ok := d.handlers[kind]; ok {
			m[kind] = d.wrap(slot, kind)
		}
	}
	return m
}
