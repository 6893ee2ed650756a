package modal

// Kind identifies an interaction channel. The set is fixed: hosts map
// their native events (click, touch end, key press, tap, ...) onto one of
// these kinds before dispatching.
type Kind int

const (
	KindClick Kind = iota
	KindTouchEnd
	KindPress
)

// kinds is the fixed enumeration order used when assembling slot handlers.
var kinds = [...]Kind{KindClick, KindTouchEnd, KindPress}

func (k Kind) String() string {
	switch k {
	case KindClick:
		return "click"
	case KindTouchEnd:
		return "touchend"
	case KindPress:
		return "press"
	default:
		return "unknown"
	}
}

// Slot identifies one of the four render regions.
type Slot int

const (
	SlotHeader Slot = iota
	SlotMain
	SlotFooter
	SlotContainer
)

func (s Slot) String() string {
	switch s {
	case SlotHeader:
		return "header"
	case SlotMain:
		return "main"
	case SlotFooter:
		return "footer"
	case SlotContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Event describes one interaction delivered to a slot handler.
// Payload is the host's native event descriptor; the component never
// inspects it.
type Event struct {
	Kind    Kind
	Slot    Slot
	Payload any
}

// Change describes a visibility transition delivered to observers.
// Event is nil when the transition was driven by an external visibility
// change rather than an interaction.
type Change struct {
	Visible bool
	Event   *Event
}

// Handler is a caller-supplied callback for one interaction kind.
// It is invoked on every interaction of that kind, whether or not the
// guard permitted a toggle.
type Handler func(Event)

// Bool returns a pointer to v. Convenience for the optional Visible and
// DefaultVisible fields.
func Bool(v bool) *bool {
	return &v
}
