package modal

import "github.com/go-scrim/scrim/pkg/core"

// SlotProps is the read-only bundle handed to each render slot.
type SlotProps struct {
	// ID is the stable per-instance identifier, e.g. "modal-7".
	ID string

	// Visible is the authoritative visibility at build time.
	Visible bool

	// Loading mirrors the widget's Loading flag.
	Loading bool

	// DefaultVisible mirrors the widget's DefaultVisible field. It is
	// informational; the component only consults it at first resolution.
	DefaultVisible *bool

	// Attributes are caller pass-through attributes, forwarded untouched.
	Attributes map[string]string

	// Handlers carries the guarded handler per registered interaction
	// kind. Nil when the caller registered no handlers.
	Handlers map[Kind]func(payload any)
}

// Handle invokes the handler for kind with the host's event payload.
// No-op when the kind was not registered.
func (p SlotProps) Handle(kind Kind, payload any) {
	if h, ok := p.Handlers[kind]; ok {
		h(payload)
	}
}

// Handles reports whether a handler is registered for kind.
func (p SlotProps) Handles(kind Kind) bool {
	_, ok := p.Handlers[kind]
	return ok
}

// RenderFunc renders one of the header, main, or footer slots.
type RenderFunc func(SlotProps) core.Renderable

// ContainerRenderFunc renders the container slot around the composed
// content group (header, main, footer renderables in order, absent slots
// skipped).
type ContainerRenderFunc func(props SlotProps, content []core.Renderable) core.Renderable
