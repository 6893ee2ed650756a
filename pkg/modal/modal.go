package modal

import (
	"fmt"

	"github.com/go-scrim/scrim/pkg/core"
)

// Modal is the headless modal widget.
//
// Visibility: a non-nil Visible is the controlled value and wins on every
// update cycle. DefaultVisible seeds the value once, at first resolution,
// when Visible is absent. With both absent the modal starts hidden and is
// driven purely by interactions.
//
// Interactions: OnClick, OnTouchEnd, and OnPress register the interaction
// kinds the host will deliver. Each registered kind appears as a guarded
// handler in every slot's SlotProps; firing one toggles visibility when
// the guard permits and always reaches the registered callback afterwards.
type Modal struct {
	core.StatefulBase

	// Visible is the controlled visibility value. Nil means uncontrolled.
	Visible *bool

	// DefaultVisible seeds visibility at first resolution when Visible
	// is nil. Never consulted again after that.
	DefaultVisible *bool

	// Loading suppresses all visibility toggles while true.
	Loading bool

	// DisableModalClose suppresses toggles from the container slot.
	// Other slots are unaffected.
	DisableModalClose bool

	// OnVisible observes every visibility transition, interaction-driven
	// or external. It runs before the per-kind callback for the
	// triggering event.
	OnVisible func(Change)

	// OnClose observes interaction-driven transitions to hidden. It is a
	// filtered view of OnVisible kept as its own channel for caller
	// convenience.
	OnClose func(Change)

	// Per-kind interaction callbacks. A nil field leaves that kind
	// unregistered.
	OnClick    Handler
	OnTouchEnd Handler
	OnPress    Handler

	// Render slots. Nil slots are skipped; a nil Container returns the
	// content group unwrapped.
	Header    RenderFunc
	Main      RenderFunc
	Footer    RenderFunc
	Container ContainerRenderFunc

	// Attributes are forwarded to every slot untouched.
	Attributes map[string]string
}

// CreateState returns the modal's state.
func (m Modal) CreateState() core.State {
	return &modalState{}
}

type modalState struct {
	core.StateBase
	id  string
	rec *reconciler
}

func (s *modalState) InitState() {
	w := s.Element().Widget().(Modal)
	s.id = fmt.Sprintf("modal-%d", s.Element().InstanceID())
	s.rec = newReconciler(s.id)
	s.rec.setObservers(w.OnVisible, w.OnClose)
	s.rec.Resolve(w.Visible, w.DefaultVisible)
}

func (s *modalState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.Element().Widget().(Modal)
	s.rec.setObservers(w.OnVisible, w.OnClose)
	s.rec.Resolve(w.Visible, w.DefaultVisible)
}

func (s *modalState) Build(ctx core.BuildContext) core.Renderable {
	w := ctx.Widget().(Modal)
	d := newDispatcher(s.id, w, s.toggle)

	base := SlotProps{
		ID:             s.id,
		Visible:        s.rec.Visible(),
		Loading:        w.Loading,
		DefaultVisible: w.DefaultVisible,
		Attributes:     w.Attributes,
	}

	var content []core.Renderable
	if w.Header != nil {
		props := base
		props.Handlers = d.slotHandlers(SlotHeader)
		content = append(content, w.Header(props))
	}
	if w.Main != nil {
		props := base
		props.Handlers = d.slotHandlers(SlotMain)
		content = append(content, w.Main(props))
	}
	if w.Footer != nil {
		props := base
		props.Handlers = d.slotHandlers(SlotFooter)
		content = append(content, w.Footer(props))
	}

	if w.Container == nil {
		return content
	}
	props := base
	props.Handlers = d.slotHandlers(SlotContainer)
	return w.Container(props, content)
}

// toggle routes a guard verdict into the reconciler. Permitted toggles
// commit through SetState so the host sees a dirty element; suppressed
// ones touch nothing.
func (s *modalState) toggle(ev Event, permitted bool) {
	if !permitted {
		s.rec.Toggle(ev, false)
		return
	}
	s.SetState(func() {
		s.rec.Toggle(ev, true)
	})
}
