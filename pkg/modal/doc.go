// Package modal provides a headless modal component: it owns the
// open/closed state of an overlay and decides which interactions may
// toggle it, while delegating all rendering to caller-supplied slot
// functions.
//
// # Model
//
// A [Modal] has four render slots: header, main, footer, and container.
// Each slot receives a read-only [SlotProps] bundle (instance id, current
// visibility, loading flag, pass-through attributes) plus guarded handlers
// for the interaction kinds the caller registered. Slots return opaque
// [core.Renderable] values; the component composes header+main+footer into
// a content group and hands the group to the container slot.
//
// Visibility follows the controlled/uncontrolled convention: a non-nil
// Visible field is authoritative on every update cycle, DefaultVisible is
// consulted exactly once at first resolution, and interactions toggle the
// internal value in between. Observers fire on real transitions only.
//
// # Guards
//
// Loading suppresses every toggle. DisableModalClose suppresses toggles
// from the container slot only. A suppressed interaction still reaches the
// caller's own handler; only the visibility side effect is withheld.
//
// # Example
//
//	element := core.Mount(modal.Modal{
//	    DefaultVisible: modal.Bool(true),
//	    OnClose: func(c modal.Change) { fmt.Println("closed") },
//	    OnClick: func(e modal.Event) {},
//	    Main: func(p modal.SlotProps) core.Renderable {
//	        return "body"
//	    },
//	    Container: func(p modal.SlotProps, content []core.Renderable) core.Renderable {
//	        if !p.Visible {
//	            return ""
//	        }
//	        return frame(content)
//	    },
//	})
//
// The host forwards its own click/touch/press events through the handlers
// carried in SlotProps and re-renders from element.Render().
package modal
