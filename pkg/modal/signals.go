package modal

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Transition signals. These are side-band diagnostics: hooks observe them
// without any ordering guarantee relative to the OnVisible/OnClose
// callbacks, which remain direct synchronous calls.
var (
	// ModalOpened is emitted when an interaction transitions a modal to
	// visible.
	ModalOpened = capitan.NewSignal(
		"scrim.modal.opened",
		"Modal toggled to visible",
	)

	// ModalClosed is emitted when an interaction transitions a modal to
	// hidden.
	ModalClosed = capitan.NewSignal(
		"scrim.modal.closed",
		"Modal toggled to hidden",
	)

	// ModalResolved is emitted when an external controlled value changes
	// visibility between update cycles.
	ModalResolved = capitan.NewSignal(
		"scrim.modal.resolved",
		"External visibility change absorbed",
	)

	// ModalToggleSuppressed is emitted when the guard withholds a toggle.
	// The caller's own handler still ran.
	ModalToggleSuppressed = capitan.NewSignal(
		"scrim.modal.toggle.suppressed",
		"Interaction toggle suppressed by guard",
	)
)

// Signal field keys.
var (
	// KeyModalID is the per-instance modal identifier.
	KeyModalID = capitan.NewStringKey("modal_id")

	// KeySlot is the slot the interaction arrived at.
	KeySlot = capitan.NewStringKey("slot")

	// KeyKind is the interaction kind.
	KeyKind = capitan.NewStringKey("kind")

	// KeyVisible is the post-transition visibility, "open" or "closed".
	KeyVisible = capitan.NewStringKey("visible")

	// KeyReason is why a toggle was suppressed, "loading" or
	// "close_disabled".
	KeyReason = capitan.NewStringKey("reason")
)

func visibleString(visible bool) string {
	if visible {
		return "open"
	}
	return "closed"
}

func emitToggled(id string, ev Event, visible bool) {
	sig := ModalClosed
	if visible {
		sig = ModalOpened
	}
	capitan.Emit(context.Background(), sig,
		KeyModalID.Field(id),
		KeySlot.Field(ev.Slot.String()),
		KeyKind.Field(ev.Kind.String()),
	)
}

func emitResolved(id string, visible bool) {
	capitan.Emit(context.Background(), ModalResolved,
		KeyModalID.Field(id),
		KeyVisible.Field(visibleString(visible)),
	)
}

func emitSuppressed(id string, ev Event, reason string) {
	capitan.Emit(context.Background(), ModalToggleSuppressed,
		KeyModalID.Field(id),
		KeySlot.Field(ev.Slot.String()),
		KeyKind.Field(ev.Kind.String()),
		KeyReason.Field(reason),
	)
}
