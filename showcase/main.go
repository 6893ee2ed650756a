package main

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoobzio/capitan"

	"github.com/go-scrim/scrim/pkg/modal"
)

func main() {
	cfg, err := LoadOptional(".")
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(newApp(cfg.Resolved()), tea.WithAltScreen())
	hookSignals(p)
	defer capitan.Shutdown()

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// hookSignals feeds modal transition signals into the program as audit
// lines. p.Send is safe from hook goroutines.
func hookSignals(p *tea.Program) {
	capitan.Hook(modal.ModalOpened, func(_ context.Context, e *capitan.Event) {
		id, _ := modal.KeyModalID.From(e)
		slot, _ := modal.KeySlot.From(e)
		p.Send(auditMsg{line: fmt.Sprintf("%s opened via %s", id, slot)})
	})
	capitan.Hook(modal.ModalClosed, func(_ context.Context, e *capitan.Event) {
		id, _ := modal.KeyModalID.From(e)
		slot, _ := modal.KeySlot.From(e)
		p.Send(auditMsg{line: fmt.Sprintf("%s closed via %s", id, slot)})
	})
	capitan.Hook(modal.ModalResolved, func(_ context.Context, e *capitan.Event) {
		id, _ := modal.KeyModalID.From(e)
		visible, _ := modal.KeyVisible.From(e)
		p.Send(auditMsg{line: fmt.Sprintf("%s externally set %s", id, visible)})
	})
	capitan.Hook(modal.ModalToggleSuppressed, func(_ context.Context, e *capitan.Event) {
		id, _ := modal.KeyModalID.From(e)
		reason, _ := modal.KeyReason.From(e)
		p.Send(auditMsg{line: fmt.Sprintf("%s toggle suppressed (%s)", id, reason)})
	})
}
