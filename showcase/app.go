// Package main provides the scrim demo application: a terminal host for
// the headless modal, with key presses standing in for interaction events.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scrim/scrim/pkg/core"
	"github.com/go-scrim/scrim/pkg/modal"
)

// auditMsg carries one line from a capitan signal hook into the model.
type auditMsg struct {
	line string
}

const maxAuditLines = 6

// app is the bubbletea model. It mounts one hostWidget and reaches the
// modal's guarded handlers through the captured slot props.
type app struct {
	cfg      Config
	controls *hostControls
	host     *hostState
	element  *core.Element
	slots    *slotCapture

	spin  spinner.Model
	audit []string
	width int
}

// slotCapture stores the latest slot props so key handlers can reach the
// guarded interaction handlers between renders.
type slotCapture struct {
	main      modal.SlotProps
	container modal.SlotProps
	rendered  string
}

func newApp(cfg Config) *app {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Accent))

	a := &app{
		cfg:      cfg,
		controls: &hostControls{},
		host:     &hostState{},
		slots:    &slotCapture{},
		spin:     s,
	}
	a.element = core.Mount(hostWidget{
		cfg:      cfg,
		controls: a.controls,
		spin:     &a.spin,
		slots:    a.slots,
		st:       a.host,
	})
	a.sync()
	return a
}

// sync re-renders the host element and caches the container output. State
// changes arrive through Managed and the controls listenable, so the
// element is already flagged dirty when anything moved.
func (a *app) sync() {
	if rendered, ok := a.element.Render().(string); ok {
		a.slots.rendered = rendered
	}
}

func (a *app) Init() tea.Cmd {
	return a.spin.Tick
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "enter":
			// Container gesture: subject to the disable-close guard.
			a.slots.container.Handle(modal.KindPress, msg)
			a.sync()
		case "m":
			// Main slot gesture: plain loading guard only.
			a.slots.main.Handle(modal.KindPress, msg)
			a.sync()
		case "o":
			// External controlled flip, no interaction event involved.
			a.host.flipOpen()
			a.sync()
		case "l":
			a.controls.toggleLoading()
			a.sync()
		case "d":
			a.controls.toggleNoClose()
			a.sync()
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case auditMsg:
		a.audit = append(a.audit, msg.line)
		if len(a.audit) > maxAuditLines {
			a.audit = a.audit[len(a.audit)-maxAuditLines:]
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		if a.controls.loading {
			a.controls.frameAdvanced()
			a.sync()
		}
		return a, cmd
	}

	return a, nil
}

func (a *app) View() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(a.cfg.Colors.Dim))

	var b strings.Builder
	b.WriteString(a.statusLine())
	b.WriteString("\n\n")

	if a.slots.rendered != "" {
		b.WriteString(a.slots.rendered)
		b.WriteString("\n")
	} else {
		b.WriteString(dim.Render("(modal hidden)"))
		b.WriteString("\n")
	}

	if len(a.audit) > 0 {
		b.WriteString("\n")
		b.WriteString(dim.Render("signals:"))
		b.WriteString("\n")
		for _, line := range a.audit {
			b.WriteString(dim.Render("  " + line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("enter container · m main · o external flip · l loading · d disable-close · q quit"))
	return b.String()
}

func (a *app) statusLine() string {
	flag := func(name string, on bool) string {
		mark := "off"
		if on {
			mark = "on"
		}
		return fmt.Sprintf("%s=%s", name, mark)
	}
	return strings.Join([]string{
		flag("open", a.host.open.Value()),
		flag("loading", a.controls.loading),
		flag("disable-close", a.controls.noClose),
	}, "  ")
}
