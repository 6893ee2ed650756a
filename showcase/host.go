package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scrim/scrim/pkg/core"
	"github.com/go-scrim/scrim/pkg/modal"
)

// hostControls is a controller-style listenable: the event loop mutates it
// and every mounted subscriber rebuilds through core.UseListenable.
type hostControls struct {
	core.Notifier
	loading bool
	noClose bool
}

func (c *hostControls) toggleLoading() {
	c.loading = !c.loading
	c.NotifyListeners()
}

func (c *hostControls) toggleNoClose() {
	c.noClose = !c.noClose
	c.NotifyListeners()
}

// frameAdvanced re-renders subscribers after a spinner tick.
func (c *hostControls) frameAdvanced() {
	c.NotifyListeners()
}

// hostWidget mounts the modal under host ownership. Visibility lives in the
// host state as a managed value; loading and disable-close arrive through
// the controls listenable. The state is injected so the event loop keeps a
// handle on it after mounting.
type hostWidget struct {
	core.StatefulBase
	cfg      Config
	controls *hostControls
	spin     *spinner.Model
	slots    *slotCapture
	st       *hostState
}

func (w hostWidget) CreateState() core.State { return w.st }

type hostState struct {
	core.StateBase
	widget hostWidget

	// open is the host-side source of truth for the controlled visibility
	// value. The modal's observer writes transitions back into it.
	open *core.Managed[bool]

	modal *core.Element
}

func (s *hostState) InitState() {
	s.widget = s.Element().Widget().(hostWidget)
	s.open = core.NewManaged(s, true)
	core.UseListenable(s, s.widget.controls)
	s.modal = core.Mount(s.modalWidget())
	s.OnDispose(func() { s.modal.Unmount() })
}

func (s *hostState) DidUpdateWidget(core.StatefulWidget) {
	s.widget = s.Element().Widget().(hostWidget)
}

func (s *hostState) Build(core.BuildContext) core.Renderable {
	s.modal.Update(s.modalWidget())
	return s.modal.Render()
}

// flipOpen flips the controlled value without an interaction event, the
// external-change path.
func (s *hostState) flipOpen() {
	s.open.Update(func(v bool) bool { return !v })
}

// modalWidget assembles the headless modal configuration from the current
// host state. Slots render lipgloss-styled strings.
func (s *hostState) modalWidget() modal.Modal {
	cfg := s.widget.cfg
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Accent))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Dim))
	inner := cfg.Width - 4

	return modal.Modal{
		Visible:           modal.Bool(s.open.Value()),
		Loading:           s.widget.controls.loading,
		DisableModalClose: s.widget.controls.noClose,

		OnVisible: func(c modal.Change) { s.open.Set(c.Visible) },

		// Interaction kinds the host delivers: key presses only.
		OnPress: func(modal.Event) {},

		Attributes: map[string]string{"role": "dialog"},

		Header: func(p modal.SlotProps) core.Renderable {
			title := accent.Bold(true).Render(cfg.Title)
			if p.Loading {
				title += " " + s.widget.spin.View()
			}
			return title
		},
		Main: func(p modal.SlotProps) core.Renderable {
			s.widget.slots.main = p
			body := "This dialog is driven by the headless core.\nPress m to toggle from the main slot."
			if p.Loading {
				body = "Loading... toggles are suppressed."
			}
			return lipgloss.NewStyle().Width(inner).Render(body)
		},
		Footer: func(p modal.SlotProps) core.Renderable {
			return dim.Render(fmt.Sprintf("id=%s  enter closes via container", p.ID))
		},
		Container: func(p modal.SlotProps, content []core.Renderable) core.Renderable {
			s.widget.slots.container = p
			if !p.Visible {
				return ""
			}
			parts := make([]string, 0, len(content))
			for _, c := range content {
				parts = append(parts, fmt.Sprint(c))
			}
			return lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(cfg.Colors.Border)).
				Padding(0, 1).
				Width(cfg.Width).
				Render(strings.Join(parts, "\n\n"))
		},
	}
}
