package testing

import (
	"testing"

	"github.com/go-scrim/scrim/pkg/core"
)

// ComponentTester drives a single element's lifecycle in tests. It stands
// in for the host environment: mounting, update cycles, and re-rendering
// all happen synchronously on the test goroutine.
type ComponentTester struct {
	element *core.Element
}

// NewComponentTester creates a tester that unmounts via t.Cleanup.
func NewComponentTester(t *testing.T) *ComponentTester {
	tester := &ComponentTester{}
	t.Cleanup(tester.Unmount)
	return tester
}

// PumpWidget mounts widget on first call; subsequent calls push it as a
// new configuration (an update cycle). Returns the rendered value.
func (ct *ComponentTester) PumpWidget(widget core.StatefulWidget) core.Renderable {
	if ct.element == nil {
		ct.element = core.Mount(widget)
	} else {
		ct.element.Update(widget)
	}
	return ct.element.Render()
}

// Render returns the latest rendered value, rebuilding first if the
// element was flagged dirty (for example by an interaction handler).
// Returns nil before the first PumpWidget.
func (ct *ComponentTester) Render() core.Renderable {
	if ct.element == nil {
		return nil
	}
	return ct.element.Render()
}

// Element returns the underlying element, or nil before the first
// PumpWidget.
func (ct *ComponentTester) Element() *core.Element {
	return ct.element
}

// Unmount disposes the element. Idempotent; called automatically at test
// cleanup.
func (ct *ComponentTester) Unmount() {
	if ct.element != nil {
		ct.element.Unmount()
		ct.element = nil
	}
}
