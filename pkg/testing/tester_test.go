package testing

import (
	"testing"

	"github.com/go-scrim/scrim/pkg/core"
)

type echoWidget struct {
	core.StatefulBase
	value string
}

func (w echoWidget) CreateState() core.State { return &echoState{} }

type echoState struct {
	core.StateBase
}

func (s *echoState) Build(ctx core.BuildContext) core.Renderable {
	return ctx.Widget().(echoWidget).value
}

// TestComponentTester_PumpWidget verifies mount-then-update semantics.
func TestComponentTester_PumpWidget(t *testing.T) {
	tester := NewComponentTester(t)

	if got := tester.Render(); got != nil {
		t.Errorf("expected nil render before pump, got %v", got)
	}

	if got := tester.PumpWidget(echoWidget{value: "first"}); got != "first" {
		t.Errorf("expected %q, got %v", "first", got)
	}

	element := tester.Element()
	if got := tester.PumpWidget(echoWidget{value: "second"}); got != "second" {
		t.Errorf("expected %q, got %v", "second", got)
	}
	if tester.Element() != element {
		t.Error("pumping a new configuration must reuse the element")
	}
}

// TestComponentTester_Unmount verifies manual unmount is safe and repeatable.
func TestComponentTester_Unmount(t *testing.T) {
	tester := NewComponentTester(t)
	tester.PumpWidget(echoWidget{value: "v"})

	tester.Unmount()
	tester.Unmount()

	if tester.Element() != nil {
		t.Error("expected no element after unmount")
	}
}
