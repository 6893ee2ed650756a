package core

import "testing"

// probeWidget is a test widget whose state records lifecycle calls.
// The state is injected so tests can inspect it after mounting.
type probeWidget struct {
	StatefulBase
	label string
	state *probeState
}

func (w probeWidget) CreateState() State { return w.state }

type probeState struct {
	StateBase
	inits   int
	updates int
	builds  int
	lastOld StatefulWidget
}

func (s *probeState) InitState() { s.inits++ }

func (s *probeState) DidUpdateWidget(oldWidget StatefulWidget) {
	s.updates++
	s.lastOld = oldWidget
}

func (s *probeState) Build(ctx BuildContext) Renderable {
	s.builds++
	return ctx.Widget().(probeWidget).label
}

// TestMount_BuildsOnce verifies that Mount runs InitState then exactly one build.
func TestMount_BuildsOnce(t *testing.T) {
	state := &probeState{}
	element := Mount(probeWidget{label: "a", state: state})
	defer element.Unmount()

	if state.inits != 1 {
		t.Errorf("expected 1 InitState call, got %d", state.inits)
	}
	if state.builds != 1 {
		t.Errorf("expected 1 build, got %d", state.builds)
	}
	if got := element.Render(); got != "a" {
		t.Errorf("expected rendered value %q, got %v", "a", got)
	}
	if state.builds != 1 {
		t.Errorf("Render on a clean element should not rebuild, got %d builds", state.builds)
	}
}

// TestElement_Update_RunsDidUpdateWidget verifies the update cycle order:
// DidUpdateWidget sees the old widget, then the element rebuilds with the new one.
func TestElement_Update_RunsDidUpdateWidget(t *testing.T) {
	state := &probeState{}
	element := Mount(probeWidget{label: "a", state: state})
	defer element.Unmount()

	element.Update(probeWidget{label: "b", state: state})

	if state.updates != 1 {
		t.Fatalf("expected 1 DidUpdateWidget call, got %d", state.updates)
	}
	if old, ok := state.lastOld.(probeWidget); !ok || old.label != "a" {
		t.Errorf("expected old widget with label %q, got %v", "a", state.lastOld)
	}
	if got := element.Render(); got != "b" {
		t.Errorf("expected rendered value %q, got %v", "b", got)
	}
}

// TestElement_SetState_FlagsRebuild verifies that SetState dirties the
// element so the next Render rebuilds.
func TestElement_SetState_FlagsRebuild(t *testing.T) {
	state := &probeState{}
	element := Mount(probeWidget{label: "a", state: state})
	defer element.Unmount()

	state.SetState(nil)

	if state.builds != 1 {
		t.Fatalf("SetState should not build eagerly, got %d builds", state.builds)
	}
	element.Render()
	if state.builds != 2 {
		t.Errorf("expected rebuild on Render after SetState, got %d builds", state.builds)
	}
}

// TestElement_Unmount_DisposesState verifies disposal and that later calls
// are no-ops.
func TestElement_Unmount_DisposesState(t *testing.T) {
	state := &probeState{}
	disposed := false
	element := Mount(probeWidget{label: "a", state: state})
	state.OnDispose(func() { disposed = true })

	element.Unmount()

	if !disposed {
		t.Error("expected disposer to run at unmount")
	}
	if !state.IsDisposed() {
		t.Error("expected state to report disposed")
	}
	if got := element.Render(); got != nil {
		t.Errorf("expected nil render after unmount, got %v", got)
	}

	// SetState and Update after unmount must not panic or rebuild.
	state.SetState(nil)
	element.Update(probeWidget{label: "b", state: state})
	if state.builds != 1 {
		t.Errorf("expected no builds after unmount, got %d", state.builds)
	}

	element.Unmount() // idempotent
}

// TestElement_InstanceIDs_Unique verifies that every mount gets its own ID.
func TestElement_InstanceIDs_Unique(t *testing.T) {
	first := Mount(probeWidget{label: "a", state: &probeState{}})
	defer first.Unmount()
	second := Mount(probeWidget{label: "b", state: &probeState{}})
	defer second.Unmount()

	if first.InstanceID() == 0 || second.InstanceID() == 0 {
		t.Error("instance IDs should be non-zero")
	}
	if first.InstanceID() == second.InstanceID() {
		t.Error("instance IDs should be unique across mounts")
	}
}

// TestStateBase_OnDispose_LIFO verifies disposers run in reverse
// registration order and unregistered ones are skipped.
func TestStateBase_OnDispose_LIFO(t *testing.T) {
	state := &probeState{}
	element := Mount(probeWidget{label: "a", state: state})

	var order []string
	state.OnDispose(func() { order = append(order, "first") })
	unregister := state.OnDispose(func() { order = append(order, "second") })
	state.OnDispose(func() { order = append(order, "third") })
	unregister()

	element.Unmount()

	if len(order) != 2 || order[0] != "third" || order[1] != "first" {
		t.Errorf("expected [third first], got %v", order)
	}
}

// TestStateBase_OnDispose_AfterDisposal verifies a cleanup registered after
// disposal runs immediately.
func TestStateBase_OnDispose_AfterDisposal(t *testing.T) {
	state := &probeState{}
	element := Mount(probeWidget{label: "a", state: state})
	element.Unmount()

	ran := false
	state.OnDispose(func() { ran = true })
	if !ran {
		t.Error("expected cleanup to run immediately after disposal")
	}
}
