package wmstate

import (
	"errors"
	"testing"

	"github.com/tilewm/tilewm/internal/stack"
)

func newTestState() *State {
	ws := stack.NewWindowSet([]stack.WorkspaceTag{"1"}, func() stack.Layout { return nil }, nil)
	return New(ws)
}

func TestManageInsertsAndMarksMapped(t *testing.T) {
	st := newTestState()
	if err := st.Manage(100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.Mapped[100] {
		t.Fatalf("expected window marked mapped")
	}
	if got, ok := st.WindowSet.PeekWindow(); !ok || got != 100 {
		t.Fatalf("expected window 100 focused, got %v ok=%v", got, ok)
	}
}

func TestUnmanageRemovesBookkeeping(t *testing.T) {
	st := newTestState()
	_ = st.Manage(100)
	st.ExpectUnmap(100)

	if err := st.Unmanage(100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Mapped[100] {
		t.Fatalf("expected window no longer marked mapped")
	}
	if st.WaitingUnmap[100] != 0 {
		t.Fatalf("expected waiting-unmap cleared")
	}
}

func TestConsumeExpectedUnmapOnlyOnce(t *testing.T) {
	st := newTestState()
	st.ExpectUnmap(100)

	if !st.ConsumeExpectedUnmap(100) {
		t.Fatalf("expected first consume to succeed")
	}
	if st.ConsumeExpectedUnmap(100) {
		t.Fatalf("expected second consume to fail, unmap was not double-counted")
	}
}

func TestApplyRecoversFromPanicAndKeepsPriorState(t *testing.T) {
	st := newTestState()
	before := st.WindowSet

	err := st.Apply(func(ws *stack.WindowSet) *stack.WindowSet {
		panic("boom")
	})

	if err == nil {
		t.Fatalf("expected an error from the recovered panic")
	}
	if st.WindowSet != before {
		t.Fatalf("expected window set unchanged after a panicking update")
	}
}

func TestManageHookRunsAfterDefaultInsert(t *testing.T) {
	st := newTestState()
	var sawInserted bool
	st.ManageHook = func(w stack.WindowID) Endo {
		return func(ws *stack.WindowSet) *stack.WindowSet {
			_, sawInserted = ws.FindTag(w)
			return stack.Float(ws, w, stack.RationalRect{W: 0.5, H: 0.5})
		}
	}

	if err := st.Manage(200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawInserted {
		t.Fatalf("expected manage hook to see window already inserted by insert_up")
	}
	if _, floating := st.WindowSet.Floating[200]; !floating {
		t.Fatalf("expected manage hook's transform to take effect")
	}
}

func TestApplyPropagatesExitSignal(t *testing.T) {
	st := newTestState()

	err := st.Apply(ExitWith(0))

	var exit *ExitSignal
	if !errors.As(err, &exit) {
		t.Fatalf("expected *ExitSignal, got %v", err)
	}
}
