package stack

import "testing"

func newTestSet() *WindowSet {
	return NewWindowSet(
		[]WorkspaceTag{"1", "2", "3"},
		func() Layout { return nil },
		[]ScreenDetail{{Rect: Rectangle{W: 1920, H: 1080}}},
	)
}

func TestInsertFocusesNewWindow(t *testing.T) {
	ws := newTestSet()
	ws = Insert(ws, 100)
	ws = Insert(ws, 101)

	got, ok := ws.PeekWindow()
	if !ok || got != 101 {
		t.Fatalf("expected focus 101, got %v ok=%v", got, ok)
	}
	if !IsMaster(ws.Current.Workspace.Stack, 100) {
		t.Fatalf("expected 100 to remain master")
	}
}

func TestViewSwitchesCurrentWorkspace(t *testing.T) {
	ws := newTestSet()
	ws = Insert(ws, 100)

	ws2 := View(ws, "2")
	if ws2.Current.Workspace.Tag != "2" {
		t.Fatalf("expected current tag 2, got %s", ws2.Current.Workspace.Tag)
	}
	for _, h := range ws2.Hidden {
		if h.Tag == "1" {
			if !h.Stack.Contains(100) {
				t.Fatalf("expected workspace 1 to keep its window while hidden")
			}
		}
	}
}

func TestViewThenViewBackRestoresState(t *testing.T) {
	ws := newTestSet()
	ws = Insert(ws, 100)
	ws = Insert(ws, 101)
	ws = Insert(ws, 102)
	before := ws.Current.Workspace.Stack.ToList()
	beforeFocus := ws.Current.Workspace.Stack.Focus

	ws = View(ws, "2")
	ws = View(ws, "1")

	after := ws.Current.Workspace.Stack
	if after.Focus != beforeFocus {
		t.Fatalf("expected focus restored to %v, got %v", beforeFocus, after.Focus)
	}
	gotList := after.ToList()
	if len(gotList) != len(before) {
		t.Fatalf("expected %d windows restored, got %d", len(before), len(gotList))
	}
}

func TestShiftMovesFocusedWindowToNamedWorkspace(t *testing.T) {
	ws := newTestSet()
	ws = Insert(ws, 100)
	ws = Insert(ws, 101)

	ws = Shift(ws, "2")

	if ws.Current.Workspace.Stack == nil || !ws.Current.Workspace.Stack.Contains(100) {
		t.Fatalf("expected 100 to remain on current workspace")
	}
	if ws.Current.Workspace.Stack.Contains(101) {
		t.Fatalf("expected 101 to have left the current workspace")
	}
	for _, h := range ws.Hidden {
		if h.Tag == "2" && !h.Stack.Contains(101) {
			t.Fatalf("expected 101 to have been shifted to workspace 2")
		}
	}
}

func TestFloatAndSinkRoundtrip(t *testing.T) {
	ws := newTestSet()
	ws = Insert(ws, 100)

	rect := RationalRect{X: 0.25, Y: 0.25, W: 0.5, H: 0.5}
	ws = Float(ws, 100, rect)
	if got, ok := ws.Floating[100]; !ok || got != rect {
		t.Fatalf("expected floating rect recorded, got %v ok=%v", got, ok)
	}

	ws = Sink(ws, 100)
	if _, ok := ws.Floating[100]; ok {
		t.Fatalf("expected floating entry removed after sink")
	}
}

func TestRemoveDropsWindowFromWhicheverWorkspaceHoldsIt(t *testing.T) {
	ws := newTestSet()
	ws = Insert(ws, 100)
	ws = Shift(ws, "2")

	ws = Remove(ws, 100)

	if ws.Current.Workspace.Stack != nil && ws.Current.Workspace.Stack.Contains(100) {
		t.Fatalf("expected 100 removed from current workspace")
	}
	for _, h := range ws.Hidden {
		if h.Stack != nil && h.Stack.Contains(100) {
			t.Fatalf("expected 100 removed from hidden workspace 2")
		}
	}
}

func TestFocusWindowSwitchesWorkspaceIfNeeded(t *testing.T) {
	ws := newTestSet()
	ws = Insert(ws, 100)
	ws = Shift(ws, "2")
	ws = Insert(ws, 200)

	ws = FocusWindow(ws, 100)

	if ws.Current.Workspace.Tag != "2" {
		t.Fatalf("expected workspace 2 to become current, got %s", ws.Current.Workspace.Tag)
	}
	got, ok := ws.PeekWindow()
	if !ok || got != 100 {
		t.Fatalf("expected focus on 100, got %v ok=%v", got, ok)
	}
}
