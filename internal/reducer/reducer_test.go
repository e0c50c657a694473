package reducer

import (
	"testing"

	"github.com/tilewm/tilewm/internal/layout"
	"github.com/tilewm/tilewm/internal/stack"
	"github.com/tilewm/tilewm/internal/wmstate"
)

type fakeConn struct {
	screens    []stack.ScreenDetail
	mapped     map[stack.WindowID]bool
	configured map[stack.WindowID]stack.Rectangle
	focused    stack.WindowID
	raised     stack.WindowID
	killed     []stack.WindowID
	spawned    []string
}

func newFakeConn(screens []stack.ScreenDetail) *fakeConn {
	return &fakeConn{screens: screens, mapped: map[stack.WindowID]bool{}, configured: map[stack.WindowID]stack.Rectangle{}}
}

func (f *fakeConn) Screens() []stack.ScreenDetail { return f.screens }
func (f *fakeConn) MapWindow(w stack.WindowID)    { f.mapped[w] = true }
func (f *fakeConn) UnmapWindow(w stack.WindowID)  { f.mapped[w] = false }
func (f *fakeConn) Configure(w stack.WindowID, rect stack.Rectangle, above stack.WindowID) {
	f.configured[w] = rect
}
func (f *fakeConn) RaiseWindow(w stack.WindowID)           { f.raised = w }
func (f *fakeConn) SetBorder(stack.WindowID, uint32, uint) {}
func (f *fakeConn) SetInputFocus(w stack.WindowID)         { f.focused = w }
func (f *fakeConn) Kill(w stack.WindowID) error            { f.killed = append(f.killed, w); return nil }
func (f *fakeConn) Spawn(cmd string) error                 { f.spawned = append(f.spawned, cmd); return nil }
func (f *fakeConn) QueryManagedWindows() ([]stack.WindowID, error) { return nil, nil }
func (f *fakeConn) Sync()                                  {}

func newTestReducer() (*Reducer, *fakeConn) {
	screens := []stack.ScreenDetail{{Rect: stack.Rectangle{W: 1920, H: 1080}}}
	ws := stack.NewWindowSet([]stack.WorkspaceTag{"1", "2"}, func() stack.Layout { return layout.NewTall(1, 0.03, 0.5) }, screens)
	conn := newFakeConn(screens)
	bindings := NewBindings()
	r := New(wmstate.New(ws), conn, bindings)
	return r, conn
}

func TestMapRequestManagesAndMapsWindow(t *testing.T) {
	r, conn := newTestReducer()

	if err := r.Dispatch(MapRequest{Window: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !conn.mapped[100] {
		t.Fatalf("expected window 100 mapped")
	}
	if conn.focused != 100 {
		t.Fatalf("expected window 100 focused, got %v", conn.focused)
	}
}

func TestDestroyNotifyUnmanagesWindow(t *testing.T) {
	r, conn := newTestReducer()
	_ = r.Dispatch(MapRequest{Window: 100})

	if err := r.Dispatch(DestroyNotify{Window: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := r.State.WindowSet.FindTag(100); ok {
		t.Fatalf("expected window 100 no longer managed")
	}
	if conn.mapped[100] {
		t.Fatalf("expected window 100 unmapped")
	}
}

func TestSelfCausedUnmapIsSwallowed(t *testing.T) {
	r, _ := newTestReducer()
	_ = r.Dispatch(MapRequest{Window: 100})
	r.State.ExpectUnmap(100)

	if err := r.Dispatch(UnmapNotify{Window: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := r.State.WindowSet.FindTag(100); !ok {
		t.Fatalf("expected window 100 to remain managed after a self-caused unmap")
	}
}

func TestKeyPressRunsBoundAction(t *testing.T) {
	r, conn := newTestReducer()
	combo := KeyCombo{Mods: 1, Keysym: 0x71}
	r.Bindings.Keys[combo] = Spawn("xterm")

	if err := r.Dispatch(KeyPress{Keysym: 0x71, Mods: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(conn.spawned) != 1 || conn.spawned[0] != "xterm" {
		t.Fatalf("expected xterm spawned, got %v", conn.spawned)
	}
}

func TestKillSendsFocusedWindowToConn(t *testing.T) {
	r, conn := newTestReducer()
	_ = r.Dispatch(MapRequest{Window: 100})

	if err := Kill()(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(conn.killed) != 1 || conn.killed[0] != 100 {
		t.Fatalf("expected window 100 killed, got %v", conn.killed)
	}
}

func TestRefreshTilesThreeWindowsPerWorkedExample(t *testing.T) {
	r, conn := newTestReducer()
	_ = r.Dispatch(MapRequest{Window: 0x100})
	_ = r.Dispatch(MapRequest{Window: 0x101})
	_ = r.Dispatch(MapRequest{Window: 0x102})

	if got := conn.configured[0x100]; got != (stack.Rectangle{X: 0, Y: 0, W: 960, H: 1080}) {
		t.Fatalf("master rect: got %v", got)
	}
	if got := conn.configured[0x101]; got != (stack.Rectangle{X: 960, Y: 0, W: 960, H: 540}) {
		t.Fatalf("top secondary rect: got %v", got)
	}
	if got := conn.configured[0x102]; got != (stack.Rectangle{X: 960, Y: 540, W: 960, H: 540}) {
		t.Fatalf("bottom secondary rect: got %v", got)
	}
}

func TestRefreshRaisesFocusedWindow(t *testing.T) {
	r, conn := newTestReducer()
	_ = r.Dispatch(MapRequest{Window: 0x100})
	_ = r.Dispatch(MapRequest{Window: 0x101})

	if conn.raised != 0x101 {
		t.Fatalf("expected most recently focused window raised, got %v", conn.raised)
	}
}

func TestRefreshRunsLogHookSandboxed(t *testing.T) {
	r, _ := newTestReducer()
	var seen *stack.WindowSet
	r.Bindings.LogHook = func(ws *stack.WindowSet) { seen = ws; panic("boom") }

	r.Refresh()

	if seen == nil {
		t.Fatalf("expected log hook to be invoked")
	}
}

func TestViewSwitchesWorkspaceAndRefreshesFocus(t *testing.T) {
	r, _ := newTestReducer()
	_ = r.Dispatch(MapRequest{Window: 100})

	if err := View("2")(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Refresh()

	if r.State.WindowSet.Current.Workspace.Tag != "2" {
		t.Fatalf("expected workspace 2 current, got %s", r.State.WindowSet.Current.Workspace.Tag)
	}
}
