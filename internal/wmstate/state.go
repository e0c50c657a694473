// Package wmstate holds the window manager's mutable runtime state: the
// current WindowSet plus the bookkeeping needed to reconcile it against
// the X server (which windows are mapped, which unmaps we caused
// ourselves and are waiting to see echoed back, and the drag callback
// installed for an in-progress interactive move/resize).
package wmstate

import (
	"fmt"
	"log/slog"

	"github.com/tilewm/tilewm/internal/stack"
)

// DragHandler is invoked on every pointer motion during an interactive
// move or resize. Drop is called once, when the button is released.
type DragHandler struct {
	Move func(x, y int)
	Drop func()
}

// State is the window manager's full mutable runtime state.
type State struct {
	WindowSet *stack.WindowSet

	// Mapped tracks which windows we believe are currently mapped on the
	// X server, independent of whether they're in WindowSet (Manage marks
	// a window here as soon as it is inserted, just ahead of the Refresh
	// that issues its MapWindow).
	Mapped map[stack.WindowID]bool

	// WaitingUnmap counts UnmapNotify events we should swallow because we
	// caused the unmap ourselves (by hiding a workspace, for instance)
	// rather than the client withdrawing.
	WaitingUnmap map[stack.WindowID]int

	Drag *DragHandler

	// ManageHook, if set, customizes the manage pipeline; see
	// ManageHook's doc comment in manage.go.
	ManageHook ManageHook
}

// New returns an empty, ready-to-use State over ws.
func New(ws *stack.WindowSet) *State {
	return &State{
		WindowSet:    ws,
		Mapped:       map[stack.WindowID]bool{},
		WaitingUnmap: map[stack.WindowID]int{},
	}
}

// ExitSignal is the error Apply returns when an Endo built by ExitWith
// requested a clean shutdown. The main loop checks for it with
// errors.As and exits rather than treating it as a fault.
type ExitSignal struct{ Code int }

func (e *ExitSignal) Error() string { return fmt.Sprintf("exit requested (code %d)", e.Code) }

// Endo is a pure WindowSet transformation, the unit every handler and
// every binding action produces. Endos compose with Compose below into
// the single transformation applied during a manage cycle.
type Endo func(*stack.WindowSet) *stack.WindowSet

// Compose folds a list of Endos left to right into one, mirroring the
// Endo monoid: Compose(f, g)(s) == g(f(s)).
func Compose(fs ...Endo) Endo {
	return func(ws *stack.WindowSet) *stack.WindowSet {
		for _, f := range fs {
			if f == nil {
				continue
			}
			ws = f(ws)
		}
		return ws
	}
}

// Apply runs endo against the current WindowSet inside a sandbox: a
// panic or error from endo's callers is logged and the WindowSet is
// left untouched, except for an *ExitSignal, which propagates so the
// caller can shut down. This is the error boundary every user-supplied
// binding action and every event handler runs behind.
func (st *State) Apply(endo Endo) (err error) {
	before := st.WindowSet
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from panic while updating window set", "panic", r)
			st.WindowSet = before
			err = fmt.Errorf("panic in window set update: %v", r)
		}
	}()

	next := endo(before)
	if exit := PendingExit(); exit != nil {
		return exit
	}
	if err := stack.CheckInvariants(next); err != nil {
		slog.Error("window set update violated an invariant, discarding", "error", err)
		return err
	}
	st.WindowSet = next
	return nil
}

// pendingExit carries an exit request out of an Endo without changing
// Endo's signature. ExitWith installs it; Apply consumes it via
// PendingExit and returns it as its error.
var pendingExit *ExitSignal

// ExitWith returns an Endo that records code as the process's exit
// status and otherwise leaves the WindowSet untouched.
func ExitWith(code int) Endo {
	return func(ws *stack.WindowSet) *stack.WindowSet {
		pendingExit = &ExitSignal{Code: code}
		return ws
	}
}

// PendingExit returns the most recently requested exit signal, if any,
// and clears it.
func PendingExit() *ExitSignal {
	e := pendingExit
	pendingExit = nil
	return e
}
