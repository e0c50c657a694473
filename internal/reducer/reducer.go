package reducer

import (
	"errors"
	"log/slog"

	"github.com/tilewm/tilewm/internal/stack"
	"github.com/tilewm/tilewm/internal/wmstate"
)

// Reducer ties the pure WindowSet algebra to a live X connection: it
// turns events into state updates via Dispatch, and state updates into
// X requests via Refresh.
type Reducer struct {
	State    *wmstate.State
	Conn     XConn
	Bindings *Bindings
}

// New returns a Reducer over an already-initialized state and
// connection.
func New(state *wmstate.State, conn XConn, bindings *Bindings) *Reducer {
	return &Reducer{State: state, Conn: conn, Bindings: bindings}
}

// Dispatch handles one event: it updates State and then calls Refresh
// to bring the X server's view of the screen back in sync. It returns
// the pending exit signal, if Quit was invoked, wrapped as an error.
func (r *Reducer) Dispatch(ev Event) error {
	switch e := ev.(type) {
	case MapRequest:
		if err := r.State.Manage(e.Window); err != nil {
			return err
		}
	case DestroyNotify:
		if r.State.Mapped[e.Window] {
			r.Conn.UnmapWindow(e.Window)
		}
		if err := r.State.Unmanage(e.Window); err != nil {
			return err
		}
	case UnmapNotify:
		if e.Synthetic || !r.State.ConsumeExpectedUnmap(e.Window) {
			if err := r.State.Unmanage(e.Window); err != nil {
				return err
			}
		}
	case ConfigureRequest:
		r.handleConfigureRequest(e)
	case EnterNotify:
		if err := r.State.Apply(func(ws *stack.WindowSet) *stack.WindowSet {
			return stack.FocusWindow(ws, e.Window)
		}); err != nil {
			return err
		}
	case KeyPress:
		if action, ok := r.Bindings.Keys[KeyCombo{Mods: e.Mods, Keysym: e.Keysym}]; ok {
			if err := action(r); err != nil {
				var exit *wmstate.ExitSignal
				if errors.As(err, &exit) {
					return err
				}
				slog.Error("key binding action failed", "error", err)
			}
		}
	case ButtonPress:
		if action, ok := r.Bindings.Buttons[ButtonCombo{Mods: e.Mods, Button: e.Button}]; ok {
			if err := action(r); err != nil {
				var exit *wmstate.ExitSignal
				if errors.As(err, &exit) {
					return err
				}
				slog.Error("button binding action failed", "error", err)
			}
		}
		r.maybeStartDrag(e)
	case MotionNotify:
		if r.State.Drag != nil {
			r.State.Drag.Move(e.X, e.Y)
		}
		return nil
	case ButtonRelease:
		if r.State.Drag != nil {
			r.State.Drag.Drop()
			r.State.Drag = nil
		}
		return nil
	case ScreensChanged:
		if err := r.State.Apply(func(ws *stack.WindowSet) *stack.WindowSet {
			return applyScreens(ws, e.Screens)
		}); err != nil {
			return err
		}
	}

	if exit := wmstate.PendingExit(); exit != nil {
		return exit
	}
	r.Refresh()
	return nil
}

func (r *Reducer) handleConfigureRequest(e ConfigureRequest) {
	ws := r.State.WindowSet
	if _, floating := ws.Floating[e.Window]; !floating {
		if _, managed := ws.FindTag(e.Window); managed {
			// A tiled window is placed by the active layout; its own
			// geometry request is dropped, and no reply is sent.
			return
		}
	}
	// Floating and unmanaged windows get whatever geometry they asked
	// for, forwarded to X verbatim.
	r.Conn.Configure(e.Window, e.Rect, 0)
}

func (r *Reducer) maybeStartDrag(e ButtonPress) {
	if e.Mods&r.Bindings.ModMask == 0 {
		return
	}
	if _, ok := r.State.WindowSet.Floating[e.Window]; !ok {
		return
	}
	startX, startY := e.X, e.Y
	r.State.Drag = &wmstate.DragHandler{
		Move: func(x, y int) {
			dx, dy := x-startX, y-startY
			_ = r.State.Apply(func(ws *stack.WindowSet) *stack.WindowSet {
				rect := ws.Floating[e.Window]
				rect.X += float64(dx) / float64(ws.Current.Detail.Rect.W)
				rect.Y += float64(dy) / float64(ws.Current.Detail.Rect.H)
				return stack.Float(ws, e.Window, rect)
			})
			startX, startY = x, y
			r.Refresh()
		},
		Drop: func() {},
	}
}

// applyScreens reattaches workspaces to a new monitor layout, keeping
// the current workspace on screen 0 and distributing the rest across
// however many screens are now present. The configured gap for each
// screen index is carried over from the outgoing WindowSet, since a
// hotplug's freshly-queried ScreenDetail carries no gap of its own.
func applyScreens(ws *stack.WindowSet, screens []stack.ScreenDetail) *stack.WindowSet {
	if len(screens) == 0 {
		return ws
	}
	gaps := existingGaps(ws)
	withGap := func(i int, d stack.ScreenDetail) stack.ScreenDetail {
		switch {
		case i < len(gaps):
			d.Gap = gaps[i]
		case len(gaps) > 0:
			d.Gap = gaps[0]
		}
		return d
	}

	all := ws.Workspaces()
	cp := &stack.WindowSet{Floating: ws.Floating}
	cp.Current = stack.Screen{ID: 0, Workspace: all[0], Detail: withGap(0, screens[0])}
	i := 1
	for ; i < len(screens) && i < len(all); i++ {
		cp.Visible = append(cp.Visible, stack.Screen{ID: stack.ScreenID(i), Workspace: all[i], Detail: withGap(i, screens[i])})
	}
	cp.Hidden = append(cp.Hidden, all[i:]...)
	return cp
}

func existingGaps(ws *stack.WindowSet) []stack.Gap {
	screens := ws.Screens()
	out := make([]stack.Gap, len(screens))
	for i, s := range screens {
		out[i] = s.Detail.Gap
	}
	return out
}
