package reducer

import (
	"log/slog"

	"github.com/tilewm/tilewm/internal/stack"
)

// Refresh reconciles the X server with the current WindowSet: it
// computes each visible screen's layout, issues the Configure/Map
// calls needed to match it (tiled windows bottom, floating windows
// above them), unmaps everything that's no longer visible, sets input
// focus and raises the globally focused window to the very top, paints
// borders, flushes the connection, and finally runs the log hook. This
// is the one place the reducer talks to X on every state change.
func (r *Reducer) Refresh() {
	ws := r.State.WindowSet
	visible := map[stack.WindowID]bool{}

	for _, screen := range ws.Screens() {
		r.refreshScreen(ws, screen, visible)
	}

	for w := range r.State.Mapped {
		if !visible[w] {
			r.State.ExpectUnmap(w)
			r.Conn.UnmapWindow(w)
			delete(r.State.Mapped, w)
		}
	}

	if focused, ok := ws.PeekWindow(); ok {
		r.Conn.SetInputFocus(focused)
		if visible[focused] {
			r.Conn.RaiseWindow(focused)
		}
	}

	r.Conn.Sync()
	r.invokeLogHook(ws)
}

// invokeLogHook runs the user-supplied log hook, if any, the same
// sandboxed way every other callback runs: a panic is caught and
// logged rather than propagating into the event loop.
func (r *Reducer) invokeLogHook(ws *stack.WindowSet) {
	hook := r.Bindings.LogHook
	if hook == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("recovered from panic in log hook", "panic", rec)
		}
	}()
	hook(ws)
}

func (r *Reducer) refreshScreen(ws *stack.WindowSet, screen stack.Screen, visible map[stack.WindowID]bool) {
	wk := screen.Workspace
	var focused stack.WindowID
	hasFocus := wk.Stack != nil
	if hasFocus {
		focused = wk.Stack.Focus
	}

	tiled := filterTiled(wk.Stack, ws.Floating)
	var rects []stack.WindowRect
	if wk.Layout != nil && tiled != nil {
		computed, newLayout, err := wk.Layout.DoLayout(screen.Detail.Usable(), tiled)
		if err == nil {
			rects = computed
			if newLayout != nil {
				wk.Layout = newLayout
			}
		}
	}

	var above stack.WindowID
	for _, wr := range rects {
		r.place(wr.Window, wr.Rect, above, ws, screen, focused, hasFocus)
		visible[wr.Window] = true
		above = wr.Window
	}

	if wk.Stack != nil {
		for _, w := range wk.Stack.ToList() {
			if rect, ok := ws.Floating[w]; ok {
				r.place(w, rect.Scale(screen.Detail.Rect), above, ws, screen, focused, hasFocus)
				visible[w] = true
				above = w
			}
		}
	}
}

func (r *Reducer) place(w stack.WindowID, rect stack.Rectangle, above stack.WindowID, ws *stack.WindowSet, screen stack.Screen, focused stack.WindowID, hasFocus bool) {
	r.Conn.Configure(w, rect, above)
	r.Conn.MapWindow(w)
	r.State.Mapped[w] = true
	color := r.Bindings.BorderNormal
	if hasFocus && w == focused && screen.ID == ws.Current.ID {
		color = r.Bindings.BorderFocused
	}
	r.Conn.SetBorder(w, color, r.Bindings.BorderWidth)
}

// filterTiled returns st with every floating window removed, focus
// retargeted to the nearest remaining non-floating window if the
// original focus itself floats. Relative order among the surviving
// windows is preserved.
func filterTiled(st *stack.Stack[stack.WindowID], floating map[stack.WindowID]stack.RationalRect) *stack.Stack[stack.WindowID] {
	if st == nil {
		return nil
	}
	keep := func(xs []stack.WindowID) []stack.WindowID {
		var out []stack.WindowID
		for _, w := range xs {
			if _, ok := floating[w]; !ok {
				out = append(out, w)
			}
		}
		return out
	}

	up := keep(st.Up)
	down := keep(st.Down)
	if _, floats := floating[st.Focus]; !floats {
		return &stack.Stack[stack.WindowID]{Up: up, Focus: st.Focus, Down: down}
	}
	if len(down) > 0 {
		return &stack.Stack[stack.WindowID]{Up: up, Focus: down[0], Down: down[1:]}
	}
	if len(up) > 0 {
		return &stack.Stack[stack.WindowID]{Up: up[1:], Focus: up[0], Down: down}
	}
	return nil
}
