package reducer

import (
	"fmt"

	"github.com/tilewm/tilewm/internal/stack"
	"github.com/tilewm/tilewm/internal/wmstate"
)

// The functions below build Actions; a binding table maps key/button
// combinations to the result of calling one of these.

func FocusUp() Action    { return applyEndo(func(ws *stack.WindowSet) *stack.WindowSet { return mapCurrentStack(ws, stack.FocusUp) }) }
func FocusDown() Action  { return applyEndo(func(ws *stack.WindowSet) *stack.WindowSet { return mapCurrentStack(ws, stack.FocusDown) }) }
func SwapUp() Action     { return applyEndo(func(ws *stack.WindowSet) *stack.WindowSet { return mapCurrentStack(ws, stack.SwapUp) }) }
func SwapDown() Action   { return applyEndo(func(ws *stack.WindowSet) *stack.WindowSet { return mapCurrentStack(ws, stack.SwapDown) }) }
func SwapMaster() Action { return applyEndo(func(ws *stack.WindowSet) *stack.WindowSet { return mapCurrentStack(ws, stack.SwapMaster) }) }

// View switches to the named workspace.
func View(tag stack.WorkspaceTag) Action {
	return applyEndo(func(ws *stack.WindowSet) *stack.WindowSet { return stack.View(ws, tag) })
}

// GreedyView pulls the named workspace onto the current screen.
func GreedyView(tag stack.WorkspaceTag) Action {
	return applyEndo(func(ws *stack.WindowSet) *stack.WindowSet { return stack.GreedyView(ws, tag) })
}

// Shift sends the focused window to the named workspace.
func Shift(tag stack.WorkspaceTag) Action {
	return applyEndo(func(ws *stack.WindowSet) *stack.WindowSet { return stack.Shift(ws, tag) })
}

// SendMessage delivers msg to the current workspace's layout.
func SendMessage(msg stack.Message) Action {
	return func(r *Reducer) error {
		return r.State.Apply(func(ws *stack.WindowSet) *stack.WindowSet {
			l := ws.Current.Workspace.Layout
			if l == nil {
				return ws
			}
			newLayout, err := l.HandleMessage(msg)
			if err != nil {
				return ws
			}
			if newLayout == nil {
				return ws
			}
			cp := *ws
			cp.Current.Workspace.Layout = newLayout
			return &cp
		})
	}
}

func Shrink() Action      { return SendMessage(stack.Shrink()) }
func Expand() Action      { return SendMessage(stack.Expand()) }
func IncMasterN(n int) Action { return SendMessage(stack.IncMasterN(n)) }
func NextLayout() Action  { return SendMessage(stack.NextLayout()) }
func FirstLayout() Action { return SendMessage(stack.FirstLayout()) }

// Kill closes the focused window on the current workspace.
func Kill() Action {
	return guarded(func(r *Reducer) error {
		w, ok := r.State.WindowSet.PeekWindow()
		if !ok {
			return nil
		}
		return r.Conn.Kill(w)
	})
}

// Spawn runs command detached from the window manager.
func Spawn(command string) Action {
	return guarded(func(r *Reducer) error {
		if err := r.Conn.Spawn(command); err != nil {
			return fmt.Errorf("spawn %q: %w", command, err)
		}
		return nil
	})
}

// guarded runs f behind the same panic-recovering error boundary as
// every WindowSet-mutating Endo, even though f itself only talks to
// Conn and never touches the WindowSet. Kill and Spawn are bound
// actions like any other, so a fault inside either must be caught
// rather than crashing the event loop.
func guarded(f func(r *Reducer) error) Action {
	return func(r *Reducer) error {
		var callErr error
		if err := r.State.Apply(func(ws *stack.WindowSet) *stack.WindowSet {
			callErr = f(r)
			return ws
		}); err != nil {
			return err
		}
		return callErr
	}
}

// ToggleFloat floats the focused window at rect if it's tiled, or sinks
// it back to tiling if it's already floating.
func ToggleFloat(rect stack.RationalRect) Action {
	return applyEndo(func(ws *stack.WindowSet) *stack.WindowSet {
		w, ok := ws.PeekWindow()
		if !ok {
			return ws
		}
		if _, floating := ws.Floating[w]; floating {
			return stack.Sink(ws, w)
		}
		return stack.Float(ws, w, rect)
	})
}

// Quit requests a clean shutdown.
func Quit() Action {
	return func(r *Reducer) error {
		return r.State.Apply(wmstate.ExitWith(0))
	}
}

func applyEndo(f func(*stack.WindowSet) *stack.WindowSet) Action {
	return func(r *Reducer) error {
		return r.State.Apply(f)
	}
}

func mapCurrentStack(ws *stack.WindowSet, f func(*stack.Stack[stack.WindowID]) *stack.Stack[stack.WindowID]) *stack.WindowSet {
	if ws.Current.Workspace.Stack == nil {
		return ws
	}
	cp := *ws
	cp.Current.Workspace.Stack = f(ws.Current.Workspace.Stack)
	return &cp
}
