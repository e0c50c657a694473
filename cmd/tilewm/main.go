// Command tilewm is the tiling window manager's entry point: it parses
// its CLI surface, loads the user's configuration, opens the X
// connection, and runs the single-threaded event loop until an exit is
// requested or a restart re-execs the process in place.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/docopt/docopt-go"

	"github.com/tilewm/tilewm/internal/layout"
	"github.com/tilewm/tilewm/internal/reducer"
	"github.com/tilewm/tilewm/internal/restart"
	"github.com/tilewm/tilewm/internal/stack"
	"github.com/tilewm/tilewm/internal/wmconfig"
	"github.com/tilewm/tilewm/internal/wmstate"
	"github.com/tilewm/tilewm/internal/xconn"
)

const usage = `tilewm.

Usage:
    tilewm
    tilewm --resume=<blob>
    tilewm -h | --help

Options:
    -h --help         Show this screen.
    --resume=<blob>   Resume a previous run's serialized window state.
`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	resumeBlob, _ := opts.String("--resume")

	if err := run(resumeBlob); err != nil {
		slog.Error("tilewm exited", "error", err)
		os.Exit(1)
	}
}

func run(resumeBlob string) error {
	paths, err := restart.DefaultPaths()
	if err != nil {
		return err
	}
	if resumeBlob == "" {
		if _, err := restart.Recompile(paths, false); err != nil {
			slog.Warn("continuing with existing config binary", "error", err)
		}
	}

	cfg, err := wmconfig.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	conn, err := xconn.Open()
	if err != nil {
		return fmt.Errorf("opening X connection: %w", err)
	}
	defer conn.Close()

	bindings, err := wmconfig.BuildBindings(conn.XU, cfg)
	if err != nil {
		return fmt.Errorf("resolving bindings: %w", err)
	}
	restartCombo, restartFn := restartBinding(conn, paths, bindings.ModMask)
	bindings.Keys[restartCombo] = restartFn

	var ws *stack.WindowSet
	if resumeBlob != "" {
		ws, err = stack.Decode(resumeBlob, layout.Decode)
		if err != nil {
			return fmt.Errorf("decoding --resume state: %w", err)
		}
	} else {
		ws, err = wmconfig.BuildWindowSet(cfg, conn.Screens())
		if err != nil {
			return fmt.Errorf("building initial workspaces: %w", err)
		}
	}

	if err := reconcile(conn, ws); err != nil {
		return fmt.Errorf("reconciling window tree: %w", err)
	}
	grabAll(conn, bindings)

	state := wmstate.New(ws)
	r := reducer.New(state, conn, bindings)
	r.Refresh()

	return loop(conn, r)
}

// reconcile drops any deserialized window the live X server no longer
// has mapped, and (re-)installs the event mask/save-set on whatever it
// does have mapped — clients can come or go while tilewm is gone across
// a restart or a crash.
func reconcile(conn *xconn.Conn, ws *stack.WindowSet) error {
	live, err := conn.QueryManagedWindows()
	if err != nil {
		return err
	}
	present := map[stack.WindowID]bool{}
	for _, w := range live {
		present[w] = true
	}
	for _, w := range ws.AllWindows() {
		if !present[w] {
			*ws = *stack.Remove(ws, w)
		}
	}
	for _, w := range live {
		if err := conn.Manage(w); err != nil {
			slog.Warn("couldn't manage existing window", "window", w, "error", err)
		}
	}
	return nil
}

func grabAll(conn *xconn.Conn, b *reducer.Bindings) {
	for combo := range b.Keys {
		if err := conn.GrabKey(combo.Mods, combo.Keysym); err != nil {
			slog.Warn("couldn't grab key", "keysym", combo.Keysym, "error", err)
		}
	}
	for combo := range b.Buttons {
		if err := conn.GrabButton(combo.Mods, combo.Button); err != nil {
			slog.Warn("couldn't grab button", "button", combo.Button, "error", err)
		}
	}
}

func loop(conn *xconn.Conn, r *reducer.Reducer) error {
	for {
		ev, err := conn.Next()
		if err != nil {
			slog.Error("event error", "error", err)
			continue
		}
		if ev == nil {
			continue
		}
		if err := r.Dispatch(ev); err != nil {
			var exit *wmstate.ExitSignal
			if errors.As(err, &exit) {
				os.Exit(exit.Code)
			}
			return err
		}
	}
}

// restartBinding wires the internal "restart" hotkey spec.md §6 names:
// Mod+Control+q (Mod being the configured mod mask), independent of
// whatever the user's config binds, so recompile/restart is always
// reachable even from a broken config.
func restartBinding(conn *xconn.Conn, paths restart.Paths, modMask uint16) (reducer.KeyCombo, reducer.Action) {
	const (
		xkQ         = 0x0071 // XK_q
		controlMask = 1 << 2 // ControlMask, per the X protocol's fixed modifier bit layout
	)
	combo := reducer.KeyCombo{Mods: modMask | controlMask, Keysym: xkQ}

	action := func(r *reducer.Reducer) error {
		if _, err := restart.Recompile(paths, true); err != nil {
			return err
		}
		broadcastReleaseResources(r)
		conn.Sync()
		return restart.Restart(paths.Binary, true, r.State.WindowSet)
	}
	return combo, action
}

func broadcastReleaseResources(r *reducer.Reducer) {
	_ = r.State.Apply(func(ws *stack.WindowSet) *stack.WindowSet {
		cp := *ws
		release := func(wk stack.Workspace) stack.Workspace {
			if wk.Layout == nil {
				return wk
			}
			if l, err := wk.Layout.HandleMessage(stack.ReleaseResources()); err == nil && l != nil {
				wk.Layout = l
			}
			return wk
		}
		cp.Current.Workspace = release(cp.Current.Workspace)
		for i := range cp.Visible {
			cp.Visible[i].Workspace = release(cp.Visible[i].Workspace)
		}
		for i := range cp.Hidden {
			cp.Hidden[i] = release(cp.Hidden[i])
		}
		return &cp
	})
}
