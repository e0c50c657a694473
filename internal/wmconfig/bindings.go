package wmconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"

	"github.com/tilewm/tilewm/internal/reducer"
	"github.com/tilewm/tilewm/internal/stack"
)

// BuildBindings resolves the config's binding-string tables against a
// live connection's keyboard mapping, producing the table Dispatch
// indexes into directly.
func BuildBindings(xu *xgbutil.XUtil, cfg *Config) (*reducer.Bindings, error) {
	b := reducer.NewBindings()

	mod, err := namedMod(cfg.ModMask)
	if err != nil {
		return nil, err
	}
	b.ModMask = mod

	if b.BorderWidth = cfg.BorderWidth; b.BorderWidth == 0 {
		b.BorderWidth = 2
	}
	if b.BorderFocused, err = parseColor(cfg.BorderFocused); err != nil {
		return nil, err
	}
	if b.BorderNormal, err = parseColor(cfg.BorderNormal); err != nil {
		return nil, err
	}

	for combo, actionStr := range cfg.Keys {
		mods, codes, err := keybind.ParseString(xu, combo)
		if err != nil {
			return nil, fmt.Errorf("key binding %q: %w", combo, err)
		}
		if len(codes) == 0 {
			return nil, fmt.Errorf("key binding %q: unknown key", combo)
		}
		sym := keybind.KeysymGet(xu, codes[0], 0)

		action, err := resolveAction(actionStr)
		if err != nil {
			return nil, fmt.Errorf("key binding %q: %w", combo, err)
		}
		b.Keys[reducer.KeyCombo{Mods: mods, Keysym: uint32(sym)}] = action
	}

	for combo, actionStr := range cfg.Buttons {
		mods, btn, err := mousebind.ParseString(xu, combo)
		if err != nil {
			return nil, fmt.Errorf("button binding %q: %w", combo, err)
		}
		button := uint8(btn)
		action, err := resolveAction(actionStr)
		if err != nil {
			return nil, fmt.Errorf("button binding %q: %w", combo, err)
		}
		b.Buttons[reducer.ButtonCombo{Mods: mods, Button: button}] = action
	}

	return b, nil
}

// resolveAction maps an action string from config ("focus-down",
// "view:3", "spawn:dmenu_run") onto a reducer.Action.
func resolveAction(s string) (reducer.Action, error) {
	name, arg, hasArg := strings.Cut(s, ":")

	switch name {
	case "focus-up":
		return reducer.FocusUp(), nil
	case "focus-down":
		return reducer.FocusDown(), nil
	case "swap-up":
		return reducer.SwapUp(), nil
	case "swap-down":
		return reducer.SwapDown(), nil
	case "swap-master":
		return reducer.SwapMaster(), nil
	case "shrink":
		return reducer.Shrink(), nil
	case "expand":
		return reducer.Expand(), nil
	case "next-layout":
		return reducer.NextLayout(), nil
	case "first-layout":
		return reducer.FirstLayout(), nil
	case "kill":
		return reducer.Kill(), nil
	case "quit":
		return reducer.Quit(), nil
	case "view":
		return requireArg(name, arg, hasArg, func(v string) reducer.Action { return reducer.View(stack.WorkspaceTag(v)) })
	case "greedy-view":
		return requireArg(name, arg, hasArg, func(v string) reducer.Action { return reducer.GreedyView(stack.WorkspaceTag(v)) })
	case "shift":
		return requireArg(name, arg, hasArg, func(v string) reducer.Action { return reducer.Shift(stack.WorkspaceTag(v)) })
	case "spawn":
		if !hasArg {
			return nil, fmt.Errorf("spawn requires a command, e.g. %q", "spawn:xterm")
		}
		return reducer.Spawn(arg), nil
	case "inc-master":
		if !hasArg {
			return nil, fmt.Errorf("inc-master requires a delta, e.g. %q", "inc-master:1")
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("inc-master delta %q: %w", arg, err)
		}
		return reducer.IncMasterN(n), nil
	case "move", "resize":
		// The reducer itself starts a drag for any button pressed with
		// the mod mask held on a floating window, and that drag moves the
		// window; both names therefore bind a no-op action.
		return func(*reducer.Reducer) error { return nil }, nil
	default:
		return nil, fmt.Errorf("unknown action %q", s)
	}
}

func requireArg(name, arg string, hasArg bool, f func(string) reducer.Action) (reducer.Action, error) {
	if !hasArg || arg == "" {
		return nil, fmt.Errorf("%s requires an argument, e.g. %q", name, name+":1")
	}
	return f(arg), nil
}

// namedMod resolves a modifier name ("Mod1", "Mod4", "Control",
// "Shift") to its X modifier mask bit.
func namedMod(name string) (uint16, error) {
	switch name {
	case "Shift":
		return xproto.ModMaskShift, nil
	case "Lock":
		return xproto.ModMaskLock, nil
	case "Control", "Ctrl":
		return xproto.ModMaskControl, nil
	case "Mod1", "Alt":
		return xproto.ModMask1, nil
	case "Mod2":
		return xproto.ModMask2, nil
	case "Mod3":
		return xproto.ModMask3, nil
	case "Mod4", "Super":
		return xproto.ModMask4, nil
	case "Mod5":
		return xproto.ModMask5, nil
	default:
		return 0, fmt.Errorf("unknown modifier %q", name)
	}
}

// parseButton turns mousebind.ParseString's trailing "ButtonN" token
// into a button number.
func parseButton(btnstr string) (uint8, error) {
	n, ok := strings.CutPrefix(btnstr, "Button")
	if !ok {
		return 0, fmt.Errorf("expected a ButtonN token, got %q", btnstr)
	}
	v, err := strconv.Atoi(n)
	if err != nil {
		return 0, fmt.Errorf("invalid button %q: %w", btnstr, err)
	}
	return uint8(v), nil
}
