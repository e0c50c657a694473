package xconn

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/stack"
)

func (c *Conn) MapWindow(w stack.WindowID) {
	if err := xproto.MapWindowChecked(c.X, xproto.Window(w)).Check(); err != nil {
		slog.Error("couldn't map window", "window", w, "error", err)
	}
}

func (c *Conn) UnmapWindow(w stack.WindowID) {
	if err := xproto.UnmapWindowChecked(c.X, xproto.Window(w)).Check(); err != nil {
		slog.Error("couldn't unmap window", "window", w, "error", err)
	}
}

func (c *Conn) Configure(w stack.WindowID, rect stack.Rectangle, above stack.WindowID) {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{uint32(int32(rect.X)), uint32(int32(rect.Y)), uint32(rect.W), uint32(rect.H)}
	if above != 0 {
		mask |= xproto.ConfigWindowSibling | xproto.ConfigWindowStackMode
		values = append(values, uint32(above), uint32(xproto.StackModeAbove))
	}
	if err := xproto.ConfigureWindowChecked(c.X, xproto.Window(w), mask, values).Check(); err != nil {
		slog.Error("couldn't configure window", "window", w, "error", err)
	}
}

// RaiseWindow restacks w above all of its siblings, with no sibling
// reference given so the request applies relative to the whole stack
// rather than one neighbor.
func (c *Conn) RaiseWindow(w stack.WindowID) {
	err := xproto.ConfigureWindowChecked(c.X, xproto.Window(w), xproto.ConfigWindowStackMode, []uint32{uint32(xproto.StackModeAbove)}).Check()
	if err != nil {
		slog.Error("couldn't raise window", "window", w, "error", err)
	}
}

func (c *Conn) SetBorder(w stack.WindowID, color uint32, width uint) {
	err := xproto.ConfigureWindowChecked(c.X, xproto.Window(w), xproto.ConfigWindowBorderWidth, []uint32{uint32(width)}).Check()
	if err != nil {
		slog.Error("couldn't set border width", "window", w, "error", err)
	}
	err = xproto.ChangeWindowAttributesChecked(c.X, xproto.Window(w), xproto.CwBorderPixel, []uint32{color}).Check()
	if err != nil {
		slog.Error("couldn't set border color", "window", w, "error", err)
	}
}

func (c *Conn) SetInputFocus(w stack.WindowID) {
	err := xproto.SetInputFocusChecked(c.X, xproto.InputFocusPointerRoot, xproto.Window(w), xproto.TimeCurrentTime).Check()
	if err != nil {
		slog.Error("couldn't set input focus", "window", w, "error", err)
	}
	if c.supportsProtocol(xproto.Window(w), c.atomWMTakeFocus) {
		ev := xproto.ClientMessageEvent{
			Format: 32,
			Window: xproto.Window(w),
			Type:   c.atomWMProtocols,
			Data: xproto.ClientMessageDataUnionData32New([]uint32{
				uint32(c.atomWMTakeFocus), uint32(xproto.TimeCurrentTime), 0, 0, 0,
			}),
		}
		_ = xproto.SendEventChecked(c.X, false, xproto.Window(w), xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
	}
}

// Kill closes w cooperatively via WM_DELETE_WINDOW if it is advertised,
// otherwise forces it closed with KillClient.
func (c *Conn) Kill(w stack.WindowID) error {
	window := xproto.Window(w)
	if c.supportsProtocol(window, c.atomWMDeleteWindow) {
		return c.sendWMDelete(window)
	}
	return xproto.KillClientChecked(c.X, uint32(window)).Check()
}

// QueryManagedWindows returns every top-level, non-override-redirect,
// viewable window currently on the root, used to reconcile a resumed
// WindowSet against what the X server actually has mapped.
func (c *Conn) QueryManagedWindows() ([]stack.WindowID, error) {
	tree, err := xproto.QueryTree(c.X, c.Root).Reply()
	if err != nil {
		return nil, err
	}
	var out []stack.WindowID
	for _, w := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(c.X, w).Reply()
		if err != nil || attrs.OverrideRedirect {
			continue
		}
		if attrs.MapState != xproto.MapStateViewable {
			continue
		}
		out = append(out, stack.WindowID(w))
	}
	return out, nil
}

// Manage starts listening for the events a newly-mapped client window
// needs to report, and adds it to the save set so it survives a WM
// crash.
func (c *Conn) Manage(w stack.WindowID) error {
	window := xproto.Window(w)
	err := xproto.ChangeWindowAttributesChecked(c.X, window, xproto.CwEventMask, []uint32{
		xproto.EventMaskEnterWindow | xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify,
	}).Check()
	if err != nil {
		return err
	}
	return xproto.ChangeSaveSetChecked(c.X, xproto.SetModeInsert, window).Check()
}
