package reducer

import "github.com/tilewm/tilewm/internal/stack"

// Event is the closed set of X notifications the reducer understands.
// xconn decodes raw xgb/xproto events into these before handing them to
// Dispatch, keeping the reducer free of any X11 import.
type Event interface{}

// MapRequest is sent when a client asks to be mapped; the window is not
// yet mapped or managed.
type MapRequest struct{ Window stack.WindowID }

// DestroyNotify means the window is gone; drop it unconditionally.
type DestroyNotify struct{ Window stack.WindowID }

// UnmapNotify means the window was unmapped, either by us (hiding its
// workspace) or by the client withdrawing. Synthetic reports whether
// this was a synthetic (client-generated) UnmapNotify, which ICCCM says
// always means withdrawal regardless of our own bookkeeping.
type UnmapNotify struct {
	Window    stack.WindowID
	Synthetic bool
}

// ConfigureRequest is a client's request to move/resize/restack itself.
// For a managed, tiled window it is dropped without a reply (layout
// owns geometry); for an unmanaged or floating window it is granted as
// asked.
type ConfigureRequest struct {
	Window stack.WindowID
	Rect   stack.Rectangle
}

// EnterNotify fires when the pointer enters a window; used for
// focus-follows-mouse.
type EnterNotify struct{ Window stack.WindowID }

// KeyPress carries a decoded keysym and modifier mask, already resolved
// from the raw keycode by xconn's keyboard map.
type KeyPress struct {
	Keysym uint32
	Mods   uint16
}

// ButtonPress starts a click or an interactive drag on Window at the
// root-relative coordinates X, Y.
type ButtonPress struct {
	Window stack.WindowID
	Button uint8
	Mods   uint16
	X, Y   int
}

// MotionNotify reports pointer movement during an active drag.
type MotionNotify struct{ X, Y int }

// ButtonRelease ends an active drag.
type ButtonRelease struct{}

// ScreensChanged is sent when Xinerama reports a new monitor layout
// (output hotplug), carrying the freshly queried screen list.
type ScreensChanged struct{ Screens []stack.ScreenDetail }
