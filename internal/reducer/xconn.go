// Package reducer turns X11 events and key/mouse bindings into
// WindowSet transformations and the side effects (mapping, raising,
// configuring, focusing) needed to make the screen match the new
// WindowSet. It depends only on the XConn interface below, never on a
// concrete X11 library, so it is exercised by tests without a display.
package reducer

import "github.com/tilewm/tilewm/internal/stack"

// XConn is everything the reducer needs from the X server. It is
// defined here, the consumer, rather than in package xconn, so that
// xconn can implement it and import reducer without a cycle.
type XConn interface {
	// Screens reports the current physical monitor layout.
	Screens() []stack.ScreenDetail

	// MapWindow/UnmapWindow change a window's mapped state.
	MapWindow(w stack.WindowID)
	UnmapWindow(w stack.WindowID)

	// Configure moves, resizes, and stacks w per rect; above is the
	// window w should be placed immediately above in the stacking
	// order, or 0 to leave stacking unchanged.
	Configure(w stack.WindowID, rect stack.Rectangle, above stack.WindowID)

	// RaiseWindow restacks w above every sibling, used to put the
	// globally focused window on top once tiled and floating windows
	// have otherwise been stacked by the layout's own order.
	RaiseWindow(w stack.WindowID)

	// SetBorder paints w's border the given pixel color and width.
	SetBorder(w stack.WindowID, color uint32, width uint)

	// SetInputFocus directs keyboard input to w.
	SetInputFocus(w stack.WindowID)

	// Kill asks w to close: WM_DELETE_WINDOW if advertised, else a
	// forced KillClient.
	Kill(w stack.WindowID) error

	// Spawn runs a shell command detached from the window manager.
	Spawn(command string) error

	// QueryManagedWindows returns every top-level window currently
	// present on the X server, used to reconcile a resumed WindowSet
	// against reality.
	QueryManagedWindows() ([]stack.WindowID, error)

	// Sync flushes any buffered requests to the X server.
	Sync()
}
