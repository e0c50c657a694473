// Package xconn is the only package that imports xgb/xgbutil directly.
// It implements reducer.XConn against a real X server: connection
// setup, atom interning, Xinerama screen discovery, the raw event loop,
// and the window operations (map, configure, border, focus, kill,
// spawn) the reducer drives through that interface.
package xconn

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"

	"github.com/tilewm/tilewm/internal/spawn"
)

// Conn is the live connection to an X server, implementing
// reducer.XConn.
type Conn struct {
	X    *xgb.Conn
	XU   *xgbutil.XUtil
	Root xproto.Window

	atomWMProtocols    xproto.Atom
	atomWMDeleteWindow xproto.Atom
	atomWMState        xproto.Atom
	atomWMTakeFocus    xproto.Atom

	keymap      [256][]xproto.Keysym
	numLockMask uint16
}

// Open connects to the X server named by the DISPLAY environment
// variable (xgb's default), grabs substructure redirection on the root
// window, and interns the atoms the reducer relies on.
func Open() (*Conn, error) {
	X, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("couldn't open X display: %w", err)
	}

	xu, err := xgbutil.NewConnXgb(X)
	if err != nil {
		return nil, fmt.Errorf("couldn't create xgbutil connection: %w", err)
	}
	keybind.Initialize(xu)
	mousebind.Initialize(xu)

	setup := xproto.Setup(X)
	screen := setup.DefaultScreen(X)
	root := screen.Root

	c := &Conn{X: X, XU: xu, Root: root}

	if err := c.internAtoms(); err != nil {
		X.Close()
		return nil, err
	}

	err = xproto.ChangeWindowAttributesChecked(
		X, root, xproto.CwEventMask,
		[]uint32{
			xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify |
				xproto.EventMaskButtonPress | xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow |
				xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange,
		},
	).Check()
	if err != nil {
		X.Close()
		return nil, fmt.Errorf("couldn't take substructure redirection, another window manager may be running: %w", err)
	}

	if err := c.loadKeymap(); err != nil {
		slog.Warn("couldn't load keyboard mapping", "error", err)
	}
	if err := c.loadNumLockMask(); err != nil {
		slog.Warn("couldn't determine NumLock modifier, grabs may not be lock-insensitive", "error", err)
	}

	return c, nil
}

// Close releases the X connection.
func (c *Conn) Close() {
	if c.X != nil {
		c.X.Close()
	}
}

// Sync flushes buffered requests and waits for the server to process
// them with a GetInputFocus round trip; the round trip's own reply and
// error are discarded.
func (c *Conn) Sync() {
	_, _ = xproto.GetInputFocus(c.X).Reply()
}

// Spawn runs command detached from the window manager process.
func (c *Conn) Spawn(command string) error {
	return spawn.Run(command)
}
