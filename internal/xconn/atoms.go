package xconn

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// getAtom interns name and returns its atom, failing the same way a
// missing property lookup would.
func getAtom(x *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(x, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern atom %s: %w", name, err)
	}
	return reply.Atom, nil
}

func (c *Conn) internAtoms() error {
	var err error
	if c.atomWMProtocols, err = getAtom(c.X, "WM_PROTOCOLS"); err != nil {
		return err
	}
	if c.atomWMDeleteWindow, err = getAtom(c.X, "WM_DELETE_WINDOW"); err != nil {
		return err
	}
	if c.atomWMState, err = getAtom(c.X, "WM_STATE"); err != nil {
		return err
	}
	if c.atomWMTakeFocus, err = getAtom(c.X, "WM_TAKE_FOCUS"); err != nil {
		return err
	}
	return nil
}

// supportsProtocol reports whether window advertises atom in its
// WM_PROTOCOLS property.
func (c *Conn) supportsProtocol(window xproto.Window, atom xproto.Atom) bool {
	prop, err := xproto.GetProperty(c.X, false, window, c.atomWMProtocols, xproto.AtomAtom, 0, (1<<32)-1).Reply()
	if err != nil || prop.Format != 32 {
		return false
	}
	for i := 0; i < int(prop.ValueLen); i++ {
		if xproto.Atom(xgb.Get32(prop.Value[i*4:])) == atom {
			return true
		}
	}
	return false
}

// sendWMDelete asks window to close via WM_DELETE_WINDOW, the
// cooperative half of Kill.
func (c *Conn) sendWMDelete(window xproto.Window) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: window,
		Type:   c.atomWMProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.atomWMDeleteWindow), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(c.X, false, window, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}
