package xconn

import "github.com/BurntSushi/xgb/xproto"

// xkNumLock is the X keysym for the Num_Lock key; there's no fixed
// modifier bit for it the way there is for Shift/Control/Lock, so it
// has to be discovered from the server's modifier mapping.
const xkNumLock = 0xff7f

// loadKeymap fills in a keycode -> keysym table by querying the
// server's keyboard mapping once at startup, the same shape
// driusan-dewm's main() builds before resolving key bindings.
func (c *Conn) loadKeymap() error {
	setup := xproto.Setup(c.X)
	reply, err := xproto.GetKeyboardMapping(c.X, setup.MinKeycode, byte(int(setup.MaxKeycode)-int(setup.MinKeycode)+1)).Reply()
	if err != nil {
		return err
	}
	perKeycode := int(reply.KeysymsPerKeycode)
	for i := 0; i <= int(setup.MaxKeycode)-int(setup.MinKeycode); i++ {
		code := int(setup.MinKeycode) + i
		if code < 0 || code > 255 {
			continue
		}
		start := i * perKeycode
		end := start + perKeycode
		if end > len(reply.Keysyms) {
			end = len(reply.Keysyms)
		}
		c.keymap[code] = append([]xproto.Keysym(nil), reply.Keysyms[start:end]...)
	}
	return nil
}

// KeysymOf looks up the first keysym bound to keycode.
func (c *Conn) KeysymOf(keycode xproto.Keycode) xproto.Keysym {
	syms := c.keymap[keycode]
	if len(syms) == 0 {
		return 0
	}
	return syms[0]
}

// KeycodesOf returns every keycode that can produce sym, needed to grab
// every physical key bound to a given keysym.
func (c *Conn) KeycodesOf(sym xproto.Keysym) []xproto.Keycode {
	var out []xproto.Keycode
	for code, syms := range c.keymap {
		for _, s := range syms {
			if s == sym {
				out = append(out, xproto.Keycode(code))
				break
			}
		}
	}
	return out
}

// loadNumLockMask discovers which Mod1-Mod5 bit the server has bound
// Num_Lock to by walking the modifier mapping, the same lookup dwm-style
// window managers do since NumLock (unlike Shift/Control/Lock) has no
// fixed bit position.
func (c *Conn) loadNumLockMask() error {
	reply, err := xproto.GetModifierMapping(c.X).Reply()
	if err != nil {
		return err
	}
	numLockCodes := c.KeycodesOf(xproto.Keysym(xkNumLock))
	per := int(reply.KeycodesPerModifier)
	for group := 0; group < 8 && (group+1)*per <= len(reply.Keycodes); group++ {
		for i := 0; i < per; i++ {
			code := reply.Keycodes[group*per+i]
			if code == 0 {
				continue
			}
			for _, nc := range numLockCodes {
				if xproto.Keycode(code) == nc {
					c.numLockMask = 1 << uint(group)
					return nil
				}
			}
		}
	}
	return nil
}

// cleanMods strips the NumLock and CapsLock bits from a key/button
// event's modifier state, so bindings resolved without knowing which
// physical lock keys happen to be toggled still match.
func (c *Conn) cleanMods(mods uint16) uint16 {
	return mods &^ (c.numLockMask | xproto.ModMaskLock)
}

// lockMaskCombinations returns every distinct combination of {0,
// numLockMask} x {0, ModMaskLock}, deduplicated (numLockMask may be 0 if
// it couldn't be determined, or may coincide with ModMaskLock on an
// unusual layout).
func (c *Conn) lockMaskCombinations() []uint16 {
	seen := map[uint16]bool{}
	var out []uint16
	for _, a := range [2]uint16{0, c.numLockMask} {
		for _, b := range [2]uint16{0, xproto.ModMaskLock} {
			m := a | b
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}

// GrabKey grabs every physical keycode bound to sym, with modifiers, on
// the root window, once per combination of NumLock/CapsLock so the grab
// matches regardless of whether either is toggled. sym is a raw X
// keysym value, as stored in a reducer.KeyCombo.
func (c *Conn) GrabKey(mods uint16, sym uint32) error {
	for _, code := range c.KeycodesOf(xproto.Keysym(sym)) {
		for _, lockBits := range c.lockMaskCombinations() {
			err := xproto.GrabKeyChecked(c.X, true, c.Root, mods|lockBits, code, xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// GrabButton grabs button with modifiers on the root window, needed for
// interactive move/resize and click-to-focus, once per combination of
// NumLock/CapsLock as GrabKey does.
func (c *Conn) GrabButton(mods uint16, button uint8) error {
	for _, lockBits := range c.lockMaskCombinations() {
		err := xproto.GrabButtonChecked(
			c.X, true, c.Root,
			uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion),
			xproto.GrabModeAsync, xproto.GrabModeAsync,
			xproto.WindowNone, xproto.AtomNone,
			button, mods|lockBits,
		).Check()
		if err != nil {
			return err
		}
	}
	return nil
}
