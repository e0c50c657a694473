package xconn

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/reducer"
	"github.com/tilewm/tilewm/internal/stack"
)

// Next blocks for the next X event (WaitForEvent) and decodes it into a
// reducer.Event: one decode step of an event loop like doWM's Run, so
// the caller owns the loop and the exit check.
func (c *Conn) Next() (reducer.Event, error) {
	event, err := c.X.WaitForEvent()
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	switch ev := event.(type) {
	case xproto.MapRequestEvent:
		return reducer.MapRequest{Window: stack.WindowID(ev.Window)}, nil

	case xproto.DestroyNotifyEvent:
		return reducer.DestroyNotify{Window: stack.WindowID(ev.Window)}, nil

	case xproto.UnmapNotifyEvent:
		return reducer.UnmapNotify{
			Window:    stack.WindowID(ev.Window),
			Synthetic: ev.Event == c.Root,
		}, nil

	case xproto.ConfigureRequestEvent:
		return reducer.ConfigureRequest{
			Window: stack.WindowID(ev.Window),
			Rect: stack.Rectangle{
				X: int(ev.X), Y: int(ev.Y),
				W: uint(ev.Width), H: uint(ev.Height),
			},
		}, nil

	case xproto.EnterNotifyEvent:
		return reducer.EnterNotify{Window: stack.WindowID(ev.Event)}, nil

	case xproto.KeyPressEvent:
		return reducer.KeyPress{
			Keysym: uint32(c.KeysymOf(ev.Detail)),
			Mods:   c.cleanMods(ev.State),
		}, nil

	case xproto.ButtonPressEvent:
		return reducer.ButtonPress{
			Window: stack.WindowID(ev.Child),
			Button: uint8(ev.Detail),
			Mods:   c.cleanMods(ev.State),
			X:      int(ev.RootX), Y: int(ev.RootY),
		}, nil

	case xproto.MotionNotifyEvent:
		return reducer.MotionNotify{X: int(ev.RootX), Y: int(ev.RootY)}, nil

	case xproto.ButtonReleaseEvent:
		return reducer.ButtonRelease{}, nil

	default:
		slog.Debug("unhandled X event", "event", event.String())
		return nil, nil
	}
}
