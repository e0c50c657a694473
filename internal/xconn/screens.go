package xconn

import (
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/stack"
)

// Screens reports the current monitor layout via Xinerama, falling
// back to a single screen spanning the root window when Xinerama isn't
// available (common on a bare Xvfb/Xephyr test display).
func (c *Conn) Screens() []stack.ScreenDetail {
	if err := xinerama.Init(c.X); err == nil {
		if reply, err := xinerama.QueryScreens(c.X).Reply(); err == nil && len(reply.ScreenInfo) > 0 {
			out := make([]stack.ScreenDetail, len(reply.ScreenInfo))
			for i, s := range reply.ScreenInfo {
				out[i] = stack.ScreenDetail{Rect: stack.Rectangle{
					X: int(s.XOrg), Y: int(s.YOrg),
					W: uint(s.Width), H: uint(s.Height),
				}}
			}
			return out
		}
	}

	geom, err := xproto.GetGeometry(c.X, xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return []stack.ScreenDetail{{Rect: stack.Rectangle{W: 1024, H: 768}}}
	}
	return []stack.ScreenDetail{{Rect: stack.Rectangle{W: uint(geom.Width), H: uint(geom.Height)}}}
}
