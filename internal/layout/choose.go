package layout

import (
	"fmt"

	"github.com/tilewm/tilewm/internal/stack"
)

// Choose cycles between two layouts on KindNextLayout, and jumps back
// to the first on KindFirstLayout. DoLayout is delegated to whichever
// layout is currently active; every other message goes to both.
type Choose struct {
	First, Second stack.Layout
	onSecond      bool
}

func NewChoose(first, second stack.Layout) *Choose {
	return &Choose{First: first, Second: second}
}

func (c *Choose) active() stack.Layout {
	if c.onSecond {
		return c.Second
	}
	return c.First
}

func (c *Choose) Description() string { return c.active().Description() }

func (c *Choose) DoLayout(screen stack.Rectangle, st *stack.Stack[stack.WindowID]) ([]stack.WindowRect, stack.Layout, error) {
	rects, newActive, err := c.active().DoLayout(screen, st)
	if err != nil {
		return nil, nil, err
	}
	if newActive == nil {
		return rects, nil, nil
	}
	return rects, c.withActive(newActive), nil
}

func (c *Choose) withActive(active stack.Layout) *Choose {
	cp := &Choose{First: c.First, Second: c.Second, onSecond: c.onSecond}
	if cp.onSecond {
		cp.Second = active
	} else {
		cp.First = active
	}
	return cp
}

func (c *Choose) HandleMessage(msg stack.Message) (stack.Layout, error) {
	switch msg.Kind {
	case stack.KindNextLayout:
		return &Choose{First: c.First, Second: c.Second, onSecond: !c.onSecond}, nil
	case stack.KindFirstLayout:
		if !c.onSecond {
			return nil, nil
		}
		return &Choose{First: c.First, Second: c.Second, onSecond: false}, nil
	default:
		// Every other message (Shrink, Expand, IncMasterN, Hide,
		// ReleaseResources, ...) reaches both sub-layouts, not just the
		// active one, so the inactive side stays in sync and is ready to
		// take over correctly the next time NextLayout toggles to it.
		newFirst, err := c.First.HandleMessage(msg)
		if err != nil {
			return nil, err
		}
		newSecond, err := c.Second.HandleMessage(msg)
		if err != nil {
			return nil, err
		}
		if newFirst == nil && newSecond == nil {
			return nil, nil
		}
		cp := &Choose{First: c.First, Second: c.Second, onSecond: c.onSecond}
		if newFirst != nil {
			cp.First = newFirst
		}
		if newSecond != nil {
			cp.Second = newSecond
		}
		return cp, nil
	}
}

func (c *Choose) Encode() string {
	active := 0
	if c.onSecond {
		active = 1
	}
	return fmt.Sprintf("Choose(%d,%s,%s)", active, c.First.Encode(), c.Second.Encode())
}

func decodeChoose(args string) (stack.Layout, error) {
	fields := splitArgs(args)
	if len(fields) != 3 {
		return nil, fmt.Errorf("decode Choose: want 3 fields, got %d", len(fields))
	}
	var active int
	if _, err := fmt.Sscanf(fields[0], "%d", &active); err != nil {
		return nil, fmt.Errorf("decode Choose: %w", err)
	}
	first, err := Decode(fields[1])
	if err != nil {
		return nil, fmt.Errorf("decode Choose: %w", err)
	}
	second, err := Decode(fields[2])
	if err != nil {
		return nil, fmt.Errorf("decode Choose: %w", err)
	}
	return &Choose{First: first, Second: second, onSecond: active == 1}, nil
}

func init() {
	Register("Choose", decodeChoose)
}
