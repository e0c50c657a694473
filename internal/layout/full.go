package layout

import "github.com/tilewm/tilewm/internal/stack"

// Full gives the entire screen to the focused window; every other
// window is assigned the same rectangle and relies on stacking order to
// stay hidden behind it.
type Full struct{}

func NewFull() *Full { return &Full{} }

func (f *Full) Description() string { return "Full" }

func (f *Full) DoLayout(screen stack.Rectangle, st *stack.Stack[stack.WindowID]) ([]stack.WindowRect, stack.Layout, error) {
	if st == nil {
		return nil, nil, nil
	}
	ws := renderOrder(st)
	out := make([]stack.WindowRect, len(ws))
	for i, w := range ws {
		out[i] = stack.WindowRect{Window: w, Rect: screen}
	}
	return out, nil, nil
}

func (f *Full) HandleMessage(stack.Message) (stack.Layout, error) { return nil, nil }

func (f *Full) Encode() string { return "Full()" }

func init() {
	Register("Full", func(args string) (stack.Layout, error) { return NewFull(), nil })
}
