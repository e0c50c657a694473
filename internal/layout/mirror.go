package layout

import (
	"fmt"

	"github.com/tilewm/tilewm/internal/stack"
)

// Mirror transposes another layout's geometry across the diagonal,
// turning a side-by-side split into a top-and-bottom one (and vice
// versa). Messages pass through to the wrapped layout unchanged; the
// description is the wrapped layout's, prefixed with "Mirror ".
type Mirror struct {
	Inner stack.Layout
}

func NewMirror(inner stack.Layout) *Mirror { return &Mirror{Inner: inner} }

func (m *Mirror) Description() string { return "Mirror " + m.Inner.Description() }

func (m *Mirror) DoLayout(screen stack.Rectangle, st *stack.Stack[stack.WindowID]) ([]stack.WindowRect, stack.Layout, error) {
	rects, newInner, err := m.Inner.DoLayout(transpose(screen), st)
	if err != nil {
		return nil, nil, err
	}
	for i := range rects {
		rects[i].Rect = transpose(rects[i].Rect)
	}
	if newInner == nil {
		return rects, nil, nil
	}
	return rects, &Mirror{Inner: newInner}, nil
}

func transpose(r stack.Rectangle) stack.Rectangle {
	return stack.Rectangle{X: r.Y, Y: r.X, W: r.H, H: r.W}
}

func (m *Mirror) HandleMessage(msg stack.Message) (stack.Layout, error) {
	newInner, err := m.Inner.HandleMessage(msg)
	if err != nil {
		return nil, err
	}
	if newInner == nil {
		return nil, nil
	}
	return &Mirror{Inner: newInner}, nil
}

func (m *Mirror) Encode() string {
	return fmt.Sprintf("Mirror(%s)", m.Inner.Encode())
}

func decodeMirror(args string) (stack.Layout, error) {
	inner, err := Decode(args)
	if err != nil {
		return nil, fmt.Errorf("decode Mirror: %w", err)
	}
	return NewMirror(inner), nil
}

func init() {
	Register("Mirror", decodeMirror)
}
