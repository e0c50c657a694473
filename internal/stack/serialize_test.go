package stack

import "testing"

type fakeLayout struct{ name string }

func (f *fakeLayout) DoLayout(Rectangle, *Stack[WindowID]) ([]WindowRect, Layout, error) {
	return nil, nil, nil
}
func (f *fakeLayout) HandleMessage(Message) (Layout, error) { return nil, nil }
func (f *fakeLayout) Description() string                   { return f.name }
func (f *fakeLayout) Encode() string                         { return "Fake(" + f.name + ")" }

func decodeFake(args string) (Layout, error) { return &fakeLayout{name: args}, nil }

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ws := newTestSet()
	ws = Insert(ws, 100)
	ws = Insert(ws, 101)
	ws = Insert(ws, 102)
	ws = Float(ws, 102, RationalRect{X: 0.1, Y: 0.2, W: 0.5, H: 0.5})
	ws.Current.Workspace.Layout = &fakeLayout{name: "tall"}
	ws.Hidden[0].Layout = &fakeLayout{name: "full"}

	encoded := Encode(ws)
	decoded, err := Decode(encoded, func(args string) (Layout, error) {
		if args == "" {
			return nil, nil
		}
		return decodeFake(args[len("Fake("):len(args)-1])
	})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.Current.Workspace.Tag != ws.Current.Workspace.Tag {
		t.Errorf("current tag = %q, want %q", decoded.Current.Workspace.Tag, ws.Current.Workspace.Tag)
	}
	if decoded.Current.Workspace.Layout.Description() != "tall" {
		t.Errorf("current layout = %q, want tall", decoded.Current.Workspace.Layout.Description())
	}
	if got, ok := decoded.PeekWindow(); !ok || got != 102 {
		t.Errorf("focus = %v, ok=%v, want 102", got, ok)
	}
	if !IsMaster(decoded.Current.Workspace.Stack, 100) {
		t.Error("expected 100 to remain master after round trip")
	}
	if rect, ok := decoded.Floating[102]; !ok || rect.X != 0.1 || rect.W != 0.5 {
		t.Errorf("floating[102] = %+v, ok=%v", rect, ok)
	}
	if len(decoded.Hidden) != len(ws.Hidden) {
		t.Fatalf("hidden count = %d, want %d", len(decoded.Hidden), len(ws.Hidden))
	}
	if decoded.Hidden[0].Layout.Description() != "full" {
		t.Errorf("hidden[0] layout = %q, want full", decoded.Hidden[0].Layout.Description())
	}
}
