package reducer

import "github.com/tilewm/tilewm/internal/stack"

// KeyCombo identifies a key binding by modifier mask and X keysym.
type KeyCombo struct {
	Mods   uint16
	Keysym uint32
}

// ButtonCombo identifies a mouse binding by modifier mask and button
// number.
type ButtonCombo struct {
	Mods   uint16
	Button uint8
}

// Action is a named behavior a key or mouse binding triggers. It runs
// behind the same error boundary as every other state update.
type Action func(r *Reducer) error

// LogHook is invoked at the end of every Refresh with the freshly
// settled WindowSet, the extension point a custom tilewm.go can set for
// status-bar integration or similar. It runs sandboxed: a panic is
// caught and logged rather than reaching the event loop.
type LogHook func(ws *stack.WindowSet)

// Bindings is the complete table of user configuration consumed by the
// reducer: what each key and button combination does, the modifier
// used for mouse move/resize drags, the border appearance applied on
// every Refresh, and the log hook run at the end of it.
type Bindings struct {
	Keys    map[KeyCombo]Action
	Buttons map[ButtonCombo]Action

	// ModMask is the modifier that, held while any mouse button is
	// pressed on a floating window, starts an interactive drag that
	// moves it. Tiled windows are not dragged, and no drag resizes.
	ModMask uint16

	BorderFocused uint32
	BorderNormal  uint32
	BorderWidth   uint

	// LogHook is optional; nil means no hook runs.
	LogHook LogHook
}

// NewBindings returns an empty binding table; callers populate Keys and
// Buttons, typically from internal/wmconfig.
func NewBindings() *Bindings {
	return &Bindings{
		Keys:    map[KeyCombo]Action{},
		Buttons: map[ButtonCombo]Action{},
	}
}
