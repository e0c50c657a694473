package stack

// Workspace is a named virtual desktop: a layout algorithm plus the
// stack of windows it arranges. Stack is nil when the workspace holds
// no windows.
type Workspace struct {
	Tag    WorkspaceTag
	Layout Layout
	Stack  *Stack[WindowID]
}

func (w Workspace) clone() Workspace {
	cp := w
	cp.Stack = w.Stack.clone()
	return cp
}

// Screen binds a workspace to a physical monitor.
type Screen struct {
	ID        ScreenID
	Workspace Workspace
	Detail    ScreenDetail
}

func (s Screen) clone() Screen {
	cp := s
	cp.Workspace = s.Workspace.clone()
	return cp
}

// WindowSet is the complete window-manager state: one focused screen,
// zero or more other visible screens, workspaces currently on no
// screen, and the floating-window overlay. It is always manipulated by
// value-returning pure functions; nothing in this package mutates a
// WindowSet in place.
type WindowSet struct {
	Current  Screen
	Visible  []Screen
	Hidden   []Workspace
	Floating map[WindowID]RationalRect
}

// NewWindowSet builds the initial state: one workspace per tag, the
// first ones bound in order onto the given screen details. len(tags)
// must be >= len(screens); surplus tags become hidden workspaces.
func NewWindowSet(tags []WorkspaceTag, layouts func() Layout, screens []ScreenDetail) *WindowSet {
	workspaces := make([]Workspace, len(tags))
	for i, t := range tags {
		workspaces[i] = Workspace{Tag: t, Layout: layouts()}
	}
	ws := &WindowSet{Floating: map[WindowID]RationalRect{}}
	n := len(screens)
	if n == 0 {
		n = 1
		screens = []ScreenDetail{{}}
	}
	ws.Current = Screen{ID: 0, Workspace: workspaces[0], Detail: screens[0]}
	for i := 1; i < n && i < len(workspaces); i++ {
		ws.Visible = append(ws.Visible, Screen{ID: ScreenID(i), Workspace: workspaces[i], Detail: screens[i]})
	}
	if n < len(workspaces) {
		ws.Hidden = append(ws.Hidden, workspaces[n:]...)
	}
	return ws
}

func (ws *WindowSet) clone() *WindowSet {
	cp := &WindowSet{
		Current:  ws.Current.clone(),
		Floating: make(map[WindowID]RationalRect, len(ws.Floating)),
	}
	for _, s := range ws.Visible {
		cp.Visible = append(cp.Visible, s.clone())
	}
	for _, w := range ws.Hidden {
		cp.Hidden = append(cp.Hidden, w.clone())
	}
	for k, v := range ws.Floating {
		cp.Floating[k] = v
	}
	return cp
}

// Screens returns every screen, current first.
func (ws *WindowSet) Screens() []Screen {
	out := make([]Screen, 0, 1+len(ws.Visible))
	out = append(out, ws.Current)
	out = append(out, ws.Visible...)
	return out
}

// Workspaces returns every workspace, visible ones first (current
// first among those), then hidden.
func (ws *WindowSet) Workspaces() []Workspace {
	out := make([]Workspace, 0, 1+len(ws.Visible)+len(ws.Hidden))
	out = append(out, ws.Current.Workspace)
	for _, s := range ws.Visible {
		out = append(out, s.Workspace)
	}
	out = append(out, ws.Hidden...)
	return out
}

// AllWindows returns every managed window across every workspace, in no
// particular order.
func (ws *WindowSet) AllWindows() []WindowID {
	var out []WindowID
	for _, w := range ws.Workspaces() {
		if w.Stack != nil {
			out = append(out, w.Stack.ToList()...)
		}
	}
	return out
}

// FindTag returns the tag of the workspace currently holding w, and
// whether it was found at all.
func (ws *WindowSet) FindTag(w WindowID) (WorkspaceTag, bool) {
	for _, wk := range ws.Workspaces() {
		if wk.Stack != nil && wk.Stack.Contains(w) {
			return wk.Tag, true
		}
	}
	return "", false
}

// PeekWindow returns the currently focused window on the current
// workspace, if any.
func (ws *WindowSet) PeekWindow() (WindowID, bool) {
	if ws.Current.Workspace.Stack == nil {
		return 0, false
	}
	return ws.Current.Workspace.Stack.Focus, true
}

func mapCurrentStack(ws *WindowSet, f func(*Stack[WindowID]) *Stack[WindowID]) *WindowSet {
	cp := ws.clone()
	cp.Current.Workspace.Stack = f(cp.Current.Workspace.Stack)
	return cp
}

// Insert adds w to the current workspace, focused, immediately before
// the previous focus. A no-op if w is already managed anywhere.
func Insert(ws *WindowSet, w WindowID) *WindowSet {
	if _, ok := ws.FindTag(w); ok {
		return ws.clone()
	}
	return mapCurrentStack(ws, func(s *Stack[WindowID]) *Stack[WindowID] {
		return InsertUp(s, w)
	})
}

// Remove deletes w from whichever workspace holds it, and drops any
// floating geometry recorded for it.
func Remove(ws *WindowSet, w WindowID) *WindowSet {
	cp := ws.clone()
	delete(cp.Floating, w)
	apply := func(wk *Workspace) {
		if wk.Stack != nil && wk.Stack.Contains(w) {
			wk.Stack = Delete(wk.Stack, w)
		}
	}
	apply(&cp.Current.Workspace)
	for i := range cp.Visible {
		apply(&cp.Visible[i].Workspace)
	}
	for i := range cp.Hidden {
		apply(&cp.Hidden[i])
	}
	return cp
}

// Float records w as floating at the given relative geometry.
func Float(ws *WindowSet, w WindowID, rect RationalRect) *WindowSet {
	cp := ws.clone()
	cp.Floating[w] = rect
	return cp
}

// Sink removes w's floating geometry, returning it to normal tiling.
func Sink(ws *WindowSet, w WindowID) *WindowSet {
	cp := ws.clone()
	delete(cp.Floating, w)
	return cp
}

// FocusWindow refocuses on w, switching workspace/screen first if w
// lives elsewhere. A no-op if w isn't managed.
func FocusWindow(ws *WindowSet, w WindowID) *WindowSet {
	tag, ok := ws.FindTag(w)
	if !ok {
		return ws.clone()
	}
	cp := GreedyView(ws, tag)
	cp.Current.Workspace.Stack = focusWindow(cp.Current.Workspace.Stack, w)
	return cp
}

// View makes the workspace named tag the current one. If tag is
// already visible on another screen, that screen and the current
// screen trade places (screen contents are swapped, so the physical
// monitor showing tag becomes current without moving the workspace).
// If tag is hidden, it replaces the current screen's workspace, and the
// displaced workspace becomes hidden. A no-op if tag doesn't exist or
// is already current.
func View(ws *WindowSet, tag WorkspaceTag) *WindowSet {
	if ws.Current.Workspace.Tag == tag {
		return ws.clone()
	}
	cp := ws.clone()
	for i, s := range cp.Visible {
		if s.Workspace.Tag == tag {
			cp.Visible[i], cp.Current = cp.Current, cp.Visible[i]
			return cp
		}
	}
	for i, w := range cp.Hidden {
		if w.Tag == tag {
			cp.Hidden[i] = cp.Current.Workspace
			cp.Current.Workspace = w
			return cp
		}
	}
	return cp
}

// GreedyView makes tag's workspace current on the current screen. Unlike
// View, if tag was visible on a different screen its contents are
// pulled onto the current screen (the two workspaces' screen bindings
// swap), rather than just switching which screen is "current".
func GreedyView(ws *WindowSet, tag WorkspaceTag) *WindowSet {
	if ws.Current.Workspace.Tag == tag {
		return ws.clone()
	}
	cp := ws.clone()
	for i, s := range cp.Visible {
		if s.Workspace.Tag == tag {
			cp.Visible[i].Workspace, cp.Current.Workspace = cp.Current.Workspace, s.Workspace
			return cp
		}
	}
	for i, w := range cp.Hidden {
		if w.Tag == tag {
			cp.Hidden[i] = cp.Current.Workspace
			cp.Current.Workspace = w
			return cp
		}
	}
	return cp
}

// Shift moves the focused window on the current workspace to the
// workspace named tag, focused there, without changing which workspace
// is current. A no-op if there's no focused window or tag doesn't
// exist.
func Shift(ws *WindowSet, tag WorkspaceTag) *WindowSet {
	w, ok := ws.PeekWindow()
	if !ok || ws.Current.Workspace.Tag == tag {
		return ws.clone()
	}
	found := false
	for _, wk := range ws.Workspaces() {
		if wk.Tag == tag {
			found = true
			break
		}
	}
	if !found {
		return ws.clone()
	}
	cp := Remove(ws, w)
	apply := func(wk *Workspace) bool {
		if wk.Tag == tag {
			wk.Stack = InsertUp(wk.Stack, w)
			return true
		}
		return false
	}
	if apply(&cp.Current.Workspace) {
		return cp
	}
	for i := range cp.Visible {
		if apply(&cp.Visible[i].Workspace) {
			return cp
		}
	}
	for i := range cp.Hidden {
		if apply(&cp.Hidden[i]) {
			return cp
		}
	}
	return cp
}
