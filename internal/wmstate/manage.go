package wmstate

import "github.com/tilewm/tilewm/internal/stack"

// ManageHook lets a custom tilewm.go customize how a newly-mapped
// window is folded into the WindowSet: given the window, it returns the
// Endo to compose after the default insert_up(w), for instance to float
// it immediately or shift it straight to another workspace. A nil
// ManageHook on State leaves the default transform untouched.
type ManageHook func(w stack.WindowID) Endo

// Manage brings a newly-mapped window w under management. The default
// transform is insert_up(w) on the current workspace; if State.ManageHook
// is set, its result is composed after the default, matching the
// user_hook(w) ∘ insert_up(w) shape: the hook sees a WindowSet that
// already has w inserted, and can further transform it (or leave it
// alone by returning identity).
func (st *State) Manage(w stack.WindowID) error {
	insertUp := Endo(func(ws *stack.WindowSet) *stack.WindowSet {
		return stack.Insert(ws, w)
	})

	endo := insertUp
	if hook := st.ManageHook; hook != nil {
		endo = Compose(insertUp, func(ws *stack.WindowSet) *stack.WindowSet {
			return hook(w)(ws)
		})
	}

	err := st.Apply(endo)
	if err != nil {
		return err
	}
	st.Mapped[w] = true
	return nil
}

// Unmanage removes w from the WindowSet, typically in response to
// DestroyNotify or a withdrawn UnmapNotify.
func (st *State) Unmanage(w stack.WindowID) error {
	err := st.Apply(func(ws *stack.WindowSet) *stack.WindowSet {
		return stack.Remove(ws, w)
	})
	delete(st.Mapped, w)
	delete(st.WaitingUnmap, w)
	return err
}

// ExpectUnmap records that we are about to unmap w ourselves (for
// instance because its workspace is being hidden), so the corresponding
// UnmapNotify should be swallowed rather than treated as the client
// withdrawing.
func (st *State) ExpectUnmap(w stack.WindowID) {
	st.WaitingUnmap[w]++
}

// ConsumeExpectedUnmap reports whether an UnmapNotify for w was one we
// caused ourselves, decrementing the count if so.
func (st *State) ConsumeExpectedUnmap(w stack.WindowID) bool {
	if st.WaitingUnmap[w] <= 0 {
		return false
	}
	st.WaitingUnmap[w]--
	if st.WaitingUnmap[w] == 0 {
		delete(st.WaitingUnmap, w)
	}
	return true
}
