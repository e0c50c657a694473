package stack

import "fmt"

// CheckInvariants validates the structural invariants every WindowSet
// must satisfy after any pure operation: every window appears at most
// once across all workspaces, every workspace tag is unique, and the
// current screen's tag never also appears among the visible screens.
func CheckInvariants(ws *WindowSet) error {
	seen := map[WindowID]WorkspaceTag{}
	for _, wk := range ws.Workspaces() {
		if wk.Stack == nil {
			continue
		}
		for _, w := range wk.Stack.ToList() {
			if prev, ok := seen[w]; ok {
				return fmt.Errorf("window %d appears on both workspace %q and %q", w, prev, wk.Tag)
			}
			seen[w] = wk.Tag
		}
	}

	tags := map[WorkspaceTag]bool{}
	for _, wk := range ws.Workspaces() {
		if tags[wk.Tag] {
			return fmt.Errorf("duplicate workspace tag %q", wk.Tag)
		}
		tags[wk.Tag] = true
	}

	for _, s := range ws.Visible {
		if s.Workspace.Tag == ws.Current.Workspace.Tag {
			return fmt.Errorf("workspace %q is both current and visible elsewhere", s.Workspace.Tag)
		}
	}

	for w := range ws.Floating {
		if _, ok := seen[w]; !ok {
			return fmt.Errorf("floating window %d is not managed by any workspace", w)
		}
	}

	return nil
}
