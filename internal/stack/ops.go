package stack

// The navigation and swap operations below wrap the raw primitives in
// zipper.go. FocusDown/SwapDown pivot on Up and FocusUp/SwapUp pivot on
// Down: moving focus "up" towards the master pane walks backwards
// through insertion history, which lands on the Down-pivoting primitive
// given that InsertUp pushes the displaced focus onto Down.

// FocusUp moves focus toward the master pane, wrapping at the edge.
func FocusUp[T comparable](s *Stack[T]) *Stack[T] { return rawFocusDown(s) }

// FocusDown moves focus away from the master pane, wrapping at the edge.
func FocusDown[T comparable](s *Stack[T]) *Stack[T] { return rawFocusUp(s) }

// SwapUp exchanges Focus with its master-ward neighbor.
func SwapUp[T comparable](s *Stack[T]) *Stack[T] { return rawSwapDown(s) }

// SwapDown exchanges Focus with its neighbor away from master.
func SwapDown[T comparable](s *Stack[T]) *Stack[T] { return rawSwapUp(s) }

// SwapMaster promotes Focus into the master slot. A no-op if Focus is
// already master.
func SwapMaster[T comparable](s *Stack[T]) *Stack[T] { return rawSwapMaster(s) }

// InsertUp inserts w immediately before Focus and focuses it. If s is
// nil (empty stack) the result is a singleton stack focused on w.
func InsertUp[T comparable](s *Stack[T], w T) *Stack[T] { return rawInsertUp(s, w) }

// Delete removes w from s. Deleting the last window returns nil.
func Delete[T comparable](s *Stack[T], w T) *Stack[T] { return rawDelete(s, w) }

// IsMaster reports whether w currently occupies the master slot.
func IsMaster[T comparable](s *Stack[T], w T) bool {
	if s == nil {
		return false
	}
	if len(s.Down) > 0 {
		return s.Down[len(s.Down)-1] == w
	}
	return s.Focus == w
}

// focusWindow refocuses s on w without disturbing anyone else's relative
// order. w must already be present in s.
func focusWindow[T comparable](s *Stack[T], w T) *Stack[T] {
	if s == nil || s.Focus == w {
		return s
	}
	all := s.ToList()
	for i, x := range all {
		if x == w {
			return &Stack[T]{
				Focus: w,
				Up:    reversed(append([]T(nil), all[:i]...)),
				Down:  append([]T(nil), all[i+1:]...),
			}
		}
	}
	return s
}
