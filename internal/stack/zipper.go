package stack

// Stack is a non-empty, focus-centred ordered sequence. Up is stored
// reversed: Up[0] is the element immediately before Focus, so "previous
// window" is an O(1) head access rather than an O(n) tail access.
//
//	up (reversed) | focus | down
//	 ... w2 w1     |  w0   | w3 w4 ...
type Stack[T comparable] struct {
	Up    []T
	Focus T
	Down  []T
}

// NewStack returns a singleton stack focused on w.
func NewStack[T comparable](w T) *Stack[T] {
	return &Stack[T]{Focus: w}
}

// ToList flattens the stack in zipper order: reverse(Up), Focus, Down.
func (s *Stack[T]) ToList() []T {
	if s == nil {
		return nil
	}
	out := make([]T, 0, len(s.Up)+1+len(s.Down))
	for i := len(s.Up) - 1; i >= 0; i-- {
		out = append(out, s.Up[i])
	}
	out = append(out, s.Focus)
	out = append(out, s.Down...)
	return out
}

// Contains reports whether w appears anywhere in the stack.
func (s *Stack[T]) Contains(w T) bool {
	if s == nil {
		return false
	}
	if s.Focus == w {
		return true
	}
	for _, x := range s.Up {
		if x == w {
			return true
		}
	}
	for _, x := range s.Down {
		if x == w {
			return true
		}
	}
	return false
}

// clone makes a defensive copy with fresh backing arrays, so operations
// never alias a caller's slices.
func (s *Stack[T]) clone() *Stack[T] {
	if s == nil {
		return nil
	}
	cp := &Stack[T]{Focus: s.Focus}
	if s.Up != nil {
		cp.Up = append([]T(nil), s.Up...)
	}
	if s.Down != nil {
		cp.Down = append([]T(nil), s.Down...)
	}
	return cp
}

func reversed[T any](xs []T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

func prepend[T any](x T, xs []T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, x)
	out = append(out, xs...)
	return out
}

func removeFirst[T comparable](xs []T, w T) []T {
	for i, x := range xs {
		if x == w {
			out := make([]T, 0, len(xs)-1)
			out = append(out, xs[:i]...)
			out = append(out, xs[i+1:]...)
			return out
		}
	}
	return xs
}

// rawFocusUp moves focus to Up's head, pushing the old focus onto Down.
// At the Up-empty edge it wraps: focus becomes the last element overall.
func rawFocusUp[T comparable](s *Stack[T]) *Stack[T] {
	if s == nil {
		return nil
	}
	if len(s.Up) == 0 {
		if len(s.Down) == 0 {
			return s.clone()
		}
		all := s.ToList()
		n := len(all)
		return &Stack[T]{Focus: all[n-1], Up: reversed(all[:n-1])}
	}
	return &Stack[T]{
		Focus: s.Up[0],
		Up:    append([]T(nil), s.Up[1:]...),
		Down:  prepend(s.Focus, s.Down),
	}
}

// rawFocusDown is the mirror image of rawFocusUp, pivoting on Down.
func rawFocusDown[T comparable](s *Stack[T]) *Stack[T] {
	if s == nil {
		return nil
	}
	if len(s.Down) == 0 {
		if len(s.Up) == 0 {
			return s.clone()
		}
		all := s.ToList()
		return &Stack[T]{Focus: all[0], Down: append([]T(nil), all[1:]...)}
	}
	return &Stack[T]{
		Focus: s.Down[0],
		Down:  append([]T(nil), s.Down[1:]...),
		Up:    prepend(s.Focus, s.Up),
	}
}

// rawSwapUp swaps Focus with Up's head; Focus stays on the same window.
// Wraps by moving the whole Down list (reversed) into Up.
func rawSwapUp[T comparable](s *Stack[T]) *Stack[T] {
	if s == nil {
		return nil
	}
	if len(s.Up) > 0 {
		l := s.Up[0]
		return &Stack[T]{
			Focus: s.Focus,
			Up:    append([]T(nil), s.Up[1:]...),
			Down:  prepend(l, s.Down),
		}
	}
	return &Stack[T]{Focus: s.Focus, Up: reversed(s.Down)}
}

// rawSwapDown is the mirror image of rawSwapUp, pivoting on Down.
func rawSwapDown[T comparable](s *Stack[T]) *Stack[T] {
	if s == nil {
		return nil
	}
	if len(s.Down) > 0 {
		l := s.Down[0]
		return &Stack[T]{
			Focus: s.Focus,
			Down:  append([]T(nil), s.Down[1:]...),
			Up:    prepend(l, s.Up),
		}
	}
	return &Stack[T]{Focus: s.Focus, Down: reversed(s.Up)}
}

// rawSwapMaster promotes Focus to the master slot (Down becomes empty),
// preserving every other element's relative order. It is a true no-op
// when Focus is already master (Down already empty).
func rawSwapMaster[T comparable](s *Stack[T]) *Stack[T] {
	if s == nil {
		return nil
	}
	return &Stack[T]{
		Focus: s.Focus,
		Up:    append(reversed(s.Down), s.Up...),
	}
}

// rawInsertUp inserts w immediately before Focus; w becomes the new
// focus and the displaced focus slides onto the front of Down.
func rawInsertUp[T comparable](s *Stack[T], w T) *Stack[T] {
	if s == nil {
		return &Stack[T]{Focus: w}
	}
	return &Stack[T]{
		Focus: w,
		Up:    append([]T(nil), s.Up...),
		Down:  prepend(s.Focus, s.Down),
	}
}

// rawDelete removes w wherever it occurs. If w was the focus, the new
// focus is Down's head, else Up's head, else the stack becomes empty
// (nil).
func rawDelete[T comparable](s *Stack[T], w T) *Stack[T] {
	if s == nil {
		return nil
	}
	if s.Focus == w {
		if len(s.Down) > 0 {
			return &Stack[T]{Focus: s.Down[0], Up: append([]T(nil), s.Up...), Down: append([]T(nil), s.Down[1:]...)}
		}
		if len(s.Up) > 0 {
			return &Stack[T]{Focus: s.Up[0], Up: append([]T(nil), s.Up[1:]...)}
		}
		return nil
	}
	return &Stack[T]{
		Focus: s.Focus,
		Up:    removeFirst(append([]T(nil), s.Up...), w),
		Down:  removeFirst(append([]T(nil), s.Down...), w),
	}
}
