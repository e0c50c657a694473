package stack

import (
	"reflect"
	"testing"
)

func list(xs ...int) []int { return xs }

func TestInsertUpPushesFocusToDown(t *testing.T) {
	s := NewStack(1)
	s = InsertUp(s, 2)
	s = InsertUp(s, 3)

	if s.Focus != 3 {
		t.Fatalf("expected focus 3, got %v", s.Focus)
	}
	if !reflect.DeepEqual(s.Down, list(2, 1)) {
		t.Fatalf("expected down [2 1], got %v", s.Down)
	}
	if len(s.Up) != 0 {
		t.Fatalf("expected empty up, got %v", s.Up)
	}
}

func TestInsertUpThenDeleteIsIdentity(t *testing.T) {
	s := &Stack[int]{Up: list(2, 1), Focus: 5, Down: list(3, 4)}
	before := s.ToList()

	after := Delete(InsertUp(s, 99), 99)

	if !reflect.DeepEqual(after.ToList(), before) {
		t.Fatalf("delete(insertUp(s,w)) != s: got %v want %v", after.ToList(), before)
	}
}

func TestMasterIsFirstInsertedAfterThreeInserts(t *testing.T) {
	var s *Stack[int]
	s = InsertUp(s, 100)
	s = InsertUp(s, 101)
	s = InsertUp(s, 102)

	if !IsMaster(s, 100) {
		t.Fatalf("expected 100 to be master, up=%v focus=%v down=%v", s.Up, s.Focus, s.Down)
	}
	if s.Focus != 102 {
		t.Fatalf("expected focus 102, got %v", s.Focus)
	}
}

func TestFocusDownWrapsToMaster(t *testing.T) {
	var s *Stack[int]
	s = InsertUp(s, 100)
	s = InsertUp(s, 101)
	s = InsertUp(s, 102)

	s = FocusDown(s)

	if s.Focus != 100 {
		t.Fatalf("expected wrap to master (100), got %v", s.Focus)
	}
	if !IsMaster(s, 100) {
		t.Fatalf("expected 100 to remain master after refocus, up=%v down=%v", s.Up, s.Down)
	}
}

func TestFocusUpThenFocusDownIsIdentity(t *testing.T) {
	s := &Stack[int]{Up: list(2, 1), Focus: 5, Down: list(3, 4)}
	before := s.ToList()
	beforeFocus := s.Focus

	after := FocusDown(FocusUp(s))

	if after.Focus != beforeFocus || !reflect.DeepEqual(after.ToList(), before) {
		t.Fatalf("focusDown(focusUp(s)) != s")
	}
}

func TestSwapMasterNoOpWhenAlreadyMaster(t *testing.T) {
	var s *Stack[int]
	s = InsertUp(s, 100)
	s = InsertUp(s, 101)
	s = InsertUp(s, 102)
	s = FocusDown(s) // wraps focus to master (100)

	before := s.ToList()
	after := SwapMaster(s)

	if !reflect.DeepEqual(after.ToList(), before) || after.Focus != s.Focus {
		t.Fatalf("swapMaster on a stack already focused on master changed state: before=%v after=%v", before, after.ToList())
	}
}

func TestSwapMasterPromotesFocus(t *testing.T) {
	var s *Stack[int]
	s = InsertUp(s, 100)
	s = InsertUp(s, 101)
	s = InsertUp(s, 102) // focus=102, master=100

	s = SwapMaster(s)

	if !IsMaster(s, 102) {
		t.Fatalf("expected 102 promoted to master, up=%v down=%v", s.Up, s.Down)
	}
	if s.Focus != 102 {
		t.Fatalf("expected focus to remain 102, got %v", s.Focus)
	}
}

func TestToListContainsEveryWindowExactlyOnce(t *testing.T) {
	s := &Stack[int]{Up: list(2, 1), Focus: 5, Down: list(3, 4)}
	seen := map[int]int{}
	for _, w := range s.ToList() {
		seen[w]++
	}
	for _, w := range []int{1, 2, 3, 4, 5} {
		if seen[w] != 1 {
			t.Fatalf("window %d appears %d times, want 1", w, seen[w])
		}
	}
}

func TestDeleteFocusPrefersDown(t *testing.T) {
	s := &Stack[int]{Up: list(1), Focus: 2, Down: list(3, 4)}
	after := Delete(s, 2)
	if after.Focus != 3 {
		t.Fatalf("expected new focus 3 (down's head), got %v", after.Focus)
	}
}

func TestDeleteLastWindowYieldsNilStack(t *testing.T) {
	s := NewStack(1)
	if Delete(s, 1) != nil {
		t.Fatalf("expected nil stack after deleting the only window")
	}
}
