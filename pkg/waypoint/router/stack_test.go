package router

import "testing"

func TestStackPushPopTop(t *testing.T) {
	s := NewStack()
	if !s.IsEmpty() {
		t.Fatal("new stack should be empty")
	}
	if s.Pop() != nil || s.Top() != nil || s.Previous() != nil {
		t.Fatal("empty stack should return nil")
	}

	a, b := NewVisitableScreen("/a"), NewVisitableScreen("/b")
	s.Push(a)
	s.Push(b)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s.Top() != b {
		t.Errorf("Top() = %v, want %v", s.Top(), b)
	}
	if s.Previous() != a {
		t.Errorf("Previous() = %v, want %v", s.Previous(), a)
	}
	if got := s.Pop(); got != b {
		t.Errorf("Pop() = %v, want %v", got, b)
	}
	if s.Previous() != nil {
		t.Error("Previous() on single-screen stack should be nil")
	}
}

func TestStackReplaceTop(t *testing.T) {
	s := NewStack(NewVisitableScreen("/a"))
	b := NewVisitableScreen("/b")
	s.ReplaceTop(b)

	if s.Len() != 1 || s.Top() != b {
		t.Errorf("ReplaceTop left %v", names(s.Screens()))
	}

	defer func() {
		if recover() == nil {
			t.Error("ReplaceTop on empty stack should panic")
		}
	}()
	NewStack().ReplaceTop(b)
}

func TestStackPopToRootAndReset(t *testing.T) {
	s := NewStack(NewVisitableScreen("/"), NewVisitableScreen("/a"), NewVisitableScreen("/b"))

	if removed := s.PopToRoot(); removed != 2 {
		t.Errorf("PopToRoot() = %d, want 2", removed)
	}
	if got := names(s.Screens()); len(got) != 1 || got[0] != "/" {
		t.Errorf("after PopToRoot: %v", got)
	}
	if removed := s.PopToRoot(); removed != 0 {
		t.Errorf("second PopToRoot() = %d, want 0", removed)
	}

	s.Reset(NewVisitableScreen("/x"))
	if got := names(s.Screens()); len(got) != 1 || got[0] != "/x" {
		t.Errorf("after Reset: %v", got)
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("Clear() should empty the stack")
	}
}
