package router

// Stack is an ordered sequence of screens, most recent last.
// The controller owns its stacks; callers only ever see copies.
type Stack struct {
	screens []Screen
}

// NewStack creates a stack holding screens in order.
func NewStack(screens ...Screen) *Stack {
	s := &Stack{screens: make([]Screen, 0, len(screens))}
	s.screens = append(s.screens, screens...)
	return s
}

// Push adds a screen on top.
func (s *Stack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes and returns the top screen.
// Returns nil if the stack is empty.
func (s *Stack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Top returns the top screen without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Previous returns the screen directly below the top.
// Returns nil if the stack has fewer than two screens.
func (s *Stack) Previous() Screen {
	if len(s.screens) < 2 {
		return nil
	}
	return s.screens[len(s.screens)-2]
}

// ReplaceTop swaps the top screen for screen.
// Replacing the top of an empty stack is a programming error.
func (s *Stack) ReplaceTop(screen Screen) {
	if len(s.screens) == 0 {
		panic("router: ReplaceTop on empty stack")
	}
	s.screens[len(s.screens)-1] = screen
}

// PopToRoot removes everything above the first screen and reports how many
// screens were removed.
func (s *Stack) PopToRoot() int {
	if len(s.screens) <= 1 {
		return 0
	}
	removed := len(s.screens) - 1
	clear(s.screens[1:])
	s.screens = s.screens[:1]
	return removed
}

// Reset replaces the whole stack with screens.
func (s *Stack) Reset(screens ...Screen) {
	s.Clear()
	s.screens = append(s.screens, screens...)
}

// IsEmpty returns true if the stack has no screens.
func (s *Stack) IsEmpty() bool {
	return len(s.screens) == 0
}

// Len returns the number of screens in the stack.
func (s *Stack) Len() int {
	return len(s.screens)
}

// Clear removes all screens from the stack.
func (s *Stack) Clear() {
	clear(s.screens)
	s.screens = s.screens[:0]
}

// Screens returns a copy of the stack, bottom first.
func (s *Stack) Screens() []Screen {
	out := make([]Screen, len(s.screens))
	copy(out, s.screens)
	return out
}
