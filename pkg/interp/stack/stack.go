package stack

import "ayna/pkg/frame"

type Stack struct {
	a []*frame.Frame
	l int
}

// NewStack creates a new frame stack instance
func NewStack(elm ...*frame.Frame) *Stack {
	stack := Stack{
		a: make([]*frame.Frame, 0),
		l: 0,
	}

	for _, e := range elm {
		stack.l++
		stack.a = append(stack.a, e)
	}

	return &stack
}

// Push adds a frame to the top of the stack
func (s *Stack) Push(elm *frame.Frame) {
	s.l++
	s.a = append(s.a, elm)
}

// Pop removes and returns the top frame of the stack
func (s *Stack) Pop() *frame.Frame {
	if s.l < 1 {
		return nil
	}

	s.l--
	elm := s.a[s.l]
	s.a = s.a[:s.l]

	return elm
}

// Peek returns the top frame of the stack without removing it
func (s *Stack) Peek() *frame.Frame {
	if s.l < 1 {
		return nil
	}

	return s.a[s.l-1]
}

// Get the size of the stack
func (s *Stack) Size() int {
	return s.l
}

// Frames returns the underlying slice of the stack
func (s Stack) Frames() []*frame.Frame {
	return s.a
}
