// Package stack provides a slice backed LIFO container.
package stack

import "errors"

// ErrEmpty is returned when reading from or popping an empty stack.
var ErrEmpty = errors.New("stack is empty")

// Stack is a LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	lastIndex := len(s.items) - 1
	popped := s.items[lastIndex]
	s.items[lastIndex] = zero
	s.items = s.items[:lastIndex]
	return popped, nil
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the elements ordered bottom to top.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
