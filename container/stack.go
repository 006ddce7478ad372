package container

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// NewStack returns a stack holding vals, the last of them on top.
func NewStack[T any](vals ...T) *Stack[T] {
	return &Stack[T]{
		vals: slices.Clone(vals),
	}
}

// Stack is a LIFO container over a growable slice. The zero value is an empty stack.
type Stack[T any] struct {
	vals []T
}

func (s *Stack[T]) Empty() bool {
	return len(s.vals) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.vals)
}

func (s *Stack[T]) Push(v T) {
	s.vals = append(s.vals, v)
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (zero T, _ bool) {
	if s.Empty() {
		return zero, false
	}

	return s.vals[len(s.vals)-1], true
}

// Pop removes and returns the top value. It reports false on an empty stack.
func (s *Stack[T]) Pop() (zero T, _ bool) {
	top, ok := s.Peek()
	if !ok {
		return zero, false
	}

	s.vals[len(s.vals)-1] = zero
	s.vals = s.vals[:len(s.vals)-1]

	return top, true
}

// All yields values from top to bottom. Every range over the returned
// sequence starts again from the current top.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		vals := s.vals

		for i := len(vals) - 1; i >= 0; i-- {
			if !yield(vals[i]) {
				return
			}
		}
	}
}

// View exposes the underlying sequence, bottom first, without a way to mutate it.
// The view is live: it reflects every later Push and Pop.
func (s *Stack[T]) View() View[T] {
	return View[T]{
		s: s,
	}
}

func (s *Stack[T]) String() string {
	return render(slices.Values(s.vals))
}

type View[T any] struct {
	s *Stack[T]
}

func (v View[T]) Len() int {
	return len(v.s.vals)
}

// At returns the i-th value counting from the bottom. It panics when i is out of range,
// like indexing a slice.
func (v View[T]) At(i int) T {
	return v.s.vals[i]
}

func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, val := range v.s.vals {
			if !yield(i, val) {
				return
			}
		}
	}
}

// Slice returns a copy of the current values.
func (v View[T]) Slice() []T {
	return slices.Clone(v.s.vals)
}

func render[T any](seq iter.Seq[T]) string {
	var sb strings.Builder

	sb.WriteByte('[')

	for v := range seq {
		fmt.Fprint(&sb, v)
	}

	sb.WriteByte(']')

	return sb.String()
}
