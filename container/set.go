package container

import (
	"iter"
	"maps"
)

func NewSet[T comparable](capacity int) *Set[T] {
	return &Set[T]{
		items: make(map[T]struct{}, capacity),
	}
}

// SetOf returns a set holding vals.
func SetOf[T comparable](vals ...T) *Set[T] {
	s := NewSet[T](len(vals))

	for _, v := range vals {
		s.Add(v)
	}

	return s
}

// Set is a membership set. The zero value is an empty set.
type Set[T comparable] struct {
	items map[T]struct{}
}

// All yields members in unspecified order.
func (s *Set[T]) All() iter.Seq[T] {
	return maps.Keys(s.items)
}

func (s *Set[T]) Delete(val T) {
	delete(s.items, val)
}

func (s *Set[T]) Add(val T) {
	if s.items == nil {
		s.items = make(map[T]struct{})
	}

	s.items[val] = struct{}{}
}

func (s *Set[T]) Contains(val T) bool {
	_, ok := s.items[val]

	return ok
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

func (s *Set[T]) Slice() []T {
	ret := make([]T, 0, len(s.items))

	for val := range s.items {
		ret = append(ret, val)
	}

	return ret
}
