package container

import "iter"

func NewList[T any]() *List[T] {
	return &List[T]{}
}

// List is a singly linked list. The zero value is an empty list.
type List[T any] struct {
	head *node[T]
}

type node[T any] struct {
	value T
	next  *node[T]
}

func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Len walks the whole list.
func (l *List[T]) Len() int {
	size := 0

	for cur := l.head; cur != nil; cur = cur.next {
		size++
	}

	return size
}

func (l *List[T]) Prepend(v T) {
	l.head = &node[T]{
		value: v,
		next:  l.head,
	}
}

func (l *List[T]) Append(v T) {
	if l.head == nil {
		l.Prepend(v)
		return
	}

	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}

	cur.next = &node[T]{
		value: v,
	}
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	return render(l.All())
}
