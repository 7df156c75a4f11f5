// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package dequetest

import (
	"github.com/gammazero/deque"
)

// Model is a reference deque with the same observable behaviour as
// deque.Deque, backed by a ring buffer. Tests drive both with the same
// operations and compare the results.
type Model[T comparable] struct {
	q     *deque.Deque[T]
	bound int
}

// NewModel returns an empty model holding at most bound elements.
func NewModel[T comparable](bound int) *Model[T] {
	return &Model[T]{
		q:     deque.New[T](),
		bound: bound,
	}
}

// Len returns the number of elements held.
func (m *Model[T]) Len() int {
	return m.q.Len()
}

// AddFirst inserts e at the front, reporting false when the model is full.
func (m *Model[T]) AddFirst(e T) bool {
	if m.q.Len() >= m.bound {
		return false
	}
	m.q.PushFront(e)
	return true
}

// AddLast inserts e at the back, reporting false when the model is full.
func (m *Model[T]) AddLast(e T) bool {
	if m.q.Len() >= m.bound {
		return false
	}
	m.q.PushBack(e)
	return true
}

// PollFirst removes the first element.
func (m *Model[T]) PollFirst() (T, bool) {
	if m.q.Len() == 0 {
		var zero T
		return zero, false
	}
	return m.q.PopFront(), true
}

// PollLast removes the last element.
func (m *Model[T]) PollLast() (T, bool) {
	if m.q.Len() == 0 {
		var zero T
		return zero, false
	}
	return m.q.PopBack(), true
}

// RemoveFirstOccurrence removes the first element equal to v.
func (m *Model[T]) RemoveFirstOccurrence(v T) bool {
	i := m.q.Index(func(e T) bool { return e == v })
	if i < 0 {
		return false
	}
	m.q.Remove(i)
	return true
}

// RemoveLastOccurrence removes the last element equal to v.
func (m *Model[T]) RemoveLastOccurrence(v T) bool {
	i := m.q.RIndex(func(e T) bool { return e == v })
	if i < 0 {
		return false
	}
	m.q.Remove(i)
	return true
}

// RemoveAt removes the element at position i counting from the front.
func (m *Model[T]) RemoveAt(i int) T {
	return m.q.Remove(i)
}

// Slice returns the elements from front to back.
func (m *Model[T]) Slice() []T {
	out := make([]T, m.q.Len())
	for i := range out {
		out[i] = m.q.At(i)
	}
	return out
}
