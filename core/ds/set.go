// Package ds provides small generic data structures.
package ds

import "fmt"

// Set is a set that remembers insertion order, so iteration is
// deterministic. It is not safe for concurrent use.
type Set[T comparable] struct {
	items map[T]struct{}
	order []T
}

// NewSet returns a set holding items.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(items))}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

func (s *Set[T]) String() string { return fmt.Sprintf("%v", s.order) }

// Add adds v. No-op if already present. It reports whether v was added.
func (s *Set[T]) Add(v T) bool {
	if s.Contains(v) {
		return false
	}
	s.items[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Remove removes the given values. O(n) in the set size.
func (s *Set[T]) Remove(vs ...T) {
	removed := 0
	for _, v := range vs {
		if s.Contains(v) {
			delete(s.items, v)
			removed++
		}
	}
	if removed == 0 {
		return
	}

	order := make([]T, 0, len(s.order)-removed)
	for _, v := range s.order {
		if s.Contains(v) {
			order = append(order, v)
		}
	}
	s.order = order
}

func (s *Set[T]) Contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

func (s *Set[T]) Len() int      { return len(s.items) }
func (s *Set[T]) IsEmpty() bool { return len(s.items) == 0 }

// Values returns a copy of the elements in insertion order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
