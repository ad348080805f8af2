package types

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set for comparable types.
//
// It is backed by a map[T]struct{} and is mutable: Add and Delete modify the
// set in place. Iteration order is not defined; use Sorted when a stable
// order is required (e.g. when the set is written to disk).
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set and inserts the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether v is a member of the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// ToIter returns an iterator over all elements in the set.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns a slice containing all elements in the set, in no
// particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

// Sorted returns the elements of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(s.ToIter())
}

// Unique returns the elements of values with duplicates removed, keeping the
// first occurrence of each element in its original position.
func Unique[T comparable](values []T) []T {
	var (
		seen = make(Set[T], len(values))
		out  = make([]T, 0, len(values))
	)

	for _, v := range values {
		if seen.Has(v) {
			continue
		}

		seen.Add(v)
		out = append(out, v)
	}

	return out
}
