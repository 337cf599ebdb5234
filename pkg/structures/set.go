// Package structures provides a few generic data structures.
package structures

import (
	"cmp"
	"maps"
	"slices"
)

type Set[Elem comparable] map[Elem]struct{}

// NewSet makes a set containing the provided elements.
func NewSet[Elem comparable](elems ...Elem) Set[Elem] {
	s := make(Set[Elem], len(elems))
	for _, elem := range elems {
		s.Add(elem)
	}
	return s
}

// Add adds the element to the set. If the element was already in the set, nothing changes.
func (s Set[Elem]) Add(e Elem) {
	s[e] = struct{}{}
}

// Has checks whether the element is already in the set.
func (s Set[Elem]) Has(e Elem) bool {
	_, ok := s[e]
	return ok
}

// Any checks whether any element of the set satisfies the predicate.
func (s Set[Elem]) Any(pred func(Elem) bool) bool {
	for e := range s {
		if pred(e) {
			return true
		}
	}
	return false
}

// Sorted returns the elements of a set in ascending order.
func Sorted[Elem cmp.Ordered](s Set[Elem]) []Elem {
	return slices.Sorted(maps.Keys(s))
}
