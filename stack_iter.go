package llstack

import "iter"

// All returns an iterator over the elements of s, from top to bottom.
//
// The iterator starts from the top of s at the time iteration begins. The
// result of modifying s during iteration is undefined.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := s.top(); cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// AllMut returns an iterator over pointers to the elements of s, from top to
// bottom, so that elements can be modified in place.
//
// As with All, modifying the structure of s during iteration is undefined.
func (s *Stack[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for cur := s.top(); cur != nil; cur = cur.next {
			if !yield(&cur.value) {
				return
			}
		}
	}
}

// Drain returns an iterator that pops each element of s as it is yielded.
//
// If iteration stops early, the elements not yet yielded remain in s.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Values returns the elements of s from top to bottom.
func (s *Stack[T]) Values() []T {
	var vals []T
	for v := range s.All() {
		vals = append(vals, v)
	}
	return vals
}
