package llstack

import (
	"fmt"
	"strings"
)

// String returns the elements of s joined by "->", starting at the head, e.g.
// "head->3->2->1.". An empty stack is "head.".
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteString("head")
	for v := range s.All() {
		fmt.Fprintf(&b, "->%v", v)
	}
	b.WriteByte('.')
	return b.String()
}

// Clone returns a copy of s with its own chain of nodes. Elements are copied
// by assignment.
func (s *Stack[T]) Clone() *Stack[T] {
	c := New[T]()
	// Append at the tail so the copy keeps the original order.
	tail := &c.head
	for cur := s.top(); cur != nil; cur = cur.next {
		*tail = &node[T]{value: cur.value}
		tail = &(*tail).next
	}
	return c
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Stack[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *Stack[T], b *Stack[U], eq func(T, U) bool) bool {
	x, y := a.top(), b.top()
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return x == nil && y == nil
}
