// Package llstack provides Stack[T], a last-in-first-out container backed by
// a singly linked chain of nodes.
//
// The stack owns its top node and every node owns its successor; no node is
// shared. Size is implicit: it is the number of nodes reachable from the top.
//
// A nil *Stack reads as an empty stack: every method except Push treats it as
// holding no elements.
//
// A Stack is not safe for concurrent use. Callers that share a Stack between
// goroutines must synchronize access themselves.
package llstack

// node is a single link in the chain. next is nil for the bottom node.
type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a linked-list stack of T.
//
// The zero value is a valid, empty Stack.
type Stack[T any] struct {
	head *node[T]
}

// New returns an empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds value to the top of the stack. The previous top becomes the
// successor of the new node.
func (s *Stack[T]) Push(value T) {
	s.head = &node[T]{value: value, next: s.head}
}

// Empty reports whether s holds no elements.
func (s *Stack[T]) Empty() bool {
	return s == nil || s.head == nil
}

// Len returns the number of elements in s. It walks the chain, so it is O(n).
func (s *Stack[T]) Len() int {
	n := 0
	for cur := s.top(); cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Pop removes and returns the element at the top of the stack.
//
// If s is empty, Pop returns the zero value and false and leaves s unchanged.
func (s *Stack[T]) Pop() (T, bool) {
	top := s.top()
	if top == nil {
		var empty T
		return empty, false
	}
	s.head = top.next
	value := top.value
	release(top)
	return value, true
}

// Peek returns the element at the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.Empty() {
		var empty T
		return empty, false
	}
	return s.head.value, true
}

// PeekMut returns a pointer to the element at the top of the stack, allowing
// it to be modified in place.
//
// The pointer is only meaningful until the next Push, Pop or Clear on s.
// Writing through it afterwards does not affect the stack.
func (s *Stack[T]) PeekMut() (*T, bool) {
	if s.Empty() {
		return nil, false
	}
	return &s.head.value, true
}

// Clear removes every element from s, detaching nodes one at a time from the
// top. Long chains are released in a loop, never by recursion.
func (s *Stack[T]) Clear() {
	if s == nil {
		return
	}
	cur := s.head
	s.head = nil
	for cur != nil {
		next := cur.next
		release(cur)
		cur = next
	}
}

// top returns the head node, or nil for an empty or nil stack.
func (s *Stack[T]) top() *node[T] {
	if s == nil {
		return nil
	}
	return s.head
}

// release drops n's references to its value and successor so that a detached
// node never keeps the rest of a chain reachable.
func release[T any](n *node[T]) {
	var empty T
	n.value = empty
	n.next = nil
}
