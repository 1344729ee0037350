package list

// Node is a list node.
type Node[T any] struct {
	next, prev *Node[T]
	Value      T
}

// Next returns the next node or nil if n is the last node in its list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the previous node or nil if n is the first node in its list.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// linkAfter inserts s after this node.
func (n *Node[T]) linkAfter(s *Node[T]) {
	s.prev = n
	s.next = n.next
	if n.next != nil {
		n.next.prev = s
	}
	n.next = s
}

// linkBefore inserts s before this node.
func (n *Node[T]) linkBefore(s *Node[T]) {
	s.next = n
	s.prev = n.prev
	if n.prev != nil {
		n.prev.next = s
	}
	n.prev = s
}

// unlink detaches this node from its neighbours.
func (n *Node[T]) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
}
