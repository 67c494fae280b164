package slist

// Node is the intrusive link embedded in a list member. Value holds a
// pointer back to the owning struct (or the struct itself, if small).
type Node[T any] struct {
	next   *Node[T]
	linked bool
	Value  T
}

// Linked reports whether the node is currently a member of a list.
func (n *Node[T]) Linked() bool {
	return n != nil && n.linked
}

// List is a singly linked list of Node[T], in the order nodes were
// linked (PushFront puts new nodes at the head).
type List[T any] struct {
	head *Node[T]
	size int
}

// New creates an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of linked nodes.
func (l *List[T]) Len() int {
	return l.size
}

// Front returns the head node, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// PushFront links n at the head of the list. It is a no-op if n is
// already linked (spec §7 AlreadyStarted-style idempotence is the
// caller's responsibility to check via Linked first if it wants to
// distinguish that case; PushFront itself simply refuses to double-link).
func (l *List[T]) PushFront(n *Node[T]) {
	if n.linked {
		return
	}
	n.next = l.head
	n.linked = true
	l.head = n
	l.size++
}

// Remove unlinks n from the list. It reports whether n was found and
// removed; removing a node that isn't linked, or isn't a member of this
// list, is a safe no-op returning false.
func (l *List[T]) Remove(n *Node[T]) bool {
	if !n.linked {
		return false
	}
	if l.head == n {
		l.head = n.next
		n.next = nil
		n.linked = false
		l.size--
		return true
	}
	for p := l.head; p != nil; p = p.next {
		if p.next == n {
			p.next = n.next
			n.next = nil
			n.linked = false
			l.size--
			return true
		}
	}
	return false
}

// Contains reports whether n is currently linked into this particular
// list (O(n)).
func (l *List[T]) Contains(n *Node[T]) bool {
	for p := l.head; p != nil; p = p.next {
		if p == n {
			return true
		}
	}
	return false
}

// Each calls fn for every linked node, head to tail, stopping early if fn
// returns false. Each takes a snapshot of the traversal order up front so
// fn may safely remove the current node from the list (but must not
// remove other not-yet-visited nodes it doesn't own).
func (l *List[T]) Each(fn func(*Node[T]) bool) {
	nodes := make([]*Node[T], 0, l.size)
	for p := l.head; p != nil; p = p.next {
		nodes = append(nodes, p)
	}
	for _, n := range nodes {
		if !fn(n) {
			return
		}
	}
}

// InsertSorted links n into the list at the position that keeps the list
// ordered according to less (a "should a come before b" predicate),
// removing n first if it was already linked elsewhere in this list. Used
// by ptimer to keep its deadline-ordered list invariant (spec §4.3).
func (l *List[T]) InsertSorted(n *Node[T], less func(a, b *Node[T]) bool) {
	l.Remove(n)

	if l.head == nil || less(n, l.head) {
		n.next = l.head
		n.linked = true
		l.head = n
		l.size++
		return
	}

	p := l.head
	for p.next != nil && !less(n, p.next) {
		p = p.next
	}
	n.next = p.next
	n.linked = true
	p.next = n
	l.size++
}
