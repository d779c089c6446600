package list

// node is the raw doubly-linked ring record beneath Hook and List.
//
// A node is either self-referential (the sentinel of an empty list, or a
// detached record) or part of exactly one circular ring in which
// prev.next == self and next.prev == self hold for every member, the
// sentinel included. The methods below are pure pointer algebra: no state
// flags, no checks, no failure modes. Safety semantics live one layer up,
// in Hook.
type node struct{ prev, next *node }

// linkBetween splices n between prev and next. The caller guarantees that
// prev.next == next at the time of the call.
func (n *node) linkBetween(prev, next *node) {
	n.prev = prev
	n.next = next
	prev.next = n
	next.prev = n
}

// unlink closes the ring around n. The caller guarantees that n is
// currently part of a ring.
func (n *node) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// transferRange detaches the run [first, last) from its current ring and
// reinserts it, in the same relative order, immediately before pos.
//
// This is the single primitive beneath every splice and extract operation.
// It runs in constant time regardless of the run length because the run's
// internal links are never touched: the source ring is closed around the
// run, then the run's head and tail are re-targeted at their new
// neighbors.
func transferRange(pos, first, last *node) {
	if first == last {
		return
	}
	tail := last.prev

	// Close the gap in the source ring.
	first.prev.next = last
	last.prev = first.prev

	// Re-target the run at its new neighbors.
	first.prev = pos.prev
	tail.next = pos
	first.prev.next = first
	pos.prev = tail
}
