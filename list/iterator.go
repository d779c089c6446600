package list

import "fmt"

// Iterator is a bidirectional cursor over the values of a List. It holds a
// direct reference to a link record, not an index, so iterators remain
// valid across insertions and removals of other values; only the iterator
// positioned on a value being unlinked is invalidated.
//
// Iterators are small values meant to be passed and reassigned by value:
//
//	for it := l.Begin(); it != l.End(); it = it.Next() {
//		...
//	}
//
// Two iterators compare equal with == when they refer to the same position
// of the same list.
type Iterator[T any] struct {
	list *List[T]
	node *node
}

// Next returns an iterator positioned on the following value. Advancing
// past the last value yields End.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{list: it.list, node: it.node.next}
}

// Prev returns an iterator positioned on the preceding value. Stepping
// back from End yields the last value of a non-empty list. Stepping back
// from Begin is undefined.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{list: it.list, node: it.node.prev}
}

// Value returns the value at the iterator's position. The value is
// returned by pointer, so mutating it through the iterator is visible to
// every other holder of the value.
//
// The method panics on the End position, which refers to the list's
// sentinel and carries no value.
func (it Iterator[T]) Value() *T {
	if it.node == &it.list.sentinel {
		panic(fmt.Errorf("list: cannot dereference the end position"))
	}
	return it.list.valueOf(it.node)
}
