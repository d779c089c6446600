// Package list contains the implementation of a type-safe, intrusive,
// doubly-linked list.
//
// The standard library provides an implementation of a non-intrusive
// doubly-linked list in the container/list package. Non-intrusive means that
// the list tracks values via an intermediary object, which carries a reference
// to the actual values. This double indirection level often impacts usability
// of the code, and requires programs to maintain more (often circular)
// references, which are error prone and make the code harder to read.
// The indirections also increase the number of objects allocated on the heap,
// and the chances of CPU cache misses by requiring more pointer lookups to
// access the data.
//
// The linked list implementation in this package adopts a different approach
// to enable programs to use lists without the hassle of managing an
// indirection layer. Values inserted in the list must be struct types which
// contain a field of type Hook, that the list uses to link the values together
// without requiring an extra object. Pushing and popping values never
// allocates: every operation only rewires the pointers already embedded in
// the values.
//
// The list is terminated by a sentinel: a link record owned by the List that
// closes the ring, so that emptiness checks and walks off either end need no
// nil-pointer special cases. The End position of every list is its sentinel.
//
// To use the list, a program must first declare the type of values it will
// push in:
//
//	type Task struct {
//		list.Hook
//		Name string
//	}
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list, then the program can start inserting values.
//
//	l := list.List[Task]{}
//	l.PushBack(&Task{Name: "A"})
//	l.PushBack(&Task{Name: "B"})
//
//	for it := l.Begin(); it != l.End(); it = it.Next() {
//		t := it.Value()
//		...
//	}
//
// The list never owns the values linked into it; it observes and rewires
// their hooks. A value belongs to at most one list at a time, and a linked
// value must be unlinked before its memory is reused (see Hook.Release).
//
// Lists are not safe to use concurrently from multiple goroutines: a list
// and every value currently linked into it form one logical unit which the
// application must synchronize as a whole.
package list

import (
	"fmt"
	"reflect"
	"unsafe"
)

// List values are containers of values which support insertion and removal
// at the front and back, removal at any position, and constant-time transfer
// of element runs between lists.
//
// The values linked into the list must be passed as pointers to struct
// values of a type that contains a Hook field. The list links the values in
// place and never allocates, copies, or destroys them.
//
// The zero-value is a valid and empty list. A List must not be copied after
// first use.
type List[T any] struct {
	typ      _type
	sentinel node
}

func (l *List[T]) lazyInit() {
	if l.sentinel.next == nil {
		l.sentinel.prev = &l.sentinel
		l.sentinel.next = &l.sentinel
	}
	if !l.typ.known() {
		l.typ = typeOf(reflect.TypeOf((*T)(nil)).Elem())
	}
}

func (l *List[T]) hookFor(elem *T) *Hook {
	l.lazyInit()
	return hookOf(l.typ.nodeOf(unsafe.Pointer(elem)))
}

func (l *List[T]) valueOf(n *node) *T {
	return (*T)(l.typ.valueOf(n))
}

// Empty returns true if the list contains no values.
func (l *List[T]) Empty() bool {
	return l.sentinel.next == nil || l.sentinel.next == &l.sentinel
}

// Len returns the number of values in the list.
//
// The count is not cached, it is recomputed by walking the list, so Len runs
// in linear time. Caching it would force every splice and extract to thread
// a count update across two lists, which would couple operations that are
// otherwise pure pointer rewrites.
func (l *List[T]) Len() int {
	n := 0
	for it := l.Begin(); it != l.End(); it = it.Next() {
		n++
	}
	return n
}

// Begin returns an iterator positioned on the first value of the list.
// On an empty list, Begin equals End.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{list: l, node: l.sentinel.next}
}

// End returns the past-the-end iterator: the position of the sentinel.
// End never changes for a given list and is never invalidated.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{list: l, node: &l.sentinel}
}

// Front returns the first value of the list.
//
// The method panics if the list is empty.
func (l *List[T]) Front() *T {
	if l.Empty() {
		panic(fmt.Errorf("list: Front called on an empty list"))
	}
	return l.valueOf(l.sentinel.next)
}

// Back returns the last value of the list.
//
// The method panics if the list is empty.
func (l *List[T]) Back() *T {
	if l.Empty() {
		panic(fmt.Errorf("list: Back called on an empty list"))
	}
	return l.valueOf(l.sentinel.prev)
}

// PushBack links elem at the back of the list.
//
// The method panics if elem is already part of a list.
func (l *List[T]) PushBack(elem *T) {
	l.hookFor(elem).linkBetween(l.sentinel.prev, &l.sentinel)
}

// PushFront links elem at the front of the list.
//
// The method panics if elem is already part of a list.
func (l *List[T]) PushFront(elem *T) {
	l.hookFor(elem).linkBetween(&l.sentinel, l.sentinel.next)
}

// Insert links elem immediately before pos and returns an iterator
// positioned on elem. Inserting before End is equivalent to PushBack.
//
// The method panics if elem is already part of a list.
func (l *List[T]) Insert(pos Iterator[T], elem *T) Iterator[T] {
	h := l.hookFor(elem)
	h.linkBetween(pos.node.prev, pos.node)
	return Iterator[T]{list: l, node: &h.node}
}

// PopFront unlinks the first value of the list. The value itself is left
// untouched.
//
// The method panics if the list is empty.
func (l *List[T]) PopFront() {
	if l.Empty() {
		panic(fmt.Errorf("list: PopFront called on an empty list"))
	}
	hookOf(l.sentinel.next).Unlink()
}

// PopBack unlinks the last value of the list. The value itself is left
// untouched.
//
// The method panics if the list is empty.
func (l *List[T]) PopBack() {
	if l.Empty() {
		panic(fmt.Errorf("list: PopBack called on an empty list"))
	}
	hookOf(l.sentinel.prev).Unlink()
}

// TryPopFront unlinks and returns the first value of the list, or returns
// nil if the list was empty.
func (l *List[T]) TryPopFront() *T {
	if l.Empty() {
		return nil
	}
	elem := l.Front()
	l.PopFront()
	return elem
}

// TryPopBack unlinks and returns the last value of the list, or returns
// nil if the list was empty.
func (l *List[T]) TryPopBack() *T {
	if l.Empty() {
		return nil
	}
	elem := l.Back()
	l.PopBack()
	return elem
}

// Erase unlinks the value at pos and returns an iterator positioned on the
// value that followed it (End if the erased value was last). Only the
// iterator on the erased value is invalidated, which makes erasing while
// iterating safe as long as the loop continues from the returned iterator.
//
// The method panics if pos is the End position.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	if pos.node == &l.sentinel {
		panic(fmt.Errorf("list: cannot erase the end position"))
	}
	next := pos.node.next
	hookOf(pos.node).Unlink()
	return Iterator[T]{list: l, node: next}
}

// EraseRange unlinks every value in [first, last) in forward order and
// returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for it := first; it.node != last.node; {
		it = l.Erase(it)
	}
	return Iterator[T]{list: l, node: last.node}
}

// Clear unlinks every value of the list, leaving it empty. The values
// themselves are left untouched; ownership stays with the caller.
func (l *List[T]) Clear() {
	for !l.Empty() {
		l.PopFront()
	}
}

// Splice moves every value of other, in order, to just before pos in this
// list, leaving other empty. The operation runs in constant time.
//
// Splicing from an empty list is a no-op. Splicing a list into itself is
// rejected as a no-op as well, since it would corrupt the ring.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	if other == l || other.Empty() {
		return
	}
	l.SpliceRange(pos, other, other.Begin(), other.End())
}

// SpliceCell moves the single value at element from other to just before
// pos in this list. The operation is a no-op if element is other's End
// position.
func (l *List[T]) SpliceCell(pos Iterator[T], other *List[T], element Iterator[T]) {
	if element.node == &other.sentinel {
		return
	}
	l.SpliceRange(pos, other, element, element.Next())
}

// SpliceRange moves the run [first, last) from other to just before pos in
// this list, preserving the relative order of the moved values. The
// operation runs in constant time regardless of the length of the run,
// because the run's internal links are never touched. Every other splice
// and extract operation is expressed in terms of this one.
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	l.lazyInit()
	other.lazyInit()
	transferRange(pos.node, first.node, last.node)
}

// ExtractFront moves up to max leading values, in order, out of this list
// and onto the back of dst, returning the number of values moved. It moves
// fewer than max only when the list runs out of values first.
//
// Locating the split point costs a forward walk of at most max steps; the
// transfer itself is a single constant-time splice.
func (l *List[T]) ExtractFront(dst *List[T], max int) int {
	l.lazyInit()
	dst.lazyInit()

	count := 0
	split := l.Begin()

	for split != l.End() && count < max {
		split = split.Next()
		count++
	}

	if count > 0 {
		dst.SpliceRange(dst.End(), l, l.Begin(), split)
	}

	return count
}

// Remove unlinks h from whichever list currently holds it, or does nothing
// if h is not linked. No reference to the holding list is required: the
// hook's link record already points at its own neighbors.
//
// This is what lets a value remove itself, through its embedded hook:
//
//	list.Remove(&task.Hook)
func Remove(h *Hook) {
	if h.Linked() {
		h.Unlink()
	}
}
