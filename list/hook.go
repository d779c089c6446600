package list

import (
	"fmt"
	"unsafe"

	"github.com/golang/glog"
)

// warnf reports the auto-unlink diagnostic. It is a variable so tests can
// observe the warning without capturing process-wide logging output.
var warnf = func(format string, args ...interface{}) {
	glog.WarningDepth(1, fmt.Sprintf(format, args...))
}

// Hook values must be embedded as a struct field in the values inserted in
// a list. The hook carries the link record plus a linked-state flag, and
// is the layer at which the two classic intrusive-list defects are caught:
// linking a value into two lists at once, and destroying a value that a
// list still points to.
//
// Typically, an unnamed field would be used to embed the Hook value, which
// also promotes the Linked and Unlink methods onto the embedding type:
//
//	type Task struct {
//		list.Hook
//		Name string
//	}
//
// A value of a type with an embedded Hook belongs to at most one list at
// a time. The zero value of a Hook is unlinked.
type Hook struct {
	node
	linked bool
}

// hookOf converts a link record back to the Hook that carries it. The
// node is the first field of Hook, so the two share an address.
func hookOf(n *node) *Hook { return (*Hook)(unsafe.Pointer(n)) }

// Linked returns true if the hook is currently part of a list.
func (h *Hook) Linked() bool { return h.linked }

// Unlink removes the hook from the list that currently holds it. No
// reference to that list is needed: the link record already points at its
// own neighbors, so the hook carries enough state to detach itself.
//
// The method panics if the hook is not part of a list.
func (h *Hook) Unlink() {
	if !h.linked {
		panic(fmt.Errorf("list: cannot unlink a hook which is not part of a list"))
	}
	h.node.unlink()
	h.prev = nil
	h.next = nil
	h.linked = false
}

// linkBetween is the checked form of the ring primitive: it refuses to
// link a hook that is already part of a list, then marks the hook linked.
func (h *Hook) linkBetween(prev, next *node) {
	if h.linked {
		panic(fmt.Errorf("list: cannot link a hook which is already part of a list"))
	}
	h.node.linkBetween(prev, next)
	h.linked = true
}

// Release marks the end of the embedding value's lifetime. If the hook is
// still linked at that point the ring would otherwise retain a reference
// to memory the caller is about to reuse, so Release detaches it and emits
// a diagnostic: a noisy but correct recovery is strictly better than a
// corrupted ring. Releasing an unlinked hook is a no-op.
//
// This is the safety net, not the normal way to remove a value from a
// list; code that reaches it has lost track of a linked value.
func (h *Hook) Release() {
	h.ReleaseWith(AutoUnlink{})
}

// ReleaseWith is Release with an explicit destruction-handling policy.
func (h *Hook) ReleaseWith(handler ReleaseHandler) {
	if h.linked {
		handler.HandleLinkedRelease(h)
	}
}
