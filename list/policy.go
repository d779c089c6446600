package list

import "fmt"

// ReleaseHandler defines what happens when a hook is released while still
// part of a list. The handler only changes the failure behavior at release
// time; it never changes the pointer algebra of the ring.
type ReleaseHandler interface {
	HandleLinkedRelease(h *Hook)
}

// AutoUnlink is the default release policy: detach the hook from its ring
// and emit a diagnostic warning. Recovering keeps the remaining list
// internally consistent at the cost of masking the caller's bookkeeping
// bug behind a log line.
type AutoUnlink struct{}

func (AutoUnlink) HandleLinkedRelease(h *Hook) {
	warnf("list: releasing a hook still part of a list, auto-unlinking")
	h.Unlink()
}

// Fail is the strict release policy: a linked hook at end of lifetime is
// treated as a contract violation.
type Fail struct{}

func (Fail) HandleLinkedRelease(h *Hook) {
	panic(fmt.Errorf("list: released a hook still part of a list"))
}

// Ignore leaves the ring untouched. The caller takes over the obligation
// to unlink the hook before its memory is reused; until then the list
// still reaches it.
type Ignore struct{}

func (Ignore) HandleLinkedRelease(h *Hook) {}
