package value

import (
	"sync"
	"sync/atomic"
)

// Shared is the reference-counted, interior-mutable cell backing every
// composite Value case. It enforces the runtime's borrow discipline: any
// number of concurrent shared (read) borrows, or exactly one exclusive
// (write) borrow, never both at once. Unlike sync.RWMutex, a borrow that
// would violate this rule fails fast with a BorrowErr instead of blocking
// the caller — a script that borrows wrongly is a programming error to be
// reported, not a contention condition to be waited out.
type Shared[T any] struct {
	mu        sync.Mutex
	sharedN   int
	exclusive bool
	val       T
}

// NewShared wraps v in a fresh cell with no outstanding borrows.
func NewShared[T any](v T) *Shared[T] {
	return &Shared[T]{val: v}
}

// Ref is a scope-bound shared-borrow guard. It must be released (Release)
// before the enclosing scope that obtained it returns; it is not meant to
// be stored past that point. Use OwnedRef for a borrow that must outlive
// its call frame.
type Ref[T any] struct {
	cell *Shared[T]
}

// Get returns the borrowed value. Valid until Release.
func (r Ref[T]) Get() *T { return &r.cell.val }

// Release ends the shared borrow. A scope-bound guard is released exactly
// once, typically via defer. Release panics only when the cell has no
// shared borrow left to end; a second Release of the same Ref while other
// shared borrows are still held is not detected.
func (r Ref[T]) Release() {
	r.cell.mu.Lock()
	defer r.cell.mu.Unlock()

	if r.cell.sharedN == 0 {
		panic("value: Ref released more times than it was borrowed")
	}
	r.cell.sharedN--
}

// Mut is a scope-bound exclusive-borrow guard. See Ref for the
// scope-bound-vs-owned distinction.
type Mut[T any] struct {
	cell *Shared[T]
}

// Get returns the exclusively borrowed value, mutable through the pointer.
func (m Mut[T]) Get() *T { return &m.cell.val }

// Release ends the exclusive borrow.
func (m Mut[T]) Release() {
	m.cell.mu.Lock()
	defer m.cell.mu.Unlock()

	if !m.cell.exclusive {
		panic("value: Mut released without a held exclusive borrow")
	}
	m.cell.exclusive = false
}

// Borrow attempts a shared borrow, failing with a BorrowErr if the cell is
// currently held exclusively.
func (s *Shared[T]) Borrow() (Ref[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exclusive {
		return Ref[T]{}, NewBorrowErr("already exclusively borrowed")
	}
	s.sharedN++

	return Ref[T]{cell: s}, nil
}

// BorrowMut attempts an exclusive borrow, failing with a BorrowErr if the
// cell is already borrowed in either fashion.
func (s *Shared[T]) BorrowMut() (Mut[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exclusive {
		return Mut[T]{}, NewBorrowErr("already exclusively borrowed")
	}
	if s.sharedN > 0 {
		return Mut[T]{}, NewBorrowErr("already shared-borrowed")
	}
	s.exclusive = true

	return Mut[T]{cell: s}, nil
}

// OwnedRef is a shared-borrow guard that may be stored and passed around
// freely; its release is explicit and idempotent-safe (a double Release is
// a silent no-op rather than a panic), since the caller holding an owned
// guard cannot rely on lexical scoping to bound its lifetime.
type OwnedRef[T any] struct {
	cell     *Shared[T]
	released int32
}

// NewOwnedRef promotes a scope-bound Ref into an owned guard the caller may
// hold past the borrowing call frame. The original Ref must not be
// released separately; ownership of its borrow transfers here.
func NewOwnedRef[T any](r Ref[T]) *OwnedRef[T] {
	return &OwnedRef[T]{cell: r.cell}
}

// Get returns the borrowed value. Valid until Release.
func (o *OwnedRef[T]) Get() *T { return &o.cell.val }

// Release ends the shared borrow. Safe to call more than once.
func (o *OwnedRef[T]) Release() {
	if !atomic.CompareAndSwapInt32(&o.released, 0, 1) {
		return
	}
	o.cell.mu.Lock()
	defer o.cell.mu.Unlock()
	o.cell.sharedN--
}

// OwnedMut is the exclusive-borrow counterpart of OwnedRef.
type OwnedMut[T any] struct {
	cell     *Shared[T]
	released int32
}

// NewOwnedMut promotes a scope-bound Mut into an owned guard.
func NewOwnedMut[T any](m Mut[T]) *OwnedMut[T] {
	return &OwnedMut[T]{cell: m.cell}
}

// Get returns the exclusively borrowed value.
func (o *OwnedMut[T]) Get() *T { return &o.cell.val }

// Release ends the exclusive borrow. Safe to call more than once.
func (o *OwnedMut[T]) Release() {
	if !atomic.CompareAndSwapInt32(&o.released, 0, 1) {
		return
	}
	o.cell.mu.Lock()
	defer o.cell.mu.Unlock()
	o.cell.exclusive = false
}

// Peek reads the cell's value without taking a tracked borrow. It is used
// internally for operations the spec defines as never conflicting with a
// live borrow, such as String() rendering for error messages and debug
// output, where a stale read is acceptable.
func (s *Shared[T]) Peek() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.val
}
