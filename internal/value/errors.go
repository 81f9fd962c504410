package value

import (
	"fmt"

	"github.com/pkg/errors"
)

// ExpectedType is returned when a FromValue or UnsafeFromValue conversion
// sees a Value whose tag doesn't match the requested host type.
type ExpectedType struct {
	Want string
	Got  Type
}

func (e *ExpectedType) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

// BorrowErr is returned when a borrow of a Shared cell would violate the
// exclusivity rule (any number of concurrent immutable borrows, or exactly
// one mutable borrow, never both). It is always recoverable: the host can
// catch and retry once the offending borrow is released.
type BorrowErr struct {
	Reason string
}

func (e *BorrowErr) Error() string {
	return "borrow error: " + e.Reason
}

// Panic represents an unrecoverable invariant breach inside the runtime
// (a variant payload/shape mismatch, an unsupported Range iteration, rtti
// corruption). It unwinds the current call frame and propagates to the
// host as VmError, never as a native Go panic.
type Panic struct {
	Reason string
}

func (e *Panic) Error() string {
	return "panic: " + e.Reason
}

// VmError is the aggregate wrapper returned from every host-visible
// entrypoint. It always wraps exactly one of ExpectedType, BorrowErr, or
// Panic, and implements Unwrap so the standard library's errors.As/errors.Is
// work without requiring callers to depend on github.com/pkg/errors.
type VmError struct {
	cause error
}

// NewVmError wraps a core error kind (ExpectedType, BorrowErr, Panic) as a
// VmError, attaching a stack trace via pkg/errors so host-side logs can
// show where the failure originated.
func NewVmError(kind error) *VmError {
	return &VmError{cause: errors.WithStack(kind)}
}

func (e *VmError) Error() string {
	return e.cause.Error()
}

func (e *VmError) Unwrap() error {
	return e.cause
}

// NewExpectedType is a convenience constructor wrapping ExpectedType in a
// VmError, the shape every FromValue implementation returns on mismatch.
func NewExpectedType(want string, got Type) *VmError {
	return NewVmError(&ExpectedType{Want: want, Got: got})
}

// NewBorrowErr is a convenience constructor wrapping BorrowErr in a VmError.
func NewBorrowErr(reason string) *VmError {
	return NewVmError(&BorrowErr{Reason: reason})
}

// NewPanic is a convenience constructor wrapping Panic in a VmError.
func NewPanic(reason string) *VmError {
	return NewVmError(&Panic{Reason: reason})
}
