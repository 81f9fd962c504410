package reflect

import (
	"fmt"
	"unsafe"

	"github.com/lattice-lang/lattice/internal/value"
)

// Guard releases the borrow an UnsafeFromValue* call took out. Callers
// must call Release exactly once and must not dereference the returned
// pointer afterward.
type Guard interface {
	Release()
}

// UnsafeFromValueRef borrows v's backing storage directly, without the
// owning copy FromValue performs, returning a pointer straight at the
// Shared cell's data plus a Guard that ends the borrow. This mirrors
// Voskan-arena-cache's UnsafePointer[T] escape hatch: intended for hot
// paths willing to trade the safety of FromValue's copy for zero
// allocation, never for storage past the Guard's Release.
func UnsafeFromValueRef[T any](v value.Value) (*T, Guard, error) {
	switch tv := v.(type) {
	case *value.String:
		g, err := tv.BorrowBytes()
		if err != nil {
			return nil, nil, err
		}

		return castRef[T](g)
	case *value.Bytes:
		g, err := tv.BorrowBytes()
		if err != nil {
			return nil, nil, err
		}

		return castRef[T](g)
	case *value.Vec:
		g, err := tv.BorrowElements()
		if err != nil {
			return nil, nil, err
		}

		return castRef[T](g)
	default:
		return nil, nil, fmt.Errorf("reflect: UnsafeFromValueRef: %T has no borrowable backing storage", v)
	}
}

// UnsafeFromValueMut is UnsafeFromValueRef's exclusive-borrow counterpart.
func UnsafeFromValueMut[T any](v value.Value) (*T, Guard, error) {
	switch tv := v.(type) {
	case *value.String:
		g, err := tv.BorrowBytesMut()
		if err != nil {
			return nil, nil, err
		}

		return castMut[T](g)
	case *value.Bytes:
		g, err := tv.BorrowBytesMut()
		if err != nil {
			return nil, nil, err
		}

		return castMut[T](g)
	case *value.Vec:
		g, err := tv.BorrowElementsMut()
		if err != nil {
			return nil, nil, err
		}

		return castMut[T](g)
	default:
		return nil, nil, fmt.Errorf("reflect: UnsafeFromValueMut: %T has no borrowable backing storage", v)
	}
}

// refGuard adapts value.Ref[U] to the Guard interface without leaking the
// generic parameter U into the Guard type itself.
type refGuard[U any] struct{ g value.Ref[U] }

func (r refGuard[U]) Release() { r.g.Release() }

type mutGuard[U any] struct{ g value.Mut[U] }

func (m mutGuard[U]) Release() { m.g.Release() }

// castRef reinterprets the borrowed *U as *T via unsafe.Pointer. U and T
// must have identical memory layout — this is exactly as unsafe as it
// sounds, and exists only so a caller that already knows the concrete
// backing representation of a String/Bytes/Vec can avoid FromValue's copy.
func castRef[T, U any](g value.Ref[U]) (*T, Guard, error) {
	return (*T)(unsafe.Pointer(g.Get())), refGuard[U]{g}, nil
}

func castMut[T, U any](g value.Mut[U]) (*T, Guard, error) {
	return (*T)(unsafe.Pointer(g.Get())), mutGuard[U]{g}, nil
}
