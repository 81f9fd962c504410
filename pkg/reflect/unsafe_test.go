package reflect

import (
	"testing"

	"github.com/lattice-lang/lattice/internal/value"
)

func TestUnsafeFromValueRefString(t *testing.T) {
	s := value.NewString("hello")

	p, guard, err := UnsafeFromValueRef[[]byte](s)
	if err != nil {
		t.Fatalf("UnsafeFromValueRef: %v", err)
	}
	defer guard.Release()

	if string(*p) != "hello" {
		t.Fatalf("got %q, want %q", string(*p), "hello")
	}
}

func TestUnsafeFromValueRefRejectsBorrowConflict(t *testing.T) {
	s := value.NewString("hello")

	m, err := s.BorrowBytesMut()
	if err != nil {
		t.Fatalf("BorrowBytesMut: %v", err)
	}
	defer m.Release()

	if _, _, err := UnsafeFromValueRef[[]byte](s); err == nil {
		t.Fatalf("expected a borrow conflict while exclusively borrowed")
	}
}

func TestUnsafeFromValueRefUnsupportedType(t *testing.T) {
	if _, _, err := UnsafeFromValueRef[int64](value.Integer(5)); err == nil {
		t.Fatalf("Integer has no backing storage to borrow, expected an error")
	}
}

func TestUnsafeFromValueMutVec(t *testing.T) {
	v := value.NewVec(value.Integer(1), value.Integer(2))

	p, guard, err := UnsafeFromValueMut[[]value.Value](v)
	if err != nil {
		t.Fatalf("UnsafeFromValueMut: %v", err)
	}
	*p = append(*p, value.Integer(3))
	guard.Release()

	elems := v.Elements()
	if len(elems) != 3 {
		t.Fatalf("mutation through the unsafe pointer should be visible: %v", elems)
	}
}
