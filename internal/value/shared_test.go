package value

import "testing"

func TestSharedAllowsMultipleRefs(t *testing.T) {
	cell := NewShared(42)

	r1, err := cell.Borrow()
	if err != nil {
		t.Fatalf("first Borrow: %v", err)
	}
	r2, err := cell.Borrow()
	if err != nil {
		t.Fatalf("second concurrent Borrow: %v", err)
	}

	if *r1.Get() != 42 || *r2.Get() != 42 {
		t.Fatalf("unexpected borrowed values: %d %d", *r1.Get(), *r2.Get())
	}

	r1.Release()
	r2.Release()
}

func TestSharedRejectsMutWhileBorrowed(t *testing.T) {
	cell := NewShared(1)

	r, err := cell.Borrow()
	if err != nil {
		t.Fatalf("Borrow: %v", err)
	}
	defer r.Release()

	if _, err := cell.BorrowMut(); err == nil {
		t.Fatalf("BorrowMut should fail while a shared borrow is outstanding")
	}
}

func TestSharedRejectsRefWhileMutBorrowed(t *testing.T) {
	cell := NewShared(1)

	m, err := cell.BorrowMut()
	if err != nil {
		t.Fatalf("BorrowMut: %v", err)
	}
	defer m.Release()

	if _, err := cell.Borrow(); err == nil {
		t.Fatalf("Borrow should fail while an exclusive borrow is outstanding")
	}
	if _, err := cell.BorrowMut(); err == nil {
		t.Fatalf("BorrowMut should fail while another exclusive borrow is outstanding")
	}
}

func TestSharedMutMutatesInPlace(t *testing.T) {
	cell := NewShared([]int{1, 2, 3})

	m, err := cell.BorrowMut()
	if err != nil {
		t.Fatalf("BorrowMut: %v", err)
	}
	*m.Get() = append(*m.Get(), 4)
	m.Release()

	got := cell.Peek()
	if len(got) != 4 || got[3] != 4 {
		t.Fatalf("mutation not visible after release: %v", got)
	}
}

func TestOwnedRefReleaseIsIdempotent(t *testing.T) {
	cell := NewShared(7)

	r, err := cell.Borrow()
	if err != nil {
		t.Fatalf("Borrow: %v", err)
	}
	owned := NewOwnedRef(r)

	owned.Release()
	owned.Release() // must not panic or double-decrement

	if _, err := cell.BorrowMut(); err != nil {
		t.Fatalf("BorrowMut should succeed once the owned ref is released: %v", err)
	}
}

func TestOwnedMutReleaseIsIdempotent(t *testing.T) {
	cell := NewShared(7)

	m, err := cell.BorrowMut()
	if err != nil {
		t.Fatalf("BorrowMut: %v", err)
	}
	owned := NewOwnedMut(m)

	owned.Release()
	owned.Release()

	if _, err := cell.BorrowMut(); err != nil {
		t.Fatalf("BorrowMut should succeed once the owned mut is released: %v", err)
	}
}
