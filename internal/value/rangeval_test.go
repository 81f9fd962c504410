package value

import "testing"

func collect(it *Iterator, limit int) []int64 {
	var out []int64
	for i := 0; i < limit; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

func TestHalfOpenRangeExcludesEnd(t *testing.T) {
	r := NewHalfOpen(1, 4)
	it, err := r.IntoIterator()
	if err != nil {
		t.Fatalf("IntoIterator: %v", err)
	}

	got := collect(it, 10)
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestClosedRangeIncludesEnd(t *testing.T) {
	r := NewClosed(1, 3)
	it, err := r.IntoIterator()
	if err != nil {
		t.Fatalf("IntoIterator: %v", err)
	}

	got := collect(it, 10)
	if len(got) != 3 || got[2] != 3 {
		t.Fatalf("closed range should include end: %v", got)
	}
}

func TestUnboundedFromIteratesForever(t *testing.T) {
	r := NewUnboundedFrom(10)
	it, err := r.IntoIterator()
	if err != nil {
		t.Fatalf("IntoIterator: %v", err)
	}

	got := collect(it, 5)
	want := []int64{10, 11, 12, 13, 14}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestUnstartedRangeIsNotAnIterator(t *testing.T) {
	r := &Range{start: unbounded, end: boundOf(5)}

	if _, err := r.IntoIterator(); err == nil {
		t.Fatalf("a range with no start bound should not be an iterator")
	}
}

func TestRangeEquality(t *testing.T) {
	a := NewHalfOpen(1, 4)
	b := NewHalfOpen(1, 4)
	c := NewClosed(1, 4)

	if !Eq(a, b) {
		t.Fatalf("identical half-open ranges should compare equal")
	}
	if Eq(a, c) {
		t.Fatalf("half-open and closed ranges with the same bounds should differ")
	}
}
