package reflect

import (
	"testing"

	"github.com/lattice-lang/lattice/internal/value"
)

func TestArgs0(t *testing.T) {
	a := Args0{}
	vals, err := a.IntoVec()
	if err != nil || len(vals) != 0 || a.Count() != 0 {
		t.Fatalf("Args0 should pack zero values, got %v err %v", vals, err)
	}
}

func TestArgs2(t *testing.T) {
	a := Args2[int64, string]{A0: 1, A1: "x"}

	if a.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", a.Count())
	}

	vals, err := a.IntoVec()
	if err != nil {
		t.Fatalf("IntoVec: %v", err)
	}
	if len(vals) != 2 {
		t.Fatalf("got %d values, want 2", len(vals))
	}
	if vals[0].(value.Integer) != 1 {
		t.Fatalf("vals[0] = %v, want Integer(1)", vals[0])
	}
}

func TestArgs4(t *testing.T) {
	a := Args4[int64, int64, int64, int64]{A0: 1, A1: 2, A2: 3, A3: 4}

	vals, err := a.IntoVec()
	if err != nil {
		t.Fatalf("IntoVec: %v", err)
	}
	if len(vals) != 4 {
		t.Fatalf("got %d values, want 4", len(vals))
	}
}

func TestArgsNFallback(t *testing.T) {
	a := ArgsN{Vals: []any{int64(1), "two", true}}

	if a.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", a.Count())
	}

	vals, err := a.IntoVec()
	if err != nil {
		t.Fatalf("IntoVec: %v", err)
	}
	if len(vals) != 3 {
		t.Fatalf("got %d values, want 3", len(vals))
	}
}

func TestArgsIntoStack(t *testing.T) {
	a := Args2[int64, string]{A0: 1, A1: "x"}

	stack := NewStack()
	if err := a.IntoStack(stack); err != nil {
		t.Fatalf("IntoStack: %v", err)
	}
	if stack.Len() != 2 {
		t.Fatalf("stack.Len() = %d, want 2", stack.Len())
	}
	if stack.Values()[0].(value.Integer) != 1 {
		t.Fatalf("stack[0] = %v, want Integer(1)", stack.Values()[0])
	}

	stack.Reset()
	if stack.Len() != 0 {
		t.Fatalf("stack.Len() after Reset = %d, want 0", stack.Len())
	}
}

func TestArgsNFallbackPropagatesConversionError(t *testing.T) {
	a := ArgsN{Vals: []any{struct{ X int }{X: 1}}}

	if _, err := a.IntoVec(); err == nil {
		t.Fatalf("expected a conversion error for an unregistered host type")
	}
}
