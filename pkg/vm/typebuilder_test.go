package vm

import (
	"testing"

	"github.com/lattice-lang/lattice/internal/ident"
	"github.com/lattice-lang/lattice/internal/value"
)

func TestRegisterTypeInstallsFieldAndInstFn(t *testing.T) {
	e := New()

	typeHash := e.RegisterType("Point", func(b *TypeBuilder) {
		b.FieldFn(ProtocolGet, "x", func(args []value.Value) (value.Value, error) {
			return value.Integer(1), nil
		})
		b.FieldFn(ProtocolGet, "y", func(args []value.Value) (value.Value, error) {
			return value.Integer(2), nil
		})
		b.InstFn(ident.Of("len"), func(args []value.Value) (value.Value, error) {
			return value.Integer(3), nil
		})
	})

	if typeHash != ident.OfType([]string{"Point"}) {
		t.Fatalf("RegisterType returned an unexpected type hash")
	}

	got, err := e.CallInstFn(typeHash, ProtocolGet, []value.Value{nil, value.Intern("x")})
	if err != nil {
		t.Fatalf("get x: %v", err)
	}
	if got.(value.Integer) != 1 {
		t.Fatalf("x = %v, want Integer(1)", got)
	}

	got, err = e.CallInstFn(typeHash, ProtocolGet, []value.Value{nil, value.Intern("y")})
	if err != nil {
		t.Fatalf("get y: %v", err)
	}
	if got.(value.Integer) != 2 {
		t.Fatalf("y = %v, want Integer(2)", got)
	}

	if _, err := e.CallInstFn(typeHash, ProtocolGet, []value.Value{nil, value.Intern("z")}); err == nil {
		t.Fatalf("expected an error getting an unregistered field")
	}

	got, err = e.CallInstFn(typeHash, ident.Of("len"), nil)
	if err != nil {
		t.Fatalf("len: %v", err)
	}
	if got.(value.Integer) != 3 {
		t.Fatalf("len() = %v, want Integer(3)", got)
	}
}

func TestRegisterBuiltinTypesWiresRangeThroughTheRegistry(t *testing.T) {
	e := New()
	RegisterBuiltinTypes(e)

	r := value.NewHalfOpen(1, 4)

	start, err := e.CallInstFn(RangeTypeHash, ProtocolGet, []value.Value{r, value.Intern("start")})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if start.(value.Integer) != 1 {
		t.Fatalf("start = %v, want Integer(1)", start)
	}

	end, err := e.CallInstFn(RangeTypeHash, ProtocolGet, []value.Value{r, value.Intern("end")})
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if end.(value.Integer) != 4 {
		t.Fatalf("end = %v, want Integer(4)", end)
	}

	itVal, err := e.CallInstFn(RangeTypeHash, ProtocolIntoIter, []value.Value{r})
	if err != nil {
		t.Fatalf("INTO_ITER: %v", err)
	}

	var got []int64
	for {
		next, err := e.CallInstFn(IteratorTypeHash, ProtocolNext, []value.Value{itVal})
		if err != nil {
			t.Fatalf("NEXT: %v", err)
		}
		opt, ok := next.(*value.Option)
		if !ok {
			t.Fatalf("NEXT returned %T, want *value.Option", next)
		}
		if !opt.IsSome() {
			break
		}
		n, err := opt.Unwrap()
		if err != nil {
			t.Fatalf("Unwrap: %v", err)
		}
		got = append(got, int64(n.(value.Integer)))
	}

	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
}
