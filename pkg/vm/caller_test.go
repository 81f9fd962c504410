package vm

import (
	"testing"

	"github.com/lattice-lang/lattice/internal/ident"
	"github.com/lattice-lang/lattice/internal/value"
)

func TestCallerEqFallsBackToStructural(t *testing.T) {
	caller := NewCaller(New())

	eq, err := caller.Eq(value.Integer(1), value.Integer(1))
	if err != nil {
		t.Fatalf("Eq: %v", err)
	}
	if !eq {
		t.Fatalf("expected structural equality fallback to report equal integers as equal")
	}
}

func TestCallerEqPrefersRegisteredOverride(t *testing.T) {
	reg := New()
	rtti := &value.Rtti{TypeHash: ident.OfType([]string{"AlwaysEq"}), Name: "AlwaysEq"}

	reg.RegisterInstFn(rtti.TypeHash, ProtocolEq, func(args []value.Value) (value.Value, error) {
		return value.Bool(true), nil
	})

	caller := NewCaller(reg)
	a := value.NewVariantBuilder(rtti).Tuple(value.Integer(1)).Build()
	b := value.NewVariantBuilder(rtti).Tuple(value.Integer(2)).Build()

	eq, err := caller.Eq(a, b)
	if err != nil {
		t.Fatalf("Eq: %v", err)
	}
	if !eq {
		t.Fatalf("registered EQ override returning true should win over structural inequality")
	}
}

func TestCallerGetFallsBackWhenNoOverride(t *testing.T) {
	caller := NewCaller(New())
	called := false

	_, err := caller.Get(value.Integer(1), value.Integer(0), func() (value.Value, error) {
		called = true

		return value.Unit{}, nil
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !called {
		t.Fatalf("expected the fallback to run when no GET override is registered")
	}
}
