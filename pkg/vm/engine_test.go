package vm

import (
	"testing"

	"github.com/lattice-lang/lattice/internal/ident"
	"github.com/lattice-lang/lattice/internal/value"
	"github.com/lattice-lang/lattice/pkg/reflect"
)

func TestEngineCallInstFnDispatchesRegisteredFn(t *testing.T) {
	e := New()
	typeHash := ident.OfType([]string{"Point"})
	nameHash := ident.Of("len")

	e.RegisterInstFn(typeHash, nameHash, func(args []value.Value) (value.Value, error) {
		return value.Integer(99), nil
	})

	got, err := e.CallInstFn(typeHash, nameHash, nil)
	if err != nil {
		t.Fatalf("CallInstFn: %v", err)
	}
	if got.(value.Integer) != 99 {
		t.Fatalf("got %v, want Integer(99)", got)
	}
}

func TestEngineCallInstFnUnregisteredIsPanic(t *testing.T) {
	e := New()

	_, err := e.CallInstFn(ident.OfType([]string{"X"}), ident.Of("y"), nil)
	if err == nil {
		t.Fatalf("expected an error calling an unregistered instance function")
	}
}

func TestEngineLookupInstFnPopulatesCache(t *testing.T) {
	e := New()
	typeHash := ident.OfType([]string{"Point"})
	nameHash := ident.Of("len")

	e.RegisterInstFn(typeHash, nameHash, func(args []value.Value) (value.Value, error) {
		return value.Unit{}, nil
	})

	if _, ok := e.LookupInstFn(typeHash, nameHash); !ok {
		t.Fatalf("LookupInstFn should find the registered fn")
	}
	if _, ok := e.LookupInstFn(typeHash, nameHash); !ok {
		t.Fatalf("second LookupInstFn (cache hit path) should also find the fn")
	}
}

func TestEngineCallDispatchesByComposedHash(t *testing.T) {
	e := New()
	hash := ident.Function([]string{"double"})

	e.RegisterCallable(hash, func(args []value.Value) (value.Value, error) {
		n := args[0].(value.Integer)

		return n * 2, nil
	})

	got, err := e.Call(hash, reflect.Args1[int64]{A0: 21})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got.(value.Integer) != 42 {
		t.Fatalf("got %v, want Integer(42)", got)
	}
}

func TestEngineCallUnregisteredHashIsPanic(t *testing.T) {
	e := New()

	_, err := e.Call(ident.Function([]string{"missing"}), reflect.Args0{})
	if err == nil {
		t.Fatalf("expected an error calling an unregistered hash")
	}
}
