package ident

import "testing"

func TestOfTypeStableAcrossCalls(t *testing.T) {
	path := []string{"std", "ops", "Range"}

	first := OfType(path)
	for i := 0; i < 5; i++ {
		if got := OfType(path); got != first {
			t.Fatalf("OfType not stable: call %d got %x, want %x", i, got, first)
		}
	}
}

func TestFunctionSharesTypeKeyspace(t *testing.T) {
	path := []string{"math", "sqrt"}

	if OfType(path) != Function(path) {
		t.Fatalf("Function(%v) = %x, want same as OfType = %x", path, Function(path), OfType(path))
	}
}

func TestObjectKeysOrderSensitive(t *testing.T) {
	ab := ObjectKeys([]string{"a", "b"})
	ba := ObjectKeys([]string{"b", "a"})

	if ab == ba {
		t.Fatalf("ObjectKeys([a b]) == ObjectKeys([b a]) = %x, want distinct", ab)
	}

	if ObjectKeys([]string{"a", "b"}) != ab {
		t.Fatalf("ObjectKeys not deterministic")
	}
}

func TestTupleMatchDistinctFromType(t *testing.T) {
	path := []string{"Option", "Some"}

	if OfType(path) == TupleMatch(path) {
		t.Fatalf("TupleMatch collides with OfType for %v", path)
	}
}

func TestInstanceFunctionDeterministic(t *testing.T) {
	typeHash := OfType([]string{"std", "ops", "Range"})
	nameHash := Of("iter")

	first := InstanceFunction(typeHash, nameHash)
	second := InstanceFunction(typeHash, nameHash)
	if first != second {
		t.Fatalf("InstanceFunction not deterministic: %x != %x", first, second)
	}

	other := InstanceFunction(typeHash, Of("other"))
	if first == other {
		t.Fatalf("InstanceFunction collided across distinct name hashes")
	}
}

func TestGlobalModuleConstant(t *testing.T) {
	if GLOBAL_MODULE != 0 {
		t.Fatalf("GLOBAL_MODULE = %d, want 0", GLOBAL_MODULE)
	}
}
