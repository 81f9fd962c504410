package value

import "testing"

func TestCompareNumericPromotion(t *testing.T) {
	c, err := Compare(Integer(1), Float(2.5))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if c >= 0 {
		t.Fatalf("Compare(1, 2.5) = %d, want negative", c)
	}
}

func TestCompareStrings(t *testing.T) {
	c, err := Compare(Intern("a"), Intern("b"))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if c >= 0 {
		t.Fatalf("Compare(\"a\", \"b\") = %d, want negative", c)
	}
}

func TestCompareUnorderableIsError(t *testing.T) {
	if _, err := Compare(Unit{}, Unit{}); err == nil {
		t.Fatalf("expected an error comparing two unorderable values")
	}
}

func TestCmpVariantDelegatesToStructuralOrdering(t *testing.T) {
	b1 := NewVariantBuilder(bRtti()).Tuple(Integer(1)).Build()
	b2 := NewVariantBuilder(bRtti()).Tuple(Integer(2)).Build()

	c, err := Cmp(b1, b2)
	if err != nil {
		t.Fatalf("Cmp: %v", err)
	}
	if c >= 0 {
		t.Fatalf("Cmp(B(1), B(2)) = %d, want negative (Less)", c)
	}
}

func TestCmpMixedVariantAndNonVariantIsError(t *testing.T) {
	b1 := NewVariantBuilder(bRtti()).Tuple(Integer(1)).Build()

	if _, err := Cmp(b1, Integer(1)); err == nil {
		t.Fatalf("expected an error comparing a variant against a non-variant")
	}
}
