package eval

import (
	"testing"

	"github.com/lattice-lang/lattice/internal/value"
	"github.com/lattice-lang/lattice/pkg/lexer"
	"github.com/lattice-lang/lattice/pkg/parser"
)

func testEval(t *testing.T, input string) value.Value {
	t.Helper()

	l := lexer.New(input)
	p := parser.New(l)
	tree, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error for %q: %v", input, err)
	}

	e := New()
	result, err := e.Eval(tree)
	if err != nil {
		t.Fatalf("eval error for %q: %v", input, err)
	}

	return result
}

func testIntegerObject(t *testing.T, obj value.Value, expected int64) bool {
	t.Helper()

	result, ok := obj.(value.Integer)
	if !ok {
		t.Errorf("object is not Integer. got=%T (%+v)", obj, obj)

		return false
	}
	if int64(result) != expected {
		t.Errorf("object has wrong value. got=%d, want=%d", result, expected)

		return false
	}

	return true
}

func testBooleanObject(t *testing.T, obj value.Value, expected bool) bool {
	t.Helper()

	result, ok := obj.(value.Bool)
	if !ok {
		t.Errorf("object is not Bool. got=%T (%+v)", obj, obj)

		return false
	}
	if bool(result) != expected {
		t.Errorf("object has wrong value. got=%t, want=%t", result, expected)

		return false
	}

	return true
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2", 16},
		{"5 + 2 * 10", 25},
		{"(5 + 2) * 10", 70},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testIntegerObject(t, result, tt.expected)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"true && true", true},
		{"true && false", false},
		{"false || true", true},
		{"false -> true", true},
		{"true -> false", false},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testBooleanObject(t, result, tt.expected)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testBooleanObject(t, result, tt.expected)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"if true then 10 else 20", 10},
		{"if false then 10 else 20", 20},
		{"if 1 < 2 then 10 else 20", 10},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testIntegerObject(t, result, tt.expected)
	}
}

func TestLetExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let a = 5; in a", 5},
		{"let a = 5; b = a + 1; in b", 6},
		{"let a = 5; in let b = 10; in a + b", 15},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testIntegerObject(t, result, tt.expected)
	}
}

func TestFunctionApplication(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"(x: x) 5", 5},
		{"(x: x + 1) 5", 6},
		{"(x: y: x + y) 5 10", 15},
		{"let double = x: x * 2; in double 4", 8},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testIntegerObject(t, result, tt.expected)
	}
}

func TestClosureCurryingAndTupleCall(t *testing.T) {
	result := testEval(t, "let add = |x, y| x + y; in add(3, 4)")
	testIntegerObject(t, result, 7)

	curried := testEval(t, "let add = |x, y| x + y; in let f = add 3; in f 4")
	testIntegerObject(t, curried, 7)
}

func TestVecLiterals(t *testing.T) {
	result := testEval(t, "[1, 2, 3]")
	vec, ok := result.(*value.Vec)
	if !ok {
		t.Fatalf("expected *value.Vec, got %T", result)
	}
	n, err := vec.Len()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected length 3, got %d", n)
	}
}

func TestVecConcat(t *testing.T) {
	result := testEval(t, "[1, 2] ++ [3, 4]")
	vec, ok := result.(*value.Vec)
	if !ok {
		t.Fatalf("expected *value.Vec, got %T", result)
	}
	n, _ := vec.Len()
	if n != 4 {
		t.Fatalf("expected length 4, got %d", n)
	}
}

func TestObjectLiterals(t *testing.T) {
	result := testEval(t, `{ a = 1; b = 2; }`)
	obj, ok := result.(*value.Object)
	if !ok {
		t.Fatalf("expected *value.Object, got %T", result)
	}
	v, ok, err := obj.Get("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected field a to be present")
	}
	testIntegerObject(t, v, 1)
}

func TestRecursiveObjectLiterals(t *testing.T) {
	result := testEval(t, `rec { a = 1; b = a + 1; }`)
	obj, ok := result.(*value.Object)
	if !ok {
		t.Fatalf("expected *value.Object, got %T", result)
	}
	v, ok, err := obj.Get("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected field b to be present")
	}
	testIntegerObject(t, v, 2)
}

func TestObjectUpdate(t *testing.T) {
	result := testEval(t, `{ a = 1; b = 2; } // { b = 3; c = 4; }`)
	obj, ok := result.(*value.Object)
	if !ok {
		t.Fatalf("expected *value.Object, got %T", result)
	}
	b, _, _ := obj.Get("b")
	testIntegerObject(t, b, 3)
	c, _, _ := obj.Get("c")
	testIntegerObject(t, c, 4)
}

func TestSelectAndOrDefault(t *testing.T) {
	result := testEval(t, `{ a = 1; }.b or 99`)
	testIntegerObject(t, result, 99)
}

func TestBuiltinFunctions(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"length [1, 2, 3]", 3},
		{"head [1, 2, 3]", 1},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		testIntegerObject(t, result, tt.expected)
	}
}

func TestOptionBuiltins(t *testing.T) {
	result := testEval(t, "isOption(Some(5))")
	testBooleanObject(t, result, true)

	none := testEval(t, "isOption(None)")
	testBooleanObject(t, none, true)
}

func TestRangeIterationAndFields(t *testing.T) {
	vec := testEval(t, "toVec(range(0, 3))")
	v, ok := vec.(*value.Vec)
	if !ok {
		t.Fatalf("expected *value.Vec, got %T", vec)
	}
	n, _ := v.Len()
	if n != 3 {
		t.Fatalf("expected length 3, got %d", n)
	}

	start := testEval(t, "(range(1, 5)).start")
	testIntegerObject(t, start, 1)
}

func TestVariantConstructionAndMatch(t *testing.T) {
	result := testEval(t, `
		let shape = variantTuple("Shape", "Circle", [5]);
		in match shape {
			Circle(r) => r * 2,
			Square(s) => s * 4,
		}
	`)
	testIntegerObject(t, result, 10)
}

// TestVariantOrderingWithNoProtocolOverride exercises the structural
// fallback for comparing two same-case variants: with no CMP instance
// function registered, ordering falls back to comparing payloads
// positionally rather than failing with a type error.
func TestVariantOrderingWithNoProtocolOverride(t *testing.T) {
	lt := testEval(t, `
		let b1 = variantTuple("T", "B", [1]);
		b2 = variantTuple("T", "B", [2]);
		in b1 < b2
	`)
	testBooleanObject(t, lt, true)

	gt := testEval(t, `
		let b1 = variantTuple("T", "B", [1]);
		b2 = variantTuple("T", "B", [2]);
		in b1 > b2
	`)
	testBooleanObject(t, gt, false)
}
