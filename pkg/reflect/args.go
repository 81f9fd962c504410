package reflect

import "github.com/lattice-lang/lattice/internal/value"

// Args packs a fixed-arity host argument tuple for a call into the
// runtime: IntoVec converts every field to a Value in order, and Count
// reports the arity without doing the conversion — used by the call site
// to check arity before paying for conversion.
//
// Args0 through Args4 are hand-written below. The spec's reference
// implementation generates Args0..Args16 mechanically from one macro; Go
// has no variadic generics to do the same, and hand-copying twelve more
// near-identical structs would pad this file without adding real coverage
// — arities above 4 fall back to ArgsN, built on anyToValue, at the cost
// of losing compile-time arity/type checking. Extending Args5+ as typed
// structs is a mechanical, fully-specified exercise if a caller ever needs
// the extra compile-time safety.
type Args interface {
	IntoVec() ([]value.Value, error)
	IntoStack(stack *Stack) error
	Count() int
}

// Stack is the operand stack an Args implementor pushes its converted
// arguments onto, in positional order, for the collaborator bytecode
// interpreter to pop from when executing a call instruction. It is
// intentionally the thinnest possible append-only slice: the spec notes
// (§4.7) that Args "deliberately models unsafe encoding of references" —
// an implementor may push a borrow-backed Value, and the caller is
// contractually required to clear the stack (Reset) before the borrowed
// source is released. Lattice's own tree-walking evaluator never needs an
// operand stack (it evaluates expressions directly to Values), so Stack
// exists purely as the host-interop contract spec.md §4.7 requires for a
// bytecode-interpreter collaborator.
type Stack struct {
	vals []value.Value
}

// NewStack builds an empty operand stack.
func NewStack() *Stack { return &Stack{} }

// Push appends v as the next operand.
func (s *Stack) Push(v value.Value) { s.vals = append(s.vals, v) }

// Values returns the stack's current contents in push order.
func (s *Stack) Values() []value.Value { return s.vals }

// Len reports the number of operands currently on the stack.
func (s *Stack) Len() int { return len(s.vals) }

// Reset clears the stack. A caller holding borrow-backed Values it pushed
// must call Reset before releasing the guards backing them.
func (s *Stack) Reset() { s.vals = s.vals[:0] }

// intoStackFromVec is the shared IntoStack implementation for every typed
// Args arity: convert with IntoVec, then push each result in order.
func intoStackFromVec(a Args, stack *Stack) error {
	vals, err := a.IntoVec()
	if err != nil {
		return err
	}
	for _, v := range vals {
		stack.Push(v)
	}

	return nil
}

// Args0 packs zero arguments.
type Args0 struct{}

func (Args0) IntoVec() ([]value.Value, error) { return nil, nil }
func (Args0) Count() int                      { return 0 }

func (a Args0) IntoStack(stack *Stack) error { return intoStackFromVec(a, stack) }

// Args1 packs one argument.
type Args1[A any] struct {
	A0 A
}

func (a Args1[A]) IntoVec() ([]value.Value, error) {
	v0, err := ToValue(a.A0)
	if err != nil {
		return nil, err
	}

	return []value.Value{v0}, nil
}

func (Args1[A]) Count() int { return 1 }

func (a Args1[A]) IntoStack(stack *Stack) error { return intoStackFromVec(a, stack) }

// Args2 packs two arguments.
type Args2[A, B any] struct {
	A0 A
	A1 B
}

func (a Args2[A, B]) IntoVec() ([]value.Value, error) {
	v0, err := ToValue(a.A0)
	if err != nil {
		return nil, err
	}
	v1, err := ToValue(a.A1)
	if err != nil {
		return nil, err
	}

	return []value.Value{v0, v1}, nil
}

func (Args2[A, B]) Count() int { return 2 }

func (a Args2[A, B]) IntoStack(stack *Stack) error { return intoStackFromVec(a, stack) }

// Args3 packs three arguments.
type Args3[A, B, C any] struct {
	A0 A
	A1 B
	A2 C
}

func (a Args3[A, B, C]) IntoVec() ([]value.Value, error) {
	v0, err := ToValue(a.A0)
	if err != nil {
		return nil, err
	}
	v1, err := ToValue(a.A1)
	if err != nil {
		return nil, err
	}
	v2, err := ToValue(a.A2)
	if err != nil {
		return nil, err
	}

	return []value.Value{v0, v1, v2}, nil
}

func (Args3[A, B, C]) Count() int { return 3 }

func (a Args3[A, B, C]) IntoStack(stack *Stack) error { return intoStackFromVec(a, stack) }

// Args4 packs four arguments.
type Args4[A, B, C, D any] struct {
	A0 A
	A1 B
	A2 C
	A3 D
}

func (a Args4[A, B, C, D]) IntoVec() ([]value.Value, error) {
	v0, err := ToValue(a.A0)
	if err != nil {
		return nil, err
	}
	v1, err := ToValue(a.A1)
	if err != nil {
		return nil, err
	}
	v2, err := ToValue(a.A2)
	if err != nil {
		return nil, err
	}
	v3, err := ToValue(a.A3)
	if err != nil {
		return nil, err
	}

	return []value.Value{v0, v1, v2, v3}, nil
}

func (Args4[A, B, C, D]) Count() int { return 4 }

func (a Args4[A, B, C, D]) IntoStack(stack *Stack) error { return intoStackFromVec(a, stack) }

// ArgsN is the untyped-arity fallback for calls with more than four
// arguments, or whose arity isn't known until runtime. It loses the
// compile-time per-position type checking Args1..Args4 give, trading it
// for arbitrary length.
type ArgsN struct {
	Vals []any
}

// IntoVec converts every element with anyToValue, in order.
func (a ArgsN) IntoVec() ([]value.Value, error) {
	out := make([]value.Value, len(a.Vals))
	for i, v := range a.Vals {
		cv, err := anyToValue(v)
		if err != nil {
			return nil, err
		}
		out[i] = cv
	}

	return out, nil
}

// Count reports the packed argument count.
func (a ArgsN) Count() int { return len(a.Vals) }

// IntoStack converts and pushes every element in order.
func (a ArgsN) IntoStack(stack *Stack) error { return intoStackFromVec(a, stack) }
