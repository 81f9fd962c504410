package value

import "fmt"

// Option represents an optional Value: either Some(v) or None. Grounded on
// original_source's reflection/option.rs Some/None shape — the teacher has
// no sum-type analog, since Nix represents absence with its own null.
type Option struct {
	cell *Shared[optionData]
}

type optionData struct {
	some bool
	val  Value
}

// Some builds a populated Option.
func Some(v Value) *Option {
	return &Option{cell: NewShared(optionData{some: true, val: v})}
}

// None builds an empty Option.
func None() *Option {
	return &Option{cell: NewShared(optionData{})}
}

func (*Option) Type() Type { return TypeOption }

func (o *Option) String() string {
	d := o.cell.Peek()
	if !d.some {
		return "None"
	}

	return fmt.Sprintf("Some(%s)", d.val.String())
}

// IsSome reports whether the option holds a value.
func (o *Option) IsSome() bool { return o.cell.Peek().some }

// Unwrap returns the contained value, or a Panic error if None.
func (o *Option) Unwrap() (Value, error) {
	d := o.cell.Peek()
	if !d.some {
		return nil, NewPanic("called Unwrap on a None option")
	}

	return d.val, nil
}

func (o *Option) eq(other *Option) bool {
	a, b := o.cell.Peek(), other.cell.Peek()
	if a.some != b.some {
		return false
	}
	if !a.some {
		return true
	}

	return Eq(a.val, b.val)
}

// Result represents the outcome of a fallible operation: either Ok(v) or
// Err(v). Grounded alongside Option on original_source's reflection layer;
// Err carries a Value (not a Go error) since script-level errors are
// themselves script values that can be pattern-matched and re-raised.
type Result struct {
	cell *Shared[resultData]
}

type resultData struct {
	ok  bool
	val Value
}

// Ok builds a successful Result.
func Ok(v Value) *Result {
	return &Result{cell: NewShared(resultData{ok: true, val: v})}
}

// Err builds a failed Result.
func Err(v Value) *Result {
	return &Result{cell: NewShared(resultData{val: v})}
}

func (*Result) Type() Type { return TypeResult }

func (r *Result) String() string {
	d := r.cell.Peek()
	if d.ok {
		return fmt.Sprintf("Ok(%s)", d.val.String())
	}

	return fmt.Sprintf("Err(%s)", d.val.String())
}

// IsOk reports whether the result is the success case.
func (r *Result) IsOk() bool { return r.cell.Peek().ok }

// Unwrap returns the contained value, or a Panic error if this is Err.
func (r *Result) Unwrap() (Value, error) {
	d := r.cell.Peek()
	if !d.ok {
		return nil, NewPanic(fmt.Sprintf("called Unwrap on an Err result: %s", d.val))
	}

	return d.val, nil
}

func (r *Result) eq(other *Result) bool {
	a, b := r.cell.Peek(), other.cell.Peek()
	if a.ok != b.ok {
		return false
	}

	return Eq(a.val, b.val)
}
