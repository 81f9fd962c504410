// Package reflect bridges Lattice's internal Value representation and
// host Go types: owning conversions (ToValue/FromValue), an unsafe
// borrow-avoiding conversion for hot paths (UnsafeFromValueRef/Mut), and
// the Args argument-packing family a host uses to pass arguments to
// pkg/vm.Engine.Call.
//
// Go has no trait specialization, so the per-type dispatch a Rust
// "FromValue for T" impl would get from the compiler is done here with a
// type switch over any(zero).(type) — the same technique
// Voskan-arena-cache's generic shard/cache code uses to special-case a
// type parameter's zero value.
package reflect

import (
	"fmt"

	"github.com/lattice-lang/lattice/internal/value"
)

// ToValue converts a host Go value into a Lattice Value. It covers the
// primitive host types with a direct Value counterpart; anything else is
// an error. No conversion wraps an arbitrary Go type as an opaque Any
// value.
func ToValue[T any](v T) (value.Value, error) {
	return anyToValue(v)
}

// anyToValue is ToValue's dynamic-dispatch core, factored out so the Args
// family (packing a slice of heterogeneous any arguments) can reuse it
// without needing a type parameter per call site.
func anyToValue(v any) (value.Value, error) {
	switch x := v.(type) {
	case value.Value:
		return x, nil
	case bool:
		return value.Bool(x), nil
	case byte:
		return value.Byte(x), nil
	case rune:
		return value.Char(x), nil
	case int:
		return value.Integer(int64(x)), nil
	case int64:
		return value.Integer(x), nil
	case float64:
		return value.Float(x), nil
	case string:
		return value.Intern(x), nil
	case []byte:
		return value.NewBytes(x), nil
	default:
		return nil, fmt.Errorf("reflect: ToValue: no conversion registered for %T", v)
	}
}

// FromValue converts a Lattice Value into the requested host Go type T,
// taking ownership of (copying out) the data rather than borrowing it —
// use UnsafeFromValueRef/Mut on a hot path that must avoid the copy.
func FromValue[T any](v value.Value) (T, error) {
	var zero T

	switch any(zero).(type) {
	case bool:
		b, ok := v.(value.Bool)
		if !ok {
			return zero, value.NewExpectedType("bool", v.Type())
		}

		return any(bool(b)).(T), nil

	case byte:
		b, ok := v.(value.Byte)
		if !ok {
			return zero, value.NewExpectedType("byte", v.Type())
		}

		return any(byte(b)).(T), nil

	case rune:
		c, ok := v.(value.Char)
		if !ok {
			return zero, value.NewExpectedType("char", v.Type())
		}

		return any(rune(c)).(T), nil

	case int:
		i, ok := v.(value.Integer)
		if !ok {
			return zero, value.NewExpectedType("integer", v.Type())
		}

		return any(int(i)).(T), nil

	case int64:
		i, ok := v.(value.Integer)
		if !ok {
			return zero, value.NewExpectedType("integer", v.Type())
		}

		return any(int64(i)).(T), nil

	case float64:
		f, ok := v.(value.Float)
		if !ok {
			return zero, value.NewExpectedType("float", v.Type())
		}

		return any(float64(f)).(T), nil

	case string:
		switch sv := v.(type) {
		case value.StaticString:
			return any(sv.Value()).(T), nil
		case *value.String:
			return any(sv.Value()).(T), nil
		default:
			return zero, value.NewExpectedType("string", v.Type())
		}

	case []byte:
		b, ok := v.(*value.Bytes)
		if !ok {
			return zero, value.NewExpectedType("bytes", v.Type())
		}

		return any(b.Value()).(T), nil

	default:
		// T doesn't match a known host primitive; if the caller asked
		// for value.Value itself (or a Value subtype), hand it back
		// directly rather than failing.
		if vv, ok := any(v).(T); ok {
			return vv, nil
		}

		return zero, fmt.Errorf("reflect: FromValue: no conversion registered for %T", zero)
	}
}

// OptionToValue converts a host *T (nil meaning absent) into a Lattice
// Option, recursively converting the contained value with ToValue when
// present. Grounded on spec.md §4.6's "Option<T>: recursive" coverage row.
func OptionToValue[T any](v *T) (value.Value, error) {
	if v == nil {
		return value.None(), nil
	}

	inner, err := ToValue(*v)
	if err != nil {
		return nil, err
	}

	return value.Some(inner), nil
}

// OptionFromValue converts a Lattice Option back into a host *T, returning
// nil for None and recursively applying FromValue to the Some payload.
func OptionFromValue[T any](v value.Value) (*T, error) {
	opt, ok := v.(*value.Option)
	if !ok {
		return nil, value.NewExpectedType("option", v.Type())
	}
	if !opt.IsSome() {
		return nil, nil
	}

	inner, err := opt.Unwrap()
	if err != nil {
		return nil, err
	}
	t, err := FromValue[T](inner)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// VecToValue converts a host []T into a Lattice Vec, converting each
// element with ToValue. Grounded on spec.md §4.6's "Vec<T>: recursive" row.
func VecToValue[T any](v []T) (value.Value, error) {
	elems := make([]value.Value, len(v))
	for i, e := range v {
		cv, err := ToValue(e)
		if err != nil {
			return nil, err
		}
		elems[i] = cv
	}

	return value.NewVec(elems...), nil
}

// VecFromValue converts a Lattice Vec back into a host []T, applying
// FromValue to each element in order.
func VecFromValue[T any](v value.Value) ([]T, error) {
	vec, ok := v.(*value.Vec)
	if !ok {
		return nil, value.NewExpectedType("vec", v.Type())
	}

	elems := vec.Elements()
	out := make([]T, len(elems))
	for i, e := range elems {
		t, err := FromValue[T](e)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}

	return out, nil
}

// Tuple2FromValue and Tuple3FromValue decode a Lattice Tuple into a host
// tuple of 2 or 3 typed fields — the shape S1 (§8) exercises directly:
// a script returning (input.0 + 1, input.1 + 2) decoded as (i64, i64).
// Go has no variadic generics to express "tuples 0..=N" as one family the
// way spec.md §4.6 states it for the reference implementation; arities
// above 3 are a mechanical extension of the same pattern, left unwritten
// since nothing in this repository's scenarios needs them.
func Tuple2FromValue[A, B any](v value.Value) (A, B, error) {
	var za A
	var zb B

	t, ok := v.(*value.Tuple)
	if !ok || t.Len() != 2 {
		return za, zb, value.NewExpectedType("tuple of arity 2", v.Type())
	}

	e0, err := t.Get(0)
	if err != nil {
		return za, zb, err
	}
	e1, err := t.Get(1)
	if err != nil {
		return za, zb, err
	}

	a, err := FromValue[A](e0)
	if err != nil {
		return za, zb, err
	}
	b, err := FromValue[B](e1)
	if err != nil {
		return za, zb, err
	}

	return a, b, nil
}

// Tuple2ToValue encodes a host (A, B) pair as a Lattice Tuple.
func Tuple2ToValue[A, B any](a A, b B) (value.Value, error) {
	va, err := ToValue(a)
	if err != nil {
		return nil, err
	}
	vb, err := ToValue(b)
	if err != nil {
		return nil, err
	}

	return value.NewTuple(va, vb), nil
}

// Tuple3FromValue is Tuple2FromValue's three-field counterpart.
func Tuple3FromValue[A, B, C any](v value.Value) (A, B, C, error) {
	var za A
	var zb B
	var zc C

	t, ok := v.(*value.Tuple)
	if !ok || t.Len() != 3 {
		return za, zb, zc, value.NewExpectedType("tuple of arity 3", v.Type())
	}

	e0, err := t.Get(0)
	if err != nil {
		return za, zb, zc, err
	}
	e1, err := t.Get(1)
	if err != nil {
		return za, zb, zc, err
	}
	e2, err := t.Get(2)
	if err != nil {
		return za, zb, zc, err
	}

	a, err := FromValue[A](e0)
	if err != nil {
		return za, zb, zc, err
	}
	b, err := FromValue[B](e1)
	if err != nil {
		return za, zb, zc, err
	}
	c, err := FromValue[C](e2)
	if err != nil {
		return za, zb, zc, err
	}

	return a, b, c, nil
}
