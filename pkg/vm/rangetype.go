package vm

import (
	"github.com/lattice-lang/lattice/internal/ident"
	"github.com/lattice-lang/lattice/internal/value"
)

// RangeTypeHash and IteratorTypeHash are the fixed type hashes Range and
// its iterator are registered under. Computed once at package init, the
// same way a script-defined type's Rtti is computed once at construction,
// so Caller's typeHashOf can recognize either Value case without a
// per-Engine lookup.
var (
	RangeTypeHash    = ident.OfType([]string{"Range"})
	IteratorTypeHash = ident.OfType([]string{"Iterator"})
)

// RegisterBuiltinTypes installs Range and Iterator on e: Range gets
// "start"/"end" field getters and an INTO_ITER/"iter" instance method
// producing an IteratorValue; Iterator gets a NEXT instance method. This
// is the worked example the host-registration surface exists to support —
// every hop a script makes into a Range (obj.start, obj.end, iteration)
// goes through the registry's protocol dispatch rather than a hardcoded
// type switch in the evaluator.
func RegisterBuiltinTypes(e *Engine) {
	e.RegisterType("Range", func(b *TypeBuilder) {
		b.FieldFn(ProtocolGet, "start", rangeField(func(r *value.Range) (value.Value, bool) { return r.StartValue() }))
		b.FieldFn(ProtocolGet, "end", rangeField(func(r *value.Range) (value.Value, bool) { return r.EndValue() }))
		b.InstFn(ProtocolIntoIter, rangeIntoIter)
		b.InstFn(ident.Of("iter"), rangeIntoIter)
	})

	e.RegisterType("Iterator", func(b *TypeBuilder) {
		b.InstFn(ProtocolNext, iteratorNext)
	})
}

func rangeField(get func(*value.Range) (value.Value, bool)) CallFn {
	return func(args []value.Value) (value.Value, error) {
		r, err := asRange(args)
		if err != nil {
			return nil, err
		}

		v, ok := get(r)
		if !ok {
			return value.Unit{}, nil
		}

		return v, nil
	}
}

func rangeIntoIter(args []value.Value) (value.Value, error) {
	r, err := asRange(args)
	if err != nil {
		return nil, err
	}

	it, err := r.IntoIterator()
	if err != nil {
		return nil, err
	}

	return value.NewIteratorValue(it), nil
}

func iteratorNext(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, value.NewPanic("next expects an iterator receiver")
	}

	iv, ok := args[0].(*value.IteratorValue)
	if !ok {
		return nil, value.NewExpectedType("iterator", args[0].Type())
	}

	return iv.Next(), nil
}

func asRange(args []value.Value) (*value.Range, error) {
	if len(args) == 0 {
		return nil, value.NewPanic("range instance function expects a receiver")
	}

	r, ok := args[0].(*value.Range)
	if !ok {
		return nil, value.NewExpectedType("range", args[0].Type())
	}

	return r, nil
}
