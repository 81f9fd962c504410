package eval

import (
	"github.com/lattice-lang/lattice/internal/ident"
	"github.com/lattice-lang/lattice/internal/value"
)

// arity1 wraps a single-argument Go function as a value.Builtin, checking
// the call's argument count first.
func arity1(name string, fn func(value.Value) (value.Value, error)) *value.Builtin {
	return value.NewBuiltin(name, func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.NewPanic(name + ": expected 1 argument")
		}

		return fn(args[0])
	})
}

// arity2 wraps a two-argument Go function as a value.Builtin. Because
// Lattice functions are applied one argument at a time, a two-argument
// builtin is itself curried: calling it with one argument returns a
// partially-applied builtin awaiting the second.
func arity2(name string, fn func(value.Value, value.Value) (value.Value, error)) *value.Builtin {
	return value.NewBuiltin(name, func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.NewPanic(name + ": expected 1 argument")
		}
		first := args[0]

		return value.NewBuiltin(name, func(rest []value.Value) (value.Value, error) {
			if len(rest) != 1 {
				return nil, value.NewPanic(name + ": expected 1 argument")
			}

			return fn(first, rest[0])
		}), nil
	})
}

// arity3 curries a three-argument Go function the same way arity2 does.
func arity3(name string, fn func(value.Value, value.Value, value.Value) (value.Value, error)) *value.Builtin {
	return value.NewBuiltin(name, func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.NewPanic(name + ": expected 1 argument")
		}
		a := args[0]

		return value.NewBuiltin(name, func(rest []value.Value) (value.Value, error) {
			if len(rest) != 1 {
				return nil, value.NewPanic(name + ": expected 1 argument")
			}
			b := rest[0]

			return value.NewBuiltin(name, func(rest2 []value.Value) (value.Value, error) {
				if len(rest2) != 1 {
					return nil, value.NewPanic(name + ": expected 1 argument")
				}

				return fn(a, b, rest2[0])
			}), nil
		}), nil
	})
}

// predicate wraps a single-argument type test as a Bool-returning builtin.
func predicate(name string, test func(value.Value) bool) *value.Builtin {
	return arity1(name, func(v value.Value) (value.Value, error) {
		return value.Bool(test(v)), nil
	})
}

// stringValue extracts a Go string from either a StaticString or a *String.
func stringValue(v value.Value) (string, error) {
	switch s := v.(type) {
	case value.StaticString:
		return s.Value(), nil
	case *value.String:
		return s.Value(), nil
	default:
		return "", value.NewExpectedType("string", v.Type())
	}
}

// variantRtti computes the Rtti for a variant case, hashing the type name
// alone for TypeHash and the (type, case) pair for VariantHash. There is no
// "enum" declaration in the grammar, so a script names its own ADTs
// on-the-fly through variantUnit/variantTuple/variantStruct; two calls with
// the same names always hash to the same identity.
func variantRtti(typeName, caseName string) *value.Rtti {
	return &value.Rtti{
		TypeHash:    ident.OfType([]string{typeName}),
		VariantHash: ident.OfType([]string{typeName, caseName}),
		Name:        caseName,
	}
}

// builtins returns the standard library bound into every fresh global
// environment.
func (e *Evaluator) builtins() map[string]value.Value {
	m := map[string]value.Value{
		"true":  value.Bool(true),
		"false": value.Bool(false),
		"unit":  value.Unit{},
	}

	for name, b := range map[string]*value.Builtin{
		"isUnit":     predicate("isUnit", func(v value.Value) bool { return v.Type() == value.TypeUnit }),
		"isBool":     predicate("isBool", func(v value.Value) bool { return v.Type() == value.TypeBool }),
		"isByte":     predicate("isByte", func(v value.Value) bool { return v.Type() == value.TypeByte }),
		"isChar":     predicate("isChar", func(v value.Value) bool { return v.Type() == value.TypeChar }),
		"isInteger":  predicate("isInteger", func(v value.Value) bool { return v.Type() == value.TypeInteger }),
		"isFloat":    predicate("isFloat", func(v value.Value) bool { return v.Type() == value.TypeFloat }),
		"isString":   predicate("isString", isStringValue),
		"isBytes":    predicate("isBytes", func(v value.Value) bool { return v.Type() == value.TypeBytes }),
		"isVec":      predicate("isVec", func(v value.Value) bool { return v.Type() == value.TypeVec }),
		"isTuple":    predicate("isTuple", func(v value.Value) bool { return v.Type() == value.TypeTuple }),
		"isObject":   predicate("isObject", func(v value.Value) bool { return v.Type() == value.TypeObject }),
		"isRange":    predicate("isRange", func(v value.Value) bool { return v.Type() == value.TypeRange }),
		"isOption":   predicate("isOption", func(v value.Value) bool { return v.Type() == value.TypeOption }),
		"isResult":   predicate("isResult", func(v value.Value) bool { return v.Type() == value.TypeResult }),
		"isVariant":  predicate("isVariant", func(v value.Value) bool { return v.Type() == value.TypeVariant }),
		"isFunction": predicate("isFunction", func(v value.Value) bool { return v.Type() == value.TypeFunction }),

		"toString": arity1("toString", builtinToString),

		"length": arity1("length", builtinLength),
		"head":   arity1("head", builtinHead),
		"tail":   arity1("tail", builtinTail),
		"push":   arity2("push", builtinPush),
		"elem":   arity2("elem", builtinElem),

		"keys":     arity1("keys", builtinKeys),
		"values":   arity1("values", builtinValues),
		"hasField": arity2("hasField", builtinHasField),
		"getField": arity2("getField", builtinGetField),

		"add": arity2("add", evalAdd),
		"sub": arity2("sub", evalSub),
		"mul": arity2("mul", evalMul),
		"div": arity2("div", evalDiv),

		"Some": arity1("Some", func(v value.Value) (value.Value, error) { return value.Some(v), nil }),
		"Ok":   arity1("Ok", func(v value.Value) (value.Value, error) { return value.Ok(v), nil }),
		"Err":  arity1("Err", func(v value.Value) (value.Value, error) { return value.Err(v), nil }),

		"range":          arity2("range", builtinRange),
		"rangeInclusive": arity2("rangeInclusive", builtinRangeInclusive),
		"rangeFrom":      arity1("rangeFrom", builtinRangeFrom),
		"toVec":          arity1("toVec", e.builtinToVec),

		"variantUnit":   arity2("variantUnit", builtinVariantUnit),
		"variantTuple":  arity3("variantTuple", builtinVariantTuple),
		"variantStruct": arity3("variantStruct", builtinVariantStruct),
	} {
		m[name] = b
	}

	m["None"] = value.None()

	return m
}

func isStringValue(v value.Value) bool {
	switch v.(type) {
	case value.StaticString, *value.String:
		return true
	default:
		return false
	}
}

func builtinToString(v value.Value) (value.Value, error) {
	switch v.Type() {
	case value.TypeString:
		if s, ok := v.(value.StaticString); ok {
			return value.Intern(s.Value()), nil
		}

		return v, nil
	default:
		return value.Intern(v.String()), nil
	}
}

func builtinLength(v value.Value) (value.Value, error) {
	switch t := v.(type) {
	case *value.Vec:
		n, err := t.Len()
		if err != nil {
			return nil, err
		}

		return value.Integer(n), nil
	case *value.Tuple:
		return value.Integer(t.Len()), nil
	case *value.String:
		n, err := t.Len()
		if err != nil {
			return nil, err
		}

		return value.Integer(n), nil
	case value.StaticString:
		return value.Integer(len(t.Value())), nil
	case *value.Object:
		return value.Integer(len(t.Keys())), nil
	default:
		return nil, value.NewExpectedType("vec, tuple, string, or object", v.Type())
	}
}

func builtinHead(v value.Value) (value.Value, error) {
	vec, ok := v.(*value.Vec)
	if !ok {
		return nil, value.NewExpectedType("vec", v.Type())
	}

	return vec.Get(0)
}

func builtinTail(v value.Value) (value.Value, error) {
	vec, ok := v.(*value.Vec)
	if !ok {
		return nil, value.NewExpectedType("vec", v.Type())
	}

	n, err := vec.Len()
	if err != nil {
		return nil, err
	}

	elems := vec.Elements()
	if n == 0 {
		return value.NewVec(), nil
	}

	return value.NewVec(elems[1:]...), nil
}

func builtinPush(v, elem value.Value) (value.Value, error) {
	vec, ok := v.(*value.Vec)
	if !ok {
		return nil, value.NewExpectedType("vec", v.Type())
	}
	if err := vec.Push(elem); err != nil {
		return nil, err
	}

	return vec, nil
}

func builtinElem(v, idx value.Value) (value.Value, error) {
	vec, ok := v.(*value.Vec)
	if !ok {
		return nil, value.NewExpectedType("vec", v.Type())
	}
	n, ok := idx.(value.Integer)
	if !ok {
		return nil, value.NewExpectedType("integer", idx.Type())
	}

	return vec.Get(int(n))
}

func builtinKeys(v value.Value) (value.Value, error) {
	obj, ok := v.(*value.Object)
	if !ok {
		return nil, value.NewExpectedType("object", v.Type())
	}

	keys := obj.Keys()
	elems := make([]value.Value, len(keys))
	for i, k := range keys {
		elems[i] = value.Intern(k)
	}

	return value.NewVec(elems...), nil
}

func builtinValues(v value.Value) (value.Value, error) {
	obj, ok := v.(*value.Object)
	if !ok {
		return nil, value.NewExpectedType("object", v.Type())
	}

	keys := obj.Keys()
	elems := make([]value.Value, 0, len(keys))
	for _, k := range keys {
		field, _, err := obj.Get(k)
		if err != nil {
			return nil, err
		}
		elems = append(elems, field)
	}

	return value.NewVec(elems...), nil
}

func builtinHasField(v, key value.Value) (value.Value, error) {
	obj, ok := v.(*value.Object)
	if !ok {
		return nil, value.NewExpectedType("object", v.Type())
	}
	name, err := stringValue(key)
	if err != nil {
		return nil, err
	}

	_, ok, err = obj.Get(name)
	if err != nil {
		return nil, err
	}

	return value.Bool(ok), nil
}

func builtinGetField(v, key value.Value) (value.Value, error) {
	obj, ok := v.(*value.Object)
	if !ok {
		return nil, value.NewExpectedType("object", v.Type())
	}
	name, err := stringValue(key)
	if err != nil {
		return nil, err
	}

	field, ok, err := obj.Get(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, value.NewPanic("object has no field " + name)
	}

	return field, nil
}

func builtinRange(start, end value.Value) (value.Value, error) {
	s, ok := start.(value.Integer)
	if !ok {
		return nil, value.NewExpectedType("integer", start.Type())
	}
	en, ok := end.(value.Integer)
	if !ok {
		return nil, value.NewExpectedType("integer", end.Type())
	}

	return value.NewHalfOpen(int64(s), int64(en)), nil
}

func builtinRangeInclusive(start, end value.Value) (value.Value, error) {
	s, ok := start.(value.Integer)
	if !ok {
		return nil, value.NewExpectedType("integer", start.Type())
	}
	en, ok := end.(value.Integer)
	if !ok {
		return nil, value.NewExpectedType("integer", end.Type())
	}

	return value.NewClosed(int64(s), int64(en)), nil
}

func builtinRangeFrom(start value.Value) (value.Value, error) {
	s, ok := start.(value.Integer)
	if !ok {
		return nil, value.NewExpectedType("integer", start.Type())
	}

	return value.NewUnboundedFrom(int64(s)), nil
}

// builtinToVec materializes a Range into a Vec of its elements, driving
// the iteration through the INTO_ITER/NEXT protocol dispatch rather than
// calling r.IntoIterator directly, so a host-registered override of
// either protocol is honored here too.
func (e *Evaluator) builtinToVec(v value.Value) (value.Value, error) {
	r, ok := v.(*value.Range)
	if !ok {
		return nil, value.NewExpectedType("range", v.Type())
	}

	itVal, err := e.caller.IntoIter(r, func() (value.Value, error) {
		it, err := r.IntoIterator()
		if err != nil {
			return nil, err
		}

		return value.NewIteratorValue(it), nil
	})
	if err != nil {
		return nil, err
	}

	var elems []value.Value
	for {
		next, err := e.caller.Next(itVal, func() (value.Value, error) {
			return nil, value.NewExpectedType("iterator", itVal.Type())
		})
		if err != nil {
			return nil, err
		}
		opt, ok := next.(*value.Option)
		if !ok {
			return nil, value.NewExpectedType("option", next.Type())
		}
		if !opt.IsSome() {
			break
		}
		n, err := opt.Unwrap()
		if err != nil {
			return nil, err
		}
		elems = append(elems, n)
	}

	return value.NewVec(elems...), nil
}

func builtinVariantUnit(typeName, caseName value.Value) (value.Value, error) {
	tn, err := stringValue(typeName)
	if err != nil {
		return nil, err
	}
	cn, err := stringValue(caseName)
	if err != nil {
		return nil, err
	}

	return value.NewVariantBuilder(variantRtti(tn, cn)).Build(), nil
}

// builtinVariantTuple constructs a tuple-payload variant:
// variantTuple(typeName, caseName, [field0, field1, ...]).
func builtinVariantTuple(typeName, caseName, fields value.Value) (value.Value, error) {
	tn, err := stringValue(typeName)
	if err != nil {
		return nil, err
	}
	cn, err := stringValue(caseName)
	if err != nil {
		return nil, err
	}
	vec, ok := fields.(*value.Vec)
	if !ok {
		return nil, value.NewExpectedType("vec", fields.Type())
	}

	return value.NewVariantBuilder(variantRtti(tn, cn)).Tuple(vec.Elements()...).Build(), nil
}

func builtinVariantStruct(typeName, caseName, fields value.Value) (value.Value, error) {
	tn, err := stringValue(typeName)
	if err != nil {
		return nil, err
	}
	cn, err := stringValue(caseName)
	if err != nil {
		return nil, err
	}
	obj, ok := fields.(*value.Object)
	if !ok {
		return nil, value.NewExpectedType("object", fields.Type())
	}

	builder := value.NewVariantBuilder(variantRtti(tn, cn))
	for _, key := range obj.Keys() {
		v, _, err := obj.Get(key)
		if err != nil {
			return nil, err
		}
		builder = builder.Field(key, v)
	}

	return builder.Build(), nil
}
