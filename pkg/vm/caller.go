package vm

import (
	"github.com/lattice-lang/lattice/internal/ident"
	"github.com/lattice-lang/lattice/internal/value"
)

// Caller mediates every operation that a script- or host-registered type
// may overload: it checks the engine for a registered instance function
// under the relevant protocol hash first, falling back to internal/value's
// structural behavior only when nothing is registered. This is the
// "protocol caller" indirection the evaluator routes all operator
// dispatch through, so a type's own eq/get/arith/iter implementations
// take priority over the runtime's built-in structural behavior. Only a
// *value.Variant (through its Rtti's TypeHash), a *value.Range and a
// *value.IteratorValue have a type hash here and are eligible for
// override; every other Value case, including any other type registered
// via Engine.RegisterType, falls straight through to its built-in
// fallback.
type Caller struct {
	engine *Engine
}

// NewCaller builds a Caller backed by engine.
func NewCaller(engine *Engine) *Caller {
	return &Caller{engine: engine}
}

// typeHashOf reports the registrable type hash for v, if any. A
// *value.Variant carries its own Rtti type hash; Range and Iterator, the
// two built-in types registered through RegisterType, carry a fixed hash
// computed once at package init. No other case has one.
func typeHashOf(v value.Value) (ident.Hash, bool) {
	switch vv := v.(type) {
	case *value.Variant:
		return vv.Rtti().TypeHash, true
	case *value.Range:
		return RangeTypeHash, true
	case *value.IteratorValue:
		return IteratorTypeHash, true
	default:
		return 0, false
	}
}

// Invoke dispatches the named protocol on recv, preferring a registered
// instance function over fallback. extra is appended after recv to form
// the full argument list passed to the registered function.
func (c *Caller) Invoke(
	protocol ident.Hash,
	recv value.Value,
	extra []value.Value,
	fallback func() (value.Value, error),
) (value.Value, error) {
	typeHash, ok := typeHashOf(recv)
	if !ok {
		return fallback()
	}

	fn, ok := c.engine.LookupInstFn(typeHash, protocol)
	if !ok {
		return fallback()
	}

	args := make([]value.Value, 0, len(extra)+1)
	args = append(args, recv)
	args = append(args, extra...)

	return fn(args)
}

// Eq compares a and b, preferring a's registered EQ protocol
// implementation over value.Eq's structural comparison.
func (c *Caller) Eq(a, b value.Value) (bool, error) {
	result, err := c.Invoke(ProtocolEq, a, []value.Value{b}, func() (value.Value, error) {
		return value.Bool(value.Eq(a, b)), nil
	})
	if err != nil {
		return false, err
	}

	bv, ok := result.(value.Bool)
	if !ok {
		return false, value.NewExpectedType("bool", result.Type())
	}

	return bool(bv), nil
}

// Get dispatches the GET protocol (indexing / field access) on v,
// preferring a registered override over the fallback the evaluator
// supplies for built-in container types.
func (c *Caller) Get(v value.Value, key value.Value, fallback func() (value.Value, error)) (value.Value, error) {
	return c.Invoke(ProtocolGet, v, []value.Value{key}, fallback)
}

// Arith dispatches one of the reserved arithmetic protocols (ProtocolAdd,
// ProtocolSub, ProtocolMul, ProtocolDiv, ProtocolCmp) on v, preferring a
// registered override over the fallback the evaluator supplies for
// built-in numeric types.
func (c *Caller) Arith(protocol ident.Hash, v, rhs value.Value, fallback func() (value.Value, error)) (value.Value, error) {
	return c.Invoke(protocol, v, []value.Value{rhs}, fallback)
}

// IntoIter dispatches the INTO_ITER protocol on v, returning the Value
// (an *value.IteratorValue for Range) the registered handler produces, or
// fallback's result when v carries no registered override.
func (c *Caller) IntoIter(v value.Value, fallback func() (value.Value, error)) (value.Value, error) {
	return c.Invoke(ProtocolIntoIter, v, nil, fallback)
}

// Next dispatches the NEXT protocol on an iterator Value, returning the
// *value.Option the registered handler produces.
func (c *Caller) Next(it value.Value, fallback func() (value.Value, error)) (value.Value, error) {
	return c.Invoke(ProtocolNext, it, nil, fallback)
}
