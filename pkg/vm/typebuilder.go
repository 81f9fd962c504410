package vm

import (
	"github.com/lattice-lang/lattice/internal/ident"
	"github.com/lattice-lang/lattice/internal/value"
)

// TypeBuilder accumulates a host type's field getters and instance methods
// during a RegisterType call. A field registered through FieldFn is keyed
// by its string name rather than a pre-computed hash, since the GET/SET
// protocols dispatch on a runtime key value (the script wrote obj.start,
// not a hash literal); an instance method registered through InstFn is
// keyed by whatever hash the caller names it under — almost always a
// reserved protocol hash (ProtocolIntoIter, ProtocolAdd, ...) or
// ident.Of("methodName") for an arbitrary named method.
type TypeBuilder struct {
	engine   *Engine
	typeHash ident.Hash
	fields   map[ident.Hash]map[string]CallFn
}

func newTypeBuilder(e *Engine, typeHash ident.Hash) *TypeBuilder {
	return &TypeBuilder{
		engine:   e,
		typeHash: typeHash,
		fields:   make(map[ident.Hash]map[string]CallFn),
	}
}

// FieldFn registers fn as the handler for the named field under protocol
// (almost always ProtocolGet, occasionally ProtocolSet). Every field
// registered under the same protocol shares one composed instance
// function that dispatches on the field-name argument at call time, since
// the registry only ever keys on (type hash, protocol hash) — not on the
// field name itself.
func (b *TypeBuilder) FieldFn(protocol ident.Hash, name string, fn CallFn) *TypeBuilder {
	if b.fields[protocol] == nil {
		b.fields[protocol] = make(map[string]CallFn)
	}
	b.fields[protocol][name] = fn

	return b
}

// InstFn registers fn directly as the instance function named by hash —
// a reserved protocol hash to overload an operator, or ident.Of(name) for
// an arbitrary method a script can call by name.
func (b *TypeBuilder) InstFn(hash ident.Hash, fn CallFn) *TypeBuilder {
	b.engine.RegisterInstFn(b.typeHash, hash, fn)

	return b
}

// flush composes one dispatcher CallFn per protocol accumulated via
// FieldFn and registers each with the engine. Called once, after install
// returns, by RegisterType.
func (b *TypeBuilder) flush() {
	for protocol, byName := range b.fields {
		b.engine.RegisterInstFn(b.typeHash, protocol, fieldDispatcher(byName))
	}
}

// fieldDispatcher composes the field-name -> CallFn map registered under
// one protocol into a single CallFn: it expects (receiver, key) args,
// extracts key as a field name, and forwards to the matching field's fn.
func fieldDispatcher(byName map[string]CallFn) CallFn {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, value.NewPanic("field dispatch expects exactly (receiver, key)")
		}

		name, err := fieldKeyName(args[1])
		if err != nil {
			return nil, err
		}

		fn, ok := byName[name]
		if !ok {
			return nil, value.NewPanic("no field registered for " + name)
		}

		return fn(args)
	}
}

// fieldKeyName extracts a field name string from a GET/SET protocol's key
// argument, which the evaluator always passes as an interned or owned
// string.
func fieldKeyName(v value.Value) (string, error) {
	switch s := v.(type) {
	case value.StaticString:
		return s.Value(), nil
	case *value.String:
		return s.Value(), nil
	default:
		return "", value.NewExpectedType("string", v.Type())
	}
}
