// Package eval provides the expression evaluator for Lattice's core value
// and call runtime.
//
// The evaluator is the final stage of the pipeline, taking an internal/ast
// tree from the parser and computing its runtime internal/value.Value. It
// implements lexical scoping, eager evaluation, recursive object literals,
// currying, pattern matching over variants, and every operator the
// language defines.
//
// Architecture:
//
// The evaluator uses a tree-walking approach with the following key
// components:
//   - Evaluator: main evaluation engine, holding the protocol registry and
//     caller that mediate script-overloadable operations
//   - Environment: lexical scoping and variable binding (internal/value)
//   - Value system: runtime representation of every Lattice value
//   - Built-in functions: the standard library bound into every global env
//
// The design follows the same separation of concerns across files:
//   - evaluator.go: core evaluation logic and AST traversal, object
//     literal two-pass resolution, inherit clauses, range construction
//   - operators.go: binary and unary operator implementations
//   - control_flow.go: if, let, with, assert, and pattern matching
//   - functions.go: function application, currying, field access, indexing
//   - builtins.go: the built-in function library
//
// Protocol dispatch:
//
// Equality, field access, and arithmetic are never hard-coded to a single
// behavior. Each routes through a pkg/vm.Caller: when the left-hand value
// is a *value.Variant, *value.Range or iterator value with a registered
// instance function for the relevant protocol hash, that function runs
// instead of the built-in structural behavior (Range's start/end fields
// are served this way). Every other Value case always falls through to
// the built-in fallback the evaluator supplies. A host embedding Lattice
// registers instance functions on the pkg/vm.Engine returned by
// Evaluator.Engine, or passed in with WithEngine, before running any
// script.
//
// Evaluation strategy:
//
//   - Function arguments are evaluated eagerly before application
//   - Multi-parameter closures curry one argument at a time; applying a
//     tuple of matching arity to a multi-parameter function destructures
//     it positionally instead, resolved by the runtime arity of the callee
//     rather than by the shape of the call-site AST
//   - Recursive object literals resolve literal bindings first so later
//     bindings (literal or not) may reference them
//   - Logical operators short-circuit
//
// Built-in functions:
//
// The standard library includes:
//   - Type predicates for every Value case: isUnit, isBool, isByte,
//     isChar, isInteger, isFloat, isString, isBytes, isVec, isTuple,
//     isObject, isRange, isOption, isResult, isVariant, isFunction
//   - Conversions: toString
//   - Vec operations: length, head, tail, push, elem
//   - Object operations: keys, values, hasField, getField
//   - Math: add, sub, mul, div
//   - Option/Result construction: Some, None, Ok, Err
//   - Range construction and iteration: range, rangeInclusive, rangeFrom,
//     toVec
//   - Generic variant construction, since the grammar has no enum
//     declaration: variantUnit, variantTuple, variantStruct
//
// Usage example:
//
//	l := lexer.New(`let x = 42; f = y: x + y; in f 8`)
//	p := parser.New(l)
//	tree, err := p.Parse()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	evaluator := eval.New()
//	result, err := evaluator.Eval(tree)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.String()) // Output: 50
package eval
