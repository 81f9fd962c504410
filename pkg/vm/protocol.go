// Package vm implements the host-registration and protocol-dispatch layer
// sitting above internal/value: a permanent type/instance-function
// registry, an LRU inline cache in front of it for repeated-call hot
// paths, and the reserved protocol hashes the evaluator calls through for
// user-overloadable operators (GET, SET, iteration, arithmetic,
// comparison).
package vm

import "github.com/lattice-lang/lattice/internal/ident"

// Reserved protocol hashes. Every one of these is computed the same way a
// script-visible function name would be — Of(name) — so a user-registered
// type can override any of them by registering an instance function under
// the matching hash; there is no separate "operator overload" mechanism.
var (
	ProtocolGet      = ident.Of("GET")
	ProtocolSet      = ident.Of("SET")
	ProtocolIntoIter = ident.Of("INTO_ITER")
	ProtocolNext     = ident.Of("NEXT")
	ProtocolAdd      = ident.Of("ADD")
	ProtocolSub      = ident.Of("SUB")
	ProtocolMul      = ident.Of("MUL")
	ProtocolDiv      = ident.Of("DIV")
	ProtocolEq       = ident.Of("EQ")
	ProtocolCmp      = ident.Of("CMP")
)
