// Package value provides the runtime value system for the Lattice
// embedded scripting language.
//
// This package defines every Value case a Lattice script can produce or
// hold. Unlike a purely immutable value system, composite cases (String,
// Bytes, Vec, Object) carry interior mutability through a Shared cell with
// dynamic borrow tracking: any number of concurrent shared borrows, or
// exactly one exclusive borrow, never both — violations return a BorrowErr
// rather than deadlocking or silently racing.
//
// Core Design Principles:
//
// Tagged Union:
//
//	Every case implements the Value interface, providing type
//	discrimination through Type() and display through String().
//
// Borrow-Checked Interior Mutability:
//
//	Shared[T] enforces the shared/exclusive borrow rule at runtime. Ref and
//	Mut are scope-bound guards meant to be released before their
//	originating call frame returns; OwnedRef and OwnedMut are the
//	store-and-pass-around equivalents with idempotent release.
//
// Structural Equality:
//
//	Eq implements non-protocol structural equality: primitives compare by
//	bit value, composites compare element-wise, and a user-overloaded eq on
//	a Variant is the protocol caller's concern (pkg/vm), not this package's.
//
// Value Cases:
//
// Primitive (inline, no Shared cell):
//   - Unit, Bool, Byte, Char, Integer, Float, StaticString
//
// Composite (behind Shared):
//   - String, Bytes, Vec, Object
//
// Fixed-shape (no mutation, no Shared cell):
//   - Tuple
//
// Sum types:
//   - Option, Result, Variant (an ADT instance tagged by Rtti)
//
// Other:
//   - Range (integer spans with a three-shape iterator contract),
//     Function (closures and builtins), Any (opaque host values)
//
// The Environment interface provides lexical-scoping variable bindings for
// closures, unchanged in shape from a conventional tree-walking
// interpreter's environment chain.
package value
