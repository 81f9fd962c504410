package value

import (
	"fmt"
	"strings"

	"github.com/lattice-lang/lattice/internal/ident"
)

// PayloadKind distinguishes the three shapes a Variant's data can take,
// grounded on original_source's variant.rs Empty/Tuple/Struct cases.
type PayloadKind byte

const (
	// PayloadEmpty marks a unit-like variant carrying no data.
	PayloadEmpty PayloadKind = iota
	// PayloadTuple marks a variant carrying positional fields.
	PayloadTuple
	// PayloadStruct marks a variant carrying named fields.
	PayloadStruct
)

// Rtti is the runtime type information shared by every instance of one ADT
// variant: its enclosing type's identity, its own variant identity, and
// its display name. Two Variants are the same "case" iff their Rtti
// hashes match — Rtti itself carries no payload.
type Rtti struct {
	TypeHash    ident.Hash
	VariantHash ident.Hash
	Name        string
}

// Variant is one instance of an algebraic data type: an Rtti tag plus a
// payload in one of the three PayloadKind shapes. Grounded on
// original_source's runtime/variant.rs; the teacher has no analog since
// Nix has no enum/ADT construct.
type Variant struct {
	rtti   *Rtti
	kind   PayloadKind
	tuple  []Value
	object *Object
}

func (*Variant) Type() Type { return TypeVariant }

func (v *Variant) String() string {
	switch v.kind {
	case PayloadEmpty:
		return v.rtti.Name
	case PayloadTuple:
		parts := make([]string, len(v.tuple))
		for i, e := range v.tuple {
			parts[i] = e.String()
		}

		return fmt.Sprintf("%s(%s)", v.rtti.Name, strings.Join(parts, ", "))
	case PayloadStruct:
		return fmt.Sprintf("%s %s", v.rtti.Name, v.object.String())
	default:
		return v.rtti.Name
	}
}

// Rtti returns the variant's runtime type tag.
func (v *Variant) Rtti() *Rtti { return v.rtti }

// Kind reports the variant's payload shape.
func (v *Variant) Kind() PayloadKind { return v.kind }

// TupleFields returns the positional payload; only meaningful when
// Kind() == PayloadTuple.
func (v *Variant) TupleFields() []Value { return append([]Value(nil), v.tuple...) }

// StructFields returns the named payload; only meaningful when
// Kind() == PayloadStruct.
func (v *Variant) StructFields() *Object { return v.object }

// structuralEq compares two Variants without going through a user-defined
// eq protocol: same Rtti, then payload compared element-wise. A
// protocol-mediated comparison (honoring an overloaded eq on the type)
// belongs to pkg/vm's protocol caller instead, which falls back to this
// when no override is registered.
//
// Comparing across two different enum types (mismatched TypeHash) is
// undefined at the contract level — the original implementation
// debug_asserts enum_hash equality here rather than checking it at
// runtime. assertSameEnum reproduces that as a panic, since Go has no
// separate debug/release build mode to gate it behind.
func (v *Variant) structuralEq(other *Variant) bool {
	assertSameEnum(v, other)

	if v.rtti.VariantHash != other.rtti.VariantHash {
		return false
	}

	switch v.kind {
	case PayloadEmpty:
		return true
	case PayloadTuple:
		if len(v.tuple) != len(other.tuple) {
			return false
		}
		for i := range v.tuple {
			if !Eq(v.tuple[i], other.tuple[i]) {
				return false
			}
		}

		return true
	case PayloadStruct:
		return v.object.eq(other.object)
	default:
		return false
	}
}

// assertSameEnum panics if v and other belong to different enum types.
// Comparing variants of unrelated ADTs is a caller bug, not a runtime
// condition a script can trigger through normal match/eq use — every
// Variant compared against another reaches here already knowing it's the
// same declared type, the way the original runtime's debug_assert_eq! on
// enum_hash expects.
func assertSameEnum(v, other *Variant) {
	if v.rtti.TypeHash != other.rtti.TypeHash {
		panic("value: cannot compare variants of different enum types")
	}
}

// cmpWith performs the structural three-way ordering comparison used when
// no protocol override is registered, per the contract: if the two
// variants' VariantHash differs, order falls back to comparing the hashes
// themselves (giving every pair of cases a total, deterministic order);
// if the hashes match, the payload is compared positionally (tuple) or in
// declared field order (struct).
func (v *Variant) cmpWith(other *Variant) (int, error) {
	assertSameEnum(v, other)

	if v.rtti.VariantHash != other.rtti.VariantHash {
		if v.rtti.VariantHash < other.rtti.VariantHash {
			return -1, nil
		}

		return 1, nil
	}

	switch v.kind {
	case PayloadEmpty:
		return 0, nil
	case PayloadTuple:
		if len(v.tuple) != len(other.tuple) {
			return 0, NewPanic("cannot compare same-case variants with different arity")
		}
		for i := range v.tuple {
			c, err := Compare(v.tuple[i], other.tuple[i])
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return c, nil
			}
		}

		return 0, nil
	case PayloadStruct:
		return v.object.cmpWith(other.object)
	default:
		return 0, NewPanic("variant has no comparable payload shape")
	}
}

// partialCmpWith is cmpWith's fallible counterpart: a payload that cannot
// be structurally ordered (e.g. a field holding a Function) yields
// ok=false rather than an error, matching the spec's split between a
// partial (Option-returning) and total (panicking) three-way compare.
func (v *Variant) partialCmpWith(other *Variant) (c int, ok bool) {
	c, err := v.cmpWith(other)

	return c, err == nil
}

// VariantBuilder fluently constructs a Variant. It adapts the teacher's
// pkg/derivation fluent-builder idiom (SetX().SetY().Build()) to ADT
// construction rather than Nix derivation assembly.
type VariantBuilder struct {
	rtti   *Rtti
	kind   PayloadKind
	tuple  []Value
	object *Object
}

// NewVariantBuilder starts building an instance of the case described by
// rtti, defaulting to the empty payload shape.
func NewVariantBuilder(rtti *Rtti) *VariantBuilder {
	return &VariantBuilder{rtti: rtti, kind: PayloadEmpty}
}

// Tuple sets the builder to produce a tuple-shaped variant with the given
// positional fields.
func (b *VariantBuilder) Tuple(fields ...Value) *VariantBuilder {
	b.kind = PayloadTuple
	b.tuple = append([]Value(nil), fields...)

	return b
}

// Field sets a single named field, switching the builder to struct shape.
func (b *VariantBuilder) Field(name string, val Value) *VariantBuilder {
	b.kind = PayloadStruct
	if b.object == nil {
		b.object = NewObject()
	}
	_ = b.object.Set(name, val)

	return b
}

// Build finalizes the Variant.
func (b *VariantBuilder) Build() *Variant {
	return &Variant{rtti: b.rtti, kind: b.kind, tuple: b.tuple, object: b.object}
}
