// Package value implements the Lattice runtime's tagged-union Value type:
// the universe of data a script can hold, the Shared cell that gives
// composite values interior mutability with dynamic borrow tracking, and
// the algebraic-data-type Variant representation built on top of it.
package value

import (
	"fmt"
	"math"
	"strconv"
)

// Type tags every Value case. Primitive cases are stored inline in a Value;
// String, Bytes, Vec, Object, Option and Result hold a Shared cell.
type Type byte

const (
	TypeUnit Type = iota
	TypeBool
	TypeByte
	TypeChar
	TypeInteger
	TypeFloat
	TypeStaticString
	TypeString
	TypeBytes
	TypeVec
	TypeTuple
	TypeObject
	TypeRange
	TypeOption
	TypeResult
	TypeFunction
	TypeVariant
	TypeAny
)

var typeNames = [...]string{
	TypeUnit:         "unit",
	TypeBool:         "bool",
	TypeByte:         "byte",
	TypeChar:         "char",
	TypeInteger:      "integer",
	TypeFloat:        "float",
	TypeStaticString: "static string",
	TypeString:       "string",
	TypeBytes:        "bytes",
	TypeVec:          "vec",
	TypeTuple:        "tuple",
	TypeObject:       "object",
	TypeRange:        "range",
	TypeOption:       "option",
	TypeResult:       "result",
	TypeFunction:     "function",
	TypeVariant:      "variant",
	TypeAny:          "any",
}

func (t Type) String() string {
	if int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}

	return fmt.Sprintf("Type(%d)", byte(t))
}

// Value is the tagged union every Lattice script variable holds. Every
// case — primitive or composite — implements this interface. String,
// Bytes, Vec, Object, Option and Result additionally hold a *Shared cell
// (never embedding one directly); Tuple, Range, Variant and Function hold
// their data directly, with no Shared cell and no borrow tracking.
type Value interface {
	// Type reports which case of the union this Value is.
	Type() Type

	// String renders the value for display (REPL output, error messages).
	String() string
}

// Unit is the single value of the unit type — the result of statements and
// of operations with no meaningful return value.
type Unit struct{}

func (Unit) Type() Type     { return TypeUnit }
func (Unit) String() string { return "()" }

// Bool is a boolean primitive, stored inline.
type Bool bool

func (b Bool) Type() Type     { return TypeBool }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Byte is an 8-bit unsigned primitive, stored inline.
type Byte uint8

func (b Byte) Type() Type     { return TypeByte }
func (b Byte) String() string { return fmt.Sprintf("b'\\x%02x'", uint8(b)) }

// Char is a Unicode scalar primitive, stored inline.
type Char rune

func (c Char) Type() Type     { return TypeChar }
func (c Char) String() string { return fmt.Sprintf("'%c'", rune(c)) }

// Integer is a signed 64-bit primitive, stored inline.
type Integer int64

func (i Integer) Type() Type     { return TypeInteger }
func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is an IEEE-754 64-bit primitive, stored inline.
type Float float64

func (f Float) Type() Type     { return TypeFloat }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// StaticString is an interned, read-only string handle. It is backed by the
// interning table in intern.go rather than a Shared cell: static strings
// never mutate, so there is no borrow discipline to enforce.
type StaticString struct {
	handle *string
}

func (s StaticString) Type() Type     { return TypeStaticString }
func (s StaticString) String() string { return fmt.Sprintf("%q", *s.handle) }

// Value returns the interned string content.
func (s StaticString) Value() string { return *s.handle }

// Eq is the structural, non-protocol equality used where no user-defined
// eq must be invoked: primitives compare by bit value, composite
// containers compare element-wise, and distinct cases are always unequal.
// Variant equality that must honor user-overloaded operators is mediated
// by a protocol caller instead (see pkg/vm), not this function.
func Eq(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case Unit:
		return true
	case Bool:
		return av == b.(Bool)
	case Byte:
		return av == b.(Byte)
	case Char:
		return av == b.(Char)
	case Integer:
		return av == b.(Integer)
	case Float:
		return math.Float64bits(float64(av)) == math.Float64bits(float64(b.(Float)))
	case StaticString:
		return av.Value() == b.(StaticString).Value()
	case *String:
		return av.eq(b.(*String))
	case *Bytes:
		return av.eq(b.(*Bytes))
	case *Vec:
		return av.eq(b.(*Vec))
	case *Tuple:
		return av.eq(b.(*Tuple))
	case *Object:
		return av.eq(b.(*Object))
	case *Range:
		return av.eq(b.(*Range))
	case *Option:
		return av.eq(b.(*Option))
	case *Result:
		return av.eq(b.(*Result))
	case *Variant:
		return av.structuralEq(b.(*Variant))
	default:
		// Function and Any have no meaningful structural equality;
		// distinct handles are always unequal.
		return false
	}
}
