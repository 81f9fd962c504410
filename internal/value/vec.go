package value

import (
	"fmt"
	"strings"
)

// Vec is a growable, ordered sequence of Values, held behind a Shared cell
// for interior mutability. Analogous to the teacher's List, renamed and
// generalized per the spec's fuller Value case list.
type Vec struct {
	cell *Shared[[]Value]
}

// NewVec builds a Vec value from initial elements.
func NewVec(elems ...Value) *Vec {
	buf := append([]Value(nil), elems...)

	return &Vec{cell: NewShared(buf)}
}

func (*Vec) Type() Type { return TypeVec }

func (v *Vec) String() string {
	elems := v.cell.Peek()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// Len returns the element count under a shared borrow.
func (v *Vec) Len() (int, error) {
	g, err := v.cell.Borrow()
	if err != nil {
		return 0, err
	}
	defer g.Release()

	return len(*g.Get()), nil
}

// Get returns the element at i under a shared borrow.
func (v *Vec) Get(i int) (Value, error) {
	g, err := v.cell.Borrow()
	if err != nil {
		return nil, err
	}
	defer g.Release()

	elems := *g.Get()
	if i < 0 || i >= len(elems) {
		return nil, NewPanic(fmt.Sprintf("vec index %d out of range (len %d)", i, len(elems)))
	}

	return elems[i], nil
}

// Push appends elem under an exclusive borrow.
func (v *Vec) Push(elem Value) error {
	g, err := v.cell.BorrowMut()
	if err != nil {
		return err
	}
	defer g.Release()

	*g.Get() = append(*g.Get(), elem)

	return nil
}

// Elements returns a snapshot of the current elements.
func (v *Vec) Elements() []Value {
	return append([]Value(nil), v.cell.Peek()...)
}

// BorrowElements exposes the raw backing slice under a shared borrow, for
// pkg/reflect's unsafe conversion path.
func (v *Vec) BorrowElements() (Ref[[]Value], error) {
	return v.cell.Borrow()
}

// BorrowElementsMut exposes the raw backing slice under an exclusive borrow.
func (v *Vec) BorrowElementsMut() (Mut[[]Value], error) {
	return v.cell.BorrowMut()
}

func (v *Vec) eq(other *Vec) bool {
	a, b := v.Elements(), other.Elements()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Eq(a[i], b[i]) {
			return false
		}
	}

	return true
}

// Tuple is a fixed-arity, immutable sequence of Values. Unlike Vec it
// never mutates after construction, so it needs no Shared cell — matching
// the spec's distinction between a growable Vec and a fixed-shape Tuple.
type Tuple struct {
	elems []Value
}

// NewTuple builds a Tuple from its fixed elements.
func NewTuple(elems ...Value) *Tuple {
	return &Tuple{elems: append([]Value(nil), elems...)}
}

func (*Tuple) Type() Type { return TypeTuple }

func (t *Tuple) String() string {
	parts := make([]string, len(t.elems))
	for i, e := range t.elems {
		parts[i] = e.String()
	}

	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// Len returns the tuple's fixed arity.
func (t *Tuple) Len() int { return len(t.elems) }

// Get returns the element at i, panicking (as a Panic error, not a native
// panic) if out of range — a tuple's arity is part of its static shape, so
// an out-of-range access here indicates a compiler/caller bug.
func (t *Tuple) Get(i int) (Value, error) {
	if i < 0 || i >= len(t.elems) {
		return nil, NewPanic(fmt.Sprintf("tuple index %d out of range (arity %d)", i, len(t.elems)))
	}

	return t.elems[i], nil
}

// Elements returns the tuple's elements.
func (t *Tuple) Elements() []Value {
	return append([]Value(nil), t.elems...)
}

func (t *Tuple) eq(other *Tuple) bool {
	if len(t.elems) != len(other.elems) {
		return false
	}
	for i := range t.elems {
		if !Eq(t.elems[i], other.elems[i]) {
			return false
		}
	}

	return true
}
