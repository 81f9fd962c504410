package value

import (
	"fmt"
	"strings"
)

// objectData is the mutable payload behind an Object's Shared cell: a map
// for lookup paired with an explicit key-order slice, since Go maps carry
// no iteration order and the spec requires insertion order to be
// observable (unlike the teacher's Attrs, which sorts keys for Nix's
// sake).
type objectData struct {
	keys   []string
	fields map[string]Value
}

// Object is an insertion-ordered string-keyed record, held behind a Shared
// cell for interior mutability.
type Object struct {
	cell *Shared[objectData]
}

// NewObject builds an empty Object.
func NewObject() *Object {
	return &Object{cell: NewShared(objectData{fields: make(map[string]Value)})}
}

func (*Object) Type() Type { return TypeObject }

func (o *Object) String() string {
	d := o.cell.Peek()
	parts := make([]string, len(d.keys))
	for i, k := range d.keys {
		parts[i] = fmt.Sprintf("%s: %s", k, d.fields[k].String())
	}

	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

// Get looks up key under a shared borrow.
func (o *Object) Get(key string) (Value, bool, error) {
	g, err := o.cell.Borrow()
	if err != nil {
		return nil, false, err
	}
	defer g.Release()

	v, ok := g.Get().fields[key]

	return v, ok, nil
}

// Set inserts or updates key under an exclusive borrow. New keys are
// appended to the end of the insertion order; updating an existing key
// leaves its position unchanged.
func (o *Object) Set(key string, val Value) error {
	g, err := o.cell.BorrowMut()
	if err != nil {
		return err
	}
	defer g.Release()

	d := g.Get()
	if _, exists := d.fields[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.fields[key] = val

	return nil
}

// Keys returns the field names in insertion order.
func (o *Object) Keys() []string {
	d := o.cell.Peek()

	return append([]string(nil), d.keys...)
}

// KeysHash returns the ident.ObjectKeys-compatible key list for structural
// object-shape identity, in insertion order as the spec requires.
func (o *Object) KeysHash() []string {
	return o.Keys()
}

func (o *Object) eq(other *Object) bool {
	a, b := o.cell.Peek(), other.cell.Peek()
	if len(a.keys) != len(b.keys) {
		return false
	}
	for _, k := range a.keys {
		bv, ok := b.fields[k]
		if !ok || !Eq(a.fields[k], bv) {
			return false
		}
	}

	return true
}

// cmpWith orders two objects by comparing fields in o's declared key
// order. Backs Variant.cmpWith's struct-payload case: two variant cases
// sharing a VariantHash always share a field set, so comparing in o's own
// key order is well-defined. Objects whose key sets differ are a Panic.
func (o *Object) cmpWith(other *Object) (int, error) {
	a, b := o.cell.Peek(), other.cell.Peek()
	if len(a.keys) != len(b.keys) {
		return 0, NewPanic("cannot compare objects with different fields")
	}
	for _, k := range a.keys {
		bv, ok := b.fields[k]
		if !ok {
			return 0, NewPanic("cannot compare objects with different fields")
		}
		c, err := Compare(a.fields[k], bv)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}

	return 0, nil
}
