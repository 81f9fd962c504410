package value

import "fmt"

// String is a mutable, growable string value, held behind a Shared cell so
// in-place mutation (push, truncate) is visible to every other holder of
// the same handle. Use StaticString instead for read-only interned text.
type String struct {
	cell *Shared[[]byte]
}

// NewString builds a String value from initial content.
func NewString(s string) *String {
	return &String{cell: NewShared([]byte(s))}
}

func (*String) Type() Type { return TypeString }

func (s *String) String() string {
	return fmt.Sprintf("%q", string(s.cell.Peek()))
}

// Value returns a snapshot of the current contents.
func (s *String) Value() string {
	return string(s.cell.Peek())
}

// Push appends to the string under an exclusive borrow.
func (s *String) Push(suffix string) error {
	g, err := s.cell.BorrowMut()
	if err != nil {
		return err
	}
	defer g.Release()

	*g.Get() = append(*g.Get(), suffix...)

	return nil
}

// Len returns the byte length under a shared borrow.
func (s *String) Len() (int, error) {
	g, err := s.cell.Borrow()
	if err != nil {
		return 0, err
	}
	defer g.Release()

	return len(*g.Get()), nil
}

func (s *String) eq(other *String) bool {
	return s.Value() == other.Value()
}

// BorrowBytes exposes the raw backing buffer under a shared borrow, for
// pkg/reflect's unsafe conversion path — callers must Release the guard
// and must not retain the pointer past that call.
func (s *String) BorrowBytes() (Ref[[]byte], error) {
	return s.cell.Borrow()
}

// BorrowBytesMut exposes the raw backing buffer under an exclusive borrow.
func (s *String) BorrowBytesMut() (Mut[[]byte], error) {
	return s.cell.BorrowMut()
}

// Bytes is a mutable byte-buffer value, distinct from String: Bytes holds
// arbitrary binary data with no UTF-8 obligation, matching the spec's
// first-class byte-string case.
type Bytes struct {
	cell *Shared[[]byte]
}

// NewBytes builds a Bytes value from initial content.
func NewBytes(b []byte) *Bytes {
	buf := make([]byte, len(b))
	copy(buf, b)

	return &Bytes{cell: NewShared(buf)}
}

func (*Bytes) Type() Type { return TypeBytes }

func (b *Bytes) String() string {
	return fmt.Sprintf("b%q", string(b.cell.Peek()))
}

// Value returns a snapshot of the current contents.
func (b *Bytes) Value() []byte {
	v := b.cell.Peek()
	out := make([]byte, len(v))
	copy(out, v)

	return out
}

// BorrowBytes exposes the raw backing buffer under a shared borrow.
func (b *Bytes) BorrowBytes() (Ref[[]byte], error) {
	return b.cell.Borrow()
}

// BorrowBytesMut exposes the raw backing buffer under an exclusive borrow.
func (b *Bytes) BorrowBytesMut() (Mut[[]byte], error) {
	return b.cell.BorrowMut()
}

func (b *Bytes) eq(other *Bytes) bool {
	av, bv := b.Value(), other.Value()
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}

	return true
}
