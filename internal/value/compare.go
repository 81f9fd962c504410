package value

import "strings"

// Compare performs the structural three-way ordering comparison used
// where no user-defined cmp must be invoked: Integer and Float compare
// numerically (with promotion when the two operands differ), strings
// compare lexicographically (StaticString or *String, either side), and
// every other combination is not structurally orderable. Variant ordering
// that must honor a user-overloaded cmp protocol is mediated by a
// protocol caller instead (see pkg/vm); this is its structural fallback,
// and also backs Variant's own payload-wise cmpWith.
func Compare(a, b Value) (int, error) {
	if af, ok := orderableFloat(a); ok {
		if bf, ok := orderableFloat(b); ok {
			switch {
			case af < bf:
				return -1, nil
			case af > bf:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}

	as, aok := orderableString(a)
	bs, bok := orderableString(b)
	if aok && bok {
		return strings.Compare(as, bs), nil
	}

	return 0, NewExpectedType("comparable value", a.Type())
}

// Cmp is the structural, non-protocol three-way comparison analogous to
// Eq: a *Variant orders via its own cmpWith (hash-ordering fallback, then
// positional/field payload comparison); every other case defers to
// Compare. Protocol-mediated comparison that must honor a user-overloaded
// cmp is mediated by pkg/vm's protocol caller instead, falling back to
// this when no override is registered.
func Cmp(a, b Value) (int, error) {
	if av, ok := a.(*Variant); ok {
		bv, ok := b.(*Variant)
		if !ok {
			return 0, NewExpectedType("variant", b.Type())
		}

		return av.cmpWith(bv)
	}

	return Compare(a, b)
}

func orderableFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case Integer:
		return float64(n), true
	case Float:
		return float64(n), true
	default:
		return 0, false
	}
}

func orderableString(v Value) (string, bool) {
	switch s := v.(type) {
	case StaticString:
		return s.Value(), true
	case *String:
		return s.Value(), true
	default:
		return "", false
	}
}
