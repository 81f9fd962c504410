// Package ident implements the deterministic 64-bit hash scheme used to
// address types, functions, instance methods and structural keys throughout
// the Lattice runtime. Every downstream layer treats a Hash as an opaque
// identity token; nothing about its internal structure leaks past this
// package.
package ident

import (
	"github.com/cespare/xxhash/v2"
)

// Hash is an opaque 64-bit identifier for a type, function, instance
// method, or structural key. Two Hash values are equal iff the thing they
// name is the same, by construction of the keyspace tags below.
type Hash uint64

// GLOBAL_MODULE is the single published well-known constant: the root
// module every top-level path implicitly hangs off of.
const GLOBAL_MODULE Hash = 0

// Keyspace tags separate the hash domains so that, e.g., a type named "get"
// can never collide with the "get" protocol's instance-function hash. Each
// tag is hashed as the first byte of input.
const (
	tagType             byte = 1
	tagInstanceFunction byte = 3
	tagObjectKeys       byte = 4
	tagTupleMatch       byte = 5
)

// sep separates path elements and object keys within a single hash input.
// Using a byte outside the ASCII identifier range (0x7f, DEL) means no
// legal path segment or object key can ever forge a fake separator.
const sep = 0x7f

// digest is a tiny wrapper around xxhash.Digest so call sites never import
// cespare/xxhash directly — the algorithm stays swappable behind this one
// seam, the way internal/value hides its own representation behind the
// Value interface.
type digest struct {
	h *xxhash.Digest
}

func newDigest() digest {
	return digest{h: xxhash.New()}
}

func (d digest) writeByte(b byte) {
	d.h.Write([]byte{b})
}

func (d digest) writeString(s string) {
	d.h.WriteString(s)
}

func (d digest) sum() Hash {
	return Hash(d.h.Sum64())
}

// Of hashes a single string (a name) with xxhash. The other constructors in
// this package do not call it: each builds its own tagged input through a
// digest.
func Of(thing string) Hash {
	return Hash(xxhash.Sum64String(thing))
}

// OfType hashes a qualified path as a type identity: TYPE tag, then each
// path segment followed by sep.
//
//	OfType([]string{"std", "ops", "Range"})
func OfType(path []string) Hash {
	d := newDigest()
	d.writeByte(tagType)
	for _, seg := range path {
		d.writeString(seg)
		d.writeByte(sep)
	}

	return d.sum()
}

// Function hashes a qualified function path. Its byte layout is identical
// to OfType: functions and types share the TYPE keyspace. This is
// intentional, not a bug — see DESIGN.md's Open Question resolution. The
// collaborator compiler is responsible for rejecting name clashes between a
// type and a function at the same path; this package only supplies the
// identity, not the uniqueness check.
func Function(path []string) Hash {
	return OfType(path)
}

// TupleMatch hashes a path for match-against-tuple-variant dispatch.
func TupleMatch(path []string) Hash {
	d := newDigest()
	d.writeByte(tagTupleMatch)
	for _, seg := range path {
		d.writeString(seg)
		d.writeByte(sep)
	}

	return d.sum()
}

// ObjectKeys hashes an ordered list of object keys. Ordering matters — it
// mirrors the Object's insertion order — so callers must not sort keys
// before calling this.
func ObjectKeys(keys []string) Hash {
	d := newDigest()
	d.writeByte(tagObjectKeys)
	for _, k := range keys {
		d.writeByte(sep)
		d.writeString(k)
	}

	return d.sum()
}

// InstanceFunction hashes the identity of a named method on a type:
// Of((INSTANCE_FUNCTION, type_hash, SEP, name_hash)).
func InstanceFunction(typeHash, nameHash Hash) Hash {
	d := newDigest()
	d.writeByte(tagInstanceFunction)
	writeHash(d, typeHash)
	d.writeByte(sep)
	writeHash(d, nameHash)

	return d.sum()
}

func writeHash(d digest, h Hash) {
	var buf [8]byte
	v := uint64(h)
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	d.h.Write(buf[:])
}
