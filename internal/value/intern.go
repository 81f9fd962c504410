package value

import "sync"

// internTable deduplicates StaticString handles so that two Lattice
// literals with the same text always share one backing *string — pointer
// equality on the handle is a valid fast-path identity check, matching the
// owned-vs-&'static-str split documented in original_source's string.rs.
var internTable = struct {
	mu sync.RWMutex
	m  map[string]*string
}{m: make(map[string]*string)}

// Intern returns the canonical StaticString for s, interning it on first
// use.
func Intern(s string) StaticString {
	internTable.mu.RLock()
	handle, ok := internTable.m[s]
	internTable.mu.RUnlock()
	if ok {
		return StaticString{handle: handle}
	}

	internTable.mu.Lock()
	defer internTable.mu.Unlock()

	if handle, ok := internTable.m[s]; ok {
		return StaticString{handle: handle}
	}

	cp := s
	internTable.m[s] = &cp

	return StaticString{handle: &cp}
}

// SameHandle reports whether two StaticStrings share the same interned
// backing pointer — a cheap identity check distinct from value equality.
func SameHandle(a, b StaticString) bool {
	return a.handle == b.handle
}
