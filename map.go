package ccbor

import (
	"bytes"
	"sort"
	"sync/atomic"
)

// mapEntry holds one map slot: the encoded key bytes (used for
// ordering and equality, spec 4.D), the original key Value, and the
// associated value Value.
type mapEntry struct {
	encKey []byte
	key    Value
	val    Value
}

// mapStorage is the shared, reference-counted backing store for a
// Map. Entries are always kept sorted by encKey in strictly ascending
// lexicographic order (RFC 8949 §4.2.3), which is also the order the
// encoder writes them in, so encoding a Map is a single linear pass.
type mapStorage struct {
	entries []mapEntry
	refs    int32
}

// Map is an ordered collection of CBOR key/value pairs (spec 4.D). It
// uses copy-on-write semantics: Clone is O(1) and shares storage with
// the original until one of them is mutated, at which point the
// mutator takes a private copy. This mirrors the teacher's
// reference-counted buffer pattern, generalized from bytes to map
// entries.
type Map struct {
	s *mapStorage
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{s: &mapStorage{refs: 1}}
}

// Clone returns a Map sharing m's storage until either is mutated.
func (m *Map) Clone() *Map {
	atomic.AddInt32(&m.s.refs, 1)
	return &Map{s: m.s}
}

// ensureUnique gives m a private, exclusively-owned storage block,
// copying entries only if storage is currently shared (refs > 1).
func (m *Map) ensureUnique() {
	if atomic.LoadInt32(&m.s.refs) == 1 {
		return
	}
	entries := make([]mapEntry, len(m.s.entries))
	copy(entries, m.s.entries)
	atomic.AddInt32(&m.s.refs, -1)
	m.s = &mapStorage{entries: entries, refs: 1}
}

// Count reports the number of entries in m.
func (m *Map) Count() int { return len(m.s.entries) }

func (m *Map) search(encKey []byte) (int, bool) {
	entries := m.s.entries
	i := sort.Search(len(entries), func(i int) bool {
		return bytes.Compare(entries[i].encKey, encKey) >= 0
	})
	if i < len(entries) && bytes.Equal(entries[i].encKey, encKey) {
		return i, true
	}
	return i, false
}

// Insert sets key's associated value to val, replacing any existing
// entry for an equal key (spec 4.D: insert(m, k, v)). key is encoded
// once to determine its sort position; encoding is deterministic, so
// two equal keys always land at the same position.
func (m *Map) Insert(key, val Value) error {
	encKey, err := Encode(key)
	if err != nil {
		return err
	}
	m.ensureUnique()
	i, found := m.search(encKey)
	if found {
		m.s.entries[i].val = val
		return nil
	}
	m.s.entries = append(m.s.entries, mapEntry{})
	copy(m.s.entries[i+1:], m.s.entries[i:])
	m.s.entries[i] = mapEntry{encKey: encKey, key: key, val: val}
	return nil
}

// Remove deletes the entry for key, if present (spec 4.D: remove(m, k)).
func (m *Map) Remove(key Value) error {
	encKey, err := Encode(key)
	if err != nil {
		return err
	}
	i, found := m.search(encKey)
	if !found {
		return nil
	}
	m.ensureUnique()
	// ensureUnique may have been based on a stale index if storage was
	// just copied; re-search against the now-private entries.
	i, found = m.search(encKey)
	if !found {
		return nil
	}
	m.s.entries = append(m.s.entries[:i], m.s.entries[i+1:]...)
	return nil
}

// Get returns the value associated with key, if present.
func (m *Map) Get(key Value) (Value, bool, error) {
	encKey, err := Encode(key)
	if err != nil {
		return Value{}, false, err
	}
	i, found := m.search(encKey)
	if !found {
		return Value{}, false, nil
	}
	return m.s.entries[i].val, true, nil
}

// Range calls fn for every entry in ascending encoded-key order,
// stopping early if fn returns false.
func (m *Map) Range(fn func(key, val Value) bool) {
	for _, e := range m.s.entries {
		if !fn(e.key, e.val) {
			return
		}
	}
}

// insertNext appends an entry known to sort after every existing
// entry, used by the decoder which reads map entries in wire order
// and must verify (not compute) that order is strictly ascending
// (spec 4.F). It reports an error if encKey does not sort strictly
// after the last entry already present.
func (m *Map) insertNext(encKey []byte, key, val Value) error {
	m.ensureUnique()
	if n := len(m.s.entries); n > 0 {
		cmp := bytes.Compare(m.s.entries[n-1].encKey, encKey)
		if cmp == 0 {
			return newErr(DuplicateMapKey, "")
		}
		if cmp > 0 {
			return newErr(MisorderedMapKey, "")
		}
	}
	m.s.entries = append(m.s.entries, mapEntry{encKey: encKey, key: key, val: val})
	return nil
}

// equal reports whether two maps hold the same entries in the same
// order, comparing by encoded key bytes and by value equality — the
// same comparison a deterministic encoder's output would satisfy.
func (m *Map) equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.s.entries) != len(other.s.entries) {
		return false
	}
	for i := range m.s.entries {
		a, b := m.s.entries[i], other.s.entries[i]
		if !bytes.Equal(a.encKey, b.encKey) || !a.val.Equal(b.val) {
			return false
		}
	}
	return true
}
