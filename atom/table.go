package atom

import (
	"errors"
	"fmt"

	"github.com/kestrelcss/engine/maybe"
)

// AtomId is a stable 32-bit identifier for an interned byte string.
// The zero value, Null, denotes "absent string" — it is never returned
// for a successfully interned non-empty string.
type AtomId uint32

// Null is the reserved id meaning "absent string".
const Null AtomId = 0

// maxStringLen is the largest number of bytes a single atom may hold.
const maxStringLen = 65535

// ErrStringTooLong is returned by Intern when the input is longer than
// 65535 bytes.
var ErrStringTooLong = errors.New("atom: string exceeds 65535 bytes")

// entry is a dense record indexing into the byte arena. Entry 0 is a
// reserved sentinel and is never populated with real data.
type entry struct {
	hash   uint32
	offset uint32
	length uint16
	next   AtomId // next entry in this bucket's chain, or Null
}

// Table interns byte strings into AtomIds. The zero value is not usable;
// construct one with NewTable.
type Table struct {
	buckets []AtomId // power-of-two sized; holds the head of each chain
	entries []entry  // entries[0] is the sentinel
	arena   []byte   // all interned bytes, end-to-end
	count   int      // number of real (non-sentinel) entries
}

// NewTable creates an empty atom table with a small initial bucket array.
func NewTable() *Table {
	t := &Table{
		buckets: make([]AtomId, 16),
		entries: make([]entry, 1, 64), // entries[0] = sentinel
		arena:   make([]byte, 0, 1024),
	}
	return t
}

// Intern maps b to a stable AtomId, creating a new entry if b has not
// been seen by this table before. Empty input returns Null. Inputs
// longer than 65535 bytes fail with ErrStringTooLong.
func (t *Table) Intern(b []byte) (AtomId, error) {
	if len(b) == 0 {
		return Null, nil
	}
	if len(b) > maxStringLen {
		return Null, fmt.Errorf("%w: got %d bytes", ErrStringTooLong, len(b))
	}
	h := Hash(b)
	bucket := h & uint32(len(t.buckets)-1)
	for id := t.buckets[bucket]; id != Null; id = t.entries[id].next {
		e := &t.entries[id]
		if e.hash == h && t.bytesEqual(*e, b) {
			return id, nil
		}
	}
	id := AtomId(len(t.entries))
	offset := uint32(len(t.arena))
	t.arena = append(t.arena, b...)
	t.entries = append(t.entries, entry{hash: h, offset: offset, length: uint16(len(b)), next: t.buckets[bucket]})
	t.buckets[bucket] = id
	t.count++
	if t.count*4 >= len(t.buckets)*3 {
		t.rehash()
	}
	return id, nil
}

// InternString is a convenience wrapper around Intern for string input.
func (t *Table) InternString(s string) (AtomId, error) {
	return t.Intern([]byte(s))
}

func (t *Table) bytesEqual(e entry, b []byte) bool {
	if int(e.length) != len(b) {
		return false
	}
	arena := t.arena[e.offset : e.offset+uint32(e.length)]
	for i := range b {
		if arena[i] != b[i] {
			return false
		}
	}
	return true
}

// rehash doubles the bucket array and re-links every entry without
// touching the byte arena — ids and stored bytes never move.
func (t *Table) rehash() {
	newBuckets := make([]AtomId, len(t.buckets)*2)
	mask := uint32(len(newBuckets) - 1)
	for id := 1; id < len(t.entries); id++ {
		e := &t.entries[id]
		b := e.hash & mask
		e.next = newBuckets[b]
		newBuckets[b] = AtomId(id)
	}
	tracer().Debugf("atom: rehashing, capacity %d -> %d", len(t.buckets), len(newBuckets))
	t.buckets = newBuckets
}

// StringOf returns the bytes originally interned for id, or Nothing for
// the null id or an out-of-range id.
func (t *Table) StringOf(id AtomId) maybe.Maybe[[]byte] {
	if id == Null || int(id) >= len(t.entries) {
		return maybe.Nothing[[]byte]()
	}
	e := t.entries[id]
	out := make([]byte, e.length)
	copy(out, t.arena[e.offset:e.offset+uint32(e.length)])
	return maybe.Just(out)
}

// HashOf returns the FNV-1a hash of the bytes stored under id, or 0 for
// the null id or an out-of-range id.
func (t *Table) HashOf(id AtomId) uint32 {
	if id == Null || int(id) >= len(t.entries) {
		return 0
	}
	return t.entries[id].hash
}

// Count returns the number of distinct non-null strings interned so far.
func (t *Table) Count() int {
	return t.count
}
