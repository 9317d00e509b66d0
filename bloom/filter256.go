package bloom

// Filter256 is an optional four-lane variant of Filter for trees deep
// enough that a single 64-bit word saturates too quickly. Each insert
// selects one of four lanes from one hash slice and sets two bits in
// that lane from two further, disjoint hash slices. It is never stored
// per node by package domtree — matching always uses the 64-bit Filter —
// but is available for callers who need a lower false-positive rate at
// the cost of four times the memory.
type Filter256 [4]uint64

// Add inserts hash h into the filter.
func (f *Filter256) Add(h uint32) {
	lane := (h >> 24) & 3
	bit1 := h & 63
	bit2 := (h >> 16) & 63
	f[lane] |= uint64(1)<<bit1 | uint64(1)<<bit2
}

// MightContain reports whether h may have been added.
func (f Filter256) MightContain(h uint32) bool {
	lane := (h >> 24) & 3
	want := uint64(1)<<(h&63) | uint64(1)<<((h>>16)&63)
	return f[lane]&want == want
}

// ToCompact ORs all four lanes into a single 64-bit Filter, trading the
// lower false-positive rate of the four-lane layout for a representation
// that takes up the same space as the per-node filter domtree stores.
func (f Filter256) ToCompact() Filter {
	return Filter(f[0] | f[1] | f[2] | f[3])
}
