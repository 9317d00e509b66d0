package bloom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/bloom"
)

func TestAddThenMightContainIsAlwaysTrue(t *testing.T) {
	var f bloom.Filter
	hashes := []uint32{
		atom.HashString("container"),
		atom.HashString("item"),
		atom.HashString("x"),
	}
	for _, h := range hashes {
		f.Add(h)
	}
	for _, h := range hashes {
		assert.True(t, f.MightContain(h), "no false negatives permitted")
	}
}

func TestEmptyContainsNothing(t *testing.T) {
	f := bloom.Empty()
	assert.True(t, f.IsEmpty())
	assert.False(t, f.MightContain(atom.HashString("container")))
}

func TestSingle(t *testing.T) {
	h := atom.HashString("container")
	f := bloom.Single(h)
	assert.True(t, f.MightContain(h))
}

func TestUnion(t *testing.T) {
	a := bloom.Single(atom.HashString("a"))
	b := bloom.Single(atom.HashString("b"))
	u := a.Union(b)
	assert.True(t, u.MightContain(atom.HashString("a")))
	assert.True(t, u.MightContain(atom.HashString("b")))
}

func TestPopcountBounds(t *testing.T) {
	var f bloom.Filter
	assert.Equal(t, 0, f.Popcount())
	f.Add(atom.HashString("container"))
	assert.LessOrEqual(t, f.Popcount(), 3)
	assert.GreaterOrEqual(t, f.Popcount(), 1)
}

func TestFPRateBoundedForThreeItems(t *testing.T) {
	rate := bloom.FPRate(3)
	assert.Less(t, rate, 0.02, "estimated FP rate for ~3 items should be under 2%%")
}

func TestFilter256ToCompact(t *testing.T) {
	var f256 bloom.Filter256
	h := atom.HashString("container")
	f256.Add(h)
	assert.True(t, f256.MightContain(h))
	compact := f256.ToCompact()
	assert.False(t, compact.IsEmpty())
	assert.LessOrEqual(t, compact.Popcount(), 2)
}

func TestBloomNeverUsedHashMostlyAbsent(t *testing.T) {
	var f bloom.Filter
	for _, kw := range []string{"container", "item", "wrapper"} {
		f.Add(atom.HashString(kw))
	}
	// "never-used" is very unlikely to collide with 3 real entries in a
	// 64-bit filter, where a handful of entries should stay under 2% FP rate.
	assert.False(t, f.MightContain(atom.HashString("never-used")))
}
