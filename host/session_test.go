package host

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kestrel.host")
	defer teardown()

	s := NewSession()

	divAtom := s.InternString([]byte("div"))
	spanAtom := s.InternString([]byte("span"))
	require.GreaterOrEqual(t, divAtom, int64(0))
	require.GreaterOrEqual(t, spanAtom, int64(0))

	div := s.AddNode(uint32(divAtom), uint32(0))
	require.GreaterOrEqual(t, div, int64(0))

	classAtom := s.InternString([]byte("container"))
	require.Equal(t, int32(0), s.SetClasses(uint32(div), []uint32{uint32(classAtom)}))

	span := s.AddNode(uint32(spanAtom), uint32(div))
	require.GreaterOrEqual(t, span, int64(0))

	idAtom := s.InternString([]byte("hello"))
	text := s.CreateTextNode(uint32(span), []byte("hello"))
	require.GreaterOrEqual(t, text, int64(0))
	s.SetID(uint32(span), uint32(idAtom))

	hrefAtom := s.InternString([]byte("href"))
	s.AddAttribute(uint32(span), uint32(hrefAtom), []byte("/x"))

	selIdx := s.CompileSelector([]byte(".container span#hello"))
	require.GreaterOrEqual(t, selIdx, int64(0))

	assert.Equal(t, int32(1), s.MatchSelector(selIdx, uint32(span)))
	assert.Equal(t, int32(0), s.MatchSelector(selIdx, uint32(div)))
	assert.Equal(t, int32(-1), s.MatchSelector(selIdx+1, uint32(span)))
}

func TestSessionMatchSelectorUniversalRejectsTextNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kestrel.host")
	defer teardown()

	s := NewSession()
	divAtom := s.InternString([]byte("div"))
	div := s.AddNode(uint32(divAtom), uint32(0))
	text := s.CreateTextNode(uint32(div), []byte("hello"))
	require.GreaterOrEqual(t, text, int64(0))

	selIdx := s.CompileSelector([]byte("*"))
	require.GreaterOrEqual(t, selIdx, int64(0))

	assert.Equal(t, int32(1), s.MatchSelector(selIdx, uint32(div)))
	assert.Equal(t, int32(0), s.MatchSelector(selIdx, uint32(text)))
}

func TestSessionCreateDomResetsTreeButKeepsAtoms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kestrel.host")
	defer teardown()

	s := NewSession()
	divAtom := s.InternString([]byte("div"))
	s.AddNode(uint32(divAtom), uint32(0))
	require.Equal(t, 2, s.Tree().NodeCount())

	s.CreateDom()
	assert.Equal(t, 1, s.Tree().NodeCount())

	// the atom table survives the reset: interning "div" again yields the
	// same id rather than a fresh one.
	divAtomAgain := s.InternString([]byte("div"))
	assert.Equal(t, divAtom, divAtomAgain)
}

func TestSessionSetClassesRejectsTooMany(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kestrel.host")
	defer teardown()

	s := NewSession()
	divAtom := s.InternString([]byte("div"))
	div := s.AddNode(uint32(divAtom), uint32(0))

	classes := make([]uint32, 300)
	for i := range classes {
		a := s.InternString([]byte{byte('a' + i%26), byte('0' + i%10)})
		classes[i] = uint32(a)
	}
	assert.Equal(t, int32(-1), s.SetClasses(uint32(div), classes))
}
