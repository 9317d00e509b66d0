package selector

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNthKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kestrel.selector")
	defer teardown()

	odd, err := parseNth("odd")
	require.NoError(t, err)
	assert.Equal(t, NthFormula{A: 2, B: 1}, odd)

	even, err := parseNth("EVEN")
	require.NoError(t, err)
	assert.Equal(t, NthFormula{A: 2, B: 0}, even)
}

func TestParseNthBareInteger(t *testing.T) {
	f, err := parseNth("3")
	require.NoError(t, err)
	assert.Equal(t, NthFormula{A: 0, B: 3}, f)
}

func TestParseNthGeneralForm(t *testing.T) {
	cases := map[string]NthFormula{
		"2n":    {A: 2, B: 0},
		"2n+1":  {A: 2, B: 1},
		"-n+3":  {A: -1, B: 3},
		"n":     {A: 1, B: 0},
		"-n":    {A: -1, B: 0},
		"3n - 2": {A: 3, B: -2},
	}
	for input, want := range cases {
		got, err := parseNth(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseNthRejectsGarbage(t *testing.T) {
	_, err := parseNth("banana")
	assert.Error(t, err)
}

func TestNthFormulaMatches(t *testing.T) {
	// :nth-child(2n+1) -> odd positions.
	f := NthFormula{A: 2, B: 1}
	assert.True(t, f.Matches(1))
	assert.False(t, f.Matches(2))
	assert.True(t, f.Matches(3))

	// :nth-child(-n+3) -> positions 1..3 only.
	g := NthFormula{A: -1, B: 3}
	assert.True(t, g.Matches(1))
	assert.True(t, g.Matches(3))
	assert.False(t, g.Matches(4))

	// Bare integer.
	h := NthFormula{A: 0, B: 5}
	assert.True(t, h.Matches(5))
	assert.False(t, h.Matches(4))
}
