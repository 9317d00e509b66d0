package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTopLevelCommasIgnoresCommaInsideQuotedAttributeValue(t *testing.T) {
	parts := splitTopLevelCommas(`a[data-x="1,2"]`)
	require.Len(t, parts, 1)
}

func TestSplitTopLevelCommasIgnoresCommaInsideParens(t *testing.T) {
	parts := splitTopLevelCommas(`div:nth-child(2n, 1)`)
	require.Len(t, parts, 1)
}

func TestSplitTopLevelCommasSplitsAfterQuotedAttributeValue(t *testing.T) {
	parts := splitTopLevelCommas(`a[data-x="1,2"], b`)
	require.Len(t, parts, 2)
	assert.Equal(t, `a[data-x="1,2"]`, parts[0])
	assert.Equal(t, ` b`, parts[1])
}

func TestSplitTopLevelCommasSplitsSimpleList(t *testing.T) {
	parts := splitTopLevelCommas("div, span, #main")
	require.Len(t, parts, 3)
}

func TestParseCompoundUniversal(t *testing.T) {
	c, _, err := parseChain("*")
	require.NoError(t, err)
	require.Len(t, c.compounds, 1)
	assert.Equal(t, simpleUniversal, c.compounds[0].simples[0].kind)
}

func TestParseAttributeOperators(t *testing.T) {
	cases := map[string]attrOp{
		`[class]`:           attrOpNone,
		`[class="a"]`:       attrOpEq,
		`[class~="a"]`:      attrOpWord,
		`[class^="a"]`:      attrOpPrefix,
		`[class$="a"]`:      attrOpSuffix,
		`[class*="a"]`:      attrOpSubstr,
	}
	for src, want := range cases {
		c, _, err := parseChain(src)
		require.NoError(t, err, src)
		require.Len(t, c.compounds[0].simples, 1, src)
		assert.Equal(t, want, c.compounds[0].simples[0].attrOp, src)
	}
}

func TestParseChainCombinators(t *testing.T) {
	c, _, err := parseChain("a > b + c ~ d e")
	require.NoError(t, err)
	require.Len(t, c.compounds, 5)
	require.Equal(t, []combinator{combChild, combAdjacent, combSibling, combDescendant}, c.combinators)
}

func TestParseChainRejectsEmptySelector(t *testing.T) {
	_, _, err := parseChain("")
	assert.Error(t, err)
}

func TestParseChainRejectsTrailingCombinator(t *testing.T) {
	_, _, err := parseChain("div >")
	assert.Error(t, err)
}
