package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/domtree"
	"github.com/kestrelcss/engine/selector"
)

func TestResolvePicksHighestSpecificity(t *testing.T) {
	table := atom.NewTable()
	tree := domtree.NewTree(table)
	div := tree.CreateElement(mustTag(t, table, "div"), domtree.NoNode)
	require.NoError(t, tree.SetClasses(div, []atom.AtomId{mustTag(t, table, "container")}))
	tree.SetID(div, mustTag(t, table, "main"))

	programs := []*selector.Program{
		mustCompile(t, table, "div"),
		mustCompile(t, table, ".container"),
		mustCompile(t, table, "#main"),
	}

	assert.Equal(t, 2, Resolve(programs, table, tree, div))
}

func TestResolveBreaksTiesByLastDeclaration(t *testing.T) {
	table := atom.NewTable()
	tree := domtree.NewTree(table)
	div := tree.CreateElement(mustTag(t, table, "div"), domtree.NoNode)
	require.NoError(t, tree.SetClasses(div, []atom.AtomId{mustTag(t, table, "a"), mustTag(t, table, "b")}))

	programs := []*selector.Program{
		mustCompile(t, table, ".a"),
		mustCompile(t, table, ".b"),
	}
	assert.Equal(t, 1, Resolve(programs, table, tree, div))
}

func TestResolveReturnsMinusOneWhenNoneMatch(t *testing.T) {
	table := atom.NewTable()
	tree := domtree.NewTree(table)
	div := tree.CreateElement(mustTag(t, table, "div"), domtree.NoNode)

	programs := []*selector.Program{mustCompile(t, table, "span")}
	assert.Equal(t, -1, Resolve(programs, table, tree, div))
}

func TestMatchAny(t *testing.T) {
	table := atom.NewTable()
	tree := domtree.NewTree(table)
	div := tree.CreateElement(mustTag(t, table, "div"), domtree.NoNode)

	assert.True(t, MatchAny([]*selector.Program{mustCompile(t, table, "span"), mustCompile(t, table, "div")}, table, tree, div))
	assert.False(t, MatchAny([]*selector.Program{mustCompile(t, table, "span")}, table, tree, div))
}
