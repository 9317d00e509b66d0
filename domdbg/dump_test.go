package domdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/domtree"
)

func TestDumpLabelsTagIDAndClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kestrel.domdbg")
	defer teardown()

	table := atom.NewTable()
	tree := domtree.NewTree(table)

	divAtom, err := table.InternString("div")
	require.NoError(t, err)
	div := tree.CreateElement(divAtom, domtree.NoNode)

	idAtom, err := table.InternString("main")
	require.NoError(t, err)
	tree.SetID(div, idAtom)

	classAtom, err := table.InternString("container")
	require.NoError(t, err)
	require.NoError(t, tree.SetClasses(div, []atom.AtomId{classAtom}))

	spanAtom, err := table.InternString("span")
	require.NoError(t, err)
	span := tree.CreateElement(spanAtom, div)
	tree.CreateText(span, []byte("hello"))

	out := Dump(tree, table, div)
	assert.Contains(t, out, "div#main.container")
	assert.Contains(t, out, "span")
	assert.Contains(t, out, `#text "hello"`)
}

func TestDumpOfSingleLeafNode(t *testing.T) {
	table := atom.NewTable()
	tree := domtree.NewTree(table)
	tagAtom, err := table.InternString("br")
	require.NoError(t, err)
	br := tree.CreateElement(tagAtom, domtree.NoNode)

	out := Dump(tree, table, br)
	require.True(t, strings.Contains(out, "br"))
}
