package domdbg

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/domtree"
)

// Dump renders the subtree rooted at n as an indented text tree,
// labelling each node with its tag, id and classes where present.
// Labels are resolved through table, which must be the same table used
// to build the tree.
func Dump(tree *domtree.Tree, table *atom.Table, n domtree.NodeID) string {
	tracer().Debugf("domdbg: dumping subtree rooted at node=%d", n)
	root := treeprint.New()
	root.SetValue(label(tree, table, n))
	addChildren(tree, table, root, n)
	return root.String()
}

func addChildren(tree *domtree.Tree, table *atom.Table, branch treeprint.Tree, n domtree.NodeID) {
	for c := range tree.Children(n) {
		if tree.NodeType(c) == domtree.NodeText {
			branch.AddNode(fmt.Sprintf("#text %q", tree.TextOf(c)))
			continue
		}
		sub := branch.AddBranch(label(tree, table, c))
		addChildren(tree, table, sub, c)
	}
}

func label(tree *domtree.Tree, table *atom.Table, n domtree.NodeID) string {
	if tree.NodeType(n) == domtree.NodeDocument {
		return "#document"
	}
	var b strings.Builder
	b.WriteString(stringOf(table, tree.Tag(n)))
	if tree.HasID(n) {
		fmt.Fprintf(&b, "#%s", stringOf(table, tree.ID(n)))
	}
	for _, c := range tree.Classes(n) {
		fmt.Fprintf(&b, ".%s", stringOf(table, c))
	}
	return b.String()
}

func stringOf(table *atom.Table, id atom.AtomId) string {
	return string(table.StringOf(id).WithDefault(nil))
}
