package vm

import (
	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/domtree"
	"github.com/kestrelcss/engine/selector"
)

// Resolve runs every program in programs against node and returns the
// index of the highest-specificity program that matched, or -1 if none
// did. Ties are broken by source order: a later program in the slice
// wins over an earlier one of equal specificity, the same "last
// declaration wins" rule a cascade applies to equally specific rules.
func Resolve(programs []*selector.Program, table *atom.Table, tree *domtree.Tree, node domtree.NodeID) int {
	best := -1
	for i, p := range programs {
		if !Execute(p, table, tree, node) {
			continue
		}
		if best == -1 || !p.Specificity.Less(programs[best].Specificity) {
			best = i
		}
	}
	return best
}

// MatchAny reports whether any program in programs matches node.
func MatchAny(programs []*selector.Program, table *atom.Table, tree *domtree.Tree, node domtree.NodeID) bool {
	for _, p := range programs {
		if Execute(p, table, tree, node) {
			return true
		}
	}
	return false
}
