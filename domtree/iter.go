package domtree

import "iter"

// Children returns a lazy, forward, in-document-order sequence of n's
// children. Each range over the returned sequence starts again from the
// first child.
func (t *Tree) Children(n NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for c := t.firstChild[n]; c != NoNode; c = t.nextSibling[c] {
			if !yield(c) {
				return
			}
		}
	}
}

// Ancestors returns a lazy, bottom-up sequence of n's strict ancestors,
// starting at n's parent. NoNode doubles as both the document node and
// the "no parent" sentinel, so the walk simply stops there — the
// document node itself is never produced by this iterator.
func (t *Tree) Ancestors(n NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for p := t.parent[n]; p != NoNode; p = t.parent[p] {
			if !yield(p) {
				return
			}
		}
	}
}
