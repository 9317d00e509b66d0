package domtree

import (
	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/bloom"
)

// Tag returns a node's tag atom, or atom.Null for non-element nodes.
func (t *Tree) Tag(n NodeID) atom.AtomId { return t.tag[n] }

// ID returns a node's id atom, or atom.Null if absent.
func (t *Tree) ID(n NodeID) atom.AtomId { return t.id[n] }

// Parent returns a node's parent, or NoNode if it is the document node
// or unattached.
func (t *Tree) Parent(n NodeID) NodeID { return t.parent[n] }

// FirstChild returns a node's first child, or NoNode if it has none.
func (t *Tree) FirstChild(n NodeID) NodeID { return t.firstChild[n] }

// NextSibling returns a node's next sibling, or NoNode if it is the last
// child of its parent.
func (t *Tree) NextSibling(n NodeID) NodeID { return t.nextSibling[n] }

// PrevSibling returns a node's previous sibling, or NoNode if it is the
// first child of its parent.
func (t *Tree) PrevSibling(n NodeID) NodeID { return t.prevSibling[n] }

// AncestorFilter returns the Bloom filter summarizing every strict
// ancestor's {tag, id, classes} hashes.
func (t *Tree) AncestorFilter(n NodeID) bloom.Filter { return t.ancestorFilter[n] }

// Depth returns a node's depth, 0 at the document node.
func (t *Tree) Depth(n NodeID) uint16 { return t.depth[n] }

// NodeType returns a node's type.
func (t *Tree) NodeType(n NodeID) NodeType { return t.ntype[n] }

// IsElement reports whether n is an element node.
func (t *Tree) IsElement(n NodeID) bool { return t.ntype[n] == NodeElement }

// HasID reports whether n has an id set.
func (t *Tree) HasID(n NodeID) bool { return t.flags[n]&FlagHasID != 0 }

// HasClasses reports whether n has at least one class.
func (t *Tree) HasClasses(n NodeID) bool { return t.flags[n]&FlagHasClasses != 0 }

// Classes returns the (read-only) slice of a node's classes, in the
// order they were set.
func (t *Tree) Classes(n NodeID) []atom.AtomId {
	return t.classesOf(n)
}

func (t *Tree) classesOf(n NodeID) []atom.AtomId {
	off, cnt := t.classOffset[n], t.classCount[n]
	return t.classes[off : off+uint32(cnt)]
}

// HasClass reports whether n carries class a.
func (t *Tree) HasClass(n NodeID, a atom.AtomId) bool {
	for _, c := range t.classesOf(n) {
		if c == a {
			return true
		}
	}
	return false
}

// Attributes returns a node's attribute list, in the order they were
// added.
func (t *Tree) Attributes(n NodeID) []Attribute {
	off, cnt := t.attrOffset[n], t.attrCount[n]
	return t.attrs[off : off+cnt]
}

// AttributeValue returns the value for the first attribute named name on
// n, and true if found.
func (t *Tree) AttributeValue(n NodeID, name atom.AtomId) ([]byte, bool) {
	for _, a := range t.Attributes(n) {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// TextOf returns a text node's payload bytes. For non-text nodes it
// returns an empty slice (nil while the tree holds no text at all).
func (t *Tree) TextOf(n NodeID) []byte {
	off, ln := t.textOffset[n], t.textLen[n]
	return t.textArena[off : off+ln]
}

// IsEmpty reports whether n has no element or text children — the
// predicate behind the :empty pseudo-class.
func (t *Tree) IsEmpty(n NodeID) bool {
	return t.firstChild[n] == NoNode
}

// ChildIndex returns the 1-based position of n among its parent's
// element-node siblings only (non-element siblings, e.g. text nodes, are
// not counted), as required by the :nth-child family. It returns 0 if n
// is not an element or has no parent.
func (t *Tree) ChildIndex(n NodeID) int {
	if !t.IsElement(n) {
		return 0
	}
	p := t.parent[n]
	if p == NoNode {
		return 0
	}
	idx := 0
	for c := t.firstChild[p]; c != NoNode; c = t.nextSibling[c] {
		if !t.IsElement(c) {
			continue
		}
		idx++
		if c == n {
			return idx
		}
	}
	return 0
}

// ChildCountElements returns how many element children n's parent has.
func (t *Tree) ChildCountElements(n NodeID) int {
	p := t.parent[n]
	if p == NoNode {
		return 0
	}
	count := 0
	for c := t.firstChild[p]; c != NoNode; c = t.nextSibling[c] {
		if t.IsElement(c) {
			count++
		}
	}
	return count
}

// PrevElementSibling returns the nearest preceding element sibling,
// skipping text/comment/etc. nodes, or NoNode if there is none.
func (t *Tree) PrevElementSibling(n NodeID) NodeID {
	for s := t.prevSibling[n]; s != NoNode; s = t.prevSibling[s] {
		if t.IsElement(s) {
			return s
		}
	}
	return NoNode
}
