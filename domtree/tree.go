package domtree

import (
	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/bloom"
)

// Tree is a structure-of-arrays document tree. All per-node fields live
// in parallel slices indexed by NodeID; there is exactly one field-array
// per concern, so that matching — which typically only touches one or
// two fields across many sibling nodes — stays cache-dense. Classes,
// attributes and text bytes live in their own append-only global stores,
// addressed per node by (offset, count).
//
// A Tree depends on an *atom.Table — tags, ids and classes are stored
// as atoms, and the table is also what lets a Tree compute the content
// hashes it folds into each node's ancestor Bloom filter.
type Tree struct {
	table *atom.Table

	tag   []atom.AtomId
	id    []atom.AtomId
	ntype []NodeType
	depth []uint16
	flags []uint8

	parent      []NodeID
	firstChild  []NodeID
	lastChild   []NodeID // internal append bookkeeping, not exposed via accessors
	nextSibling []NodeID
	prevSibling []NodeID

	ancestorFilter []bloom.Filter

	classOffset []uint32
	classCount  []uint8

	attrOffset []uint32
	attrCount  []uint32

	textOffset []uint32
	textLen    []uint32

	classes   []atom.AtomId
	attrs     []Attribute
	textArena []byte
}

// NewTree creates an empty tree backed by table for content hashing.
// Node 0, the synthetic document node, is created automatically.
func NewTree(table *atom.Table) *Tree {
	t := &Tree{table: table}
	// node 0: the document node. It is never linked to or from anything,
	// and carries no tag, id, classes, attributes or text.
	t.tag = append(t.tag, atom.Null)
	t.id = append(t.id, atom.Null)
	t.ntype = append(t.ntype, NodeDocument)
	t.depth = append(t.depth, 0)
	t.flags = append(t.flags, 0)
	t.parent = append(t.parent, NoNode)
	t.firstChild = append(t.firstChild, NoNode)
	t.lastChild = append(t.lastChild, NoNode)
	t.nextSibling = append(t.nextSibling, NoNode)
	t.prevSibling = append(t.prevSibling, NoNode)
	t.ancestorFilter = append(t.ancestorFilter, bloom.Empty())
	t.classOffset = append(t.classOffset, 0)
	t.classCount = append(t.classCount, 0)
	t.attrOffset = append(t.attrOffset, 0)
	t.attrCount = append(t.attrCount, 0)
	t.textOffset = append(t.textOffset, 0)
	t.textLen = append(t.textLen, 0)
	return t
}

// NodeCount returns the total number of nodes, including the document
// node at index 0.
func (t *Tree) NodeCount() int {
	return len(t.tag)
}

// CreateElement appends a new element node. If parent is NoNode, the new
// node is a top-level, unattached element with depth 0 — this is
// deliberately distinct from attaching it under the document node. Otherwise
// it becomes the last child of parent, and its ancestor filter is the
// parent's ancestor filter unioned with the parent's own {tag, id,
// classes} hashes.
func (t *Tree) CreateElement(tag atom.AtomId, parent NodeID) NodeID {
	id := t.appendNodeShell(NodeElement, parent)
	t.tag[id] = tag
	tracer().Debugf("domtree: created element node=%d tag=%d parent=%d depth=%d", id, tag, parent, t.depth[id])
	return id
}

// CreateText appends a new text node carrying bytes as its payload. Text
// nodes carry an empty ancestor filter and are excluded from any
// ancestor's filter union, since they are never selector targets beyond
// :empty consideration.
func (t *Tree) CreateText(parent NodeID, text []byte) NodeID {
	id := t.appendNodeShell(NodeText, parent)
	t.ancestorFilter[id] = bloom.Empty()
	t.textOffset[id] = uint32(len(t.textArena))
	t.textArena = append(t.textArena, text...)
	t.textLen[id] = uint32(len(text))
	tracer().Debugf("domtree: created text node=%d parent=%d len=%d", id, parent, len(text))
	return id
}

// appendNodeShell does the bookkeeping common to CreateElement and
// CreateText: allocating a new row across every parallel array, wiring
// sibling/parent links, and computing depth and ancestor filter.
func (t *Tree) appendNodeShell(nt NodeType, parent NodeID) NodeID {
	id := NodeID(len(t.tag))

	var depth uint16
	var filter bloom.Filter
	if parent != NoNode {
		depth = t.depth[parent] + 1
		filter = t.ancestorFilterIncluding(parent)
	}

	t.tag = append(t.tag, atom.Null)
	t.id = append(t.id, atom.Null)
	t.ntype = append(t.ntype, nt)
	t.depth = append(t.depth, depth)
	t.flags = append(t.flags, 0)
	t.parent = append(t.parent, parent)
	t.firstChild = append(t.firstChild, NoNode)
	t.lastChild = append(t.lastChild, NoNode)
	t.nextSibling = append(t.nextSibling, NoNode)
	t.prevSibling = append(t.prevSibling, NoNode)
	t.ancestorFilter = append(t.ancestorFilter, filter)
	t.classOffset = append(t.classOffset, uint32(len(t.classes)))
	t.classCount = append(t.classCount, 0)
	t.attrOffset = append(t.attrOffset, uint32(len(t.attrs)))
	t.attrCount = append(t.attrCount, 0)
	t.textOffset = append(t.textOffset, 0)
	t.textLen = append(t.textLen, 0)

	if parent != NoNode {
		t.linkAsLastChild(parent, id)
	}
	return id
}

// ancestorFilterIncluding returns the Bloom filter a child of parent
// should start with: parent's own ancestor filter, unioned with hashes
// of parent's tag, id (if set) and classes.
func (t *Tree) ancestorFilterIncluding(parent NodeID) bloom.Filter {
	f := t.ancestorFilter[parent]
	if tag := t.tag[parent]; tag != atom.Null {
		f.Add(t.table.HashOf(tag))
	}
	if pid := t.id[parent]; pid != atom.Null {
		f.Add(t.table.HashOf(pid))
	}
	for _, c := range t.classesOf(parent) {
		f.Add(t.table.HashOf(c))
	}
	return f
}

func (t *Tree) linkAsLastChild(parent, child NodeID) {
	if t.firstChild[parent] == NoNode {
		t.firstChild[parent] = child
	} else {
		last := t.lastChild[parent]
		t.nextSibling[last] = child
		t.prevSibling[child] = last
	}
	t.lastChild[parent] = child
}

// SetID sets a node's id attribute. Calling this after descendants
// already exist does not retroactively update their ancestor filters —
// set id/classes immediately after creating a node, before creating its
// children.
func (t *Tree) SetID(node NodeID, id atom.AtomId) {
	t.id[node] = id
	if id != atom.Null {
		t.flags[node] |= FlagHasID
	} else {
		t.flags[node] &^= FlagHasID
	}
}

// SetClasses sets a node's class list, up to MaxClasses entries. Same
// retroactivity caveat as SetID.
func (t *Tree) SetClasses(node NodeID, classes []atom.AtomId) error {
	if len(classes) > MaxClasses {
		return ErrTooManyClasses
	}
	// Classes are append-only storage: re-setting just appends a fresh
	// run and repoints this node's (offset, count) at it. The old run is
	// abandoned in place, matching the arena's append-only discipline.
	t.classOffset[node] = uint32(len(t.classes))
	t.classes = append(t.classes, classes...)
	t.classCount[node] = uint8(len(classes))
	if len(classes) > 0 {
		t.flags[node] |= FlagHasClasses
	} else {
		t.flags[node] &^= FlagHasClasses
	}
	return nil
}

// AddAttribute appends one (name, value) pair to node's attribute list.
// Like classes, attributes for one node must be added contiguously
// (finish attributing a node before creating or attributing the next)
// since the (offset, count) pair addresses a contiguous run of the
// shared global attribute store.
func (t *Tree) AddAttribute(node NodeID, name atom.AtomId, value []byte) {
	if t.attrCount[node] == 0 {
		t.attrOffset[node] = uint32(len(t.attrs))
	}
	t.attrs = append(t.attrs, Attribute{Name: name, Value: value})
	t.attrCount[node]++
}
