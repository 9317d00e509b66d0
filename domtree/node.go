package domtree

import "github.com/kestrelcss/engine/atom"

// NodeID addresses a node by its position in the tree's parallel
// arrays. The zero value, NoNode, is the synthetic document node at
// index 0 and also doubles as the "absent" sentinel for parent/sibling
// fields — both meanings are deliberately overloaded onto zero.
type NodeID uint32

// NoNode is the document node and the "none" sentinel for node links.
const NoNode NodeID = 0

// NodeType classifies what kind of node occupies a given index.
type NodeType uint8

const (
	NodeDocument NodeType = iota
	NodeElement
	NodeText
	NodeCData
	NodeComment
	NodeDoctype
	NodeFragment
)

// Flag bits, packed one per node into a single byte.
const (
	FlagHasID      uint8 = 1 << 0
	FlagHasClasses uint8 = 1 << 1
	FlagHasStyle   uint8 = 1 << 2
	FlagInShadow   uint8 = 1 << 3
)

// MaxClasses is the largest number of classes a single node may carry.
const MaxClasses = 255

// Attribute is a single (name, value) pair appended to the tree's global
// attribute store.
type Attribute struct {
	Name  atom.AtomId
	Value []byte
}
