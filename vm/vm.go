package vm

import (
	"bytes"

	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/domtree"
	"github.com/kestrelcss/engine/selector"
)

// maxBacktrackFrames bounds how many ancestors a single COMB_DESCENDANT
// walk will try before giving up.
const maxBacktrackFrames = 32

// Execute reports whether prog matches start within tree, resolving any
// attribute-value or class/id/tag atoms it carries through table. table
// must be the same table used to compile prog and to build tree.
func Execute(prog *selector.Program, table *atom.Table, tree *domtree.Tree, start domtree.NodeID) bool {
	if prog == nil || start == domtree.NoNode {
		return false
	}
	return run(prog.Code, 0, table, tree, start)
}

// run evaluates the compound starting at pc against node, then follows
// whatever combinator (or terminal) immediately follows it.
func run(code []byte, pc int, table *atom.Table, tree *domtree.Tree, node domtree.NodeID) bool {
	pc, ok := runCompound(code, pc, table, tree, node)
	if !ok {
		return false
	}
	if pc >= len(code) {
		return false
	}

	switch selector.Opcode(code[pc]) {
	case selector.OpMatchSuccess:
		return true

	case selector.OpCombChild:
		parent := tree.Parent(node)
		if parent == domtree.NoNode {
			return false
		}
		return run(code, pc+1, table, tree, parent)

	case selector.OpCombAdjacent:
		prev := tree.PrevElementSibling(node)
		if prev == domtree.NoNode {
			return false
		}
		return run(code, pc+1, table, tree, prev)

	case selector.OpCombSibling:
		for s := tree.PrevElementSibling(node); s != domtree.NoNode; s = tree.PrevElementSibling(s) {
			if run(code, pc+1, table, tree, s) {
				return true
			}
		}
		return false

	case selector.OpCombDescendant:
		frames := 0
		for anc := range tree.Ancestors(node) {
			if frames >= maxBacktrackFrames {
				break
			}
			if run(code, pc+1, table, tree, anc) {
				return true
			}
			frames++
		}
		return false

	default:
		return false
	}
}

// runCompound evaluates MATCH_*/PSEUDO_*/BLOOM_CHECK_* instructions
// starting at pc until it hits a combinator or terminal opcode (which it
// leaves unconsumed, returning its position), or a test fails (ok=false).
func runCompound(code []byte, pc int, table *atom.Table, tree *domtree.Tree, node domtree.NodeID) (int, bool) {
	for {
		if pc < 0 || pc >= len(code) {
			return pc, false
		}
		op := selector.Opcode(code[pc])

		switch op {
		case selector.OpCombDescendant, selector.OpCombChild, selector.OpCombAdjacent, selector.OpCombSibling,
			selector.OpMatchSuccess, selector.OpMatchFail:
			return pc, true

		case selector.OpMatchAny:
			if !tree.IsElement(node) {
				return pc, false
			}
			pc++

		case selector.OpMatchTag:
			want, okDec := decodeU32(code, pc+1)
			if !okDec {
				return pc, false
			}
			if !tree.IsElement(node) || tree.Tag(node) != atom.AtomId(want) {
				return pc, false
			}
			pc += 5

		case selector.OpMatchID:
			want, okDec := decodeU32(code, pc+1)
			if !okDec {
				return pc, false
			}
			if !tree.HasID(node) || tree.ID(node) != atom.AtomId(want) {
				return pc, false
			}
			pc += 5

		case selector.OpMatchClass:
			want, okDec := decodeU32(code, pc+1)
			if !okDec {
				return pc, false
			}
			if !tree.HasClass(node, atom.AtomId(want)) {
				return pc, false
			}
			pc += 5

		case selector.OpMatchAttr:
			nameID, okDec := decodeU32(code, pc+1)
			if !okDec {
				return pc, false
			}
			if _, found := tree.AttributeValue(node, atom.AtomId(nameID)); !found {
				return pc, false
			}
			pc += 5

		case selector.OpMatchAttrEq, selector.OpMatchAttrWord, selector.OpMatchAttrPrefix,
			selector.OpMatchAttrSuffix, selector.OpMatchAttrSubstr:
			nameID, valID, okDec := decodeU32Pair(code, pc+1)
			if !okDec {
				return pc, false
			}
			if !matchAttrPredicate(op, table, tree, node, atom.AtomId(nameID), atom.AtomId(valID)) {
				return pc, false
			}
			pc += 9

		case selector.OpPseudoFirstChild:
			if tree.ChildIndex(node) != 1 {
				return pc, false
			}
			pc++

		case selector.OpPseudoLastChild:
			idx := tree.ChildIndex(node)
			if idx == 0 || idx != tree.ChildCountElements(node) {
				return pc, false
			}
			pc++

		case selector.OpPseudoOnlyChild:
			if tree.ChildIndex(node) != 1 || tree.ChildCountElements(node) != 1 {
				return pc, false
			}
			pc++

		case selector.OpPseudoEmpty:
			if !tree.IsEmpty(node) {
				return pc, false
			}
			pc++

		case selector.OpPseudoRoot:
			// Only the "no parent" test applies in this tree model:
			// top-level elements sit at depth 0 with Parent == NoNode, and a
			// depth==1 node is a child of one of them, not a root.
			if !tree.IsElement(node) || tree.Parent(node) != domtree.NoNode {
				return pc, false
			}
			pc++

		case selector.OpPseudoNthChild:
			a, b, okDec := decodeI16Pair(code, pc+1)
			if !okDec {
				return pc, false
			}
			idx := tree.ChildIndex(node)
			if idx == 0 || !(selector.NthFormula{A: a, B: b}).Matches(idx) {
				return pc, false
			}
			pc += 5

		case selector.OpPseudoNthLastChild:
			a, b, okDec := decodeI16Pair(code, pc+1)
			if !okDec {
				return pc, false
			}
			idx := tree.ChildIndex(node)
			if idx == 0 {
				return pc, false
			}
			posFromEnd := tree.ChildCountElements(node) - idx + 1
			if !(selector.NthFormula{A: a, B: b}).Matches(posFromEnd) {
				return pc, false
			}
			pc += 5

		case selector.OpBloomCheckClass, selector.OpBloomCheckID, selector.OpBloomCheckTag:
			hash, okDec := decodeU32(code, pc+1)
			if !okDec {
				return pc, false
			}
			if !tree.AncestorFilter(node).MightContain(hash) {
				return pc, false
			}
			pc += 5

		case selector.OpJump:
			off, okDec := decodeI16(code, pc+1)
			if !okDec {
				return pc, false
			}
			pc = pc + 3 + int(off)

		case selector.OpJumpFail, selector.OpJumpAlt:
			// Not emitted by the current compiler; treated conservatively
			// as an immediate failure of this compound rather than
			// guessed-at control flow.
			return pc, false

		default:
			return pc, false
		}
	}
}

func matchAttrPredicate(op selector.Opcode, table *atom.Table, tree *domtree.Tree, node domtree.NodeID, nameID, valID atom.AtomId) bool {
	actual, found := tree.AttributeValue(node, nameID)
	if !found {
		return false
	}
	want := table.StringOf(valID).WithDefault(nil)
	if want == nil {
		return false
	}

	switch op {
	case selector.OpMatchAttrEq:
		return bytes.Equal(actual, want)
	case selector.OpMatchAttrPrefix:
		return bytes.HasPrefix(actual, want)
	case selector.OpMatchAttrSuffix:
		return bytes.HasSuffix(actual, want)
	case selector.OpMatchAttrSubstr:
		return bytes.Contains(actual, want)
	case selector.OpMatchAttrWord:
		for _, word := range bytes.Fields(actual) {
			if bytes.Equal(word, want) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
