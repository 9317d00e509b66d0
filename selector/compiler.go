package selector

import (
	"encoding/binary"
	"fmt"

	"github.com/kestrelcss/engine/atom"
)

// emit compiles one parsed chain into bytecode. Execution order is the
// reverse of source order: the rightmost compound (the candidate node
// itself) is emitted first, then each combinator and the compound to
// its left, ending with OpMatchSuccess. This mirrors how the VM walks
// outward from the candidate node through ancestors/siblings rather
// than starting at some arbitrary root.
func emit(table *atom.Table, c chain, src string) (*Program, error) {
	n := len(c.compounds)
	if n == 0 {
		return nil, fmt.Errorf("selector: empty selector %q", src)
	}

	var buf []byte
	var spec Specificity

	// The leftmost compound is a strict ancestor of the candidate only when
	// the first combinator is descendant or child; after '+' or '~' it is a
	// sibling of an ancestor, and keying a Bloom check on it would reject
	// real matches.
	if hasDescendantCombinator(c.combinators) && (c.combinators[0] == combDescendant || c.combinators[0] == combChild) {
		if err := emitBloomHoist(table, &buf, c.compounds[0]); err != nil {
			return nil, err
		}
	}

	if err := emitCompound(table, &buf, &spec, c.compounds[n-1]); err != nil {
		return nil, err
	}
	for i := n - 2; i >= 0; i-- {
		buf = append(buf, byte(combinatorOpcode(c.combinators[i])))
		if err := emitCompound(table, &buf, &spec, c.compounds[i]); err != nil {
			return nil, err
		}
	}
	buf = append(buf, byte(OpMatchSuccess))

	return &Program{Code: buf, Specificity: spec, Source: src}, nil
}

func hasDescendantCombinator(combs []combinator) bool {
	for _, c := range combs {
		if c == combDescendant {
			return true
		}
	}
	return false
}

// emitBloomHoist prepends a BLOOM_CHECK_* for outer's most selective
// identifying feature (id, then class, then tag) to buf. outer is the
// leftmost compound of a chain that contains a descendant combinator and
// whose first combinator is descendant or child, i.e. the compound
// describing some strict ancestor of the candidate node. The check tests the candidate's own ancestor filter before any
// MATCH_* instruction runs, so a selector whose required ancestor
// feature never occurs above the candidate fails immediately instead
// of walking the backtrack loop. It is a pure early-rejection hint: by
// the ancestor-Bloom invariant, a true negative here can never hide a
// real match, and skipping the hoist (outer has no id/class/tag to key
// on) only costs performance, never correctness.
func emitBloomHoist(table *atom.Table, buf *[]byte, outer compound) error {
	for _, s := range outer.simples {
		if s.kind != simpleID {
			continue
		}
		h, err := keywordOrInternedHash(table, s.value)
		if err != nil {
			return fmt.Errorf("selector: interning id %q: %w", s.value, err)
		}
		appendOpU32(buf, OpBloomCheckID, h)
		return nil
	}
	for _, s := range outer.simples {
		if s.kind != simpleClass {
			continue
		}
		h, err := keywordOrInternedHash(table, s.value)
		if err != nil {
			return fmt.Errorf("selector: interning class %q: %w", s.value, err)
		}
		appendOpU32(buf, OpBloomCheckClass, h)
		return nil
	}
	for _, s := range outer.simples {
		if s.kind != simpleTag {
			continue
		}
		h, err := keywordOrInternedHash(table, s.name)
		if err != nil {
			return fmt.Errorf("selector: interning tag %q: %w", s.name, err)
		}
		appendOpU32(buf, OpBloomCheckTag, h)
		return nil
	}
	return nil
}

// keywordOrInternedHash returns s's hash, preferring atom.WellKnown's
// precomputed table over a Table lookup: the vast majority of hoisted
// checks key on an ordinary HTML tag name, and those never need to touch
// table at all.
func keywordOrInternedHash(table *atom.Table, s string) (uint32, error) {
	if h, ok := atom.KeywordHash(s); ok {
		return h, nil
	}
	id, err := table.InternString(s)
	if err != nil {
		return 0, err
	}
	return table.HashOf(id), nil
}

func combinatorOpcode(c combinator) Opcode {
	switch c {
	case combChild:
		return OpCombChild
	case combAdjacent:
		return OpCombAdjacent
	case combSibling:
		return OpCombSibling
	default:
		return OpCombDescendant
	}
}

// emitCompound appends the bytecode for every simple selector in cmp, in
// any order (the VM does not require a particular test ordering within
// a compound), folding each into spec as it goes.
func emitCompound(table *atom.Table, buf *[]byte, spec *Specificity, cmp compound) error {
	for _, s := range cmp.simples {
		switch s.kind {
		case simpleUniversal:
			appendOp(buf, OpMatchAny)

		case simpleTag:
			id, err := table.InternString(s.name)
			if err != nil {
				return fmt.Errorf("selector: interning tag %q: %w", s.name, err)
			}
			appendOpU32(buf, OpMatchTag, uint32(id))
			spec.addTag()

		case simpleID:
			id, err := table.InternString(s.value)
			if err != nil {
				return fmt.Errorf("selector: interning id %q: %w", s.value, err)
			}
			appendOpU32(buf, OpMatchID, uint32(id))
			spec.addID()

		case simpleClass:
			id, err := table.InternString(s.value)
			if err != nil {
				return fmt.Errorf("selector: interning class %q: %w", s.value, err)
			}
			appendOpU32(buf, OpMatchClass, uint32(id))
			spec.addClassOrPseudoOrAttr()

		case simpleAttr:
			nameID, err := table.InternString(s.name)
			if err != nil {
				return fmt.Errorf("selector: interning attribute %q: %w", s.name, err)
			}
			if s.attrOp == attrOpNone {
				appendOpU32(buf, OpMatchAttr, uint32(nameID))
				spec.addClassOrPseudoOrAttr()
				continue
			}
			valID, err := table.InternString(s.value)
			if err != nil {
				return fmt.Errorf("selector: interning attribute value %q: %w", s.value, err)
			}
			op, err := attrOpcode(s.attrOp)
			if err != nil {
				return err
			}
			appendOpU32U32(buf, op, uint32(nameID), uint32(valID))
			spec.addClassOrPseudoOrAttr()

		case simplePseudoFirstChild:
			appendOp(buf, OpPseudoFirstChild)
			spec.addClassOrPseudoOrAttr()
		case simplePseudoLastChild:
			appendOp(buf, OpPseudoLastChild)
			spec.addClassOrPseudoOrAttr()
		case simplePseudoOnlyChild:
			appendOp(buf, OpPseudoOnlyChild)
			spec.addClassOrPseudoOrAttr()
		case simplePseudoEmpty:
			appendOp(buf, OpPseudoEmpty)
			spec.addClassOrPseudoOrAttr()
		case simplePseudoRoot:
			appendOp(buf, OpPseudoRoot)
			spec.addClassOrPseudoOrAttr()

		case simpleNthChild:
			appendOpI16I16(buf, OpPseudoNthChild, s.nth.A, s.nth.B)
			spec.addClassOrPseudoOrAttr()
		case simpleNthLastChild:
			appendOpI16I16(buf, OpPseudoNthLastChild, s.nth.A, s.nth.B)
			spec.addClassOrPseudoOrAttr()

		default:
			return fmt.Errorf("selector: unhandled simple selector kind %d", s.kind)
		}
	}
	return nil
}

func attrOpcode(op attrOp) (Opcode, error) {
	switch op {
	case attrOpEq:
		return OpMatchAttrEq, nil
	case attrOpWord:
		return OpMatchAttrWord, nil
	case attrOpPrefix:
		return OpMatchAttrPrefix, nil
	case attrOpSuffix:
		return OpMatchAttrSuffix, nil
	case attrOpSubstr:
		return OpMatchAttrSubstr, nil
	default:
		return 0, fmt.Errorf("selector: unknown attribute operator %d", op)
	}
}

func appendOp(buf *[]byte, op Opcode) {
	*buf = append(*buf, byte(op))
}

func appendOpU32(buf *[]byte, op Opcode, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	*buf = append(*buf, byte(op))
	*buf = append(*buf, tmp[:]...)
}

func appendOpU32U32(buf *[]byte, op Opcode, a, b uint32) {
	var tmp [8]byte
	binary.LittleEndian.PutUint32(tmp[0:4], a)
	binary.LittleEndian.PutUint32(tmp[4:8], b)
	*buf = append(*buf, byte(op))
	*buf = append(*buf, tmp[:]...)
}

func appendOpI16I16(buf *[]byte, op Opcode, a, b int16) {
	var tmp [4]byte
	binary.LittleEndian.PutUint16(tmp[0:2], uint16(a))
	binary.LittleEndian.PutUint16(tmp[2:4], uint16(b))
	*buf = append(*buf, byte(op))
	*buf = append(*buf, tmp[:]...)
}
