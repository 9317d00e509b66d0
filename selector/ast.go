package selector

// attrOp names the attribute-value predicate used by an attribute
// simple selector, or attrOpNone when only presence is tested.
type attrOp int

const (
	attrOpNone attrOp = iota
	attrOpEq
	attrOpWord
	attrOpPrefix
	attrOpSuffix
	attrOpSubstr
)

// simpleSelector is one atomic test within a compound selector: a tag
// name, an id, a class, an attribute predicate, a pseudo-class, or the
// universal selector.
type simpleSelector struct {
	kind simpleKind

	name  string // tag name, attribute name, or pseudo-class name
	value string // id text, class text, or attribute comparison value

	attrOp attrOp

	nth NthFormula // only meaningful when kind == simpleNthChild/simpleNthLastChild
}

type simpleKind int

const (
	simpleTag simpleKind = iota
	simpleUniversal
	simpleID
	simpleClass
	simpleAttr
	simplePseudoFirstChild
	simplePseudoLastChild
	simplePseudoOnlyChild
	simplePseudoEmpty
	simplePseudoRoot
	simpleNthChild
	simpleNthLastChild
)

// combinator is the relation between two adjacent compounds in a
// selector chain, read left to right in source order (e.g. in
// "div > span.item", the chain is [div, child, span.item]).
type combinator int

const (
	combDescendant combinator = iota
	combChild
	combAdjacent
	combSibling
)

// compound is one "tag#id.class[attr]:pseudo" group with no combinators
// inside it.
type compound struct {
	simples []simpleSelector
}

// chain is a full parsed selector: a sequence of compounds connected by
// combinators, in left-to-right source order. len(combinators) ==
// len(compounds)-1.
type chain struct {
	compounds   []compound
	combinators []combinator
}
