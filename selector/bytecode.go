package selector

// Opcode is a single bytecode instruction tag. Every program is a flat
// sequence of Opcode bytes, each (except the two terminals) followed by
// fixed-width inline operands.
type Opcode byte

// The full opcode set the compiler emits and the VM understands.
const (
	OpMatchTag  Opcode = 0x01 // atom:u32
	OpMatchID   Opcode = 0x02 // atom:u32
	OpMatchClass Opcode = 0x03 // atom:u32
	OpMatchAttr Opcode = 0x04 // name:u32

	OpMatchAttrEq     Opcode = 0x05 // name:u32, val:u32
	OpMatchAttrWord   Opcode = 0x06
	OpMatchAttrPrefix Opcode = 0x07
	OpMatchAttrSuffix Opcode = 0x08
	OpMatchAttrSubstr Opcode = 0x09

	OpMatchAny Opcode = 0x0A // —

	OpPseudoFirstChild   Opcode = 0x10
	OpPseudoLastChild    Opcode = 0x11
	OpPseudoOnlyChild    Opcode = 0x12
	OpPseudoNthChild     Opcode = 0x13 // a:i16, b:i16
	OpPseudoNthLastChild Opcode = 0x14 // a:i16, b:i16
	OpPseudoEmpty        Opcode = 0x15
	OpPseudoRoot         Opcode = 0x16

	OpCombDescendant Opcode = 0x20
	OpCombChild      Opcode = 0x21
	OpCombAdjacent   Opcode = 0x22
	OpCombSibling    Opcode = 0x23

	OpJumpFail Opcode = 0x30 // off:i16
	OpJump     Opcode = 0x31 // off:i16
	OpJumpAlt  Opcode = 0x32 // off:i16

	OpBloomCheckClass Opcode = 0x40 // hash:u32
	OpBloomCheckID    Opcode = 0x41 // hash:u32
	OpBloomCheckTag   Opcode = 0x42 // hash:u32

	OpMatchSuccess Opcode = 0xFE
	OpMatchFail    Opcode = 0xFF
)

// operandLen returns the number of operand bytes following op, or -1 if
// op is unknown to this table (the VM treats that as a non-match rather
// than consulting this function).
func operandLen(op Opcode) int {
	switch op {
	case OpMatchTag, OpMatchID, OpMatchClass, OpMatchAttr,
		OpBloomCheckClass, OpBloomCheckID, OpBloomCheckTag:
		return 4
	case OpMatchAttrEq, OpMatchAttrWord, OpMatchAttrPrefix, OpMatchAttrSuffix, OpMatchAttrSubstr:
		return 8
	case OpPseudoNthChild, OpPseudoNthLastChild:
		return 4
	case OpJumpFail, OpJump, OpJumpAlt:
		return 2
	case OpMatchAny,
		OpPseudoFirstChild, OpPseudoLastChild, OpPseudoOnlyChild, OpPseudoEmpty, OpPseudoRoot,
		OpCombDescendant, OpCombChild, OpCombAdjacent, OpCombSibling,
		OpMatchSuccess, OpMatchFail:
		return 0
	default:
		return -1
	}
}
