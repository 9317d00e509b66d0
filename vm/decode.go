package vm

import "encoding/binary"

// The decode helpers below all bounds-check explicitly; a truncated or
// corrupt program must degrade to "instruction undecodable" rather than
// slicing out of range.

func decodeU32(code []byte, at int) (uint32, bool) {
	if at+4 > len(code) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(code[at : at+4]), true
}

func decodeU32Pair(code []byte, at int) (uint32, uint32, bool) {
	if at+8 > len(code) {
		return 0, 0, false
	}
	return binary.LittleEndian.Uint32(code[at : at+4]),
		binary.LittleEndian.Uint32(code[at+4 : at+8]),
		true
}

func decodeI16Pair(code []byte, at int) (int16, int16, bool) {
	if at+4 > len(code) {
		return 0, 0, false
	}
	a := int16(binary.LittleEndian.Uint16(code[at : at+2]))
	b := int16(binary.LittleEndian.Uint16(code[at+2 : at+4]))
	return a, b, true
}

func decodeI16(code []byte, at int) (int16, bool) {
	if at+2 > len(code) {
		return 0, false
	}
	return int16(binary.LittleEndian.Uint16(code[at : at+2])), true
}
