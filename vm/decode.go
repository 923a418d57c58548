package vm

import (
	"encoding/binary"
)

// Disassemble decodes a machine code stream back into a program.
//
// The scan is greedy and single-pass: a leading byte equal to a
// 1-byte opcode's A value is that opcode, final, no backtracking; any
// other leading byte starts a little-endian 2-byte word whose A field
// must be LOAD_CONST. The stream must be consumed exactly; a word cut
// short at the end of the stream is ErrTruncated.
func Disassemble(code []byte) (program []Instruction, err error) {
	for off := 0; off < len(code); {
		op := Opcode(code[off])
		if op == Le || op == WriteMem || op == ReadMem {
			program = append(program, Instruction{Op: op})
			off++
			continue
		}

		if off+2 > len(code) {
			return nil, ErrTruncated(off)
		}

		word := binary.LittleEndian.Uint16(code[off:])
		a, b := UnpackWord(word)
		if a != LoadConst {
			return nil, &ErrUnknownWord{Offset: off, Word: word, A: a}
		}

		program = append(program, Instruction{Op: LoadConst, Operand: b})
		off += 2
	}

	return
}
