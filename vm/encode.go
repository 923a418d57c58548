package vm

import (
	"encoding/binary"
)

// Assemble encodes a program into the flat machine code stream. A
// LOAD_CONST becomes its packed word as two little-endian bytes; every
// other opcode becomes the single byte of its A value. There are no
// separators and no length prefix.
func Assemble(program []Instruction) (code []byte) {
	for _, ins := range program {
		if ins.Op.HasOperand() {
			code = binary.LittleEndian.AppendUint16(code, PackWord(ins.Op, ins.Operand))
		} else {
			code = append(code, byte(ins.Op))
		}
	}

	return
}
