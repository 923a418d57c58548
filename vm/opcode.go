package vm

import (
	"fmt"
)

// Opcode is the 6-bit A field selecting which operation an
// instruction performs.
type Opcode int

const (
	LoadConst = Opcode(14) // 2-byte word, B field is the constant
	Le        = Opcode(12) // 1 byte
	WriteMem  = Opcode(27) // 1 byte
	ReadMem   = Opcode(38) // 1 byte
)

var opcodeName = map[Opcode]string{
	LoadConst: "LOAD_CONST",
	Le:        "LE",
	WriteMem:  "WRITE_MEM",
	ReadMem:   "READ_MEM",
}

func (op Opcode) String() string {
	name, ok := opcodeName[op]
	if !ok {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return name
}

// Valid returns true if the Opcode is one of the four defined A values.
func (op Opcode) Valid() bool {
	_, ok := opcodeName[op]
	return ok
}

// HasOperand returns true if the Opcode carries a B field.
func (op Opcode) HasOperand() bool {
	return op == LoadConst
}

// Width returns the encoded size of the Opcode in bytes.
func (op Opcode) Width() int {
	if op == LoadConst {
		return 2
	}
	return 1
}

// Instruction is one operation with its optional immediate operand.
// Operand is meaningful only when Op.HasOperand().
type Instruction struct {
	Op      Opcode
	Operand int64
}

func (ins Instruction) String() string {
	if ins.Op.HasOperand() {
		return fmt.Sprintf("%v(%d)", ins.Op, ins.Operand)
	}
	return ins.Op.String()
}

// PackWord packs an opcode and operand into the 16-bit word layout,
// bits 0-5 the A field and bits 6-15 the B field. The cast masks the
// operand to 10 bits; negative operands wrap two's complement. No
// range check is applied here or anywhere else in the encoder.
func PackWord(op Opcode, operand int64) uint16 {
	return uint16(int64(op)&0x3F | operand<<6)
}

// UnpackWord splits a 16-bit word into its A and B fields.
func UnpackWord(word uint16) (a Opcode, b int64) {
	a = Opcode(word & 0x3F)
	b = int64(word >> 6)
	return
}
