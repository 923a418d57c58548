package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleLoadConst(t *testing.T) {
	assert := assert.New(t)

	// word = 14 | (5<<6) = 0x014E, low byte first
	code := Assemble([]Instruction{{Op: LoadConst, Operand: 5}})
	assert.Equal([]byte{0x4E, 0x01}, code)
}

func TestAssembleSingleByte(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op   Opcode
		want byte
	}){
		{ReadMem, 0x26},
		{WriteMem, 0x1B},
		{Le, 0x0C},
	}

	for _, entry := range table {
		code := Assemble([]Instruction{{Op: entry.op}})
		assert.Equal([]byte{entry.want}, code, entry.op.String())
	}
}

func TestAssembleProgram(t *testing.T) {
	assert := assert.New(t)

	code := Assemble([]Instruction{
		{Op: LoadConst, Operand: 10},
		{Op: LoadConst, Operand: 99},
		{Op: WriteMem},
		{Op: LoadConst, Operand: 10},
		{Op: ReadMem},
	})

	// Word stream with no separators: 10<<6|14 = 0x028E,
	// 99<<6|14 = 0x18CE.
	assert.Equal([]byte{0x8E, 0x02, 0xCE, 0x18, 0x1B, 0x8E, 0x02, 0x26}, code)
}

func TestAssembleEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, len(Assemble(nil)))
}
