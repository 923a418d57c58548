package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDisassemble(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x4E, 0x01})
	f.Add([]byte{0x0C, 0x1B, 0x26})
	f.Add([]byte{0x4E})
	f.Add([]byte{0x01, 0x00})
	f.Add(Assemble([]Instruction{
		{Op: LoadConst, Operand: 10},
		{Op: LoadConst, Operand: 99},
		{Op: WriteMem},
		{Op: LoadConst, Operand: 10},
		{Op: ReadMem},
	}))

	f.Fuzz(func(t *testing.T, code []byte) {
		assert := assert.New(t)

		program, err := Disassemble(code)
		if err != nil {
			return
		}

		// Any stream that decodes must re-encode to itself, since
		// decoded operands are already within the 10-bit field.
		assert.Equal(len(code), len(Assemble(program)))
		if len(code) > 0 {
			assert.Equal(code, Assemble(program))
		}

		for _, ins := range program {
			assert.True(ins.Op.Valid())
			if ins.Op.HasOperand() {
				assert.GreaterOrEqual(ins.Operand, int64(0))
				assert.Less(ins.Operand, int64(1024))
			}
		}
	})
}
