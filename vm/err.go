package vm

import (
	"errors"

	"github.com/uvmkit/uvm/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrUnderflow     = errors.New(f("stack underflow"))
	ErrUnimplemented = errors.New(f("opcode not implemented"))
)

// ErrTruncated reports a 2-byte word cut short by the end of the
// stream. The value is the byte offset of the word's first byte.
type ErrTruncated int

func (err ErrTruncated) Error() string {
	return f("truncated 2-byte instruction at offset %d", int(err))
}

func (err ErrTruncated) Is(target error) (ok bool) {
	_, ok = target.(ErrTruncated)
	return
}

// ErrUnknownWord reports a 2-byte word whose A field does not name a
// 2-byte opcode.
type ErrUnknownWord struct {
	Offset int
	Word   uint16
	A      Opcode
}

func (err *ErrUnknownWord) Error() string {
	return f("unknown opcode word 0x%04X (A=%d) at offset %d", err.Word, int(err.A), err.Offset)
}

func (err *ErrUnknownWord) Is(target error) (ok bool) {
	_, ok = target.(*ErrUnknownWord)
	return
}

// ErrOutOfRange reports a data memory access outside [0, size).
type ErrOutOfRange struct {
	Op   Opcode
	Addr int64
	Size int
}

func (err *ErrOutOfRange) Error() string {
	return f("%v: address out of range: %d (memory size %d)", err.Op, err.Addr, err.Size)
}

func (err *ErrOutOfRange) Is(target error) (ok bool) {
	_, ok = target.(*ErrOutOfRange)
	return
}

// ErrExec wraps an execution fault with the index of the faulting
// instruction.
type ErrExec struct {
	Index int
	Ins   Instruction
	Err   error
}

func (err *ErrExec) Error() string {
	return f("instruction %d %v: %v", err.Index, err.Ins, err.Err)
}

func (err *ErrExec) Unwrap() error {
	return err.Err
}
