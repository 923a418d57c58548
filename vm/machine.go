package vm

import (
	"go.uber.org/zap"
)

const (
	DEFAULT_MEM_SIZE = 1024 // Default data memory size in cells.
)

// Machine is one run's worth of execution state: the operand stack
// and the fixed-size data memory. Code memory is the decoded program
// passed to Run; no instruction ever reads or writes its own encoding.
type Machine struct {
	Stack Stack   // Operand stack.
	Data  []int64 // Data memory, zero-initialized.

	logger *zap.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithMemSize sets the data memory size in cells.
func WithMemSize(size int) Option {
	return func(m *Machine) {
		m.Data = make([]int64, size)
	}
}

// WithLogger sets the execution trace logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		m.logger = l
	}
}

// New creates a Machine with a zeroed data memory and an empty stack.
func New(opts ...Option) (m *Machine) {
	m = &Machine{
		Data:   make([]int64, DEFAULT_MEM_SIZE),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.Named("vm")

	return
}

// Run executes the program strictly in order, each instruction exactly
// once. The first fault aborts the run with the faulting index; the
// effects of the instructions before it remain.
func (m *Machine) Run(program []Instruction) (err error) {
	for n, ins := range program {
		err = m.Step(ins)
		if err != nil {
			return &ErrExec{Index: n, Ins: ins, Err: err}
		}
	}

	return
}

// Step executes a single instruction.
func (m *Machine) Step(ins Instruction) (err error) {
	m.logger.Debug("exec",
		zap.Stringer("ins", ins),
		zap.Int("stack", m.Stack.Len()),
	)

	switch ins.Op {
	case LoadConst:
		m.Stack.Push(ins.Operand)
	case ReadMem:
		addr, ok := m.Stack.Pop()
		if !ok {
			return ErrUnderflow
		}
		if addr < 0 || addr >= int64(len(m.Data)) {
			return &ErrOutOfRange{Op: ReadMem, Addr: addr, Size: len(m.Data)}
		}
		m.Stack.Push(m.Data[addr])
	case WriteMem:
		// Stack order: ... [addr, value] -> mem[addr] = value.
		// The value was pushed last, so it pops first.
		value, ok := m.Stack.Pop()
		if !ok {
			return ErrUnderflow
		}
		addr, ok := m.Stack.Pop()
		if !ok {
			return ErrUnderflow
		}
		if addr < 0 || addr >= int64(len(m.Data)) {
			return &ErrOutOfRange{Op: WriteMem, Addr: addr, Size: len(m.Data)}
		}
		m.Data[addr] = value
	case Le:
		// Decodable but has no execution semantics in this
		// instruction set revision. Fault instead of silently
		// continuing, so incomplete programs never appear to
		// succeed.
		return ErrUnimplemented
	default:
		panic("vm: instruction with invalid opcode")
	}

	return
}
