// Package vm implements the UVM variant-23 machine: the byte-oriented
// instruction encoding, the greedy stream decoder, and the stack
// machine that executes decoded programs against a fixed-size data
// memory.
//
// The instruction set has four opcodes identified by a 6-bit A field.
// LOAD_CONST occupies a 16-bit little-endian word carrying a 10-bit
// constant in the B field; the remaining opcodes occupy a single byte
// equal to their A value. The stream has no framing; instruction
// boundaries are recovered by inspecting byte values during decode.
package vm
