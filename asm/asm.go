// Package asm loads the YAML instruction source format, validates it,
// and produces the instruction list the vm encoder consumes. All
// source-format concerns live here; the encoder never sees raw text.
package asm

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"gopkg.in/yaml.v3"

	"github.com/uvmkit/uvm/internal"
	"github.com/uvmkit/uvm/vm"
)

// mnemonics maps source op names to opcodes.
var mnemonics = map[string]vm.Opcode{
	"LOAD_CONST": vm.LoadConst,
	"READ_MEM":   vm.ReadMem,
	"WRITE_MEM":  vm.WriteMem,
	"LE":         vm.Le,
}

// System defines, always in scope for named values and $(...)
// expressions.
var sysDefs = map[string]int64{
	"MEM_SIZE":     int64(vm.DEFAULT_MEM_SIZE),
	"A_LOAD_CONST": int64(vm.LoadConst),
	"A_READ_MEM":   int64(vm.ReadMem),
	"A_WRITE_MEM":  int64(vm.WriteMem),
	"A_LE":         int64(vm.Le),
}

// Statement is one instruction record of the source file. Value may
// be an integer, the name of a define, or a $(...) expression string.
type Statement struct {
	Op    string `yaml:"op"`
	Value any    `yaml:"value"`
}

// Source is a parsed source file: optional named constants plus the
// instruction list.
type Source struct {
	Defs map[string]int64 `yaml:"defs"`
	Code []Statement      `yaml:"code"`
}

// Defines iterates the constants in scope for value resolution,
// system defines first so that file defines shadow them.
func (src *Source) Defines() iter.Seq2[string, int64] {
	return internal.IterSeq2Concat(maps.All(sysDefs), maps.All(src.Defs))
}

// define looks up a named constant; the last match wins, so a file
// define shadows a system define of the same name.
func (src *Source) define(name string) (value int64, ok bool) {
	for key, val := range src.Defines() {
		if key == name {
			value, ok = val, true
		}
	}
	return
}

// evalExpr does assembly-time $(...) evaluations.
func (src *Source) evalExpr(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range src.Defines() {
		pred[key] = starlark.MakeInt64(val)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return 0, ErrExpression(expr)
	}
	st_rc, ok := dict["rc"]
	if !ok {
		return 0, ErrExpression(expr)
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		return 0, ErrExpression(expr)
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		return 0, ErrExpression(expr)
	}
	return st_int64, nil
}

// resolve turns a statement's value field into an operand.
func (src *Source) resolve(value any) (out int64, err error) {
	switch v := value.(type) {
	case nil:
		err = ErrValueMissing
	case int:
		out = int64(v)
	case int64:
		out = v
	case uint64:
		out = int64(v)
	case string:
		word := strings.TrimSpace(v)
		if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
			out, err = src.evalExpr(word[2 : len(word)-1])
			return
		}
		parsed, perr := strconv.ParseInt(word, 0, 64)
		if perr == nil {
			out = parsed
			return
		}
		var ok bool
		out, ok = src.define(word)
		if !ok {
			err = ErrDefMissing(word)
		}
	default:
		err = ErrValueInteger
	}
	return
}

// statement validates one record and builds its instruction.
func (src *Source) statement(stmt Statement) (ins vm.Instruction, err error) {
	name := strings.TrimSpace(stmt.Op)
	op, ok := mnemonics[name]
	if !ok {
		if name == "" {
			err = ErrOpMissing
		} else {
			err = ErrOpUnknown(name)
		}
		return
	}

	ins.Op = op
	if !op.HasOperand() {
		return
	}

	ins.Operand, err = src.resolve(stmt.Value)
	return
}

// Parse reads a YAML source and returns the validated program. The
// top level is either a plain list of instruction records, or a
// mapping with a 'defs' section of named constants and the list under
// 'code'. Operand range is not validated here; out-of-range values
// truncate at pack time.
func Parse(r io.Reader) (program []vm.Instruction, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return
	}

	var doc yaml.Node
	err = yaml.Unmarshal(text, &doc)
	if err != nil {
		return
	}

	var root *yaml.Node
	if len(doc.Content) > 0 {
		root = doc.Content[0]
	}

	src := &Source{}
	switch {
	case root == nil:
		return nil, ErrSourceFormat
	case root.Kind == yaml.SequenceNode:
		err = root.Decode(&src.Code)
	case root.Kind == yaml.MappingNode:
		err = root.Decode(src)
	default:
		return nil, ErrSourceFormat
	}
	if err != nil {
		return nil, err
	}

	for n, stmt := range src.Code {
		var ins vm.Instruction
		ins, err = src.statement(stmt)
		if err != nil {
			return nil, &ErrStatement{Index: n, Err: err}
		}
		program = append(program, ins)
	}

	return
}

// Listing yields the numbered instruction list, one line per
// instruction, for the assembler's test mode.
func Listing(program []vm.Instruction) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for n, ins := range program {
			var line string
			if ins.Op.HasOperand() {
				line = fmt.Sprintf("op=%v A=%d B=%d", ins.Op, int(ins.Op), ins.Operand)
			} else {
				line = fmt.Sprintf("op=%v A=%d", ins.Op, int(ins.Op))
			}
			if !yield(n, line) {
				return
			}
		}
	}
}
