package asm

import (
	"errors"

	"github.com/uvmkit/uvm/translate"
)

var f = translate.From

var (
	ErrSourceFormat = errors.New(f("top-level must be a list of instructions"))
	ErrOpMissing    = errors.New(f("missing string field 'op'"))
	ErrValueMissing = errors.New(f("LOAD_CONST requires field 'value'"))
	ErrValueInteger = errors.New(f("'value' must be an integer"))
)

type ErrOpUnknown string

func (err ErrOpUnknown) Error() string {
	return f("unknown op '%v'", string(err))
}

type ErrDefMissing string

func (err ErrDefMissing) Error() string {
	return f("def %v missing", string(err))
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrStatement wraps a validation error with the index of the
// offending instruction record.
type ErrStatement struct {
	Index int
	Err   error
}

func (err *ErrStatement) Error() string {
	return f("instruction #%d %v", err.Index, err.Err)
}

func (err *ErrStatement) Unwrap() error {
	return err.Err
}
