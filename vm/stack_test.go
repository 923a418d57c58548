package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	s.Push(0x12345678)
	assert.False(s.Empty())
	assert.Equal(1, s.Len())
	assert.Equal(int64(0x12345678), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12345678)
	s.Push(0x7BCDEF01)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(int64(0x7BCDEF01), val)
	assert.Equal(1, s.Len())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(int64(0x12345678), val)
	assert.Equal(0, s.Len())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(int64(0), val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12345678)
	s.Push(0x7BCDEF01)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(int64(0x7BCDEF01), val)
	assert.Equal(2, s.Len())
}

func TestStack_Peek_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Peek()
	assert.False(ok)
	assert.Equal(int64(0), val)
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12345678)
	s.Push(0x7BCDEF01)
	assert.Equal(2, s.Len())

	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, s.Len())
}

func TestStack_Reset_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Reset()
	assert.True(s.Empty())
}
