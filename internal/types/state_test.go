package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0xAB)
	s.Write16(0x1234)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	assert.Equal(t, []byte{0xAB, 0x34, 0x12, 1, 1, 2, 3}, s.Bytes())
	assert.Equal(t, 7, s.Len())

	r := StateFromBytes(s.Bytes())
	assert.Equal(t, uint8(0xAB), r.Read8())
	assert.Equal(t, uint16(0x1234), r.Read16())
	assert.True(t, r.ReadBool())
	p := make([]byte, 3)
	r.ReadData(p)
	assert.Equal(t, []byte{1, 2, 3}, p)
}
