package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncrement(t *testing.T) {
	tests := []struct {
		name     string
		value    uint8
		carry    uint8
		expected uint8
		flags    uint8
	}{
		{"plain", 0x01, 0, 0x02, 0b0000_0000},
		{"half carry", 0x0F, 0, 0x10, 0b0010_0000},
		{"wrap", 0xFF, 0, 0x00, 0b1010_0000},
		{"carry kept", 0x01, 1, 0x02, 0b0001_0000},
	}
	for _, tt := range tests {
		for reg := RegB; reg <= RegA; reg++ {
			c, m := newTestCPU()
			c.HL.SetUint16(0xD000)
			c.setOperand8(reg, tt.value)
			c.SetF(0b0100_0000)
			c.SetFlag(tt.carry, FlagCarry)

			execute(c, m, 0x04|reg<<3)

			assert.Equal(t, tt.expected, c.operand8(reg), "%s %s", tt.name, InstructionSet[0x04|reg<<3].Name())
			assert.Equal(t, tt.flags, c.F(), "%s %s", tt.name, InstructionSet[0x04|reg<<3].Name())
		}
	}
}

func TestDecrement(t *testing.T) {
	tests := []struct {
		name     string
		value    uint8
		carry    uint8
		expected uint8
		flags    uint8
	}{
		{"plain", 0x02, 0, 0x01, 0b0100_0000},
		{"zero", 0x01, 0, 0x00, 0b1100_0000},
		{"half borrow", 0x10, 0, 0x0F, 0b0110_0000},
		{"wrap", 0x00, 0, 0xFF, 0b0110_0000},
		{"carry kept", 0x02, 1, 0x01, 0b0101_0000},
	}
	for _, tt := range tests {
		for reg := RegB; reg <= RegA; reg++ {
			c, m := newTestCPU()
			c.HL.SetUint16(0xD000)
			c.setOperand8(reg, tt.value)
			c.SetFlag(tt.carry, FlagCarry)

			execute(c, m, 0x05|reg<<3)

			assert.Equal(t, tt.expected, c.operand8(reg), "%s %s", tt.name, InstructionSet[0x05|reg<<3].Name())
			assert.Equal(t, tt.flags, c.F(), "%s %s", tt.name, InstructionSet[0x05|reg<<3].Name())
		}
	}
}

func TestIncrementDecrement16(t *testing.T) {
	for i, pair := range registerPairs {
		c, m := newTestCPU()
		c.SetF(0xF0)

		pair.set(c, 0xFFFF)
		cycles := execute(c, m, 0x03|uint8(i)<<4)
		assert.Equal(t, uint16(0x0000), pair.get(c), "INC %s", pair.name)
		assert.Equal(t, uint8(8), cycles)

		execute(c, m, 0x0B|uint8(i)<<4)
		assert.Equal(t, uint16(0xFFFF), pair.get(c), "DEC %s", pair.name)

		pair.set(c, 0x00FF)
		execute(c, m, 0x03|uint8(i)<<4)
		assert.Equal(t, uint16(0x0100), pair.get(c), "INC %s", pair.name)

		assert.Equal(t, uint8(0xF0), c.F(), "16-bit INC and DEC leave the flags alone")
	}
}
