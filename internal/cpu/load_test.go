package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RegisterToRegister(t *testing.T) {
	for dst := RegB; dst <= RegA; dst++ {
		for src := RegB; src <= RegA; src++ {
			if dst == RegHLIndirect && src == RegHLIndirect {
				continue
			}
			opcode := 0x40 | dst<<3 | src
			t.Run(fmt.Sprintf("0x%02X %s", opcode, InstructionSet[opcode].Name()), func(t *testing.T) {
				c, m := newTestCPU()
				c.HL.SetUint16(0xD0D0)
				value := uint8(0x5A)
				if src == RegH || src == RegL {
					// keep HL pointing at the same address
					value = 0xD0
				}
				c.setOperand8(src, value)
				c.SetF(0xB0)

				execute(c, m, opcode)

				assert.Equal(t, value, c.operand8(dst))
				assert.Equal(t, uint8(0xB0), c.F(), "loads leave the flags alone")
				assert.Equal(t, uint16(testAddress+1), c.PC)
			})
		}
	}
}

func TestLoad_Immediate8(t *testing.T) {
	for reg := RegB; reg <= RegA; reg++ {
		c, m := newTestCPU()
		c.HL.SetUint16(0xD100)

		execute(c, m, 0x06|reg<<3, 0x99)

		assert.Equal(t, uint8(0x99), c.operand8(reg), registerNames[reg])
		assert.Equal(t, uint16(testAddress+2), c.PC, registerNames[reg])
	}
}

func TestLoad_Immediate16(t *testing.T) {
	for i, pair := range registerPairs {
		c, m := newTestCPU()

		cycles := execute(c, m, 0x01|uint8(i)<<4, 0x34, 0x12)

		assert.Equal(t, uint16(0x1234), pair.get(c), pair.name)
		assert.Equal(t, uint16(testAddress+3), c.PC, pair.name)
		assert.Equal(t, uint8(12), cycles, pair.name)
	}
}

func TestLoad_Indirect(t *testing.T) {
	t.Run("LD (BC), A", func(t *testing.T) {
		c, m := newTestCPU()
		c.SetA(0x42)
		c.BC.SetUint16(0xD010)
		execute(c, m, 0x02)
		assert.Equal(t, uint8(0x42), m.Read(0xD010))
	})
	t.Run("LD (DE), A", func(t *testing.T) {
		c, m := newTestCPU()
		c.SetA(0x43)
		c.DE.SetUint16(0xD020)
		execute(c, m, 0x12)
		assert.Equal(t, uint8(0x43), m.Read(0xD020))
	})
	t.Run("LD A, (BC)", func(t *testing.T) {
		c, m := newTestCPU()
		c.BC.SetUint16(0xD030)
		m.Write(0xD030, 0x44)
		execute(c, m, 0x0A)
		assert.Equal(t, uint8(0x44), c.A())
	})
	t.Run("LD A, (DE)", func(t *testing.T) {
		c, m := newTestCPU()
		c.DE.SetUint16(0xD040)
		m.Write(0xD040, 0x45)
		execute(c, m, 0x1A)
		assert.Equal(t, uint8(0x45), c.A())
	})
}

func TestLoad_HLIncrementDecrement(t *testing.T) {
	tests := []struct {
		opcode     uint8
		store      bool
		hl, nextHL uint16
	}{
		{0x22, true, 0xD000, 0xD001},
		{0x32, true, 0xD000, 0xCFFF},
		{0x2A, false, 0xD000, 0xD001},
		{0x3A, false, 0xD000, 0xCFFF},
		{0x22, true, 0xFFFF, 0x0000},
		{0x3A, false, 0x0000, 0xFFFF},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s HL=0x%04X", InstructionSet[tt.opcode].Name(), tt.hl), func(t *testing.T) {
			c, m := newTestCPU()
			c.HL.SetUint16(tt.hl)
			if tt.store {
				c.SetA(0x77)
			} else {
				m.Write(tt.hl, 0x77)
			}

			cycles := execute(c, m, tt.opcode)

			assert.Equal(t, uint8(0x77), c.A())
			assert.Equal(t, uint8(0x77), m.Read(tt.hl))
			assert.Equal(t, tt.nextHL, c.HL.Uint16())
			assert.Equal(t, uint8(8), cycles)
		})
	}
}

func TestLoad_Hardware(t *testing.T) {
	t.Run("LDH (a8), A", func(t *testing.T) {
		c, m := newTestCPU()
		c.SetA(0x91)
		cycles := execute(c, m, 0xE0, 0x80)
		assert.Equal(t, uint8(0x91), m.Read(0xFF80))
		assert.Equal(t, uint16(testAddress+2), c.PC)
		assert.Equal(t, uint8(12), cycles)
	})
	t.Run("LDH A, (a8)", func(t *testing.T) {
		c, m := newTestCPU()
		m.Write(0xFFFE, 0x92)
		execute(c, m, 0xF0, 0xFE)
		assert.Equal(t, uint8(0x92), c.A())
	})
	t.Run("LD (C), A", func(t *testing.T) {
		c, m := newTestCPU()
		c.SetA(0x93)
		c.BC.SetLow(0x85)
		cycles := execute(c, m, 0xE2)
		assert.Equal(t, uint8(0x93), m.Read(0xFF85))
		assert.Equal(t, uint16(testAddress+1), c.PC)
		assert.Equal(t, uint8(8), cycles)
	})
	t.Run("LD A, (C)", func(t *testing.T) {
		c, m := newTestCPU()
		c.BC.SetLow(0x86)
		m.Write(0xFF86, 0x94)
		execute(c, m, 0xF2)
		assert.Equal(t, uint8(0x94), c.A())
	})
}

func TestLoad_Absolute(t *testing.T) {
	c, m := newTestCPU()
	c.SetA(0xAB)

	cycles := execute(c, m, 0xEA, 0x34, 0xD2)
	require.Equal(t, uint8(0xAB), m.Read(0xD234))
	assert.Equal(t, uint16(testAddress+3), c.PC)
	assert.Equal(t, uint8(16), cycles)

	c.SetA(0)
	execute(c, m, 0xFA, 0x34, 0xD2)
	assert.Equal(t, uint8(0xAB), c.A())
	assert.Equal(t, uint16(testAddress+6), c.PC)
	assert.Equal(t, uint16(32), c.CycleCount)
}
