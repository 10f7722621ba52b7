package cpu

import "fmt"

// registerPair16 is the 16-bit operand encoded in bits 4-5 of an
// opcode: BC, DE, HL or SP.
type registerPair16 struct {
	name string
	get  func(c *CPU) uint16
	set  func(c *CPU, v uint16)
}

var registerPairs = [4]registerPair16{
	{"BC", func(c *CPU) uint16 { return c.BC.Uint16() }, func(c *CPU, v uint16) { c.BC.SetUint16(v) }},
	{"DE", func(c *CPU) uint16 { return c.DE.Uint16() }, func(c *CPU, v uint16) { c.DE.SetUint16(v) }},
	{"HL", func(c *CPU) uint16 { return c.HL.Uint16() }, func(c *CPU, v uint16) { c.HL.SetUint16(v) }},
	{"SP", func(c *CPU) uint16 { return c.SP }, func(c *CPU, v uint16) { c.SP = v }},
}

// loadMemoryToA loads the byte at address into A and returns
// address, so HL+/HL- forms can chain the adjustment.
//
//	LD A, (nn)
func (c *CPU) loadMemoryToA(address uint16) uint16 {
	c.SetA(c.mmu.Read(address))
	return address
}

// loadAToMemory stores A at address and returns address.
//
//	LD (nn), A
func (c *CPU) loadAToMemory(address uint16) uint16 {
	c.mmu.Write(address, c.A())
	return address
}

// loadAToHardware stores A in the I/O page (0xFF00 + offset).
//
//	LDH (a8), A
//	LD (C), A
func (c *CPU) loadAToHardware(offset uint8) {
	c.mmu.Write(0xFF00+uint16(offset), c.A())
}

// loadHardwareToA loads A from the I/O page (0xFF00 + offset).
//
//	LDH A, (a8)
//	LD A, (C)
func (c *CPU) loadHardwareToA(offset uint8) {
	c.SetA(c.mmu.Read(0xFF00 + uint16(offset)))
}

func defineLoadInstructions() {
	// LD nn, d16
	for i, pair := range registerPairs {
		pair := pair
		DefineInstruction(0x01|uint8(i)<<4, fmt.Sprintf("LD %s, d16", pair.name), 3, 12, func(c *CPU) {
			pair.set(c, c.readOperand16())
		})
	}

	DefineInstruction(0x02, "LD (BC), A", 1, 8, func(c *CPU) { c.loadAToMemory(c.BC.Uint16()) })
	DefineInstruction(0x12, "LD (DE), A", 1, 8, func(c *CPU) { c.loadAToMemory(c.DE.Uint16()) })
	DefineInstruction(0x22, "LD (HL+), A", 1, 8, func(c *CPU) { c.HL.SetUint16(c.loadAToMemory(c.HL.Uint16()) + 1) })
	DefineInstruction(0x32, "LD (HL-), A", 1, 8, func(c *CPU) { c.HL.SetUint16(c.loadAToMemory(c.HL.Uint16()) - 1) })
	DefineInstruction(0x0A, "LD A, (BC)", 1, 8, func(c *CPU) { c.loadMemoryToA(c.BC.Uint16()) })
	DefineInstruction(0x1A, "LD A, (DE)", 1, 8, func(c *CPU) { c.loadMemoryToA(c.DE.Uint16()) })
	DefineInstruction(0x2A, "LD A, (HL+)", 1, 8, func(c *CPU) { c.HL.SetUint16(c.loadMemoryToA(c.HL.Uint16()) + 1) })
	DefineInstruction(0x3A, "LD A, (HL-)", 1, 8, func(c *CPU) { c.HL.SetUint16(c.loadMemoryToA(c.HL.Uint16()) - 1) })

	// LD n, d8
	for reg := RegB; reg <= RegA; reg++ {
		reg := reg
		var cycles uint8 = 8
		if reg == RegHLIndirect {
			cycles = 12
		}
		DefineInstruction(0x06|reg<<3, fmt.Sprintf("LD %s, d8", registerNames[reg]), 2, cycles, func(c *CPU) {
			c.setOperand8(reg, c.readOperand())
		})
	}

	// LD n, n - 0x76 would be LD (HL), (HL), which encodes HALT instead
	for dst := RegB; dst <= RegA; dst++ {
		for src := RegB; src <= RegA; src++ {
			if dst == RegHLIndirect && src == RegHLIndirect {
				continue
			}
			dst, src := dst, src
			var cycles uint8 = 4
			if dst == RegHLIndirect || src == RegHLIndirect {
				cycles = 8
			}
			DefineInstruction(0x40|dst<<3|src, fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), 1, cycles, func(c *CPU) {
				c.setOperand8(dst, c.operand8(src))
			})
		}
	}

	DefineInstruction(0xE0, "LDH (a8), A", 2, 12, func(c *CPU) { c.loadAToHardware(c.readOperand()) })
	DefineInstruction(0xF0, "LDH A, (a8)", 2, 12, func(c *CPU) { c.loadHardwareToA(c.readOperand()) })
	DefineInstruction(0xE2, "LD (C), A", 1, 8, func(c *CPU) { c.loadAToHardware(c.BC.Low()) })
	DefineInstruction(0xF2, "LD A, (C)", 1, 8, func(c *CPU) { c.loadHardwareToA(c.BC.Low()) })
	DefineInstruction(0xEA, "LD (a16), A", 3, 16, func(c *CPU) { c.loadAToMemory(c.readOperand16()) })
	DefineInstruction(0xFA, "LD A, (a16)", 3, 16, func(c *CPU) { c.loadMemoryToA(c.readOperand16()) })
}
