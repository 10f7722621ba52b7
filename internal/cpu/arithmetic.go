package cpu

import "fmt"

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 0x01
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 0x01
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

func defineArithmeticInstructions() {
	for reg := RegB; reg <= RegA; reg++ {
		reg := reg
		var cycles uint8 = 4
		if reg == RegHLIndirect {
			cycles = 12
		}
		DefineInstruction(0x04|reg<<3, fmt.Sprintf("INC %s", registerNames[reg]), 1, cycles, func(c *CPU) {
			c.setOperand8(reg, c.increment(c.operand8(reg)))
		})
		DefineInstruction(0x05|reg<<3, fmt.Sprintf("DEC %s", registerNames[reg]), 1, cycles, func(c *CPU) {
			c.setOperand8(reg, c.decrement(c.operand8(reg)))
		})
	}

	// INC nn / DEC nn leave the flags alone
	for i, pair := range registerPairs {
		pair := pair
		DefineInstruction(0x03|uint8(i)<<4, fmt.Sprintf("INC %s", pair.name), 1, 8, func(c *CPU) {
			pair.set(c, pair.get(c)+1)
		})
		DefineInstruction(0x0B|uint8(i)<<4, fmt.Sprintf("DEC %s", pair.name), 1, 8, func(c *CPU) {
			pair.set(c, pair.get(c)-1)
		})
	}
}
