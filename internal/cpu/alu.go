package cpu

import "fmt"

// add adds n to the A Register, plus the carry flag if useCarry is set.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, useCarry bool) {
	var carry uint8
	if useCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	a := c.A()
	sum := uint16(a) + uint16(n) + uint16(carry)
	sumHalf := a&0xF + n&0xF + carry
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.SetA(uint8(sum))
}

// sub subtracts n from the A Register, and the carry flag if useCarry is set.
//
//	SUB A, n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, useCarry bool) {
	c.SetA(c.subtract(n, useCarry))
}

// subtract computes A - n (- carry) and sets the flags, without
// storing the result.
func (c *CPU) subtract(n uint8, useCarry bool) uint8 {
	var carry int16
	if useCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	a := c.A()
	diff := int16(a) - int16(n) - carry
	diffHalf := int16(a&0xF) - int16(n&0xF) - carry
	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	return uint8(diff)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.SetA(c.A() & n)
	c.setFlags(c.A() == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.SetA(c.A() | n)
	c.setFlags(c.A() == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.SetA(c.A() ^ n)
	c.setFlags(c.A() == 0, false, false, false)
}

// compare compares n to the A Register. The flags are set as
// for SUB, but A is left unchanged.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.subtract(n, false)
}

// aluOperations is ordered by bits 3-5 of the opcode.
var aluOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8)
}{
	{"ADD", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

// defineALUInstructions defines 0x80 - 0xBF, the register and (HL)
// forms, and the d8 forms 0xC6, 0xCE, ..., 0xFE.
func defineALUInstructions() {
	for i, op := range aluOperations {
		operation := op.fn

		for reg := RegB; reg <= RegA; reg++ {
			reg := reg
			var cycles uint8 = 4
			if reg == RegHLIndirect {
				cycles = 8
			}
			DefineInstruction(
				0x80|uint8(i)<<3|reg,
				fmt.Sprintf("%s A, %s", op.name, registerNames[reg]),
				1, cycles,
				func(c *CPU) { operation(c, c.operand8(reg)) },
			)
		}

		DefineInstruction(
			0xC6|uint8(i)<<3,
			fmt.Sprintf("%s A, d8", op.name),
			2, 8,
			func(c *CPU) { operation(c, c.readOperand()) },
		)
	}
}
