// Package cpu implements the instruction core of the Game Boy CPU: the
// register file, the fetch-decode-execute cycle and the 8-bit ALU.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/types"
)

// Memory is the byte addressable memory the CPU executes from.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer.
	SP uint16
	// Registers contains the register pairs and their 8-bit halves.
	Registers

	// CycleCount is the running count of elapsed clock cycles. It is
	// never reset and wraps as a 16-bit counter.
	CycleCount uint16
	// Opcode is the last fetched instruction byte.
	Opcode uint8

	mmu Memory
}

// NewCPU creates a new CPU instance with the given memory. Registers
// start zeroed, execution starts at startPC.
func NewCPU(mem Memory, startPC uint16) *CPU {
	return &CPU{
		PC:  startPC,
		mmu: mem,
	}
}

// Step fetches the opcode at PC and executes it, returning the number
// of cycles it took. Exactly one instruction runs per call.
//
// An opcode without an instruction panics with an *UndefinedOpcodeError.
func (c *CPU) Step() uint8 {
	c.Opcode = c.mmu.Read(c.PC)
	instruction := &InstructionSet[c.Opcode]

	instruction.fn(c)

	c.PC += uint16(instruction.length)
	c.CycleCount += uint16(instruction.cycles)
	return instruction.cycles
}

// readOperand reads the immediate byte following the opcode. PC has not
// been advanced yet while an instruction executes.
func (c *CPU) readOperand() uint8 {
	return c.mmu.Read(c.PC + 1)
}

// readOperand16 reads the little-endian immediate word following the opcode.
func (c *CPU) readOperand16() uint16 {
	return uint16(c.mmu.Read(c.PC+1)) | uint16(c.mmu.Read(c.PC+2))<<8
}

// operand8 returns the value of an 8-bit operand, reading
// memory at HL for RegHLIndirect.
func (c *CPU) operand8(reg Register8) uint8 {
	if reg == RegHLIndirect {
		return c.mmu.Read(c.HL.Uint16())
	}
	return c.Register(reg)
}

// setOperand8 writes an 8-bit operand, writing memory at HL for RegHLIndirect.
func (c *CPU) setOperand8(reg Register8, value uint8) {
	if reg == RegHLIndirect {
		c.mmu.Write(c.HL.Uint16(), value)
		return
	}
	c.SetRegister(reg, value)
}

func (c *CPU) String() string {
	return fmt.Sprintf("A: %02x F: %02x B: %02x C: %02x D: %02x E: %02x H: %02x L: %02x SP: %04x PC: %04x cycles: %d",
		c.A(), c.F(), c.BC.High(), c.BC.Low(), c.DE.High(), c.DE.Low(), c.HL.High(), c.HL.Low(), c.SP, c.PC, c.CycleCount)
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	c.AF.SetUint16(s.Read16())
	c.BC.SetUint16(s.Read16())
	c.DE.SetUint16(s.Read16())
	c.HL.SetUint16(s.Read16())
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.CycleCount = s.Read16()
	c.Opcode = s.Read8()
}

func (c *CPU) Save(s *types.State) {
	s.Write16(c.AF.Uint16())
	s.Write16(c.BC.Uint16())
	s.Write16(c.DE.Uint16())
	s.Write16(c.HL.Uint16())
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.Write16(c.CycleCount)
	s.Write8(c.Opcode)
}
