package cpu

import "fmt"

// Instruction is an entry of the instruction set. How far PC advances
// and how many cycles an instruction costs are independent: (HL) forms
// are one byte long but cost a memory access, immediate forms are two
// bytes long and cost the same single access.
type Instruction struct {
	name   string
	length uint8
	cycles uint8
	fn     func(*CPU)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string { return i.name }

// Length returns the number of bytes PC advances by.
func (i Instruction) Length() uint8 { return i.length }

// Cycles returns the number of clock cycles the instruction takes.
func (i Instruction) Cycles() uint8 { return i.cycles }

// Defined reports whether the opcode has an instruction bound to it.
func (i Instruction) Defined() bool { return i.length != 0 }

// InstructionSet is indexed by opcode. Opcodes without an instruction
// run undefinedOpcode.
var InstructionSet [256]Instruction

// DefineInstruction binds an instruction to opcode in the InstructionSet.
func DefineInstruction(opcode uint8, name string, length, cycles uint8, fn func(*CPU)) {
	if InstructionSet[opcode].Defined() {
		panic(fmt.Sprintf("cpu: opcode 0x%02X defined twice (%s, %s)", opcode, InstructionSet[opcode].name, name))
	}
	InstructionSet[opcode] = Instruction{
		name:   name,
		length: length,
		cycles: cycles,
		fn:     fn,
	}
}

// UndefinedOpcodeError is the panic value of executing an opcode that
// has no instruction.
type UndefinedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UndefinedOpcodeError) Error() string {
	return fmt.Sprintf("cpu: undefined opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func undefinedOpcode(c *CPU) {
	panic(&UndefinedOpcodeError{Opcode: c.Opcode, PC: c.PC})
}

func init() {
	DefineInstruction(0x00, "NOP", 1, 4, func(c *CPU) {})

	defineLoadInstructions()
	defineArithmeticInstructions()
	defineALUInstructions()

	for opcode := range InstructionSet {
		if !InstructionSet[opcode].Defined() {
			InstructionSet[opcode] = Instruction{name: "undefined", fn: undefinedOpcode}
		}
	}
}
