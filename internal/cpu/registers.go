package cpu

import "github.com/thelolagemann/dmgcore/internal/types"

// Register8 selects one of the 8-bit operands encoded in the low three
// bits of an opcode. Index 6 is not a register but the byte at (HL).
type Register8 = uint8

const (
	RegB Register8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegHLIndirect
	RegA
)

// registerNames is indexed by Register8.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// Registers contains the four register pairs. Each pair is a single
// 16-bit store; the 8-bit registers are its halves.
type Registers struct {
	AF types.RegisterPair
	BC types.RegisterPair
	DE types.RegisterPair
	HL types.RegisterPair
}

// A returns the accumulator, the high byte of AF.
func (r *Registers) A() uint8 { return r.AF.High() }

// SetA sets the accumulator.
func (r *Registers) SetA(v uint8) { r.AF.SetHigh(v) }

// F returns the flags byte, the low byte of AF.
func (r *Registers) F() uint8 { return r.AF.Low() }

// SetF replaces the flags byte.
func (r *Registers) SetF(v uint8) { r.AF.SetLow(v) }

// Register returns the value of an 8-bit register. RegHLIndirect has
// no register behind it and panics; use CPU.operand8 for it.
func (r *Registers) Register(reg Register8) uint8 {
	switch reg {
	case RegB:
		return r.BC.High()
	case RegC:
		return r.BC.Low()
	case RegD:
		return r.DE.High()
	case RegE:
		return r.DE.Low()
	case RegH:
		return r.HL.High()
	case RegL:
		return r.HL.Low()
	case RegA:
		return r.AF.High()
	}
	panic("cpu: (HL) is not a register")
}

// SetRegister sets the value of an 8-bit register.
func (r *Registers) SetRegister(reg Register8, v uint8) {
	switch reg {
	case RegB:
		r.BC.SetHigh(v)
	case RegC:
		r.BC.SetLow(v)
	case RegD:
		r.DE.SetHigh(v)
	case RegE:
		r.DE.SetLow(v)
	case RegH:
		r.HL.SetHigh(v)
	case RegL:
		r.HL.SetLow(v)
	case RegA:
		r.AF.SetHigh(v)
	default:
		panic("cpu: (HL) is not a register")
	}
}
