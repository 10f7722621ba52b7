package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// Flag is the bit position of a flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flag returns the given flag bit as 0 or 1.
func (r *Registers) Flag(flag Flag) uint8 {
	return bits.Val(r.F(), flag)
}

// SetFlag ORs value into the given flag bit. value must be 0 or 1.
func (r *Registers) SetFlag(value uint8, flag Flag) {
	r.SetF(r.F() | value<<flag)
}

// ClearFlag clears the given flag bit and nothing else.
func (r *Registers) ClearFlag(flag Flag) {
	r.SetF(bits.Reset(r.F(), flag))
}

// isFlagSet returns true if the given flag is set.
func (r *Registers) isFlagSet(flag Flag) bool {
	return bits.Test(r.F(), flag)
}

// setFlags writes all four flags at once. The unused low nibble
// of F is preserved.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	f := r.F() & 0x0F
	f = bits.Assign(f, FlagZero, zero)
	f = bits.Assign(f, FlagSubtract, subtract)
	f = bits.Assign(f, FlagHalfCarry, halfCarry)
	f = bits.Assign(f, FlagCarry, carry)
	r.SetF(f)
}
