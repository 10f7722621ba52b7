package types

// Register represents an 8-bit GB Register, one half of a RegisterPair.
type Register = uint8

// RegisterPair holds a 16-bit value that is also addressable as two
// independent 8-bit halves. The CPU has 4 register pairs: AF, BC, DE
// and HL, where the high byte is the first named register (A, B, D, H)
// and the low byte the second (F, C, E, L).
type RegisterPair struct {
	value uint16
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return r.value
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	r.value = value
}

// High returns the upper byte.
func (r *RegisterPair) High() Register {
	return Register(r.value >> 8)
}

// Low returns the lower byte.
func (r *RegisterPair) Low() Register {
	return Register(r.value)
}

// SetHigh replaces the upper byte, leaving the lower byte untouched.
func (r *RegisterPair) SetHigh(value Register) {
	r.value = uint16(value)<<8 | r.value&0x00FF
}

// SetLow replaces the lower byte, leaving the upper byte untouched.
func (r *RegisterPair) SetLow(value Register) {
	r.value = r.value&0xFF00 | uint16(value)
}
