package types

import "testing"

func TestRegisterPair(t *testing.T) {
	t.Run("halves", func(t *testing.T) {
		var r RegisterPair
		r.SetUint16(0x1234)
		if r.High() != 0x12 || r.Low() != 0x34 {
			t.Errorf("expected 0x12/0x34, got 0x%02X/0x%02X", r.High(), r.Low())
		}
	})
	t.Run("set high keeps low", func(t *testing.T) {
		var r RegisterPair
		for v := 0; v <= 0xFF; v++ {
			r.SetUint16(0xAB00 | uint16(v))
			r.SetHigh(0xCD)
			if r.Low() != uint8(v) {
				t.Fatalf("expected low byte 0x%02X, got 0x%02X", v, r.Low())
			}
			if r.Uint16() != 0xCD00|uint16(v) {
				t.Fatalf("expected 0x%04X, got 0x%04X", 0xCD00|uint16(v), r.Uint16())
			}
		}
	})
	t.Run("set low keeps high", func(t *testing.T) {
		var r RegisterPair
		for v := 0; v <= 0xFF; v++ {
			r.SetUint16(uint16(v)<<8 | 0xAB)
			r.SetLow(0xEF)
			if r.High() != uint8(v) {
				t.Fatalf("expected high byte 0x%02X, got 0x%02X", v, r.High())
			}
		}
	})
}
