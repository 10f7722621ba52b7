package cpu

import "testing"

func TestFlag(t *testing.T) {
	flags := []Flag{FlagCarry, FlagHalfCarry, FlagSubtract, FlagZero}
	c, _ := newTestCPU()

	t.Run("set", func(t *testing.T) {
		for _, f := range flags {
			c.SetF(0)
			c.SetFlag(1, f)
			if c.F() != 1<<f {
				t.Errorf("expected F to be 0b%08b, got 0b%08b", 1<<f, c.F())
			}
			if c.Flag(f) != 1 {
				t.Errorf("expected flag %d to be set, got unset", f)
			}
		}
	})
	t.Run("set zero is a no-op", func(t *testing.T) {
		for _, f := range flags {
			c.SetF(0xFF)
			c.SetFlag(0, f)
			if c.F() != 0xFF {
				t.Errorf("expected F to be 0xFF, got 0x%02X", c.F())
			}
		}
	})
	t.Run("clear", func(t *testing.T) {
		for _, f := range flags {
			c.SetF(0xFF)
			c.ClearFlag(f)
			if c.F() != 0xFF&^(1<<f) {
				t.Errorf("expected F to be 0b%08b, got 0b%08b", 0xFF&^(1<<f), c.F())
			}
			if c.Flag(f) != 0 {
				t.Errorf("expected flag %d to be unset, got set", f)
			}
		}
	})
	t.Run("accumulator untouched", func(t *testing.T) {
		c.SetA(0x5A)
		for _, f := range flags {
			c.SetFlag(1, f)
			c.ClearFlag(f)
		}
		if c.A() != 0x5A {
			t.Errorf("expected A to be 0x5A, got 0x%02X", c.A())
		}
	})
	t.Run("setFlags keeps low nibble", func(t *testing.T) {
		c.SetF(0x0A)
		c.setFlags(true, false, true, false)
		if c.F() != 0b1010_1010 {
			t.Errorf("expected F to be 0b10101010, got 0b%08b", c.F())
		}
	})
}
