package gameboy

import (
	"time"

	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM maps rom over the start of the cartridge. Execution
// starts at 0x0000 until the boot ROM disables itself through BDIS.
func WithBootROM(rom *boot.ROM) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}

// WithDelay sleeps d between two instructions.
func WithDelay(d time.Duration) Opt {
	return func(gb *GameBoy) {
		gb.delay = d
	}
}

// WithPublisher hands a snapshot to p after every frame.
func WithPublisher(p Publisher) Opt {
	return func(gb *GameBoy) {
		gb.publisher = p
	}
}

// WithState restores a state saved with GameBoy.Save once the
// machine has been built.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.pendingState = types.StateFromBytes(b)
	}
}
