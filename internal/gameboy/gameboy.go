// Package gameboy drives the CPU core: it wires the memory unit, the
// CPU and an optional boot ROM together and steps them frame by frame.
package gameboy

import (
	"errors"
	"fmt"
	"time"

	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/display"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = 4194304 // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224 // 4194304 / 59.7

	// EntryPoint is where execution starts when there is no boot ROM.
	EntryPoint = 0x0100
)

// Publisher receives a snapshot of the machine after every frame.
type Publisher interface {
	Publish(s types.Stater)
}

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	log.Logger

	bootROM   *boot.ROM
	delay     time.Duration
	sleep     func(time.Duration)
	publisher Publisher

	pendingState *types.State
	frames       uint64
}

// New returns a new GameBoy running rom. Without a boot ROM execution
// starts at EntryPoint with all registers zeroed.
func New(rom []byte, opts ...Opt) *GameBoy {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.MMU = mmu.NewMMU(rom, g.bootROM)

	var startPC uint16 = EntryPoint
	if g.bootROM != nil {
		startPC = 0x0000
		g.Debugf("boot rom: %s (%s)", g.bootROM.Model(), g.bootROM.Checksum())
	}
	g.CPU = cpu.NewCPU(g.MMU, startPC)

	if g.pendingState != nil {
		g.Load(g.pendingState)
		g.pendingState = nil
	}

	return g
}

// Step executes a single instruction, returning the cycles it took.
func (g *GameBoy) Step() uint8 {
	return g.CPU.Step()
}

// Frame steps the CPU until a frame's worth of cycles has elapsed,
// sleeping the configured delay between instructions. An undefined
// opcode stops the frame and is returned as an *cpu.UndefinedOpcodeError.
func (g *GameBoy) Frame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			var undefined *cpu.UndefinedOpcodeError
			if e, ok := r.(error); ok && errors.As(e, &undefined) {
				err = undefined
				return
			}
			panic(r)
		}
	}()

	for elapsed := 0; elapsed < CyclesPerFrame; {
		elapsed += int(g.CPU.Step())
		if g.delay > 0 {
			g.sleep(g.delay)
		}
	}
	g.frames++

	return nil
}

// Frames returns the number of completed frames.
func (g *GameBoy) Frames() uint64 {
	return g.frames
}

// Run alternates stepping d and emulating a frame until d asks to
// stop, which returns nil, or the CPU fails.
func (g *GameBoy) Run(d display.Display) error {
	g.Infof("starting emulation at 0x%04X", g.CPU.PC)
	start := time.Now()

	for d.Step() {
		if err := g.Frame(); err != nil {
			g.Debugf("%s", g.CPU)
			return fmt.Errorf("gameboy: frame %d: %w", g.frames, err)
		}
		g.Debugf("%s", g.CPU)

		if g.publisher != nil {
			g.publisher.Publish(g)
		}
	}

	g.Infof("stopped after %d frames in %s", g.frames, time.Since(start).Round(time.Millisecond))
	return nil
}

// Destroy releases the memory unit. The GameBoy must not be used
// afterwards.
func (g *GameBoy) Destroy() {
	g.MMU.Destroy()
}

var _ types.Stater = (*GameBoy)(nil)

// Save writes the CPU and memory state to s.
func (g *GameBoy) Save(s *types.State) {
	g.CPU.Save(s)
	g.MMU.Save(s)
}

// Load restores a state written by Save.
func (g *GameBoy) Load(s *types.State) {
	g.CPU.Load(s)
	g.MMU.Load(s)
}
