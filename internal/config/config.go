// Package config parses the command line of the emulator.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/thelolagemann/dmgcore/pkg/log"
)

// ErrNoROM is returned when no ROM path was given.
var ErrNoROM = errors.New("config: no rom path given")

// Config holds everything the emulator is started with.
type Config struct {
	// LogLevel is the minimum level that is logged.
	LogLevel log.Level
	// Delay is slept between two instructions.
	Delay time.Duration
	// ROMPath is the cartridge image to run.
	ROMPath string
	// BootROMPath is an optional 256 byte boot ROM.
	BootROMPath string
	// MonitorAddr is the listen address of the state monitor, empty
	// when disabled.
	MonitorAddr string
	// MonitorCompression brotli compresses monitor snapshots.
	MonitorCompression bool
	// Headless runs without a window.
	Headless bool
	// Frames stops a headless run after this many frames, 0 runs
	// until the CPU stops.
	Frames int
}

// Default returns the configuration used for flags that are not given.
func Default() *Config {
	return &Config{
		LogLevel: log.LevelInfo,
	}
}

// Parse parses args, without the program name, into a Config. Usage
// and errors are written to output.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	c := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] ROM\n", name)
		fs.PrintDefaults()
	}

	var (
		level = fs.String("log", c.LogLevel.String(), "the logging level: debug, info, warning, error, fatal or -1..3")
		delay = fs.Uint("delay", 0, "microseconds to sleep between instructions")
		rom   = fs.String("rom", "", "the rom file to load, may also be given as the first argument")
	)
	fs.StringVar(&c.BootROMPath, "boot", "", "the boot rom file to load")
	fs.StringVar(&c.MonitorAddr, "monitor", "", "serve the state monitor on this address, e.g. localhost:8090")
	fs.BoolVar(&c.MonitorCompression, "compress", false, "brotli compress monitor snapshots")
	fs.BoolVar(&c.Headless, "headless", false, "run without opening a window")
	fs.IntVar(&c.Frames, "frames", 0, "stop a headless run after this many frames")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	if c.LogLevel, err = log.ParseLevel(*level); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c.Delay = time.Duration(*delay) * time.Microsecond

	c.ROMPath = *rom
	if fs.NArg() > 0 {
		if c.ROMPath != "" {
			return nil, fmt.Errorf("config: rom given twice: %q and %q", c.ROMPath, fs.Arg(0))
		}
		c.ROMPath = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("config: unexpected arguments: %v", fs.Args()[1:])
	}
	if c.ROMPath == "" {
		fs.Usage()
		return nil, ErrNoROM
	}
	if c.Frames < 0 {
		return nil, fmt.Errorf("config: frames must not be negative, got %d", c.Frames)
	}

	return c, nil
}
