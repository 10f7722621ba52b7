// Package cartridge loads cartridge images and parses their header.
// The Loader owns the image; the MMU copies it into the address space
// at start-up and never takes ownership.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

// Loader reads a cartridge image from storage and keeps it for the
// lifetime of the emulator.
type Loader struct {
	rom      []byte
	header   Header
	checksum uint64

	log log.Logger
}

// NewLoader returns a Loader that reports through logger.
func NewLoader(logger log.Logger) *Loader {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Loader{log: logger}
}

// Init reads the cartridge at path. Failing to read or parse the image
// is fatal: there is nothing to execute without a cartridge.
func (l *Loader) Init(path string) {
	if err := l.Load(path); err != nil {
		l.log.Fatalf("unable to load rom: %v", err)
	}
}

// Load reads the cartridge at path, decompressing it if needed, and
// parses its header. Header metadata is logged at info level.
func (l *Loader) Load(path string) error {
	rom, err := utils.LoadFile(path)
	if err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}
	return l.LoadBytes(rom)
}

// LoadBytes installs an image that has already been read into memory.
func (l *Loader) LoadBytes(rom []byte) error {
	if len(rom) < int(types.HeaderEnd) {
		return fmt.Errorf("cartridge: image too small for header: %d bytes", len(rom))
	}

	header, err := parseHeader(rom[types.HeaderStart:types.HeaderEnd])
	if err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	l.rom = rom
	l.header = header
	l.checksum = xxhash.Sum64(rom)

	l.log.Infof("title: %s", header.Title)
	l.log.Infof("type: %s", header.CartridgeType)
	l.log.Infof("rom size: %dkB (code 0x%02X)", header.ROMSize/1024, header.ROMSizeCode)
	l.log.Debugf("xxhash: %016x", l.checksum)

	if sum := headerChecksum(rom[types.HeaderStart:types.HeaderEnd]); sum != header.HeaderChecksum {
		l.log.Warnf("header checksum mismatch: expected 0x%02X, got 0x%02X", header.HeaderChecksum, sum)
	}
	if declared := int(header.ROMSize); declared != 0 && declared != len(rom) {
		l.log.Warnf("rom size mismatch: header declares %d bytes, image has %d", declared, len(rom))
	}

	return nil
}

// Bytes returns the loaded image, or nil if nothing is loaded.
func (l *Loader) Bytes() []byte {
	return l.rom
}

// Header returns the parsed cartridge header.
func (l *Loader) Header() Header {
	return l.header
}

// Checksum returns the xxhash64 fingerprint of the loaded image.
func (l *Loader) Checksum() uint64 {
	return l.checksum
}

// Destroy releases the image.
func (l *Loader) Destroy() {
	l.rom = nil
	l.header = Header{}
	l.checksum = 0
}
