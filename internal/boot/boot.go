// Package boot provides the boot ROM overlay. The boot ROM is a small
// fixed image mapped over 0x0000 - 0x00FF before the cartridge's own
// low page becomes visible.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Size is the length of a DMG family boot ROM.
const Size = 256

// ROM represents a boot ROM. The MMU copies it over the low page of the
// address space on start-up; writing to the BDIS register unmaps it again.
type ROM struct {
	raw      []byte // the raw boot rom
	checksum string // the MD5 checksum of the boot rom
}

// LoadBootROM loads a boot ROM into a new ROM struct and returns a
// pointer to it. The input must be exactly Size bytes long, otherwise
// the function panics.
func LoadBootROM(b []byte) *ROM {
	if len(b) != Size {
		panic(fmt.Sprintf("boot: invalid boot rom length: %d", len(b)))
	}

	bootChecksum := md5.Sum(b)

	raw := make([]byte, Size)
	copy(raw, b)
	return &ROM{
		raw:      raw,
		checksum: hex.EncodeToString(bootChecksum[:]),
	}
}

// Read returns the byte at the given address.
func (b *ROM) Read(addr uint16) byte {
	return b.raw[addr]
}

// Bytes returns the raw boot ROM image.
func (b *ROM) Bytes() []byte {
	return b.raw
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

var knownBootROMChecksums = map[string]string{
	DMG0: "Game Boy (DMG-0)",
	DMG:  "Game Boy (DMG-01)",
	MGB:  "Game Boy Pocket",
	SGB:  "Super Game Boy",
	SGB2: "Super Game Boy 2",
}

const (
	// DMG0 is the early DMG boot ROM, only ever sold in Japan.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the boot ROM of the common DMG-01 models.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, loading 0xFF into A.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB sends the cartridge header to the SNES instead of
	// scrolling the logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB by a single byte, loading 0xFF into A.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
)
