// Package mmu provides the memory management unit. The MMU owns a flat
// 64kB address space shared by the boot ROM overlay (0x0000 - 0x00FF),
// the cartridge ROM (0x0000 - 0x7FFF) and general RAM (0x8000 - 0xFFFF).
//
// Every address is a 16-bit value, so every access is in range and no
// access can fail. Writes are never rejected, including writes to the
// cartridge region.
package mmu

import (
	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

// MMU is the memory management unit for the Game Boy.
type MMU struct {
	// 0x0000 - 0xFFFF
	raw *[types.MemorySize]uint8

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM     *boot.ROM
	bootROMDone bool

	// the cartridge's own low page, restored once the boot ROM is disabled
	cartLow [boot.Size]uint8
}

// NewMMU returns a new MMU with a zeroed address space. Up to 32kB of
// cart is copied into 0x0000 - 0x7FFF, and bootROM, when not nil, is
// mapped over 0x0000 - 0x00FF.
func NewMMU(cart []byte, bootROM *boot.ROM) *MMU {
	m := &MMU{
		raw: new([types.MemorySize]uint8),
	}

	copy(m.raw[:types.ROMLimit], cart)
	copy(m.cartLow[:], m.raw[:types.BootROMEnd])

	if bootROM != nil {
		m.bootROM = bootROM
		copy(m.raw[:types.BootROMEnd], bootROM.Bytes())
	} else {
		m.bootROMDone = true
	}

	return m
}

// BootROMMapped reports whether the boot ROM currently overlays the
// cartridge's low page.
func (m *MMU) BootROMMapped() bool {
	return !m.bootROMDone
}

// BootROM returns the mapped boot ROM, or nil when started without one.
func (m *MMU) BootROM() *boot.ROM {
	return m.bootROM
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write stores value at the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address] = value

	// it's assumed any non-zero write to BDIS will disable the boot rom
	if address == types.BDIS && value != 0 && !m.bootROMDone {
		m.bootROMDone = true
		copy(m.raw[:types.BootROMEnd], m.cartLow[:])
	}
}

// Read16 returns the little-endian word at address and address+1.
func (m *MMU) Read16(address uint16) uint16 {
	return utils.BytesToUint16(m.Read(address+1), m.Read(address))
}

// Write16 stores value little-endian at address and address+1.
func (m *MMU) Write16(address uint16, value uint16) {
	upper, lower := utils.Uint16ToBytes(value)
	m.Write(address, lower)
	m.Write(address+1, upper)
}

// Destroy releases the backing store. The MMU must not be used
// afterwards.
func (m *MMU) Destroy() {
	m.raw = nil
	m.bootROM = nil
}

var _ types.Stater = (*MMU)(nil)

// Load restores the address space and the boot ROM mapping.
func (m *MMU) Load(s *types.State) {
	s.ReadData(m.raw[:])
	m.bootROMDone = s.ReadBool()
}

// Save writes the address space and the boot ROM mapping.
func (m *MMU) Save(s *types.State) {
	s.WriteData(m.raw[:])
	s.WriteBool(m.bootROMDone)
}
