package types

// HardwareAddress represents an address with a fixed meaning in
// the Game Boy's memory map.
type HardwareAddress = uint16

const (
	// BootROMEnd is the first address past the boot ROM overlay,
	// which is mapped over 0x0000 - 0x00FF until disabled.
	BootROMEnd HardwareAddress = 0x0100
	// ROMLimit is the first address past the cartridge ROM
	// region 0x0000 - 0x7FFF. Everything from here up is RAM.
	ROMLimit HardwareAddress = 0x8000
	// HeaderStart is the address of the cartridge header, which
	// occupies 0x0100 - 0x014F.
	HeaderStart HardwareAddress = 0x0100
	// HeaderEnd is the first address past the cartridge header.
	HeaderEnd HardwareAddress = 0x0150
	// BDIS is the boot ROM disable register. Writing a non-zero
	// value unmaps the boot ROM and exposes the cartridge's low page.
	BDIS HardwareAddress = 0xFF50
)

// MemorySize is the size of the flat address space.
const MemorySize = 0x10000
