package cartridge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// newTestROM builds a 32kB ROM only image with a valid header.
func newTestROM(title string) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:0x144], title)
	rom[0x147] = uint8(ROM)
	rom[0x148] = 0x00
	rom[0x149] = 0x00
	rom[0x14D] = headerChecksum(rom[0x100:0x150])
	return rom
}

func writeROM(t *testing.T, rom []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gb")
	require.NoError(t, os.WriteFile(path, rom, 0644))
	return path
}

func TestLoader_Lifecycle(t *testing.T) {
	rom := newTestROM("DMGCORE")
	path := writeROM(t, rom)

	l := NewLoader(log.NewNullLogger())
	assert.Nil(t, l.Bytes(), "expected no bytes before init")

	l.Init(path)
	require.NotNil(t, l.Bytes(), "expected bytes after init")
	assert.Equal(t, rom, l.Bytes())
	assert.Equal(t, "DMGCORE", l.Header().Title)
	assert.Equal(t, ROM, l.Header().CartridgeType)
	assert.Equal(t, uint(32*1024), l.Header().ROMSize)
	assert.Equal(t, xxhash.Sum64(rom), l.Checksum())

	l.Destroy()
	assert.Nil(t, l.Bytes(), "expected no bytes after destroy")
}

func TestLoader_LogsHeader(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoader(log.New(log.WithOutput(&buf), log.WithLevel(log.LevelInfo)))

	l.Init(writeROM(t, newTestROM("TETRIS")))

	out := buf.String()
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "TETRIS")
	assert.Contains(t, out, "type")
	assert.Contains(t, out, "ROM ONLY")
	assert.Contains(t, out, "rom size")
	assert.NotContains(t, out, "mismatch")
}

func TestLoader_ChecksumMismatch(t *testing.T) {
	rom := newTestROM("BROKEN")
	rom[0x14D]++

	var buf bytes.Buffer
	l := NewLoader(log.New(log.WithOutput(&buf)))
	require.NoError(t, l.LoadBytes(rom))

	assert.Contains(t, buf.String(), "header checksum mismatch")
}

func TestLoader_FileNotFound(t *testing.T) {
	var buf bytes.Buffer
	exitCode := 0
	l := NewLoader(log.New(
		log.WithOutput(&buf),
		log.WithExitFunc(func(code int) { exitCode = code }),
	))

	l.Init("some/weird/path/dmgcore.gb")

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, buf.String(), "level=fatal")
	assert.Nil(t, l.Bytes())
}

func TestLoader_Truncated(t *testing.T) {
	l := NewLoader(nil)
	err := l.Load(writeROM(t, make([]byte, 0x14F)))
	assert.ErrorContains(t, err, "too small")
	assert.Nil(t, l.Bytes())
}

func TestParseHeader(t *testing.T) {
	rom := newTestROM("POKEMON RED")
	rom[0x147] = uint8(MBC3RAMBATT)
	rom[0x148] = 0x05
	rom[0x149] = 0x03
	rom[0x14E], rom[0x14F] = 0x91, 0xE6

	h, err := parseHeader(rom[0x100:0x150])
	require.NoError(t, err)

	assert.Equal(t, "POKEMON RED", h.Title)
	assert.Equal(t, "MBC3+RAM+BATTERY", h.CartridgeType.String())
	assert.Equal(t, uint(1024*1024), h.ROMSize)
	assert.Equal(t, uint(32*1024), h.RAMSize)
	assert.Equal(t, uint16(0x91E6), h.GlobalChecksum)
	assert.Equal(t, "DMG", h.Hardware())

	rom[0x143] = 0x80
	h, err = parseHeader(rom[0x100:0x150])
	require.NoError(t, err)
	assert.Equal(t, "CGB", h.Hardware())

	_, err = parseHeader(rom[0x100:0x140])
	assert.Error(t, err)
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "ROM ONLY", ROM.String())
	assert.Equal(t, "unknown (0x42)", Type(0x42).String())
}
