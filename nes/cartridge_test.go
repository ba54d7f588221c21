package nes

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildINES assembles a minimal iNES image: prgBanks PRG banks, chrBanks CHR banks
// (0 meaning CHR-RAM), with the given flags6/flags7 bits.
func buildINES(prgBanks, chrBanks, flags6, flags7 byte) []byte {
	var buf bytes.Buffer
	buf.Write(inesMagic[:])
	buf.WriteByte(prgBanks)
	buf.WriteByte(chrBanks)
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8))
	buf.Write(make([]byte, int(prgBanks)*prgBankSize))
	buf.Write(make([]byte, int(chrBanks)*chrBankSize))
	return buf.Bytes()
}

func TestLoadINES_NROM_HorizontalMirroring(t *testing.T) {
	data := buildINES(1, 1, 0x00, 0x00)
	cart, err := LoadINES(bytes.NewReader(data), NewTestLogger(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, prgBankSize, len(cart.PRG))
	assert.Equal(t, chrBankSize, len(cart.CHR))
	assert.Equal(t, byte(0), cart.Mapper)
	assert.Equal(t, MirrorHorizontal, cart.Mirroring)
}

func TestLoadINES_VerticalMirroringFlag(t *testing.T) {
	data := buildINES(1, 1, 0x01, 0x00)
	cart, err := LoadINES(bytes.NewReader(data), NewTestLogger(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, MirrorVertical, cart.Mirroring)
}

func TestLoadINES_ZeroCHRBanksIsRAM(t *testing.T) {
	data := buildINES(1, 0, 0x00, 0x00)
	cart, err := LoadINES(bytes.NewReader(data), NewTestLogger(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, chrBankSize, len(cart.CHR), "CHR-RAM is allocated one bank even with zero declared banks")

	chr := cart.CHRAttachment()
	assert.True(t, chr.Write(0x0000, 0x42))
	v, hit := chr.Read(0x0000)
	assert.True(t, hit)
	assert.Equal(t, byte(0x42), v, "CHR-RAM must be writable")
}

func TestLoadINES_BadMagicRejected(t *testing.T) {
	data := []byte("GARBAGEHEADERBYTES0000000000000")
	_, err := LoadINES(bytes.NewReader(data), NewTestLogger(io.Discard))
	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadINES_UnsupportedMapperRejected(t *testing.T) {
	data := buildINES(1, 1, 0x10, 0x00) // mapper nibble = 1
	_, err := LoadINES(bytes.NewReader(data), NewTestLogger(io.Discard))
	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadINES_TruncatedPRGWrapsUnderlyingError(t *testing.T) {
	data := buildINES(2, 1, 0x00, 0x00)
	data = data[:len(data)-prgBankSize] // lop off the second declared PRG bank
	_, err := LoadINES(bytes.NewReader(data), NewTestLogger(io.Discard))
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF, "LoadError must wrap the underlying io error")
}

func TestCartridge_PRGMirrorsAcross16KiBWindow(t *testing.T) {
	data := buildINES(1, 1, 0x00, 0x00)
	cart, err := LoadINES(bytes.NewReader(data), NewTestLogger(io.Discard))
	require.NoError(t, err)
	cart.PRG[0] = 0xAA

	lo, hit := cart.Read(0x8000)
	require.True(t, hit)
	hi, hit := cart.Read(0xC000)
	require.True(t, hit)
	assert.Equal(t, byte(0xAA), lo)
	assert.Equal(t, byte(0xAA), hi, "a single 16KiB PRG bank mirrors into both halves of $8000-$FFFF")
}

func TestCartridge_StrictPRGWritesIgnored(t *testing.T) {
	data := buildINES(1, 1, 0x00, 0x00)
	cart, err := LoadINES(bytes.NewReader(data), NewTestLogger(io.Discard))
	require.NoError(t, err)

	claimed := cart.Write(0x8000, 0xFF)
	assert.True(t, claimed, "write is claimed even though it's ignored")
	v, _ := cart.Read(0x8000)
	assert.Equal(t, byte(0), v)
}

func TestCartridge_LenientPRGWritesMutate(t *testing.T) {
	data := buildINES(1, 1, 0x00, 0x00)
	cart, err := LoadINES(bytes.NewReader(data), NewTestLogger(io.Discard), WithLenientPRGWrites())
	require.NoError(t, err)

	cart.Write(0x8000, 0xFF)
	v, _ := cart.Read(0x8000)
	assert.Equal(t, byte(0xFF), v)
}
