package nes

import (
	"bytes"
	"image/color"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingImage is a Framebuffer test double that just counts Set calls and
// remembers the last color written, so tests can assert the PPU produced
// some pixel without pulling in the image package.
type recordingImage struct {
	sets int
	last color.RGBA
}

func (r *recordingImage) Set(x, y int, c color.RGBA) {
	r.sets++
	r.last = c
}

func newTestPPU(t *testing.T) *PPU {
	t.Helper()
	p := NewPPU(NewTestLogger(io.Discard))
	data := buildINES(1, 1, 0x00, 0x00)
	cart, err := LoadINES(bytes.NewReader(data), NewTestLogger(io.Discard))
	require.NoError(t, err)
	p.Attach(cart, func() {})
	return p
}

func TestPPU_PPUSTATUSReadClearsVBlankAndLatch(t *testing.T) {
	p := newTestPPU(t)
	p.status |= statusVBlank
	p.w = true

	v, hit := p.Read(regPPUSTATUS)
	assert.True(t, hit)
	assert.NotZero(t, v&statusVBlank, "the read returns the pre-clear value")
	assert.False(t, p.VBlank(), "but clears the latch for subsequent reads")
	assert.False(t, p.w, "and resets the PPUSCROLL/PPUADDR write toggle")
}

func TestPPU_PPUADDRTwoWriteLatch(t *testing.T) {
	p := newTestPPU(t)
	p.Write(regPPUADDR, 0x23) // high byte
	p.Write(regPPUADDR, 0x45) // low byte

	assert.Equal(t, uint16(0x2345), p.v)
	assert.False(t, p.w)
}

func TestPPU_PPUDATAWriteIncrementsV(t *testing.T) {
	p := newTestPPU(t)
	p.Write(regPPUADDR, 0x23)
	p.Write(regPPUADDR, 0x00)
	p.Write(regPPUDATA, 0x7F)

	assert.Equal(t, uint16(0x2301), p.v, "+1 per write when PPUCTRL increment bit is clear")
}

func TestPPU_PPUDATAIncrementBy32(t *testing.T) {
	p := newTestPPU(t)
	p.ctrl |= ctrlIncrement32
	p.Write(regPPUADDR, 0x23)
	p.Write(regPPUADDR, 0x00)
	p.Write(regPPUDATA, 0x7F)

	assert.Equal(t, uint16(0x2320), p.v)
}

func TestPPU_PPUDATAReadIsBufferedExceptPalette(t *testing.T) {
	p := newTestPPU(t)
	p.nametables[0][0x0001] = 0x55 // lands at $2001 under horizontal mirroring

	p.Write(regPPUADDR, 0x20)
	p.Write(regPPUADDR, 0x01)

	first, _ := p.Read(regPPUDATA)
	assert.Equal(t, byte(0), first, "first read after setting the address returns the stale buffer")

	p.Write(regPPUADDR, 0x3F)
	p.Write(regPPUADDR, 0x00)
	p.paletteRAM[0] = 0x30
	paletteRead, _ := p.Read(regPPUDATA)
	assert.Equal(t, byte(0x30), paletteRead, "palette reads are not buffered")
}

func TestPPU_OAMDATARoundTrip(t *testing.T) {
	p := newTestPPU(t)
	p.Write(regOAMADDR, 0x10)
	p.Write(regOAMDATA, 0xAB)

	p.Write(regOAMADDR, 0x10)
	v, _ := p.Read(regOAMDATA)
	assert.Equal(t, byte(0xAB), v)
}

func TestPPU_RegisterMirrorEvery8Bytes(t *testing.T) {
	p := newTestPPU(t)
	p.Write(0x2000, 0x80) // PPUCTRL via base address
	assert.Equal(t, byte(0x80), p.ctrl)

	p.Write(0x2008, 0x00) // mirrors back to PPUCTRL
	assert.Equal(t, byte(0x00), p.ctrl)
}

func TestPPU_OAMDMAClaimedButNoTransfer(t *testing.T) {
	p := newTestPPU(t)
	claimed := p.Write(regOAMDMA, 0x02)
	assert.True(t, claimed, "PPU claims the write so the bus doesn't log a miss")
	assert.Equal(t, byte(0), p.oam[0], "but performs no transfer itself; Console's oamDMA does that")

	_, readHit := p.Read(regOAMDMA)
	assert.False(t, readHit, "$4014 is write-only")
}

func TestPPU_VBlankAndNMIAtScanline241Dot1(t *testing.T) {
	p := newTestPPU(t)
	fired := false
	p.nmi = func() { fired = true }
	p.ctrl |= ctrlGenerateNMI

	p.ScanLine, p.Dot = 241, 1
	p.Clock()
	assert.True(t, p.VBlank())
	assert.True(t, fired)
}

func TestPPU_PreRenderClearsStatusFlags(t *testing.T) {
	p := newTestPPU(t)
	p.status = statusVBlank | statusSprite0Hit | statusSpriteOverflow
	p.ScanLine, p.Dot = -1, 1
	p.Clock()

	assert.Zero(t, p.status)
}

func TestPPU_ClockPaintsVisiblePixels(t *testing.T) {
	p := newTestPPU(t)
	p.mask |= maskShowBG
	img := &recordingImage{}
	p.Image = img
	p.ScanLine, p.Dot = 0, 0

	p.Clock() // dot 0 is the idle cycle, nothing painted yet
	assert.Equal(t, 0, img.sets)

	p.Clock() // now at dot 1, the first visible column
	assert.Equal(t, 1, img.sets)
}

func TestPPU_NametableIndexHorizontalMirroring(t *testing.T) {
	p := newTestPPU(t)
	p.cart.Mirroring = MirrorHorizontal
	assert.Equal(t, p.nametableIndex(0x2000), p.nametableIndex(0x2400), "horizontal mirroring: top two logical tables share one physical table")
	assert.Equal(t, p.nametableIndex(0x2800), p.nametableIndex(0x2C00))
	assert.NotEqual(t, p.nametableIndex(0x2000), p.nametableIndex(0x2800))
}

func TestPPU_NametableIndexVerticalMirroring(t *testing.T) {
	p := newTestPPU(t)
	p.cart.Mirroring = MirrorVertical
	assert.Equal(t, p.nametableIndex(0x2000), p.nametableIndex(0x2800), "vertical mirroring: left two logical tables share one physical table")
	assert.NotEqual(t, p.nametableIndex(0x2000), p.nametableIndex(0x2400))
}

func TestPPU_ResetReturnsToPowerUpState(t *testing.T) {
	p := newTestPPU(t)
	p.ctrl, p.mask, p.status = 0xFF, 0xFF, 0xFF
	p.Dot, p.ScanLine, p.Frame = 100, 50, 9
	p.Reset()

	assert.Equal(t, byte(0), p.ctrl)
	assert.Equal(t, byte(0), p.mask)
	assert.Equal(t, byte(0), p.status)
	assert.Equal(t, 0, p.Dot)
	assert.Equal(t, -1, p.ScanLine)
	assert.Equal(t, uint64(0), p.Frame)
}
