package nes

import (
	"bytes"
	"image/color"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeImage is a no-op Framebuffer for tests that only care about CPU/PPU
// timing, not what gets painted.
type fakeImage struct{}

func (fakeImage) Set(x, y int, c color.RGBA) {}

func newLoadedConsole(t *testing.T) *Console {
	t.Helper()
	c := New(NewTestLogger(io.Discard))
	data := buildINES(1, 1, 0x00, 0x00)
	require.NoError(t, c.Load(bytes.NewReader(data)))
	return c
}

func TestConsole_LoadWiresCartAndResetsPC(t *testing.T) {
	c := newLoadedConsole(t)
	assert.True(t, c.Loaded())
	assert.Equal(t, uint16(0x0000), c.CPU.PC, "the test ROM's PRG is all zero, so the reset vector reads as $0000")
}

func TestConsole_ClockAdvancesPPUThreeTimesPerCPUCycle(t *testing.T) {
	c := newLoadedConsole(t)
	img := fakeImage{}

	startFrame := c.PPU.Frame
	startCPUCycles := c.CPU.TotalCycles

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Clock(img))
	}

	assert.Equal(t, uint64(1), c.CPU.TotalCycles-startCPUCycles, "exactly one CPU cycle elapses per 3 PPU dots")
	assert.Equal(t, startFrame, c.PPU.Frame)
	assert.Equal(t, uint64(3), c.MasterCycles)
}

func TestConsole_OAMDMATransferStallsCPUAndCopiesPage(t *testing.T) {
	c := newLoadedConsole(t)

	for i := 0; i < 256; i++ {
		c.cpuBus.Write(0x0200+uint16(i), byte(i))
	}

	c.cpuBus.Write(regOAMDMA, 0x02) // source page $0200

	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), c.PPU.oam[i])
	}
	assert.GreaterOrEqual(t, c.CPU.Cycles, uint16(513), "OAMDMA stalls the CPU at least 513 cycles")
}

func TestConsole_SetButtonsRoutesToCorrectPad(t *testing.T) {
	c := New(NewTestLogger(io.Discard))
	c.SetButtons(0, Buttons{ButtonA: true})
	c.SetButtons(1, Buttons{ButtonB: true})

	c.cpuBus.Write(0x4016, 1)
	c.cpuBus.Write(0x4016, 0)
	c.cpuBus.Write(0x4017, 1)
	c.cpuBus.Write(0x4017, 0)

	v0 := c.cpuBus.Read(0x4016)
	v1 := c.cpuBus.Read(0x4017)
	assert.Equal(t, byte(1), v0)
	assert.Equal(t, byte(0), v1, "pad 1's first read is button A, which is not pressed")
	v1 = c.cpuBus.Read(0x4017)
	assert.Equal(t, byte(1), v1, "pad 1's second read is button B")
}

func TestConsole_ResetReloadsCPUAndClearsPPU(t *testing.T) {
	c := newLoadedConsole(t)
	c.PPU.status = statusVBlank
	c.CPU.A = 0x42

	c.Reset()

	assert.Equal(t, byte(0), c.CPU.A)
	assert.False(t, c.PPU.VBlank())
}
