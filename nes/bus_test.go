package nes

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubAttachment claims a single fixed address, for exercising Bus dispatch
// without pulling in a real device.
type stubAttachment struct {
	addr    uint16
	value   byte
	writes  []byte
	resetN  int
}

func (s *stubAttachment) Read(addr uint16) (byte, bool) {
	if addr != s.addr {
		return 0, false
	}
	return s.value, true
}

func (s *stubAttachment) Write(addr uint16, v byte) bool {
	if addr != s.addr {
		return false
	}
	s.writes = append(s.writes, v)
	return true
}

func (s *stubAttachment) Reset() { s.resetN++ }

func TestBus_FirstClaimingAttachmentWins(t *testing.T) {
	log := NewTestLogger(io.Discard)
	bus := NewBus("test bus", log)
	first := &stubAttachment{addr: 0x10, value: 0x11}
	second := &stubAttachment{addr: 0x10, value: 0x22}
	bus.Attach(first)
	bus.Attach(second)

	v := bus.Read(0x10)
	assert.Equal(t, byte(0x11), v, "first attachment to claim a read wins")
}

func TestBus_WriteOffersAllAttachments(t *testing.T) {
	log := NewTestLogger(io.Discard)
	bus := NewBus("test bus", log)
	a := &stubAttachment{addr: 0x20}
	b := &stubAttachment{addr: 0x20}
	bus.Attach(a)
	bus.Attach(b)

	bus.Write(0x20, 0x99)
	assert.Equal(t, []byte{0x99}, a.writes)
	assert.Equal(t, []byte{0x99}, b.writes)
}

func TestBus_MissReturnsZero(t *testing.T) {
	log := NewTestLogger(io.Discard)
	bus := NewBus("test bus", log)
	assert.Equal(t, byte(0), bus.Read(0x4000))
}

func TestBus_Read16LittleEndian(t *testing.T) {
	log := NewTestLogger(io.Discard)
	bus := NewBus("test bus", log)
	ram := NewRAM()
	bus.Attach(ram)

	bus.Write16(0x0000, 0xBEEF)
	assert.Equal(t, byte(0xEF), bus.Read(0x0000))
	assert.Equal(t, byte(0xBE), bus.Read(0x0001))
	assert.Equal(t, uint16(0xBEEF), bus.Read16(0x0000))
}

func TestBus_ResetVisitsEveryAttachment(t *testing.T) {
	log := NewTestLogger(io.Discard)
	bus := NewBus("test bus", log)
	a := &stubAttachment{addr: 0x30}
	b := &stubAttachment{addr: 0x31}
	bus.Attach(a)
	bus.Attach(b)

	bus.Reset()
	assert.Equal(t, 1, a.resetN)
	assert.Equal(t, 1, b.resetN)
}
