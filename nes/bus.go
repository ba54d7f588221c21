package nes

// Attachment is the capability every bus-resident device satisfies: claim a
// read, accept a write, reset to power-up state. A device that doesn't serve
// a given address returns hit=false from Read and false from Write, letting
// the bus move on to the next attachment or fall through to a miss.
//
// This replaces the teacher's concrete SysBus if-chain (RAM/PPU/APU/cartridge
// dispatched by hand in Read/Write) with a homogeneous attachment list, so a
// future mapper is a pure addition to the list rather than a Bus code change.
type Attachment interface {
	Read(addr uint16) (v byte, hit bool)
	Write(addr uint16, v byte) (hit bool)
	Reset()
}

// Bus routes CPU or PPU address-space traffic to whichever attachment claims
// it. The first hit wins on read; every attachment is offered a write so
// mirrored devices can coexist.
type Bus struct {
	log         Logger
	name        string
	attachments []Attachment
}

// NewBus creates an empty bus. name is used only in warning/error log lines
// ("cpu bus" / "ppu bus") so a BusMiss is traceable to which address space
// produced it.
func NewBus(name string, log Logger) *Bus {
	return &Bus{log: log, name: name}
}

// Attach appends a for consultation, in order, on every future Read/Write.
func (b *Bus) Attach(a Attachment) {
	b.attachments = append(b.attachments, a)
}

// Read returns the byte the first claiming attachment serves, or 0 with a
// logged BusMiss warning if nothing claims addr.
func (b *Bus) Read(addr uint16) byte {
	for _, a := range b.attachments {
		if v, hit := a.Read(addr); hit {
			return v
		}
	}
	b.log.Warnf("%s: read miss at $%04X", b.name, addr)
	return 0
}

// Write offers v to every attachment; a BusMiss is logged only if none of
// them claimed the address.
func (b *Bus) Write(addr uint16, v byte) {
	hit := false
	for _, a := range b.attachments {
		if a.Write(addr, v) {
			hit = true
		}
	}
	if !hit {
		b.log.Warnf("%s: write miss at $%04X", b.name, addr)
	}
}

// Read16 performs a little-endian 16-bit read: low byte at addr, high byte
// at addr+1.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// Write16 stores v little-endian: low byte at addr, high byte at addr+1.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write(addr, byte(v))
	b.Write(addr+1, byte(v>>8))
}

// Reset resets every attachment, in attachment order.
func (b *Bus) Reset() {
	for _, a := range b.attachments {
		a.Reset()
	}
}
