package nes

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	prgBankSize = 16384
	chrBankSize = 8192
	trainerSize = 512
)

var inesMagic = [4]byte{'N', 'E', 'S', 0x1A}

// Mirroring describes how the PPU's two physical nametables are mapped
// across the four logical nametable slots.
type Mirroring byte

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

// inesHeader is the 16-byte iNES file header, laid out exactly as it appears
// on disk so it can be read with a single binary.Read.
type inesHeader struct {
	Magic     [4]byte
	PRGBanks  byte
	CHRBanks  byte
	Flags6    byte
	Flags7    byte
	_         [8]byte // PRG-RAM size + flags9 + flags10 + padding, unused by NROM
}

// Cartridge holds a parsed iNES image: PRG/CHR banks, mirroring mode, and the
// mapper number. LoadINES only ever produces mapper 0 (NROM) cartridges in
// this build; the field is carried through so a future mapper dispatcher can
// select an implementation without changing the loader.
type Cartridge struct {
	PRG       []byte
	CHR       []byte
	Mapper    byte
	Mirroring Mirroring
	Battery   bool

	// chrIsRAM is true when the header declares zero CHR banks: some NROM
	// cartridges ship with CHR-RAM instead of CHR-ROM, so the PPU-facing
	// bank must still be writable.
	chrIsRAM bool

	// PrgWriteStrict controls whether CPU writes into $8000-$FFFF are
	// accepted. Real NROM cartridges are ROM; some test ROMs depend on
	// writes being accepted and mutating PRG. Default is strict (see
	// WithLenientPRGWrites).
	PrgWriteStrict bool
}

// LoadOption configures LoadINES.
type LoadOption func(*Cartridge)

// WithLenientPRGWrites makes writes to $8000-$FFFF mutate PRG instead of
// being rejected. Decision recorded in DESIGN.md: default is strict.
func WithLenientPRGWrites() LoadOption {
	return func(c *Cartridge) { c.PrgWriteStrict = false }
}

// LoadINES parses an iNES-format ROM image from r. It returns a *LoadError
// for any condition that leaves the cartridge unusable (bad magic, truncated
// PRG/CHR); an unsupported mapper number is also a LoadError since this
// build implements NROM only. A trainer or PlayChoice payload is not fatal:
// the trainer is skipped and each is reported as an UnsupportedFeatureError
// message through log's Warnf; PlayChoice data after CHR is never read.
func LoadINES(r io.Reader, log Logger, opts ...LoadOption) (*Cartridge, error) {
	var h inesHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, &LoadError{Reason: fmt.Sprintf("unable to read header: %s", err), Err: fmt.Errorf("read header: %w", err)}
	}
	if h.Magic != inesMagic {
		return nil, &LoadError{Reason: "bad magic, not an iNES file"}
	}

	hasTrainer := h.Flags6&0x04 != 0
	if hasTrainer {
		trainer := make([]byte, trainerSize)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, &LoadError{Reason: fmt.Sprintf("truncated trainer: %s", err), Err: fmt.Errorf("read trainer: %w", err)}
		}
		if log != nil {
			log.Warnf("cartridge: trainer present, skipping (%s)", (&UnsupportedFeatureError{Feature: "trainer"}).Error())
		}
	}
	if h.Flags7&0x02 != 0 && log != nil {
		log.Warnf("cartridge: PlayChoice data present, ignoring (%s)", (&UnsupportedFeatureError{Feature: "PlayChoice"}).Error())
	}

	prgLen := int(h.PRGBanks) * prgBankSize
	prg := make([]byte, prgLen)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, &LoadError{Reason: fmt.Sprintf("truncated PRG: %s", err), Err: fmt.Errorf("read PRG: %w", err)}
	}

	chrLen := int(h.CHRBanks) * chrBankSize
	chrIsRAM := h.CHRBanks == 0
	var chr []byte
	if chrIsRAM {
		chr = make([]byte, chrBankSize)
	} else {
		chr = make([]byte, chrLen)
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, &LoadError{Reason: fmt.Sprintf("truncated CHR: %s", err), Err: fmt.Errorf("read CHR: %w", err)}
		}
	}

	mapper := (h.Flags6 >> 4) | (h.Flags7 & 0xF0)
	if mapper != 0 {
		return nil, &LoadError{Reason: fmt.Sprintf("unsupported mapper %d, only NROM (0) is implemented", mapper)}
	}

	mirroring := MirrorHorizontal
	if h.Flags6&0x08 != 0 {
		mirroring = MirrorFourScreen
	} else if h.Flags6&0x01 != 0 {
		mirroring = MirrorVertical
	}

	c := &Cartridge{
		PRG:            prg,
		CHR:            chr,
		Mapper:         mapper,
		Mirroring:      mirroring,
		Battery:        h.Flags6&0x02 != 0,
		chrIsRAM:       chrIsRAM,
		PrgWriteStrict: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CPU-facing attachment: claims $8000-$FFFF, mirroring a 16 KiB PRG image
// across both halves of the window.

func (c *Cartridge) Read(addr uint16) (byte, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	return c.PRG[int(addr-0x8000)%len(c.PRG)], true
}

func (c *Cartridge) Write(addr uint16, v byte) bool {
	if addr < 0x8000 {
		return false
	}
	if c.PrgWriteStrict {
		return true // claimed, but ignored: real NROM is ROM
	}
	c.PRG[int(addr-0x8000)%len(c.PRG)] = v
	return true
}

func (c *Cartridge) Reset() {}

// cartridgeCHR wraps a Cartridge as the PPU's view of its CHR memory,
// claiming $0000-$1FFF (the pattern tables) distinctly from the CPU-facing
// $8000-$FFFF claim above.
type cartridgeCHR struct {
	c *Cartridge
}

// CHRAttachment returns the PPU-bus-facing view of the cartridge's pattern
// table memory.
func (c *Cartridge) CHRAttachment() Attachment {
	return &cartridgeCHR{c: c}
}

func (p *cartridgeCHR) Read(addr uint16) (byte, bool) {
	if addr > 0x1FFF {
		return 0, false
	}
	return p.c.CHR[int(addr)%len(p.c.CHR)], true
}

func (p *cartridgeCHR) Write(addr uint16, v byte) bool {
	if addr > 0x1FFF {
		return false
	}
	if !p.c.chrIsRAM {
		return true // claimed, CHR-ROM is not writable
	}
	p.c.CHR[int(addr)%len(p.c.CHR)] = v
	return true
}

func (p *cartridgeCHR) Reset() {}
