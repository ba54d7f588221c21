package nes

// resolveAddress computes the effective address for the given addressing
// mode, consuming any operand bytes from PC as it goes. pageCrossed reports
// whether indexing pushed the address across a page boundary, for use by the
// Clock loop's cross-page cycle penalty (only meaningful for AbsoluteX/Y and
// IndirectIndexed).
func (c *CPU) resolveAddress(mode AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implicit, Accumulator:
		return 0, false

	case Immediate:
		addr = c.PC
		c.PC++
		return addr, false

	case Relative:
		offset := int8(c.read(c.PC))
		c.PC++
		return uint16(int32(c.PC) + int32(offset)), false

	case ZeroPage:
		addr = uint16(c.read(c.PC))
		c.PC++
		return addr, false

	case ZeroPageX:
		bb := c.read(c.PC)
		c.PC++
		return uint16(bb + c.X), false

	case ZeroPageY:
		bb := c.read(c.PC)
		c.PC++
		return uint16(bb + c.Y), false

	case Absolute:
		addr = c.bus.Read16(c.PC)
		c.PC += 2
		return addr, false

	case AbsoluteX:
		base := c.bus.Read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.X)
		return addr, base&0xFF00 != addr&0xFF00

	case AbsoluteY:
		base := c.bus.Read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00

	case Indirect:
		pointer := c.bus.Read16(c.PC)
		c.PC += 2
		return c.readIndirectBugged(pointer), false

	case IndexedIndirect:
		bb := c.read(c.PC)
		c.PC++
		pointer := uint16(bb + c.X)
		lo := uint16(c.read(pointer & 0xFF))
		hi := uint16(c.read((pointer + 1) & 0xFF))
		return hi<<8 | lo, false

	case IndirectIndexed:
		bb := c.read(c.PC)
		c.PC++
		lo := uint16(c.read(uint16(bb)))
		hi := uint16(c.read(uint16(bb+1) & 0xFF))
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00

	default:
		return 0, false
	}
}

// readIndirectBugged implements JMP's indirect addressing mode, reproducing
// the 6502 hardware bug where a pointer ending in $FF wraps the high-byte
// fetch to the start of the same page instead of crossing into the next one.
func (c *CPU) readIndirectBugged(pointer uint16) uint16 {
	lo := uint16(c.read(pointer))
	var hiAddr uint16
	if pointer&0xFF == 0xFF {
		hiAddr = pointer & 0xFF00
	} else {
		hiAddr = pointer + 1
	}
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}
