package nes

// status is the packed 6502 processor status byte.
type status byte

const (
	flagCarry status = 1 << iota
	flagZero
	flagInterruptDisable
	flagDecimal // present, unused on NES
	flagBreak
	flagUnused
	flagOverflow
	flagNegative
)

const (
	nmiVector   = uint16(0xFFFA)
	resetVector = uint16(0xFFFC)
	irqVector   = uint16(0xFFFE)
	stackBase   = uint16(0x0100)
)

type pendingInterrupt byte

const (
	interruptNone pendingInterrupt = iota
	interruptNMI
	interruptIRQ
)

// CPU is a MOS 6502 core: registers, a 256-entry instruction table, and a
// remaining-cycles counter driven by Clock. Unlike the teacher's cycle-
// stepped design (which ticks the PPU/APU from inside every single bus
// access), this follows the spec's coarser model: Clock either burns one
// remaining cycle or fetches, executes, and charges a whole instruction's
// cost in one call — the shape bdwalton-gintendo's mos6502.step uses.
type CPU struct {
	A, X, Y byte
	PC      uint16
	SP      byte
	P       status

	// Cycles is the number of cycles still owed from the last-decoded
	// instruction; Clock decrements it to 0 before fetching again.
	Cycles uint16

	// TotalCycles is a running 64-bit count of every cycle Clock has
	// consumed, for tests/tracing to report absolute timing (the Console
	// keeps the 3:1 PPU:CPU ratio with its own MasterCycles).
	TotalCycles uint64

	bus     *Bus
	log     Logger
	pending pendingInterrupt

	// halted is set once a KIL opcode executes; further Clock calls no-op.
	halted bool

	// crossPagePenaltyArmed tracks whether the instruction currently
	// executing should add a page-cross cycle; branch instructions that
	// don't take the branch clear it themselves.
	crossPagePenaltyArmed bool

	// lastOpAddr/lastOpMode are populated by resolveAddress for the
	// instruction being decoded, and consumed by the executor and by the
	// write-back step.
	lastOpAddr uint16
	lastOpMode AddressingMode

	// extraCycles accumulates cycle penalties an executor earns beyond the
	// instruction's base cost (currently only branch()); Clock folds it
	// into the total charged for the instruction and resets it per fetch.
	extraCycles uint16
}

// NewCPU returns a CPU wired to bus. Registers start in their post-power-up
// state, except PC, which is loaded from the reset vector once the bus has a
// mapper attached (see Console.Load / Reset).
func NewCPU(bus *Bus, log Logger) *CPU {
	return &CPU{
		SP:  0xFD,
		P:   flagInterruptDisable | flagBreak | flagUnused,
		bus: bus,
		log: log,
	}
}

// Init loads PC from the reset vector. Called once, after the cartridge's
// mapper is attached to the bus.
func (c *CPU) Init() {
	c.PC = c.bus.Read16(resetVector)
}

// Reset reloads PC from the reset vector, per the lifecycle rules in §3:
// sp←$FD, flags←0 (plus the always-set unused bit), a/x/y←0, plus 8 cycles.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = flagUnused
	c.PC = c.bus.Read16(resetVector)
	c.Cycles += 8
}

// TriggerNMI latches a pending non-maskable interrupt, raised by the PPU at
// the start of VBlank when enabled.
func (c *CPU) TriggerNMI() {
	c.pending = interruptNMI
}

// TriggerIRQ latches a pending maskable interrupt; ignored while the
// interrupt-disable flag is set.
func (c *CPU) TriggerIRQ() {
	if c.P&flagInterruptDisable != 0 {
		return
	}
	c.pending = interruptIRQ
}

// Halted reports whether a KIL opcode has halted the CPU.
func (c *CPU) Halted() bool { return c.halted }

// Stall adds n cycles to the remaining-cycle counter without fetching an
// instruction, used by OAM DMA to hold the CPU off the bus during the
// 256-byte transfer.
func (c *CPU) Stall(n uint16) { c.Cycles += n }

// Clock advances the CPU by exactly one cycle: if an instruction is still
// mid-flight it merely decrements the remaining-cycle counter; otherwise it
// fetches, decodes, and fully executes the next instruction, then banks
// (total_cycles - 1) as the new remaining count (the call that did the fetch
// counts as the first of those cycles).
func (c *CPU) Clock() error {
	if c.halted {
		return nil
	}
	if c.Cycles > 0 {
		c.Cycles--
		c.TotalCycles++
		return nil
	}

	if err := c.serviceInterrupt(); err != nil {
		return err
	}

	opcode := c.bus.Read(c.PC)
	c.PC++

	inst := instructionTable[opcode]
	c.lastOpMode = inst.Mode
	addr, pageCrossed := c.resolveAddress(inst.Mode)
	c.lastOpAddr = addr

	c.crossPagePenaltyArmed = true
	c.extraCycles = 0

	if err := inst.Exec(c, addr); err != nil {
		return err
	}

	total := uint16(inst.Cycles) + c.extraCycles
	if c.crossPagePenaltyArmed && inst.PageCycles && pageCrossed {
		total++
	}

	c.Cycles += total - 1
	c.TotalCycles++
	return nil
}

func (c *CPU) serviceInterrupt() error {
	switch c.pending {
	case interruptNMI:
		c.pending = interruptNone
		c.pushAddress(c.PC)
		c.push(byte(c.P&^flagBreak) | byte(flagUnused))
		c.P |= flagInterruptDisable
		c.PC = c.bus.Read16(nmiVector)
		c.Cycles += 7
	case interruptIRQ:
		c.pending = interruptNone
		c.pushAddress(c.PC)
		c.push(byte(c.P&^flagBreak) | byte(flagUnused))
		c.P |= flagInterruptDisable
		c.PC = c.bus.Read16(irqVector)
		c.Cycles += 7
	}
	return nil
}

// read is the byte-level accessor every executor uses; it exists so a future
// change (e.g. OAM DMA stalls) has one place to hook.
func (c *CPU) read(addr uint16) byte {
	return c.bus.Read(addr)
}

func (c *CPU) write(addr uint16, v byte) {
	c.bus.Write(addr, v)
}

// operand returns the value an instruction should operate on, given the
// addressing mode already resolved into addr: the accumulator for
// Accumulator mode, otherwise a bus read at addr (which for Immediate is
// simply the address the operand byte was fetched from; for Relative, addr
// is already the branch target, and branches use it directly).
func (c *CPU) operand(mode AddressingMode, addr uint16) byte {
	if mode == Accumulator {
		return c.A
	}
	return c.read(addr)
}

// writeBack stores a transformed operand per the addressing mode: the
// accumulator for Accumulator mode, memory otherwise. Implicit/Immediate/
// Relative never reach here (no ALU op targets them).
func (c *CPU) writeBack(mode AddressingMode, addr uint16, v byte) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.write(addr, v)
}

// --- stack ---

// push stores v at $0100|SP then decrements SP.
func (c *CPU) push(v byte) {
	c.write(stackBase|uint16(c.SP), v)
	c.SP--
}

// pull increments SP then reads $0100|SP.
func (c *CPU) pull() byte {
	c.SP++
	return c.read(stackBase | uint16(c.SP))
}

// pushAddress pushes high then low, so pullAddress's low-then-high reads
// reconstruct the original value (§9 Decision #1).
func (c *CPU) pushAddress(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pullAddress() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

// --- flag helpers ---

func (c *CPU) setZN(v byte) {
	if v == 0 {
		c.P |= flagZero
	} else {
		c.P &^= flagZero
	}
	if v&0x80 != 0 {
		c.P |= flagNegative
	} else {
		c.P &^= flagNegative
	}
}

func (c *CPU) setCarry(set bool) {
	if set {
		c.P |= flagCarry
	} else {
		c.P &^= flagCarry
	}
}

func (c *CPU) setOverflow(set bool) {
	if set {
		c.P |= flagOverflow
	} else {
		c.P &^= flagOverflow
	}
}

func (c *CPU) carry() byte {
	if c.P&flagCarry != 0 {
		return 1
	}
	return 0
}

// compare implements CMP/CPX/CPY: carry comes from the 9-bit subtraction
// (reg - m with no borrow), not from a truncated 8-bit result (§9 Decision
// #4).
func (c *CPU) compare(reg, m byte) {
	result := uint16(reg) - uint16(m)
	c.setCarry(reg >= m)
	c.setZN(byte(result))
}

// addWithCarry implements ADC's core, shared by SBC (which passes the one's
// complement of its operand) and by the RRA/ISC illegal opcodes.
func (c *CPU) addWithCarry(m byte) {
	a := uint16(c.A)
	b := uint16(m)
	cr := uint16(c.carry())
	result := a + b + cr

	c.setCarry(result&0x100 != 0)
	c.setOverflow((a^result)&(b^result)&0x80 != 0)

	c.A = byte(result)
	c.setZN(c.A)
}

func (c *CPU) asl(v byte) byte {
	c.setCarry(v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	return v
}

func (c *CPU) lsr(v byte) byte {
	c.setCarry(v&0x01 != 0)
	v >>= 1
	c.setZN(v)
	return v
}

func (c *CPU) rol(v byte) byte {
	carryIn := c.carry()
	c.setCarry(v&0x80 != 0)
	v = v<<1 | carryIn
	c.setZN(v)
	return v
}

func (c *CPU) ror(v byte) byte {
	carryIn := c.carry()
	c.setCarry(v&0x01 != 0)
	v = v>>1 | carryIn<<7
	c.setZN(v)
	return v
}

// branch adds the unconditional taken-branch cycle, plus another if the
// branch crosses a page, then jumps. Only called when the branch condition
// holds; the caller is responsible for clearing crossPagePenaltyArmed when
// the branch is not taken (no penalty applies at all in that case).
func (c *CPU) branch(target uint16) {
	c.extraCycles++
	if c.PC&0xFF00 != target&0xFF00 {
		c.extraCycles++
	}
	c.PC = target
}
