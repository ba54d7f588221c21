package nes

import "io"

// Console is the top-level composition: CPU, PPU, RAM, the two controllers,
// and the loaded cartridge, wired onto a CPU-facing Bus; the PPU reaches the
// cartridge's CHR memory directly through its CHR attachment.
// Clock drives both chips forward at the real hardware's 3:1 PPU:CPU ratio,
// grounded on the teacher's Console.StepFrame loop, generalized from a
// frame-stepping driver into a single-tick one per the Clock(image) host
// contract.
type Console struct {
	CPU *CPU
	PPU *PPU

	ram        *RAM
	controller [2]*Controller
	cart       *Cartridge
	cpuBus     *Bus

	log Logger

	// MasterCycles counts every PPU dot Clock has produced.
	MasterCycles uint64
}

// New constructs a Console with no cartridge loaded. Load must be called
// before Clock will do anything useful.
func New(log Logger) *Console {
	if log == nil {
		log = NewLogger(io.Discard)
	}

	c := &Console{log: log}
	c.ram = NewRAM()
	c.controller[0] = NewController(0x4016)
	c.controller[1] = NewController(0x4017)
	c.PPU = NewPPU(log)

	c.cpuBus = NewBus("cpu bus", log)
	c.cpuBus.Attach(c.ram)
	c.cpuBus.Attach(c.PPU)
	c.cpuBus.Attach(c.controller[0])
	c.cpuBus.Attach(c.controller[1])
	c.cpuBus.Attach(&oamDMA{console: c})

	c.CPU = NewCPU(c.cpuBus, log)
	return c
}

// Load parses an iNES image, attaches its cartridge to the CPU bus and its
// CHR memory to the PPU, and rebuilds the CPU's program counter from the
// reset vector. opts are
// forwarded to LoadINES (see WithLenientPRGWrites).
func (c *Console) Load(r io.Reader, opts ...LoadOption) error {
	cart, err := LoadINES(r, c.log, opts...)
	if err != nil {
		return err
	}

	c.cart = cart
	c.cpuBus.Attach(cart)
	c.PPU.Attach(cart, c.CPU.TriggerNMI)
	c.CPU.Init()
	return nil
}

// Loaded reports whether a cartridge has been attached.
func (c *Console) Loaded() bool {
	return c.cart != nil
}

// PRG returns the loaded cartridge's PRG image, for building a Disassembler.
// Returns nil if no cartridge is loaded.
func (c *Console) PRG() []byte {
	if c.cart == nil {
		return nil
	}
	return c.cart.PRG
}

// Reset reinitializes the CPU from the reset vector (sp<-$FD, flags<-0,
// a/x/y<-0, +8 cycles) and resets every bus attachment, per the lifecycle
// rules in §3.
func (c *Console) Reset() {
	c.cpuBus.Reset()
	c.PPU.Reset()
	c.CPU.Reset()
}

// SetButtons latches the given joypad's button state for the next strobe.
// pad is 0 or 1.
func (c *Console) SetButtons(pad int, b Buttons) {
	if pad < 0 || pad > 1 {
		return
	}
	c.controller[pad].SetButtons(b)
}

// Clock advances the PPU one dot, and the CPU one cycle every third dot,
// per the 3:1 PPU:CPU ratio (§4.9). img receives whatever pixels the PPU
// paints this tick; pass the same image across many Clock calls to
// accumulate a frame.
func (c *Console) Clock(img Framebuffer) error {
	c.PPU.Image = img
	c.PPU.Clock()
	if c.MasterCycles%3 == 0 {
		if err := c.CPU.Clock(); err != nil {
			return err
		}
	}
	c.MasterCycles++
	return nil
}

// oamDMA implements the $4014 OAMDMA register: writing a page number stalls
// the CPU for 513 (or 514, on an odd CPU cycle) cycles and copies 256 bytes
// from CPU page $XX00 into PPU OAM starting at the PPU's current OAMADDR.
// Grounded on the teacher's PPU.WritePort OAMDMA case, corrected to perform
// the real 256-byte transfer and CPU stall the teacher's version only
// sketches (it writes a single byte and never stalls the CPU).
type oamDMA struct {
	console *Console
}

func (d *oamDMA) Read(addr uint16) (byte, bool) { return 0, false }

func (d *oamDMA) Write(addr uint16, v byte) bool {
	if addr != regOAMDMA {
		return false
	}
	base := uint16(v) << 8
	for i := 0; i < 256; i++ {
		d.console.PPU.WriteOAM(d.console.PPU.oamAddr+byte(i), d.console.cpuBus.Read(base+uint16(i)))
	}
	stall := uint16(513)
	if d.console.MasterCycles/3%2 != 0 {
		stall++
	}
	d.console.CPU.Stall(stall)
	return true
}

func (d *oamDMA) Reset() {}
