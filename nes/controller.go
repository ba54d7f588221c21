package nes

// Button identifies one of the eight joypad inputs.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Buttons is the full state of one joypad between ticks.
type Buttons [8]bool

// Controller implements the NES joypad shift-register protocol: a write to
// $4016 with bit 0 set latches the live button state; a write with bit 0
// clear ends the strobe; each subsequent read shifts out one button state,
// lowest bit first (A,B,Select,Start,Up,Down,Left,Right), reading as 1 once
// all eight have been consumed (open-bus convention).
type Controller struct {
	addr    uint16 // 0x4016 or 0x4017
	buttons Buttons
	shift   byte
	strobe  bool
}

// NewController returns a Controller claiming the given joypad register
// address (0x4016 for pad 1, 0x4017 for pad 2).
func NewController(addr uint16) *Controller {
	return &Controller{addr: addr}
}

// SetButtons latches the host's current button state for the next strobe.
func (c *Controller) SetButtons(b Buttons) {
	c.buttons = b
}

func (c *Controller) reload() byte {
	var v byte
	for i, pressed := range c.buttons {
		if pressed {
			v |= 1 << uint(i)
		}
	}
	return v
}

func (c *Controller) Read(addr uint16) (byte, bool) {
	if addr != c.addr {
		return 0, false
	}
	if c.strobe {
		c.shift = c.reload()
	}
	v := c.shift & 1
	c.shift >>= 1
	c.shift |= 0x80 // reads as 1 past the eighth bit
	return v, true
}

func (c *Controller) Write(addr uint16, v byte) bool {
	if addr != c.addr {
		return false
	}
	c.strobe = v&1 != 0
	if c.strobe {
		c.shift = c.reload()
	}
	return true
}

func (c *Controller) Reset() {
	c.shift = 0
	c.strobe = false
	c.buttons = Buttons{}
}
