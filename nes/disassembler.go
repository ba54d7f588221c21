package nes

import (
	"fmt"
	"sort"
	"strings"
)

// disasmFormats renders an instruction's operand for each addressing mode,
// grounded on the teacher's addressingFormats table in nes/disasembler.go,
// adapted to this package's AddressingMode values and Go's two's-complement
// signed-decimal rendering for Relative instead of a raw hex address.
var disasmFormats = map[AddressingMode]string{
	Immediate:       "#$%02X",
	ZeroPage:        "$%02X",
	ZeroPageX:       "$%02X,X",
	ZeroPageY:       "$%02X,Y",
	Absolute:        "$%04X",
	AbsoluteX:       "$%04X,X",
	AbsoluteY:       "$%04X,Y",
	Indirect:        "($%04X)",
	IndexedIndirect: "($%02X,X)",
	IndirectIndexed: "($%02X),Y",
}

// Line is one decoded instruction: its address and the formatted text a
// disassembly view would print for it.
type Line struct {
	Addr uint16
	Text string
}

// Disassembler holds a one-time, forward decode pass over a PRG image,
// keyed by instruction start address, so a debugger can page through
// disassembly without re-decoding on every frame (§9 re-architecture:
// replaces the teacher's inline per-trace disassemble() call, which
// recomputes a formatted line on every single instruction executed).
type Disassembler struct {
	lines []Line
	index map[uint16]int
}

// NewDisassembler scans prg once, starting at base, decoding every opcode
// it can reach by walking strictly forward (it does not follow branches or
// jumps: this is a linear sweep of the image, not a control-flow trace).
func NewDisassembler(prg []byte, base uint16) *Disassembler {
	d := &Disassembler{index: make(map[uint16]int)}

	addr := base
	for i := 0; i < len(prg); {
		opcode := prg[i]
		inst := instructionTable[opcode]
		size := 1 + inst.Mode.operandSize()
		if i+size > len(prg) {
			d.append(addr, fmt.Sprintf("$%04X: ??", addr))
			break
		}

		d.append(addr, formatLine(addr, inst, prg[i+1:i+size]))
		i += size
		addr += uint16(size)
	}

	return d
}

func (d *Disassembler) append(addr uint16, text string) {
	d.index[addr] = len(d.lines)
	d.lines = append(d.lines, Line{Addr: addr, Text: text})
}

func formatLine(addr uint16, inst Instruction, operand []byte) string {
	var operandText string
	switch inst.Mode {
	case Implicit:
		operandText = ""
	case Accumulator:
		operandText = "A"
	case Relative:
		offset := int8(operand[0])
		operandText = fmt.Sprintf("%d", offset)
	default:
		format, ok := disasmFormats[inst.Mode]
		if !ok {
			operandText = ""
			break
		}
		var arg uint16
		if len(operand) == 2 {
			arg = uint16(operand[0]) | uint16(operand[1])<<8
		} else if len(operand) == 1 {
			arg = uint16(operand[0])
		}
		operandText = fmt.Sprintf(format, arg)
	}

	if operandText == "" {
		return fmt.Sprintf("$%04X: %s", addr, inst.Name)
	}
	return fmt.Sprintf("$%04X: %s %s", addr, inst.Name, operandText)
}

// Get returns 2n+1 lines centered on the instruction at or immediately
// following addr, padded with "$????: ???" placeholders when the window
// runs past either end of the decoded range.
func (d *Disassembler) Get(addr uint16, n int) []string {
	center := d.position(addr)

	out := make([]string, 0, 2*n+1)
	for i := center - n; i <= center+n; i++ {
		if i < 0 || i >= len(d.lines) {
			out = append(out, "$????: ???")
			continue
		}
		out = append(out, d.lines[i].Text)
	}
	return out
}

// position returns the index of the decoded line at addr, or the nearest
// following one if addr falls inside a multi-byte instruction's operand.
func (d *Disassembler) position(addr uint16) int {
	if i, ok := d.index[addr]; ok {
		return i
	}
	return sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].Addr >= addr
	})
}

// String renders the full decoded range, one instruction per line.
func (d *Disassembler) String() string {
	var b strings.Builder
	for _, l := range d.lines {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
