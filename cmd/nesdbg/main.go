// Command nesdbg is a terminal disassembly/register viewer: a tea.Model
// holding a *nes.Console, stepping one CPU instruction per keypress and
// rendering the disassembler's window plus register/flag state. Grounded on
// hejops-gone/cpu/debugger.go's model/Init/Update/View shape.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/flga/nes/nes"
)

const window = 8 // lines shown above and below the current PC

var (
	frameStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	hiStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

type model struct {
	console *nes.Console
	disasm  *nes.Disassembler
	prevPC  uint16
	err     error
}

func (m model) Init() tea.Cmd { return nil }

// stepInstruction clocks the CPU until a fresh instruction has been fully
// fetched and executed (Cycles back to 0), i.e. exactly one instruction.
func stepInstruction(cpu *nes.CPU) error {
	if err := cpu.Clock(); err != nil {
		return err
	}
	for cpu.Cycles > 0 {
		if err := cpu.Clock(); err != nil {
			return err
		}
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.console.CPU.PC
			if err := stepInstruction(m.console.CPU); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) disassembly() string {
	lines := m.disasm.Get(m.console.CPU.PC, window)
	var b strings.Builder
	for _, l := range lines {
		if strings.HasPrefix(l, fmt.Sprintf("$%04X:", m.console.CPU.PC)) {
			b.WriteString(hiStyle.Render(l))
		} else {
			b.WriteString(l)
		}
		b.WriteByte('\n')
	}
	return frameStyle.Render(b.String())
}

func (m model) registers() string {
	cpu := m.console.CPU
	p := byte(cpu.P)
	flags := "N V _ B D I Z C\n"
	for i := 7; i >= 0; i-- {
		if p&(1<<uint(i)) != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}

	return frameStyle.Render(fmt.Sprintf(
		"PC: $%04X (was $%04X)\n SP: $%02X\n  A: $%02X\n  X: $%02X\n  Y: $%02X\n\n%s",
		cpu.PC, m.prevPC, cpu.SP, cpu.A, cpu.X, cpu.Y, flags,
	))
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("halted: %s\n", m.err)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.disassembly(), m.registers()) + "\n" +
		spew.Sdump(m.console.CPU)
}

func main() {
	flag.Parse()
	romPath := flag.Arg(0)
	if romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: nesdbg <rom.nes>")
		os.Exit(2)
	}

	f, err := os.Open(romPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer f.Close()

	console := nes.New(nes.NewLogger(os.Stderr))
	if err := console.Load(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	m := model{
		console: console,
		disasm:  nes.NewDisassembler(console.PRG(), 0x8000),
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
