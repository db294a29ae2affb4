package nes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// Monitor is an interactive single-step debugger for a console,
// rendered as a terminal UI. Keys: space/j step one instruction, f
// runs a frame, r resets, q quits.
type Monitor struct {
	console *Console
}

// NewMonitor wraps a console for interactive stepping.
func NewMonitor(c *Console) *Monitor {
	return &Monitor{console: c}
}

// Run starts the TUI and blocks until the user quits. It returns the
// CPU fault if execution halted on an illegal opcode.
func (m *Monitor) Run() error {
	final, err := tea.NewProgram(monitorModel{console: m.console}).Run()
	if err != nil {
		return err
	}
	if fault := final.(monitorModel).console.CPU.Fault(); fault != nil {
		return fault
	}
	return nil
}

type monitorModel struct {
	console *Console
	prevPC  uint16
}

func (m monitorModel) Init() tea.Cmd {
	return nil
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.console.CPU.PC
			m.console.Step(1)
			if m.console.CPU.Halted {
				return m, tea.Quit
			}

		case "f":
			m.prevPC = m.console.CPU.PC
			m.console.StepFrame()
			if m.console.CPU.Halted {
				return m, tea.Quit
			}

		case "r":
			m.console.Reset()
		}
	}
	return m, nil
}

// memoryRow renders 16 bytes starting at addr, highlighting the PC.
func (m monitorModel) memoryRow(addr uint16) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04x | ", addr)
	for i := uint16(0); i < 16; i++ {
		v := m.console.Bus.Read(addr + i)
		if addr+i == m.console.CPU.PC {
			fmt.Fprintf(&b, "[%02x] ", v)
		} else {
			fmt.Fprintf(&b, " %02x  ", v)
		}
	}
	return b.String()
}

func (m monitorModel) memory() string {
	var header strings.Builder
	header.WriteString("     | ")
	for i := 0; i < 16; i++ {
		fmt.Fprintf(&header, " %02x  ", i)
	}
	rows := []string{header.String()}

	pc := m.console.CPU.PC &^ 0x000F
	for i := -2; i <= 3; i++ {
		rows = append(rows, m.memoryRow(pc+uint16(i*16)))
	}

	// top of the stack page
	sp := (stackBase | uint16(m.console.CPU.SP)) &^ 0x000F
	rows = append(rows, "", m.memoryRow(sp))

	return strings.Join(rows, "\n")
}

func (m monitorModel) status() string {
	cpu := m.console.CPU
	ppu := m.console.PPU

	var flags strings.Builder
	for _, f := range []Status{Negative, Overflow, Unused, Break, Decimal, InterruptDisable, Zero, Carry} {
		if cpu.P&f != 0 {
			flags.WriteString("/ ")
		} else {
			flags.WriteString("  ")
		}
	}

	text, _ := Sprint(m.console.Bus, cpu.PC)
	return fmt.Sprintf(`
PC: %04x (%04x)  %s
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V U B D I Z C
%s
PPU: %3d,%3d frame %d  CYC:%d
`,
		cpu.PC, m.prevPC, text,
		cpu.A, cpu.X, cpu.Y, cpu.SP,
		flags.String(),
		ppu.Scanline, ppu.Dot, ppu.Frame, cpu.Cycles,
	)
}

func (m monitorModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.memory(),
			m.status(),
		),
		"",
		spew.Sdump(Instructions[m.console.Bus.Read(m.console.CPU.PC)]),
	)
}
