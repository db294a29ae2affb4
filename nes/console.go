package nes

import (
	"fmt"
	"io"
	"os"
)

// Console owns the bus, CPU and PPU and wires them together: the PPU's
// NMI callback feeds the CPU's NMI line, the bus routes the PPU
// register file and the $4014 DMA port, and the CPU drives the PPU
// three dots per cycle. Drivers talk to the Console; they only reach
// into the parts for state they want to inspect between steps.
type Console struct {
	Bus *Bus
	CPU *CPU
	PPU *PPU

	cart *Cartridge
}

// NewConsole builds a console with an empty cartridge slot.
func NewConsole() *Console {
	bus := NewBus()
	ppu := NewPPU()
	bus.AttachPPU(ppu)
	cpu := NewCPU(bus)
	ppu.SetNMICallback(cpu.NMI)

	return &Console{Bus: bus, CPU: cpu, PPU: ppu}
}

// Empty reports whether a cartridge has been loaded.
func (c *Console) Empty() bool {
	return c.cart == nil
}

// LoadROM parses an iNES image, installs its mapper and resets.
func (c *Console) LoadROM(r io.Reader) error {
	cart, err := LoadROM(r)
	if err != nil {
		return err
	}
	if err := c.Bus.LoadCartridge(cart); err != nil {
		return err
	}
	c.cart = cart
	c.Reset()
	return nil
}

// LoadPath loads an iNES image from disk.
func (c *Console) LoadPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open rom: %w", err)
	}
	defer f.Close()
	return c.LoadROM(f)
}

// LoadProgram places a raw binary at addr, points the reset vector at
// it and resets. Meant for assembled programs and tests.
func (c *Console) LoadProgram(program []byte, addr uint16) {
	c.Bus.Load(addr, program)
	c.Bus.WriteResetVector(addr)
	c.Reset()
}

// Reset resets CPU and PPU together. The CPU re-reads the reset
// vector.
func (c *Console) Reset() {
	c.PPU.Reset()
	c.CPU.Reset()
}

// SetTrace directs the CPU execution trace to w.
func (c *Console) SetTrace(w io.Writer) {
	c.CPU.SetTrace(w)
}

// Step runs at most max instructions, stopping early if the CPU
// halts. It returns the number of instructions executed. Callers that
// need pacing run bounded bursts and watch the PPU frame counter.
func (c *Console) Step(max int) int {
	for i := 0; i < max; i++ {
		if c.CPU.Halted {
			return i
		}
		c.CPU.Clock()
	}
	return max
}

// StepFrame runs instructions until the PPU finishes the current
// frame.
func (c *Console) StepFrame() {
	frame := c.PPU.Frame
	for frame == c.PPU.Frame && !c.CPU.Halted {
		c.CPU.Clock()
	}
}

// Read reads through the bus; for drivers and tests.
func (c *Console) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write writes through the bus; for drivers and tests.
func (c *Console) Write(addr uint16, v byte) {
	c.Bus.Write(addr, v)
}
