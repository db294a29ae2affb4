package nes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleRunsProgram(t *testing.T) {
	console := NewConsole()
	// LDA #$C0; TAX; INX; BRK
	console.LoadProgram([]byte{0xA9, 0xC0, 0xAA, 0xE8, 0x00}, 0x8000)
	console.Write(0xFFFE, 0x00)
	console.Write(0xFFFF, 0x90)

	executed := console.Step(4)
	assert.Equal(t, 4, executed)
	assert.Equal(t, byte(0xC0), console.CPU.A)
	assert.Equal(t, byte(0xC1), console.CPU.X)
	assert.Equal(t, uint16(0x9000), console.CPU.PC)
	assert.NotZero(t, console.CPU.P&InterruptDisable)
}

func TestConsoleCPUAndPPURunInLockstep(t *testing.T) {
	console := NewConsole()
	console.LoadProgram([]byte{0xA9, 0x01, 0xEA, 0xEA, 0xEA}, 0x8000)

	dots := func() uint64 {
		p := console.PPU
		return p.Frame*uint64(scanlinesPerFrame*dotsPerScanline) +
			uint64(p.Scanline)*dotsPerScanline + uint64(p.Dot)
	}

	for i := 0; i < 4; i++ {
		before := dots()
		cycles := console.CPU.Clock()
		assert.Equal(t, uint64(3*cycles), dots()-before)
	}
}

func TestConsoleLoadROMMirrorsAndResetVector(t *testing.T) {
	prg := make([]byte, prgBank)
	prg[0] = 0xEA
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80

	var rom bytes.Buffer
	require.NoError(t, WriteINES(&rom, prg, nil, 0, Horizontal))

	console := NewConsole()
	require.NoError(t, console.LoadROM(&rom))

	// 16 KiB PRG mirrors across both banks
	assert.Equal(t, console.Read(0x8000), console.Read(0xC000))
	assert.Equal(t, uint16(0x8000), console.Bus.ReadWord(0xFFFC))
	assert.Equal(t, uint16(0x8000), console.CPU.PC)
}

func TestConsoleOAMDMAStallsCPU(t *testing.T) {
	console := NewConsole()
	// fill page $02 with 00 01 02 ... FF, then LDA #$02; STA $4014
	for i := 0; i < 256; i++ {
		console.Write(uint16(0x0200+i), byte(i))
	}
	console.LoadProgram([]byte{0xA9, 0x02, 0x8D, 0x14, 0x40}, 0x8000)

	console.Step(2)

	for i := byte(0); i < 255; i++ {
		require.Equal(t, i, console.PPU.ReadOAM(i))
	}
	// the STA instruction itself already drained 4 cycles of the debt
	assert.GreaterOrEqual(t, console.PPU.DMAStall()+4, 513)
}

func TestConsoleDeliversVBlankNMI(t *testing.T) {
	console := NewConsole()
	// main program: enable NMI in PPUCTRL, then spin
	// LDA #$80; STA $2000; JMP spin
	console.LoadProgram([]byte{
		0xA9, 0x80, // LDA #$80
		0x8D, 0x00, 0x20, // STA $2000
		0x4C, 0x05, 0x80, // spin: JMP $8005
	}, 0x8000)
	// NMI handler at $9000 spins too
	console.Bus.Load(0x9000, []byte{0x4C, 0x00, 0x90})
	console.Write(0xFFFA, 0x00)
	console.Write(0xFFFB, 0x90)

	// run until the NMI redirects execution (one frame is plenty)
	for i := 0; i < 20000 && console.CPU.PC < 0x9000; i++ {
		console.CPU.Clock()
	}
	require.GreaterOrEqual(t, console.CPU.PC, uint16(0x9000))

	// the handler entry was pushed with Break clear
	sp := console.CPU.SP
	status := console.Read(0x0100 | uint16(sp+1))
	assert.Zero(t, status&byte(Break))
	assert.NotZero(t, status&byte(Unused))

	lo := console.Read(0x0100 | uint16(sp+2))
	hi := console.Read(0x0100 | uint16(sp+3))
	pushed := uint16(hi)<<8 | uint16(lo)
	assert.True(t, pushed >= 0x8005 && pushed <= 0x8008, "pushed PC $%04X", pushed)

	// the VBlank flag reads set once, then clears
	assert.NotZero(t, console.Read(0x2002)&statusVBlank)
	assert.Zero(t, console.Read(0x2002)&statusVBlank)

	// exactly one NMI this frame: the handler keeps spinning
	sp = console.CPU.SP
	console.Step(100)
	assert.Equal(t, sp, console.CPU.SP)
}

func TestConsoleStepStopsWhenHalted(t *testing.T) {
	console := NewConsole()
	console.LoadProgram([]byte{0xEA, 0x02}, 0x8000) // NOP; KIL

	executed := console.Step(10)
	assert.Equal(t, 2, executed)
	assert.True(t, console.CPU.Halted)
	require.NotNil(t, console.CPU.Fault())
}

func TestConsoleStepFrame(t *testing.T) {
	console := NewConsole()
	console.LoadProgram([]byte{0x4C, 0x00, 0x80}, 0x8000) // JMP $8000

	console.StepFrame()
	assert.Equal(t, uint64(1), console.PPU.Frame)
	console.StepFrame()
	assert.Equal(t, uint64(2), console.PPU.Frame)
}

func TestConsoleTraceOutput(t *testing.T) {
	console := NewConsole()
	var trace bytes.Buffer
	console.SetTrace(&trace)
	console.LoadProgram([]byte{0xA9, 0x42, 0xEA}, 0x8000)

	console.Step(2)
	out := trace.String()
	assert.Contains(t, out, "LDA #$42")
	assert.Contains(t, out, "NOP")
	assert.Contains(t, out, "8000")
}
