package nes

import (
	"fmt"
	"io"
	"strings"
)

var operandFormats = map[AddressingMode]string{
	Immediate:           "#$%02X",
	ZeroPage:            "$%02X",
	ZeroPageIndexedX:    "$%02X,X",
	ZeroPageIndexedY:    "$%02X,Y",
	Absolute:            "$%04X",
	IndexedX:            "$%04X,X",
	IndexedY:            "$%04X,Y",
	Indirect:            "($%04X)",
	PreIndexedIndirect:  "($%02X,X)",
	PostIndexedIndirect: "($%02X),Y",
	Relative:            "$%04X",
}

// Sprint renders the instruction at pc as assembly text and reports
// its size. Relative operands are shown as their resolved target
// address. Illegal opcodes render as raw bytes.
func Sprint(bus *Bus, pc uint16) (string, byte) {
	opcode := bus.Read(pc)
	inst := Instructions[opcode]
	if inst.Illegal {
		return fmt.Sprintf(".byte $%02X", opcode), 1
	}

	switch inst.Mode {
	case Implied:
		return inst.Name, inst.Size
	case Accumulator:
		return inst.Name + " A", inst.Size
	}

	var arg uint16
	switch inst.Size {
	case 2:
		arg = uint16(bus.Read(pc + 1))
	case 3:
		arg = uint16(bus.Read(pc+1)) | uint16(bus.Read(pc+2))<<8
	}
	if inst.Mode == Relative {
		arg = pc + 2 + uint16(int8(bus.Read(pc+1)))
	}

	return inst.Name + " " + fmt.Sprintf(operandFormats[inst.Mode], arg), inst.Size
}

// Disassemble writes one trace line for the instruction at pc in the
// usual nestest layout: address, raw bytes, assembly, register state
// and the running cycle count.
func Disassemble(w io.Writer, bus *Bus, pc uint16, a, x, y, p, sp byte, cycles uint64) {
	opcode := bus.Read(pc)
	inst := Instructions[opcode]

	var raw strings.Builder
	size := inst.Size
	if size == 0 {
		size = 1
	}
	for i := byte(0); i < size; i++ {
		fmt.Fprintf(&raw, "%02X ", bus.Read(pc+uint16(i)))
	}

	text, _ := Sprint(bus, pc)
	fmt.Fprintf(w, "%04X  %-9s %-32s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
		pc, strings.TrimSpace(raw.String()), text, a, x, y, p, sp, cycles)
}
