package nes

import "fmt"

// AddressingMode is the rule an instruction uses to locate its operand.
//
// Zero page indexed modes wrap within the zero page, and the indirect
// modes read both pointer bytes from the zero page with wrap at $FF.
// Indirect (JMP only) reproduces the page-wrap hardware bug: a pointer
// at $xxFF fetches its high byte from $xx00.
type AddressingMode byte

const (
	// Implied instructions carry no operand.
	Implied AddressingMode = iota

	// Accumulator instructions operate on A directly.
	Accumulator

	// Immediate operands are the byte following the opcode.
	Immediate

	// ZeroPage addresses the first 256 bytes with a one-byte operand.
	ZeroPage

	// ZeroPageIndexedX is ZeroPage plus X, wrapping within the page.
	ZeroPageIndexedX

	// ZeroPageIndexedY is ZeroPage plus Y, wrapping within the page.
	ZeroPageIndexedY

	// Absolute addresses the full 64 KiB space with a two-byte operand.
	Absolute

	// IndexedX is Absolute plus X. Read instructions pay one extra
	// cycle when the sum crosses a page.
	IndexedX

	// IndexedY is Absolute plus Y, with the same page-cross penalty.
	IndexedY

	// Indirect reads the target address through a two-byte pointer.
	// Only JMP uses it.
	Indirect

	// PreIndexedIndirect ("($aa,X)") adds X to a zero-page operand and
	// reads a two-byte pointer from the result.
	PreIndexedIndirect

	// PostIndexedIndirect ("($aa),Y") reads a two-byte pointer from a
	// zero-page operand and adds Y to it afterwards.
	PostIndexedIndirect

	// Relative operands are signed 8-bit offsets from the address of
	// the next instruction. Only branches use it.
	Relative
)

var modeNames = [...]string{
	Implied:             "implied",
	Accumulator:         "accumulator",
	Immediate:           "immediate",
	ZeroPage:            "zero-page",
	ZeroPageIndexedX:    "zero-page,X",
	ZeroPageIndexedY:    "zero-page,Y",
	Absolute:            "absolute",
	IndexedX:            "absolute,X",
	IndexedY:            "absolute,Y",
	Indirect:            "indirect",
	PreIndexedIndirect:  "indirect,X",
	PostIndexedIndirect: "indirect,Y",
	Relative:            "relative",
}

func (m AddressingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", byte(m))
}

// Instruction describes one opcode: its mnemonic, addressing mode,
// encoded size in bytes and base cycle cost. PageCycles is the penalty
// paid by read instructions whose effective address crosses a page.
type Instruction struct {
	Name       string
	Mode       AddressingMode
	Size       byte
	Cycles     byte
	PageCycles byte
	Illegal    bool
}

// Instructions maps every opcode byte to its decoded form. Opcodes the
// official set leaves undefined are flagged Illegal; executing one
// halts the CPU.
var Instructions = [256]Instruction{
	0x00: {Name: "BRK", Mode: Implied, Size: 2, Cycles: 7},
	0x01: {Name: "ORA", Mode: PreIndexedIndirect, Size: 2, Cycles: 6},
	0x02: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0x03: {Name: "SLO", Mode: PreIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0x04: {Name: "NOP", Mode: ZeroPage, Size: 2, Cycles: 3, Illegal: true},
	0x05: {Name: "ORA", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x06: {Name: "ASL", Mode: ZeroPage, Size: 2, Cycles: 5},
	0x07: {Name: "SLO", Mode: ZeroPage, Size: 2, Cycles: 5, Illegal: true},
	0x08: {Name: "PHP", Mode: Implied, Size: 1, Cycles: 3},
	0x09: {Name: "ORA", Mode: Immediate, Size: 2, Cycles: 2},
	0x0A: {Name: "ASL", Mode: Accumulator, Size: 1, Cycles: 2},
	0x0B: {Name: "ANC", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0x0C: {Name: "NOP", Mode: Absolute, Size: 3, Cycles: 4, Illegal: true},
	0x0D: {Name: "ORA", Mode: Absolute, Size: 3, Cycles: 4},
	0x0E: {Name: "ASL", Mode: Absolute, Size: 3, Cycles: 6},
	0x0F: {Name: "SLO", Mode: Absolute, Size: 3, Cycles: 6, Illegal: true},
	0x10: {Name: "BPL", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x11: {Name: "ORA", Mode: PostIndexedIndirect, Size: 2, Cycles: 5, PageCycles: 1},
	0x12: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0x13: {Name: "SLO", Mode: PostIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0x14: {Name: "NOP", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4, Illegal: true},
	0x15: {Name: "ORA", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4},
	0x16: {Name: "ASL", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6},
	0x17: {Name: "SLO", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6, Illegal: true},
	0x18: {Name: "CLC", Mode: Implied, Size: 1, Cycles: 2},
	0x19: {Name: "ORA", Mode: IndexedY, Size: 3, Cycles: 4, PageCycles: 1},
	0x1A: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2, Illegal: true},
	0x1B: {Name: "SLO", Mode: IndexedY, Size: 3, Cycles: 7, Illegal: true},
	0x1C: {Name: "NOP", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	0x1D: {Name: "ORA", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1},
	0x1E: {Name: "ASL", Mode: IndexedX, Size: 3, Cycles: 7},
	0x1F: {Name: "SLO", Mode: IndexedX, Size: 3, Cycles: 7, Illegal: true},
	0x20: {Name: "JSR", Mode: Absolute, Size: 3, Cycles: 6},
	0x21: {Name: "AND", Mode: PreIndexedIndirect, Size: 2, Cycles: 6},
	0x22: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0x23: {Name: "RLA", Mode: PreIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0x24: {Name: "BIT", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x25: {Name: "AND", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x26: {Name: "ROL", Mode: ZeroPage, Size: 2, Cycles: 5},
	0x27: {Name: "RLA", Mode: ZeroPage, Size: 2, Cycles: 5, Illegal: true},
	0x28: {Name: "PLP", Mode: Implied, Size: 1, Cycles: 4},
	0x29: {Name: "AND", Mode: Immediate, Size: 2, Cycles: 2},
	0x2A: {Name: "ROL", Mode: Accumulator, Size: 1, Cycles: 2},
	0x2B: {Name: "ANC", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0x2C: {Name: "BIT", Mode: Absolute, Size: 3, Cycles: 4},
	0x2D: {Name: "AND", Mode: Absolute, Size: 3, Cycles: 4},
	0x2E: {Name: "ROL", Mode: Absolute, Size: 3, Cycles: 6},
	0x2F: {Name: "RLA", Mode: Absolute, Size: 3, Cycles: 6, Illegal: true},
	0x30: {Name: "BMI", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x31: {Name: "AND", Mode: PostIndexedIndirect, Size: 2, Cycles: 5, PageCycles: 1},
	0x32: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0x33: {Name: "RLA", Mode: PostIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0x34: {Name: "NOP", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4, Illegal: true},
	0x35: {Name: "AND", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4},
	0x36: {Name: "ROL", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6},
	0x37: {Name: "RLA", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6, Illegal: true},
	0x38: {Name: "SEC", Mode: Implied, Size: 1, Cycles: 2},
	0x39: {Name: "AND", Mode: IndexedY, Size: 3, Cycles: 4, PageCycles: 1},
	0x3A: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2, Illegal: true},
	0x3B: {Name: "RLA", Mode: IndexedY, Size: 3, Cycles: 7, Illegal: true},
	0x3C: {Name: "NOP", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	0x3D: {Name: "AND", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1},
	0x3E: {Name: "ROL", Mode: IndexedX, Size: 3, Cycles: 7},
	0x3F: {Name: "RLA", Mode: IndexedX, Size: 3, Cycles: 7, Illegal: true},
	0x40: {Name: "RTI", Mode: Implied, Size: 1, Cycles: 6},
	0x41: {Name: "EOR", Mode: PreIndexedIndirect, Size: 2, Cycles: 6},
	0x42: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0x43: {Name: "SRE", Mode: PreIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0x44: {Name: "NOP", Mode: ZeroPage, Size: 2, Cycles: 3, Illegal: true},
	0x45: {Name: "EOR", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x46: {Name: "LSR", Mode: ZeroPage, Size: 2, Cycles: 5},
	0x47: {Name: "SRE", Mode: ZeroPage, Size: 2, Cycles: 5, Illegal: true},
	0x48: {Name: "PHA", Mode: Implied, Size: 1, Cycles: 3},
	0x49: {Name: "EOR", Mode: Immediate, Size: 2, Cycles: 2},
	0x4A: {Name: "LSR", Mode: Accumulator, Size: 1, Cycles: 2},
	0x4B: {Name: "ALR", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0x4C: {Name: "JMP", Mode: Absolute, Size: 3, Cycles: 3},
	0x4D: {Name: "EOR", Mode: Absolute, Size: 3, Cycles: 4},
	0x4E: {Name: "LSR", Mode: Absolute, Size: 3, Cycles: 6},
	0x4F: {Name: "SRE", Mode: Absolute, Size: 3, Cycles: 6, Illegal: true},
	0x50: {Name: "BVC", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x51: {Name: "EOR", Mode: PostIndexedIndirect, Size: 2, Cycles: 5, PageCycles: 1},
	0x52: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0x53: {Name: "SRE", Mode: PostIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0x54: {Name: "NOP", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4, Illegal: true},
	0x55: {Name: "EOR", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4},
	0x56: {Name: "LSR", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6},
	0x57: {Name: "SRE", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6, Illegal: true},
	0x58: {Name: "CLI", Mode: Implied, Size: 1, Cycles: 2},
	0x59: {Name: "EOR", Mode: IndexedY, Size: 3, Cycles: 4, PageCycles: 1},
	0x5A: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2, Illegal: true},
	0x5B: {Name: "SRE", Mode: IndexedY, Size: 3, Cycles: 7, Illegal: true},
	0x5C: {Name: "NOP", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	0x5D: {Name: "EOR", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1},
	0x5E: {Name: "LSR", Mode: IndexedX, Size: 3, Cycles: 7},
	0x5F: {Name: "SRE", Mode: IndexedX, Size: 3, Cycles: 7, Illegal: true},
	0x60: {Name: "RTS", Mode: Implied, Size: 1, Cycles: 6},
	0x61: {Name: "ADC", Mode: PreIndexedIndirect, Size: 2, Cycles: 6},
	0x62: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0x63: {Name: "RRA", Mode: PreIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0x64: {Name: "NOP", Mode: ZeroPage, Size: 2, Cycles: 3, Illegal: true},
	0x65: {Name: "ADC", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x66: {Name: "ROR", Mode: ZeroPage, Size: 2, Cycles: 5},
	0x67: {Name: "RRA", Mode: ZeroPage, Size: 2, Cycles: 5, Illegal: true},
	0x68: {Name: "PLA", Mode: Implied, Size: 1, Cycles: 4},
	0x69: {Name: "ADC", Mode: Immediate, Size: 2, Cycles: 2},
	0x6A: {Name: "ROR", Mode: Accumulator, Size: 1, Cycles: 2},
	0x6B: {Name: "ARR", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0x6C: {Name: "JMP", Mode: Indirect, Size: 3, Cycles: 5},
	0x6D: {Name: "ADC", Mode: Absolute, Size: 3, Cycles: 4},
	0x6E: {Name: "ROR", Mode: Absolute, Size: 3, Cycles: 6},
	0x6F: {Name: "RRA", Mode: Absolute, Size: 3, Cycles: 6, Illegal: true},
	0x70: {Name: "BVS", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x71: {Name: "ADC", Mode: PostIndexedIndirect, Size: 2, Cycles: 5, PageCycles: 1},
	0x72: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0x73: {Name: "RRA", Mode: PostIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0x74: {Name: "NOP", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4, Illegal: true},
	0x75: {Name: "ADC", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4},
	0x76: {Name: "ROR", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6},
	0x77: {Name: "RRA", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6, Illegal: true},
	0x78: {Name: "SEI", Mode: Implied, Size: 1, Cycles: 2},
	0x79: {Name: "ADC", Mode: IndexedY, Size: 3, Cycles: 4, PageCycles: 1},
	0x7A: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2, Illegal: true},
	0x7B: {Name: "RRA", Mode: IndexedY, Size: 3, Cycles: 7, Illegal: true},
	0x7C: {Name: "NOP", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	0x7D: {Name: "ADC", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1},
	0x7E: {Name: "ROR", Mode: IndexedX, Size: 3, Cycles: 7},
	0x7F: {Name: "RRA", Mode: IndexedX, Size: 3, Cycles: 7, Illegal: true},
	0x80: {Name: "NOP", Mode: Immediate, Size: 2, Cycles: 2, Illegal: true},
	0x81: {Name: "STA", Mode: PreIndexedIndirect, Size: 2, Cycles: 6},
	0x82: {Name: "NOP", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0x83: {Name: "SAX", Mode: PreIndexedIndirect, Size: 2, Cycles: 6, Illegal: true},
	0x84: {Name: "STY", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x85: {Name: "STA", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x86: {Name: "STX", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x87: {Name: "SAX", Mode: ZeroPage, Size: 2, Cycles: 3, Illegal: true},
	0x88: {Name: "DEY", Mode: Implied, Size: 1, Cycles: 2},
	0x89: {Name: "NOP", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0x8A: {Name: "TXA", Mode: Implied, Size: 1, Cycles: 2},
	0x8B: {Name: "XAA", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0x8C: {Name: "STY", Mode: Absolute, Size: 3, Cycles: 4},
	0x8D: {Name: "STA", Mode: Absolute, Size: 3, Cycles: 4},
	0x8E: {Name: "STX", Mode: Absolute, Size: 3, Cycles: 4},
	0x8F: {Name: "SAX", Mode: Absolute, Size: 3, Cycles: 4, Illegal: true},
	0x90: {Name: "BCC", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x91: {Name: "STA", Mode: PostIndexedIndirect, Size: 2, Cycles: 6},
	0x92: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0x93: {Name: "AHX", Mode: PostIndexedIndirect, Size: 0, Cycles: 6, Illegal: true},
	0x94: {Name: "STY", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4},
	0x95: {Name: "STA", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4},
	0x96: {Name: "STX", Mode: ZeroPageIndexedY, Size: 2, Cycles: 4},
	0x97: {Name: "SAX", Mode: ZeroPageIndexedY, Size: 2, Cycles: 4, Illegal: true},
	0x98: {Name: "TYA", Mode: Implied, Size: 1, Cycles: 2},
	0x99: {Name: "STA", Mode: IndexedY, Size: 3, Cycles: 5},
	0x9A: {Name: "TXS", Mode: Implied, Size: 1, Cycles: 2},
	0x9B: {Name: "TAS", Mode: IndexedY, Size: 0, Cycles: 5, Illegal: true},
	0x9C: {Name: "SHY", Mode: IndexedX, Size: 0, Cycles: 5, Illegal: true},
	0x9D: {Name: "STA", Mode: IndexedX, Size: 3, Cycles: 5},
	0x9E: {Name: "SHX", Mode: IndexedY, Size: 0, Cycles: 5, Illegal: true},
	0x9F: {Name: "AHX", Mode: IndexedY, Size: 0, Cycles: 5, Illegal: true},
	0xA0: {Name: "LDY", Mode: Immediate, Size: 2, Cycles: 2},
	0xA1: {Name: "LDA", Mode: PreIndexedIndirect, Size: 2, Cycles: 6},
	0xA2: {Name: "LDX", Mode: Immediate, Size: 2, Cycles: 2},
	0xA3: {Name: "LAX", Mode: PreIndexedIndirect, Size: 2, Cycles: 6, Illegal: true},
	0xA4: {Name: "LDY", Mode: ZeroPage, Size: 2, Cycles: 3},
	0xA5: {Name: "LDA", Mode: ZeroPage, Size: 2, Cycles: 3},
	0xA6: {Name: "LDX", Mode: ZeroPage, Size: 2, Cycles: 3},
	0xA7: {Name: "LAX", Mode: ZeroPage, Size: 2, Cycles: 3, Illegal: true},
	0xA8: {Name: "TAY", Mode: Implied, Size: 1, Cycles: 2},
	0xA9: {Name: "LDA", Mode: Immediate, Size: 2, Cycles: 2},
	0xAA: {Name: "TAX", Mode: Implied, Size: 1, Cycles: 2},
	0xAB: {Name: "LAX", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0xAC: {Name: "LDY", Mode: Absolute, Size: 3, Cycles: 4},
	0xAD: {Name: "LDA", Mode: Absolute, Size: 3, Cycles: 4},
	0xAE: {Name: "LDX", Mode: Absolute, Size: 3, Cycles: 4},
	0xAF: {Name: "LAX", Mode: Absolute, Size: 3, Cycles: 4, Illegal: true},
	0xB0: {Name: "BCS", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0xB1: {Name: "LDA", Mode: PostIndexedIndirect, Size: 2, Cycles: 5, PageCycles: 1},
	0xB2: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0xB3: {Name: "LAX", Mode: PostIndexedIndirect, Size: 2, Cycles: 5, PageCycles: 1, Illegal: true},
	0xB4: {Name: "LDY", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4},
	0xB5: {Name: "LDA", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4},
	0xB6: {Name: "LDX", Mode: ZeroPageIndexedY, Size: 2, Cycles: 4},
	0xB7: {Name: "LAX", Mode: ZeroPageIndexedY, Size: 2, Cycles: 4, Illegal: true},
	0xB8: {Name: "CLV", Mode: Implied, Size: 1, Cycles: 2},
	0xB9: {Name: "LDA", Mode: IndexedY, Size: 3, Cycles: 4, PageCycles: 1},
	0xBA: {Name: "TSX", Mode: Implied, Size: 1, Cycles: 2},
	0xBB: {Name: "LAS", Mode: IndexedY, Size: 0, Cycles: 4, PageCycles: 1, Illegal: true},
	0xBC: {Name: "LDY", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1},
	0xBD: {Name: "LDA", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1},
	0xBE: {Name: "LDX", Mode: IndexedY, Size: 3, Cycles: 4, PageCycles: 1},
	0xBF: {Name: "LAX", Mode: IndexedY, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	0xC0: {Name: "CPY", Mode: Immediate, Size: 2, Cycles: 2},
	0xC1: {Name: "CMP", Mode: PreIndexedIndirect, Size: 2, Cycles: 6},
	0xC2: {Name: "NOP", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0xC3: {Name: "DCP", Mode: PreIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0xC4: {Name: "CPY", Mode: ZeroPage, Size: 2, Cycles: 3},
	0xC5: {Name: "CMP", Mode: ZeroPage, Size: 2, Cycles: 3},
	0xC6: {Name: "DEC", Mode: ZeroPage, Size: 2, Cycles: 5},
	0xC7: {Name: "DCP", Mode: ZeroPage, Size: 2, Cycles: 5, Illegal: true},
	0xC8: {Name: "INY", Mode: Implied, Size: 1, Cycles: 2},
	0xC9: {Name: "CMP", Mode: Immediate, Size: 2, Cycles: 2},
	0xCA: {Name: "DEX", Mode: Implied, Size: 1, Cycles: 2},
	0xCB: {Name: "AXS", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0xCC: {Name: "CPY", Mode: Absolute, Size: 3, Cycles: 4},
	0xCD: {Name: "CMP", Mode: Absolute, Size: 3, Cycles: 4},
	0xCE: {Name: "DEC", Mode: Absolute, Size: 3, Cycles: 6},
	0xCF: {Name: "DCP", Mode: Absolute, Size: 3, Cycles: 6, Illegal: true},
	0xD0: {Name: "BNE", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0xD1: {Name: "CMP", Mode: PostIndexedIndirect, Size: 2, Cycles: 5, PageCycles: 1},
	0xD2: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0xD3: {Name: "DCP", Mode: PostIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0xD4: {Name: "NOP", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4, Illegal: true},
	0xD5: {Name: "CMP", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4},
	0xD6: {Name: "DEC", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6},
	0xD7: {Name: "DCP", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6, Illegal: true},
	0xD8: {Name: "CLD", Mode: Implied, Size: 1, Cycles: 2},
	0xD9: {Name: "CMP", Mode: IndexedY, Size: 3, Cycles: 4, PageCycles: 1},
	0xDA: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2, Illegal: true},
	0xDB: {Name: "DCP", Mode: IndexedY, Size: 3, Cycles: 7, Illegal: true},
	0xDC: {Name: "NOP", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	0xDD: {Name: "CMP", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1},
	0xDE: {Name: "DEC", Mode: IndexedX, Size: 3, Cycles: 7},
	0xDF: {Name: "DCP", Mode: IndexedX, Size: 3, Cycles: 7, Illegal: true},
	0xE0: {Name: "CPX", Mode: Immediate, Size: 2, Cycles: 2},
	0xE1: {Name: "SBC", Mode: PreIndexedIndirect, Size: 2, Cycles: 6},
	0xE2: {Name: "NOP", Mode: Immediate, Size: 0, Cycles: 2, Illegal: true},
	0xE3: {Name: "ISB", Mode: PreIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0xE4: {Name: "CPX", Mode: ZeroPage, Size: 2, Cycles: 3},
	0xE5: {Name: "SBC", Mode: ZeroPage, Size: 2, Cycles: 3},
	0xE6: {Name: "INC", Mode: ZeroPage, Size: 2, Cycles: 5},
	0xE7: {Name: "ISB", Mode: ZeroPage, Size: 2, Cycles: 5, Illegal: true},
	0xE8: {Name: "INX", Mode: Implied, Size: 1, Cycles: 2},
	0xE9: {Name: "SBC", Mode: Immediate, Size: 2, Cycles: 2},
	0xEA: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2},
	0xEB: {Name: "SBC", Mode: Immediate, Size: 2, Cycles: 2, Illegal: true},
	0xEC: {Name: "CPX", Mode: Absolute, Size: 3, Cycles: 4},
	0xED: {Name: "SBC", Mode: Absolute, Size: 3, Cycles: 4},
	0xEE: {Name: "INC", Mode: Absolute, Size: 3, Cycles: 6},
	0xEF: {Name: "ISB", Mode: Absolute, Size: 3, Cycles: 6, Illegal: true},
	0xF0: {Name: "BEQ", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0xF1: {Name: "SBC", Mode: PostIndexedIndirect, Size: 2, Cycles: 5, PageCycles: 1},
	0xF2: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2, Illegal: true},
	0xF3: {Name: "ISB", Mode: PostIndexedIndirect, Size: 2, Cycles: 8, Illegal: true},
	0xF4: {Name: "NOP", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4, Illegal: true},
	0xF5: {Name: "SBC", Mode: ZeroPageIndexedX, Size: 2, Cycles: 4},
	0xF6: {Name: "INC", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6},
	0xF7: {Name: "ISB", Mode: ZeroPageIndexedX, Size: 2, Cycles: 6, Illegal: true},
	0xF8: {Name: "SED", Mode: Implied, Size: 1, Cycles: 2},
	0xF9: {Name: "SBC", Mode: IndexedY, Size: 3, Cycles: 4, PageCycles: 1},
	0xFA: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2, Illegal: true},
	0xFB: {Name: "ISB", Mode: IndexedY, Size: 3, Cycles: 7, Illegal: true},
	0xFC: {Name: "NOP", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	0xFD: {Name: "SBC", Mode: IndexedX, Size: 3, Cycles: 4, PageCycles: 1},
	0xFE: {Name: "INC", Mode: IndexedX, Size: 3, Cycles: 7},
	0xFF: {Name: "ISB", Mode: IndexedX, Size: 3, Cycles: 7, Illegal: true},
}

// encodings is the inverse table: mnemonic and addressing mode to
// opcode. Built once from Instructions, official opcodes only.
var encodings = func() map[string]map[AddressingMode]byte {
	m := make(map[string]map[AddressingMode]byte)
	for op, inst := range Instructions {
		if inst.Illegal {
			continue
		}
		modes, ok := m[inst.Name]
		if !ok {
			modes = make(map[AddressingMode]byte)
			m[inst.Name] = modes
		}
		modes[inst.Mode] = byte(op)
	}
	return m
}()

// Encoding returns the instruction for a mnemonic and addressing mode
// combination, or false if the official set has no such encoding.
func Encoding(name string, mode AddressingMode) (Instruction, bool) {
	modes, ok := encodings[name]
	if !ok {
		return Instruction{}, false
	}
	op, ok := modes[mode]
	if !ok {
		return Instruction{}, false
	}
	return Instructions[op], true
}

// Opcode returns the opcode byte for a mnemonic and addressing mode.
func Opcode(name string, mode AddressingMode) (byte, bool) {
	modes, ok := encodings[name]
	if !ok {
		return 0, false
	}
	op, ok := modes[mode]
	return op, ok
}

// SupportedModes returns the addressing modes a mnemonic accepts.
func SupportedModes(name string) []AddressingMode {
	var modes []AddressingMode
	for mode := range encodings[name] {
		modes = append(modes, mode)
	}
	return modes
}

// IsMnemonic reports whether name is one of the official mnemonics.
func IsMnemonic(name string) bool {
	_, ok := encodings[name]
	return ok
}

// IsBranch reports whether name is a conditional branch mnemonic.
// Branches always use relative addressing, whatever the operand looks
// like.
func IsBranch(name string) bool {
	switch name {
	case "BCC", "BCS", "BEQ", "BNE", "BMI", "BPL", "BVC", "BVS":
		return true
	}
	return false
}
