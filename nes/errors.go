package nes

import "fmt"

// BusMapError reports an attempt to register a region whose end
// precedes its start.
type BusMapError struct {
	Start, End uint16
}

func (e *BusMapError) Error() string {
	return fmt.Sprintf("nes: invalid bus region $%04X-$%04X: end precedes start", e.Start, e.End)
}

// IllegalOpcodeError is the context captured when the CPU fetches an
// opcode outside the official set. The CPU halts after recording it;
// all register and memory state stays inspectable.
type IllegalOpcodeError struct {
	Opcode byte
	PC     uint16

	A, X, Y, SP byte
	Status      Status

	// Memory holds the bytes at PC-4..PC+4, Stack the first bytes at
	// and above the stack pointer.
	Memory [9]byte
	Stack  [6]byte
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("nes: illegal opcode $%02X at $%04X", e.Opcode, e.PC)
}
