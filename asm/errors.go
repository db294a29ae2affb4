package asm

import (
	"fmt"

	"famicore/nes"
)

// Error is an assembly diagnostic tied to a source position. Column is
// zero when only the line is known.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func errorf(line, column int, format string, args ...interface{}) *Error {
	return &Error{Line: line, Column: column, Msg: fmt.Sprintf(format, args...)}
}

// AddressingError reports a mnemonic used with an addressing mode the
// instruction set has no encoding for.
type AddressingError struct {
	Line     int
	Mnemonic string
	Mode     nes.AddressingMode
}

func (e *AddressingError) Error() string {
	supported := nes.SupportedModes(e.Mnemonic)
	if len(supported) == 0 {
		return fmt.Sprintf("line %d: unknown instruction %s", e.Line, e.Mnemonic)
	}
	return fmt.Sprintf("line %d: %s does not support %s addressing (supported: %v)",
		e.Line, e.Mnemonic, e.Mode, supported)
}

// BranchRangeError reports a branch whose target lies outside the
// reach of a signed 8-bit offset.
type BranchRangeError struct {
	Line   int
	Target uint16
	Offset int
}

func (e *BranchRangeError) Error() string {
	return fmt.Sprintf("line %d: branch target $%04X out of range (offset %d, limit -128..127)",
		e.Line, e.Target, e.Offset)
}

// ErrorList aggregates the diagnostics of one phase. It reports the
// first error; the rest stay accessible for tooling.
type ErrorList []error

func (l ErrorList) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	if len(l) == 1 {
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// first returns the list itself when it holds anything, nil otherwise.
func (l ErrorList) first() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
