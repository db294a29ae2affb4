package nes

import "fmt"

// Mapper rewires the bus address space for a cartridge. Map installs
// whatever regions the board needs; it may be called once per bus.
type Mapper interface {
	Map(b *Bus) error
}

// MapperFor returns the mapper implementation for a cartridge, keyed
// by its iNES mapper number.
func MapperFor(cart *Cartridge) (Mapper, error) {
	switch cart.MapperID {
	case 0:
		return NewNROM(cart.PRG), nil
	case 2:
		return NewUNROM(cart.PRG), nil
	}
	return nil, fmt.Errorf("nes: unsupported mapper %d", cart.MapperID)
}

// NROM is mapper 0: 16 or 32 KiB of PRG at $8000-$FFFF and 8 KiB of
// PRG RAM at $6000-$7FFF. A 16 KiB image is mirrored into the upper
// bank. Writes into the ROM range are swallowed.
type NROM struct {
	prg    []byte
	prgRAM [0x2000]byte
}

// NewNROM builds an NROM board around the given PRG image.
func NewNROM(prg []byte) *NROM {
	return &NROM{prg: prg}
}

func (m *NROM) Map(b *Bus) error {
	if err := b.MapRegion(0x6000, 0x7FFF,
		func(addr uint16) byte { return m.prgRAM[addr-0x6000] },
		func(addr uint16, v byte) { m.prgRAM[addr-0x6000] = v },
	); err != nil {
		return err
	}

	read := func(addr uint16) byte {
		offset := int(addr-0x8000) % len(m.prg)
		return m.prg[offset]
	}
	if len(m.prg) == 0 {
		read = func(uint16) byte { return 0 }
	}

	// ROM swallows writes; the write handler keeps them out of the
	// backing RAM.
	return b.MapRegion(0x8000, 0xFFFF, read, func(uint16, byte) {})
}

// UNROM is mapper 2: PRG split into 16 KiB banks, a switchable bank at
// $8000-$BFFF and the last bank fixed at $C000-$FFFF. Any write into
// $8000-$FFFF selects the switchable bank from the low bits of the
// value, modulo the bank count.
type UNROM struct {
	prg     []byte
	banks   int
	current int

	prgRAM [0x2000]byte
}

// NewUNROM builds a UNROM board around the given PRG image.
func NewUNROM(prg []byte) *UNROM {
	banks := len(prg) / prgBank
	if banks < 1 {
		banks = 1
	}
	return &UNROM{prg: prg, banks: banks}
}

// Bank returns the bank currently mapped at $8000-$BFFF.
func (m *UNROM) Bank() int {
	return m.current
}

func (m *UNROM) read(bank int, offset uint16) byte {
	pos := bank*prgBank + int(offset)
	if pos < 0 || pos >= len(m.prg) {
		return 0xFF
	}
	return m.prg[pos]
}

func (m *UNROM) Map(b *Bus) error {
	if err := b.MapRegion(0x6000, 0x7FFF,
		func(addr uint16) byte { return m.prgRAM[addr-0x6000] },
		func(addr uint16, v byte) { m.prgRAM[addr-0x6000] = v },
	); err != nil {
		return err
	}
	if err := b.MapRegion(0x8000, 0xBFFF,
		func(addr uint16) byte { return m.read(m.current, addr-0x8000) },
		nil,
	); err != nil {
		return err
	}
	if err := b.MapRegion(0xC000, 0xFFFF,
		func(addr uint16) byte { return m.read(m.banks-1, addr-0xC000) },
		nil,
	); err != nil {
		return err
	}

	return b.MapRegion(0x8000, 0xFFFF, nil, func(_ uint16, v byte) {
		bank := int(v) % m.banks
		if bank == m.current {
			return
		}
		m.current = bank
		if b.mapperChanged != nil {
			b.mapperChanged()
		}
	})
}
