package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDefaultsToRAM(t *testing.T) {
	bus := NewBus()
	bus.Write(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), bus.Read(0x1234))
}

func TestBusMapRegionRejectsInvertedRange(t *testing.T) {
	bus := NewBus()
	err := bus.MapRegion(0x2000, 0x1000, nil, nil)
	require.Error(t, err)

	var mapErr *BusMapError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, uint16(0x2000), mapErr.Start)
}

func TestBusRegionDispatch(t *testing.T) {
	bus := NewBus()
	var wrote uint16
	require.NoError(t, bus.MapRegion(0x4000, 0x4FFF,
		func(addr uint16) byte { return 0x55 },
		func(addr uint16, v byte) { wrote = addr },
	))

	assert.Equal(t, byte(0x55), bus.Read(0x4000))
	assert.Equal(t, byte(0x55), bus.Read(0x4FFF))

	bus.Write(0x4800, 0x01)
	assert.Equal(t, uint16(0x4800), wrote)

	// outside the region, plain RAM
	bus.Write(0x5000, 0x77)
	assert.Equal(t, byte(0x77), bus.Read(0x5000))
}

func TestBusPrefersRegionWithRequestedDirection(t *testing.T) {
	bus := NewBus()

	// read-only region registered first, write-only second, same range
	require.NoError(t, bus.MapRegion(0x6000, 0x6FFF, func(uint16) byte { return 0x11 }, nil))
	var writes int
	require.NoError(t, bus.MapRegion(0x6000, 0x6FFF, nil, func(uint16, byte) { writes++ }))

	assert.Equal(t, byte(0x11), bus.Read(0x6000))
	bus.Write(0x6000, 0xFF)
	assert.Equal(t, 1, writes)
}

func TestBusRegionWithoutWriteHandlerFallsThroughToRAM(t *testing.T) {
	bus := NewBus()
	require.NoError(t, bus.MapRegion(0x7000, 0x7FFF, func(addr uint16) byte { return bus.ram[addr] }, nil))

	bus.Write(0x7100, 0x42)
	assert.Equal(t, byte(0x42), bus.Read(0x7100))
}

func TestBusFirstRegionWins(t *testing.T) {
	bus := NewBus()
	require.NoError(t, bus.MapRegion(0x8000, 0x8FFF, func(uint16) byte { return 1 }, nil))
	require.NoError(t, bus.MapRegion(0x8000, 0x8FFF, func(uint16) byte { return 2 }, nil))

	assert.Equal(t, byte(1), bus.Read(0x8000))
}

func TestBusReadWordWraps(t *testing.T) {
	bus := NewBus()
	bus.Write(0xFFFF, 0x34)
	bus.Write(0x0000, 0x12)
	assert.Equal(t, uint16(0x1234), bus.ReadWord(0xFFFF))
}

func TestBusWriteResetVector(t *testing.T) {
	bus := NewBus()
	bus.WriteResetVector(0x8123)
	assert.Equal(t, byte(0x23), bus.Read(0xFFFC))
	assert.Equal(t, byte(0x81), bus.Read(0xFFFD))
	assert.Equal(t, uint16(0x8123), bus.ReadWord(0xFFFC))
}

func TestBusWriteLog(t *testing.T) {
	bus := NewBus()
	bus.EnableWriteLogging(0x0200, 0x02FF)

	bus.Write(0x0200, 0x01)
	bus.Write(0x0300, 0x02) // outside the range
	bus.Write(0x02FF, 0x03)

	log := bus.WriteLog()
	require.Len(t, log, 2)
	assert.Equal(t, WriteLogEntry{Addr: 0x0200, Value: 0x01}, log[0])
	assert.Equal(t, WriteLogEntry{Addr: 0x02FF, Value: 0x03}, log[1])

	bus.DisableWriteLogging()
	bus.Write(0x0210, 0x04)
	assert.Len(t, bus.WriteLog(), 2)

	bus.ClearWriteLog()
	assert.Empty(t, bus.WriteLog())
}

func TestBusWriteLogRecordsInstructionPC(t *testing.T) {
	// STA $0200 from a program records the instruction's own address
	bus := NewBus()
	bus.Load(0x8000, []byte{0xA9, 0x42, 0x8D, 0x00, 0x02})
	bus.WriteResetVector(0x8000)
	cpu := NewCPU(bus)
	cpu.Reset()
	bus.EnableWriteLogging(0x0200, 0x02FF)

	cpu.Clock()
	cpu.Clock()

	log := bus.WriteLog()
	require.Len(t, log, 1)
	assert.Equal(t, uint16(0x0200), log[0].Addr)
	assert.Equal(t, byte(0x42), log[0].Value)
	assert.Equal(t, uint16(0x8002), log[0].PC)
}

func TestBusRAMMirrorViaPPURegion(t *testing.T) {
	bus := NewBus()
	bus.AttachPPU(NewPPU())

	bus.Write(0x0001, 0xAA)
	assert.Equal(t, byte(0xAA), bus.Read(0x0801))
	assert.Equal(t, byte(0xAA), bus.Read(0x1001))
	assert.Equal(t, byte(0xAA), bus.Read(0x1801))
}
