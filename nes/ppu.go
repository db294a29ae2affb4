package nes

import "image/color"

// Screen geometry and frame timing. 341 dots per scanline, 262
// scanlines per frame; 0-239 are visible, 240 idles, 241-260 is
// VBlank, 261 is the pre-render line.
const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262
	vblankScanline    = 241
	prerenderScanline = 261

	// FrameWidth and FrameHeight are the visible picture dimensions.
	FrameWidth  = 256
	FrameHeight = 240
)

// PPUCTRL bits.
const (
	ctrlIncrement32  = 0x04
	ctrlSpriteTable  = 0x08
	ctrlPatternTable = 0x10
	ctrlEnableNMI    = 0x80
)

// PPUMASK bits.
const (
	maskShowBackground = 0x08
	maskShowSprites    = 0x10
)

// PPUSTATUS bits.
const (
	statusOverflow   = 0x20
	statusSpriteZero = 0x40
	statusVBlank     = 0x80
)

// Sprite is one decoded OAM entry.
type Sprite struct {
	X, Y    byte
	Tile    byte
	Palette byte
	FlipH   bool
	FlipV   bool
	Behind  bool
}

// PPU models the picture processor at the granularity the CPU can
// observe: the register file at $2000-$3FFF, VRAM, OAM and palette
// RAM, dot/scanline/frame timing with the VBlank NMI edge, and the
// OAM DMA stall debt. Frames are rendered on demand rather than dot by
// dot.
type PPU struct {
	ctrl   byte
	mask   byte
	status byte

	oamAddr byte
	oam     [256]byte

	vram    [0x800]byte
	palette [32]byte
	chr     []byte

	latch      bool
	tempAddr   uint16
	vramAddr   uint16
	readBuffer byte

	scrollX, scrollY byte

	// Dot and Scanline track the beam position; Frame counts finished
	// frames since reset.
	Dot      int
	Scanline int
	Frame    uint64

	// InVBlank mirrors the PPUSTATUS VBlank bit for drivers that poll
	// between steps.
	InVBlank bool

	nmi      func()
	nmiFired bool

	dmaStall int
}

// NewPPU returns a powered-on PPU with empty VRAM and no CHR.
func NewPPU() *PPU {
	return &PPU{}
}

// Reset returns the PPU to its power-on state. CHR stays attached.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.oam = [256]byte{}
	p.vram = [0x800]byte{}
	p.palette = [32]byte{}
	p.latch = false
	p.tempAddr, p.vramAddr = 0, 0
	p.readBuffer = 0
	p.scrollX, p.scrollY = 0, 0
	p.Dot, p.Scanline = 0, 0
	p.Frame = 0
	p.InVBlank = false
	p.nmiFired = false
	p.dmaStall = 0
}

// SetNMICallback installs the function the PPU raises once per VBlank
// when NMIs are enabled. The driver points it at the CPU's NMI line.
func (p *PPU) SetNMICallback(fn func()) {
	p.nmi = fn
}

// SetCHR attaches the cartridge pattern data.
func (p *PPU) SetCHR(chr []byte) {
	p.chr = chr
}

// DMAStall returns the cycle debt outstanding from OAM DMA.
func (p *PPU) DMAStall() int {
	return p.dmaStall
}

func (p *PPU) increment() uint16 {
	if p.ctrl&ctrlIncrement32 != 0 {
		return 32
	}
	return 1
}

// paletteIndex folds a palette address onto the 32-byte palette RAM.
// Every fourth entry mirrors the universal background color.
func paletteIndex(addr uint16) int {
	idx := int(addr) & 0x1F
	if idx&0x03 == 0 {
		return 0
	}
	return idx
}

func (p *PPU) readPalette(addr uint16) byte {
	return p.palette[paletteIndex(addr)]
}

func (p *PPU) writePalette(addr uint16, v byte) {
	p.palette[paletteIndex(addr)] = v
}

// ReadRegister reads one of the eight registers, mirrored every eight
// bytes across $2000-$3FFF.
func (p *PPU) ReadRegister(addr uint16) byte {
	switch addr & 0x07 {
	case 0x02: // PPUSTATUS
		v := p.status
		p.status &^= statusVBlank
		p.latch = false
		p.nmiFired = false
		return v

	case 0x04: // OAMDATA
		return p.oam[p.oamAddr]

	case 0x07: // PPUDATA
		addr := p.vramAddr & 0x3FFF
		var v byte
		if addr >= 0x3F00 {
			// palette reads bypass the buffer
			v = p.readPalette(addr)
		} else {
			v = p.readBuffer
		}
		p.vramAddr = (p.vramAddr + p.increment()) & 0x3FFF
		if p.vramAddr < 0x3F00 {
			p.readBuffer = p.vram[p.vramAddr&0x07FF]
		}
		return v

	case 0x00:
		return p.ctrl
	case 0x01:
		return p.mask
	case 0x03:
		return p.oamAddr
	}
	return 0
}

// WriteRegister writes one of the eight registers, mirrored every
// eight bytes across $2000-$3FFF. Writes are total; nothing errors.
func (p *PPU) WriteRegister(addr uint16, v byte) {
	switch addr & 0x07 {
	case 0x00: // PPUCTRL
		p.ctrl = v
	case 0x01: // PPUMASK
		p.mask = v
	case 0x02: // PPUSTATUS is read-only
	case 0x03: // OAMADDR
		p.oamAddr = v
	case 0x04: // OAMDATA
		p.oam[p.oamAddr] = v
		p.oamAddr++
	case 0x05: // PPUSCROLL, X then Y
		if !p.latch {
			p.scrollX = v
		} else {
			p.scrollY = v
		}
		p.latch = !p.latch
	case 0x06: // PPUADDR, high then low
		if !p.latch {
			p.tempAddr = uint16(v) << 8
		} else {
			p.tempAddr = p.tempAddr&0xFF00 | uint16(v)
			p.vramAddr = p.tempAddr & 0x3FFF
			if p.vramAddr < 0x3F00 {
				p.readBuffer = p.vram[p.vramAddr&0x07FF]
			}
		}
		p.latch = !p.latch
	case 0x07: // PPUDATA
		addr := p.vramAddr & 0x3FFF
		if addr >= 0x3F00 {
			p.writePalette(addr, v)
		} else {
			p.vram[addr&0x07FF] = v
		}
		p.vramAddr = (p.vramAddr + p.increment()) & 0x3FFF
	}
}

// OAMDMA copies the 256-byte page from CPU address space into OAM,
// starting at the current OAMADDR, and books the 513-cycle stall (514
// when triggered on an odd CPU cycle) against the DMA debt counter.
func (p *PPU) OAMDMA(b *Bus, page byte) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		p.oam[p.oamAddr+byte(i)] = b.Read(base + uint16(i))
	}

	stall := 513
	if b.cpu != nil && b.cpu.Cycles&1 == 1 {
		stall++
	}
	p.dmaStall += stall
}

// ReadOAM returns one OAM byte; for drivers and tests.
func (p *PPU) ReadOAM(i byte) byte {
	return p.oam[i]
}

// Step advances the PPU by the given number of dots. The CPU calls it
// with three dots per cycle consumed, keeping the two in lockstep.
// VBlank starts entering scanline 241, raising the NMI callback at
// most once per frame, and ends entering the pre-render line.
func (p *PPU) Step(clocks int) {
	if clocks <= 0 {
		return
	}

	if p.dmaStall > 0 {
		p.dmaStall -= clocks / 3
		if p.dmaStall < 0 {
			p.dmaStall = 0
		}
	}

	p.Dot += clocks
	for p.Dot >= dotsPerScanline {
		p.Dot -= dotsPerScanline
		p.Scanline++

		switch {
		case p.Scanline == vblankScanline:
			p.InVBlank = true
			p.status |= statusVBlank
			if p.ctrl&ctrlEnableNMI != 0 && p.nmi != nil && !p.nmiFired {
				p.nmi()
				p.nmiFired = true
			}

		case p.Scanline == prerenderScanline:
			p.InVBlank = false
			p.status &^= statusVBlank | statusSpriteZero | statusOverflow
			p.nmiFired = false

		case p.Scanline >= scanlinesPerFrame:
			p.Scanline = 0
			p.Frame++
		}
	}
}

// tilePixels decodes the two bit planes of a pattern-table tile into
// 8x8 two-bit pixel values.
func (p *PPU) tilePixels(tile int) [8][8]byte {
	var pixels [8][8]byte
	base := tile * 16
	if base < 0 || base+16 > len(p.chr) {
		return pixels
	}
	for y := 0; y < 8; y++ {
		lo := p.chr[base+y]
		hi := p.chr[base+8+y]
		for x := 0; x < 8; x++ {
			shift := 7 - x
			pixels[y][x] = (hi>>shift&1)<<1 | lo>>shift&1
		}
	}
	return pixels
}

// backgroundTable returns the tile index base selected by PPUCTRL for
// the background, in tiles.
func (p *PPU) backgroundTable() int {
	if p.ctrl&ctrlPatternTable != 0 {
		return 256
	}
	return 0
}

func (p *PPU) spriteTable() int {
	if p.ctrl&ctrlSpriteTable != 0 {
		return 256
	}
	return 0
}

// attributeSelect returns the two palette-select bits for the tile at
// (tx, ty): one attribute byte covers a 32x32-pixel cell, two bits per
// 16x16 quadrant.
func (p *PPU) attributeSelect(base, tx, ty int) byte {
	attr := p.vram[(base+0x3C0+ty/4*8+tx/4)&0x07FF]
	shift := 0
	if tx%4 >= 2 {
		shift += 2
	}
	if ty%4 >= 2 {
		shift += 4
	}
	return attr >> shift & 0x03
}

// TileMap summarizes a nametable as a 30x32 grid, one representative
// two-bit value per tile (the tile's mean pixel value). Debug surface
// for drivers that want a cheap overview instead of a full frame.
func (p *PPU) TileMap(table int) [30][32]byte {
	var m [30][32]byte
	base := (table & 1) * 0x400
	pattern := p.backgroundTable()
	for ty := 0; ty < 30; ty++ {
		for tx := 0; tx < 32; tx++ {
			tile := int(p.vram[(base+ty*32+tx)&0x07FF])
			pixels := p.tilePixels(tile + pattern)
			total := 0
			for _, row := range pixels {
				for _, v := range row {
					total += int(v)
				}
			}
			m[ty][tx] = byte(total/64) & 0x03
		}
	}
	return m
}

// ColorGrid renders a nametable through the attribute table and
// palette RAM into a 240x256 grid of master-palette colors.
func (p *PPU) ColorGrid(table int) [][]color.RGBA {
	grid := make([][]color.RGBA, FrameHeight)
	for y := range grid {
		grid[y] = make([]color.RGBA, FrameWidth)
	}
	base := (table & 1) * 0x400
	pattern := p.backgroundTable()
	for ty := 0; ty < 30; ty++ {
		for tx := 0; tx < 32; tx++ {
			tile := int(p.vram[(base+ty*32+tx)&0x07FF])
			pixels := p.tilePixels(tile + pattern)
			palBase := uint16(p.attributeSelect(base, tx, ty)) * 4
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					entry := p.readPalette(palBase + uint16(pixels[y][x]))
					grid[ty*8+y][tx*8+x] = SystemPalette[entry&0x3F]
				}
			}
		}
	}
	return grid
}

// Sprites decodes the 64 OAM entries.
func (p *PPU) Sprites() []Sprite {
	sprites := make([]Sprite, 64)
	for i := range sprites {
		y, tile, attr, x := p.oam[i*4], p.oam[i*4+1], p.oam[i*4+2], p.oam[i*4+3]
		sprites[i] = Sprite{
			X:       x,
			Y:       y,
			Tile:    tile,
			Palette: attr & 0x03,
			Behind:  attr&0x20 != 0,
			FlipH:   attr&0x40 != 0,
			FlipV:   attr&0x80 != 0,
		}
	}
	return sprites
}

// RenderFrame composes the background and sprite layers into a
// FrameWidth x FrameHeight image, honoring the PPUMASK show bits,
// sprite flips and the behind-background priority flag. Rendering is
// decoupled from Step; drivers call it when a frame is due.
func (p *PPU) RenderFrame() []color.RGBA {
	frame := make([]color.RGBA, FrameWidth*FrameHeight)
	backdrop := SystemPalette[p.palette[0]&0x3F]
	for i := range frame {
		frame[i] = backdrop
	}

	// background pixel values, kept for sprite priority
	var bg [FrameWidth * FrameHeight]byte

	if p.mask&maskShowBackground != 0 {
		pattern := p.backgroundTable()
		for ty := 0; ty < 30; ty++ {
			for tx := 0; tx < 32; tx++ {
				tile := int(p.vram[(ty*32+tx)&0x07FF])
				pixels := p.tilePixels(tile + pattern)
				palBase := uint16(p.attributeSelect(0, tx, ty)) * 4
				for y := 0; y < 8; y++ {
					for x := 0; x < 8; x++ {
						pv := pixels[y][x]
						if pv == 0 {
							continue
						}
						pos := (ty*8+y)*FrameWidth + tx*8 + x
						bg[pos] = pv
						frame[pos] = SystemPalette[p.readPalette(palBase+uint16(pv))&0x3F]
					}
				}
			}
		}
	}

	if p.mask&maskShowSprites != 0 {
		pattern := p.spriteTable()
		sprites := p.Sprites()
		// lower OAM indices win; draw back to front
		for i := len(sprites) - 1; i >= 0; i-- {
			s := sprites[i]
			if s.Y >= 0xEF {
				continue
			}
			pixels := p.tilePixels(int(s.Tile) + pattern)
			palBase := 0x10 + uint16(s.Palette)*4
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					sx, sy := x, y
					if s.FlipH {
						sx = 7 - x
					}
					if s.FlipV {
						sy = 7 - y
					}
					pv := pixels[sy][sx]
					if pv == 0 {
						continue
					}
					px := int(s.X) + x
					py := int(s.Y) + 1 + y
					if px >= FrameWidth || py >= FrameHeight {
						continue
					}
					pos := py*FrameWidth + px
					if s.Behind && bg[pos] != 0 {
						continue
					}
					frame[pos] = SystemPalette[p.readPalette(palBase+uint16(pv))&0x3F]
				}
			}
		}
	}

	return frame
}
