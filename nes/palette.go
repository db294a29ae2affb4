package nes

import "image/color"

// SystemPalette is the fixed 64-entry master palette. Palette RAM
// holds indices into it.
var SystemPalette = [64]color.RGBA{
	{0x7C, 0x7C, 0x7C, 0xFF}, {0x00, 0x00, 0xFC, 0xFF}, {0x00, 0x00, 0xBC, 0xFF}, {0x44, 0x28, 0xBC, 0xFF},
	{0x94, 0x00, 0x84, 0xFF}, {0xA8, 0x00, 0x20, 0xFF}, {0xA8, 0x10, 0x00, 0xFF}, {0x5C, 0x2C, 0x00, 0xFF},
	{0x10, 0x40, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF}, {0x06, 0x42, 0x14, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
	{0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
	{0xBC, 0xBC, 0xBC, 0xFF}, {0x00, 0x74, 0xFF, 0xFF}, {0x00, 0x54, 0xFF, 0xFF}, {0x68, 0x58, 0xFF, 0xFF},
	{0xD8, 0x00, 0xCC, 0xFF}, {0xE4, 0x00, 0x58, 0xFF}, {0xF0, 0x58, 0x20, 0xFF}, {0xBC, 0x7C, 0x00, 0xFF},
	{0x00, 0x78, 0x00, 0xFF}, {0x00, 0x68, 0x00, 0xFF}, {0x00, 0x58, 0x00, 0xFF}, {0x00, 0x40, 0x58, 0xFF},
	{0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF}, {0x3C, 0xB8, 0xFF, 0xFF}, {0x5C, 0xB8, 0xFF, 0xFF}, {0xA8, 0xB8, 0xFF, 0xFF},
	{0xF8, 0xB8, 0xFF, 0xFF}, {0xFF, 0xC8, 0xB8, 0xFF}, {0xFF, 0xD8, 0xA8, 0xFF}, {0xFF, 0xEC, 0xB0, 0xFF},
	{0xB8, 0xF8, 0xB8, 0xFF}, {0xB8, 0xF8, 0xD8, 0xFF}, {0xB8, 0xF8, 0xF8, 0xFF}, {0xB8, 0xE8, 0xF8, 0xFF},
	{0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
	{0xFF, 0xFC, 0xFC, 0xFF}, {0xA4, 0xE4, 0xFC, 0xFF}, {0xC8, 0xD8, 0xFF, 0xFF}, {0xE8, 0xD8, 0xFF, 0xFF},
	{0xFC, 0xE4, 0xFC, 0xFF}, {0xFF, 0xF0, 0xE0, 0xFF}, {0xFF, 0xF8, 0xD8, 0xFF}, {0xFF, 0xF8, 0xC8, 0xFF},
	{0xD8, 0xF8, 0xD8, 0xFF}, {0xD8, 0xF8, 0xE8, 0xFF}, {0xD8, 0xF8, 0xF8, 0xFF}, {0xD8, 0xEE, 0xF8, 0xFF},
	{0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
}
