package device

import "image/color"

// Color is a VIC-II colour index.
type Color uint8

const (
	Black Color = iota
	White
	Red
	Cyan
	Purple
	Green
	Blue
	Yellow
	Orange
	Brown
	LightRed
	DarkGrey
	Grey
	LightGreen
	LightBlue
	LightGrey
)

// Palette holds the RGB value of each colour.
var Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF},
	{0x68, 0x37, 0x2B, 0xFF},
	{0x70, 0xA4, 0xB2, 0xFF},
	{0x6F, 0x3D, 0x86, 0xFF},
	{0x58, 0x8D, 0x43, 0xFF},
	{0x35, 0x28, 0x79, 0xFF},
	{0xB8, 0xC7, 0x6F, 0xFF},
	{0x6F, 0x4F, 0x25, 0xFF},
	{0x43, 0x39, 0x00, 0xFF},
	{0x9A, 0x67, 0x59, 0xFF},
	{0x44, 0x44, 0x44, 0xFF},
	{0x6C, 0x6C, 0x6C, 0xFF},
	{0x9A, 0xD2, 0x84, 0xFF},
	{0x6C, 0x5E, 0xB5, 0xFF},
	{0x95, 0x95, 0x95, 0xFF},
}

func (c Color) RGBA() color.RGBA { return Palette[c&0x0F] }

var colorNames = [16]string{
	"black", "white", "red", "cyan", "purple", "green", "blue", "yellow",
	"orange", "brown", "light red", "dark grey", "grey", "light green", "light blue", "light grey",
}

func (c Color) String() string { return colorNames[c&0x0F] }
