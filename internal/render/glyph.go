package render

import (
	"image/color"

	"eight-way-tiles/internal/device"
)

// Colours of the power-on text screen.
const (
	TextColor       = device.LightBlue
	BackgroundColor = device.Blue
)

// Glyph returns the rune closest to C64 screen code code and whether the
// code is in the reversed half of the character set.
func Glyph(code byte) (r rune, reverse bool) {
	reverse = code&0x80 != 0
	code &= 0x7F
	switch {
	case code == 0x00:
		return '@', reverse
	case code <= 0x1A:
		return rune('A' + code - 1), reverse
	case code < 0x40:
		return lowGlyphs[code-0x1B], reverse
	default:
		return graphicGlyphs[code-0x40], reverse
	}
}

// lowGlyphs covers 0x1B..0x3F; from 0x20 on the codes match ASCII.
var lowGlyphs = [...]rune{
	'[', '£', ']', '↑', '←',
	' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
}

// graphicGlyphs covers the PETSCII graphics at 0x40..0x7F.
var graphicGlyphs = [64]rune{
	'─', '♠', '│', '─', '─', '─', '─', '│', '│', '╮', '╰', '╯', '└', '╲', '╱', '┌',
	'┐', '●', '─', '♥', '│', '╭', '╳', '○', '♣', '│', '♦', '┼', '▒', '│', 'π', '◥',
	' ', '▌', '▄', '▔', '▁', '▏', '▒', '▕', '▒', '◤', '▕', '├', '▗', '└', '┐', '▂',
	'┌', '┴', '┬', '┤', '▎', '▍', '▕', '▔', '▀', '▃', '✓', '▖', '▝', '┘', '▘', '▚',
}

// CodeColors returns the foreground and background colour used for code
// when tinted: the low nibble picks the background and the high nibble the
// foreground, so every code differs from its neighbours.
func CodeColors(code byte) (fg, bg device.Color) {
	return device.Color(code >> 4), device.Color(code & 0x0F)
}

// TextCell returns the terminal cell for a screen code.
func TextCell(code byte, tinted bool) Cell {
	r, reverse := Glyph(code)
	fg, bg := TextColor, BackgroundColor
	if tinted {
		fg, bg = CodeColors(code)
		if fg == bg {
			fg = contrast(bg)
		}
	}
	if reverse && !tinted {
		fg, bg = bg, fg
	}
	return colorCell(r, fg.RGBA(), bg.RGBA())
}

func colorCell(r rune, fg, bg color.RGBA) Cell {
	return Cell{Ch: r, FgR: fg.R, FgG: fg.G, FgB: fg.B, BgR: bg.R, BgG: bg.G, BgB: bg.B}
}

// contrast picks black or white, whichever stands out against c.
func contrast(c device.Color) device.Color {
	rgb := c.RGBA()
	if int(rgb.R)*299+int(rgb.G)*587+int(rgb.B)*114 > 128000 {
		return device.Black
	}
	return device.White
}
