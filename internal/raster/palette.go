// Package raster turns dial draw commands into pixels, terminal cells or
// vector markup.
package raster

import (
	"fmt"
	"image/color"

	"dial-sweep.klederson.com/internal/dial"
)

var palette = map[dial.Color]color.RGBA{
	dial.ColorGray:    {R: 0x88, G: 0x88, B: 0x88, A: 0xff},
	dial.ColorGreen:   {R: 0x00, G: 0xcc, B: 0x33, A: 0xff},
	dial.ColorRed:     {R: 0xff, G: 0x33, B: 0x00, A: 0xff},
	dial.ColorBlue:    {R: 0x1e, G: 0x6f, B: 0xff, A: 0xff},
	dial.ColorBlack:   {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	dial.ColorOutline: {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
}

var background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// RGBA resolves a colour name; unknown names render black.
func RGBA(c dial.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[dial.ColorBlack]
}

// Hex returns the #rrggbb form of a colour name.
func Hex(c dial.Color) string {
	rgba := RGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
