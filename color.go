// seehuhn.de/go/framebuffer - polygon rasterization into bitmap images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package framebuffer

import (
	"fmt"
	"image/color"
)

// DrawColor is a packed 24-bit color in the form 0x00RRGGBB.
// This is the format stored in a [Buffer] and written by the 24-bit
// bitmap encoder. Bits 24-31 are carried along but never interpreted.
type DrawColor uint32

// RGB24 packs three 8-bit channels into a DrawColor.
func RGB24(r, g, b uint8) DrawColor {
	return DrawColor(r)<<16 | DrawColor(g)<<8 | DrawColor(b)
}

// RGB returns the red, green and blue channels.
func (c DrawColor) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String formats the color as #rrggbb.
func (c DrawColor) String() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Some frequently used colors.
const (
	Black DrawColor = 0x000000
	White DrawColor = 0xFFFFFF
)

// PixelRGBA is a packed 32-bit color in the form 0xRRGGBBAA.
//
// This is the layout used by the alternate RGBA encoder only. A value
// stored in a [Buffer] becomes a PixelRGBA through an explicit conversion,
// which reinterprets the bits rather than converting the color:
// the DrawColor 0x00FF0000 (red) reads as green with zero alpha.
type PixelRGBA uint32

// RGBA returns the four channels.
func (p PixelRGBA) RGBA() (r, g, b, a uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// NRGBA returns the color as a non-premultiplied [color.NRGBA].
func (p PixelRGBA) NRGBA() color.NRGBA {
	r, g, b, a := p.RGBA()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
