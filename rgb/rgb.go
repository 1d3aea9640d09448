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

// Package rgb provides arithmetic on 8-bit RGB color triples.
//
// All operations saturate: results are clamped to the range 0-255
// instead of wrapping around.
package rgb

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/framebuffer"
)

// Color is a color given by its red, green and blue channels.
type Color struct {
	R, G, B uint8
}

// New returns the color with the given channels.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromHex unpacks a color from the form 0xRRGGBB.
// Bits above bit 23 are ignored.
func FromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Hex packs the color into the form 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// DrawColor returns the color in the packed form used by frame buffers.
func (c Color) DrawColor() framebuffer.DrawColor {
	return framebuffer.RGB24(c.R, c.G, c.B)
}

// Add returns the channel-wise sum of c and other, clamped to 255.
func (c Color) Add(other Color) Color {
	return Color{
		R: addSat(c.R, other.R),
		G: addSat(c.G, other.G),
		B: addSat(c.B, other.B),
	}
}

// Sub returns the channel-wise difference of c and other, clamped to 0.
func (c Color) Sub(other Color) Color {
	return Color{
		R: subSat(c.R, other.R),
		G: subSat(c.G, other.G),
		B: subSat(c.B, other.B),
	}
}

// Scale multiplies every channel by factor. Results are clamped to 0-255
// and the fractional part is discarded.
func (c Color) Scale(factor float32) Color {
	return Color{
		R: scaleSat(c.R, factor),
		G: scaleSat(c.G, factor),
		B: scaleSat(c.B, factor),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("Color{r: %d, g: %d, b: %d}", c.R, c.G, c.B)
}

// Parse reads a color written as six hexadecimal digits, optionally
// prefixed by "#" or "0x".
func Parse(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if hex == s {
		hex = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("rgb: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("rgb: invalid color %q: %w", s, err)
	}
	return FromHex(uint32(v)), nil
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func subSat(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

func scaleSat(v uint8, factor float32) uint8 {
	x := float32(v) * factor
	if x >= 255 {
		return 255
	}
	if x <= 0 || x != x { // NaN counts as zero
		return 0
	}
	return uint8(x)
}
