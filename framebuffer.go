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

// Package framebuffer implements a minimal software rasterizer.
//
// Polygons are drawn into a [Buffer] of packed 24-bit colors: the outline
// uses Bresenham lines, the interior an even-odd scan-line fill.
// The bmp sub-package encodes a finished buffer as an uncompressed bitmap.
package framebuffer

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Buffer is a rectangular grid of packed colors, stored in row-major order
// with the origin in the top-left corner.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	width  int
	height int
	pix    []DrawColor // len = width*height, index y*width+x

	background DrawColor // used by Clear
	current    DrawColor // used by SetPoint
}

// New allocates a width×height buffer. All pixels and the background are
// zero, the draw color is opaque white (all bits set).
// New panics if width or height is not positive.
func New(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("framebuffer: invalid size %dx%d", width, height))
	}
	return &Buffer{
		width:   width,
		height:  height,
		pix:     make([]DrawColor, width*height),
		current: 0xFFFFFFFF,
	}
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the device space rectangle covered by the buffer.
func (b *Buffer) Bounds() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(b.width),
		URy: float64(b.height),
	}
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Pix returns the pixel slice of the buffer. Pixel (x, y) is at index
// y*Width()+x. The slice aliases the buffer memory.
func (b *Buffer) Pix() []DrawColor {
	return b.pix
}

// Clear sets every pixel to the background color.
func (b *Buffer) Clear() {
	for i := range b.pix {
		b.pix[i] = b.background
	}
}

// SetPoint sets pixel (x, y) to the current draw color.
// Coordinates outside the buffer are ignored.
func (b *Buffer) SetPoint(x, y int) {
	if !b.InBounds(x, y) {
		return
	}
	b.pix[y*b.width+x] = b.current
}

// Color returns the value stored at pixel (x, y), or 0 if (x, y) lies
// outside the buffer.
func (b *Buffer) Color(x, y int) DrawColor {
	if !b.InBounds(x, y) {
		return 0
	}
	return b.pix[y*b.width+x]
}

// SetBackground sets the color used by the next call to Clear.
func (b *Buffer) SetBackground(c DrawColor) {
	b.background = c
}

// Background returns the color used by Clear.
func (b *Buffer) Background() DrawColor {
	return b.background
}

// SetDrawColor sets the color used by subsequent calls to SetPoint.
// Pixels which are already set keep their color.
func (b *Buffer) SetDrawColor(c DrawColor) {
	b.current = c
}

// CurrentColor returns the color used by SetPoint.
func (b *Buffer) CurrentColor() DrawColor {
	return b.current
}
