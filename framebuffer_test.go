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
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestNew(t *testing.T) {
	b := New(10, 20)
	if b.Width() != 10 || b.Height() != 20 {
		t.Fatalf("size = %dx%d, want 10x20", b.Width(), b.Height())
	}
	if len(b.Pix()) != 200 {
		t.Errorf("len(Pix()) = %d, want 200", len(b.Pix()))
	}
	for i, c := range b.Pix() {
		if c != 0 {
			t.Fatalf("pixel %d = %v, want 0", i, c)
		}
	}
	if b.Background() != 0 {
		t.Errorf("background = %#x, want 0", uint32(b.Background()))
	}
	if b.CurrentColor() != 0xFFFFFFFF {
		t.Errorf("draw color = %#x, want 0xffffffff", uint32(b.CurrentColor()))
	}

	want := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20}
	if got := b.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, 0}, {-3, 5}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d, %d) did not panic", size[0], size[1])
				}
			}()
			New(size[0], size[1])
		}()
	}
}

func TestClear(t *testing.T) {
	b := New(10, 10)
	b.SetBackground(0x12345678)
	b.Clear()
	for i, c := range b.Pix() {
		if c != 0x12345678 {
			t.Fatalf("pixel %d = %#x after Clear, want 0x12345678", i, uint32(c))
		}
	}
}

func TestSetPoint(t *testing.T) {
	b := New(10, 10)
	b.SetDrawColor(0xABCDEF)
	b.SetPoint(5, 5)
	if got := b.Color(5, 5); got != 0xABCDEF {
		t.Errorf("Color(5, 5) = %#x, want 0xabcdef", uint32(got))
	}
	if got := b.Color(0, 0); got != 0 {
		t.Errorf("Color(0, 0) = %#x, want 0", uint32(got))
	}

	// corners
	for _, p := range [][2]int{{0, 0}, {9, 0}, {0, 9}, {9, 9}} {
		b.SetPoint(p[0], p[1])
		if got := b.Color(p[0], p[1]); got != 0xABCDEF {
			t.Errorf("Color(%d, %d) = %#x, want 0xabcdef", p[0], p[1], uint32(got))
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	b := New(10, 10)
	b.SetBackground(0x111111)
	b.Clear()
	before := append([]DrawColor(nil), b.Pix()...)

	b.SetDrawColor(0xFF0000)
	outside := [][2]int{
		{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {10, 10}, {-1, -1},
		{-1 << 40, 3}, {3, 1 << 40},
	}
	for _, p := range outside {
		b.SetPoint(p[0], p[1])
		if b.InBounds(p[0], p[1]) {
			t.Errorf("InBounds(%d, %d) = true", p[0], p[1])
		}
		if got := b.Color(p[0], p[1]); got != 0 {
			t.Errorf("Color(%d, %d) = %#x, want 0", p[0], p[1], uint32(got))
		}
	}

	for i, c := range b.Pix() {
		if c != before[i] {
			t.Fatalf("pixel %d changed from %#x to %#x", i, uint32(before[i]), uint32(c))
		}
	}
}

func TestSettersDoNotRepaint(t *testing.T) {
	b := New(4, 4)
	b.SetDrawColor(0x00FF00)
	b.SetPoint(1, 1)

	b.SetDrawColor(0x0000FF)
	b.SetBackground(0xFF0000)

	if got := b.Color(1, 1); got != 0x00FF00 {
		t.Errorf("Color(1, 1) = %#x, want 0x00ff00", uint32(got))
	}
	if got := b.Color(2, 2); got != 0 {
		t.Errorf("Color(2, 2) = %#x, want 0", uint32(got))
	}

	b.SetPoint(2, 2)
	if got := b.Color(2, 2); got != 0x0000FF {
		t.Errorf("Color(2, 2) = %#x, want 0x0000ff", uint32(got))
	}
}

func TestDrawColor(t *testing.T) {
	c := RGB24(0xFF, 0x96, 0x00)
	if c != 0xFF9600 {
		t.Errorf("RGB24 = %#x, want 0xff9600", uint32(c))
	}
	r, g, b := c.RGB()
	if r != 0xFF || g != 0x96 || b != 0x00 {
		t.Errorf("RGB() = %d, %d, %d", r, g, b)
	}
	if s := c.String(); s != "#ff9600" {
		t.Errorf("String() = %q", s)
	}
}

func TestPixelRGBA(t *testing.T) {
	p := PixelRGBA(0x11223344)
	r, g, b, a := p.RGBA()
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("RGBA() = %#x, %#x, %#x, %#x", r, g, b, a)
	}

	// A 24-bit draw color, read as RGBA, loses its red channel
	// into green and has zero alpha.
	n := PixelRGBA(RGB24(0xFF, 0, 0)).NRGBA()
	if n.R != 0 || n.G != 0xFF || n.B != 0 || n.A != 0 {
		t.Errorf("NRGBA() = %v", n)
	}
}
