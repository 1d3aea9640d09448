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
package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/framebuffer"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "right_triangle",
		Path:   triangle(0, 0, 4, 0, 0, 4),
		Width:  8,
		Height: 8,
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Color:  0xFFD700,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Color:  0x3060C0,
	},
	{
		Name:   "concave",
		Path:   arrowHead(32, 32, 24),
		Width:  64,
		Height: 64,
		Color:  framebuffer.RGB24(0xC0, 0x20, 0x20),
	},
	{
		Name:   "lab_triangle",
		Path:   triangle(100, 100, 400, 100, 250, 300),
		Width:  800,
		Height: 600,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
// With the even-odd rule the central pentagon stays empty.
func fivePointStar(cx, cy, r float64) *path.Data {
	var pts [5][2]float64
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&path.Data{}).MoveTo(pt(pts[0][0], pts[0][1]))
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pt(pts[i][0], pts[i][1]))
	}
	return p.Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// arrowHead builds a concave quadrilateral pointing upwards.
func arrowHead(cx, cy, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-size)).
		LineTo(pt(cx+size, cy+size)).
		LineTo(pt(cx, cy+size/3)).
		LineTo(pt(cx-size, cy+size)).
		Close()
}
