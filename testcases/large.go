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
	"seehuhn.de/go/geom/path"
)

// largeCases contain polygons covering many scan-lines.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Color:  0x20A0A0,
	},
	{
		Name:   "odd_width",
		Path:   diamond(150, 100, 90),
		Width:  301,
		Height: 203,
	},
}

// diamond builds a diamond (rotated square) shape.
func diamond(cx, cy, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-size)).
		LineTo(pt(cx+size, cy)).
		LineTo(pt(cx, cy+size)).
		LineTo(pt(cx-size, cy)).
		Close()
}
