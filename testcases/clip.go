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

// clipCases contain polygons which extend beyond the canvas.
var clipCases = []TestCase{
	{
		Name:   "overhang_left_top",
		Path:   triangle(-20, -20, 40, 10, 10, 40),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "overhang_all_sides",
		Path:   rectangle(-10, -10, 42, 42),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "outside",
		Path:   triangle(100, 100, 120, 100, 110, 120),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "huge",
		Path:   triangle(-1e6, -1e6, 1e6, -1e6, 0, 1e6),
		Width:  32,
		Height: 32,
	},
}
