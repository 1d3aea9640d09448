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

// degenerateCases contain subpaths with fewer than three vertices.
// Rendering them must leave the buffer unchanged.
var degenerateCases = []TestCase{
	{
		Name:   "two_points",
		Path:   (&path.Data{}).MoveTo(pt(2, 2)).LineTo(pt(12, 9)).Close(),
		Width:  16,
		Height: 16,
	},
	{
		Name:   "single_point",
		Path:   (&path.Data{}).MoveTo(pt(5, 5)).Close(),
		Width:  16,
		Height: 16,
	},
	{
		Name:   "empty",
		Path:   &path.Data{},
		Width:  16,
		Height: 16,
	},
}
