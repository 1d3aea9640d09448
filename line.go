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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Line draws the line segment from start to end in the current draw color.
// Both endpoints are rounded to the nearest pixel and both are included
// in the output. Pixels outside the buffer are skipped.
//
// The set of pixels drawn does not depend on the order of the end points.
func Line(b *Buffer, start, end vec.Vec2) {
	x1, y1 := roundPoint(start)
	x2, y2 := roundPoint(end)

	// Bresenham breaks ties in the direction of travel, so always
	// travel downwards (or to the right on a horizontal line).
	if y1 > y2 || y1 == y2 && x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	Bresenham(x1, y1, x2, y2, b.SetPoint)
}

// Bresenham calls plot for every pixel of the discrete line from (x1, y1)
// to (x2, y2), starting at (x1, y1) and ending at (x2, y2).
// Consecutive pixels are 8-connected.
func Bresenham(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		plot(x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x == x2 {
				return
			}
			err += dy
			x += sx
		}
		if e2 <= dx {
			if y == y2 {
				return
			}
			err += dx
			y += sy
		}
	}
}

// roundPoint rounds a vertex to the nearest pixel, with halves rounded
// away from zero.
func roundPoint(p vec.Vec2) (x, y int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
