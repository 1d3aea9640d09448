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
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

type point struct{ x, y int }

// setPixels returns the coordinates of all pixels of b which differ
// from the background, in row-major order.
func setPixels(b *Buffer) []point {
	var res []point
	for y := range b.Height() {
		for x := range b.Width() {
			if b.Color(x, y) != b.Background() {
				res = append(res, point{x, y})
			}
		}
	}
	return res
}

func bresenhamPoints(x1, y1, x2, y2 int) []point {
	var res []point
	Bresenham(x1, y1, x2, y2, func(x, y int) {
		res = append(res, point{x, y})
	})
	return res
}

func TestLineHorizontal(t *testing.T) {
	b := New(8, 3)
	Line(b, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 5, Y: 0})

	want := []point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}
	if got := setPixels(b); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLineSinglePoint(t *testing.T) {
	b := New(5, 5)
	Line(b, vec.Vec2{X: 2, Y: 3}, vec.Vec2{X: 2.2, Y: 2.9})

	want := []point{{2, 3}}
	if got := setPixels(b); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLineRounding(t *testing.T) {
	b := New(8, 8)
	Line(b, vec.Vec2{X: 0.4, Y: 0.6}, vec.Vec2{X: 4.5, Y: 1.4})

	pts := setPixels(b)
	if !slices.Contains(pts, point{0, 1}) {
		t.Errorf("start point (0, 1) missing from %v", pts)
	}
	if !slices.Contains(pts, point{5, 1}) {
		t.Errorf("end point (5, 1) missing from %v", pts)
	}
	if len(pts) != 6 {
		t.Errorf("got %d pixels, want 6: %v", len(pts), pts)
	}
}

func TestBresenham(t *testing.T) {
	cases := [][4]int{
		{0, 0, 5, 0},
		{0, 0, 0, 5},
		{0, 0, 5, 5},
		{0, 0, 2, 1},
		{3, 7, -4, 1},
		{10, 2, 0, 5},
		{-3, -3, 4, 9},
		{1, 1, 1, 1},
	}
	for _, c := range cases {
		x1, y1, x2, y2 := c[0], c[1], c[2], c[3]
		pts := bresenhamPoints(x1, y1, x2, y2)

		if pts[0] != (point{x1, y1}) {
			t.Errorf("%v: first point %v", c, pts[0])
		}
		if pts[len(pts)-1] != (point{x2, y2}) {
			t.Errorf("%v: last point %v", c, pts[len(pts)-1])
		}

		// one pixel per step along the major axis
		want := max(abs(x2-x1), abs(y2-y1)) + 1
		if len(pts) != want {
			t.Errorf("%v: %d points, want %d", c, len(pts), want)
		}

		// 8-connected, no repeated pixels
		for i := 1; i < len(pts); i++ {
			dx := abs(pts[i].x - pts[i-1].x)
			dy := abs(pts[i].y - pts[i-1].y)
			if dx > 1 || dy > 1 || dx+dy == 0 {
				t.Errorf("%v: step %v -> %v", c, pts[i-1], pts[i])
			}
		}
	}
}

func TestLineSymmetric(t *testing.T) {
	ends := []vec.Vec2{
		{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 15, Y: 4}, {X: 7, Y: 15},
		{X: 3.5, Y: 9.2}, {X: 12, Y: 12}, {X: 0, Y: 15}, {X: 15, Y: 0},
		{X: -4, Y: 6}, {X: 20, Y: 7},
	}
	for _, a := range ends {
		for _, c := range ends {
			b1 := New(16, 16)
			Line(b1, a, c)
			b2 := New(16, 16)
			Line(b2, c, a)

			if !slices.Equal(b1.Pix(), b2.Pix()) {
				t.Errorf("%v -> %v: got %v, reverse %v", a, c, setPixels(b1), setPixels(b2))
			}
		}
	}
}

func TestLineClipped(t *testing.T) {
	b := New(10, 10)
	Line(b, vec.Vec2{X: -20, Y: 5}, vec.Vec2{X: 30, Y: 5})

	pts := setPixels(b)
	if len(pts) != 10 {
		t.Errorf("got %d pixels, want 10: %v", len(pts), pts)
	}
	for _, p := range pts {
		if p.y != 5 {
			t.Errorf("unexpected pixel %v", p)
		}
	}
}
