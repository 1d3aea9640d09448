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

// Package testcases defines the scenes used to test and benchmark the
// polygon rasterizer, and by the export and genpdf commands.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/framebuffer"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string                // lowercase a-z, 0-9 and _ only
	Path   *path.Data            // the geometry to render, one polygon per subpath
	Width  int                   // canvas width in pixels
	Height int                   // canvas height in pixels
	Color  framebuffer.DrawColor // draw color (zero-value means white)
	CTM    matrix.Matrix         // transformation matrix (zero-value means no transform)
}

// Polygons returns the device space polygons of the test case.
func (tc TestCase) Polygons() [][]vec.Vec2 {
	f := framebuffer.NewFlattener()
	if tc.CTM != (matrix.Matrix{}) {
		f.CTM = tc.CTM
	}
	return f.Polygons(tc.Path)
}

// Render draws the test case into a new buffer with black background.
func (tc TestCase) Render() *framebuffer.Buffer {
	b := framebuffer.New(tc.Width, tc.Height)
	b.SetBackground(framebuffer.Black)
	b.Clear()
	c := tc.Color
	if c == 0 {
		c = framebuffer.White
	}
	b.SetDrawColor(c)

	r := framebuffer.NewRasterizer()
	for _, poly := range tc.Polygons() {
		r.Polygon(b, poly)
	}
	return b
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
