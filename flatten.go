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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// defaultFlatness is the default curve flattening tolerance in device
// pixels. Values of 0.25-1.0 are typical; 0.25 is below the threshold
// of visual perception.
const defaultFlatness = 0.25

// Flattener converts paths into polygons in device space.
type Flattener struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in device pixels.
	// Must be positive.
	Flatness float64
}

// NewFlattener returns a Flattener with the identity transformation and
// the default flatness.
func NewFlattener() *Flattener {
	return &Flattener{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

// Polygons returns one polygon for every subpath of p, with all vertices
// in device space. Open subpaths are treated as closed. Curves are
// replaced by line segments which deviate from the curve by at most
// f.Flatness pixels.
func (f *Flattener) Polygons(p *path.Data) [][]vec.Vec2 {
	var res [][]vec.Vec2
	var cur []vec.Vec2
	flush := func() {
		if n := len(cur); n > 1 && cur[n-1] == cur[0] {
			cur = cur[:n-1]
		}
		if len(cur) > 0 {
			res = append(res, cur)
		}
		cur = nil
	}
	emit := func(from, to vec.Vec2) {
		if len(cur) == 0 {
			// drawing continues after a ClosePath
			cur = append(cur, f.apply(from))
		}
		cur = append(cur, f.apply(to))
	}

	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = p.Coords[coordIdx]
			subpath = current
			cur = append(cur, f.apply(current))
			coordIdx++

		case path.CmdLineTo:
			emit(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			f.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], emit)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			f.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], emit)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			flush()
			current = subpath
		}
	}
	flush()

	Logger().Debug("path flattened", "subpaths", len(res))
	return res
}

// DrawPath draws every subpath of p as a separate polygon, using the
// identity transformation and the default flatness.
func DrawPath(b *Buffer, p *path.Data) {
	r := NewRasterizer()
	for _, poly := range NewFlattener().Polygons(p) {
		r.Polygon(b, poly)
	}
}

// apply maps a point from user space to device space.
func (f *Flattener) apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*p.X + f.CTM[2]*p.Y + f.CTM[4],
		Y: f.CTM[1]*p.X + f.CTM[3]*p.Y + f.CTM[5],
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for tolerance checking where translation is irrelevant.
func (f *Flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*v.X + f.CTM[2]*v.Y,
		Y: f.CTM[1]*v.X + f.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
func (f *Flattener) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	errDev := f.transformLinear(e).Length()
	if errDev > f.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / f.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.
func (f *Flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(f.transformLinear(d1).Length(), f.transformLinear(d2).Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * f.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
