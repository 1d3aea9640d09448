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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// edge is one side of a polygon, from vertex a to vertex b.
type edge struct {
	a, b   vec.Vec2 // unrounded end points, used for interpolation
	ya, yb int      // rounded y coordinates, used for the crossing test
}

// Rasterizer draws polygons into a [Buffer]. Create one instance and reuse
// it for multiple polygons; the internal buffers grow as needed but never
// shrink, so that drawing does not allocate in steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	edges      []edge
	intercepts []int
}

// NewRasterizer returns a new Rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Polygon draws the outline of a closed polygon and fills its interior,
// using a fresh [Rasterizer].
func Polygon(b *Buffer, vertices []vec.Vec2) {
	NewRasterizer().Polygon(b, vertices)
}

// Polygon draws the closed polygon with the given vertices in the current
// draw color of b. The last vertex is connected back to the first one.
// First the outline is drawn using [Line], then the interior is filled
// using the even-odd rule.
//
// Polygons with fewer than three vertices are ignored.
func (r *Rasterizer) Polygon(b *Buffer, vertices []vec.Vec2) {
	if len(vertices) < 3 {
		Logger().Debug("polygon skipped", "vertices", len(vertices))
		return
	}

	n := len(vertices)
	for i, v := range vertices {
		Line(b, v, vertices[(i+1)%n])
	}

	r.fill(b, vertices)
}

// fill paints the interior of the polygon, one scan-line at a time.
//
// An edge contributes to scan-line y if its rounded end points satisfy
// ya <= y < yb (or yb <= y < ya). The intercept is interpolated from the
// unrounded coordinates and truncated towards zero. Intercepts are then
// paired off from the left; an unpaired last intercept is dropped.
//
// The crossing test is half-open, so a vertex lying exactly on a
// scan-line is counted for the edge which continues below it only.
// At local extrema this can leave an odd number of intercepts.
func (r *Rasterizer) fill(b *Buffer, vertices []vec.Vec2) {
	r.collectEdges(vertices)

	yMin, yMax := r.edges[0].ya, r.edges[0].ya
	for _, e := range r.edges[1:] {
		yMin = min(yMin, e.ya)
		yMax = max(yMax, e.ya)
	}

	// Scan-lines outside the buffer cannot produce any visible pixels.
	yMin = max(yMin, 0)
	yMax = min(yMax, b.height-1)

	for y := yMin; y <= yMax; y++ {
		r.intercepts = r.intercepts[:0]
		yf := float64(y)
		for i := range r.edges {
			e := &r.edges[i]
			if (e.ya <= y && e.yb > y) || (e.yb <= y && e.ya > y) {
				x := e.a.X + (e.b.X-e.a.X)*(yf-e.a.Y)/(e.b.Y-e.a.Y)
				r.intercepts = append(r.intercepts, int(x))
			}
		}

		slices.Sort(r.intercepts)

		for i := 0; i+1 < len(r.intercepts); i += 2 {
			r.span(b, y, r.intercepts[i], r.intercepts[i+1])
		}
	}
}

// collectEdges builds the edge list of the closed polygon.
func (r *Rasterizer) collectEdges(vertices []vec.Vec2) {
	r.edges = r.edges[:0]
	n := len(vertices)
	for i, a := range vertices {
		b := vertices[(i+1)%n]
		r.edges = append(r.edges, edge{
			a:  a,
			b:  b,
			ya: int(math.Round(a.Y)),
			yb: int(math.Round(b.Y)),
		})
	}
}

// span sets the pixels x1, ..., x2 (inclusive) on scan-line y.
// The range is clipped to the buffer so that very wide spans
// do not iterate over invisible pixels.
func (r *Rasterizer) span(b *Buffer, y, x1, x2 int) {
	x1 = max(x1, 0)
	x2 = min(x2, b.width-1)
	for x := x1; x <= x2; x++ {
		b.SetPoint(x, y)
	}
}
