// seehuhn.de/go/hotline - gradient-coloured polylines
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

// Package raster computes anti-aliased pixel coverage for filled and
// stroked paths.
//
// Coverage is computed exactly for polygons using signed area
// accumulation: every edge adds its vertical extent ("cover") and the
// covered part of each pixel ("area") to a scanline buffer, and a running
// sum over the scanline turns these into the fraction of each pixel inside
// the path.  Curves are flattened first.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline, starting at pixel xMin.
// The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasterizer converts paths into coverage values between 0 (outside) and
// 1 (inside).  Internal buffers are reused between calls, so a single
// Rasterizer should be used for many paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip restricts the output to this device space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the line width for Stroke, in user space units.
	Width float64

	// Cap is the line cap style used by Stroke.
	Cap graphics.LineCapStyle

	edges  []edge
	active []int
	cells  []cell
	cov    []float32

	// stroke outlines, one polygon per segment
	outline   []vec.Vec2
	polyStart []int

	bbox    rect.Rect
	hasBBox bool
}

// edge is a polygon edge in device space, stored with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original edge pointed downwards, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// cell accumulates the contributions of all edges to one pixel.
type cell struct {
	cover float32
	area  float32
}

// New returns a Rasterizer which clips to the given rectangle and uses
// the identity transformation.
func New(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapButt,
	}
}

// Fill computes the coverage of the interior of p, using the nonzero
// winding number rule.  Open subpaths are closed implicitly.
func (r *Rasterizer) Fill(p path.Path, emit EmitFunc) {
	r.reset()

	var cur, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = pts[0]
			start = cur
		case path.CmdLineTo:
			r.addEdge(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, pts[0], pts[1], r.addEdge)
			cur = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addEdge)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}

	r.scan(emit)
}

func (r *Rasterizer) reset() {
	r.edges = r.edges[:0]
	r.hasBBox = false
}

// device maps a point from user space to device space.
func (r *Rasterizer) device(p vec.Vec2) vec.Vec2 {
	m := &r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// transformLinear applies the linear part of the CTM to a direction.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	m := &r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// addEdge adds the edge from a to b, given in user space.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	p0 := r.device(a)
	p1 := r.device(b)

	dir := float32(1)
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
		dir = -1
	}
	dy := p1.Y - p0.Y
	if dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
		dir:  dir,
	})

	lo := vec.Vec2{X: min(p0.X, p1.X), Y: p0.Y}
	hi := vec.Vec2{X: max(p0.X, p1.X), Y: p1.Y}
	if !r.hasBBox {
		r.bbox = rect.Rect{LLx: lo.X, LLy: lo.Y, URx: hi.X, URy: hi.Y}
		r.hasBBox = true
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, lo.X)
	r.bbox.LLy = min(r.bbox.LLy, lo.Y)
	r.bbox.URx = max(r.bbox.URx, hi.X)
	r.bbox.URy = max(r.bbox.URy, hi.Y)
}

// pixelRange returns the integer pixel range touched by the collected
// edges, intersected with the clip rectangle.
func (r *Rasterizer) pixelRange() (xMin, xMax, yMin, yMax int, ok bool) {
	if !r.hasBBox || len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan converts the collected edges into coverage values, one scanline at
// a time, keeping a list of the edges which intersect the current line.
func (r *Rasterizer) scan(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelRange()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cells = slices.Grow(r.cells[:0], width)[:width]
	r.cov = slices.Grow(r.cov[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cells)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			accumulate(e, top, bot, r.cells, xMin)
			touched = true
			i++
		}
		if !touched {
			if next == len(r.edges) {
				break
			}
			continue
		}

		integrate(r.cells, r.cov)
		if row, offs := trimZeros(r.cov); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the contribution of e between the heights top and bot
// to the scanline buffer row, which starts at pixel xMin.
func accumulate(e *edge, top, bot float64, row []cell, xMin int) {
	top = max(top, e.y0)
	bot = min(bot, e.y1)
	if bot <= top {
		return
	}

	xa := e.xAt(top)
	xb := e.xAt(bot)
	lo := int(math.Floor(min(xa, xb)))
	hi := int(math.Floor(max(xa, xb)))

	if lo == hi {
		addCell(row, xMin, lo, e.dir*float32(bot-top), (xa+xb)/2)
		return
	}
	if hi < xMin {
		c := e.dir * float32(bot-top)
		row[0].cover += c
		row[0].area += c
		return
	}
	if lo >= xMin+len(row) {
		return
	}

	// The edge crosses several pixel columns.
	dydx := 1 / e.dxdy
	for pix := lo; pix <= hi; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), top)
		segBot := min(max(ya, yb), bot)
		if segBot <= segTop {
			continue
		}
		xMid := e.xAt((segTop + segBot) / 2)
		addCell(row, xMin, pix, e.dir*float32(segBot-segTop), xMid)
	}
}

// addCell records an edge piece with signed height c, crossing pixel pix
// at mean horizontal position xMid.  Pieces left of the buffer cover
// the first pixel completely.
func addCell(row []cell, xMin, pix int, c float32, xMid float64) {
	if pix < xMin {
		row[0].cover += c
		row[0].area += c
		return
	}
	i := pix - xMin
	if i >= len(row) {
		return
	}
	frac := float32(xMid - float64(pix))
	row[i].cover += c
	row[i].area += c * (1 - frac)
}

// integrate turns accumulated cells into coverage values, using the
// nonzero winding number rule.
func integrate(row []cell, out []float32) {
	var acc float32
	for i, c := range row {
		v := acc + c.area
		acc += c.cover
		if v < 0 {
			v = -v
		}
		out[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entries, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// The distance between the curve and its chord is bounded by |e|.
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev := e.Length(); dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula to choose the number of segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		n = max(int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))), 1)
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes to the coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which a stroke segment is
	// treated as a single point.
	zeroLengthThreshold = 1e-10
)
