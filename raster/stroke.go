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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke computes the coverage of the stroked outline of p, using the
// current Width and Cap.
//
// Every line segment is stroked separately, with caps at both ends, and
// the union of the resulting shapes is filled.  With round caps this is
// the same as a stroke with round joins.  Subpaths which consist of a
// single point produce a dot if the cap style is round.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.reset()
	r.outline = r.outline[:0]
	r.polyStart = r.polyStart[:0]

	d := r.Width / 2
	if !(d > 0) {
		return
	}
	seg := func(a, b vec.Vec2) {
		r.addCapsule(a, b, d)
	}

	var cur, start vec.Vec2
	open := false
	drawn := false
	finish := func() {
		if open && !drawn {
			r.addDot(start, d)
		}
		open = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish()
			cur = pts[0]
			start = cur
			open, drawn = true, false
		case path.CmdLineTo:
			r.addCapsule(cur, pts[0], d)
			cur = pts[0]
			drawn = true
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, pts[0], pts[1], seg)
			cur = pts[1]
			drawn = true
		case path.CmdCubeTo:
			r.flattenCubic(cur, pts[0], pts[1], pts[2], seg)
			cur = pts[2]
			drawn = true
		case path.CmdClose:
			if cur != start {
				r.addCapsule(cur, start, d)
				drawn = true
			}
			finish()
			cur = start
		}
	}
	finish()

	for i, s := range r.polyStart {
		end := len(r.outline)
		if i+1 < len(r.polyStart) {
			end = r.polyStart[i+1]
		}
		poly := r.outline[s:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(emit)
}

// addCapsule adds the outline of the segment from a to b, stroked with
// half width d, to the list of stroke polygons.  All polygons have the
// same orientation, so that overlaps are filled only once.
func (r *Rasterizer) addCapsule(a, b vec.Vec2, d float64) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		r.addDot(a, d)
		return
	}
	t := v.Mul(1 / l)
	n := vec.Vec2{X: -t.Y, Y: t.X}

	r.polyStart = append(r.polyStart, len(r.outline))
	r.outline = append(r.outline, a.Add(n.Mul(d)), b.Add(n.Mul(d)))
	r.addCap(b, t, d)
	r.outline = append(r.outline, b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))
	r.addCap(a, t.Mul(-1), d)
}

// addDot adds a full circle of radius d around p, if the cap style is
// round.  Other cap styles have no defined direction for a single point
// and draw nothing.
func (r *Rasterizer) addDot(p vec.Vec2, d float64) {
	if r.Cap != graphics.LineCapRound {
		return
	}
	// clockwise, like the capsules
	r.polyStart = append(r.polyStart, len(r.outline))
	r.addArc(p, d, vec.Vec2{X: 1}, -2*math.Pi)
}

// addCap adds the cap at the end point p of a segment.  The vector t is
// the unit tangent pointing away from the segment.  On entry, the outline
// ends at the left corner p+n*d.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		// half turn clockwise from n, through t, to -n
		r.addArc(p, d, n, -math.Pi)
	}
}

// addArc appends points on the circle with the given centre and radius,
// starting in direction dir and turning by sweep radians.  The start
// point itself is not included.
func (r *Rasterizer) addArc(centre vec.Vec2, radius float64, dir vec.Vec2, sweep float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	// A chord spanning the angle θ deviates from the arc by
	// radius*(1-cos(θ/2)).
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = int(math.Ceil(math.Abs(sweep) / step))
		}
	}
	n = max(n, 4)

	for i := 1; i <= n; i++ {
		phi := sweep * float64(i) / float64(n)
		sin, cos := math.Sincos(phi)
		rot := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		r.outline = append(r.outline, centre.Add(rot.Mul(radius)))
	}
}
