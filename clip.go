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

package hotline

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// outcode describes the position of a point relative to a clipping
// rectangle.  Each bit is set if the point lies beyond the corresponding
// edge.
type outcode uint8

const (
	codeLeft   outcode = 1 << iota // x < LLx
	codeRight                      // x > URx
	codeBottom                     // y < LLy
	codeTop                        // y > URy
)

func bitCode(p vec.Vec2, b rect.Rect) outcode {
	var c outcode
	if p.X < b.LLx {
		c |= codeLeft
	} else if p.X > b.URx {
		c |= codeRight
	}
	if p.Y < b.LLy {
		c |= codeBottom
	} else if p.Y > b.URy {
		c |= codeTop
	}
	return c
}

// maxClipSteps bounds the number of edge intersections computed for a
// single segment.  Exact arithmetic needs at most four; the extra steps
// absorb rounding noise.
const maxClipSteps = 8

// A Clipper splits paths at the boundary of a rectangle.
//
// A Clipper is not safe for concurrent use, since it remembers the outcode
// of the last vertex between segments.
type Clipper struct {
	// Round causes the coordinates of clipped endpoints to be rounded
	// to whole device units.  Rounding happens after the intersection
	// with the bounds has been found, so if the bounds are not on whole
	// units a rounded endpoint can lie up to half a unit outside them.
	Round bool

	// InterpolateZ causes clipped endpoints to get a scalar value
	// interpolated along the segment.  By default a clipped endpoint keeps
	// the Z value of the endpoint it replaces.
	InterpolateZ bool

	// codeOf can be set by tests to observe outcode evaluations.
	codeOf func(vec.Vec2, rect.Rect) outcode

	lastCode outcode
}

func (c *Clipper) code(p vec.Vec2, b rect.Rect) outcode {
	if c.codeOf != nil {
		return c.codeOf(p, b)
	}
	return bitCode(p, b)
}

// Clip returns the parts of p which lie inside bounds, using a zero
// [Clipper].
func Clip(p Path, bounds rect.Rect) []Path {
	var c Clipper
	return c.Clip(p, bounds)
}

// Clip returns the parts of p which lie inside bounds.
//
// Consecutive visible segments are merged into a single part, as long as
// the shared vertex was not moved by clipping.  Paths with fewer than two
// points produce no parts.
func (c *Clipper) Clip(p Path, bounds rect.Rect) []Path {
	var parts []Path
	var cur Path
	for j := 0; j+1 < len(p); j++ {
		a, b, trimmed, ok := c.clipSegment(p[j], p[j+1], bounds, j > 0)
		if !ok {
			if cur != nil {
				parts = append(parts, append(cur, p[j]))
				cur = nil
			}
			continue
		}
		cur = append(cur, a)
		if trimmed || j == len(p)-2 {
			parts = append(parts, append(cur, b))
			cur = nil
		}
	}
	return parts
}

// ClipAll clips every path in paths and concatenates the results.
func (c *Clipper) ClipAll(paths []Path, bounds rect.Rect) []Path {
	var res []Path
	for _, p := range paths {
		res = append(res, c.Clip(p, bounds)...)
	}
	Logger().Debug("clip",
		"paths", len(paths),
		"parts", len(res),
		"bounds", bounds)
	return res
}

// clipSegment implements the Cohen-Sutherland algorithm for the segment
// from a to b.  If reuse is set, the outcode of a is taken from the
// previous call instead of being recomputed.  The return value trimmed
// reports whether b was moved.
func (c *Clipper) clipSegment(a, b Point, bounds rect.Rect, reuse bool) (Point, Point, bool, bool) {
	var codeA outcode
	if reuse {
		codeA = c.lastCode
	} else {
		codeA = c.code(a.Vec2, bounds)
	}
	codeB := c.code(b.Vec2, bounds)
	c.lastCode = codeB

	movedA, movedB := false, false
	for range maxClipSteps {
		if codeA|codeB == 0 {
			if c.Round {
				if movedA {
					a.Vec2 = roundVec(a.Vec2)
				}
				if movedB {
					b.Vec2 = roundVec(b.Vec2)
				}
			}
			return a, b, movedB, true
		} else if codeA&codeB != 0 {
			return a, b, false, false
		}

		codeOut := codeA
		if codeOut == 0 {
			codeOut = codeB
		}
		p, s := edgeIntersection(a.Vec2, b.Vec2, codeOut, bounds)
		newCode := c.code(p, bounds)
		if codeOut == codeA {
			z := a.Z
			if c.InterpolateZ {
				z = zAt(a, b, s)
			}
			a = Point{Vec2: p, Z: z}
			codeA = newCode
			movedA = true
		} else {
			z := b.Z
			if c.InterpolateZ {
				z = zAt(a, b, s)
			}
			b = Point{Vec2: p, Z: z}
			codeB = newCode
			movedB = true
		}
	}
	return a, b, false, false
}

// edgeIntersection returns the point where the line through a and b
// crosses the edge selected by code, together with the fractional
// position of this point between a and b.
func edgeIntersection(a, b vec.Vec2, code outcode, bounds rect.Rect) (vec.Vec2, float64) {
	d := b.Sub(a)
	var s float64
	switch {
	case code&codeTop != 0:
		s = (bounds.URy - a.Y) / d.Y
		return vec.Vec2{X: a.X + d.X*s, Y: bounds.URy}, s
	case code&codeBottom != 0:
		s = (bounds.LLy - a.Y) / d.Y
		return vec.Vec2{X: a.X + d.X*s, Y: bounds.LLy}, s
	case code&codeRight != 0:
		s = (bounds.URx - a.X) / d.X
		return vec.Vec2{X: bounds.URx, Y: a.Y + d.Y*s}, s
	default:
		s = (bounds.LLx - a.X) / d.X
		return vec.Vec2{X: bounds.LLx, Y: a.Y + d.Y*s}, s
	}
}

// zAt returns the scalar value at fraction s of the way from a to b.
func zAt(a, b Point, s float64) float64 {
	if a.Z == b.Z {
		return a.Z
	}
	return a.Z + (b.Z-a.Z)*s
}

// roundVec rounds half-way cases towards positive infinity.
func roundVec(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: math.Floor(v.X + 0.5), Y: math.Floor(v.Y + 0.5)}
}
