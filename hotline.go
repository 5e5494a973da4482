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

// Package hotline draws polylines whose colour varies along their length
// according to a scalar value attached to each vertex.
//
// A drawing goes through three steps. The host projects its data into
// device space and supplies it as a list of [Path] values. [Clip] reduces
// each path to the parts visible in the current viewport. Finally
// [Renderer.Draw] strokes every segment of the visible parts with a
// two-stop linear gradient, looking the colours up in a [Table] compiled
// from a [Palette].
//
// Drawing commands are issued against a [Surface]. The sub-packages canvas,
// ggsurface and record provide implementations.
package hotline

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a vertex of a hotline in device coordinates.
// Z is the scalar value which determines the colour at this vertex.
type Point struct {
	vec.Vec2
	Z float64
}

// Pt returns the point (x, y) with scalar value z.
func Pt(x, y, z float64) Point {
	return Point{Vec2: vec.Vec2{X: x, Y: y}, Z: z}
}

// Path is a contiguous polyline.
type Path []Point

// ScalarRange gives the values of Z which are mapped to the
// start and the end of the palette.
type ScalarRange struct {
	Min, Max float64
}

// maxNormalized is the largest value returned by Normalize.
// Keeping it below one makes sure that the table index stays below 255.
const maxNormalized = 0.99

// Normalize maps z into the interval [0, 0.99] relative to r.
// If r is degenerate (Max <= Min) or z is NaN, the result is 0.
func Normalize(z float64, r ScalarRange) float64 {
	span := r.Max - r.Min
	if !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	t := (z - r.Min) / span
	if math.IsNaN(t) {
		return 0
	}
	return min(max(t, 0), maxNormalized)
}

// Style describes the stroke of a hotline.
type Style struct {
	// Weight is the width of the coloured line, in device units.
	Weight float64

	// OutlineWidth is the width of the border drawn on each side of the
	// coloured line. Zero disables the outline.
	OutlineWidth float64

	// OutlineColor is the colour of the border.
	OutlineColor color.NRGBA
}

// outlineWidth returns the stroke width used for the outline pass.
func (s Style) outlineWidth() float64 {
	return s.Weight + 2*s.OutlineWidth
}

// ClickTolerance returns the distance from the centre line, in device
// units, within which a pointer event should be considered to hit the line.
func (s Style) ClickTolerance() float64 {
	return s.Weight/2 + s.OutlineWidth
}

// Default line and outline widths, in device units.
const (
	DefaultWeight       = 5
	DefaultOutlineWidth = 1
)

// DefaultStyle returns a 5 pixel wide line with a 1 pixel black outline.
func DefaultStyle() Style {
	return Style{
		Weight:       DefaultWeight,
		OutlineWidth: DefaultOutlineWidth,
		OutlineColor: color.NRGBA{A: 255},
	}
}

// DefaultRange maps Z values between 0 and 1 onto the palette.
var DefaultRange = ScalarRange{Min: 0, Max: 1}
