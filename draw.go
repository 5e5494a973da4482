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
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Surface is the set of drawing operations needed to render a hotline.
//
// Each stroke is started with BeginStroke, followed by MoveTo and LineTo
// calls which build the current path, and is finished by one of the two
// stroke methods.
type Surface interface {
	BeginStroke()
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)

	// StrokeSolid strokes the current path using a single colour.
	StrokeSolid(c color.NRGBA, st StrokeStyle)

	// StrokeLinearGradient strokes the current path using a linear
	// gradient along the axis from p0 to p1.  Offsets in stops are
	// relative to this axis.
	StrokeLinearGradient(p0, p1 vec.Vec2, stops []GradientStop, st StrokeStyle)

	// ClearRegion resets all pixels inside r to transparent.
	ClearRegion(r rect.Rect)
}

// StrokeStyle gives the parameters for a stroke operation.
type StrokeStyle struct {
	Width float64
	Cap   graphics.LineCapStyle

	// Erase indicates that the stroke removes existing content
	// (destination-out compositing) instead of painting over it.
	Erase bool
}

// GradientStop is a colour stop of a linear gradient.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Options holds the parameters for one call to [Renderer.Draw] or
// [Renderer.Erase].
type Options struct {
	Style Style
	Range ScalarRange
	Table *Table
}

// Renderer draws hotlines onto a [Surface].
//
// The Renderer remembers the outline width last used for every part of
// every path, so that repeated calls to Erase widen the erased area.
// Paths are identified by a caller-chosen string.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	widths map[string][]float64
}

// Draw renders the given parts of the path id.
//
// If the style has a positive outline width, all segments are first
// stroked with the outline colour.  Then every segment is stroked with a
// gradient between the palette colours of its two end points.
func (r *Renderer) Draw(s Surface, id string, parts []Path, opt Options) {
	if opt.Style.OutlineWidth > 0 {
		r.outline(s, id, parts, opt.Style, false)
	}
	r.gradient(s, parts, opt)
}

// Erase removes the given parts of the path id from the surface.
//
// Only the outline pass is run, using destination-out strokes.  Every call
// uses a stroke width one unit larger than the width previously used for
// the same part, so that anti-aliasing remnants of earlier strokes are
// removed as well.
func (r *Renderer) Erase(s Surface, id string, parts []Path, opt Options) {
	r.outline(s, id, parts, opt.Style, true)
}

// Forget discards the outline widths recorded for the path id.
// This should be called when a path is removed.
func (r *Renderer) Forget(id string) {
	delete(r.widths, id)
}

// Width returns the outline width most recently used for the given part
// of the path id, or 0 if no width has been recorded.
func (r *Renderer) Width(id string, part int) float64 {
	w := r.widths[id]
	if part < 0 || part >= len(w) {
		return 0
	}
	return w[part]
}

func (r *Renderer) outline(s Surface, id string, parts []Path, style Style, erase bool) {
	if r.widths == nil {
		r.widths = make(map[string][]float64)
	}
	prev := r.widths[id]
	if len(prev) < len(parts) {
		prev = append(prev, make([]float64, len(parts)-len(prev))...)
	}

	base := style.outlineWidth()
	for i, part := range parts {
		width := base
		if erase {
			if prev[i] > 0 {
				width = prev[i]
			}
			width++
		}
		prev[i] = width

		st := StrokeStyle{Width: width, Cap: graphics.LineCapRound, Erase: erase}
		for j := 1; j < len(part); j++ {
			s.BeginStroke()
			s.MoveTo(part[j-1].Vec2)
			s.LineTo(part[j].Vec2)
			s.StrokeSolid(style.OutlineColor, st)
		}
	}
	r.widths[id] = prev
}

func (r *Renderer) gradient(s Surface, parts []Path, opt Options) {
	tab := opt.Table
	if tab == nil {
		tab = defaultTable()
	}
	st := StrokeStyle{Width: opt.Style.Weight, Cap: graphics.LineCapRound}
	for _, part := range parts {
		for j := 1; j < len(part); j++ {
			p0, p1 := part[j-1], part[j]
			stops := []GradientStop{
				{Offset: 0, Color: tab.ColorOf(p0.Z, opt.Range)},
				{Offset: 1, Color: tab.ColorOf(p1.Z, opt.Range)},
			}
			s.BeginStroke()
			s.MoveTo(p0.Vec2)
			s.LineTo(p1.Vec2)
			s.StrokeLinearGradient(p0.Vec2, p1.Vec2, stops, st)
		}
	}
}
