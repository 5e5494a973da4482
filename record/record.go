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

// Package record implements a [hotline.Surface] which records all drawing
// operations.  Recordings can be inspected in tests, or replayed onto a
// different surface.
package record

import (
	"image/color"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/hotline"
)

// Kind identifies a surface operation.
type Kind int

// These are the surface operations.
const (
	BeginStroke Kind = iota
	MoveTo
	LineTo
	StrokeSolid
	StrokeGradient
	ClearRegion
)

func (k Kind) String() string {
	switch k {
	case BeginStroke:
		return "BeginStroke"
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case StrokeSolid:
		return "StrokeSolid"
	case StrokeGradient:
		return "StrokeGradient"
	case ClearRegion:
		return "ClearRegion"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is a recorded surface operation.
// Only the fields relevant for the given Kind are set.
type Op struct {
	Kind Kind

	// Point is the argument of MoveTo and LineTo.
	Point vec.Vec2

	// P0 and P1 give the gradient axis for StrokeGradient.
	P0, P1 vec.Vec2

	// Color is the colour for StrokeSolid.
	Color color.NRGBA

	// Stops are the gradient stops for StrokeGradient.
	Stops []hotline.GradientStop

	// Style is used by StrokeSolid and StrokeGradient.
	Style hotline.StrokeStyle

	// Rect is the argument of ClearRegion.
	Rect rect.Rect
}

// Recorder is a [hotline.Surface] which stores all operations in Ops.
type Recorder struct {
	Ops []Op
}

var _ hotline.Surface = (*Recorder)(nil)

// BeginStroke implements the [hotline.Surface] interface.
func (r *Recorder) BeginStroke() {
	r.Ops = append(r.Ops, Op{Kind: BeginStroke})
}

// MoveTo implements the [hotline.Surface] interface.
func (r *Recorder) MoveTo(p vec.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: MoveTo, Point: p})
}

// LineTo implements the [hotline.Surface] interface.
func (r *Recorder) LineTo(p vec.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: LineTo, Point: p})
}

// StrokeSolid implements the [hotline.Surface] interface.
func (r *Recorder) StrokeSolid(c color.NRGBA, st hotline.StrokeStyle) {
	r.Ops = append(r.Ops, Op{Kind: StrokeSolid, Color: c, Style: st})
}

// StrokeLinearGradient implements the [hotline.Surface] interface.
func (r *Recorder) StrokeLinearGradient(p0, p1 vec.Vec2, stops []hotline.GradientStop, st hotline.StrokeStyle) {
	r.Ops = append(r.Ops, Op{
		Kind:  StrokeGradient,
		P0:    p0,
		P1:    p1,
		Stops: slices.Clone(stops),
		Style: st,
	})
}

// ClearRegion implements the [hotline.Surface] interface.
func (r *Recorder) ClearRegion(rr rect.Rect) {
	r.Ops = append(r.Ops, Op{Kind: ClearRegion, Rect: rr})
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns the number of recorded operations of kind k.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded operations of kind k, in order.
func (r *Recorder) Filter(k Kind) []Op {
	var res []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			res = append(res, op)
		}
	}
	return res
}

// Replay issues the operations in ops against s.
func Replay(ops []Op, s hotline.Surface) {
	for _, op := range ops {
		switch op.Kind {
		case BeginStroke:
			s.BeginStroke()
		case MoveTo:
			s.MoveTo(op.Point)
		case LineTo:
			s.LineTo(op.Point)
		case StrokeSolid:
			s.StrokeSolid(op.Color, op.Style)
		case StrokeGradient:
			s.StrokeLinearGradient(op.P0, op.P1, op.Stops, op.Style)
		case ClearRegion:
			s.ClearRegion(op.Rect)
		}
	}
}
