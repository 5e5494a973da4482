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

// Package ggsurface draws hotlines using the gg 2D graphics library.
package ggsurface

import (
	"image/color"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/hotline"
)

// Surface is a [hotline.Surface] which draws onto a [gg.Context].
//
// gg has no destination-out compositing.  Instead, erasing strokes and
// ClearRegion paint with the Background colour, which should be the
// colour the context was cleared with.
type Surface struct {
	// Background is used for erasing.
	Background color.NRGBA

	ctx *gg.Context
}

var _ hotline.Surface = (*Surface)(nil)

// New returns a surface which draws onto ctx.
func New(ctx *gg.Context, background color.NRGBA) *Surface {
	return &Surface{ctx: ctx, Background: background}
}

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context {
	return s.ctx
}

// Clear fills the whole context with the background colour.
func (s *Surface) Clear() {
	s.ctx.ClearWithColor(gg.FromColor(s.Background))
}

// BeginStroke implements the [hotline.Surface] interface.
func (s *Surface) BeginStroke() {
	s.ctx.ClearPath()
}

// MoveTo implements the [hotline.Surface] interface.
func (s *Surface) MoveTo(p vec.Vec2) {
	s.ctx.MoveTo(p.X, p.Y)
}

// LineTo implements the [hotline.Surface] interface.
func (s *Surface) LineTo(p vec.Vec2) {
	s.ctx.LineTo(p.X, p.Y)
}

// StrokeSolid implements the [hotline.Surface] interface.
func (s *Surface) StrokeSolid(c color.NRGBA, st hotline.StrokeStyle) {
	if st.Erase {
		c = s.Background
	}
	s.ctx.SetColor(c)
	s.stroke(st)
}

// StrokeLinearGradient implements the [hotline.Surface] interface.
func (s *Surface) StrokeLinearGradient(p0, p1 vec.Vec2, stops []hotline.GradientStop, st hotline.StrokeStyle) {
	if st.Erase {
		s.StrokeSolid(s.Background, st)
		return
	}
	g := gg.NewLinearGradientBrush(p0.X, p0.Y, p1.X, p1.Y)
	for _, stop := range stops {
		g.AddColorStop(stop.Offset, gg.FromColor(stop.Color))
	}
	s.ctx.SetStrokeBrush(g)
	s.stroke(st)
}

// ClearRegion implements the [hotline.Surface] interface.
// The region is filled with the Background colour.
func (s *Surface) ClearRegion(r rect.Rect) {
	s.ctx.ClearPath()
	s.ctx.DrawRectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
	s.ctx.SetColor(s.Background)
	if err := s.ctx.Fill(); err != nil {
		hotline.Logger().Warn("gg fill failed", "error", err)
	}
}

func (s *Surface) stroke(st hotline.StrokeStyle) {
	s.ctx.SetLineWidth(st.Width)
	s.ctx.SetLineCap(lineCap(st.Cap))
	s.ctx.SetLineJoin(gg.LineJoinRound)
	if err := s.ctx.Stroke(); err != nil {
		hotline.Logger().Warn("gg stroke failed", "error", err)
	}
}

func lineCap(c graphics.LineCapStyle) gg.LineCap {
	switch c {
	case graphics.LineCapRound:
		return gg.LineCapRound
	case graphics.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}
