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

// Package canvas implements a [hotline.Surface] which draws into an
// in-memory RGBA image.
//
// Strokes are rasterized with anti-aliasing and composited either
// source-over or, for erasing strokes, destination-out.  Gradients are
// evaluated at the centre of every pixel.
package canvas

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/hotline"
	"seehuhn.de/go/hotline/raster"
)

// Canvas is a drawing surface backed by an [image.RGBA].
// The zero value is not usable; use [New] or [NewForImage].
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	ctm matrix.Matrix
	inv matrix.Matrix
	ras *raster.Rasterizer
	cur raster.Buffer
}

var _ hotline.Surface = (*Canvas)(nil)

// New allocates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return NewForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewForImage returns a canvas which draws into img.
func NewForImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	c := &Canvas{
		img: img,
		ras: raster.New(rect.Rect{
			LLx: float64(b.Min.X),
			LLy: float64(b.Min.Y),
			URx: float64(b.Max.X),
			URy: float64(b.Max.Y),
		}),
	}
	c.SetTransform(matrix.Identity)
	return c
}

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SetTransform sets the map from drawing coordinates to pixel coordinates.
// This can for example be used to draw on high resolution displays.
// Singular matrices are replaced by the identity.
func (c *Canvas) SetTransform(m matrix.Matrix) {
	inv, ok := invert(m)
	if !ok {
		m, inv = matrix.Identity, matrix.Identity
	}
	c.ctm = m
	c.inv = inv
	c.ras.CTM = m
}

// Clear makes all pixels transparent.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// BeginStroke implements the [hotline.Surface] interface.
func (c *Canvas) BeginStroke() {
	c.cur.Reset()
}

// MoveTo implements the [hotline.Surface] interface.
func (c *Canvas) MoveTo(p vec.Vec2) {
	c.cur.MoveTo(p)
}

// LineTo implements the [hotline.Surface] interface.
func (c *Canvas) LineTo(p vec.Vec2) {
	c.cur.LineTo(p)
}

// StrokeSolid implements the [hotline.Surface] interface.
func (c *Canvas) StrokeSolid(col color.NRGBA, st hotline.StrokeStyle) {
	src := [3]float32{float32(col.R), float32(col.G), float32(col.B)}
	alpha := float32(col.A) / 255
	c.stroke(st, func(x, y int, cov float32) {
		c.blend(x, y, src, alpha*cov, st.Erase)
	})
}

// StrokeLinearGradient implements the [hotline.Surface] interface.
// A gradient with coincident end points paints nothing.
func (c *Canvas) StrokeLinearGradient(p0, p1 vec.Vec2, stops []hotline.GradientStop, st hotline.StrokeStyle) {
	axis := p1.Sub(p0)
	l2 := axis.Dot(axis)
	if !(l2 > 0) || len(stops) == 0 {
		return
	}
	c.stroke(st, func(x, y int, cov float32) {
		qx, qy := c.inv.Apply(float64(x)+0.5, float64(y)+0.5)
		q := vec.Vec2{X: qx, Y: qy}
		t := min(max(q.Sub(p0).Dot(axis)/l2, 0), 1)
		col := gradientAt(stops, t)
		src := [3]float32{float32(col.R), float32(col.G), float32(col.B)}
		c.blend(x, y, src, float32(col.A)/255*cov, st.Erase)
	})
}

// ClearRegion implements the [hotline.Surface] interface.
// Pixels which intersect r are cleared.
func (c *Canvas) ClearRegion(r rect.Rect) {
	ax, ay := c.ctm.Apply(r.LLx, r.LLy)
	bx, by := c.ctm.Apply(r.URx, r.URy)
	area := image.Rect(
		int(math.Floor(min(ax, bx))), int(math.Floor(min(ay, by))),
		int(math.Ceil(max(ax, bx))), int(math.Ceil(max(ay, by))),
	).Intersect(c.img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		i := c.img.PixOffset(area.Min.X, y)
		clear(c.img.Pix[i : i+4*area.Dx()])
	}
}

// stroke rasterizes the current path and calls paint for every pixel
// with non-zero coverage.
func (c *Canvas) stroke(st hotline.StrokeStyle, paint func(x, y int, cov float32)) {
	if !(st.Width > 0) || c.cur.Len() == 0 {
		return
	}
	c.ras.Width = st.Width
	c.ras.Cap = st.Cap
	c.ras.Stroke(c.cur.Path(), func(y, xMin int, coverage []float32) {
		for i, cov := range coverage {
			if cov > 0 {
				paint(xMin+i, y, cov)
			}
		}
	})
}

// blend composites a straight-alpha colour with opacity alpha onto the
// premultiplied pixel at (x, y).  If erase is set, the destination is
// reduced by alpha instead (destination-out).
func (c *Canvas) blend(x, y int, src [3]float32, alpha float32, erase bool) {
	i := c.img.PixOffset(x, y)
	px := c.img.Pix[i : i+4 : i+4]
	keep := 1 - alpha
	if erase {
		for k := range px {
			px[k] = toByte(float32(px[k]) * keep)
		}
		return
	}
	for k := range 3 {
		px[k] = toByte(src[k]*alpha + float32(px[k])*keep)
	}
	px[3] = toByte(255*alpha + float32(px[3])*keep)
}

func toByte(v float32) uint8 {
	return uint8(min(max(v+0.5, 0), 255))
}

// gradientAt returns the colour of the gradient at offset t.
// The stops must be sorted by offset.
func gradientAt(stops []hotline.GradientStop, t float64) color.NRGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		s0, s1 := stops[i-1], stops[i]
		if t >= s1.Offset {
			continue
		}
		u := (t - s0.Offset) / (s1.Offset - s0.Offset)
		return color.NRGBA{
			R: lerp(s0.Color.R, s1.Color.R, u),
			G: lerp(s0.Color.G, s1.Color.G, u),
			B: lerp(s0.Color.B, s1.Color.B, u),
			A: lerp(s0.Color.A, s1.Color.A, u),
		}
	}
	return stops[len(stops)-1].Color
}

func lerp(a, b uint8, u float64) uint8 {
	return uint8(math.Floor(float64(a) + (float64(b)-float64(a))*u + 0.5))
}

// invert returns the inverse of the affine map m.  The second return
// value is false if m is singular or not finite.
func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return matrix.Matrix{}, false
	}
	return m.Inv(), true
}
