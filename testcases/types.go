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

// Package testcases contains drawing scenarios which are shared between
// the tests of the different packages, the benchmarks, and the tools
// which generate reference images.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/hotline"
)

// Scenario describes a set of hotlines drawn onto a canvas.
type Scenario struct {
	Name   string         // lowercase a-z, 0-9 and _ only
	Width  int            // canvas width in pixels
	Height int            // canvas height in pixels
	Paths  []hotline.Path // the data, in device coordinates
	Config hotline.Config // settings used to draw the paths

	// CTM is applied by the surface (zero value means no transform).
	// Width and Height are given in device pixels after the transform.
	CTM matrix.Matrix
}

// Bounds returns the viewport of the scenario, in the coordinates of the
// paths.
func (s Scenario) Bounds() rect.Rect {
	b := rect.Rect{URx: float64(s.Width), URy: float64(s.Height)}
	if s.CTM == (matrix.Matrix{}) || s.CTM == matrix.Identity {
		return b
	}
	// The scenarios use only axis-aligned transforms, so the corners
	// of the device rectangle map to the corners of the viewport.
	inv := s.CTM.Inv()
	x0, y0 := inv.Apply(b.LLx, b.LLy)
	x1, y1 := inv.Apply(b.URx, b.URy)
	return rect.Rect{
		LLx: min(x0, x1),
		LLy: min(y0, y1),
		URx: max(x0, x1),
		URy: max(y0, y1),
	}
}

// Parts returns the visible parts of the paths, as drawn by a layer with
// the scenario's configuration.
func (s Scenario) Parts() []hotline.Path {
	if s.Config.NoClip {
		var res []hotline.Path
		for _, p := range s.Paths {
			if len(p) >= 2 {
				res = append(res, p)
			}
		}
		return res
	}
	c := hotline.Clipper{Round: s.Config.Round}
	return c.ClipAll(s.Paths, s.Bounds())
}

// Silhouette returns every segment of the visible parts as a separate
// subpath.  Stroking this path with width Weight+2*OutlineWidth and round
// caps gives the area covered by the drawing.
func (s Scenario) Silhouette() path.Path {
	parts := s.Parts()
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, part := range parts {
			for j := 1; j < len(part); j++ {
				if !yield(path.CmdMoveTo, []vec.Vec2{part[j-1].Vec2}) ||
					!yield(path.CmdLineTo, []vec.Vec2{part[j].Vec2}) {
					return
				}
			}
		}
	}
}

// OutlineWidth returns the width of the widest stroke in the scenario.
func (s Scenario) OutlineWidth() float64 {
	st := s.Config.Style
	return st.Weight + 2*st.OutlineWidth
}

func pt(x, y, z float64) hotline.Point {
	return hotline.Pt(x, y, z)
}

// config returns the default configuration, modified by the given
// functions.
func config(mods ...func(*hotline.Config)) hotline.Config {
	c := hotline.DefaultConfig()
	for _, m := range mods {
		m(&c)
	}
	return c
}
