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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/hotline"
)

var basicCases = []Scenario{
	{
		Name:   "single_segment",
		Width:  64,
		Height: 32,
		Paths:  []hotline.Path{{pt(8, 16, 0), pt(56, 16, 1)}},
		Config: config(),
	},
	{
		Name:   "diagonal",
		Width:  64,
		Height: 64,
		Paths:  []hotline.Path{{pt(8, 8, 0), pt(56, 56, 1)}},
		Config: config(),
	},
	{
		Name:   "zigzag",
		Width:  128,
		Height: 64,
		Paths:  []hotline.Path{zigzag(8, 16, 48, 16, 7)},
		Config: config(func(c *hotline.Config) {
			c.Style.Weight = 6
			c.Style.OutlineWidth = 2
		}),
	},
	{
		Name:   "no_outline",
		Width:  64,
		Height: 64,
		Paths:  []hotline.Path{zigzag(8, 12, 40, 12, 4)},
		Config: config(func(c *hotline.Config) {
			c.Style.OutlineWidth = 0
		}),
	},
	{
		Name:   "two_paths",
		Width:  96,
		Height: 64,
		Paths: []hotline.Path{
			{pt(8, 16, 0), pt(88, 16, 0.5), pt(88, 48, 1)},
			{pt(8, 48, 1), pt(48, 32, 0)},
		},
		Config: config(),
	},
	{
		Name:   "spiral",
		Width:  128,
		Height: 128,
		Paths:  []hotline.Path{spiral(64, 64, 4, 56, 3, 120)},
		Config: config(func(c *hotline.Config) {
			c.Style.Weight = 4
		}),
	},
	{
		Name:   "scaled",
		Width:  128,
		Height: 64,
		Paths:  []hotline.Path{zigzag(4, 8, 24, 8, 4)},
		Config: config(),
		CTM:    matrix.Scale(2, 2),
	},
}

// zigzag builds a path of n segments which alternates between the heights
// y0 and y0+h, with the scalar value increasing linearly from 0 to 1.
func zigzag(x0, y0, h, dx float64, n int) hotline.Path {
	p := make(hotline.Path, n+1)
	for i := range p {
		y := y0
		if i%2 == 1 {
			y += h
		}
		p[i] = pt(x0+float64(i)*dx, y, float64(i)/float64(n))
	}
	return p
}

// spiral builds an Archimedean spiral around (cx, cy), from radius r0 to
// r1 in the given number of turns.  The scalar value is the normalized
// distance from the centre.
func spiral(cx, cy, r0, r1, turns float64, n int) hotline.Path {
	p := make(hotline.Path, n+1)
	for i := range p {
		s := float64(i) / float64(n)
		phi := 2 * math.Pi * turns * s
		r := r0 + (r1-r0)*s
		p[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi), s)
	}
	return p
}
