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

import "seehuhn.de/go/hotline"

var clipCases = []Scenario{
	{
		Name:   "crossing_right",
		Width:  64,
		Height: 64,
		Paths:  []hotline.Path{{pt(16, 32, 0), pt(100, 32, 1)}},
		Config: config(),
	},
	{
		Name:   "in_out_in",
		Width:  64,
		Height: 64,
		Paths: []hotline.Path{{
			pt(8, 16, 0), pt(32, -20, 0.25), pt(56, 16, 0.5), pt(56, 48, 1),
		}},
		Config: config(),
	},
	{
		Name:   "passing_through",
		Width:  64,
		Height: 64,
		Paths:  []hotline.Path{{pt(-30, -10, 0), pt(94, 74, 1)}},
		Config: config(),
	},
	{
		Name:   "corner_cut",
		Width:  64,
		Height: 64,
		Paths:  []hotline.Path{{pt(40, -16, 0), pt(80, 24, 1)}},
		Config: config(),
	},
	{
		Name:   "rounded",
		Width:  64,
		Height: 64,
		Paths: []hotline.Path{{
			pt(-7.3, 11.1, 0), pt(30.6, 40.3, 0.5), pt(70.2, 21.7, 1),
		}},
		Config: config(func(c *hotline.Config) {
			c.Round = true
		}),
	},
	{
		Name:   "outside",
		Width:  64,
		Height: 64,
		Paths:  []hotline.Path{{pt(-30, -10, 0), pt(-5, 80, 1)}},
		Config: config(),
	},
	{
		Name:   "no_clip",
		Width:  64,
		Height: 64,
		Paths:  []hotline.Path{{pt(-30, 32, 0), pt(94, 32, 1)}},
		Config: config(func(c *hotline.Config) {
			c.NoClip = true
		}),
	},
}
