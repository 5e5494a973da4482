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
	"image/color"

	"seehuhn.de/go/hotline"
)

var paletteCases = []Scenario{
	{
		Name:   "diverging",
		Width:  64,
		Height: 32,
		Paths:  []hotline.Path{{pt(8, 16, 0), pt(56, 16, 1)}},
		Config: config(func(c *hotline.Config) {
			c.Palette = hotline.MustParsePalette(map[float64]string{
				0:   "blue",
				0.5: "white",
				1:   "red",
			})
			c.Range = hotline.ScalarRange{Min: 0, Max: 1}
		}),
	},
	{
		Name:   "hard_edge",
		Width:  64,
		Height: 32,
		Paths:  []hotline.Path{{pt(8, 16, 0), pt(56, 16, 1)}},
		Config: config(func(c *hotline.Config) {
			blue := color.NRGBA{B: 255, A: 255}
			red := color.NRGBA{R: 255, A: 255}
			c.Palette = hotline.Palette{
				{Pos: 0, Color: blue},
				{Pos: 0.5, Color: blue},
				{Pos: 0.5, Color: red},
				{Pos: 1, Color: red},
			}
		}),
	},
	{
		Name:   "single_stop",
		Width:  64,
		Height: 32,
		Paths:  []hotline.Path{{pt(8, 16, 0), pt(56, 16, 1)}},
		Config: config(func(c *hotline.Config) {
			c.Palette = hotline.Palette{{Pos: 0.5, Color: color.NRGBA{R: 0, G: 0, B: 255, A: 255}}}
		}),
	},
	{
		Name:   "lab",
		Width:  64,
		Height: 32,
		Paths:  []hotline.Path{{pt(8, 16, 0), pt(56, 16, 1)}},
		Config: config(func(c *hotline.Config) {
			c.Interpolation = hotline.InterpolateLab
		}),
	},
	{
		Name:   "elevation",
		Width:  128,
		Height: 64,
		Paths:  []hotline.Path{zigzag(8, 8, 48, 14, 8)},
		Config: config(func(c *hotline.Config) {
			c.Palette = hotline.MustParsePalette(map[float64]string{
				0:    "#008800",
				0.4:  "#ffff00",
				0.75: "rgb(255, 128, 0)",
				1:    "white",
			})
			c.Range = hotline.ScalarRange{Min: 0, Max: 1}
			c.Style.OutlineColor = color.NRGBA{R: 64, G: 64, B: 64, A: 255}
		}),
	},
}
