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

	"seehuhn.de/go/hotline"
)

var degenerateCases = []Scenario{
	{
		Name:   "single_point",
		Width:  32,
		Height: 32,
		Paths:  []hotline.Path{{pt(16, 16, 0.5)}},
		Config: config(),
	},
	{
		Name:   "repeated_point",
		Width:  32,
		Height: 32,
		Paths:  []hotline.Path{{pt(16, 16, 0), pt(16, 16, 1)}},
		Config: config(),
	},
	{
		Name:   "flat_range",
		Width:  64,
		Height: 32,
		Paths:  []hotline.Path{{pt(8, 16, 4), pt(32, 8, 5), pt(56, 16, 6)}},
		Config: config(func(c *hotline.Config) {
			c.Range = hotline.ScalarRange{Min: 5, Max: 5}
		}),
	},
	{
		Name:   "nan_values",
		Width:  64,
		Height: 32,
		Paths:  []hotline.Path{{pt(8, 16, math.NaN()), pt(32, 8, 0.5), pt(56, 16, math.Inf(1))}},
		Config: config(),
	},
}
