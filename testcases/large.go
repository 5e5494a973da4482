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

// largeCases contain many segments, to exercise the renderer with
// realistic track sizes.
var largeCases = []Scenario{
	{
		Name:   "sine_track",
		Width:  512,
		Height: 256,
		Paths:  []hotline.Path{sineTrack(0, 512, 128, 96, 1000)},
		Config: config(func(c *hotline.Config) {
			c.Range = hotline.ScalarRange{Min: -1, Max: 1}
		}),
	},
	{
		Name:   "sine_track_zoomed",
		Width:  256,
		Height: 256,
		Paths:  []hotline.Path{sineTrack(-256, 768, 128, 200, 1000)},
		Config: config(func(c *hotline.Config) {
			c.Range = hotline.ScalarRange{Min: -1, Max: 1}
			c.Style.Weight = 8
			c.Style.OutlineWidth = 2
		}),
	},
}

// sineTrack samples two periods of a sine wave between x0 and x1.
// The scalar value is the slope of the curve.
func sineTrack(x0, x1, yMid, amp float64, n int) hotline.Path {
	p := make(hotline.Path, n+1)
	for i := range p {
		s := float64(i) / float64(n)
		phi := 4 * math.Pi * s
		p[i] = pt(x0+(x1-x0)*s, yMid+amp*math.Sin(phi), math.Cos(phi))
	}
	return p
}
