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

package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// dotThreshold is the smallest alpha value which sets a braille dot.
const dotThreshold = 128

// dotBits gives the bit for the dot at (dx, dy) inside a braille cell.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// cell returns the braille dot pattern and the average colour of the
// 2×4 pixel block starting at (x0, y0).
func cell(img *image.RGBA, x0, y0 int) (mask uint8, col string) {
	var r, g, b, n int
	for dy := range 4 {
		for dx := range 2 {
			p := image.Pt(x0+dx, y0+dy)
			if !p.In(img.Bounds()) {
				continue
			}
			c := img.RGBAAt(p.X, p.Y)
			if c.A < dotThreshold {
				continue
			}
			mask |= dotBits[dy][dx]
			// undo premultiplication
			r += int(c.R) * 255 / int(c.A)
			g += int(c.G) * 255 / int(c.A)
			b += int(c.B) * 255 / int(c.A)
			n++
		}
	}
	if n == 0 {
		return 0, ""
	}
	return mask, fmt.Sprintf("#%02x%02x%02x", r/n, g/n, b/n)
}

// brailleLines converts img into w×h braille characters.  Runs of cells
// with the same colour share one style.
func brailleLines(img *image.RGBA, w, h int) []string {
	lines := make([]string, h)
	var row, run strings.Builder
	for cy := range h {
		row.Reset()
		run.Reset()
		runCol := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runCol == "" {
				row.WriteString(run.String())
			} else {
				row.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runCol)).Render(run.String()))
			}
			run.Reset()
		}
		for cx := range w {
			mask, col := cell(img, 2*cx, 4*cy)
			if col != runCol {
				flush()
				runCol = col
			}
			if mask == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(rune(0x2800 + int(mask)))
			}
		}
		flush()
		lines[cy] = row.String()
	}
	return lines
}
