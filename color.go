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

package hotline

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var errColorSyntax = errors.New("unrecognised colour syntax")

// ParseColor parses a CSS colour value.
// Supported are the named colours of CSS, "transparent", hexadecimal
// colours with 3, 4, 6 or 8 digits, and the rgb() and rgba() notations.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	if lower == "transparent" {
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[lower]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	}

	switch {
	case strings.HasPrefix(lower, "#"):
		return parseHex(lower)
	case strings.HasPrefix(lower, "rgb"):
		return parseRGBFunc(lower)
	}
	return color.NRGBA{}, fmt.Errorf("%q: %w", s, errColorSyntax)
}

func parseHex(s string) (color.NRGBA, error) {
	alpha := uint8(255)
	switch len(s) {
	case 4, 7:
		// handled by colorful below
	case 5, 9:
		// trailing alpha digits
		n := (len(s) - 1) / 4
		v, err := strconv.ParseUint(s[len(s)-n:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%q: %w", s, errColorSyntax)
		}
		if n == 1 {
			v *= 17
		}
		alpha = uint8(v)
		s = s[:len(s)-n]
	default:
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, errColorSyntax)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, errColorSyntax)
	}
	return fromColorful(c, alpha), nil
}

// parseRGBFunc parses "rgb(r, g, b)" and "rgba(r, g, b, a)", with
// channel values in 0-255 or percentages, and alpha in [0, 1].
func parseRGBFunc(s string) (color.NRGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, errColorSyntax)
	}
	name := s[:open]
	args := strings.Split(s[open+1:len(s)-1], ",")
	if !(name == "rgb" && len(args) == 3) && !(name == "rgba" && len(args) == 4) {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, errColorSyntax)
	}

	var ch [4]uint8
	ch[3] = 255
	for i, arg := range args {
		num, pct := strings.CutSuffix(strings.TrimSpace(arg), "%")
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%q: %w", s, errColorSyntax)
		}
		switch {
		case pct:
			v = v * 255 / 100
		case i == 3:
			v *= 255
		}
		ch[i] = uint8(min(max(math.Floor(v+0.5), 0), 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// ParsePalette builds a palette from a map of stop positions to CSS
// colour values.
func ParsePalette(stops map[float64]string) (Palette, error) {
	if len(stops) == 0 {
		return nil, &ConfigError{Field: "palette", Err: ErrNoStops}
	}
	p := make(Palette, 0, len(stops))
	for _, pos := range slices.Sorted(maps.Keys(stops)) {
		c, err := ParseColor(stops[pos])
		if err != nil {
			return nil, &ConfigError{
				Field: "palette[" + strconv.FormatFloat(pos, 'g', -1, 64) + "]",
				Err:   err,
			}
		}
		p = append(p, Stop{Pos: pos, Color: c})
	}
	return p, nil
}

// MustParsePalette is like [ParsePalette] but panics on error.
// It is intended for palettes given as literals.
func MustParsePalette(stops map[float64]string) Palette {
	p, err := ParsePalette(stops)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePaletteSpec parses a palette written as a comma-separated list of
// "position:colour" pairs, for example "0:green,0.5:yellow,1:red".
// Colours written in the rgb() notation must not contain commas; use the
// hexadecimal notation instead.
func ParsePaletteSpec(spec string) (Palette, error) {
	stops := make(map[float64]string)
	for item := range strings.SplitSeq(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		posStr, col, ok := strings.Cut(item, ":")
		if !ok {
			return nil, &ConfigError{Field: "palette", Err: fmt.Errorf("stop %q: missing ':'", item)}
		}
		pos, err := strconv.ParseFloat(strings.TrimSpace(posStr), 64)
		if err != nil {
			return nil, &ConfigError{Field: "palette", Err: fmt.Errorf("stop %q: %w", item, err)}
		}
		stops[pos] = col
	}
	return ParsePalette(stops)
}

// DefaultPalette returns a palette which runs from green at 0 over yellow
// at 0.5 to red at 1.
func DefaultPalette() Palette {
	return Palette{
		{Pos: 0, Color: opaque(colornames.Green)},
		{Pos: 0.5, Color: opaque(colornames.Yellow)},
		{Pos: 1, Color: opaque(colornames.Red)},
	}
}

func opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
