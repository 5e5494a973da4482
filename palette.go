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
	"cmp"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
)

// TableSize is the number of entries in a compiled palette.
const TableSize = 256

// Stop is a colour stop of a palette.
// Pos is the position of the stop, in the range [0, 1].
type Stop struct {
	Pos   float64
	Color color.NRGBA
}

// Palette describes a continuous colour gradient by a set of colour stops.
// The order of the stops in the slice is irrelevant, except that for
// several stops at the same position the last one wins to the right of
// the position and the first one to the left of it.
type Palette []Stop

// Interpolation selects the colour space in which a palette is
// interpolated between stops.
type Interpolation int

const (
	// InterpolateSRGB interpolates the sRGB channel values directly.
	// This is what HTML canvas gradients do.
	InterpolateSRGB Interpolation = iota

	// InterpolateLinearRGB interpolates in linear-light RGB.
	InterpolateLinearRGB

	// InterpolateLab interpolates in CIE L*a*b*.
	InterpolateLab

	// InterpolateHCL interpolates in CIE L*C*h, taking the shorter way
	// around the hue circle.
	InterpolateHCL
)

func (m Interpolation) String() string {
	switch m {
	case InterpolateSRGB:
		return "srgb"
	case InterpolateLinearRGB:
		return "linear"
	case InterpolateLab:
		return "lab"
	case InterpolateHCL:
		return "hcl"
	default:
		return "Interpolation(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseInterpolation converts the output of [Interpolation.String] back
// into an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	for m := InterpolateSRGB; m <= InterpolateHCL; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation %q", s)
}

// sorted returns a copy of p, with positions clamped to [0, 1] and
// the stops sorted by position.
func (p Palette) sorted() Palette {
	res := make(Palette, len(p))
	for i, s := range p {
		s.Pos = min(max(s.Pos, 0), 1)
		if math.IsNaN(s.Pos) {
			s.Pos = 0
		}
		res[i] = s
	}
	slices.SortStableFunc(res, func(a, b Stop) int {
		return cmp.Compare(a.Pos, b.Pos)
	})
	return res
}

// at returns the colour of the sorted palette p at position t.
// Outside the range covered by the stops, the colour of the nearest stop
// is used.
func (p Palette) at(t float64, mode Interpolation) color.NRGBA {
	if t <= p[0].Pos {
		return p[0].Color
	}
	last := len(p) - 1
	if t >= p[last].Pos {
		return p[last].Color
	}
	j := sort.Search(len(p), func(i int) bool { return p[i].Pos > t })
	a, b := p[j-1], p[j]
	return blend(a.Color, b.Color, (t-a.Pos)/(b.Pos-a.Pos), mode)
}

// Compile samples the palette into a lookup table.
//
// The samples are taken where a 1×256 pixel canvas filled top-to-bottom with
// the gradient would have its pixel centres, so that entry i holds the
// colour at position (i+0.5)/256.
func (p Palette) Compile(mode Interpolation) (*Table, error) {
	if len(p) == 0 {
		return nil, &ConfigError{Field: "palette", Err: ErrNoStops}
	}
	stops := p.sorted()

	t := new(Table)
	for i := range t {
		t[i] = stops.at((float64(i)+0.5)/TableSize, mode)
	}

	Logger().Debug("palette compiled",
		slog.Int("stops", len(stops)),
		slog.String("interpolation", mode.String()))
	return t, nil
}

// key returns a string which identifies the compiled form of p.
func (p Palette) key(mode Interpolation) string {
	var b strings.Builder
	b.WriteString(mode.String())
	for _, s := range p.sorted() {
		fmt.Fprintf(&b, ";%s:%02x%02x%02x%02x",
			strconv.FormatFloat(s.Pos, 'g', -1, 64),
			s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	}
	return b.String()
}

// blend returns the colour at fraction u of the way from c0 to c1.
func blend(c0, c1 color.NRGBA, u float64, mode Interpolation) color.NRGBA {
	a := lerp8(c0.A, c1.A, u)

	switch mode {
	case InterpolateLinearRGB:
		r0, g0, b0 := toColorful(c0).LinearRgb()
		r1, g1, b1 := toColorful(c1).LinearRgb()
		c := colorful.LinearRgb(
			r0+(r1-r0)*u,
			g0+(g1-g0)*u,
			b0+(b1-b0)*u)
		return fromColorful(c, a)
	case InterpolateLab:
		return fromColorful(toColorful(c0).BlendLab(toColorful(c1), u), a)
	case InterpolateHCL:
		return fromColorful(toColorful(c0).BlendHcl(toColorful(c1), u), a)
	default:
		return color.NRGBA{
			R: lerp8(c0.R, c1.R, u),
			G: lerp8(c0.G, c1.G, u),
			B: lerp8(c0.B, c1.B, u),
			A: a,
		}
	}
}

func lerp8(x, y uint8, u float64) uint8 {
	v := float64(x) + (float64(y)-float64(x))*u
	return uint8(min(max(math.Floor(v+0.5), 0), 255))
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

// Table is a compiled palette.
// A Table is never modified after compilation and can be shared freely.
type Table [TableSize]color.NRGBA

// Index returns the table index for the normalized value t.
func Index(t float64) int {
	if math.IsNaN(t) {
		return 0
	}
	idx := int(math.Floor(t * TableSize))
	return min(max(idx, 0), TableSize-1)
}

// Lookup returns the colour for the normalized value u.
func (t *Table) Lookup(u float64) color.NRGBA {
	return t[Index(u)]
}

// ColorOf returns the colour used for a vertex with scalar value z.
// The alpha channel is forced to be opaque.
func (t *Table) ColorOf(z float64, r ScalarRange) color.NRGBA {
	c := t.Lookup(Normalize(z, r))
	c.A = 255
	return c
}

// defaultTable is used when no table is given in the drawing options.
var defaultTable = sync.OnceValue(func() *Table {
	t, err := DefaultPalette().Compile(InterpolateSRGB)
	if err != nil {
		panic(err)
	}
	return t
})

// TableCache holds the most recently compiled palette table.
// Recompilation only happens when the palette content changes.
// A TableCache is safe for concurrent use; a replaced table is swapped in
// as a whole.
type TableCache struct {
	cur atomic.Pointer[cacheEntry]
}

type cacheEntry struct {
	key   string
	table *Table
}

// Get returns the compiled form of p.
func (c *TableCache) Get(p Palette, mode Interpolation) (*Table, error) {
	key := p.key(mode)
	if e := c.cur.Load(); e != nil && e.key == key {
		Logger().Debug("palette cache hit")
		return e.table, nil
	}

	t, err := p.Compile(mode)
	if err != nil {
		return nil, err
	}
	c.cur.Store(&cacheEntry{key: key, table: t})
	return t, nil
}
