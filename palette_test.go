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
	"image/color"
	"math"
	"testing"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func TestPaletteRoundTrip(t *testing.T) {
	p := Palette{{Pos: 0, Color: red}, {Pos: 1, Color: blue}}
	for _, mode := range []Interpolation{InterpolateSRGB, InterpolateLinearRGB, InterpolateLab, InterpolateHCL} {
		t.Run(mode.String(), func(t *testing.T) {
			tab, err := p.Compile(mode)
			if err != nil {
				t.Fatal(err)
			}
			// The stops themselves are reproduced exactly.
			stops := p.sorted()
			if got := stops.at(0, mode); got != red {
				t.Errorf("colour at 0 is %v, want %v", got, red)
			}
			if got := stops.at(1, mode); got != blue {
				t.Errorf("colour at 1 is %v, want %v", got, blue)
			}

			// Table entries are sampled half a step away from the stops.
			// Only straight sRGB interpolation rounds back exactly.
			if mode == InterpolateSRGB {
				if tab[0] != red || tab[TableSize-1] != blue {
					t.Errorf("end entries are %v and %v", tab[0], tab[TableSize-1])
				}
				return
			}
			if first := tab[0]; first.R < 200 || first.B > first.R/4 {
				t.Errorf("entry 0 is %v, want close to %v", first, red)
			}
			if last := tab[TableSize-1]; last.B < 200 || last.R > last.B/4 {
				t.Errorf("entry 255 is %v, want close to %v", last, blue)
			}
		})
	}

	tab, err := p.Compile(InterpolateSRGB)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < TableSize; i++ {
		if tab[i].R > tab[i-1].R || tab[i].B < tab[i-1].B {
			t.Fatalf("entries %d and %d are not monotonic: %v %v", i-1, i, tab[i-1], tab[i])
		}
	}
	if mid := tab[128]; mid.R < 100 || mid.R > 155 || mid.B < 100 || mid.B > 155 {
		t.Errorf("entry 128 is %v, want a mix of red and blue", mid)
	}
}

func TestPaletteHardEdge(t *testing.T) {
	p := Palette{
		{Pos: 0, Color: blue},
		{Pos: 0.5, Color: blue},
		{Pos: 0.5, Color: red},
		{Pos: 1, Color: red},
	}
	tab, err := p.Compile(InterpolateSRGB)
	if err != nil {
		t.Fatal(err)
	}
	if tab[127] != blue {
		t.Errorf("entry 127 is %v, want blue", tab[127])
	}
	if tab[128] != red {
		t.Errorf("entry 128 is %v, want red", tab[128])
	}
}

func TestPaletteOutsideStops(t *testing.T) {
	// Stops outside [0, 1] are clamped, and the colours of the outermost
	// stops extend to the ends of the table.
	p := Palette{{Pos: 2, Color: blue}, {Pos: -1, Color: red}}
	tab, err := p.Compile(InterpolateSRGB)
	if err != nil {
		t.Fatal(err)
	}
	if tab[0] != red || tab[255] != blue {
		t.Errorf("got %v ... %v, want red ... blue", tab[0], tab[255])
	}

	p = Palette{{Pos: 0.25, Color: red}, {Pos: 0.75, Color: blue}}
	tab, err = p.Compile(InterpolateSRGB)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{0, 10, 63} {
		if tab[i] != red {
			t.Errorf("entry %d is %v, want red", i, tab[i])
		}
	}
	for _, i := range []int{192, 200, 255} {
		if tab[i] != blue {
			t.Errorf("entry %d is %v, want blue", i, tab[i])
		}
	}
}

func TestCompileEmpty(t *testing.T) {
	_, err := Palette(nil).Compile(InterpolateSRGB)
	if !errors.Is(err, ErrNoStops) {
		t.Fatalf("got error %v, want ErrNoStops", err)
	}
	var cErr *ConfigError
	if !errors.As(err, &cErr) || cErr.Field != "palette" {
		t.Errorf("got %#v, want ConfigError for palette", err)
	}
}

func TestNormalize(t *testing.T) {
	r := ScalarRange{Min: 0, Max: 1}
	cases := []struct {
		z    float64
		r    ScalarRange
		want float64
	}{
		{-5, r, 0},
		{100, r, 0.99},
		{0, r, 0},
		{0.5, r, 0.5},
		{1, r, 0.99},
		{math.Inf(1), r, 0.99},
		{math.Inf(-1), r, 0},
		{math.NaN(), r, 0},
		{15, ScalarRange{Min: 10, Max: 20}, 0.5},
		{5, ScalarRange{Min: 5, Max: 5}, 0},
		{7, ScalarRange{Min: 5, Max: 5}, 0},
		{7, ScalarRange{Min: 9, Max: 5}, 0},
		{7, ScalarRange{Min: math.Inf(-1), Max: 5}, 0},
	}
	for _, c := range cases {
		got := Normalize(c.z, c.r)
		if got != c.want {
			t.Errorf("Normalize(%g, %v) = %g, want %g", c.z, c.r, got, c.want)
		}
	}
}

func TestIndex(t *testing.T) {
	cases := []struct {
		t    float64
		want int
	}{
		{0, 0},
		{0.5, 128},
		{maxNormalized, 253},
		{1, 255},
		{-1, 0},
		{2, 255},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		if got := Index(c.t); got != c.want {
			t.Errorf("Index(%g) = %d, want %d", c.t, got, c.want)
		}
	}

	// Normalized values never reach the last table entry.
	if got := Index(Normalize(1e9, DefaultRange)); got != 253 {
		t.Errorf("index of large value is %d, want 253", got)
	}
}

func TestDegenerateRange(t *testing.T) {
	tab, err := DefaultPalette().Compile(InterpolateSRGB)
	if err != nil {
		t.Fatal(err)
	}
	r := ScalarRange{Min: 5, Max: 5}
	want := tab.ColorOf(5, r)
	for _, z := range []float64{-1, 0, 4.999, 5, 5.001, 1e300, math.NaN(), math.Inf(-1)} {
		if got := tab.ColorOf(z, r); got != want {
			t.Errorf("ColorOf(%g) = %v, want %v", z, got, want)
		}
	}
	if want != tab[0] {
		t.Errorf("degenerate range gives %v, want first table entry %v", want, tab[0])
	}
}

func TestColorOfOpaque(t *testing.T) {
	p := Palette{{Pos: 0, Color: color.NRGBA{R: 10, G: 20, B: 30, A: 0}}}
	tab, err := p.Compile(InterpolateSRGB)
	if err != nil {
		t.Fatal(err)
	}
	got := tab.ColorOf(0.3, DefaultRange)
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if tab.Lookup(0.3).A != 0 {
		t.Errorf("table entry should keep its alpha")
	}
}

func TestTableCache(t *testing.T) {
	var cache TableCache
	p := DefaultPalette()

	t1, err := cache.Get(p, InterpolateSRGB)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := cache.Get(DefaultPalette(), InterpolateSRGB)
	if err != nil {
		t.Fatal(err)
	}
	if t1 != t2 {
		t.Error("identical palette was compiled twice")
	}

	t3, err := cache.Get(p, InterpolateLab)
	if err != nil {
		t.Fatal(err)
	}
	if t3 == t1 {
		t.Error("change of interpolation did not recompile")
	}

	q := append(Palette(nil), p...)
	q[1].Color = blue
	t4, err := cache.Get(q, InterpolateLab)
	if err != nil {
		t.Fatal(err)
	}
	if t4 == t3 || t4[128] == t3[128] {
		t.Error("change of palette did not recompile")
	}

	if _, err := cache.Get(nil, InterpolateSRGB); !errors.Is(err, ErrNoStops) {
		t.Errorf("got %v, want ErrNoStops", err)
	}
	if t5, _ := cache.Get(q, InterpolateLab); t5 != t4 {
		t.Error("failed compilation replaced the cached table")
	}
}

func TestParseInterpolation(t *testing.T) {
	for m := InterpolateSRGB; m <= InterpolateHCL; m++ {
		got, err := ParseInterpolation(m.String())
		if err != nil || got != m {
			t.Errorf("ParseInterpolation(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseInterpolation("cmyk"); err == nil {
		t.Error("unknown interpolation accepted")
	}
}
