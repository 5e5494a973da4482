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

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/hotline/testcases"
)

// TestAgainstReference compares the area covered by each scenario with a
// reference image generated by testcases/genpdf.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image, run testcases/genpdf")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				w, h := sc.Width, sc.Height
				actual := make([]byte, w*h)
				renderScenario(sc, actual, w, h, w)

				if err := compareImages(name, ref, actual, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// renderScenario renders the area covered by the outline pass of a
// scenario into a grayscale buffer.
func renderScenario(sc testcases.Scenario, buf []byte, width, height, stride int) {
	r := New(rect.Rect{URx: float64(width), URy: float64(height)})
	if sc.CTM != (matrix.Matrix{}) {
		r.CTM = sc.CTM
	}
	r.Width = sc.OutlineWidth()
	r.Cap = graphics.LineCapRound

	r.Stroke(sc.Silhouette(), func(y, xMin int, coverage []float32) {
		row := buf[y*stride:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*256))))
		}
	})
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	gray = make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages accepts small anti-aliasing differences: at least 80% of
// the pixels must be identical, 95% must differ by less than 64 and 99%
// by less than 128.
func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h
	diffs := make([]int, total)
	for i := range total {
		d := int(expected[i]) - int(actual[i])
		if d < 0 {
			d = -d
		}
		diffs[i] = d
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return errors.New(strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes a 3-panel image to debug/: actual output, the
// difference (green where too light, red where too dark) and the
// reference.
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			a, e := actual[i], expected[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			var dc color.RGBA
			switch d := int(e) - int(a); {
			case d > 0:
				dc = color.RGBA{G: uint8(d), A: 255}
			case d < 0:
				dc = color.RGBA{R: uint8(-d), A: 255}
			default:
				dc = color.RGBA{A: 255}
			}
			img.Set(x+w, y, dc)

			img.Set(x+2*w, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&Buffer{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := New(rect.Rect{URx: 10, URy: 1})
	coverage := make([]float32, 10)
	r.Fill(triangle.Path(), func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

// TestStrokeArea checks that the total coverage of a stroked segment
// matches the area of the stroke.
func TestStrokeArea(t *testing.T) {
	const (
		length = 40.0
		width  = 8.0
	)
	d := width / 2
	cases := []struct {
		cap  graphics.LineCapStyle
		area float64
		tol  float64
	}{
		{graphics.LineCapButt, length * width, 0.01},
		{graphics.LineCapSquare, (length + width) * width, 0.01},
		{graphics.LineCapRound, length*width + math.Pi*d*d, 0.5},
	}
	for _, c := range cases {
		for _, angle := range []float64{0, 30, 90} {
			t.Run(fmt.Sprintf("%s_%g", c.cap, angle), func(t *testing.T) {
				r := New(rect.Rect{URx: 64, URy: 64})
				r.CTM = matrix.RotateDeg(angle).Translate(32, 32)
				r.Width = width
				r.Cap = c.cap
				r.Flatness = 0.01

				line := (&Buffer{}).
					MoveTo(vec.Vec2{X: -length / 2}).
					LineTo(vec.Vec2{X: length / 2})
				total := 0.0
				r.Stroke(line.Path(), func(y, xMin int, cov []float32) {
					for _, v := range cov {
						total += float64(v)
					}
				})

				if math.Abs(total-c.area) > c.tol {
					t.Errorf("total coverage %.4f, want %.4f", total, c.area)
				}
			})
		}
	}
}

// TestStrokeOverlap checks that overlapping segments are painted once.
func TestStrokeOverlap(t *testing.T) {
	r := New(rect.Rect{URx: 64, URy: 32})
	r.Width = 6
	r.Cap = graphics.LineCapRound

	twice := (&Buffer{}).
		MoveTo(vec.Vec2{X: 10, Y: 16}).LineTo(vec.Vec2{X: 50, Y: 16}).
		MoveTo(vec.Vec2{X: 10, Y: 16}).LineTo(vec.Vec2{X: 50, Y: 16})
	r.Stroke(twice.Path(), func(y, xMin int, cov []float32) {
		for i, v := range cov {
			if v > 1+1e-6 {
				t.Fatalf("pixel (%d,%d) has coverage %g", xMin+i, y, v)
			}
		}
	})
}

// TestStrokeDot checks that isolated points are drawn only with round caps.
func TestStrokeDot(t *testing.T) {
	dot := (&Buffer{}).MoveTo(vec.Vec2{X: 16, Y: 16})
	for _, cp := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound} {
		r := New(rect.Rect{URx: 32, URy: 32})
		r.Width = 10
		r.Cap = cp
		r.Flatness = 0.01

		total := 0.0
		r.Stroke(dot.Path(), func(y, xMin int, cov []float32) {
			for _, v := range cov {
				total += float64(v)
			}
		})

		want := 0.0
		if cp == graphics.LineCapRound {
			want = math.Pi * 25
		}
		if math.Abs(total-want) > 0.5 {
			t.Errorf("%s: total coverage %.3f, want %.3f", cp, total, want)
		}
	}
}

// TestStrokeDotInsideSegment checks that a dot from a zero-length segment
// does not cut a hole into an overlapping segment.
func TestStrokeDotInsideSegment(t *testing.T) {
	p := (&Buffer{}).
		MoveTo(vec.Vec2{X: 16, Y: 16}).LineTo(vec.Vec2{X: 16, Y: 16}).
		MoveTo(vec.Vec2{X: 10, Y: 16}).LineTo(vec.Vec2{X: 22, Y: 16})
	r := New(rect.Rect{URx: 32, URy: 32})
	r.Width = 10
	r.Cap = graphics.LineCapRound
	r.Flatness = 0.01

	total := 0.0
	r.Stroke(p.Path(), func(y, xMin int, cov []float32) {
		for _, v := range cov {
			total += float64(v)
		}
	})
	want := 12*10 + math.Pi*25
	if math.Abs(total-want) > 0.5 {
		t.Errorf("total coverage %.3f, want %.3f", total, want)
	}
}

// TestClip checks that no coverage is emitted outside the clip rectangle.
func TestClip(t *testing.T) {
	clip := rect.Rect{LLx: 8, LLy: 4, URx: 24, URy: 20}
	r := New(clip)
	r.Width = 12
	r.Cap = graphics.LineCapRound

	line := (&Buffer{}).MoveTo(vec.Vec2{X: -10, Y: 12}).LineTo(vec.Vec2{X: 40, Y: 12})
	rows := 0
	r.Stroke(line.Path(), func(y, xMin int, cov []float32) {
		rows++
		if y < 4 || y >= 20 {
			t.Errorf("row %d outside clip", y)
		}
		if xMin < 8 || xMin+len(cov) > 24 {
			t.Errorf("row %d: columns [%d, %d) outside clip", y, xMin, xMin+len(cov))
		}
		if y >= 8 && y < 16 {
			for i, v := range cov {
				if math.Abs(float64(v)-1) > 1e-6 {
					t.Errorf("pixel (%d,%d): coverage %g, want 1", xMin+i, y, v)
				}
			}
		}
	})
	if rows != 12 {
		t.Errorf("got %d rows, want 12", rows)
	}
}

// BenchmarkStrokeScenarios measures steady-state performance by reusing a
// single Rasterizer for the outlines of all scenarios.
func BenchmarkStrokeScenarios(b *testing.B) {
	var cases []testcases.Scenario
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}
	outlines := make([]path.Path, len(cases))
	for i, sc := range cases {
		outlines[i] = sc.Silhouette()
	}

	r := New(rect.Rect{})
	r.Cap = graphics.LineCapRound
	emit := func(y, xMin int, coverage []float32) {}

	for b.Loop() {
		for i, sc := range cases {
			r.Clip = rect.Rect{URx: float64(sc.Width), URy: float64(sc.Height)}
			if sc.CTM != (matrix.Matrix{}) {
				r.CTM = sc.CTM
			} else {
				r.CTM = matrix.Identity
			}
			r.Width = sc.OutlineWidth()
			r.Stroke(outlines[i], emit)
		}
	}
}
