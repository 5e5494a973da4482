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

package hotline_test

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/hotline"
	"seehuhn.de/go/hotline/record"
)

var (
	green = color.NRGBA{G: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

func greenRed(t *testing.T) *hotline.Table {
	t.Helper()
	pal := hotline.Palette{{Pos: 0, Color: green}, {Pos: 1, Color: red}}
	tab, err := pal.Compile(hotline.InterpolateSRGB)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestDrawSingleSegment(t *testing.T) {
	tab := greenRed(t)
	style := hotline.DefaultStyle()
	style.OutlineWidth = 0
	opt := hotline.Options{Style: style, Range: hotline.DefaultRange, Table: tab}

	bounds := rect.Rect{LLx: -100, LLy: -100, URx: 100, URy: 100}
	parts := hotline.Clip(hotline.Path{hotline.Pt(0, 0, 0), hotline.Pt(10, 0, 1)}, bounds)

	rec := &record.Recorder{}
	var r hotline.Renderer
	r.Draw(rec, "a", parts, opt)

	want := []record.Op{
		{Kind: record.BeginStroke},
		{Kind: record.MoveTo, Point: vec.Vec2{X: 0, Y: 0}},
		{Kind: record.LineTo, Point: vec.Vec2{X: 10, Y: 0}},
		{
			Kind: record.StrokeGradient,
			P0:   vec.Vec2{X: 0, Y: 0},
			P1:   vec.Vec2{X: 10, Y: 0},
			Stops: []hotline.GradientStop{
				{Offset: 0, Color: tab[0]},
				{Offset: 1, Color: tab[253]},
			},
			Style: hotline.StrokeStyle{Width: 5, Cap: graphics.LineCapRound},
		},
	}
	if d := cmp.Diff(want, rec.Ops); d != "" {
		t.Errorf("unexpected operations (-want +got):\n%s", d)
	}

	// The upper end of the range never reaches the last palette entry.
	end := rec.Ops[3].Stops[1].Color
	if end == red {
		t.Errorf("end colour is the pure last stop %v", end)
	}
	if end.A != 255 {
		t.Errorf("end colour is not opaque: %v", end)
	}
}

func TestDrawOutlineFirst(t *testing.T) {
	style := hotline.Style{Weight: 4, OutlineWidth: 2, OutlineColor: color.NRGBA{B: 80, A: 255}}
	opt := hotline.Options{Style: style, Range: hotline.DefaultRange}
	parts := []hotline.Path{
		{hotline.Pt(0, 0, 0), hotline.Pt(10, 0, 0.5), hotline.Pt(10, 10, 1)},
		{hotline.Pt(50, 50, 1), hotline.Pt(60, 50, 0)},
	}

	rec := &record.Recorder{}
	var r hotline.Renderer
	r.Draw(rec, "a", parts, opt)

	solid := rec.Filter(record.StrokeSolid)
	grad := rec.Filter(record.StrokeGradient)
	if len(solid) != 3 || len(grad) != 3 {
		t.Fatalf("got %d outline and %d gradient strokes, want 3 and 3", len(solid), len(grad))
	}
	for _, op := range solid {
		want := hotline.StrokeStyle{Width: 8, Cap: graphics.LineCapRound}
		if op.Style != want {
			t.Errorf("outline style %v, want %v", op.Style, want)
		}
		if op.Color != style.OutlineColor {
			t.Errorf("outline colour %v, want %v", op.Color, style.OutlineColor)
		}
	}

	// All outline strokes come before all gradient strokes.
	seenGradient := false
	for _, op := range rec.Ops {
		switch op.Kind {
		case record.StrokeGradient:
			seenGradient = true
		case record.StrokeSolid:
			if seenGradient {
				t.Fatal("outline stroke after gradient stroke")
			}
		}
	}

	if w := r.Width("a", 0); w != 8 {
		t.Errorf("recorded width %g, want 8", w)
	}
	if w := r.Width("a", 1); w != 8 {
		t.Errorf("recorded width %g, want 8", w)
	}
}

func TestDrawNoOutline(t *testing.T) {
	style := hotline.DefaultStyle()
	style.OutlineWidth = 0
	opt := hotline.Options{Style: style, Range: hotline.DefaultRange}
	parts := []hotline.Path{{hotline.Pt(0, 0, 0), hotline.Pt(10, 0, 1), hotline.Pt(20, 5, 0)}}

	rec := &record.Recorder{}
	var r hotline.Renderer
	r.Draw(rec, "a", parts, opt)

	if n := rec.Count(record.StrokeSolid); n != 0 {
		t.Errorf("got %d outline strokes, want 0", n)
	}
	if n := rec.Count(record.StrokeGradient); n != 2 {
		t.Errorf("got %d gradient strokes, want 2", n)
	}
	if n := rec.Count(record.BeginStroke); n != 2 {
		t.Errorf("got %d strokes, want 2", n)
	}
}

func TestEraseGrows(t *testing.T) {
	style := hotline.Style{Weight: 6, OutlineWidth: 1, OutlineColor: color.NRGBA{A: 255}}
	opt := hotline.Options{Style: style, Range: hotline.DefaultRange}
	parts := []hotline.Path{{hotline.Pt(0, 0, 0), hotline.Pt(10, 0, 1)}}

	var r hotline.Renderer
	eraseWidth := func() float64 {
		rec := &record.Recorder{}
		r.Erase(rec, "a", parts, opt)
		if n := rec.Count(record.StrokeGradient); n != 0 {
			t.Errorf("erase issued %d gradient strokes", n)
		}
		ops := rec.Filter(record.StrokeSolid)
		if len(ops) != 1 {
			t.Fatalf("erase issued %d strokes, want 1", len(ops))
		}
		if !ops[0].Style.Erase {
			t.Error("erase stroke does not have the Erase flag")
		}
		return ops[0].Style.Width
	}

	// Without a previous draw, the first erase is one unit wider than the
	// outline.
	for i, want := range []float64{9, 10, 11} {
		if got := eraseWidth(); got != want {
			t.Errorf("erase %d: width %g, want %g", i, got, want)
		}
	}

	// Drawing resets the recorded width.
	r.Draw(&record.Recorder{}, "a", parts, opt)
	if w := r.Width("a", 0); w != 8 {
		t.Errorf("width after draw is %g, want 8", w)
	}
	if got := eraseWidth(); got != 9 {
		t.Errorf("erase after draw: width %g, want 9", got)
	}
	if got := eraseWidth(); got != 10 {
		t.Errorf("second erase after draw: width %g, want 10", got)
	}

	r.Forget("a")
	if w := r.Width("a", 0); w != 0 {
		t.Errorf("width after Forget is %g, want 0", w)
	}
	if got := eraseWidth(); got != 9 {
		t.Errorf("erase after Forget: width %g, want 9", got)
	}
}

func TestErasePathsIndependent(t *testing.T) {
	opt := hotline.Options{Style: hotline.DefaultStyle(), Range: hotline.DefaultRange}
	parts := []hotline.Path{{hotline.Pt(0, 0, 0), hotline.Pt(10, 0, 1)}}

	var r hotline.Renderer
	r.Erase(&record.Recorder{}, "a", parts, opt)
	r.Erase(&record.Recorder{}, "a", parts, opt)
	r.Erase(&record.Recorder{}, "b", parts, opt)

	if w := r.Width("a", 0); w != 9 {
		t.Errorf("width of a is %g, want 9", w)
	}
	if w := r.Width("b", 0); w != 8 {
		t.Errorf("width of b is %g, want 8", w)
	}
	if w := r.Width("a", 5); w != 0 {
		t.Errorf("width of missing part is %g, want 0", w)
	}
}

func TestClickTolerance(t *testing.T) {
	s := hotline.DefaultStyle()
	if got := s.ClickTolerance(); got != 3.5 {
		t.Errorf("click tolerance %g, want 3.5", got)
	}
}
