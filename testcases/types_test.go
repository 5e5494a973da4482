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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/hotline"
)

func TestBounds(t *testing.T) {
	cases := []struct {
		ctm  matrix.Matrix
		want rect.Rect
	}{
		{matrix.Matrix{}, rect.Rect{URx: 100, URy: 50}},
		{matrix.Identity, rect.Rect{URx: 100, URy: 50}},
		{matrix.Scale(2, 2), rect.Rect{URx: 50, URy: 25}},
		{matrix.Translate(10, 5), rect.Rect{LLx: -10, LLy: -5, URx: 90, URy: 45}},
		{matrix.Matrix{1, 0, 0, -1, 0, 50}, rect.Rect{URx: 100, URy: 50}},
	}
	for _, c := range cases {
		s := Scenario{Width: 100, Height: 50, CTM: c.ctm}
		if d := cmp.Diff(c.want, s.Bounds()); d != "" {
			t.Errorf("Bounds with CTM %v (-want +got):\n%s", c.ctm, d)
		}
	}
}

func TestSilhouette(t *testing.T) {
	s := Scenario{
		Width:  100,
		Height: 100,
		Paths: []hotline.Path{
			{pt(10, 10, 0), pt(20, 10, 0), pt(20, 20, 0)},
			{pt(50, 50, 0)},
		},
		Config: config(),
	}

	type step struct {
		Cmd path.Command
		P   vec.Vec2
	}
	var got []step
	for cmd, pts := range s.Silhouette() {
		got = append(got, step{cmd, pts[0]})
	}
	want := []step{
		{path.CmdMoveTo, vec.Vec2{X: 10, Y: 10}},
		{path.CmdLineTo, vec.Vec2{X: 20, Y: 10}},
		{path.CmdMoveTo, vec.Vec2{X: 20, Y: 10}},
		{path.CmdLineTo, vec.Vec2{X: 20, Y: 20}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Silhouette (-want +got):\n%s", d)
	}
}
