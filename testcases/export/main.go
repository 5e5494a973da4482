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

// Command export writes all scenarios to a JSON file, so that they can be
// rendered by other hotline implementations for comparison.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"

	"seehuhn.de/go/hotline"
	"seehuhn.de/go/hotline/testcases"
)

func main() {
	out := flag.String("o", "testdata/scenarios.json", "output file")
	flag.Parse()

	if err := export(*out); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func export(fname string) (err error) {
	var doc struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			doc.Scenarios = append(doc.Scenarios, toJSON(category, sc))
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

type jsonScenario struct {
	Name          string      `json:"name"`
	Width         int         `json:"width"`
	Height        int         `json:"height"`
	Paths         [][][]any   `json:"paths"`
	Palette       []jsonStop  `json:"palette"`
	Interpolation string      `json:"interpolation"`
	Min           float64     `json:"min"`
	Max           float64     `json:"max"`
	Weight        float64     `json:"weight"`
	OutlineWidth  float64     `json:"outline_width"`
	OutlineColor  string      `json:"outline_color"`
	NoClip        bool        `json:"no_clip,omitempty"`
	Round         bool        `json:"round,omitempty"`
	CTM           *[6]float64 `json:"ctm,omitempty"`
}

type jsonStop struct {
	Pos   float64 `json:"pos"`
	Color string  `json:"color"`
}

func toJSON(category string, sc testcases.Scenario) jsonScenario {
	cfg := sc.Config
	js := jsonScenario{
		Name:          category + "_" + sc.Name,
		Width:         sc.Width,
		Height:        sc.Height,
		Interpolation: cfg.Interpolation.String(),
		Min:           cfg.Range.Min,
		Max:           cfg.Range.Max,
		Weight:        cfg.Style.Weight,
		OutlineWidth:  cfg.Style.OutlineWidth,
		OutlineColor:  hexColor(cfg.Style.OutlineColor.R, cfg.Style.OutlineColor.G, cfg.Style.OutlineColor.B, cfg.Style.OutlineColor.A),
		NoClip:        cfg.NoClip,
		Round:         cfg.Round,
	}
	for _, p := range sc.Paths {
		js.Paths = append(js.Paths, pathToJSON(p))
	}
	for _, s := range cfg.Palette {
		js.Palette = append(js.Palette, jsonStop{
			Pos:   s.Pos,
			Color: hexColor(s.Color.R, s.Color.G, s.Color.B, s.Color.A),
		})
	}
	var zero [6]float64
	if m := [6]float64(sc.CTM); m != zero {
		js.CTM = &m
	}
	return js
}

// pathToJSON converts the vertices to [x, y, z] triples.  Scalar values
// which cannot be represented in JSON are written as strings.
func pathToJSON(p hotline.Path) [][]any {
	res := make([][]any, len(p))
	for i, q := range p {
		var z any = q.Z
		if math.IsNaN(q.Z) || math.IsInf(q.Z, 0) {
			z = strconv.FormatFloat(q.Z, 'g', -1, 64)
		}
		res[i] = []any{q.X, q.Y, z}
	}
	return res
}

func hexColor(r, g, b, a uint8) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}
