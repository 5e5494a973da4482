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

// Package track reads hotline data from CSV files and fits it into a
// canvas.
//
// A track file has a header row.  The coordinates are taken from the
// columns "x" and "y", or from "lon" and "lat" for geographic data.  The
// scalar value is the column "z" or, failing that, the first other
// numeric column.  An optional column "track" splits the rows into
// separate paths.
package track

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/hotline"
)

var (
	errNoColumns = errors.New("coordinate columns not found")
	errNoValue   = errors.New("no value column")
	errNoData    = errors.New("no data rows")
)

// Data is the content of a track file.
type Data struct {
	// Paths holds the tracks in data coordinates.  For geographic data,
	// X is the longitude and Y is the latitude.
	Paths []hotline.Path

	// Geo is set if the coordinates were read from lon/lat columns.
	Geo bool

	// Value is the name of the column used for Z.
	Value string
}

// ReadFile reads a track file from disk.
func ReadFile(name string) (*Data, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

type columns struct {
	x, y, z, track int
}

// Read parses a track file.  Rows with unparsable coordinates are
// skipped.  An unparsable value gives NaN, which is drawn using the
// first palette colour.
func Read(r io.Reader) (*Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errNoData
	} else if err != nil {
		return nil, err
	}
	cols, geo, err := findColumns(header)
	if err != nil {
		return nil, err
	}
	d := &Data{Geo: geo, Value: strings.TrimSpace(header[cols.z])}

	var cur hotline.Path
	curTrack := ""
	skipped := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if cols.track >= 0 && cols.track < len(row) {
			id := strings.TrimSpace(row[cols.track])
			if id != curTrack && len(cur) > 0 {
				d.Paths = append(d.Paths, cur)
				cur = nil
			}
			curTrack = id
		}

		x, okX := field(row, cols.x)
		y, okY := field(row, cols.y)
		if !okX || !okY {
			skipped++
			continue
		}
		z, ok := field(row, cols.z)
		if !ok {
			z = math.NaN()
		}
		cur = append(cur, hotline.Pt(x, y, z))
	}
	if len(cur) > 0 {
		d.Paths = append(d.Paths, cur)
	}
	if len(d.Paths) == 0 {
		return nil, errNoData
	}

	hotline.Logger().Debug("track loaded",
		"paths", len(d.Paths),
		"geo", geo,
		"value", d.Value,
		"skipped", skipped)
	return d, nil
}

func findColumns(header []string) (columns, bool, error) {
	cols := columns{x: -1, y: -1, z: -1, track: -1}
	lon, lat := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x":
			cols.x = first(cols.x, i)
		case "y":
			cols.y = first(cols.y, i)
		case "z":
			cols.z = first(cols.z, i)
		case "lon", "lng", "long", "longitude":
			lon = first(lon, i)
		case "lat", "latitude":
			lat = first(lat, i)
		case "track", "id", "segment":
			cols.track = first(cols.track, i)
		}
	}

	geo := false
	if cols.x < 0 || cols.y < 0 {
		if lon < 0 || lat < 0 {
			return cols, false, errNoColumns
		}
		cols.x, cols.y = lon, lat
		geo = true
	}
	if cols.z < 0 {
		for i := range header {
			if i != cols.x && i != cols.y && i != cols.track && i != lon && i != lat {
				cols.z = i
				break
			}
		}
	}
	if cols.z < 0 {
		return cols, geo, errNoValue
	}
	return cols, geo, nil
}

func first(cur, i int) int {
	if cur < 0 {
		return i
	}
	return cur
}

func field(row []string, i int) (float64, bool) {
	if i >= len(row) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Project converts geographic coordinates into a plane, using an
// equirectangular projection centred on the data.  For non-geographic
// data the paths are returned unchanged.
func (d *Data) Project() []hotline.Path {
	if !d.Geo {
		return d.Paths
	}
	ext := Extent(d.Paths)
	k := math.Cos((ext.LLy + ext.URy) / 2 * math.Pi / 180)

	res := make([]hotline.Path, len(d.Paths))
	for i, p := range d.Paths {
		q := make(hotline.Path, len(p))
		for j, pt := range p {
			q[j] = hotline.Pt(pt.X*k, pt.Y, pt.Z)
		}
		res[i] = q
	}
	return res
}

// Extent returns the bounding box of all points in paths.
func Extent(paths []hotline.Path) rect.Rect {
	ext := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range paths {
		for _, pt := range p {
			ext.LLx = min(ext.LLx, pt.X)
			ext.LLy = min(ext.LLy, pt.Y)
			ext.URx = max(ext.URx, pt.X)
			ext.URy = max(ext.URy, pt.Y)
		}
	}
	if ext.LLx > ext.URx {
		return rect.Rect{}
	}
	return ext
}

// Range returns the smallest and largest finite Z value in paths.
// If there are no finite values, [hotline.DefaultRange] is returned.
func Range(paths []hotline.Path) hotline.ScalarRange {
	r := hotline.ScalarRange{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, p := range paths {
		for _, pt := range p {
			if math.IsNaN(pt.Z) || math.IsInf(pt.Z, 0) {
				continue
			}
			r.Min = min(r.Min, pt.Z)
			r.Max = max(r.Max, pt.Z)
		}
	}
	if r.Min > r.Max {
		return hotline.DefaultRange
	}
	return r
}

// Fit returns the transformation which maps ext into a canvas of the
// given size, keeping a margin on all sides.  The aspect ratio is
// preserved, the result is centred, and the y-axis is flipped so that
// larger y values appear at the top.
func Fit(ext rect.Rect, width, height, margin float64) matrix.Matrix {
	w := max(width-2*margin, 1)
	h := max(height-2*margin, 1)
	dx := ext.URx - ext.LLx
	dy := ext.URy - ext.LLy

	var s float64
	switch {
	case dx > 0 && dy > 0:
		s = min(w/dx, h/dy)
	case dx > 0:
		s = w / dx
	case dy > 0:
		s = h / dy
	default:
		s = 1
	}

	cx := (ext.LLx + ext.URx) / 2
	cy := (ext.LLy + ext.URy) / 2
	return matrix.Matrix{
		s, 0,
		0, -s,
		width/2 - s*cx,
		height/2 + s*cy,
	}
}

// Transform applies m to the coordinates of all points in paths.
func Transform(paths []hotline.Path, m matrix.Matrix) []hotline.Path {
	res := make([]hotline.Path, len(paths))
	for i, p := range paths {
		q := make(hotline.Path, len(p))
		for j, pt := range p {
			x, y := m.Apply(pt.X, pt.Y)
			q[j] = hotline.Pt(x, y, pt.Z)
		}
		res[i] = q
	}
	return res
}
