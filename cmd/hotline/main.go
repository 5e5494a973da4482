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

// Command hotline renders tracks from CSV files to a PNG image.
//
// Usage:
//
//	hotline [flags] track.csv...
//
// Every input file is drawn as a separate layer, in the order given.
// See package seehuhn.de/go/hotline/internal/track for the file format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/hotline"
	"seehuhn.de/go/hotline/canvas"
	"seehuhn.de/go/hotline/ggsurface"
	"seehuhn.de/go/hotline/internal/track"
)

type options struct {
	backend    string
	palette    string
	interp     string
	min, max   float64
	weight     float64
	outline    float64
	outlineCol string
	background string
	width      int
	height     int
	margin     float64
	out        string
	round      bool
	verbose    bool
}

func main() {
	var opt options
	flag.StringVar(&opt.backend, "backend", "canvas", "rendering backend (canvas or gg)")
	flag.StringVar(&opt.palette, "palette", "", `palette, for example "0:green,0.5:yellow,1:red"`)
	flag.StringVar(&opt.interp, "interp", "srgb", "palette interpolation (srgb, linear, lab or hcl)")
	flag.Float64Var(&opt.min, "min", math.NaN(), "value mapped to the start of the palette (default: data minimum)")
	flag.Float64Var(&opt.max, "max", math.NaN(), "value mapped to the end of the palette (default: data maximum)")
	flag.Float64Var(&opt.weight, "weight", hotline.DefaultWeight, "line width in pixels")
	flag.Float64Var(&opt.outline, "outline", hotline.DefaultOutlineWidth, "outline width in pixels")
	flag.StringVar(&opt.outlineCol, "outline-color", "black", "outline colour")
	flag.StringVar(&opt.background, "bg", "white", "background colour")
	flag.IntVar(&opt.width, "w", 800, "image width in pixels")
	flag.IntVar(&opt.height, "h", 600, "image height in pixels")
	flag.Float64Var(&opt.margin, "margin", 20, "margin around the data in pixels")
	flag.StringVar(&opt.out, "o", "hotline.png", "output file")
	flag.BoolVar(&opt.round, "round", false, "round clipped end points to whole pixels")
	flag.BoolVar(&opt.verbose, "v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	hotline.SetLogger(logger)

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hotline [flags] track.csv...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(opt, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "hotline:", err)
		os.Exit(1)
	}
}

func run(opt options, files []string) error {
	if opt.width <= 0 || opt.height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", opt.width, opt.height)
	}

	cfg, bg, err := buildConfig(opt)
	if err != nil {
		return err
	}

	var tracks [][]hotline.Path
	var all []hotline.Path
	for _, name := range files {
		d, err := track.ReadFile(name)
		if err != nil {
			return err
		}
		paths := d.Project()
		tracks = append(tracks, paths)
		all = append(all, paths...)
	}

	if math.IsNaN(opt.min) || math.IsNaN(opt.max) {
		r := track.Range(all)
		if math.IsNaN(opt.min) {
			cfg.Range.Min = r.Min
		}
		if math.IsNaN(opt.max) {
			cfg.Range.Max = r.Max
		}
	}

	w, h := float64(opt.width), float64(opt.height)
	m := track.Fit(track.Extent(all), w, h, opt.margin)
	bounds := rect.Rect{URx: w, URy: h}

	s, save := newSurface(opt, bg)
	r := &hotline.Renderer{}
	for i, paths := range tracks {
		l, err := hotline.NewLayer(files[i], r, cfg)
		if err != nil {
			return err
		}
		l.SetData(track.Transform(paths, m))
		if err := l.Render(s, bounds); err != nil {
			return fmt.Errorf("%s: %w", files[i], err)
		}
		slog.Debug("layer drawn", "file", files[i], "parts", len(l.Parts()))
	}

	if err := save(opt.out); err != nil {
		return err
	}
	slog.Info("image written",
		"file", opt.out,
		"backend", opt.backend,
		"range", strconv.FormatFloat(cfg.Range.Min, 'g', 6, 64)+".."+strconv.FormatFloat(cfg.Range.Max, 'g', 6, 64))
	return nil
}

func buildConfig(opt options) (hotline.Config, color.NRGBA, error) {
	cfg := hotline.DefaultConfig()
	cfg.Round = opt.round
	cfg.Style.Weight = opt.weight
	cfg.Style.OutlineWidth = opt.outline

	if opt.palette != "" {
		pal, err := hotline.ParsePaletteSpec(opt.palette)
		if err != nil {
			return cfg, color.NRGBA{}, err
		}
		cfg.Palette = pal
	}
	mode, err := hotline.ParseInterpolation(opt.interp)
	if err != nil {
		return cfg, color.NRGBA{}, err
	}
	cfg.Interpolation = mode

	cfg.Style.OutlineColor, err = hotline.ParseColor(opt.outlineCol)
	if err != nil {
		return cfg, color.NRGBA{}, &hotline.ConfigError{Field: "outline-color", Err: err}
	}
	bg, err := hotline.ParseColor(opt.background)
	if err != nil {
		return cfg, color.NRGBA{}, &hotline.ConfigError{Field: "bg", Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, color.NRGBA{}, err
	}
	return cfg, bg, nil
}

// newSurface returns the drawing surface for the selected backend, and a
// function which writes the result to a PNG file.
func newSurface(opt options, bg color.NRGBA) (hotline.Surface, func(string) error) {
	if opt.backend == "gg" {
		ctx := gg.NewContext(opt.width, opt.height)
		s := ggsurface.New(ctx, bg)
		s.Clear()
		return s, ctx.SavePNG
	}

	if opt.backend != "canvas" {
		slog.Warn("unknown backend, using canvas", "backend", opt.backend)
	}
	c := canvas.New(opt.width, opt.height)
	if bg.A > 0 {
		fill(c, bg)
	}
	return c, func(name string) error {
		return writePNG(name, c)
	}
}

// fill sets every pixel of the canvas to bg.
func fill(c *canvas.Canvas, bg color.NRGBA) {
	img := c.Image()
	r, g, b, a := bg.RGBA()
	px := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, px)
		}
	}
}

func writePNG(name string, c *canvas.Canvas) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return png.Encode(f, c.Image())
}
