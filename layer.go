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
	"math"

	"seehuhn.de/go/geom/rect"
)

// Config collects all settings of a [Layer].
type Config struct {
	Palette       Palette
	Interpolation Interpolation
	Range         ScalarRange
	Style         Style

	// NoClip disables clipping.  This can be faster for small paths
	// which are known to be visible.
	NoClip bool

	// Round rounds the coordinates of clipped end points to whole
	// device units.
	Round bool
}

// DefaultConfig returns the default settings: a green-yellow-red palette
// for values between 0 and 1, drawn 5 units wide with a black outline.
func DefaultConfig() Config {
	return Config{
		Palette:       DefaultPalette(),
		Interpolation: InterpolateSRGB,
		Range:         DefaultRange,
		Style:         DefaultStyle(),
	}
}

// Validate checks c for settings which cannot be rendered.
// The returned error, if any, is a [*ConfigError].
func (c *Config) Validate() error {
	if len(c.Palette) == 0 {
		return &ConfigError{Field: "palette", Err: ErrNoStops}
	}
	if !validWidth(c.Style.Weight) {
		return &ConfigError{Field: "style.weight", Err: ErrNegative}
	}
	if !validWidth(c.Style.OutlineWidth) {
		return &ConfigError{Field: "style.outline", Err: ErrNegative}
	}
	return nil
}

func validWidth(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0)
}

// Layer is a set of paths which are drawn with a common configuration.
//
// The layer remembers which parts were drawn last, so that they can be
// removed again using Erase.
type Layer struct {
	id    string
	cfg   Config
	paths []Path
	drawn []Path

	r     *Renderer
	cache TableCache
	clip  Clipper
}

// NewLayer creates a new layer.  The id identifies the layer's paths
// inside r.  If r is nil, the layer uses a private renderer.
func NewLayer(id string, r *Renderer, cfg Config) (*Layer, error) {
	if r == nil {
		r = &Renderer{}
	}
	l := &Layer{id: id, r: r}
	if err := l.SetConfig(cfg); err != nil {
		return nil, err
	}
	return l, nil
}

// SetConfig replaces the configuration of the layer.
// On error, the previous configuration is kept.
func (l *Layer) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := l.cache.Get(cfg.Palette, cfg.Interpolation); err != nil {
		return err
	}
	l.cfg = cfg
	l.clip.Round = cfg.Round
	return nil
}

// Config returns the current configuration of the layer.
func (l *Layer) Config() Config {
	return l.cfg
}

// SetData replaces all paths of the layer.
func (l *Layer) SetData(paths []Path) {
	l.paths = paths
}

// Add appends a path to the layer.
func (l *Layer) Add(p Path) {
	l.paths = append(l.paths, p)
}

// ClearData removes all paths from the layer.
// Parts which were already drawn can still be erased.
func (l *Layer) ClearData() {
	l.paths = nil
}

// Remove discards the paths of the layer together with all state the
// renderer keeps for them.
func (l *Layer) Remove() {
	l.paths = nil
	l.drawn = nil
	l.r.Forget(l.id)
}

// Paths returns the paths of the layer.
func (l *Layer) Paths() []Path {
	return l.paths
}

// Parts returns the parts drawn by the most recent call to Render.
func (l *Layer) Parts() []Path {
	return l.drawn
}

// Render clips the paths of the layer to bounds and draws the visible
// parts onto s.  Nothing is drawn if no part is visible.
func (l *Layer) Render(s Surface, bounds rect.Rect) error {
	tab, err := l.cache.Get(l.cfg.Palette, l.cfg.Interpolation)
	if err != nil {
		return err
	}

	var parts []Path
	if l.cfg.NoClip {
		for _, p := range l.paths {
			if len(p) >= 2 {
				parts = append(parts, p)
			}
		}
	} else {
		parts = l.clip.ClipAll(l.paths, bounds)
	}
	l.drawn = parts
	if len(parts) == 0 {
		return nil
	}

	l.r.Draw(s, l.id, parts, l.options(tab))
	return nil
}

// Erase removes the parts drawn by the most recent call to Render.
func (l *Layer) Erase(s Surface) {
	if len(l.drawn) == 0 {
		return
	}
	l.r.Erase(s, l.id, l.drawn, l.options(nil))
}

// Clear fills bounds on s with transparent pixels and forgets the drawn
// parts, so that a following Erase does nothing.  If clearData is set,
// the paths of the layer are removed as well.
func (l *Layer) Clear(s Surface, bounds rect.Rect, clearData bool) {
	s.ClearRegion(bounds)
	l.drawn = nil
	l.r.Forget(l.id)
	if clearData {
		l.paths = nil
	}
}

func (l *Layer) options(tab *Table) Options {
	return Options{
		Style: l.cfg.Style,
		Range: l.cfg.Range,
		Table: tab,
	}
}
