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

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/hotline"
	"seehuhn.de/go/hotline/canvas"
	"seehuhn.de/go/hotline/internal/track"
)

const (
	maxZoom = 256
	minZoom = 0.25
	panStep = 0.1 // fraction of the view width
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

type keyMap struct {
	Up, Down, Left, Right key.Binding
	ZoomIn, ZoomOut       key.Binding
	Reset                 key.Binding
	Outline               key.Binding
	Interp                key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ZoomIn, k.ZoomOut, k.Reset},
		{k.Outline, k.Interp},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pan up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pan down")),
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan left")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan right")),
	ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
	ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
	Reset:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset view")),
	Outline: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle outline")),
	Interp:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "interpolation")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// view describes the visible part of the data.
type view struct {
	cx, cy float64 // centre, in data coordinates
	zoom   float64
}

type model struct {
	name  string
	paths []hotline.Path // projected data coordinates
	ext   rect.Rect

	layer *hotline.Layer
	cv    *canvas.Canvas
	view  view

	width, height int
	help          help.Model
	status        string

	// wipe requests that the next draw clears the canvas instead of
	// erasing the previous drawing.
	wipe bool
}

func newModel(name string, paths []hotline.Path, cfg hotline.Config) (*model, error) {
	l, err := hotline.NewLayer(name, nil, cfg)
	if err != nil {
		return nil, err
	}
	m := &model{
		name:  name,
		paths: paths,
		ext:   track.Extent(paths),
		layer: l,
		help:  help.New(),
	}
	m.resetView()
	return m, nil
}

func (m *model) resetView() {
	m.view = view{
		cx:   (m.ext.LLx + m.ext.URx) / 2,
		cy:   (m.ext.LLy + m.ext.URy) / 2,
		zoom: 1,
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.cv = nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.zoomBy(1.2)
		case tea.MouseButtonWheelDown:
			m.zoomBy(1 / 1.2)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.pan(0, 1)
		case key.Matches(msg, keys.Down):
			m.pan(0, -1)
		case key.Matches(msg, keys.Left):
			m.pan(-1, 0)
		case key.Matches(msg, keys.Right):
			m.pan(1, 0)
		case key.Matches(msg, keys.ZoomIn):
			m.zoomBy(1.2)
		case key.Matches(msg, keys.ZoomOut):
			m.zoomBy(1 / 1.2)
		case key.Matches(msg, keys.Reset):
			m.resetView()
			m.wipe = true
			m.status = "view reset"
		case key.Matches(msg, keys.Outline):
			cfg := m.layer.Config()
			if cfg.Style.OutlineWidth > 0 {
				cfg.Style.OutlineWidth = 0
			} else {
				cfg.Style.OutlineWidth = hotline.DefaultOutlineWidth
			}
			m.setConfig(cfg)
		case key.Matches(msg, keys.Interp):
			cfg := m.layer.Config()
			cfg.Interpolation = (cfg.Interpolation + 1) % (hotline.InterpolateHCL + 1)
			m.setConfig(cfg)
			m.status = "interpolation: " + cfg.Interpolation.String()
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	if m.width > 0 && m.height > 0 {
		m.draw()
	}
	return m, nil
}

func (m *model) setConfig(cfg hotline.Config) {
	if err := m.layer.SetConfig(cfg); err != nil {
		m.status = err.Error()
	}
}

func (m *model) zoomBy(f float64) {
	m.view.zoom = min(max(m.view.zoom*f, minZoom), maxZoom)
	m.status = fmt.Sprintf("zoom %.2fx", m.view.zoom)
}

// pan moves the view by one step in the given direction.  The step is
// measured in screen space, so that it does not depend on the zoom level.
func (m *model) pan(dx, dy float64) {
	pw, ph := m.pixelSize()
	s := m.scale(pw, ph)
	if !(s > 0) {
		return
	}
	step := panStep * float64(pw) / s
	m.view.cx += dx * step
	m.view.cy += dy * step
}

func (m *model) mapSize() (int, int) {
	footer := lipgloss.Height(m.help.View(keys)) + 1
	return max(m.width, 1), max(m.height-1-footer, 1)
}

// pixelSize returns the size of the map area in braille dots.
func (m *model) pixelSize() (int, int) {
	w, h := m.mapSize()
	return 2 * w, 4 * h
}

// scale returns the number of pixels per data unit.
func (m *model) scale(pw, ph int) float64 {
	base := track.Fit(m.ext, float64(pw), float64(ph), 2)
	return base[0] * m.view.zoom
}

// matrix maps data coordinates to canvas pixels.
func (m *model) matrix(pw, ph int) matrix.Matrix {
	s := m.scale(pw, ph)
	return matrix.Matrix{
		s, 0,
		0, -s,
		float64(pw)/2 - s*m.view.cx,
		float64(ph)/2 + s*m.view.cy,
	}
}

// draw brings the canvas up to date with the current view.  Normally the
// previous drawing is erased, instead of clearing the whole canvas.
func (m *model) draw() {
	pw, ph := m.pixelSize()
	bounds := rect.Rect{URx: float64(pw), URy: float64(ph)}
	switch {
	case m.cv == nil || m.cv.Image().Bounds().Dx() != pw || m.cv.Image().Bounds().Dy() != ph:
		m.cv = canvas.New(pw, ph)
	case m.wipe:
		m.layer.Clear(m.cv, bounds, false)
	default:
		m.layer.Erase(m.cv)
	}
	m.wipe = false
	m.layer.SetData(track.Transform(m.paths, m.matrix(pw, ph)))
	if err := m.layer.Render(m.cv, bounds); err != nil {
		m.status = err.Error()
	}
}

func (m *model) View() string {
	if m.cv == nil {
		return ""
	}

	w, h := m.mapSize()
	header := titleStyle.Render(" hotview ─ " + filepath.Base(m.name) + " ")
	body := strings.Join(brailleLines(m.cv.Image(), w, h), "\n")

	cfg := m.layer.Config()
	info := fmt.Sprintf(" %d parts  range %g..%g  zoom %.2fx ",
		len(m.layer.Parts()), cfg.Range.Min, cfg.Range.Max, m.view.zoom)
	if m.status != "" {
		info += " " + m.status
	}
	status := statusStyle.Render(info)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, m.help.View(keys))
}
