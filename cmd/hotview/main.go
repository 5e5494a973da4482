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

// Command hotview shows tracks from CSV files in the terminal.
//
// The tracks are drawn with braille characters, coloured by the scalar
// value along each track.  The arrow keys pan the view and +/- zoom.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/hotline"
	"seehuhn.de/go/hotline/internal/track"
)

func main() {
	palette := flag.String("palette", "", `palette, for example "0:green,0.5:yellow,1:red"`)
	logFile := flag.String("log", "", "write debug log to this file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hotview [flags] track.csv")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "hotview")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		hotline.SetLogger(logger)
	}

	d, err := track.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := hotline.DefaultConfig()
	cfg.Range = track.Range(d.Paths)
	cfg.Style.Weight = 3
	if *palette != "" {
		cfg.Palette, err = hotline.ParsePaletteSpec(*palette)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	m, err := newModel(flag.Arg(0), d.Project(), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
