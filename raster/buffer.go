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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Buffer collects path commands.  The methods return the receiver, so that
// calls can be chained.  A Buffer can be reused after calling Reset.
type Buffer struct {
	cmds []path.Command
	pts  []vec.Vec2
}

// Reset discards all commands, keeping the allocated memory.
func (b *Buffer) Reset() {
	b.cmds = b.cmds[:0]
	b.pts = b.pts[:0]
}

// Len returns the number of commands in the buffer.
func (b *Buffer) Len() int {
	return len(b.cmds)
}

func (b *Buffer) MoveTo(p vec.Vec2) *Buffer {
	b.cmds = append(b.cmds, path.CmdMoveTo)
	b.pts = append(b.pts, p)
	return b
}

func (b *Buffer) LineTo(p vec.Vec2) *Buffer {
	b.cmds = append(b.cmds, path.CmdLineTo)
	b.pts = append(b.pts, p)
	return b
}

func (b *Buffer) QuadTo(c, p vec.Vec2) *Buffer {
	b.cmds = append(b.cmds, path.CmdQuadTo)
	b.pts = append(b.pts, c, p)
	return b
}

func (b *Buffer) CubeTo(c1, c2, p vec.Vec2) *Buffer {
	b.cmds = append(b.cmds, path.CmdCubeTo)
	b.pts = append(b.pts, c1, c2, p)
	return b
}

func (b *Buffer) Close() *Buffer {
	b.cmds = append(b.cmds, path.CmdClose)
	return b
}

// Path returns an iterator over the commands in the buffer.
// The buffer must not be modified while the iterator is in use.
func (b *Buffer) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		k := 0
		for _, cmd := range b.cmds {
			n := 0
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			if !yield(cmd, b.pts[k:k+n]) {
				return
			}
			k += n
		}
	}
}
