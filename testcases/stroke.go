// seehuhn.de/go/pixelgreat - simulated display artifacts for bitmaps
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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapButt},
	},
	{
		Name:   "line_round",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapRound},
	},
	{
		Name:   "line_square",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapSquare},
	},
	{
		Name:   "diagonal",
		Path:   (&path.Data{}).MoveTo(pt(8, 56)).LineTo(pt(56, 8)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 5, Cap: graphics.LineCapButt},
	},
	{
		Name:   "scanlines",
		Path:   scanlines(64, 64, 5, 4),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: graphics.LineCapButt},
	},
	{
		Name:   "scanlines_fractional",
		Path:   scanlines(64, 64, 4.5, 7),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2.25, Cap: graphics.LineCapButt},
	},
	{
		Name:   "open_triangle",
		Path:   (&path.Data{}).MoveTo(pt(10, 50)).LineTo(pt(32, 14)).LineTo(pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapRound},
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y)).
		LineTo(pt(x2, y))
}

// scanlines builds n horizontal lines across a w-wide canvas, starting at
// y = offset and spaced by spacing.
func scanlines(w, h, offset, n float64) *path.Data {
	spacing := (h - offset) / n
	p := &path.Data{}
	for y := offset; y < h; y += spacing {
		p = p.MoveTo(pt(0, y)).LineTo(pt(w, y))
	}
	return p
}
