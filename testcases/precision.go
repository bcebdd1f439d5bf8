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

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "thin_line_y_integer",
		Path:   horizontalLine(5, 10.0, 59),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1, Cap: graphics.LineCapButt},
	},
	{
		Name:   "thin_line_y_half",
		Path:   horizontalLine(5, 10.5, 59),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1, Cap: graphics.LineCapButt},
	},
	{
		Name:   "sliver",
		Path:   offsetRectangle(10, 30.4, 44, 0.2, 0),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "clipped",
		Path:   offsetRectangle(-20, -20, 50, 50, 0.5),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// offsetRectangle builds a w×h rectangle at (x1, y1), shifted by a
// subpixel offset in both directions.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}
