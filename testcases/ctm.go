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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// ctmCases draw tile-sized shapes through the scaling used for
// supersampled masks.
var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Op:     Fill{},
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "supersampled_stripes",
		Path:   stripes(0.5, 0.5, 7.5, 7.5, 3, 0.6),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Scale(8, 8),
	},
	{
		Name:   "supersampled_rounded_bar",
		Path:   roundedRect(3, 0.5, 5, 7.5, 1),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Scale(8, 8),
	},
	{
		Name:   "supersampled_triad",
		Path:   triad(0.5, 0.5, 7, 0.5),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Scale(8, 8),
	},
	{
		Name:   "anisotropic_circle",
		Path:   circle(0, 0, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Scale(2.5, 1.5).Translate(32, 32),
	},
	{
		Name:   "scaled_round_cap",
		Path:   horizontalLine(2, 4, 6),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapRound},
		CTM:    matrix.Scale(8, 8),
	},
}
