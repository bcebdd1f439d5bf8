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

package mask

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixelgreat/imgop"
	"seehuhn.de/go/pixelgreat/raster"
)

// triad lists the phosphor dots of a CRT monitor tile, as indices into
// the seven divisions of the long side and the three divisions of the
// short side.
var triad = []struct {
	long, short int
	col         color.NRGBA
}{
	{0, 0, red}, {6, 0, red}, {0, 2, red}, {6, 2, red}, {3, 1, red},
	{2, 0, green}, {2, 2, green}, {5, 1, green},
	{1, 1, blue}, {4, 0, blue}, {4, 2, blue},
}

// monitorTile draws the dot triads of a CRT monitor.  The dot pitch is
// chosen so that the dot density matches a square pixel of the given size.
//
// The tile is laid out with horizontal dot rows and rotated clockwise for
// vertical tiles.
func monitorTile(size, padding float64, dir Direction, ss int) (*image.NRGBA, error) {
	d := size / math.Sqrt(3)
	final, err := finalSize(3*d, math.Sqrt(3)*d)
	if err != nil {
		return nil, err
	}

	var tile *image.NRGBA
	if padding >= 1 {
		tile = imgop.New(final, black)
	} else {
		tile = reduce(drawTriads(d*float64(ss), padding), final)
	}

	if dir == Vertical {
		tile = imgop.RotateClockwise(tile)
	}
	return tile, nil
}

// drawTriads draws the dots for pitch d, in supersampled pixel units.
// Dots on the tile boundary are cut, their other parts appear at the
// opposite edge.
func drawTriads(d, padding float64) *image.NRGBA {
	w, h := 3*d, math.Sqrt(3)*d

	var long [7]float64
	for k := range long {
		long[k] = float64(iround(w * float64(k) / 6))
	}
	short := [3]float64{0, float64(iround(h / 2)), float64(iround(h))}

	img, cv := newSupersampled(max(int(long[6]), 1), max(int(short[2]), 1))
	r := d * (1 - padding) / 2
	if r <= 0 {
		return img
	}
	for _, dot := range triad {
		c := vec.Vec2{X: long[dot.long], Y: short[dot.short]}
		cv.Fill(raster.Circle(c, r), dot.col)
	}
	return img
}
