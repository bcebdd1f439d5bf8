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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pixelgreat/imgop"
	"seehuhn.de/go/pixelgreat/raster"
)

// lcdTile draws a single pixel made of red, green and blue bars.
//
// The tile is laid out with vertical bars.  For horizontal tiles the
// aspect ratio is inverted and the result rotated clockwise.
func lcdTile(size, padding float64, dir Direction, aspect, rounding float64, ss int) (*image.NRGBA, error) {
	if dir == Horizontal {
		aspect = 1 / aspect
	}
	realW := size
	realH := size / aspect
	if dir == Horizontal {
		realW, realH = size*aspect, size
	}
	final, err := finalSize(realW, realH)
	if err != nil {
		return nil, err
	}

	var tile *image.NRGBA
	if padding >= 1 {
		tile = imgop.New(final, black)
	} else {
		tile = drawBars(realW*float64(ss), realH*float64(ss), padding, aspect, rounding)
		tile = reduce(tile, final)
	}

	if dir == Horizontal {
		tile = imgop.RotateClockwise(tile)
	}
	return tile, nil
}

// drawBars draws the three subpixel bars into a w×h image, in
// supersampled pixel units.
func drawBars(w, h float64, padding, aspect, rounding float64) *image.NRGBA {
	wPx, hPx := max(iround(w), 1), max(iround(h), 1)

	// The gap is a fraction of one bar width, or of the tile height for
	// very wide pixels.
	var pad int
	if aspect < 3 {
		pad = iround(padding * w / 3)
	} else {
		pad = iround(padding * h)
	}
	if padding <= 0 {
		pad = 0
	}
	before := (pad + 1) / 2
	after := pad - before

	rg := iround(w / 3)
	gb := iround(2 * w / 3)
	bars := []struct {
		x0, x1 int
		col    color.NRGBA
	}{
		{0, rg, red},
		{rg, gb, green},
		{gb, wPx, blue},
	}

	img, cv := newSupersampled(wPx, hPx)
	y0 := before
	y1 := max(hPx-after, y0+1)
	for _, bar := range bars {
		x0 := bar.x0 + before
		x1 := max(bar.x1-after, x0+1)

		var radius float64
		if rounding > 0 {
			radius = float64(iround(rounding * float64(min(x1-x0, y1-y0)) / 2))
		}
		box := rect.Rect{LLx: float64(x0), LLy: float64(y0), URx: float64(x1), URy: float64(y1)}
		cv.Fill(raster.RoundedRect(box, radius), bar.col)
	}
	return img
}

// brick combines two copies of an LCD tile into the staggered unit of a
// CRT TV mask.  The second copy is shifted by half a tile along the
// stripe direction and wraps around the tile edge.
func brick(tile *image.NRGBA, dir Direction) *image.NRGBA {
	w, h := tile.Rect.Dx(), tile.Rect.Dy()

	var out *image.NRGBA
	if dir == Vertical {
		out = imgop.New(image.Pt(2*w, h), black)
		split := iround(float64(h) / 2)
		imgop.Paste(out, tile, image.Pt(0, 0))
		imgop.Paste(out, tile, image.Pt(w, split))
		imgop.Paste(out, tile, image.Pt(w, split-h))
	} else {
		out = imgop.New(image.Pt(w, 2*h), black)
		split := iround(float64(w) / 2)
		imgop.Paste(out, tile, image.Pt(0, 0))
		imgop.Paste(out, tile, image.Pt(split, h))
		imgop.Paste(out, tile, image.Pt(split-w, h))
	}
	return out
}
