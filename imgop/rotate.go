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

package imgop

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// RotateClockwise returns img rotated by 90 degrees clockwise.
// A w×h image becomes h×w.
func RotateClockwise(img *image.NRGBA) *image.NRGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))

	// (x, y) ↦ (h - y, x), relative to the source origin
	x0, y0 := float64(img.Rect.Min.X), float64(img.Rect.Min.Y)
	s2d := f64.Aff3{
		0, -1, float64(h) + y0,
		1, 0, -x0,
	}
	draw.NearestNeighbor.Transform(out, s2d, img, img.Rect, draw.Src, nil)
	return out
}
