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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pixelgreat/imgop"
	"seehuhn.de/go/pixelgreat/raster"
)

// Scanlines draws white lines on a black canvas.  A new line starts every
// spacing pixels; each line is round(spacing × lineSize) pixels wide, but
// at least one pixel.  For lineSize 0 the result is solid black.  The
// lines are blurred by a Gaussian of radius line width × blur.
//
// Horizontal lines run along the rows of the image, vertical lines along
// the columns.
func Scanlines(size image.Point, spacing, lineSize, blur float64, dir Direction) *image.NRGBA {
	img := imgop.New(size, black)
	if lineSize <= 0 {
		return img
	}
	spacing = max(spacing, 1)
	width := max(iround(spacing*lineSize), 1)

	length, across := size.X, size.Y
	if dir == Vertical {
		length, across = size.Y, size.X
	}

	cv := raster.NewCanvas(img)
	n := int(math.Ceil(float64(across) / spacing))
	for i := range n {
		mid := float64(iround(float64(i)*spacing)) + float64(width)/2
		a := vec.Vec2{X: 0, Y: mid}
		b := vec.Vec2{X: float64(length), Y: mid}
		if dir == Vertical {
			a, b = vec.Vec2{X: mid, Y: 0}, vec.Vec2{X: mid, Y: float64(length)}
		}
		cv.Stroke(raster.Line(a, b), float64(width), graphics.LineCapButt, white)
	}

	if blur > 0 {
		img = imgop.GaussianBlur(img, float64(width)*blur)
	}
	return img
}
