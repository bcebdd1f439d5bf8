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

package pixelgreat

import (
	"image"
	"math"

	"seehuhn.de/go/pixelgreat/imgop"
)

// Pixelate reduces img to a grid of simulated pixels and enlarges the
// result to outputSize with hard block edges.
//
// The grid has round(outputSize.X / pixelSize) columns and
// round(outputSize.Y × aspect / pixelSize) rows, but at least one of each.
// Every grid cell is the average of the input pixels it covers.
func Pixelate(img *image.NRGBA, pixelSize, aspect float64, outputSize image.Point) *image.NRGBA {
	grid := pixelGrid(pixelSize, aspect, outputSize)
	small := imgop.Resize(img, grid, imgop.Box)
	return imgop.Resize(small, outputSize, imgop.Nearest)
}

func pixelGrid(pixelSize, aspect float64, outputSize image.Point) image.Point {
	cols := int(math.Round(float64(outputSize.X) / pixelSize))
	rows := int(math.Round(float64(outputSize.Y) / (pixelSize / aspect)))
	return image.Pt(max(cols, 1), max(rows, 1))
}
