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

	"seehuhn.de/go/pixelgreat/imgop"
)

// Count is the number of tiles across and down a canvas.  The values may
// be fractional; the last row and column of tiles is then cut off by the
// canvas edge.
type Count struct {
	X, Y float64
}

// CellEdges divides length pixels into count cells and returns the
// ceil(count)+1 cell boundaries.  Boundary i is round(i/count × length),
// so that neighbouring cells always share a boundary.  The last boundary
// exceeds length if count is not an integer.
func CellEdges(count float64, length int) []int {
	if !(count > 0) {
		return []int{0, length}
	}
	n := int(math.Ceil(count))
	edges := make([]int, n+1)
	for i := range edges {
		edges[i] = iround(float64(i) / count * float64(length))
	}
	return edges
}

// TileCanvas repeats tile across a canvas of the given size, filled with
// background first.
//
// If count is nil, copies of the tile are placed at their native size,
// starting at the top-left corner.  Otherwise the canvas is split into
// count cells using [CellEdges], and the tile is resized to fit each
// cell, so that the period of the pattern matches the cell grid exactly.
func TileCanvas(tile *image.NRGBA, size image.Point, background color.NRGBA, count *Count) *image.NRGBA {
	out := imgop.New(size, background)
	tw, th := tile.Rect.Dx(), tile.Rect.Dy()
	if tw == 0 || th == 0 {
		return out
	}

	if count == nil {
		for y := 0; y < size.Y; y += th {
			for x := 0; x < size.X; x += tw {
				imgop.Paste(out, tile, image.Pt(x, y))
			}
		}
		return out
	}

	xEdges := CellEdges(count.X, size.X)
	yEdges := CellEdges(count.Y, size.Y)
	cache := make(map[image.Point]*image.NRGBA)
	for j := range len(yEdges) - 1 {
		for i := range len(xEdges) - 1 {
			cell := image.Pt(xEdges[i+1]-xEdges[i], yEdges[j+1]-yEdges[j])
			if cell.X <= 0 || cell.Y <= 0 {
				continue
			}
			scaled, ok := cache[cell]
			if !ok {
				scaled = tile
				if cell != tile.Rect.Size() {
					scaled = imgop.Resize(tile, cell, imgop.Bicubic)
				}
				cache[cell] = scaled
			}
			imgop.Paste(out, scaled, image.Pt(xEdges[i], yEdges[j]))
		}
	}
	return out
}

// GridCount returns the tile count which aligns a grid mask with the
// pixelation grid of an output image, or nil if the mask should be tiled
// at its native size.
//
// LCD tiles cover one pixel, so the count is the whole number of pixels
// across and down.  CRT TV tiles cover two pixels along the repeat axis;
// the count there is rounded to the nearest half tile.  CRT monitor
// triads do not align with pixels at all.
func GridCount(s ScreenType, dir Direction, pixelSize, aspect float64, size image.Point) *Count {
	wide := float64(size.X) / pixelSize
	tall := float64(size.Y) / (pixelSize / aspect)

	switch s {
	case LCD:
		return &Count{X: max(math.Round(wide), 1), Y: max(math.Round(tall), 1)}
	case CRTTV:
		if dir == Vertical {
			return &Count{X: max(roundHalf(wide/2), 0.5), Y: max(math.Round(tall), 1)}
		}
		return &Count{X: max(math.Round(wide), 1), Y: max(roundHalf(tall/2), 0.5)}
	default:
		return nil
	}
}

// roundHalf rounds x to the nearest multiple of 0.5.
func roundHalf(x float64) float64 {
	return math.Round(x*2) / 2
}
