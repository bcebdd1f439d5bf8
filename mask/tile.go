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
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/pixelgreat/imgop"
	"seehuhn.de/go/pixelgreat/raster"
)

// DefaultSupersampling is the linear supersampling factor used to draw
// tiles before they are reduced to their final size.
const DefaultSupersampling = 8

// TileSpec describes one repeat unit of a grid mask.
type TileSpec struct {
	Screen ScreenType

	// Size is the pixel size in output pixels.  For LCD and CRT TV
	// screens this is the width of one pixel (three subpixel bars).
	Size float64

	// Padding is the fraction of black space between the subpixels,
	// in the range [0, 1].
	Padding float64

	Direction Direction

	// Aspect is the pixel width divided by the pixel height.
	// Not used for CRT monitors.
	Aspect float64

	// Rounding is the corner radius of the subpixel bars, as a fraction
	// of half the narrow side of a bar.  Not used for CRT monitors.
	Rounding float64

	// Supersampling overrides DefaultSupersampling, if positive.
	// A value of 1 draws the tile directly at its final size.
	Supersampling int
}

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// errTileSize is returned when a tile would have no pixels.
var errTileSize = errors.New("tile size too small")

// Tile draws one repeat unit of the grid mask described by spec.
func Tile(spec TileSpec) (*image.NRGBA, error) {
	if !(spec.Size > 0) {
		return nil, fmt.Errorf("invalid pixel size %g", spec.Size)
	}
	ss := spec.Supersampling
	if ss <= 0 {
		ss = DefaultSupersampling
	}

	switch spec.Screen {
	case LCD, CRTTV:
		if !(spec.Aspect > 0) {
			return nil, fmt.Errorf("invalid pixel aspect %g", spec.Aspect)
		}
		tile, err := lcdTile(spec.Size, spec.Padding, spec.Direction, spec.Aspect, spec.Rounding, ss)
		if err != nil || spec.Screen == LCD {
			return tile, err
		}
		return brick(tile, spec.Direction), nil
	case CRTMonitor:
		return monitorTile(spec.Size, spec.Padding, spec.Direction, ss)
	default:
		return nil, fmt.Errorf("unknown screen type %d", int(spec.Screen))
	}
}

// iround rounds half away from zero.
func iround(x float64) int {
	return int(math.Round(x))
}

// newSupersampled returns an opaque black w×h image and a canvas to draw
// on it.
func newSupersampled(w, h int) (*image.NRGBA, *raster.Canvas) {
	img := imgop.New(image.Pt(w, h), black)
	return img, raster.NewCanvas(img)
}

// reduce shrinks a supersampled tile to its final size.
func reduce(img *image.NRGBA, size image.Point) *image.NRGBA {
	return imgop.Resize(img, size, imgop.Hamming)
}

// finalSize converts the fractional tile size to whole pixels.
func finalSize(w, h float64) (image.Point, error) {
	size := image.Pt(iround(w), iround(h))
	if size.X < 1 || size.Y < 1 {
		return image.Point{}, fmt.Errorf("%w: %.2f×%.2f", errTileSize, w, h)
	}
	return size, nil
}
