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

	"github.com/disintegration/imaging"
)

// GaussianBlur returns img blurred by a Gaussian of the given radius
// (standard deviation, in pixels).  The kernel is truncated at three
// standard deviations and renormalized at the image edges.  Colors are
// weighted by alpha, so that transparent pixels do not darken their
// neighbours.  A radius of zero or less returns a copy.
func GaussianBlur(img *image.NRGBA, radius float64) *image.NRGBA {
	if radius <= 0 {
		return Clone(img)
	}
	return imaging.Blur(img, radius)
}
