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
	"image/color"
	"math"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/blend"

	"seehuhn.de/go/pixelgreat/imgop"
)

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Washout raises the black level of img.  Every color channel is raised to
// at least round(amount × 25.5), so amount 1 turns black into a dark gray.
func Washout(img *image.NRGBA, amount float64) *image.NRGBA {
	if amount <= 0 {
		return imgop.Clone(img)
	}
	g := washoutLevel(amount)
	flat := imgop.New(img.Rect.Size(), color.NRGBA{R: g, G: g, B: g, A: 255})
	return combine(img, flat, blend.ModeLighten)
}

func washoutLevel(amount float64) uint8 {
	return uint8(math.Round(min(amount, 1) * 255 / 10))
}

// Bloom adds a glow around the bright parts of img.  A copy of the image is
// blurred with the given radius, darkened by 1 − strength, and merged into
// the original by taking the maximum of each color channel.
func Bloom(img *image.NRGBA, radius, strength float64) *image.NRGBA {
	if radius <= 0 || strength <= 0 {
		return imgop.Clone(img)
	}
	glow := imgop.GaussianBlur(img, radius)
	glow = imgop.Mix(glow, black, 1-strength)
	return combine(img, glow, blend.ModeLighten)
}

// combine blends two images of equal size.
func combine(a, b *image.NRGBA, mode pdf.Name) *image.NRGBA {
	out, err := imgop.Composite(a, b, mode)
	if err != nil {
		// unreachable: all callers pass images of the same size
		panic(err)
	}
	return out
}
