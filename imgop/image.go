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
	"image/color"
	"slices"

	"golang.org/x/image/draw"
)

// New returns a w×h image filled with c.
func New(size image.Point, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rectangle{Max: size})
	if c == (color.NRGBA{}) {
		return img
	}
	px := []uint8{c.R, c.G, c.B, c.A}
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], px)
	}
	return img
}

// Clone returns a deep copy of img.
func Clone(img *image.NRGBA) *image.NRGBA {
	return &image.NRGBA{
		Pix:    slices.Clone(img.Pix),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
}

// Paste copies src into dst with the top-left corner of src at p.
// Parts falling outside dst are clipped.
func Paste(dst *image.NRGBA, src image.Image, p image.Point) {
	draw.Copy(dst, p, src, src.Bounds(), draw.Src, nil)
}

// Mix returns img interpolated towards the flat color c: t = 0 leaves the
// image unchanged, t = 1 gives a flat image.  Only the color channels are
// mixed, alpha is kept.
func Mix(img *image.NRGBA, c color.NRGBA, t float64) *image.NRGBA {
	out := Clone(img)
	if t <= 0 {
		return out
	}
	t = min(t, 1)
	target := [3]float64{float64(c.R), float64(c.G), float64(c.B)}
	var lut [3][256]uint8
	for k := range lut {
		for v := range 256 {
			lut[k][v] = uint8(float64(v)*(1-t) + target[k]*t + 0.5)
		}
	}
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = lut[0][out.Pix[i]]
		out.Pix[i+1] = lut[1][out.Pix[i+1]]
		out.Pix[i+2] = lut[2][out.Pix[i+2]]
	}
	return out
}

// Equal reports whether a and b have the same size and pixel values.
func Equal(a, b *image.NRGBA) bool {
	if a.Rect.Size() != b.Rect.Size() {
		return false
	}
	w := 4 * a.Rect.Dx()
	for y := range a.Rect.Dy() {
		if !slices.Equal(a.Pix[y*a.Stride:y*a.Stride+w], b.Pix[y*b.Stride:y*b.Stride+w]) {
			return false
		}
	}
	return true
}
