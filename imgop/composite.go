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
	"fmt"
	"image"

	bildblend "github.com/anthonynsimon/bild/blend"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/blend"
)

// separable maps the supported PDF blend modes to their implementation.
var separable = map[pdf.Name]func(bg, fg image.Image) *image.RGBA{
	blend.ModeNormal:     bildblend.Normal,
	blend.ModeMultiply:   bildblend.Multiply,
	blend.ModeScreen:     bildblend.Screen,
	blend.ModeOverlay:    bildblend.Overlay,
	blend.ModeDarken:     bildblend.Darken,
	blend.ModeLighten:    bildblend.Lighten,
	blend.ModeDifference: bildblend.Difference,
	blend.ModeExclusion:  bildblend.Exclusion,
}

// Composite combines the color channels of a and b pixel by pixel, using
// one of the separable blend modes Normal, Multiply, Screen, Overlay,
// Darken, Lighten, Difference or Exclusion.  The result has the alpha
// channel of a.  Both images must have the same size.
func Composite(a, b *image.NRGBA, mode pdf.Name) (*image.NRGBA, error) {
	size := a.Rect.Size()
	if size != b.Rect.Size() {
		return nil, fmt.Errorf("composite: size mismatch %v vs %v", size, b.Rect.Size())
	}
	f, ok := separable[mode]
	if !ok {
		return nil, fmt.Errorf("composite: unsupported blend mode %q", mode)
	}

	// The blend functions work on premultiplied colors and composite the
	// alpha channels.  Blending opaque views gives the plain channel-wise
	// result, and the alpha of a is restored afterwards.
	res := f(opaqueView(a), opaqueView(b))

	out := image.NewNRGBA(image.Rectangle{Max: size})
	w := 4 * size.X
	for y := range size.Y {
		pa := a.Pix[y*a.Stride : y*a.Stride+w]
		pr := res.Pix[y*res.Stride : y*res.Stride+w]
		po := out.Pix[y*out.Stride : y*out.Stride+w]
		copy(po, pr)
		for i := 3; i < w; i += 4 {
			po[i] = pa[i]
		}
	}
	return out, nil
}

// opaqueView returns img as an *image.RGBA with origin (0, 0) and all
// alpha values set to 255.  Opaque images share their pixel data.
func opaqueView(img *image.NRGBA) *image.RGBA {
	size := img.Rect.Size()
	pix := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y):]
	if img.Opaque() {
		return &image.RGBA{Pix: pix, Stride: img.Stride, Rect: image.Rectangle{Max: size}}
	}

	out := image.NewRGBA(image.Rectangle{Max: size})
	w := 4 * size.X
	for y := range size.Y {
		d := out.Pix[y*out.Stride : y*out.Stride+w]
		copy(d, pix[y*img.Stride:y*img.Stride+w])
		for i := 3; i < w; i += 4 {
			d[i] = 255
		}
	}
	return out
}
