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

// ScaledSize returns the output size for an input of the given size,
// enlarged by scale.  Both dimensions are at least 3.
func ScaledSize(input image.Point, scale float64) image.Point {
	return image.Pt(
		max(int(math.Round(float64(input.X)*scale)), minOutputDim),
		max(int(math.Round(float64(input.Y)*scale)), minOutputDim))
}

// Process filters a single image.  The output size is the input size
// multiplied by scale; pixelSize is the height of a simulated pixel in
// output pixels.  Unset options take their defaults, and opts may be nil.
//
// Images other than [*image.RGBA] and [*image.NRGBA] are converted to
// RGBA mode first.  To filter many images of the same size, use
// [Options.Params] and [NewFilter] instead, so that the masks are only
// computed once.
func Process(img image.Image, pixelSize, scale float64, opts *Options) (image.Image, error) {
	if !(scale > 0) {
		return nil, &ConfigError{Field: "output scale", Value: scale, Reason: "must be positive"}
	}
	if opts == nil {
		opts = &Options{}
	}

	mode, err := imgop.ModeOf(img)
	if err != nil {
		mode = imgop.RGBA
		img = imgop.Convert(img, mode)
	}

	in := img.Bounds().Size()
	p, err := opts.Params(ScaledSize(in, scale), pixelSize, mode)
	if err != nil {
		return nil, err
	}
	f, err := NewFilter(in, *p)
	if err != nil {
		return nil, err
	}
	return f.Apply(img)
}
