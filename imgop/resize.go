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
	"math"

	"golang.org/x/image/draw"
)

// Resampling kernels.
var (
	// Nearest picks the closest source pixel.  Used to enlarge images
	// while keeping hard block edges.
	Nearest draw.Interpolator = draw.NearestNeighbor

	// Box averages all source pixels which fall into a destination pixel.
	Box draw.Interpolator = &draw.Kernel{Support: 0.5, At: box}

	// Hamming is a windowed sinc of support 1.  It gives slightly sharper
	// results than Box when reducing supersampled masks.
	Hamming draw.Interpolator = &draw.Kernel{Support: 1, At: hamming}

	// Bicubic is the Catmull-Rom cubic.
	Bicubic draw.Interpolator = draw.CatmullRom

	// Lanczos is the three-lobed Lanczos kernel.
	Lanczos draw.Interpolator = &draw.Kernel{Support: 3, At: lanczos3}
)

func box(t float64) float64 {
	if t < -0.5 || t >= 0.5 {
		return 0
	}
	return 1
}

func hamming(t float64) float64 {
	t = math.Abs(t)
	if t >= 1 {
		return 0
	}
	return sinc(t) * (0.54 + 0.46*math.Cos(math.Pi*t))
}

func lanczos3(t float64) float64 {
	t = math.Abs(t)
	if t >= 3 {
		return 0
	}
	return sinc(t) * sinc(t/3)
}

func sinc(t float64) float64 {
	if t == 0 {
		return 1
	}
	t *= math.Pi
	return math.Sin(t) / t
}

// Resize scales img to the given size.  If the size is unchanged, a copy
// of img is returned.
func Resize(img *image.NRGBA, size image.Point, k draw.Interpolator) *image.NRGBA {
	if img.Rect.Size() == size {
		return Clone(img)
	}
	out := image.NewNRGBA(image.Rectangle{Max: size})
	k.Scale(out, out.Rect, img, img.Rect, draw.Src, nil)
	return out
}
