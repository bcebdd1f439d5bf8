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

// Package imgop provides the whole-image operations used to build and
// apply display masks: resampling with a choice of kernel, Gaussian blur,
// blending towards a flat color, channel-wise composites and rotation.
//
// All operations work on [*image.NRGBA] buffers and allocate their result.
// Images in [RGB] mode are stored with opaque alpha.
package imgop

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Mode is the color mode of an image.
type Mode int

// These are the supported color modes.
const (
	// RGB images are represented as [*image.RGBA].  Their alpha channel is
	// ignored on input and set to 255 on output.
	RGB Mode = iota

	// RGBA images are represented as [*image.NRGBA].  The alpha channel
	// is carried through unchanged.
	RGBA
)

func (m Mode) String() string {
	switch m {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ErrUnsupportedImage is returned for images which are neither
// [*image.RGBA] nor [*image.NRGBA].
var ErrUnsupportedImage = errors.New("unsupported image type")

// ModeOf returns the color mode of img.
func ModeOf(img image.Image) (Mode, error) {
	switch img.(type) {
	case *image.RGBA:
		return RGB, nil
	case *image.NRGBA:
		return RGBA, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedImage, img)
	}
}

// Convert returns a copy of img in the given mode.  Any image type can be
// converted.  Converting to RGB discards the alpha channel.
func Convert(img image.Image, m Mode) image.Image {
	b := img.Bounds()
	tmp := image.NewNRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(tmp, tmp.Bounds(), img, b.Min, draw.Src)
	return Export(tmp, m)
}

// Import returns a copy of img as an NRGBA buffer with origin (0, 0).
// For [*image.RGBA] the alpha channel is replaced by 255.
func Import(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rectangle{Max: b.Size()})
	switch src := img.(type) {
	case *image.RGBA:
		for y := range b.Dy() {
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			d := out.Pix[y*out.Stride : y*out.Stride+4*b.Dx()]
			copy(d, s[:len(d)])
			for i := 3; i < len(d); i += 4 {
				d[i] = 255
			}
		}
	default:
		draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	}
	return out
}

// Export converts an NRGBA buffer to the representation of mode m.
// For RGBA the buffer itself is returned.
func Export(img *image.NRGBA, m Mode) image.Image {
	if m != RGB {
		return img
	}
	out := image.NewRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 255
	}
	return out
}
