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
	"seehuhn.de/go/pixelgreat/mask"
)

// ScreenType selects the subpixel geometry of the simulated display.
type ScreenType = mask.ScreenType

// The supported screen types.
const (
	LCD        = mask.LCD
	CRTTV      = mask.CRTTV
	CRTMonitor = mask.CRTMonitor
)

// Direction is the orientation of the subpixel stripes or dot rows.
type Direction = mask.Direction

// The two directions.
const (
	Vertical   = mask.Vertical
	Horizontal = mask.Horizontal
)

// Params are the settings of a [Filter].
//
// Fields of pointer type are optional; which of them are needed depends on
// the other settings, see [NewFilter].  Use [Options] to get a complete
// set of parameters with defaults for the chosen screen type.
type Params struct {
	ScreenType ScreenType
	Direction  Direction

	// PixelSize is the width of one simulated pixel, in output pixels.
	// Must be at least 3.
	PixelSize float64

	// PixelPadding is the black gap between subpixels, in [0, 1].
	PixelPadding float64

	// PixelAspect is the pixel width divided by its height, in [0.33, 3].
	PixelAspect *float64

	// Rounding is the corner rounding of LCD and CRT TV subpixels, in
	// [0, 1].
	Rounding *float64

	// Washout raises the black level of the input, in [0, 1].
	Washout float64

	// Blur is the Gaussian blur radius, as a fraction of half the pixel
	// size, in [0, 1].
	Blur float64

	// BloomSize is the radius of the glow around bright areas, as a
	// fraction of half the pixel size, in [0, 1].
	BloomSize float64

	// BloomStrength is the brightness of the glow, in [0, 1].
	BloomStrength float64

	// ScanlineSpacing is the distance between scanlines, as a multiple of
	// the pixel size, in [0.33, 3].
	ScanlineSpacing *float64

	// ScanlineSize is the height of the lit part of each scanline, as a
	// fraction of the spacing, in [0, 1].
	ScanlineSize *float64

	// ScanlineBlur softens the scanline edges, in [0, 1].
	ScanlineBlur *float64

	// ScanlineStrength is the opacity of the scanline mask, in [0, 1].
	// If nil, scanlines are shown at full strength on CRT screens and
	// omitted on LCD screens.
	ScanlineStrength *float64

	// GridStrength is the opacity of the subpixel mask, in [0, 1].
	GridStrength float64

	// Pixelate enables the reduction of the input to the simulated pixel
	// grid.
	Pixelate bool

	// OutputSize is the size of the filtered image.  If zero, the input
	// size is used.  Both dimensions must be at least 3.
	OutputSize image.Point

	// Mode is the color mode of input and output images.
	Mode imgop.Mode
}

// validate checks the ranges of all fields which are set.
func (p *Params) validate() error {
	if err := checkRange("pixel size", p.PixelSize, minPixelSize, math.Inf(1)); err != nil {
		return err
	}
	if p.OutputSize != (image.Point{}) {
		if err := checkRange("output width", float64(p.OutputSize.X), minOutputDim, math.Inf(1)); err != nil {
			return err
		}
		if err := checkRange("output height", float64(p.OutputSize.Y), minOutputDim, math.Inf(1)); err != nil {
			return err
		}
	}

	type entry struct {
		name   string
		val    *float64
		lo, hi float64
	}
	checks := []entry{
		{"pixel padding", &p.PixelPadding, 0, 1},
		{"pixel aspect", p.PixelAspect, minAspect, maxAspect},
		{"rounding", p.Rounding, 0, 1},
		{"washout", &p.Washout, 0, 1},
		{"blur", &p.Blur, 0, 1},
		{"bloom size", &p.BloomSize, 0, 1},
		{"bloom strength", &p.BloomStrength, 0, 1},
		{"scanline spacing", p.ScanlineSpacing, minAspect, maxAspect},
		{"scanline size", p.ScanlineSize, 0, 1},
		{"scanline blur", p.ScanlineBlur, 0, 1},
		{"scanline strength", p.ScanlineStrength, 0, 1},
		{"grid strength", &p.GridStrength, 0, 1},
	}
	for _, c := range checks {
		if c.val == nil {
			continue
		}
		if err := checkRange(c.name, *c.val, c.lo, c.hi); err != nil {
			return err
		}
	}

	switch p.ScreenType {
	case LCD, CRTTV, CRTMonitor:
	default:
		return &ConfigError{Field: "screen type", Value: float64(p.ScreenType), Reason: "unknown screen type"}
	}
	switch p.Direction {
	case Vertical, Horizontal:
	default:
		return &ConfigError{Field: "direction", Value: float64(p.Direction), Reason: "unknown direction"}
	}
	switch p.Mode {
	case imgop.RGB, imgop.RGBA:
	default:
		return &ConfigError{Field: "color mode", Value: float64(p.Mode), Reason: "unknown color mode"}
	}
	return nil
}

// Ptr returns a pointer to v, for filling in the optional fields of
// [Params] and [Options].
func Ptr[T any](v T) *T {
	return &v
}

const (
	minPixelSize = 3
	minOutputDim = 3
	minAspect    = 0.33
	maxAspect    = 3

	// lowPixelSize is the pixel size below which masks tend to alias.
	lowPixelSize = 10
)
