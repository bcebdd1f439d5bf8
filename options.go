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

// DefaultOutputScale is the ratio of output size to input size used by
// [Process] when no scale is given.
const DefaultOutputScale = 1.0

// Options is a partial set of filter settings.  Settings which are nil are
// replaced by defaults, some of which depend on the screen type.
type Options struct {
	ScreenType *ScreenType
	Direction  *Direction

	PixelAspect  *float64
	PixelPadding *float64
	Rounding     *float64

	Washout       *float64
	Blur          *float64
	BloomSize     *float64
	BloomStrength *float64

	ScanlineSpacing  *float64
	ScanlineSize     *float64
	ScanlineBlur     *float64
	ScanlineStrength *float64

	GridStrength *float64
	Pixelate     *bool
}

// screenDefaults holds the defaults which differ between screen types.
type screenDefaults struct {
	direction        Direction
	padding          float64
	washout          float64
	blur             float64
	rounding         float64
	scanlineStrength float64
}

var defaultsByType = map[ScreenType]screenDefaults{
	LCD: {
		direction: Vertical,
		padding:   0.25,
		washout:   0.1,
	},
	CRTTV: {
		direction:        Vertical,
		padding:          0.25,
		washout:          0.5,
		blur:             0.5,
		rounding:         1,
		scanlineStrength: 1,
	},
	CRTMonitor: {
		direction:        Horizontal,
		padding:          0.1,
		washout:          0.5,
		blur:             0.5,
		scanlineStrength: 1,
	},
}

// Defaults shared by all screen types.
const (
	defaultScreenType      = CRTTV
	defaultPixelAspect     = 1.0
	defaultScanlineSpacing = 1.0
	defaultScanlineSize    = 0.75
	defaultScanlineBlur    = 0.25
	defaultGridStrength    = 1.0
	defaultBloomStrength   = 1.0
	defaultBloomSize       = 0.5
	defaultPixelate        = true
)

// Params fills in the defaults and checks all settings.  The result is
// suitable for [NewFilter].
//
// The pixel size is the height of a simulated pixel, in output pixels.  For
// pixel aspect ratios greater than 1 the pixel width used by the filter is
// round(pixelSize × aspect), otherwise it is round(pixelSize).
func (o *Options) Params(outputSize image.Point, pixelSize float64, mode imgop.Mode) (*Params, error) {
	if err := checkRange("output width", float64(outputSize.X), minOutputDim, math.Inf(1)); err != nil {
		return nil, err
	}
	if err := checkRange("output height", float64(outputSize.Y), minOutputDim, math.Inf(1)); err != nil {
		return nil, err
	}
	if err := checkRange("pixel size", pixelSize, minPixelSize, math.Inf(1)); err != nil {
		return nil, err
	}
	if pixelSize < lowPixelSize {
		Logger().Warn("pixel size below 10 may cause visual glitches",
			"pixel_size", pixelSize)
	}

	screen := orDefault(o.ScreenType, defaultScreenType)
	d, ok := defaultsByType[screen]
	if !ok {
		return nil, &ConfigError{Field: "screen type", Value: float64(screen), Reason: "unknown screen type"}
	}

	p := &Params{
		ScreenType:       screen,
		Direction:        orDefault(o.Direction, d.direction),
		PixelPadding:     orDefault(o.PixelPadding, d.padding),
		PixelAspect:      Ptr(orDefault(o.PixelAspect, defaultPixelAspect)),
		Rounding:         Ptr(orDefault(o.Rounding, d.rounding)),
		Washout:          orDefault(o.Washout, d.washout),
		Blur:             orDefault(o.Blur, d.blur),
		BloomSize:        orDefault(o.BloomSize, defaultBloomSize),
		BloomStrength:    orDefault(o.BloomStrength, defaultBloomStrength),
		ScanlineSpacing:  Ptr(orDefault(o.ScanlineSpacing, defaultScanlineSpacing)),
		ScanlineSize:     Ptr(orDefault(o.ScanlineSize, defaultScanlineSize)),
		ScanlineBlur:     Ptr(orDefault(o.ScanlineBlur, defaultScanlineBlur)),
		ScanlineStrength: Ptr(orDefault(o.ScanlineStrength, d.scanlineStrength)),
		GridStrength:     orDefault(o.GridStrength, defaultGridStrength),
		Pixelate:         orDefault(o.Pixelate, defaultPixelate),
		OutputSize:       outputSize,
		Mode:             mode,
	}

	// the aspect ratio must be checked before it is used below
	if err := checkRange("pixel aspect", *p.PixelAspect, minAspect, maxAspect); err != nil {
		return nil, err
	}
	if a := *p.PixelAspect; a > 1 {
		p.PixelSize = math.Round(pixelSize * a)
	} else {
		p.PixelSize = math.Round(pixelSize)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
