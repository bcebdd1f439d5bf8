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

// Package screens lists named filter settings for visual inspection.
// Together with [TestCard] they are used by the gallery command, and by
// tests which check that every combination of settings can be built.
package screens

import "seehuhn.de/go/pixelgreat"

// Config is a named set of filter settings.
type Config struct {
	Name      string  // lowercase a-z, 0-9 and _ only
	PixelSize float64 // pixel height in output pixels
	Scale     float64 // output size / input size
	Options   pixelgreat.Options
}

var p = pixelgreat.Ptr[float64]

// All contains the configurations, in display order.
var All = []Config{
	{
		Name:      "lcd",
		PixelSize: 20,
		Scale:     2,
		Options:   pixelgreat.Options{ScreenType: pixelgreat.Ptr(pixelgreat.LCD)},
	},
	{
		Name:      "lcd_horizontal",
		PixelSize: 20,
		Scale:     2,
		Options: pixelgreat.Options{
			ScreenType: pixelgreat.Ptr(pixelgreat.LCD),
			Direction:  pixelgreat.Ptr(pixelgreat.Horizontal),
		},
	},
	{
		Name:      "lcd_wide",
		PixelSize: 16,
		Scale:     2,
		Options: pixelgreat.Options{
			ScreenType:  pixelgreat.Ptr(pixelgreat.LCD),
			PixelAspect: p(2),
		},
	},
	{
		Name:      "lcd_rounded_scanlines",
		PixelSize: 20,
		Scale:     2,
		Options: pixelgreat.Options{
			ScreenType:       pixelgreat.Ptr(pixelgreat.LCD),
			Rounding:         p(1),
			ScanlineStrength: p(0.5),
		},
	},
	{
		Name:      "crt_tv",
		PixelSize: 20,
		Scale:     2,
		Options:   pixelgreat.Options{ScreenType: pixelgreat.Ptr(pixelgreat.CRTTV)},
	},
	{
		Name:      "crt_tv_horizontal",
		PixelSize: 20,
		Scale:     2,
		Options: pixelgreat.Options{
			ScreenType: pixelgreat.Ptr(pixelgreat.CRTTV),
			Direction:  pixelgreat.Ptr(pixelgreat.Horizontal),
		},
	},
	{
		Name:      "crt_tv_soft",
		PixelSize: 20,
		Scale:     2,
		Options: pixelgreat.Options{
			ScreenType:    pixelgreat.Ptr(pixelgreat.CRTTV),
			Blur:          p(1),
			BloomSize:     p(1),
			GridStrength:  p(0.6),
			ScanlineBlur:  p(1),
			ScanlineSize:  p(0.5),
			PixelPadding:  p(0.4),
			BloomStrength: p(0.8),
		},
	},
	{
		Name:      "crt_monitor",
		PixelSize: 12,
		Scale:     2,
		Options:   pixelgreat.Options{ScreenType: pixelgreat.Ptr(pixelgreat.CRTMonitor)},
	},
	{
		Name:      "crt_monitor_vertical",
		PixelSize: 12,
		Scale:     2,
		Options: pixelgreat.Options{
			ScreenType: pixelgreat.Ptr(pixelgreat.CRTMonitor),
			Direction:  pixelgreat.Ptr(pixelgreat.Vertical),
		},
	},
	{
		Name:      "crt_monitor_touching_dots",
		PixelSize: 12,
		Scale:     2,
		Options: pixelgreat.Options{
			ScreenType:   pixelgreat.Ptr(pixelgreat.CRTMonitor),
			PixelPadding: p(0),
		},
	},
	{
		Name:      "scanlines_only",
		PixelSize: 10,
		Scale:     2,
		Options: pixelgreat.Options{
			ScreenType:      pixelgreat.Ptr(pixelgreat.CRTTV),
			GridStrength:    p(0),
			ScanlineSpacing: p(0.5),
			Pixelate:        pixelgreat.Ptr(false),
		},
	},
	{
		Name:      "washed_out",
		PixelSize: 20,
		Scale:     2,
		Options: pixelgreat.Options{
			ScreenType: pixelgreat.Ptr(pixelgreat.LCD),
			Washout:    p(1),
		},
	},
	{
		Name:      "no_pixelate",
		PixelSize: 10,
		Scale:     3,
		Options: pixelgreat.Options{
			ScreenType: pixelgreat.Ptr(pixelgreat.CRTTV),
			Pixelate:   pixelgreat.Ptr(false),
		},
	},
	{
		Name:      "tiny_pixels",
		PixelSize: 4,
		Scale:     1,
		Options:   pixelgreat.Options{ScreenType: pixelgreat.Ptr(pixelgreat.LCD)},
	},
}
