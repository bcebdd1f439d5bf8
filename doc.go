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

// Package pixelgreat makes images look as if they were shown on a physical
// screen.
//
// Supported are LCD panels with RGB stripes, CRT televisions with an
// aperture grille in brick layout, and CRT computer monitors with a dot
// triad shadow mask.  A [Filter] combines the following steps, in this
// order:
//
//  1. washout: black is raised to a dark gray
//  2. pixelation: the image is reduced to the simulated pixel grid
//  3. blur
//  4. scanlines, multiplied onto the image
//  5. the subpixel grid, multiplied onto the image
//  6. bloom: bright areas glow into their neighbourhood
//
// Each step can be switched off separately.  The masks for steps 4 and 5
// depend only on the image size, and are computed once when the filter is
// created.
//
// Most users will start from [Options], which supplies defaults suitable
// for the chosen screen type:
//
//	opts := &pixelgreat.Options{ScreenType: pixelgreat.Ptr(pixelgreat.LCD)}
//	out, err := pixelgreat.Process(img, 20, 2, opts)
package pixelgreat
