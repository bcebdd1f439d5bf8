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

package screens

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pixelgreat/imgop"
	"seehuhn.de/go/pixelgreat/raster"
)

// barColors are the colors of a classic test card, in order of
// decreasing luminance.
var barColors = []color.NRGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 255, G: 0, B: 255, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 0, B: 0, A: 255},
}

// TestCard draws a synthetic test image: color bars in the top two thirds,
// a gray ramp below, and a circle with a diagonal cross on top.
func TestCard(size image.Point) *image.NRGBA {
	img := imgop.New(size, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	cv := raster.NewCanvas(img)
	w, h := float64(size.X), float64(size.Y)

	split := math.Round(h * 2 / 3)
	bw := w / float64(len(barColors))
	for i, c := range barColors {
		box := rect.Rect{LLx: float64(i) * bw, LLy: 0, URx: float64(i+1) * bw, URy: split}
		cv.Fill(raster.Rect(box), c)
	}

	const steps = 11
	sw := w / steps
	for i := range steps {
		v := uint8(math.Round(255 * float64(i) / (steps - 1)))
		box := rect.Rect{LLx: float64(i) * sw, LLy: split, URx: float64(i+1) * sw, URy: h}
		cv.Fill(raster.Rect(box), color.NRGBA{R: v, G: v, B: v, A: 255})
	}

	centre := vec.Vec2{X: w / 2, Y: h / 2}
	radius := 0.4 * min(w, h)
	lw := max(min(w, h)/60, 1)
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	cv.Stroke(raster.Circle(centre, radius), lw, graphics.LineCapRound, white)

	d := radius / math.Sqrt2
	cv.Stroke(raster.Line(centre.Add(vec.Vec2{X: -d, Y: -d}), centre.Add(vec.Vec2{X: d, Y: d})),
		lw, graphics.LineCapButt, white)
	cv.Stroke(raster.Line(centre.Add(vec.Vec2{X: -d, Y: d}), centre.Add(vec.Vec2{X: d, Y: -d})),
		lw, graphics.LineCapButt, white)

	return img
}
