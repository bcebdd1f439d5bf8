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

package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas paints anti-aliased shapes in a single opaque color onto an
// NRGBA image.  Each pixel is interpolated towards the paint color by its
// coverage.
type Canvas struct {
	Img *image.NRGBA
	r   *Rasterizer
}

// NewCanvas returns a Canvas which draws onto img.  The rasterizer is
// clipped to the image bounds.
func NewCanvas(img *image.NRGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Canvas{Img: img, r: NewRasterizer(clip)}
}

// Fill paints the interior of p.
func (c *Canvas) Fill(p *path.Data, col color.NRGBA) {
	c.r.Fill(p, c.painter(col))
}

// Stroke paints the segments of p as bands of the given width.
func (c *Canvas) Stroke(p *path.Data, width float64, cap graphics.LineCapStyle, col color.NRGBA) {
	c.r.Width = width
	c.r.Cap = cap
	c.r.Stroke(p, c.painter(col))
}

func (c *Canvas) painter(col color.NRGBA) func(y, xMin int, coverage []float32) {
	src := [4]float32{float32(col.R), float32(col.G), float32(col.B), float32(col.A)}
	img := c.Img
	return func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		for i, cov := range coverage {
			pix := img.Pix[off+4*i : off+4*i+4 : off+4*i+4]
			if cov >= 1 {
				pix[0], pix[1], pix[2], pix[3] = col.R, col.G, col.B, col.A
				continue
			}
			for k := range pix {
				d := float32(pix[k])
				pix[k] = uint8(d + (src[k]-d)*cov + 0.5)
			}
		}
	}
}
