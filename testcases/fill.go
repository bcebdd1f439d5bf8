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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "stripes",
		Path:   stripes(4, 4, 60, 60, 3, 2.5),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "bricks",
		Path:   bricks(0, 0, 16, 12, 4, 6, 2),
		Width:  64,
		Height: 72,
		Op:     Fill{},
	},
	{
		Name:   "reversed_rectangle",
		Path:   rectangle(54, 54, 10, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).  With the
// nonzero rule the centre pentagon is filled.
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	order := []int{0, 2, 4, 1, 3}
	for k, i := range order {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		q := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if k == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	return p.Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// stripes builds n vertical bars, separated by gaps, which together fill
// the rectangle (x1,y1)-(x2,y2).  The bar edges fall on fractional pixel
// positions, as the subpixel bars of an LCD tile do.
func stripes(x1, y1, x2, y2 float64, n int, gap float64) *path.Data {
	p := &path.Data{}
	w := (x2 - x1 + gap) / float64(n)
	for i := range n {
		left := x1 + float64(i)*w
		right := left + w - gap
		p = p.MoveTo(pt(left, y1)).
			LineTo(pt(right, y1)).
			LineTo(pt(right, y2)).
			LineTo(pt(left, y2)).
			Close()
	}
	return p
}

// bricks builds a staggered pattern of w×h rectangles with the given
// padding.  Every other column is shifted down by half a brick.
func bricks(x0, y0, w, h float64, cols, rows int, pad float64) *path.Data {
	p := &path.Data{}
	for i := range cols {
		shift := 0.0
		if i%2 == 1 {
			shift = h / 2
		}
		for j := range rows {
			left := x0 + float64(i)*w + pad/2
			top := y0 + float64(j)*h + shift + pad/2
			p = p.MoveTo(pt(left, top)).
				LineTo(pt(left+w-pad, top)).
				LineTo(pt(left+w-pad, top+h-pad)).
				LineTo(pt(left, top+h-pad)).
				Close()
		}
	}
	return p
}
