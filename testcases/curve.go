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

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "circle_small",
		Path:   circle(8.5, 8.25, 2.5),
		Width:  16,
		Height: 16,
		Op:     Fill{},
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rounded_rect",
		Path:   roundedRect(8, 12, 56, 52, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rounded_bar",
		Path:   roundedRect(24, 4, 40, 60, 8),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "triad",
		Path:   triad(2, 2, 60, 6),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 0, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 10, 5, 54, 5, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// kappa is the control point distance for a cubic quarter circle.
const kappa = 0.5522847498

// circle builds a circular path using four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an axis-aligned elliptical path.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx, ky := kappa*rx, kappa*ry
	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// roundedRect builds a rectangle with circular corners of radius r.
func roundedRect(x1, y1, x2, y2, r float64) *path.Data {
	k := r * (1 - kappa)
	return (&path.Data{}).
		MoveTo(pt(x1+r, y1)).
		LineTo(pt(x2-r, y1)).
		CubeTo(pt(x2-k, y1), pt(x2, y1+k), pt(x2, y1+r)).
		LineTo(pt(x2, y2-r)).
		CubeTo(pt(x2, y2-k), pt(x2-k, y2), pt(x2-r, y2)).
		LineTo(pt(x1+r, y2)).
		CubeTo(pt(x1+k, y2), pt(x1, y2-k), pt(x1, y2-r)).
		LineTo(pt(x1, y1+r)).
		CubeTo(pt(x1, y1+k), pt(x1+k, y1), pt(x1+r, y1)).
		Close()
}

// triad builds the eleven dots of a shadow-mask tile: a w×(w/√3) box
// with dots on a 7×3 lattice.
func triad(x0, y0, w, r float64) *path.Data {
	h := w / math.Sqrt(3)
	dots := [][2]int{
		{0, 0}, {6, 0}, {0, 2}, {6, 2}, {3, 1},
		{2, 0}, {2, 2}, {5, 1},
		{1, 1}, {4, 0}, {4, 2},
	}
	p := &path.Data{}
	for _, d := range dots {
		cx := x0 + w*float64(d[0])/6
		cy := y0 + h*float64(d[1])/2
		kx := kappa * r
		p = p.MoveTo(pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy-kx), pt(cx+kx, cy-r), pt(cx, cy-r)).
			CubeTo(pt(cx-kx, cy-r), pt(cx-r, cy-kx), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy+kx), pt(cx-kx, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx+kx, cy+r), pt(cx+r, cy+kx), pt(cx+r, cy)).
			Close()
	}
	return p
}

// quadraticCurve builds a closed path with a quadratic Bézier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed path with a cubic Bézier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}
