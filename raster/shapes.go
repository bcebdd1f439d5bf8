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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// by a cubic Bézier curve.
const kappa = 0.5522847498

// Rect returns a closed path for the rectangle r.
func Rect(r rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}

// RoundedRect returns a closed path for the rectangle r with circular
// corners.  The radius is limited to half the shorter side; a radius of
// zero or less gives a plain rectangle.
func RoundedRect(r rect.Rect, radius float64) *path.Data {
	radius = min(radius, (r.URx-r.LLx)/2, (r.URy-r.LLy)/2)
	if radius <= 0 {
		return Rect(r)
	}
	k := radius * (1 - kappa)

	x0, y0, x1, y1 := r.LLx, r.LLy, r.URx, r.URy
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0 + radius, Y: y0}).
		LineTo(vec.Vec2{X: x1 - radius, Y: y0}).
		CubeTo(vec.Vec2{X: x1 - k, Y: y0}, vec.Vec2{X: x1, Y: y0 + k}, vec.Vec2{X: x1, Y: y0 + radius}).
		LineTo(vec.Vec2{X: x1, Y: y1 - radius}).
		CubeTo(vec.Vec2{X: x1, Y: y1 - k}, vec.Vec2{X: x1 - k, Y: y1}, vec.Vec2{X: x1 - radius, Y: y1}).
		LineTo(vec.Vec2{X: x0 + radius, Y: y1}).
		CubeTo(vec.Vec2{X: x0 + k, Y: y1}, vec.Vec2{X: x0, Y: y1 - k}, vec.Vec2{X: x0, Y: y1 - radius}).
		LineTo(vec.Vec2{X: x0, Y: y0 + radius}).
		CubeTo(vec.Vec2{X: x0, Y: y0 + k}, vec.Vec2{X: x0 + k, Y: y0}, vec.Vec2{X: x0 + radius, Y: y0}).
		Close()
}

// Ellipse returns a closed path for the axis-aligned ellipse with the
// given centre and radii.
func Ellipse(c vec.Vec2, rx, ry float64) *path.Data {
	kx, ky := kappa*rx, kappa*ry
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: c.X + rx, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X + rx, Y: c.Y + ky}, vec.Vec2{X: c.X + kx, Y: c.Y + ry}, vec.Vec2{X: c.X, Y: c.Y + ry}).
		CubeTo(vec.Vec2{X: c.X - kx, Y: c.Y + ry}, vec.Vec2{X: c.X - rx, Y: c.Y + ky}, vec.Vec2{X: c.X - rx, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X - rx, Y: c.Y - ky}, vec.Vec2{X: c.X - kx, Y: c.Y - ry}, vec.Vec2{X: c.X, Y: c.Y - ry}).
		CubeTo(vec.Vec2{X: c.X + kx, Y: c.Y - ry}, vec.Vec2{X: c.X + rx, Y: c.Y - ky}, vec.Vec2{X: c.X + rx, Y: c.Y}).
		Close()
}

// Circle returns a closed path for the circle with centre c and radius r.
func Circle(c vec.Vec2, r float64) *path.Data {
	return Ellipse(c, r, r)
}

// Line returns an open path for the segment a→b, for use with
// [Rasterizer.Stroke].
func Line(a, b vec.Vec2) *path.Data {
	return (&path.Data{}).MoveTo(a).LineTo(b)
}
