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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders every segment of the path as a band of the given Width,
// with Cap at both ends.  Curves are flattened first.  Consecutive
// segments are stroked independently, no joins are added; the bands are
// combined with the nonzero winding rule.  The emit callback has the same
// contract as for [Rasterizer.Fill].
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	if r.Width <= 0 {
		return
	}

	r.outline = r.outline[:0]
	r.polyStart = r.polyStart[:0]

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addStrokeSegment(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], r.addStrokeSegment)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addStrokeSegment)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addStrokeSegment(cur, start)
			cur = start
		}
	}

	r.fillOutlines(emit)
}

// addStrokeSegment appends the outline polygon of one stroked segment.
// All polygons have the same orientation, so that overlaps do not cancel.
func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	hw := r.Width / 2
	t := d.Mul(1 / l)
	n := vec.Vec2{X: -t.Y, Y: t.X}

	if r.Cap == graphics.LineCapSquare {
		a = a.Sub(t.Mul(hw))
		b = b.Add(t.Mul(hw))
	}

	r.polyStart = append(r.polyStart, len(r.outline))
	r.outline = append(r.outline, a.Add(n.Mul(hw)), b.Add(n.Mul(hw)))
	if r.Cap == graphics.LineCapRound {
		r.addArc(b, hw, n, -math.Pi)
	} else {
		r.outline = append(r.outline, b.Sub(n.Mul(hw)))
	}
	r.outline = append(r.outline, a.Sub(n.Mul(hw)))
	if r.Cap == graphics.LineCapRound {
		r.addArc(a, hw, n.Mul(-1), -math.Pi)
	}
}

// addArc appends the points of a circular arc, excluding the start point.
// The number of chords is chosen so that the sagitta in device space
// stays below Flatness.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}))

	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(1, int(math.Ceil(math.Abs(sweep)/step)))
	}

	dt := sweep / float64(n)
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// fillOutlines fills all collected stroke polygons as one compound shape.
func (r *Rasterizer) fillOutlines(emit func(y, xMin int, coverage []float32)) {
	if len(r.polyStart) == 0 {
		return
	}

	r.beginEdges()
	for i, s := range r.polyStart {
		e := len(r.outline)
		if i+1 < len(r.polyStart) {
			e = r.polyStart[i+1]
		}
		poly := r.outline[s:e]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.render(emit)
}
