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

// Package raster computes exact anti-aliased pixel coverage for the simple
// shapes which make up display masks: rectangles, rounded rectangles,
// ellipses and straight line strokes.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer converts paths to pixel coverage, the fraction of each
// pixel's area inside the shape.  Coverage ranges from 0 (outside) to 1
// (inside).  A Rasterizer keeps its scratch buffers between calls, so one
// instance should be reused for many shapes.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the shape at the two ends of each stroked segment.
	Cap graphics.LineCapStyle

	edges     []edge
	active    []int
	cover     []float32 // per-pixel change of winding, reused for output
	area      []float32 // per-pixel partial winding
	outline   []vec.Vec2
	polyStart []int

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle, the
// identity CTM and a butt-capped stroke of width 1.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapButt,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.outline = r.outline[:0]
	r.polyStart = r.polyStart[:0]
}

// Fill rasterizes the path using the nonzero winding rule.  Open subpaths
// are closed implicitly.  The coverage of each row is passed to emit,
// starting at pixel xMin.  The coverage slice is only valid for the
// duration of the call.
func (r *Rasterizer) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	r.pathEdges(p)
	r.render(emit)
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// pathEdges flattens p and appends its edges, in device space.
func (r *Rasterizer) pathEdges(p *path.Data) {
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
			open = false
		}
	}
	if open && cur != start {
		r.addEdge(cur, start)
	}
}

// toDevice applies the CTM to a point.
func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the length of the vector v after applying the
// linear part of the CTM.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// addEdge appends the user-space segment a→b to the edge list.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	p := r.toDevice(a)
	q := r.toDevice(b)

	dy := q.Y - p.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		// horizontal edges carry no winding
		return
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = p.X, p.X
		r.bboxYMin, r.bboxYMax = p.Y, p.Y
		r.bboxEmpty = false
	}
	r.bboxXMin = min(r.bboxXMin, p.X, q.X)
	r.bboxXMax = max(r.bboxXMax, p.X, q.X)
	r.bboxYMin = min(r.bboxYMin, p.Y, q.Y)
	r.bboxYMax = max(r.bboxYMax, p.Y, q.Y)
}

// flattenQuad approximates a quadratic Bézier curve by n line segments,
// where n is chosen from the device-space deviation of the control point.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCube approximates a cubic Bézier curve by line segments, using
// Wang's bound for the number of segments.
func (r *Rasterizer) flattenCube(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Coverage model
//
// Each edge piece inside a pixel row contributes its signed vertical extent
// dy to two per-pixel accumulators:
//
//	cover[i] += dy                 (winding for every pixel right of i)
//	area[i]  += dy * (1 - xFrac)   (the part of pixel i right of the edge)
//
// Scanning a row from left to right, the coverage of pixel i is
// |sum(cover[:i]) + area[i]|, clamped to 1.  This is the signed area of
// the shape inside the pixel for the nonzero rule.

// render rasterizes the collected edges, one row at a time.
func (r *Rasterizer) render(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e inside row y to the cover and area
// buffers.  The piece is split wherever it crosses a vertical pixel
// boundary.  The return value reports whether anything was added.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xAt := func(y float64) float64 { return e.x0 + e.dxdy*(y-e.y0) }
	yAt := func(x float64) float64 { return e.y0 + (x-e.x0)/e.dxdy }

	xEnd := xAt(yBot)
	ya, xa := yTop, xAt(yTop)
	for ya < yBot {
		var px int
		yb, xb := yBot, xEnd
		switch {
		case xEnd > xa:
			px = int(math.Floor(xa))
			if bx := float64(px + 1); bx < xEnd {
				xb, yb = bx, min(max(yAt(bx), ya), yBot)
			}
		case xEnd < xa:
			px = int(math.Ceil(xa)) - 1
			if bx := float64(px); bx > xEnd {
				xb, yb = bx, min(max(yAt(bx), ya), yBot)
			}
		default:
			px = int(math.Floor(xa))
		}

		dy := sign * float32(yb-ya)
		switch {
		case px < xMin:
			r.cover[0] += dy
			r.area[0] += dy
		case px < xMax:
			frac := (xa+xb)/2 - float64(px)
			r.cover[px-xMin] += dy
			r.area[px-xMin] += dy * float32(1-frac)
		}
		ya, xa = yb, xb
		if xb == xEnd {
			break
		}
	}
	return true
}

// integrate turns the accumulated winding of one row into coverage
// values.  The result overwrites cover.
func integrate(cover, area []float32) {
	var winding float32
	for i := range cover {
		c := winding + area[i]
		winding += cover[i]
		if c < 0 {
			c = -c
		}
		cover[i] = min(c, 1)
	}
}

// trimZeros strips leading and trailing zeros from a coverage row.
// The result is nil if the row is empty.
func trimZeros(row []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness keeps the area lost to flattening a circle of radius
	// 6 pixels below one percent.
	defaultFlatness = 0.05

	// horizontalEdgeThreshold is the minimal vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroked segment.
	zeroLengthThreshold = 1e-10
)
