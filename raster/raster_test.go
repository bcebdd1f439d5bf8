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
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// render collects the coverage of a w×h clip area into a flat slice.
func render(w, h int, draw func(r *Rasterizer, emit func(y, xMin int, cov []float32))) []float32 {
	out := make([]float32, w*h)
	r := NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	draw(r, func(y, xMin int, cov []float32) {
		copy(out[y*w+xMin:], cov)
	})
	return out
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	coverage := render(10, 1, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Fill(triangle, emit)
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestRectangleCoverage(t *testing.T) {
	// 1.25 ≤ x < 3.5, 0.5 ≤ y < 2
	box := Rect(rect.Rect{LLx: 1.25, LLy: 0.5, URx: 3.5, URy: 2})
	coverage := render(5, 3, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Fill(box, emit)
	})

	colWeight := []float32{0, 0.75, 1, 0.5, 0}
	rowWeight := []float32{0.5, 1, 0}
	for y := range 3 {
		for x := range 5 {
			expected := colWeight[x] * rowWeight[y]
			got := coverage[y*5+x]
			if math.Abs(float64(got-expected)) > 1e-6 {
				t.Errorf("pixel (%d,%d): expected %.4f, got %.4f", x, y, expected, got)
			}
		}
	}
}

// TestOrientation checks that the winding direction of a path does not
// affect its coverage.
func TestOrientation(t *testing.T) {
	cw := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 7, Y: 2}).
		LineTo(vec.Vec2{X: 3, Y: 7}).
		Close()
	ccw := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 3, Y: 7}).
		LineTo(vec.Vec2{X: 7, Y: 2}).
		Close()

	a := render(8, 8, func(r *Rasterizer, emit func(int, int, []float32)) { r.Fill(cw, emit) })
	b := render(8, 8, func(r *Rasterizer, emit func(int, int, []float32)) { r.Fill(ccw, emit) })
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-6 {
			t.Fatalf("pixel %d: %.4f != %.4f", i, a[i], b[i])
		}
	}
}

func TestCircleArea(t *testing.T) {
	const radius = 6
	circle := Circle(vec.Vec2{X: 8, Y: 8}, radius)
	coverage := render(16, 16, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Fill(circle, emit)
	})

	var total float64
	for _, c := range coverage {
		total += float64(c)
	}
	expected := math.Pi * radius * radius
	if math.Abs(total-expected) > 0.02*expected {
		t.Errorf("circle area: expected %.2f, got %.2f", expected, total)
	}
	if c := coverage[8*16+8]; math.Abs(float64(c-1)) > 1e-5 {
		t.Errorf("centre pixel coverage %.4f, expected 1", c)
	}
	if coverage[0] != 0 {
		t.Errorf("corner pixel coverage %.4f, expected 0", coverage[0])
	}
}

func TestCTM(t *testing.T) {
	// a unit square, scaled by 4, covers exactly the 4×4 top-left block
	square := Rect(rect.Rect{URx: 1, URy: 1})
	coverage := render(8, 8, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.CTM = matrix.Scale(4, 4)
		r.Fill(square, emit)
	})
	for y := range 8 {
		for x := range 8 {
			var expected float32
			if x < 4 && y < 4 {
				expected = 1
			}
			if got := coverage[y*8+x]; got != expected {
				t.Errorf("pixel (%d,%d): expected %.1f, got %.4f", x, y, expected, got)
			}
		}
	}
}

// TestStrokeMatchesFill checks that a butt-capped horizontal stroke covers
// the same pixels as the corresponding rectangle.
func TestStrokeMatchesFill(t *testing.T) {
	for _, tc := range []struct {
		name string
		cap  graphics.LineCapStyle
		box  rect.Rect
	}{
		{"butt", graphics.LineCapButt, rect.Rect{LLx: 2, LLy: 3, URx: 10, URy: 6}},
		{"square", graphics.LineCapSquare, rect.Rect{LLx: 0.5, LLy: 3, URx: 11.5, URy: 6}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			line := Line(vec.Vec2{X: 2, Y: 4.5}, vec.Vec2{X: 10, Y: 4.5})
			stroked := render(12, 8, func(r *Rasterizer, emit func(int, int, []float32)) {
				r.Width = 3
				r.Cap = tc.cap
				r.Stroke(line, emit)
			})
			filled := render(12, 8, func(r *Rasterizer, emit func(int, int, []float32)) {
				r.Fill(Rect(tc.box), emit)
			})
			for i := range stroked {
				if math.Abs(float64(stroked[i]-filled[i])) > 1e-5 {
					t.Errorf("pixel (%d,%d): stroke %.4f, fill %.4f",
						i%12, i/12, stroked[i], filled[i])
				}
			}
		})
	}
}

func TestRoundedRect(t *testing.T) {
	box := rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 20}

	sharp := render(20, 20, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Fill(RoundedRect(box, 0), emit)
	})
	for i, c := range sharp {
		if c != 1 {
			t.Fatalf("radius 0: pixel %d has coverage %.4f", i, c)
		}
	}

	// a radius of half the side gives a circle
	round := render(20, 20, func(r *Rasterizer, emit func(int, int, []float32)) {
		r.Fill(RoundedRect(box, 50), emit)
	})
	var total float64
	for _, c := range round {
		total += float64(c)
	}
	if expected := math.Pi * 100; math.Abs(total-expected) > 0.02*expected {
		t.Errorf("clamped radius: expected area %.2f, got %.2f", expected, total)
	}
}

func TestCanvas(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	for i := range 4 {
		img.SetNRGBA(i, 0, color.NRGBA{A: 255})
	}
	c := NewCanvas(img)
	c.Fill(Rect(rect.Rect{LLx: 1, URx: 2.5, URy: 1}), color.NRGBA{R: 200, A: 255})

	expected := []uint8{0, 200, 100, 0}
	for x, want := range expected {
		got := img.NRGBAAt(x, 0)
		if got.R != want || got.G != 0 || got.A != 255 {
			t.Errorf("pixel %d: got %v, expected red %d", x, got, want)
		}
	}
}

func BenchmarkCircle(b *testing.B) {
	circle := Circle(vec.Vec2{X: 40, Y: 40}, 36)
	r := NewRasterizer(rect.Rect{URx: 80, URy: 80})
	emit := func(y, xMin int, coverage []float32) {}
	for b.Loop() {
		r.Fill(circle, emit)
	}
}
