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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// vectorCircle renders a filled circle with x/image/vector.
func vectorCircle(size int, cx, cy, radius float32) *image.Alpha {
	const k = float32(kappa)
	kr := k * radius

	r := vector.NewRasterizer(size, size)
	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}

// TestMatchesVector compares circle coverage with the rasterizer from
// golang.org/x/image/vector.  Both compute exact area coverage, so the
// only differences come from curve flattening and 8-bit quantization.
func TestMatchesVector(t *testing.T) {
	const size = 64
	c := vec.Vec2{X: 31.3, Y: 32}
	radius := 25.2

	got := render(size, size, func(r *Rasterizer, emit func(y, xMin int, cov []float32)) {
		r.Fill(Circle(c, radius), emit)
	})
	want := vectorCircle(size, float32(c.X), float32(c.Y), float32(radius))

	var maxDiff, sumGot, sumWant float64
	for y := range size {
		for x := range size {
			g := float64(got[y*size+x])
			w := float64(want.AlphaAt(x, y).A) / 255
			maxDiff = max(maxDiff, math.Abs(g-w))
			sumGot += g
			sumWant += w
		}
	}
	if maxDiff > 0.1 {
		t.Errorf("max pixel difference %.3f", maxDiff)
	}
	if rel := math.Abs(sumGot-sumWant) / sumWant; rel > 0.01 {
		t.Errorf("total coverage %.2f vs %.2f", sumGot, sumWant)
	}
}

func BenchmarkFillCircle(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := float64(size)
			clip := rect.Rect{URx: s, URy: s}
			r := NewRasterizer(clip)
			circle := Circle(vec.Vec2{X: s / 2, Y: s / 2}, 0.45*s)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			emit := func(y, xMin int, coverage []float32) {
				row := dst.Pix[y*dst.Stride+xMin:]
				for i, c := range coverage {
					row[i] = uint8(c * 255)
				}
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(circle, emit)
			}
		})
	}
}

func BenchmarkVectorCircle(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := float32(size)
			b.ReportAllocs()
			for b.Loop() {
				vectorCircle(size, s/2, s/2, 0.45*s)
			}
		})
	}
}
