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

package imgop

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/draw"
	"seehuhn.de/go/pdf/graphics/blend"
)

// gradient returns a w×h opaque test image with distinct pixel values.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func TestModeOf(t *testing.T) {
	m, err := ModeOf(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if err != nil || m != RGB {
		t.Errorf("RGBA image: got %v, %v", m, err)
	}
	m, err = ModeOf(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if err != nil || m != RGBA {
		t.Errorf("NRGBA image: got %v, %v", m, err)
	}
	_, err = ModeOf(image.NewGray(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("Gray image: expected ErrUnsupportedImage, got %v", err)
	}
}

func TestImportExport(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 3, 5, 5))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}

	imported := Import(src)
	if imported.Rect != image.Rect(0, 0, 3, 2) {
		t.Fatalf("imported bounds %v", imported.Rect)
	}
	for i := 3; i < len(imported.Pix); i += 4 {
		if imported.Pix[i] != 255 {
			t.Fatalf("alpha at byte %d is %d", i, imported.Pix[i])
		}
	}

	exported := Export(imported, RGB).(*image.RGBA)
	for y := range 2 {
		for x := range 3 {
			want := src.RGBAAt(x+2, y+3)
			want.A = 255
			if got := exported.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}

	if Export(imported, RGBA) != image.Image(imported) {
		t.Error("RGBA export should return the buffer itself")
	}
}

func TestConvert(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 1))
	g.Pix[0], g.Pix[1] = 10, 200
	out, ok := Convert(g, RGBA).(*image.NRGBA)
	if !ok {
		t.Fatalf("Convert returned %T", out)
	}
	want := []uint8{10, 10, 10, 255, 200, 200, 200, 255}
	if d := cmp.Diff(want, out.Pix); d != "" {
		t.Errorf("pixels (-want +got):\n%s", d)
	}
}

func TestResizeFlat(t *testing.T) {
	c := color.NRGBA{R: 17, G: 128, B: 250, A: 255}
	src := New(image.Pt(23, 17), c)
	for _, tc := range []struct {
		name string
		k    draw.Interpolator
	}{
		{"nearest", Nearest},
		{"box", Box},
		{"hamming", Hamming},
		{"bicubic", Bicubic},
		{"lanczos", Lanczos},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for _, size := range []image.Point{{5, 4}, {23, 17}, {40, 31}} {
				out := Resize(src, size, tc.k)
				if out.Rect.Size() != size {
					t.Fatalf("size %v, expected %v", out.Rect.Size(), size)
				}
				if !Equal(out, New(size, c)) {
					t.Errorf("%v: flat image not preserved", size)
				}
			}
		})
	}
}

func TestResizeSameSizeCopies(t *testing.T) {
	src := gradient(6, 4)
	out := Resize(src, image.Pt(6, 4), Hamming)
	if !Equal(src, out) {
		t.Fatal("same-size resize changed the image")
	}
	out.Pix[0]++
	if src.Pix[0] == out.Pix[0] {
		t.Error("same-size resize returned shared pixel data")
	}
}

func TestBoxAverages(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	vals := []uint8{0, 100, 200, 240}
	for x, v := range vals {
		src.SetNRGBA(x, 0, color.NRGBA{R: v, G: v, B: v, A: 255})
	}
	out := Resize(src, image.Pt(2, 1), Box)
	for x, want := range []int{50, 220} {
		got := int(out.NRGBAAt(x, 0).R)
		if got < want-1 || got > want+1 {
			t.Errorf("pixel %d: got %d, want %d±1", x, got, want)
		}
	}
}

func TestNearestUpscale(t *testing.T) {
	src := gradient(3, 2)
	out := Resize(src, image.Pt(9, 6), Nearest)
	for y := range 6 {
		for x := range 9 {
			if got, want := out.NRGBAAt(x, y), src.NRGBAAt(x/3, y/3); got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestGaussianBlur(t *testing.T) {
	c := color.NRGBA{R: 40, G: 90, B: 200, A: 255}
	flat := New(image.Pt(12, 9), c)
	if !Equal(GaussianBlur(flat, 2.5), flat) {
		t.Error("blur changed a flat image")
	}

	dot := New(image.Pt(11, 11), color.NRGBA{A: 255})
	dot.SetNRGBA(5, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	out := GaussianBlur(dot, 1)
	centre := out.NRGBAAt(5, 5).R
	if centre == 0 || centre == 255 {
		t.Errorf("centre value %d, expected partial intensity", centre)
	}
	for _, p := range []image.Point{{4, 5}, {6, 5}, {5, 4}, {5, 6}} {
		v := out.NRGBAAt(p.X, p.Y).R
		if v >= centre || v == 0 {
			t.Errorf("neighbour %v value %d, centre %d", p, v, centre)
		}
		if v != out.NRGBAAt(5, 4).R {
			t.Errorf("blur is not symmetric at %v", p)
		}
	}

	if !Equal(GaussianBlur(dot, 0), dot) {
		t.Error("zero radius blur changed the image")
	}
}

func TestGaussianBlurAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 6))
	red := color.NRGBA{R: 255, A: 255}
	for y := range 6 {
		for x := 6; x < 12; x++ {
			img.SetNRGBA(x, y, red)
		}
	}
	out := GaussianBlur(img, 1.5)
	for y := range 6 {
		for x := 6; x < 12; x++ {
			c := out.NRGBAAt(x, y)
			if c.R != 255 || c.G != 0 || c.B != 0 {
				t.Fatalf("pixel (%d,%d) = %v, transparent neighbours changed the color", x, y, c)
			}
		}
	}
	if a := out.NRGBAAt(6, 3).A; a == 0 || a == 255 {
		t.Errorf("alpha at the edge is %d, expected partial", a)
	}
}

func TestComposite(t *testing.T) {
	img := gradient(7, 5)
	white := New(image.Pt(7, 5), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	black := New(image.Pt(7, 5), color.NRGBA{A: 255})

	out, err := Composite(img, white, blend.ModeMultiply)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(out, img) {
		t.Error("multiply by white changed the image")
	}

	out, err = Composite(img, black, blend.ModeMultiply)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(out, black) {
		t.Error("multiply by black is not black")
	}

	out, err = Composite(img, black, blend.ModeLighten)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(out, img) {
		t.Error("lighten with black changed the image")
	}

	gray := New(image.Pt(7, 5), color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	out, err = Composite(img, gray, blend.ModeLighten)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 5 {
		for x := range 7 {
			a, o := img.NRGBAAt(x, y), out.NRGBAAt(x, y)
			if o.R != max(a.R, 100) || o.G != max(a.G, 100) || o.B != max(a.B, 100) {
				t.Fatalf("pixel (%d,%d): lighten gave %v from %v", x, y, o, a)
			}
		}
	}

	if _, err := Composite(img, gray, blend.ModeHue); err == nil {
		t.Error("expected an error for a non-separable blend mode")
	}
	if _, err := Composite(img, gradient(3, 3), blend.ModeMultiply); err == nil {
		t.Error("expected an error for mismatched sizes")
	}
}

func TestCompositeMultiply(t *testing.T) {
	img := gradient(16, 16)
	img.SetNRGBA(3, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 60})
	gray := New(image.Pt(16, 16), color.NRGBA{R: 128, G: 64, B: 255, A: 255})

	out, err := Composite(img, gray, blend.ModeMultiply)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 16 {
		for x := range 16 {
			a, o := img.NRGBAAt(x, y), out.NRGBAAt(x, y)
			want := [3]int{int(a.R) * 128 / 255, int(a.G) * 64 / 255, int(a.B)}
			got := [3]int{int(o.R), int(o.G), int(o.B)}
			for c := range got {
				if d := got[c] - want[c]; d < -1 || d > 1 {
					t.Fatalf("pixel (%d,%d): multiply gave %v, want %v", x, y, got, want)
				}
			}
			if o.A != a.A {
				t.Fatalf("pixel (%d,%d): alpha %d, want %d", x, y, o.A, a.A)
			}
		}
	}
}

func TestMix(t *testing.T) {
	img := gradient(4, 4)
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 77})

	if !Equal(Mix(img, color.NRGBA{R: 255, G: 255, B: 255}, 0), img) {
		t.Error("mix with t=0 changed the image")
	}

	out := Mix(img, color.NRGBA{R: 255, G: 255, B: 255}, 1)
	for y := range 4 {
		for x := range 4 {
			p := out.NRGBAAt(x, y)
			if p.R != 255 || p.G != 255 || p.B != 255 {
				t.Fatalf("pixel (%d,%d) is %v", x, y, p)
			}
		}
	}
	if a := out.NRGBAAt(0, 0).A; a != 77 {
		t.Errorf("alpha changed to %d", a)
	}

	half := Mix(img, color.NRGBA{}, 0.5)
	if r := half.NRGBAAt(0, 0).R; r != 5 {
		t.Errorf("half mix of 10 towards 0: got %d", r)
	}
}

func TestRotateClockwise(t *testing.T) {
	src := gradient(3, 2)
	out := RotateClockwise(src)
	if out.Rect != image.Rect(0, 0, 2, 3) {
		t.Fatalf("rotated bounds %v", out.Rect)
	}
	for y := range 2 {
		for x := range 3 {
			// the left column becomes the top row
			if got, want := out.NRGBAAt(1-y, x), src.NRGBAAt(x, y); got != want {
				t.Errorf("source (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPasteClips(t *testing.T) {
	dst := New(image.Pt(4, 4), color.NRGBA{A: 255})
	src := New(image.Pt(3, 3), color.NRGBA{R: 255, A: 255})
	Paste(dst, src, image.Pt(2, -1))

	for y := range 4 {
		for x := range 4 {
			inside := x >= 2 && y <= 1
			if got := dst.NRGBAAt(x, y).R == 255; got != inside {
				t.Errorf("pixel (%d,%d): painted=%t", x, y, got)
			}
		}
	}
}
