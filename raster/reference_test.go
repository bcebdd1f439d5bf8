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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pixelgreat/testcases"
)

// TestAgainstReference compares the rasterizer with images rendered by
// Ghostscript.  The reference images are not part of the repository, so
// this test only compares anything after running
//
//	go run ./testcases/genpdf
//
// from the module root, which needs gs on the PATH.  Test cases without a
// reference image are skipped.  TestCasesRender runs without them.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image, run testcases/genpdf")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				w, h := tc.Width, tc.Height
				actual := make([]byte, w*h)
				renderExample(tc, actual, w, h, w)

				if err := compareImages(name, ref, actual, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// TestCasesRender checks that every test case draws something inside its
// canvas.  Unlike TestAgainstReference, this needs no reference images.
func TestCasesRender(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				buf := make([]byte, tc.Width*tc.Height)
				renderExample(tc, buf, tc.Width, tc.Height, tc.Width)
				if !slices.ContainsFunc(buf, func(b byte) bool { return b > 0 }) {
					t.Error("nothing drawn")
				}
			})
		}
	}
}

// renderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
func renderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	clip := rect.Rect{
		URx: float64(width),
		URy: float64(height),
	}
	r := NewRasterizer(clip)
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	emit := func(y, xMin int, coverage []float32) {
		row := buf[y*stride:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*256))))
		}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		r.Fill(tc.Path, emit)
	case testcases.Stroke:
		r.Width = op.Width
		r.Cap = op.Cap
		r.Stroke(tc.Path, emit)
	}
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	if len(expected) != len(actual) {
		return fmt.Errorf("reference has %d pixels, want %d", len(expected), len(actual))
	}
	total := w * h

	diffs := make([]int, total)
	for i := range total {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	// - at least 80% of pixels are identical (p80 == 0)
	// - at least 95% of differences are < 64 (p95 < 64)
	// - at least 99% of differences are < 128 (p99 < 128)
	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes a 3-panel image to debug/: actual (left), diff
// (middle, green where too light, red where too dark) and reference
// (right).
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			diff := int(expected[i]) - int(actual[i])
			switch {
			case diff > 0:
				img.SetRGBA(x+w, y, color.RGBA{G: uint8(diff), A: 255})
			case diff < 0:
				img.SetRGBA(x+w, y, color.RGBA{R: uint8(-diff), A: 255})
			default:
				img.SetRGBA(x+w, y, color.RGBA{A: 255})
			}

			e := expected[i]
			img.SetRGBA(x+2*w, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
