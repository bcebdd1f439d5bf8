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

// Command gallery renders every configuration from the screens package,
// for visual inspection.  By default a synthetic test card is used as the
// input image; a PNG file can be given instead.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/pixelgreat"
	"seehuhn.de/go/pixelgreat/testcases/screens"
)

func main() {
	outDir := flag.String("o", "gallery", "output directory")
	input := flag.String("i", "", "input PNG file (default: test card)")
	width := flag.Int("w", 320, "test card width")
	height := flag.Int("h", 240, "test card height")
	flag.Parse()

	if err := run(*outDir, *input, image.Pt(*width, *height)); err != nil {
		fmt.Fprintln(os.Stderr, "gallery:", err)
		os.Exit(1)
	}
}

func run(outDir, input string, size image.Point) error {
	var src image.Image
	if input != "" {
		img, err := readPNG(input)
		if err != nil {
			return err
		}
		src = img
	} else {
		src = screens.TestCard(size)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	if err := writePNG(filepath.Join(outDir, "input.png"), src); err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, c := range screens.All {
		g.Go(func() error {
			opts := c.Options
			out, err := pixelgreat.Process(src, c.PixelSize, c.Scale, &opts)
			if err != nil {
				return fmt.Errorf("%s: %w", c.Name, err)
			}
			return writePNG(filepath.Join(outDir, c.Name+".png"), out)
		})
	}
	return g.Wait()
}

func readPNG(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
