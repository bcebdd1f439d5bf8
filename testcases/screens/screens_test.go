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

package screens

import (
	"image"
	"image/color"
	"regexp"
	"testing"

	"seehuhn.de/go/pixelgreat"
)

func TestNames(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9_]+$`)
	seen := make(map[string]bool)
	for _, c := range All {
		if !valid.MatchString(c.Name) {
			t.Errorf("invalid name %q", c.Name)
		}
		if seen[c.Name] {
			t.Errorf("duplicate name %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestAllConfigs(t *testing.T) {
	card := TestCard(image.Pt(64, 48))
	for _, c := range All {
		t.Run(c.Name, func(t *testing.T) {
			opts := c.Options
			out, err := pixelgreat.Process(card, c.PixelSize, c.Scale, &opts)
			if err != nil {
				t.Fatal(err)
			}
			want := pixelgreat.ScaledSize(card.Rect.Size(), c.Scale)
			if got := out.Bounds().Size(); got != want {
				t.Errorf("output size %v, want %v", got, want)
			}
		})
	}
}

func TestCardLayout(t *testing.T) {
	img := TestCard(image.Pt(160, 90))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if got := img.NRGBAAt(2, 2); got != white {
		t.Errorf("first bar is %v, want white", got)
	}
	if got := img.NRGBAAt(157, 40); got != (color.NRGBA{A: 255}) {
		t.Errorf("last bar is %v, want black", got)
	}
	if got := img.NRGBAAt(1, 88); got != (color.NRGBA{A: 255}) {
		t.Errorf("ramp starts with %v, want black", got)
	}
	if got := img.NRGBAAt(158, 88); got != white {
		t.Errorf("ramp ends with %v, want white", got)
	}
}
