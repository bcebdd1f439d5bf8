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

package pixelgreat

import (
	"fmt"
	"image"
	"math"
	"time"

	"seehuhn.de/go/pdf/graphics/blend"

	"seehuhn.de/go/pixelgreat/imgop"
	"seehuhn.de/go/pixelgreat/mask"
)

// Filter applies a fixed set of display effects to images of one size.
//
// The masks are computed once by [NewFilter].  A Filter is never modified
// afterwards and can be used by several goroutines at the same time.
type Filter struct {
	p          Params
	inputSize  image.Point
	outputSize image.Point

	gridTile  *image.NRGBA
	gridRaw   *image.NRGBA
	gridMask  *image.NRGBA
	scanRaw   *image.NRGBA
	scanlines *image.NRGBA
}

// NewFilter prepares a filter for input images of the given size.
//
// Some settings are only needed if other settings enable the corresponding
// effect.  The grid mask of LCD and CRT TV screens needs PixelAspect and
// Rounding, scanlines need ScanlineSpacing, ScanlineSize and ScanlineBlur,
// and pixelation needs PixelAspect.  If such a setting is missing, the
// returned error matches [ErrMissingParameter].
func NewFilter(inputSize image.Point, p Params) (*Filter, error) {
	if inputSize.X < 1 || inputSize.Y < 1 {
		return nil, &ConfigError{Field: "input size", Reason: fmt.Sprintf("empty image %dx%d", inputSize.X, inputSize.Y)}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	out := p.OutputSize
	if out == (image.Point{}) {
		out = inputSize
		if err := checkRange("output width", float64(out.X), minOutputDim, math.Inf(1)); err != nil {
			return nil, err
		}
		if err := checkRange("output height", float64(out.Y), minOutputDim, math.Inf(1)); err != nil {
			return nil, err
		}
	}

	scanStrength := 0.0
	if p.ScanlineStrength != nil {
		scanStrength = *p.ScanlineStrength
	} else if p.ScreenType != LCD {
		scanStrength = 1
	}

	useGrid := p.GridStrength > 0
	useScan := scanStrength > 0
	if useGrid && p.ScreenType != CRTMonitor {
		if p.PixelAspect == nil {
			return nil, missing("pixel aspect", "needed for the subpixel grid")
		}
		if p.Rounding == nil {
			return nil, missing("rounding", "needed for the subpixel grid")
		}
	}
	if useScan {
		switch {
		case p.ScanlineSpacing == nil:
			return nil, missing("scanline spacing", "needed for scanlines")
		case p.ScanlineSize == nil:
			return nil, missing("scanline size", "needed for scanlines")
		case p.ScanlineBlur == nil:
			return nil, missing("scanline blur", "needed for scanlines")
		}
	}
	if p.Pixelate && p.PixelAspect == nil {
		return nil, missing("pixel aspect", "needed for pixelation")
	}

	f := &Filter{
		p:          p,
		inputSize:  inputSize,
		outputSize: out,
	}
	log := Logger()

	if useScan {
		t0 := time.Now()
		spacing := math.Round(p.PixelSize * *p.ScanlineSpacing)
		dir := mask.ScanlineDirection(p.ScreenType, p.Direction)
		f.scanRaw = mask.Scanlines(out, spacing, *p.ScanlineSize, *p.ScanlineBlur, dir)
		f.scanlines = imgop.Mix(f.scanRaw, white, 1-scanStrength)
		log.Debug("scanline mask",
			"direction", dir,
			"spacing", spacing,
			"size", out,
			"duration", time.Since(t0))
	}

	if useGrid {
		t0 := time.Now()
		aspect := 1.0
		if p.PixelAspect != nil {
			aspect = *p.PixelAspect
		}
		rounding := 0.0
		if p.Rounding != nil {
			rounding = *p.Rounding
		}
		tile, err := mask.Tile(mask.TileSpec{
			Screen:    p.ScreenType,
			Size:      p.PixelSize,
			Padding:   p.PixelPadding,
			Direction: p.Direction,
			Aspect:    aspect,
			Rounding:  rounding,
		})
		if err != nil {
			return nil, fmt.Errorf("grid mask: %w", err)
		}
		count := mask.GridCount(p.ScreenType, p.Direction, p.PixelSize, aspect, out)
		f.gridTile = tile
		f.gridRaw = mask.TileCanvas(tile, out, black, count)
		f.gridMask = imgop.Mix(f.gridRaw, white, 1-p.GridStrength)
		log.Debug("grid mask",
			"screen", p.ScreenType,
			"tile", tile.Rect.Size(),
			"size", out,
			"duration", time.Since(t0))
	}

	return f, nil
}

func missing(field, reason string) error {
	return &ConfigError{Field: field, Missing: true, Reason: reason}
}

// Apply returns a filtered copy of img.  The image must have the input size
// of the filter and the color mode given in the parameters, otherwise an
// error matching [ErrImageMismatch] is returned.
func (f *Filter) Apply(img image.Image) (image.Image, error) {
	if got := img.Bounds().Size(); got != f.inputSize {
		return nil, &MismatchError{
			Field: "size",
			Want:  formatSize(f.inputSize),
			Got:   formatSize(got),
		}
	}
	m, err := imgop.ModeOf(img)
	if err != nil {
		return nil, &MismatchError{Field: "mode", Want: f.p.Mode.String(), Got: fmt.Sprintf("%T", img)}
	}
	if m != f.p.Mode {
		return nil, &MismatchError{Field: "mode", Want: f.p.Mode.String(), Got: m.String()}
	}

	res := f.apply(imgop.Import(img))
	return imgop.Export(res, f.p.Mode), nil
}

// apply runs the effects in their fixed order.
func (f *Filter) apply(img *image.NRGBA) *image.NRGBA {
	p := &f.p
	half := p.PixelSize / 2

	if p.Washout > 0 {
		img = Washout(img, p.Washout)
	}

	if p.Pixelate {
		img = Pixelate(img, p.PixelSize, *p.PixelAspect, f.outputSize)
	} else {
		img = imgop.Resize(img, f.outputSize, imgop.Nearest)
	}

	if p.Blur > 0 {
		img = imgop.GaussianBlur(img, half*p.Blur)
	}
	if f.scanlines != nil {
		img = combine(img, f.scanlines, blend.ModeMultiply)
	}
	if f.gridMask != nil {
		img = combine(img, f.gridMask, blend.ModeMultiply)
	}
	if p.BloomSize > 0 && p.BloomStrength > 0 {
		img = Bloom(img, half*p.BloomSize, p.BloomStrength)
	}
	return img
}

// InputSize returns the image size accepted by [Filter.Apply].
func (f *Filter) InputSize() image.Point {
	return f.inputSize
}

// OutputSize returns the size of the images returned by [Filter.Apply].
func (f *Filter) OutputSize() image.Point {
	return f.outputSize
}

// GridTile returns a copy of one repeat unit of the subpixel mask, or nil
// if the filter has no subpixel mask.
func (f *Filter) GridTile() *image.NRGBA {
	return cloneOrNil(f.gridTile)
}

// GridMask returns a copy of the subpixel mask, or nil if the filter has
// none.  If adjusted is set, the mask is lightened according to the grid
// strength, exactly as it is applied to images.
func (f *Filter) GridMask(adjusted bool) *image.NRGBA {
	if adjusted {
		return cloneOrNil(f.gridMask)
	}
	return cloneOrNil(f.gridRaw)
}

// ScanlineMask returns a copy of the scanline mask, or nil if the filter
// shows no scanlines.  If adjusted is set, the mask is lightened according
// to the scanline strength.
func (f *Filter) ScanlineMask(adjusted bool) *image.NRGBA {
	if adjusted {
		return cloneOrNil(f.scanlines)
	}
	return cloneOrNil(f.scanRaw)
}

func cloneOrNil(img *image.NRGBA) *image.NRGBA {
	if img == nil {
		return nil
	}
	return imgop.Clone(img)
}

func formatSize(p image.Point) string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}
