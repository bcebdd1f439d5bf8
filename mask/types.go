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

// Package mask synthesizes the overlay images which simulate the physical
// structure of a display: the subpixel grid of LCD and CRT screens, and
// the dark gaps between scanlines.
//
// Grid masks are built from a small tile, drawn with supersampling and
// reduced for anti-aliasing, which [TileCanvas] then repeats across the
// output.  All masks are opaque NRGBA images; white leaves the underlying
// image unchanged when multiplied in, black removes it.
package mask

import "fmt"

// ScreenType selects the subpixel geometry of a display.
type ScreenType int

// These are the supported screen types.
const (
	// LCD has three rectangular bars per pixel, in a regular grid.
	LCD ScreenType = iota

	// CRTTV has LCD-like bars, with every other column (or row) shifted
	// by half a pixel, forming a brick pattern.
	CRTTV

	// CRTMonitor has round phosphor dots arranged in triads.
	CRTMonitor
)

func (s ScreenType) String() string {
	switch s {
	case LCD:
		return "lcd"
	case CRTTV:
		return "crt_tv"
	case CRTMonitor:
		return "crt_monitor"
	default:
		return fmt.Sprintf("ScreenType(%d)", int(s))
	}
}

// ParseScreenType converts the name of a screen type, as returned by
// [ScreenType.String], back to a ScreenType.
func ParseScreenType(s string) (ScreenType, error) {
	for _, t := range []ScreenType{LCD, CRTTV, CRTMonitor} {
		if s == t.String() {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown screen type %q", s)
}

// Direction is the orientation of subpixel stripes and dot rows.
type Direction int

// These are the two possible directions.
const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts "vertical" or "horizontal" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// Complement returns the other direction.
func (d Direction) Complement() Direction {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// ScanlineDirection returns the direction of the scanlines for a screen
// whose grid runs in direction d.  Scanlines cross the subpixel stripes,
// except on CRT monitors where they follow the dot rows.
func ScanlineDirection(s ScreenType, d Direction) Direction {
	if s == CRTMonitor {
		return d
	}
	return d.Complement()
}
