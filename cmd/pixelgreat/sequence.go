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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// sequence is a list of numbered image files, like img0000.png,
// img0001.png, ...
type sequence struct {
	Files  []string // in numerical order
	Digits int
}

var trailingDigits = regexp.MustCompile(`^(.*?)([0-9]+)$`)

// findSequence returns all files which belong to the same sequence as
// name.  Files belong to the sequence if they are in the same directory,
// and differ from name only in the number before the extension.  The
// number must have the same number of digits.
func findSequence(name string) (*sequence, error) {
	dir, base := filepath.Split(name)
	ext := filepath.Ext(base)
	m := trailingDigits.FindStringSubmatch(strings.TrimSuffix(base, ext))
	if m == nil {
		return nil, fmt.Errorf("%s: file name does not end in a number", name)
	}
	prefix, digits := m[1], len(m[2])

	entries, err := os.ReadDir(filepath.Join(dir, "."))
	if err != nil {
		return nil, err
	}

	type frame struct {
		num  int
		name string
	}
	var frames []frame
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n, ok := frameNumber(e.Name(), prefix, ext, digits)
		if !ok {
			continue
		}
		frames = append(frames, frame{n, filepath.Join(dir, e.Name())})
	}
	if len(frames) == 0 {
		// only possible if name does not exist
		return nil, fmt.Errorf("%s: %w", name, os.ErrNotExist)
	}
	slices.SortFunc(frames, func(a, b frame) int { return a.num - b.num })

	seq := &sequence{Digits: digits}
	for _, f := range frames {
		seq.Files = append(seq.Files, f.name)
	}
	return seq, nil
}

func frameNumber(fname, prefix, ext string, digits int) (int, bool) {
	s, ok := strings.CutPrefix(fname, prefix)
	if !ok {
		return 0, false
	}
	s, ok = strings.CutSuffix(s, ext)
	if !ok || len(s) != digits {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// OutputName returns the file name for the i-th output image.  The
// number is inserted before the extension of template.
func (s *sequence) OutputName(template string, i int) string {
	ext := filepath.Ext(template)
	return fmt.Sprintf("%s%0*d%s", strings.TrimSuffix(template, ext), s.Digits, i, ext)
}
