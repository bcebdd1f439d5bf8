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
	"bytes"
	"image"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/pixelgreat/imgop"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	opts := &Options{ScreenType: Ptr(CRTTV)}
	p, err := opts.Params(image.Pt(40, 40), 5, imgop.RGB)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewFilter(image.Pt(20, 20), *p); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, msg := range []string{"pixel size below 10", "scanline mask", "grid mask"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output does not contain %q:\n%s", msg, out)
		}
	}
}

func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
