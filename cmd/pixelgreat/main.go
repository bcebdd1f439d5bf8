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

// Command pixelgreat makes a PNG image look as if it was shown on an LCD
// or CRT screen.
//
// Usage:
//
//	pixelgreat -i in.png -o out.png -s 20 [options]
//	pixelgreat -seq -i frames/f0000.png -o out/f.png -s 20 [options]
//
// In sequence mode, -i names one file of a numbered sequence.  All files
// in the same directory which have the same name apart from the number are
// converted, and the outputs are numbered from 0 with the same number of
// digits.  The output size is based on the first image of the sequence.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"seehuhn.de/go/pixelgreat"
	"seehuhn.de/go/pixelgreat/imgop"
	"seehuhn.de/go/pixelgreat/mask"
)

type config struct {
	input, output string
	pixelSize     float64
	scale         float64
	sequence      bool
	verbose       bool
	opts          pixelgreat.Options
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "pixelgreat:", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixelgreat.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.sequence {
		err = runSequence(ctx, cfg, logger)
	} else {
		err = runSingle(cfg, logger)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "pixelgreat:", err)
		os.Exit(1)
	}
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	o := &cfg.opts

	fs := flag.NewFlagSet("pixelgreat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "i", "", "input PNG `file`")
	fs.StringVar(&cfg.output, "o", "", "output PNG `file`")
	fs.Float64Var(&cfg.pixelSize, "s", 0, "pixel `size` in output pixels, at least 3")
	fs.Float64Var(&cfg.scale, "os", pixelgreat.DefaultOutputScale, "output `scale`")
	fs.BoolVar(&cfg.sequence, "seq", false, "convert a numbered image sequence")
	fs.BoolVar(&cfg.verbose, "v", false, "log mask construction")

	fs.Var(enumFlag[pixelgreat.ScreenType]{&o.ScreenType, mask.ParseScreenType}, "t",
		"screen `type`: lcd, crt_tv or crt_monitor (default crt_tv)")
	fs.Var(enumFlag[pixelgreat.Direction]{&o.Direction, mask.ParseDirection}, "d",
		"grid `direction`: vertical or horizontal (default depends on -t)")
	noPixelate := fs.Bool("npx", false, "keep the input resolution instead of pixelating")

	floats := []struct {
		p          **float64
		name, help string
	}{
		{&o.PixelAspect, "a", "pixel aspect ratio, width/height, 0.33-3"},
		{&o.Blur, "b", "blur amount, 0-1"},
		{&o.Washout, "w", "washout amount, 0-1"},
		{&o.ScanlineStrength, "sst", "scanline strength, 0-1"},
		{&o.ScanlineSpacing, "ssp", "scanline spacing relative to the pixel size, 0.33-3"},
		{&o.ScanlineSize, "ssz", "scanline thickness, 0-1"},
		{&o.ScanlineBlur, "sb", "scanline blur, 0-1"},
		{&o.GridStrength, "gst", "subpixel grid strength, 0-1"},
		{&o.PixelPadding, "p", "padding between subpixels, 0-1"},
		{&o.Rounding, "r", "subpixel corner rounding, 0-1"},
		{&o.BloomStrength, "bst", "bloom strength, 0-1"},
		{&o.BloomSize, "bsz", "bloom size, 0-1"},
	}
	for _, f := range floats {
		fs.Var(floatFlag{f.p}, f.name, f.help)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if cfg.input == "" || cfg.output == "" {
		return nil, errors.New("both -i and -o are required")
	}
	if cfg.pixelSize == 0 {
		return nil, errors.New("-s is required")
	}
	if !strings.EqualFold(filepath.Ext(cfg.output), ".png") {
		return nil, fmt.Errorf("%s: only PNG output is supported", cfg.output)
	}
	if *noPixelate {
		o.Pixelate = pixelgreat.Ptr(false)
	}
	return cfg, nil
}

// floatFlag is a float64 option which stays nil unless given.
type floatFlag struct {
	p **float64
}

func (f floatFlag) String() string {
	if f.p == nil || *f.p == nil {
		return ""
	}
	return strconv.FormatFloat(**f.p, 'g', -1, 64)
}

func (f floatFlag) Set(s string) error {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f.p = &x
	return nil
}

// enumFlag is a named option which stays nil unless given.
type enumFlag[T fmt.Stringer] struct {
	p     **T
	parse func(string) (T, error)
}

func (f enumFlag[T]) String() string {
	if f.p == nil || *f.p == nil {
		return ""
	}
	return (**f.p).String()
}

func (f enumFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	*f.p = &v
	return nil
}

func runSingle(cfg *config, logger *slog.Logger) error {
	start := time.Now()

	img, err := readPNG(cfg.input)
	if err != nil {
		return err
	}
	out, err := pixelgreat.Process(img, cfg.pixelSize, cfg.scale, &cfg.opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.output), 0755); err != nil {
		return err
	}
	if err := writePNG(cfg.output, out); err != nil {
		return err
	}

	logger.Info("done", "images", 1, "output", cfg.output,
		"duration", time.Since(start).Round(100*time.Millisecond))
	return nil
}

func runSequence(ctx context.Context, cfg *config, logger *slog.Logger) error {
	start := time.Now()

	seq, err := findSequence(cfg.input)
	if err != nil {
		return err
	}

	first, err := readPNG(seq.Files[0])
	if err != nil {
		return err
	}
	mode, err := imgop.ModeOf(first)
	if err != nil {
		mode = imgop.RGBA
	}
	inSize := first.Bounds().Size()
	if !(cfg.scale > 0) {
		return fmt.Errorf("output scale must be positive (got %g)", cfg.scale)
	}
	p, err := cfg.opts.Params(pixelgreat.ScaledSize(inSize, cfg.scale), cfg.pixelSize, mode)
	if err != nil {
		return err
	}
	filter, err := pixelgreat.NewFilter(inSize, *p)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.output), 0755); err != nil {
		return err
	}

	progress := newProgress(len(seq.Files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range seq.Files {
		outName := seq.OutputName(cfg.output, i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := readPNG(name)
			if err != nil {
				return err
			}
			if m, err := imgop.ModeOf(img); err != nil || m != mode {
				img = imgop.Convert(img, mode)
			}
			out, err := filter.Apply(img)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := writePNG(outName, out); err != nil {
				return err
			}
			progress.done()
			return nil
		})
	}
	err = g.Wait()
	progress.finish()
	if err != nil {
		return err
	}

	logger.Info("done", "images", len(seq.Files), "output", filepath.Dir(cfg.output),
		"duration", time.Since(start).Round(100*time.Millisecond))
	return nil
}

// progress shows a counter on stderr, if stderr is a terminal.
type progress struct {
	total int
	count atomic.Int64
	tty   bool
}

func newProgress(total int) *progress {
	return &progress{
		total: total,
		tty:   term.IsTerminal(int(os.Stderr.Fd())),
	}
}

func (p *progress) done() {
	n := p.count.Add(1)
	if p.tty {
		fmt.Fprintf(os.Stderr, "\rconverted %d of %d images", n, p.total)
	}
}

func (p *progress) finish() {
	if p.tty && p.count.Load() > 0 {
		fmt.Fprintln(os.Stderr)
	}
}

func readPNG(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
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
