// SPDX-License-Identifier: MIT

// Command docwarp flattens a photographed document.
//
//	docwarp -corners "444,79 624,77 618,327 440,327" -size 600x800 photo.jpg page.png
//	docwarp -rotate left -gray page.png page-gray.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/docwarp"
	"github.com/katalvlaran/docwarp/codec"
	"github.com/katalvlaran/docwarp/geometry"
	"github.com/katalvlaran/docwarp/raster"
	"github.com/katalvlaran/docwarp/warp"
)

var errUsage = errors.New("usage")

type config struct {
	in, out  string
	corners  *geometry.Quadrilateral
	width    int
	height   int
	rotate   raster.Direction
	gray     bool
	maxSide  int
	verbose  bool
	showVers bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "docwarp: %v\n", err)
		os.Exit(2)
	}
	if cfg.showVers {
		fmt.Println("docwarp", docwarp.Version)
		return
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	docwarp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "docwarp: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var (
		cfg               config
		corners, size, rt string
	)
	fs := flag.NewFlagSet("docwarp", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&corners, "corners", "", `source corners "x,y x,y x,y x,y" (top-left, top-right, bottom-right, bottom-left)`)
	fs.StringVar(&size, "size", "", "output size WxH (default: input size)")
	fs.StringVar(&rt, "rotate", "", "rotate the result: left or right")
	fs.BoolVar(&cfg.gray, "gray", false, "convert the result to grayscale")
	fs.IntVar(&cfg.maxSide, "max", 0, "downscale the result so neither side exceeds this many pixels")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.BoolVar(&cfg.showVers, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: docwarp [flags] <in> <out>\n\n")
		fmt.Fprintf(fs.Output(), "Reads PNG, JPEG, GIF, BMP, TIFF or WebP; writes PNG, JPEG, GIF, BMP or TIFF.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.showVers {
		return cfg, nil
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return cfg, fmt.Errorf("%w: expected <in> <out>, got %d arguments", errUsage, fs.NArg())
	}
	cfg.in, cfg.out = fs.Arg(0), fs.Arg(1)

	if corners != "" {
		q, err := parseCorners(corners)
		if err != nil {
			return cfg, err
		}
		cfg.corners = &q
	}
	if size != "" {
		w, h, err := parseSize(size)
		if err != nil {
			return cfg, err
		}
		cfg.width, cfg.height = w, h
	}
	if rt != "" {
		d, err := raster.ParseDirection(rt)
		if err != nil {
			return cfg, err
		}
		cfg.rotate = d
	}

	return cfg, nil
}

// parseCorners reads four "x,y" pairs separated by spaces or semicolons.
func parseCorners(s string) (geometry.Quadrilateral, error) {
	var q geometry.Quadrilateral
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ';' })
	if len(fields) != 4 {
		return q, fmt.Errorf("corners %q: %w", s, warp.ErrInvalidCornerCount)
	}
	for i, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return q, fmt.Errorf("%w: corner %q is not x,y", errUsage, f)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return q, fmt.Errorf("corner %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return q, fmt.Errorf("corner %q: %w", f, err)
		}
		q[i] = geometry.Pt(x, y)
	}

	return q, nil
}

// parseSize reads "WxH" with positive integers.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q is not WxH", errUsage, s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: %w", s, warp.ErrInvalidTargetSize)
	}

	return w, h, nil
}

func run(cfg config) error {
	img, format, err := codec.DecodeFile(cfg.in)
	if err != nil {
		return err
	}
	log := docwarp.Logger()
	log.Info("decoded", "path", cfg.in, "format", format, "width", img.Width, "height", img.Height)

	if cfg.corners != nil || cfg.width > 0 {
		corners := geometry.Rect(img.Size())
		if cfg.corners != nil {
			corners = *cfg.corners
		}
		if !geometry.IsConvexQuadrilateral(corners) {
			log.Warn("corners do not form a convex quadrilateral", "corners", corners.Points())
		}
		img, err = warp.Distort(img, corners, warp.WithTargetSize(cfg.width, cfg.height))
		if err != nil {
			return err
		}
	}
	if cfg.rotate != 0 {
		if img, err = raster.Rotate(img, cfg.rotate); err != nil {
			return err
		}
	}
	if cfg.gray {
		if img, err = raster.Grayscale(img); err != nil {
			return err
		}
	}
	if cfg.maxSide > 0 {
		if img, err = codec.Preview(img, cfg.maxSide, cfg.maxSide); err != nil {
			return err
		}
	}

	if err := codec.EncodeFile(cfg.out, img); err != nil {
		return err
	}
	log.Info("written", "path", cfg.out, "width", img.Width, "height", img.Height)

	return nil
}
