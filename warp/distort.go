// SPDX-License-Identifier: MIT

package warp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/docwarp/geometry"
	"github.com/katalvlaran/docwarp/raster"
)

const opDistort = "Distort"

// Distort resamples the quadrilateral corners of img into an upright
// rectangle. The destination defaults to img's dimensions; see
// WithTargetSize.
//
// The source is never written to and exactly one destination buffer is
// allocated. On error the result is nil.
// Complexity: O(W*H) for the pixel loop plus a constant 4×4 inversion.
func Distort(img *raster.Image, corners geometry.Quadrilateral, opts ...Option) (*raster.Image, error) {
	o := gatherOptions(opts...)

	if img == nil {
		return nil, warpErrorf(opDistort, ErrNilImage)
	}
	if err := img.Validate(); err != nil {
		return nil, warpErrorf(opDistort, err)
	}
	if o.width < 0 || o.height < 0 {
		return nil, warpErrorf(fmt.Sprintf("%s(%dx%d)", opDistort, o.width, o.height), ErrInvalidTargetSize)
	}
	w, h := o.width, o.height
	if w == 0 {
		w = img.Width
	}
	if h == 0 {
		h = img.Height
	}

	start := time.Now()
	mp, err := solveMapping(corners, geometry.Size{Width: float64(w), Height: float64(h)}, o.eps)
	if err != nil {
		return nil, warpErrorf(opDistort, err)
	}
	debug := o.logger.Enabled(context.Background(), slog.LevelDebug)
	if debug {
		o.logger.Debug("warp: mapping solved",
			"corners", corners.Points(),
			"target", fmt.Sprintf("%dx%d", w, h),
			"mapping", mp.Matrix().String())
	}

	dst, err := raster.New(w, h)
	if err != nil {
		return nil, warpErrorf(opDistort, err)
	}

	var (
		x, y   int
		xs, ys float64
		off    int
	)
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			xs, ys = mp.Apply(float64(x), float64(y))
			px := raster.Sample(img, xs, ys)
			copy(dst.Pix[off:off+raster.Channels], px[:])
			off += raster.Channels
		}
	}

	if debug {
		o.logger.Debug("warp: distort done",
			"source", fmt.Sprintf("%dx%d", img.Width, img.Height),
			"target", fmt.Sprintf("%dx%d", w, h),
			"elapsed", time.Since(start))
	}

	return dst, nil
}

// DistortCorners is Distort for a corner slice in TopLeft, TopRight,
// BottomRight, BottomLeft order. It fails with ErrInvalidCornerCount unless
// len(corners) == 4.
func DistortCorners(img *raster.Image, corners []geometry.Point, opts ...Option) (*raster.Image, error) {
	q, ok := geometry.QuadrilateralFromPoints(corners)
	if !ok {
		return nil, warpErrorf(fmt.Sprintf("%s(%d corners)", opDistort, len(corners)), ErrInvalidCornerCount)
	}

	return Distort(img, q, opts...)
}
