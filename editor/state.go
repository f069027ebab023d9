// SPDX-License-Identifier: MIT

package editor

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/katalvlaran/docwarp"
	"github.com/katalvlaran/docwarp/geometry"
	"github.com/katalvlaran/docwarp/raster"
	"github.com/katalvlaran/docwarp/warp"
)

// ErrInvalidCanvas is returned for a canvas with a non-positive dimension.
var ErrInvalidCanvas = errors.New("editor: invalid canvas size")

const noSelection = -1

// State is the corner editor model for one image.
type State struct {
	img      *raster.Image
	opts     Options
	canvas   geometry.Size
	ratio    float64
	display  geometry.Size
	corners  geometry.Quadrilateral
	selected int
}

// New builds the editor state for img shown inside canvas. Corners start
// inset by the handle radius.
func New(img *raster.Image, canvas geometry.Size, opts ...Option) (*State, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("editor.New: %w", err)
	}
	s := &State{img: img, opts: gatherOptions(opts...), selected: noSelection}
	if err := s.Resize(canvas); err != nil {
		return nil, fmt.Errorf("editor.New: %w", err)
	}

	return s, nil
}

// Resize fits the image into a new canvas, resets the corners and clears the
// selection.
func (s *State) Resize(canvas geometry.Size) error {
	if canvas.Empty() {
		return fmt.Errorf("Resize(%gx%g): %w", canvas.Width, canvas.Height, ErrInvalidCanvas)
	}
	s.canvas = canvas
	s.ratio = geometry.FitRatio(s.img.Size(), canvas)
	s.display = geometry.ScaleSize(s.img.Size(), s.ratio)
	s.Reset()

	return nil
}

// Reset moves the corners back to their default inset positions.
func (s *State) Reset() {
	s.corners = geometry.DefaultCorners(s.display, s.opts.handleRadius)
	s.selected = noSelection
}

// Image returns the edited image.
func (s *State) Image() *raster.Image { return s.img }

// Ratio is the display scale: display = source × Ratio.
func (s *State) Ratio() float64 { return s.ratio }

// DisplaySize is the image size on the canvas.
func (s *State) DisplaySize() geometry.Size { return s.display }

// Corners returns the corners in display coordinates.
func (s *State) Corners() geometry.Quadrilateral { return s.corners }

// SourceCorners returns the corners in image pixel coordinates.
func (s *State) SourceCorners() geometry.Quadrilateral {
	return geometry.ScaleQuadrilateral(s.corners, 1/s.ratio)
}

// Selected returns the grabbed corner index, if any.
func (s *State) Selected() (int, bool) {
	return s.selected, s.selected != noSelection
}

// Press grabs the corner nearest to p within the hit radius. It reports
// whether a corner was grabbed; a miss keeps the current selection.
func (s *State) Press(p geometry.Point) bool {
	idx, ok := geometry.FindNearestPointWithinDistance(s.corners.Points(), p, s.opts.hitRadius)
	if ok {
		s.selected = idx
	}

	return ok
}

// Drag moves the grabbed corner to p. The move is accepted only when the
// resulting quadrilateral is convex and p lies on the displayed image;
// otherwise the corners are left unchanged. It reports whether the corners
// changed.
func (s *State) Drag(p geometry.Point) bool {
	if s.selected == noSelection {
		return false
	}
	next := s.corners
	next[s.selected] = p

	if !s.display.Contains(p) {
		docwarp.Logger().Debug("editor: drag outside image", "corner", s.selected, "point", p)
		return false
	}
	if !geometry.IsConvexQuadrilateral(next) {
		docwarp.Logger().Debug("editor: drag rejected, not convex", "corner", s.selected, "point", p)
		return false
	}
	s.corners = next

	return true
}

// Release drops the current selection.
func (s *State) Release() {
	s.selected = noSelection
}

// MinHandleContrast is the CIEDE2000 distance below which the inverse of the
// background is considered indistinguishable from it.
const MinHandleContrast = 20.0

var (
	black = raster.Color{}
	white = raster.Color{R: 255, G: 255, B: 255}
)

// HandleColor returns a color contrasting with the image around the display
// point p: the inverse of the average color in a box of
// round(fraction × min(width, height)) source pixels centered on p. Near
// mid-gray, where the inverse barely differs, black or white is used instead.
func (s *State) HandleColor(p geometry.Point) raster.Color {
	avg := s.backgroundColor(p)
	inv := raster.InverseColor(avg)
	if avg.Distance(inv) >= MinHandleContrast {
		return inv
	}
	if avg.Distance(white) > avg.Distance(black) {
		return white
	}

	return black
}

// backgroundColor averages the source pixels under the display point p.
func (s *State) backgroundColor(p geometry.Point) raster.Color {
	box := int(math.Round(s.opts.colorBox * float64(min(s.img.Width, s.img.Height))))
	if box < 1 {
		box = 1
	}
	src := p.Scale(1 / s.ratio)
	x0 := int(math.Round(src.X)) - box/2
	y0 := int(math.Round(src.Y)) - box/2

	return raster.AverageColor(s.img, image.Rect(x0, y0, x0+box, y0+box))
}

// Distort runs the warp pipeline on the image with the current corners.
func (s *State) Distort(opts ...warp.Option) (*raster.Image, error) {
	return warp.Distort(s.img, s.SourceCorners(), opts...)
}
