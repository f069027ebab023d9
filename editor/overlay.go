// SPDX-License-Identifier: MIT

package editor

import (
	"github.com/katalvlaran/docwarp/geometry"
	"github.com/katalvlaran/docwarp/raster"
)

// Handle is a corner circle to draw.
type Handle struct {
	Center   geometry.Point
	Radius   float64
	Width    float64
	Color    raster.Color
	Selected bool
}

// Edge is a dashed side of the quadrilateral.
type Edge struct {
	A, B     geometry.Point
	Width    float64
	Color    raster.Color
	Selected bool
}

// Overlay is everything a view needs to draw on top of the scaled image.
type Overlay struct {
	Display geometry.Size
	Handles [4]Handle
	Edges   [4]Edge
}

// Overlay computes the drawing model for the current state. Edge i joins
// corner i and corner (i+1)%4 and is highlighted when either end is grabbed.
// Edge colors are sampled at the edge midpoint.
func (s *State) Overlay() Overlay {
	ov := Overlay{Display: s.display}
	for i, c := range s.corners {
		sel := i == s.selected
		w := HandleWidth
		if sel {
			w = HandleWidthSelected
		}
		ov.Handles[i] = Handle{
			Center:   c,
			Radius:   s.opts.handleRadius,
			Width:    w,
			Color:    s.HandleColor(c),
			Selected: sel,
		}
	}
	for i := range s.corners {
		j := (i + 1) % 4
		sel := i == s.selected || j == s.selected
		w := EdgeWidth
		if sel {
			w = EdgeWidthSelected
		}
		a, b := s.corners[i], s.corners[j]
		ov.Edges[i] = Edge{
			A:        a,
			B:        b,
			Width:    w,
			Color:    s.HandleColor(geometry.MidwayPoint(a, b)),
			Selected: sel,
		}
	}

	return ov
}
