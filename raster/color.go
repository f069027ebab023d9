// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// CSS formats c as "rgb(R, G, B)".
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// Distance is the CIEDE2000 difference between c and o; 0 means identical.
func (c Color) Distance(o Color) float64 {
	return c.colorful().DistanceCIEDE2000(o.colorful())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ParseHex parses "#rrggbb" (or "#rgb").
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("ParseHex(%q): %w", s, err)
	}
	r, g, b := cf.RGB255()

	return Color{R: r, G: g, B: b}, nil
}

// InverseColor returns 255-c per channel.
func InverseColor(c Color) Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// AverageColor returns the per-channel mean of the pixels inside window,
// each rounded to the nearest integer. Alpha is ignored.
//
// The window is first shifted so that it does not start before the image
// (negative Min coordinates become 0, the extent is kept), then cropped at
// the right and bottom edges. An empty intersection yields the zero Color.
// The image must satisfy Validate.
func AverageColor(img *Image, window image.Rectangle) Color {
	x0, x1 := windowSpan(window.Min.X, window.Dx(), img.Width)
	y0, y1 := windowSpan(window.Min.Y, window.Dy(), img.Height)
	if x0 >= x1 || y0 >= y1 {
		return Color{}
	}

	var r, g, b float64
	for y := y0; y < y1; y++ {
		row := img.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			r += float64(img.Pix[row])
			g += float64(img.Pix[row+1])
			b += float64(img.Pix[row+2])
			row += Channels
		}
	}
	n := float64((x1 - x0) * (y1 - y0))

	return Color{
		R: uint8(math.Round(r / n)),
		G: uint8(math.Round(g / n)),
		B: uint8(math.Round(b / n)),
	}
}

// AverageInverseColor is InverseColor(AverageColor(img, window)).
func AverageInverseColor(img *Image, window image.Rectangle) Color {
	return InverseColor(AverageColor(img, window))
}

// windowSpan returns [start, end) after shifting start to >= 0 and cropping at n.
func windowSpan(start, length, n int) (int, int) {
	if start < 0 {
		start = 0
	}

	return start, min(start+length, n)
}
