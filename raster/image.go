// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"

	"github.com/katalvlaran/docwarp/geometry"
)

// Channels is the number of interleaved bytes per pixel (R, G, B, A).
const Channels = 4

// Image is an RGBA buffer stored row-major with the origin at the top-left.
// Pixel (x, y) occupies Pix[4*(y*Width+x) : 4*(y*Width+x)+4].
type Image struct {
	Width, Height int
	Pix           []uint8
}

// New allocates a zeroed (transparent black) w×h image.
func New(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, rasterErrorf(fmt.Sprintf("New(%d,%d)", w, h), ErrBadBuffer)
	}

	return &Image{Width: w, Height: h, Pix: make([]uint8, Channels*w*h)}, nil
}

// FromPix wraps a copy of pix as a w×h image.
func FromPix(w, h int, pix []uint8) (*Image, error) {
	img := &Image{Width: w, Height: h, Pix: pix}
	if err := img.Validate(); err != nil {
		return nil, rasterErrorf("FromPix", err)
	}

	return img.Clone(), nil
}

// Validate checks the buffer invariant len(Pix) == 4*Width*Height.
func (img *Image) Validate() error {
	if img == nil {
		return ErrBadBuffer
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", img.Width, img.Height, ErrBadBuffer)
	}
	if want := Channels * img.Width * img.Height; len(img.Pix) != want {
		return fmt.Errorf("%dx%d has %d bytes, want %d: %w",
			img.Width, img.Height, len(img.Pix), want, ErrBadBuffer)
	}

	return nil
}

// PixOffset returns the index of the first byte of pixel (x, y).
// It does not check bounds.
func (img *Image) PixOffset(x, y int) int {
	return Channels * (y*img.Width + x)
}

// RGBA returns the four channels of pixel (x, y). Coordinates must be in range.
func (img *Image) RGBA(x, y int) [4]uint8 {
	i := img.PixOffset(x, y)

	return [4]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

// SetRGBA writes the four channels of pixel (x, y). Coordinates must be in range.
func (img *Image) SetRGBA(x, y int, c [4]uint8) {
	i := img.PixOffset(x, y)
	copy(img.Pix[i:i+Channels], c[:])
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	pix := make([]uint8, len(img.Pix))
	copy(pix, img.Pix)

	return &Image{Width: img.Width, Height: img.Height, Pix: pix}
}

// Size reports the dimensions as a geometry.Size.
func (img *Image) Size() geometry.Size {
	return geometry.Size{Width: float64(img.Width), Height: float64(img.Height)}
}

// Equal reports whether both images have the same dimensions and bytes.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	if img.Width != other.Width || img.Height != other.Height || len(img.Pix) != len(other.Pix) {
		return false
	}
	for i := range img.Pix {
		if img.Pix[i] != other.Pix[i] {
			return false
		}
	}

	return true
}
