// SPDX-License-Identifier: MIT

package raster

import "math"

// Rec. 709 luma coefficients.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// Luma returns round(0.2126·r + 0.7152·g + 0.0722·b).
func Luma(r, g, b uint8) uint8 {
	return uint8(math.Round(LumaR*float64(r) + LumaG*float64(g) + LumaB*float64(b)))
}

// Grayscale returns a copy of img with R=G=B=Luma(R,G,B) and alpha untouched.
// Applying it twice gives the same result as applying it once.
// Complexity: O(W*H).
func Grayscale(img *Image) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, rasterErrorf("Grayscale", err)
	}

	dst := img.Clone()
	for i := 0; i < len(dst.Pix); i += Channels {
		l := Luma(dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2])
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = l, l, l
	}

	return dst, nil
}
