package raster_test

import (
	"testing"

	"github.com/katalvlaran/docwarp/raster"
	"github.com/stretchr/testify/require"
)

// MustGray builds a w×h image whose RGB channels all equal the scalar at
// the same index, with alpha fixed at 255.
func MustGray(t testing.TB, w, h int, values []uint8) *raster.Image {
	t.Helper()
	pix := make([]uint8, 0, raster.Channels*len(values))
	for _, v := range values {
		pix = append(pix, v, v, v, 255)
	}
	img, err := raster.FromPix(w, h, pix)
	require.NoError(t, err)

	return img
}

// GrayValues extracts the R channel of every pixel.
func GrayValues(img *raster.Image) []uint8 {
	out := make([]uint8, 0, img.Width*img.Height)
	for i := 0; i < len(img.Pix); i += raster.Channels {
		out = append(out, img.Pix[i])
	}

	return out
}

// Gradient returns a deterministic w×h image with varied channels.
func Gradient(t testing.TB, w, h int) *raster.Image {
	t.Helper()
	img, err := raster.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, [4]uint8{uint8(x * 7), uint8(y * 13), uint8(x*y + 3), uint8(255 - x)})
		}
	}

	return img
}
