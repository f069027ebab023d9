package raster_test

import (
	"image"
	"math"
	"testing"

	"github.com/katalvlaran/docwarp/raster"
	"github.com/stretchr/testify/require"
)

// diagonalImage is 255×255 with pixel (x, y) = (x, y, round((x+y)/2), 1).
func diagonalImage(t testing.TB) *raster.Image {
	t.Helper()
	img, err := raster.New(255, 255)
	require.NoError(t, err)
	for y := 0; y < 255; y++ {
		for x := 0; x < 255; x++ {
			img.SetRGBA(x, y, [4]uint8{uint8(x), uint8(y), uint8(math.Round(float64(x+y) / 2)), 1})
		}
	}

	return img
}

func TestAverageColor(t *testing.T) {
	t.Parallel()

	img := diagonalImage(t)

	tests := []struct {
		name   string
		window image.Rectangle
		want   raster.Color
	}{
		{"row band of height 4", image.Rect(0, 100, 255, 104), raster.Color{R: 127, G: 102, B: 115}},
		{"column band of width 4", image.Rect(100, 0, 104, 255), raster.Color{R: 102, G: 127, B: 115}},
		{"negative start is shifted", image.Rect(100, -200, 104, 55), raster.Color{R: 102, G: 127, B: 115}},
		{"another negative start", image.Rect(100, -150, 104, 105), raster.Color{R: 102, G: 127, B: 115}},
		{"single pixel", image.Rect(3, 9, 4, 10), raster.Color{R: 3, G: 9, B: 6}},
		{"outside", image.Rect(300, 300, 310, 310), raster.Color{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, raster.AverageColor(img, tc.window))
			require.Equal(t, raster.InverseColor(tc.want), raster.AverageInverseColor(img, tc.window))
		})
	}
}

func TestInverseColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, raster.Color{R: 155, G: 0, B: 255}, raster.InverseColor(raster.Color{R: 100, G: 255, B: 0}))
}

func TestColorFormatting(t *testing.T) {
	t.Parallel()

	c := raster.Color{R: 10, G: 240, B: 19}
	require.Equal(t, "rgb(10, 240, 19)", c.CSS())
	require.Equal(t, "#0af013", c.Hex())

	back, err := raster.ParseHex(c.Hex())
	require.NoError(t, err)
	require.Equal(t, c, back)

	_, err = raster.ParseHex("not-a-color")
	require.Error(t, err)
}

func TestColorDistance(t *testing.T) {
	t.Parallel()

	black := raster.Color{}
	white := raster.Color{R: 255, G: 255, B: 255}
	gray := raster.Color{R: 128, G: 128, B: 128}

	require.InDelta(t, 0, black.Distance(black), 1e-9)
	require.Greater(t, black.Distance(white), black.Distance(gray))
	require.InDelta(t, black.Distance(white), white.Distance(black), 1e-9)
}
