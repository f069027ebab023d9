// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"strings"
)

// Direction selects a quarter turn for Rotate.
type Direction int

const (
	// Left turns the image 90° counter-clockwise.
	Left Direction = iota + 1
	// Right turns the image 90° clockwise.
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}

	return 0, fmt.Errorf("ParseDirection(%q): %w", s, ErrInvalidDirection)
}

// Rotate returns img turned a quarter in the given direction. The output has
// Width and Height swapped and every pixel copied exactly:
//
//	Left:  (x, y) → (y, Width-1-x)
//	Right: (x, y) → (Height-1-y, x)
//
// Left and Right are mutual inverses; four turns the same way are the identity.
// Complexity: O(W*H).
func Rotate(img *Image, dir Direction) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, rasterErrorf("Rotate", err)
	}
	if dir != Left && dir != Right {
		return nil, rasterErrorf(fmt.Sprintf("Rotate(%v)", dir), ErrInvalidDirection)
	}

	w, h := img.Width, img.Height
	dst := &Image{Width: h, Height: w, Pix: make([]uint8, len(img.Pix))}

	var dx, dy int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if dir == Left {
				dx, dy = y, w-1-x
			} else {
				dx, dy = h-1-y, x
			}
			s := img.PixOffset(x, y)
			d := dst.PixOffset(dx, dy)
			copy(dst.Pix[d:d+Channels], img.Pix[s:s+Channels])
		}
	}

	return dst, nil
}
