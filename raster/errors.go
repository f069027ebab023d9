// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrBadBuffer is returned when an Image is nil, has non-positive
	// dimensions, or len(Pix) != 4*Width*Height.
	ErrBadBuffer = errors.New("raster: malformed image buffer")

	// ErrInvalidDirection is returned by Rotate for an unknown Direction.
	ErrInvalidDirection = errors.New("raster: invalid rotation direction")
)

// rasterErrorf wraps err with an operation tag.
func rasterErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
