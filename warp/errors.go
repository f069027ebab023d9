// SPDX-License-Identifier: MIT

package warp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCornerCount is returned when a corner list is not exactly four points.
	ErrInvalidCornerCount = errors.New("warp: exactly four corners required")

	// ErrNilImage is returned when Distort receives a nil source.
	ErrNilImage = errors.New("warp: nil image")

	// ErrInvalidTargetSize is returned for a negative target width or height.
	ErrInvalidTargetSize = errors.New("warp: invalid target size")
)

// warpErrorf wraps err with an operation tag.
func warpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
