// Package raster implements owned RGBA pixel buffers and the exact pixel
// transforms applied to them.
//
// What:
//
//   - Image: width, height and an interleaved RGBA byte slice, row-major,
//     origin top-left, len(Pix) == 4*Width*Height.
//   - Sample: bilinear interpolation at a fractional coordinate with the
//     neighbouring indices clamped into the buffer.
//   - Rotate: lossless 90° turns (Left, Right).
//   - Grayscale: Rec. 709 luma, alpha preserved.
//   - Color helpers: AverageColor over a window, InverseColor, CSS and hex
//     formatting, perceptual distance.
//
// Ownership:
//
//   - Every transform returns a new *Image with its own Pix; inputs are never
//     written to.
//
// Errors:
//
//   - ErrBadBuffer        - dimensions and pixel slice disagree, or nil image.
//   - ErrInvalidDirection - Rotate called with something other than Left/Right.
package raster
