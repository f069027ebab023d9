// Package codec converts between encoded image files, the standard library
// image.Image interface, and raster.Image buffers.
//
// Decoding understands PNG, JPEG and GIF (standard library) plus BMP, TIFF and
// WebP (golang.org/x/image). Encoding supports PNG, JPEG, GIF, BMP and TIFF.
//
// All conversions are stateless: each call takes an owned buffer and returns a
// new one.
package codec
