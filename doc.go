// Package docwarp turns a photographed document into a flat, rectangular page.
//
// 🚀 What is docwarp?
//
//	A small, pure-Go image-correction engine:
//		• Matrix engine: dense float64 matrices, Gauss-Jordan inversion with partial pivoting
//		• Warp solver: a bilinear (x, y, x·y, 1) mapping fitted to four user-chosen corners
//		• Resampling: bilinear RGBA interpolation with clamped edges
//		• Transforms: exact 90° rotations and luminance grayscale
//		• Geometry: convexity and nearest-corner tests for interactive corner editing
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/    — Dense, Mul, MatVec, Transpose, Inverse
//	geometry/  — Point, Size, Quadrilateral, convexity & hit testing
//	raster/    — RGBA Image buffer, Sample, Rotate, Grayscale, color statistics
//	warp/      — mapping solver and the Distort pipeline
//	editor/    — corner-editing state with explicit event handlers
//	processor/ — background worker adapter (request/response over channels)
//	codec/     — decode/encode PNG, JPEG, GIF, BMP, TIFF, WebP ⇄ raster.Image
//
// Quick ASCII example:
//
//	   TL ────── TR              (0,0) ───── (w,0)
//	   /           \      ⇒        │           │
//	  BL ────────── BR           (0,h) ───── (w,h)
//
// Logging is silent by default; call SetLogger to route diagnostics to slog.
//
//	go get github.com/katalvlaran/docwarp
package docwarp

// Version is the library version reported by the CLI.
const Version = "0.3.0"
