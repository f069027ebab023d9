// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/katalvlaran/docwarp/raster"
)

// ErrUnsupportedFormat is returned for an unknown encode format or file extension.
var ErrUnsupportedFormat = errors.New("codec: unsupported format")

// Format names an output encoding.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// DefaultJPEGQuality is used by Encode for JPEG output.
const DefaultJPEGQuality = 92

// ParseFormat maps a name or file extension ("png", ".JPG", "tif") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}

	return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnsupportedFormat)
}

// Decode reads any registered image format. The returned string is the
// format name reported by image.Decode.
func Decode(r io.Reader) (*raster.Image, string, error) {
	src, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("codec.Decode: %w", err)
	}
	img, err := FromImage(src)
	if err != nil {
		return nil, "", fmt.Errorf("codec.Decode(%s): %w", name, err)
	}

	return img, name, nil
}

// DecodeFile opens and decodes path.
func DecodeFile(path string) (*raster.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("codec.DecodeFile: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// FromImage copies src into a raster.Image with straight (non-premultiplied)
// alpha and the origin moved to (0,0).
func FromImage(src image.Image) (*raster.Image, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("codec.FromImage(%v): %w", b, raster.ErrBadBuffer)
	}
	w, h := b.Dx(), b.Dy()

	if n, ok := src.(*image.NRGBA); ok && n.Stride == raster.Channels*w {
		start := n.PixOffset(b.Min.X, b.Min.Y)
		return raster.FromPix(w, h, n.Pix[start:start+raster.Channels*w*h])
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	return &raster.Image{Width: w, Height: h, Pix: dst.Pix}, nil
}

// ToImage wraps a copy of img as an *image.NRGBA.
func ToImage(img *raster.Image) (*image.NRGBA, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("codec.ToImage: %w", err)
	}
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	copy(out.Pix, img.Pix)

	return out, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img *raster.Image, f Format) error {
	m, err := ToImage(img)
	if err != nil {
		return fmt.Errorf("codec.Encode: %w", err)
	}

	switch f {
	case PNG:
		err = png.Encode(w, m)
	case JPEG:
		err = jpeg.Encode(w, m, &jpeg.Options{Quality: DefaultJPEGQuality})
	case GIF:
		err = gif.Encode(w, m, nil)
	case BMP:
		err = bmp.Encode(w, m)
	case TIFF:
		err = tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("codec.Encode(%q): %w", f, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("codec.Encode(%s): %w", f, err)
	}

	return nil
}

// EncodeFile writes img to path, choosing the format from the extension.
func EncodeFile(path string, img *raster.Image) (err error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("codec.EncodeFile: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec.EncodeFile: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("codec.EncodeFile: %w", cerr)
		}
	}()

	return Encode(out, img, f)
}

// Preview downscales img to fit within maxW×maxH using Catmull-Rom
// resampling, preserving the aspect ratio. Images that already fit are
// returned as a copy. Non-positive limits leave that axis unconstrained.
func Preview(img *raster.Image, maxW, maxH int) (*raster.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("codec.Preview: %w", err)
	}

	scale := 1.0
	if maxW > 0 && img.Width > maxW {
		scale = float64(maxW) / float64(img.Width)
	}
	if maxH > 0 && img.Height > maxH {
		scale = min(scale, float64(maxH)/float64(img.Height))
	}
	if scale == 1 {
		return img.Clone(), nil
	}

	w := max(1, int(float64(img.Width)*scale+0.5))
	h := max(1, int(float64(img.Height)*scale+0.5))
	src, err := ToImage(img)
	if err != nil {
		return nil, fmt.Errorf("codec.Preview: %w", err)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return &raster.Image{Width: w, Height: h, Pix: dst.Pix}, nil
}
