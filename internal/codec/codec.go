package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Codec errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("codec: empty data")
)

// DefaultJPEGQuality is used when Options.JPEGQuality is zero.
const DefaultJPEGQuality = 90

// Options tunes encoding.
type Options struct {
	// JPEGQuality is the JPEG quality in [1, 100]. Zero selects
	// DefaultJPEGQuality; out-of-range values are clamped.
	JPEGQuality int
}

func (o *Options) jpegQuality() int {
	q := DefaultJPEGQuality
	if o != nil && o.JPEGQuality != 0 {
		q = o.JPEGQuality
	}
	return min(max(q, 1), 100)
}

// Decode decodes an image, identifying its format by magic bytes.
func Decode(data []byte) (image.Image, Format, error) {
	if len(data) == 0 {
		return nil, FormatUnknown, ErrEmptyData
	}

	f := Detect(data)
	r := bytes.NewReader(data)

	var (
		img image.Image
		err error
	)
	switch f {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatGIF:
		img, err = gif.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatTIFF:
		img, err = tiff.Decode(r)
	case FormatWebP:
		img, err = webp.Decode(r)
	default:
		return nil, FormatUnknown, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, f, fmt.Errorf("codec: decode %s: %w", f, err)
	}
	return img, f, nil
}

// Encode writes img to w in format f. JPEG has no alpha channel, so
// translucent pixels are flattened onto white before encoding.
func Encode(w io.Writer, img image.Image, f Format, opts *Options) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, flattenOnWhite(img), &jpeg.Options{Quality: opts.jpegQuality()})
	case FormatGIF:
		err = gif.Encode(w, img, &gif.Options{NumColors: 256})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", f, err)
	}
	return nil
}

func flattenOnWhite(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	xdraw.Draw(dst, b, image.White, image.Point{}, xdraw.Src)
	xdraw.Draw(dst, b, img, b.Min, xdraw.Over)
	return dst
}
