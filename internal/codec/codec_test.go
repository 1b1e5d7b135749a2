package codec

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 40), B: 200, A: 255})
		}
	}
	return img
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := testImage()

	for _, f := range []Format{FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, f, nil))

			assert.Equal(t, f, Detect(buf.Bytes()))

			img, got, err := Decode(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, f, got)
			assert.Equal(t, src.Bounds().Size(), img.Bounds().Size())
		})
	}
}

func TestLosslessFormatsPreservePixels(t *testing.T) {
	src := testImage()
	src.SetNRGBA(2, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	for _, f := range []Format{FormatPNG, FormatTIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, f, nil))
			img, _, err := Decode(buf.Bytes())
			require.NoError(t, err)

			got := color.NRGBAModel.Convert(img.At(2, 2)).(color.NRGBA)
			assert.Equal(t, uint8(128), got.A)
			assert.InDelta(t, 10, int(got.R), 1)
			assert.InDelta(t, 30, int(got.B), 1)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyData)

	_, _, err = Decode([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	// Valid PNG signature, truncated body.
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(), FormatPNG, nil))
	_, f, err := Decode(buf.Bytes()[:40])
	assert.Error(t, err)
	assert.Equal(t, FormatPNG, f)
}

func TestEncodeUnsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, testImage(), FormatWebP, nil), ErrUnsupportedFormat)
	assert.ErrorIs(t, Encode(&buf, testImage(), FormatUnknown, nil), ErrUnsupportedFormat)
}

func TestJPEGQuality(t *testing.T) {
	tests := []struct {
		opts *Options
		want int
	}{
		{nil, DefaultJPEGQuality},
		{&Options{}, DefaultJPEGQuality},
		{&Options{JPEGQuality: 50}, 50},
		{&Options{JPEGQuality: -5}, 1},
		{&Options{JPEGQuality: 500}, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.opts.jpegQuality())
	}
}

func TestJPEGFlattensOntoWhite(t *testing.T) {
	tests := []struct {
		name    string
		c       color.NRGBA
		r, g, b uint32
	}{
		{"transparent", color.NRGBA{}, 255, 255, 255},
		{"half red", color.NRGBA{R: 255, A: 128}, 255, 127, 127},
		{"opaque blue", color.NRGBA{B: 255, A: 255}, 0, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
			for i := 0; i < len(src.Pix); i += 4 {
				src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = tt.c.R, tt.c.G, tt.c.B, tt.c.A
			}

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, FormatJPEG, &Options{JPEGQuality: 100}))
			img, _, err := Decode(buf.Bytes())
			require.NoError(t, err)

			r, g, b, a := img.At(8, 8).RGBA()
			assert.InDelta(t, tt.r, r>>8, 6)
			assert.InDelta(t, tt.g, g>>8, 6)
			assert.InDelta(t, tt.b, b>>8, 6)
			assert.Equal(t, uint32(0xffff), a)
		})
	}
}
