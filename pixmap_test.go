package paintmate

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(7, 3)
	assert.Equal(t, 7, pm.Width())
	assert.Equal(t, 3, pm.Height())
	assert.Len(t, pm.Data(), 7*3*4)

	empty := NewPixmap(-2, 5)
	assert.Equal(t, 0, empty.Width())
	assert.Empty(t, empty.Data())
}

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := color.NRGBA{R: 128, G: 64, B: 32, A: 200}
	pm.SetPixel(3, 7, c)

	assert.Equal(t, c, pm.GetPixel(3, 7))

	i := (7*10 + 3) * 4
	assert.Equal(t, []uint8{128, 64, 32, 200}, pm.Data()[i:i+4])
}

// TestPixmapOutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmapFilled(10, 10, Black)
	original := append([]uint8(nil), pm.Data()...)

	for _, c := range []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	} {
		pm.SetPixel(c.x, c.y, Red)
		assert.Equal(t, Transparent, pm.GetPixel(c.x, c.y))
	}
	assert.Equal(t, original, pm.Data())
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(TransparentWhite)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, TransparentWhite, pm.GetPixel(x, y))
		}
	}
}

func TestPixmapCloneIsIndependent(t *testing.T) {
	pm := NewPixmapFilled(4, 4, Red)
	c := pm.Clone()
	require.True(t, pm.Equal(c))

	c.SetPixel(0, 0, Blue)
	assert.Equal(t, Red, pm.GetPixel(0, 0))
	assert.False(t, pm.Equal(c))
}

func TestPixmapEqual(t *testing.T) {
	a := NewPixmap(2, 2)
	assert.False(t, a.Equal(NewPixmap(2, 3)))
	assert.True(t, a.Equal(NewPixmap(2, 2)))
	assert.False(t, a.Equal(nil))

	var nilPm *Pixmap
	assert.True(t, nilPm.Equal(nil))
}

func TestPixmapImageRoundTrip(t *testing.T) {
	pm := NewPixmap(5, 4)
	pm.SetPixel(1, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	img := pm.ToImage()
	assert.Equal(t, image.Rect(0, 0, 5, 4), img.Bounds())

	back := FromImage(img)
	assert.True(t, pm.Equal(back))

	img.Pix[0] = 99
	assert.Equal(t, uint8(0), pm.Data()[0], "ToImage must copy")
}

func TestFromImageConvertsPremultiplied(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 3, 4, 5))
	// Premultiplied 50% red.
	src.SetRGBA(2, 3, color.RGBA{R: 128, A: 128})

	pm := FromImage(src)
	require.Equal(t, 2, pm.Width())
	got := pm.GetPixel(0, 0)
	assert.Equal(t, uint8(128), got.A)
	assert.InDelta(t, 255, int(got.R), 1)
}

func TestPixmapImplementsDrawImage(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Set(1, 1, color.RGBA{G: 255, A: 255})
	assert.Equal(t, Green, pm.GetPixel(1, 1))
	assert.Equal(t, color.NRGBAModel, pm.ColorModel())
	assert.Equal(t, Green, pm.At(1, 1))
}
