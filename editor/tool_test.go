package editor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/paintmate"
)

func countColor(pm *paintmate.Pixmap, c color.NRGBA) int {
	n := 0
	for y := range pm.Height() {
		for x := range pm.Width() {
			if pm.GetPixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestBrushStroke(t *testing.T) {
	e := newTestEditor(t)
	e.SetBrush(Brush{Size: 4, Color: paintmate.Red, Opacity: 1})

	e.BeginStroke(10, 10)
	assert.False(t, e.CanUndo(), "history is recorded at the end of a stroke")
	require.True(t, e.EndStroke())
	assert.True(t, e.CanUndo())

	pixels := e.Document().ActiveLayer().Pixels()
	assert.Equal(t, 13, countColor(pixels, paintmate.Red), "radius 2 disc")
	assert.Equal(t, paintmate.Red, pixels.GetPixel(12, 10))
	assert.NotEqual(t, paintmate.Red, pixels.GetPixel(12, 12))
}

func TestBrushOpacity(t *testing.T) {
	e := newTestEditor(t)
	e.SetTool(ToolPencil)
	e.SetBrush(Brush{Size: 1, Color: paintmate.Blue, Opacity: 0.5})

	e.BeginStroke(0, 0)
	e.EndStroke()
	assert.Equal(t, color.NRGBA{B: 255, A: 127}, e.Document().ActiveLayer().Pixels().GetPixel(0, 0))
}

func TestPencilIgnoresBrushSize(t *testing.T) {
	e := newTestEditor(t)
	e.SetTool(ToolPencil)
	e.SetBrush(Brush{Size: 9, Color: paintmate.Red, Opacity: 1})

	e.BeginStroke(10, 10)
	e.EndStroke()
	px := e.Document().ActiveLayer().Pixels()
	assert.Equal(t, paintmate.Red, px.GetPixel(10, 10))
	assert.Equal(t, paintmate.TransparentWhite, px.GetPixel(11, 10))
	assert.Equal(t, paintmate.TransparentWhite, px.GetPixel(10, 9))
}

func TestPencilStrokeIsContinuous(t *testing.T) {
	e := newTestEditor(t)
	e.SetTool(ToolPencil)
	e.SetBrush(Brush{Size: 30, Color: paintmate.Black, Opacity: 1})

	e.BeginStroke(2, 3)
	e.StrokeTo(9, 3)
	e.StrokeTo(9, 8)
	require.True(t, e.EndStroke())

	pixels := e.Document().ActiveLayer().Pixels()
	assert.Equal(t, 8+5, countColor(pixels, paintmate.Black))
	for x := 2; x <= 9; x++ {
		assert.Equal(t, paintmate.Black, pixels.GetPixel(x, 3), "x=%d", x)
	}

	require.True(t, e.Undo())
	assert.False(t, e.CanUndo(), "a whole stroke is one undo step")
}

func TestEraser(t *testing.T) {
	e := newTestEditor(t)
	e.FillActiveLayer(paintmate.Yellow)
	e.SetTool(ToolEraser)
	e.SetBrush(Brush{Size: 2, Color: paintmate.Red, Opacity: 1})

	e.BeginStroke(5, 5)
	e.EndStroke()

	pixels := e.Document().ActiveLayer().Pixels()
	assert.Equal(t, 5, countColor(pixels, paintmate.Transparent))
	assert.Zero(t, e.Document().Composite().GetPixel(5, 5).A)
}

func TestStrokeOffCanvas(t *testing.T) {
	e := newTestEditor(t)
	e.BeginStroke(-50, -50)
	e.StrokeTo(-40, -60)
	assert.False(t, e.EndStroke())
	assert.False(t, e.CanUndo())
}

func TestStrokeToWithoutBegin(t *testing.T) {
	e := newTestEditor(t)
	e.SetTool(ToolPencil)
	e.StrokeTo(4, 4)
	assert.True(t, e.EndStroke())
	assert.False(t, e.EndStroke(), "no stroke in progress")
}

func TestSetBrushNormalizes(t *testing.T) {
	e := newTestEditor(t)
	e.SetBrush(Brush{Size: -3, Color: paintmate.Red, Opacity: 7})
	assert.Equal(t, 1.0, e.Brush().Size)
	assert.Equal(t, 1.0, e.Brush().Opacity)
}

func TestToolString(t *testing.T) {
	assert.Equal(t, "Brush", ToolBrush.String())
	assert.Equal(t, "Pencil", ToolPencil.String())
	assert.Equal(t, "Eraser", ToolEraser.String())
	assert.Equal(t, "Unknown", Tool(9).String())

	e := newTestEditor(t)
	e.SetTool(Tool(9))
	assert.Equal(t, ToolBrush, e.Tool())
}
