package editor

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/paintmate"
)

// Tool selects how strokes modify the active layer.
type Tool uint8

// Painting tools.
const (
	// ToolBrush paints discs of the brush size.
	ToolBrush Tool = iota
	// ToolPencil paints single hard pixels.
	ToolPencil
	// ToolEraser clears discs of the brush size to transparent.
	ToolEraser
)

var toolNames = [...]string{
	ToolBrush:  "Brush",
	ToolPencil: "Pencil",
	ToolEraser: "Eraser",
}

// String returns the tool name.
func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "Unknown"
}

// Brush holds the painting settings shared by all tools.
type Brush struct {
	// Size is the disc diameter in pixels.
	Size float64
	// Color is the paint color; its alpha is scaled by Opacity.
	Color color.NRGBA
	// Opacity is in [0, 1].
	Opacity float64
}

// DefaultBrush returns a 10 pixel opaque black brush.
func DefaultBrush() Brush {
	return Brush{Size: 10, Color: paintmate.Black, Opacity: 1}
}

func (b Brush) normalized() Brush {
	if !(b.Size > 0) {
		b.Size = 1
	}
	if math.IsNaN(b.Opacity) {
		b.Opacity = 1
	}
	b.Opacity = min(max(b.Opacity, 0), 1)
	return b
}

// paint returns the color laid down by the brush.
func (b Brush) paint() color.NRGBA {
	return paintmate.WithOpacity(b.Color, b.Opacity)
}

// stroke tracks a drag in progress.
type stroke struct {
	active  bool
	painted bool
	x, y    int
}

// Tool returns the current tool.
func (e *Editor) Tool() Tool {
	return e.tool
}

// SetTool selects the tool used by the next stroke.
func (e *Editor) SetTool(t Tool) {
	if int(t) < len(toolNames) {
		e.tool = t
	}
}

// Brush returns the current brush settings.
func (e *Editor) Brush() Brush {
	return e.brush
}

// SetBrush replaces the brush settings. Size must be positive; opacity is
// clamped to [0, 1].
func (e *Editor) SetBrush(b Brush) {
	e.brush = b.normalized()
}

// BeginStroke starts a stroke at image pixel (x, y) and paints the first
// dab. A stroke already in progress is ended first.
func (e *Editor) BeginStroke(x, y int) {
	if e.stroke.active {
		e.EndStroke()
	}
	e.stroke = stroke{active: true, x: x, y: y}
	e.dab(x, y)
}

// StrokeTo continues the stroke to (x, y), painting a dab at every pixel
// step along the way so fast drags leave no gaps.
func (e *Editor) StrokeTo(x, y int) {
	if !e.stroke.active {
		e.BeginStroke(x, y)
		return
	}
	x0, y0 := e.stroke.x, e.stroke.y
	steps := max(abs(x-x0), abs(y-y0))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.dab(x0+int(math.Round(float64(x-x0)*t)), y0+int(math.Round(float64(y-y0)*t)))
	}
	e.stroke.x, e.stroke.y = x, y
}

// EndStroke finishes the stroke and records one undo state for it. It
// reports whether a state was recorded.
func (e *Editor) EndStroke() bool {
	painted := e.stroke.active && e.stroke.painted
	e.stroke = stroke{}
	if painted {
		e.Commit()
	}
	return painted
}

// dab applies the current tool once at (x, y).
func (e *Editor) dab(x, y int) {
	if !e.doc.Bounds().Overlaps(dabBounds(x, y, e.brush.Size/2)) {
		return
	}
	switch e.tool {
	case ToolPencil:
		if !e.doc.ActiveLayer().Pixels().InBounds(x, y) {
			return
		}
		e.doc.DrawPixel(x, y, e.brush.paint())
	case ToolEraser:
		e.doc.DrawCircle(x, y, e.brush.Size/2, paintmate.Transparent)
	default:
		e.doc.DrawCircle(x, y, e.brush.Size/2, e.brush.paint())
	}
	e.stroke.painted = true
}

// dabBounds returns the pixels a disc of the given radius at (x, y) can
// touch.
func dabBounds(x, y int, radius float64) image.Rectangle {
	r := int(math.Ceil(radius))
	return image.Rect(x-r, y-r, x+r+1, y+r+1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
