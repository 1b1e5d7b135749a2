package editor

import "math"

// Zoom limits and the factor applied by ZoomIn and ZoomOut.
const (
	MinZoom  = 0.1
	MaxZoom  = 10.0
	ZoomStep = 1.2
)

// Zoom returns the view scale; 1 shows one image pixel per screen pixel.
func (e *Editor) Zoom() float64 {
	return e.zoom
}

// SetZoom sets the view scale, clamped to [MinZoom, MaxZoom].
func (e *Editor) SetZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	e.zoom = min(max(z, MinZoom), MaxZoom)
}

// ZoomIn magnifies the view by ZoomStep.
func (e *Editor) ZoomIn() {
	e.SetZoom(e.zoom * ZoomStep)
}

// ZoomOut shrinks the view by ZoomStep.
func (e *Editor) ZoomOut() {
	e.SetZoom(e.zoom / ZoomStep)
}

// ScrollZoom applies a scroll-wheel delta; 1000 units double the scale.
func (e *Editor) ScrollZoom(delta float64) {
	e.SetZoom(e.zoom * (1 + delta*0.001))
}

// ScreenToImage converts a position relative to the image's top-left
// corner on screen into image pixel coordinates.
func (e *Editor) ScreenToImage(x, y float64) (int, int) {
	return int(math.Floor(x / e.zoom)), int(math.Floor(y / e.zoom))
}
