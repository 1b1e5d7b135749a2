package paintmate

import (
	"image/color"
	"math"
)

// DrawPixel writes c into the active layer at (x, y).
// Out-of-canvas coordinates are silently ignored.
func (d *Document) DrawPixel(x, y int, c color.NRGBA) {
	pm := d.ActiveLayer().pixels
	if !pm.InBounds(x, y) {
		return
	}
	pm.SetPixel(x, y, c)
	d.MarkDirty()
}

// DrawCircle writes c into every pixel of the active layer whose Euclidean
// distance from (cx, cy) is at most radius. The center may lie outside the
// canvas; only pixels inside it are written.
//
// The scan covers the circle's bounding box clipped to the canvas, which
// visits the same pixels a full-canvas scan would accept.
func (d *Document) DrawCircle(cx, cy int, radius float64, c color.NRGBA) {
	pm := d.ActiveLayer().pixels
	d.MarkDirty()
	if !(radius >= 0) {
		return
	}

	// Bounded so huge radii stay representable; any such circle covers the canvas.
	r := int(math.Ceil(min(radius, float64(d.width+d.height))))
	x0, x1 := max(cx-r, 0), min(cx+r, d.width-1)
	y0, y1 := max(cy-r, 0), min(cy+r, d.height-1)

	for y := y0; y <= y1; y++ {
		dy := float64(y - cy)
		for x := x0; x <= x1; x++ {
			dx := float64(x - cx)
			if math.Sqrt(dx*dx+dy*dy) <= radius {
				pm.SetPixel(x, y, c)
			}
		}
	}
}

// FillActiveLayer sets every pixel of the active layer to c.
func (d *Document) FillActiveLayer(c color.NRGBA) {
	d.ActiveLayer().pixels.Clear(c)
	d.MarkDirty()
}
