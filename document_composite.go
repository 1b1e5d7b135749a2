package paintmate

import (
	"fmt"

	"github.com/gogpu/paintmate/internal/blend"
)

// Flatten composites all visible layers, bottom to top, into a new pixmap.
//
// The accumulator starts as transparent white. Each visible layer is
// composited with straight-alpha source-over, its alpha scaled by the layer
// opacity and its colors combined through the layer's blend mode.
//
// Flatten does not read or change the cached composite.
func (d *Document) Flatten() *Pixmap {
	d.checkInvariants()

	out := NewPixmapFilled(d.width, d.height, TransparentWhite)
	for i, l := range d.layers {
		if !l.visible {
			continue
		}
		if err := blend.Over(out.data, l.pixels.data, l.blendMode, l.opacity); err != nil {
			panic(fmt.Sprintf("paintmate: layer %d (%q): %v", i, l.name, err))
		}
	}
	return out
}

// Composite returns the flattened image, recomputing it only when the
// document is dirty. The returned pixmap is owned by the document and is
// replaced, not modified, on the next recompute; callers must not write to
// it.
func (d *Document) Composite() *Pixmap {
	if !d.dirty && d.cache != nil {
		return d.cache
	}
	d.cache = d.Flatten()
	d.dirty = false
	Logger().Debug("paintmate: composite recomputed",
		"width", d.width, "height", d.height, "layers", len(d.layers))
	return d.cache
}
