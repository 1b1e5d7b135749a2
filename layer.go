package paintmate

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Layer is one pixel buffer of a Document together with its compositing
// metadata.
//
// A Layer obtained from a Document may be mutated directly, but the caller
// must then call Document.MarkDirty, or Composite will keep serving the
// previous pixels. The Document's own setters mark it dirty automatically.
type Layer struct {
	name      string
	visible   bool
	opacity   float64
	blendMode BlendMode
	pixels    *Pixmap
}

// NewLayer creates a visible, fully opaque Normal-mode layer whose pixels
// are transparent white.
func NewLayer(name string, width, height int) *Layer {
	return newLayerFrom(name, NewPixmapFilled(width, height, TransparentWhite))
}

func newLayerFrom(name string, pixels *Pixmap) *Layer {
	return &Layer{
		name:      normalizeLayerName(name),
		visible:   true,
		opacity:   1,
		blendMode: BlendNormal,
		pixels:    pixels,
	}
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// SetName renames the layer. The name is trimmed and NFC-normalized.
func (l *Layer) SetName(name string) {
	l.name = normalizeLayerName(name)
}

// Visible reports whether the layer takes part in compositing.
func (l *Layer) Visible() bool {
	return l.visible
}

// SetVisible shows or hides the layer.
func (l *Layer) SetVisible(v bool) {
	l.visible = v
}

// Opacity returns the layer's opacity (0.0 to 1.0).
func (l *Layer) Opacity() float64 {
	return l.opacity
}

// SetOpacity sets the layer's opacity, clamped to [0.0, 1.0].
func (l *Layer) SetOpacity(opacity float64) {
	l.opacity = clampUnit(opacity)
}

// BlendMode returns the layer's blend mode.
func (l *Layer) BlendMode() BlendMode {
	return l.blendMode
}

// SetBlendMode sets the layer's blend mode. Invalid modes are ignored.
func (l *Layer) SetBlendMode(m BlendMode) {
	if m.IsValid() {
		l.blendMode = m
	}
}

// Pixels returns the layer's pixel buffer.
func (l *Layer) Pixels() *Pixmap {
	return l.pixels
}

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	c := *l
	c.pixels = l.pixels.Clone()
	return &c
}

// Equal reports whether l and o carry the same metadata and pixels.
func (l *Layer) Equal(o *Layer) bool {
	return l.name == o.name &&
		l.visible == o.visible &&
		l.opacity == o.opacity &&
		l.blendMode == o.blendMode &&
		l.pixels.Equal(o.pixels)
}

func normalizeLayerName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
