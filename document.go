package paintmate

import (
	"errors"
	"fmt"
	"image"
)

// Document errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("paintmate: invalid dimensions")

	// ErrSizeMismatch is returned when a replacement pixel buffer does not
	// match the document size, or a transform yields layers of unequal size.
	ErrSizeMismatch = errors.New("paintmate: size mismatch")
)

// BackgroundLayerName is the name of the single layer of a new document.
const BackgroundLayerName = "Background"

// Document is an ordered stack of equally sized layers, bottom (index 0) to
// top, with one active layer that drawing operations target.
//
// Invariants: the layer list is never empty, the active index is always in
// range, and every layer has the document's dimensions. Operations given an
// invalid index or out-of-canvas coordinates are silent no-ops.
//
// Every mutation marks the document dirty; Composite re-flattens lazily.
//
// Thread safety: Document is not safe for concurrent access. It is owned by
// the goroutine that handles UI events.
type Document struct {
	layers []*Layer
	active int
	width  int
	height int

	dirty bool
	cache *Pixmap
}

// NewDocument creates a document with one transparent layer named
// "Background".
func NewDocument(width, height int) (*Document, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return newDocumentFrom(NewLayer(BackgroundLayerName, width, height)), nil
}

// NewDocumentFromPixmap creates a single-layer document whose Background
// layer holds a copy of pm.
func NewDocumentFromPixmap(pm *Pixmap) (*Document, error) {
	if pm.Width() <= 0 || pm.Height() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, pm.Width(), pm.Height())
	}
	return newDocumentFrom(newLayerFrom(BackgroundLayerName, pm.Clone())), nil
}

func newDocumentFrom(bg *Layer) *Document {
	return &Document{
		layers: []*Layer{bg},
		width:  bg.pixels.Width(),
		height: bg.pixels.Height(),
		dirty:  true,
	}
}

// Width returns the document width in pixels.
func (d *Document) Width() int {
	return d.width
}

// Height returns the document height in pixels.
func (d *Document) Height() int {
	return d.height
}

// Bounds returns the document rectangle with origin (0, 0).
func (d *Document) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// LayerCount returns the number of layers; always at least one.
func (d *Document) LayerCount() int {
	return len(d.layers)
}

// Layers returns the layers bottom to top. The slice is a copy; the layers
// are not.
func (d *Document) Layers() []*Layer {
	out := make([]*Layer, len(d.layers))
	copy(out, d.layers)
	return out
}

// Layer returns the layer at index i, or nil if i is out of range.
func (d *Document) Layer(i int) *Layer {
	if !d.validIndex(i) {
		return nil
	}
	return d.layers[i]
}

// ActiveIndex returns the index of the active layer.
func (d *Document) ActiveIndex() int {
	return d.active
}

// ActiveLayer returns the layer drawing operations target.
func (d *Document) ActiveLayer() *Layer {
	d.checkInvariants()
	return d.layers[d.active]
}

// SetActiveLayer selects the layer at index i. Invalid indices are ignored.
func (d *Document) SetActiveLayer(i int) {
	if d.validIndex(i) {
		d.active = i
	}
}

// AddLayer appends a transparent layer on top of the stack and makes it
// active. An empty name becomes "Layer N", N being the new layer count.
func (d *Document) AddLayer(name string) *Layer {
	l := NewLayer(name, d.width, d.height)
	if l.name == "" {
		l.name = fmt.Sprintf("Layer %d", len(d.layers)+1)
	}
	d.layers = append(d.layers, l)
	d.active = len(d.layers) - 1
	d.MarkDirty()
	return l
}

// RemoveLayer removes the layer at index i. The last remaining layer is
// never removed, and invalid indices are ignored. When the active index
// falls past the end it is clamped to the new top layer.
func (d *Document) RemoveLayer(i int) {
	if len(d.layers) <= 1 || !d.validIndex(i) {
		return
	}
	d.layers[i] = nil
	d.layers = append(d.layers[:i], d.layers[i+1:]...)
	if d.active >= len(d.layers) {
		d.active = len(d.layers) - 1
	}
	d.MarkDirty()
}

// DuplicateLayer places a deep copy of the active layer on top of the stack
// and makes it active.
func (d *Document) DuplicateLayer() *Layer {
	l := d.ActiveLayer().Clone()
	l.name += " copy"
	d.layers = append(d.layers, l)
	d.active = len(d.layers) - 1
	d.MarkDirty()
	return l
}

// MoveLayer moves the layer at index from to index to, shifting the layers
// in between. The active layer stays the same layer. Invalid indices are
// ignored.
func (d *Document) MoveLayer(from, to int) {
	if !d.validIndex(from) || !d.validIndex(to) || from == to {
		return
	}
	activeLayer := d.layers[d.active]
	l := d.layers[from]
	if from < to {
		copy(d.layers[from:to], d.layers[from+1:to+1])
	} else {
		copy(d.layers[to+1:from+1], d.layers[to:from])
	}
	d.layers[to] = l
	for i, cand := range d.layers {
		if cand == activeLayer {
			d.active = i
			break
		}
	}
	d.MarkDirty()
}

// SetLayerVisible shows or hides layer i.
func (d *Document) SetLayerVisible(i int, visible bool) {
	if l := d.Layer(i); l != nil {
		l.SetVisible(visible)
		d.MarkDirty()
	}
}

// SetLayerOpacity sets the opacity of layer i, clamped to [0, 1].
func (d *Document) SetLayerOpacity(i int, opacity float64) {
	if l := d.Layer(i); l != nil {
		l.SetOpacity(opacity)
		d.MarkDirty()
	}
}

// SetLayerBlendMode sets the blend mode of layer i.
func (d *Document) SetLayerBlendMode(i int, m BlendMode) {
	if l := d.Layer(i); l != nil {
		l.SetBlendMode(m)
		d.MarkDirty()
	}
}

// RenameLayer renames layer i. Renaming does not affect the composite.
func (d *Document) RenameLayer(i int, name string) {
	if l := d.Layer(i); l != nil {
		l.SetName(name)
	}
}

// ReplaceActivePixels replaces the active layer's buffer with pm, typically
// the output of an adjustment. pm must match the document size; on mismatch
// the document is left unchanged.
func (d *Document) ReplaceActivePixels(pm *Pixmap) error {
	if pm == nil {
		return fmt.Errorf("%w: no replacement pixels", ErrSizeMismatch)
	}
	if pm.Width() != d.width || pm.Height() != d.height {
		return fmt.Errorf("%w: got %dx%d, document is %dx%d",
			ErrSizeMismatch, pm.Width(), pm.Height(), d.width, d.height)
	}
	d.ActiveLayer().pixels = pm
	d.MarkDirty()
	return nil
}

// Transform applies fn to every layer's pixels, for geometric operations
// such as resize, crop, rotate and flip. All results must be non-empty and
// share one size, which becomes the new document size. Otherwise the
// document is left unchanged.
func (d *Document) Transform(fn func(*Pixmap) *Pixmap) error {
	out := make([]*Pixmap, len(d.layers))
	for i, l := range d.layers {
		pm := fn(l.pixels)
		if pm == nil || pm.Width() <= 0 || pm.Height() <= 0 {
			return fmt.Errorf("%w: transform of layer %d produced an empty image", ErrInvalidDimensions, i)
		}
		if i > 0 && !pm.SameSize(out[0]) {
			return fmt.Errorf("%w: layer %d is %dx%d, layer 0 is %dx%d",
				ErrSizeMismatch, i, pm.Width(), pm.Height(), out[0].Width(), out[0].Height())
		}
		out[i] = pm
	}
	for i, l := range d.layers {
		l.pixels = out[i]
	}
	d.width, d.height = out[0].Width(), out[0].Height()
	d.MarkDirty()
	return nil
}

// MarkDirty invalidates the cached composite. Callers that mutate a Layer
// or its Pixmap directly must call it.
func (d *Document) MarkDirty() {
	d.dirty = true
}

// Dirty reports whether the cached composite is stale.
func (d *Document) Dirty() bool {
	return d.dirty
}

// Clone returns a full value copy of the document. No layer buffers are
// shared with d, and the clone starts without a cached composite.
func (d *Document) Clone() *Document {
	c := &Document{
		layers: make([]*Layer, len(d.layers)),
		active: d.active,
		width:  d.width,
		height: d.height,
		dirty:  true,
	}
	for i, l := range d.layers {
		c.layers[i] = l.Clone()
	}
	return c
}

// Equal reports whether d and o have the same size, active layer and
// layers. The cached composite is not part of a document's identity.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.width != o.width || d.height != o.height || d.active != o.active || len(d.layers) != len(o.layers) {
		return false
	}
	for i := range d.layers {
		if !d.layers[i].Equal(o.layers[i]) {
			return false
		}
	}
	return true
}

func (d *Document) validIndex(i int) bool {
	return i >= 0 && i < len(d.layers)
}

// checkInvariants panics if the document is in a state no sequence of
// public operations can produce.
func (d *Document) checkInvariants() {
	if len(d.layers) == 0 {
		panic("paintmate: document has no layers")
	}
	if !d.validIndex(d.active) {
		panic(fmt.Sprintf("paintmate: active layer %d out of range [0, %d)", d.active, len(d.layers)))
	}
}
