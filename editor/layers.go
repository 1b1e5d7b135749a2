package editor

import (
	"image/color"

	"github.com/gogpu/paintmate"
)

// AddLayer adds an empty layer on top and makes it active.
func (e *Editor) AddLayer(name string) *paintmate.Layer {
	l := e.doc.AddLayer(name)
	e.Commit()
	return l
}

// RemoveLayer deletes layer i. The only remaining layer cannot be removed.
func (e *Editor) RemoveLayer(i int) {
	n := e.doc.LayerCount()
	e.doc.RemoveLayer(i)
	if e.doc.LayerCount() != n {
		e.Commit()
	}
}

// DuplicateLayer copies the active layer above the top of the stack.
func (e *Editor) DuplicateLayer() *paintmate.Layer {
	l := e.doc.DuplicateLayer()
	e.Commit()
	return l
}

// MoveLayer moves layer from to index to.
func (e *Editor) MoveLayer(from, to int) {
	if from == to || !e.valid(from) || !e.valid(to) {
		return
	}
	e.doc.MoveLayer(from, to)
	e.Commit()
}

// SetActiveLayer selects the layer that painting and adjustments apply to.
// Selection is not recorded in the history.
func (e *Editor) SetActiveLayer(i int) {
	e.doc.SetActiveLayer(i)
}

// SetLayerVisible shows or hides layer i.
func (e *Editor) SetLayerVisible(i int, visible bool) {
	if !e.valid(i) || e.doc.Layer(i).Visible() == visible {
		return
	}
	e.doc.SetLayerVisible(i, visible)
	e.Commit()
}

// SetLayerOpacity sets the opacity of layer i.
func (e *Editor) SetLayerOpacity(i int, opacity float64) {
	if !e.valid(i) {
		return
	}
	old := e.doc.Layer(i).Opacity()
	e.doc.SetLayerOpacity(i, opacity)
	if e.doc.Layer(i).Opacity() != old {
		e.Commit()
	}
}

// SetLayerBlendMode sets the blend mode of layer i.
func (e *Editor) SetLayerBlendMode(i int, m paintmate.BlendMode) {
	if !e.valid(i) || !m.IsValid() || e.doc.Layer(i).BlendMode() == m {
		return
	}
	e.doc.SetLayerBlendMode(i, m)
	e.Commit()
}

// RenameLayer renames layer i.
func (e *Editor) RenameLayer(i int, name string) {
	if !e.valid(i) {
		return
	}
	old := e.doc.Layer(i).Name()
	e.doc.RenameLayer(i, name)
	if e.doc.Layer(i).Name() != old {
		e.Commit()
	}
}

// FillActiveLayer paints every pixel of the active layer with c.
func (e *Editor) FillActiveLayer(c color.NRGBA) {
	e.doc.FillActiveLayer(c)
	e.Commit()
}

// ApplyAdjustment replaces the active layer's pixels with fn's result, as
// produced by the adjust package. The result must keep the canvas size.
func (e *Editor) ApplyAdjustment(fn func(*paintmate.Pixmap) *paintmate.Pixmap) error {
	if err := e.doc.ReplaceActivePixels(fn(e.doc.ActiveLayer().Pixels())); err != nil {
		return err
	}
	e.Commit()
	return nil
}

// ApplyTransform applies a geometric transform to every layer. The
// document is unchanged if the layers disagree on the resulting size.
func (e *Editor) ApplyTransform(fn func(*paintmate.Pixmap) *paintmate.Pixmap) error {
	if err := e.doc.Transform(fn); err != nil {
		return err
	}
	e.Commit()
	return nil
}

func (e *Editor) valid(i int) bool {
	return e.doc.Layer(i) != nil
}
