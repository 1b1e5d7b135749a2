// Package paintmate provides a layered raster image model and its
// compositing engine.
//
// # Overview
//
// A Document is an ordered stack of Layers over a fixed-size canvas. Each
// Layer carries a straight-alpha RGBA8 Pixmap plus a name, visibility,
// opacity and BlendMode. Flattening composites the visible layers bottom to
// top over a transparent canvas using Porter-Duff "over" with one of twelve
// separable blend modes.
//
// # Quick Start
//
//	import "github.com/gogpu/paintmate"
//
//	doc, _ := paintmate.NewDocument(640, 480)
//	doc.FillActiveLayer(paintmate.White)
//
//	doc.AddLayer("shade")
//	doc.SetLayerBlendMode(1, paintmate.BlendMultiply)
//	doc.SetLayerOpacity(1, 0.5)
//	doc.DrawCircle(320, 240, 100, paintmate.Blue)
//
//	_ = doc.Save("out.png", nil)
//
// # Compositing
//
// Flatten always recomputes. Composite returns a cached result that is
// rebuilt only after the document was marked dirty. Every Document method
// that changes pixels or layer properties marks it dirty; code that edits a
// Layer or Pixmap obtained from the document must call MarkDirty itself.
//
// # Errors
//
// Out-of-range pixel coordinates and layer indices are ignored. Decoding,
// encoding and size mismatches return errors that wrap the sentinel values
// of this package. A Document whose layer stack is empty or whose active
// index is out of range panics, since no sequence of public calls can
// produce one.
//
// # Related Packages
//
//   - history: bounded undo/redo of Document snapshots
//   - adjust: color adjustments, filters and geometric transforms
//   - editor: session state tying documents, history, tools and file I/O
//     together
//
// # Logging
//
// The package logs through log/slog and is silent by default; see
// SetLogger.
package paintmate
