// Package editor holds the application state of a paintmate session: the
// live document, its undo history, the view zoom, the painting tool and
// background file operations.
//
// An Editor is driven from a single goroutine, typically a UI event loop.
// Only file decoding and encoding run elsewhere; their results are applied
// when the owner calls ProcessFileOperations.
package editor

import (
	"errors"
	"fmt"

	"github.com/gogpu/paintmate"
	"github.com/gogpu/paintmate/history"
)

// Default canvas size for new images.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ErrNoFilePath is returned by SaveFile when neither a path nor a current
// file is known.
var ErrNoFilePath = errors.New("editor: no file path")

// Editor is the state of one editing session.
type Editor struct {
	doc  *paintmate.Document
	hist *history.Manager[*paintmate.Document]

	currentFile string
	modified    bool
	// generation increments on every committed change.
	generation uint64
	// session increments whenever a new or opened document replaces the
	// current one.
	session uint64

	zoom   float64
	tool   Tool
	brush  Brush
	stroke stroke

	encode paintmate.EncodeOptions
	files  fileQueue
}

// Option configures an Editor.
type Option func(*editorOptions)

type editorOptions struct {
	width, height   int
	historyCapacity int
	brush           Brush
	jpegQuality     int
}

func defaultOptions() editorOptions {
	return editorOptions{
		width:           DefaultWidth,
		height:          DefaultHeight,
		historyCapacity: history.DefaultCapacity,
		brush:           DefaultBrush(),
	}
}

// WithCanvasSize sets the size of the initial image.
func WithCanvasSize(width, height int) Option {
	return func(o *editorOptions) {
		o.width, o.height = width, height
	}
}

// WithHistoryCapacity bounds the number of undo states.
func WithHistoryCapacity(n int) Option {
	return func(o *editorOptions) {
		o.historyCapacity = n
	}
}

// WithBrush sets the initial brush.
func WithBrush(b Brush) Option {
	return func(o *editorOptions) {
		o.brush = b
	}
}

// WithJPEGQuality sets the quality used when saving JPEG files.
func WithJPEGQuality(q int) Option {
	return func(o *editorOptions) {
		o.jpegQuality = q
	}
}

// New creates an editor holding a blank image.
func New(opts ...Option) (*Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	doc, err := paintmate.NewDocument(o.width, o.height)
	if err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}
	e := &Editor{
		hist:   history.New[*paintmate.Document](history.WithCapacity(o.historyCapacity)),
		tool:   ToolBrush,
		brush:  o.brush.normalized(),
		encode: paintmate.EncodeOptions{JPEGQuality: o.jpegQuality},
		files:  newFileQueue(),
	}
	e.reset(doc, "")
	return e, nil
}

// reset installs doc as a fresh session state.
func (e *Editor) reset(doc *paintmate.Document, path string) {
	e.doc = doc
	e.session++
	e.hist.Clear()
	e.hist.Push(doc)
	e.currentFile = path
	e.modified = false
	e.zoom = 1
	e.stroke = stroke{}
}

// Document returns the live document. Callers that mutate it directly
// should call Commit afterwards.
func (e *Editor) Document() *paintmate.Document {
	return e.doc
}

// CurrentFile returns the path the document was opened from or last saved
// to, or "" for an unsaved image.
func (e *Editor) CurrentFile() string {
	return e.currentFile
}

// Modified reports whether the document has changes since it was created,
// opened or saved.
func (e *Editor) Modified() bool {
	return e.modified
}

// NewImage replaces the document with a blank width x height image and
// clears the history.
func (e *Editor) NewImage(width, height int) error {
	doc, err := paintmate.NewDocument(width, height)
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	e.reset(doc, "")
	paintmate.Logger().Info("editor: new image", "width", width, "height", height)
	return nil
}

// OpenFile loads the image at path synchronously. On failure the current
// document and history are unchanged.
func (e *Editor) OpenFile(path string) error {
	doc, err := paintmate.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("editor: open %s: %w", path, err)
	}
	e.opened(doc, path)
	return nil
}

func (e *Editor) opened(doc *paintmate.Document, path string) {
	e.reset(doc, path)
	paintmate.Logger().Info("editor: opened", "path", path,
		"width", doc.Width(), "height", doc.Height())
}

// SaveFile flattens the document and writes it synchronously. An empty
// path saves to the current file.
func (e *Editor) SaveFile(path string) error {
	if path == "" {
		path = e.currentFile
	}
	if path == "" {
		return ErrNoFilePath
	}
	if err := e.doc.Save(path, &e.encode); err != nil {
		return fmt.Errorf("editor: save %s: %w", path, err)
	}
	e.saved(path, e.generation)
	return nil
}

// saved records a completed save of the state at generation gen.
func (e *Editor) saved(path string, gen uint64) {
	e.currentFile = path
	e.modified = e.generation != gen
	paintmate.Logger().Info("editor: saved", "path", path)
}

// Commit records the current document as a new undo state. Call it after
// each completed edit.
func (e *Editor) Commit() {
	e.hist.Push(e.doc)
	e.modified = true
	e.generation++
}

// Edit applies fn to the live document and commits the result.
func (e *Editor) Edit(fn func(*paintmate.Document)) {
	fn(e.doc)
	e.doc.MarkDirty()
	e.Commit()
}

// CanUndo reports whether Undo would change the document.
func (e *Editor) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo reports whether Redo would change the document.
func (e *Editor) CanRedo() bool {
	return e.hist.CanRedo()
}

// Undo restores the previous state. It reports whether anything changed.
func (e *Editor) Undo() bool {
	doc, ok := e.hist.Undo()
	if !ok {
		return false
	}
	e.restore(doc)
	return true
}

// Redo restores the state undone last. It reports whether anything changed.
func (e *Editor) Redo() bool {
	doc, ok := e.hist.Redo()
	if !ok {
		return false
	}
	e.restore(doc)
	return true
}

func (e *Editor) restore(doc *paintmate.Document) {
	e.doc = doc
	e.modified = true
	e.generation++
	e.stroke = stroke{}
}
