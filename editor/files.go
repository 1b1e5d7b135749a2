package editor

import "github.com/gogpu/paintmate"

// FileOp identifies a background file operation.
type FileOp uint8

// File operations.
const (
	FileOpen FileOp = iota
	FileSave
)

// String returns "open" or "save".
func (op FileOp) String() string {
	if op == FileSave {
		return "save"
	}
	return "open"
}

// FileResult reports a completed background file operation.
type FileResult struct {
	Op   FileOp
	Path string
	Err  error
}

// fileQueueSize bounds the number of completed operations awaiting
// ProcessFileOperations before workers block.
const fileQueueSize = 16

type fileCompletion struct {
	FileResult
	doc        *paintmate.Document // decoded document, for opens
	generation uint64              // state that was encoded, for saves
	session    uint64              // session the save was requested in
}

// fileQueue carries worker completions back to the owning goroutine.
type fileQueue struct {
	done    chan fileCompletion
	pending int
}

func newFileQueue() fileQueue {
	return fileQueue{done: make(chan fileCompletion, fileQueueSize)}
}

// RequestOpen starts loading the image at path in the background. The
// document is replaced when ProcessFileOperations picks up the result.
// Concurrent opens are not cancelled; the last one applied wins.
func (e *Editor) RequestOpen(path string) {
	e.files.pending++
	done := e.files.done
	go func() {
		doc, err := paintmate.LoadDocument(path)
		done <- fileCompletion{
			FileResult: FileResult{Op: FileOpen, Path: path, Err: err},
			doc:        doc,
		}
	}()
}

// RequestSave starts writing the current composite to path in the
// background. The worker encodes a private copy, so editing may continue
// while it runs. An empty path saves to the current file.
func (e *Editor) RequestSave(path string) {
	if path == "" {
		path = e.currentFile
	}
	e.files.pending++

	var pm *paintmate.Pixmap
	if path != "" {
		pm = e.doc.Composite().Clone()
	}
	opts := e.encode
	gen, session := e.generation, e.session
	done := e.files.done
	go func() {
		err := ErrNoFilePath
		if pm != nil {
			err = paintmate.SavePixmap(pm, path, &opts)
		}
		done <- fileCompletion{
			FileResult: FileResult{Op: FileSave, Path: path, Err: err},
			generation: gen,
			session:    session,
		}
	}()
}

// PendingFileOperations returns the number of requested file operations
// whose results have not been processed yet.
func (e *Editor) PendingFileOperations() int {
	return e.files.pending
}

// ProcessFileOperations applies every completed file operation without
// blocking and returns their results in completion order. A successful
// open replaces the document and clears the history; a successful save
// updates the current file.
func (e *Editor) ProcessFileOperations() []FileResult {
	var results []FileResult
	for {
		select {
		case c := <-e.files.done:
			e.files.pending--
			e.complete(c)
			results = append(results, c.FileResult)
		default:
			return results
		}
	}
}

func (e *Editor) complete(c fileCompletion) {
	if c.Err != nil {
		paintmate.Logger().Error("editor: file operation failed",
			"op", c.Op.String(), "path", c.Path, "err", c.Err)
		return
	}
	switch c.Op {
	case FileOpen:
		e.opened(c.doc, c.Path)
	case FileSave:
		if c.session != e.session {
			// The file was written, but it holds a document that has since
			// been replaced.
			paintmate.Logger().Info("editor: saved previous document", "path", c.Path)
			return
		}
		e.saved(c.Path, c.generation)
	}
}
