package editor

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/paintmate"
)

// drain processes file operations until none are pending.
func drain(t *testing.T, e *Editor) []FileResult {
	t.Helper()
	var results []FileResult
	require.Eventually(t, func() bool {
		results = append(results, e.ProcessFileOperations()...)
		return e.PendingFileOperations() == 0
	}, 5*time.Second, time.Millisecond)
	return results
}

func writeTestImage(t *testing.T, dir string, w, h int) string {
	t.Helper()
	doc, err := paintmate.NewDocument(w, h)
	require.NoError(t, err)
	doc.FillActiveLayer(paintmate.Cyan)
	path := filepath.Join(dir, "in.png")
	require.NoError(t, doc.Save(path, nil))
	return path
}

func TestSaveFileSync(t *testing.T) {
	dir := t.TempDir()
	e := newTestEditor(t)

	assert.ErrorIs(t, e.SaveFile(""), ErrNoFilePath)

	e.FillActiveLayer(paintmate.Magenta)
	require.True(t, e.Modified())

	path := filepath.Join(dir, "out.png")
	require.NoError(t, e.SaveFile(path))
	assert.Equal(t, path, e.CurrentFile())
	assert.False(t, e.Modified())

	e.FillActiveLayer(paintmate.Red)
	require.NoError(t, e.SaveFile(""))

	back, err := paintmate.LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, paintmate.Red, back.ActiveLayer().Pixels().GetPixel(0, 0))
}

func TestOpenFileSync(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir, 7, 5)

	e := newTestEditor(t)
	e.FillActiveLayer(paintmate.Red)
	e.SetZoom(2)

	require.NoError(t, e.OpenFile(path))
	assert.Equal(t, 7, e.Document().Width())
	assert.Equal(t, path, e.CurrentFile())
	assert.Equal(t, 1.0, e.Zoom())
	assert.False(t, e.CanUndo(), "opening clears the history")

	err := e.OpenFile(filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	assert.Equal(t, 7, e.Document().Width(), "failed open keeps the document")
}

func TestRequestOpen(t *testing.T) {
	path := writeTestImage(t, t.TempDir(), 6, 4)

	e := newTestEditor(t)
	e.FillActiveLayer(paintmate.Red)
	e.RequestOpen(path)
	assert.Equal(t, 1, e.PendingFileOperations())

	results := drain(t, e)
	require.Len(t, results, 1)
	assert.Equal(t, FileOpen, results[0].Op)
	assert.NoError(t, results[0].Err)

	assert.Equal(t, 6, e.Document().Width())
	assert.Equal(t, paintmate.Cyan, e.Document().Composite().GetPixel(2, 2))
	assert.False(t, e.CanUndo())
	assert.Equal(t, path, e.CurrentFile())
}

func TestRequestOpenFailureKeepsDocument(t *testing.T) {
	e := newTestEditor(t)
	e.FillActiveLayer(paintmate.Red)
	before := e.Document().Clone()

	e.RequestOpen(filepath.Join(t.TempDir(), "missing.png"))
	results := drain(t, e)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, os.ErrNotExist)
	assert.True(t, e.Document().Equal(before))
	assert.True(t, e.CanUndo())
}

func TestRequestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bmp")
	e := newTestEditor(t)
	e.FillActiveLayer(paintmate.Blue)

	e.RequestSave(path)
	// Edits after the request do not reach the file.
	e.FillActiveLayer(paintmate.Red)

	results := drain(t, e)
	require.Len(t, results, 1)
	assert.Equal(t, FileSave, results[0].Op)
	require.NoError(t, results[0].Err)
	assert.Equal(t, path, e.CurrentFile())
	assert.True(t, e.Modified(), "the document changed after the save was requested")

	back, err := paintmate.LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, paintmate.Blue, back.ActiveLayer().Pixels().GetPixel(3, 3))
}

func TestRequestSaveUnmodified(t *testing.T) {
	e := newTestEditor(t)
	e.FillActiveLayer(paintmate.Blue)
	e.RequestSave(filepath.Join(t.TempDir(), "out.png"))

	drain(t, e)
	assert.False(t, e.Modified())
}

func TestRequestSaveAfterNewImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.png")
	e := newTestEditor(t)
	e.FillActiveLayer(paintmate.Red)

	e.RequestSave(path)
	require.NoError(t, e.NewImage(8, 8))
	e.FillActiveLayer(paintmate.Green)

	results := drain(t, e)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Empty(t, e.CurrentFile(), "the new image is not bound to the old file")
	assert.True(t, e.Modified())
	assert.ErrorIs(t, e.SaveFile(""), ErrNoFilePath)

	back, err := paintmate.LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, paintmate.Red, back.ActiveLayer().Pixels().GetPixel(0, 0))
}

func TestRequestSaveErrors(t *testing.T) {
	e := newTestEditor(t)
	e.RequestSave("")
	e.RequestSave(filepath.Join(t.TempDir(), "out.webp"))

	results := drain(t, e)
	require.Len(t, results, 2)
	hasErr := func(target error) bool {
		return slices.ContainsFunc(results, func(r FileResult) bool {
			return errors.Is(r.Err, target)
		})
	}
	assert.True(t, hasErr(ErrNoFilePath))
	assert.True(t, hasErr(paintmate.ErrUnsupportedFormat))
	assert.Empty(t, e.CurrentFile())
}

func TestProcessFileOperationsEmpty(t *testing.T) {
	e := newTestEditor(t)
	assert.Empty(t, e.ProcessFileOperations())
	assert.Zero(t, e.PendingFileOperations())
}

func TestFileOpString(t *testing.T) {
	assert.Equal(t, "open", FileOpen.String())
	assert.Equal(t, "save", FileSave.String())
}
