package paintmate

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/paintmate/internal/codec"
)

// Format identifies a raster file format.
type Format = codec.Format

// File formats.
const (
	FormatPNG  = codec.FormatPNG
	FormatJPEG = codec.FormatJPEG
	FormatGIF  = codec.FormatGIF
	FormatBMP  = codec.FormatBMP
	FormatTIFF = codec.FormatTIFF
	// FormatWebP can be opened but not saved.
	FormatWebP = codec.FormatWebP
)

// EncodeOptions tunes encoding, e.g. JPEG quality.
type EncodeOptions = codec.Options

// I/O errors.
var (
	// ErrEmptySource is returned when decoding zero bytes.
	ErrEmptySource = errors.New("paintmate: empty source")

	// ErrUnsupportedFormat is returned for formats that cannot be read or
	// written.
	ErrUnsupportedFormat = codec.ErrUnsupportedFormat
)

// FormatFromPath picks the file format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	return codec.FormatFromPath(path)
}

// FromSource decodes PNG, JPEG, GIF, BMP, TIFF or WebP data into a
// single-layer document.
func FromSource(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptySource
	}
	img, _, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("paintmate: decode: %w", err)
	}
	return NewDocumentFromPixmap(FromImage(img))
}

// LoadDocument reads and decodes the image file at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("paintmate: open file: %w", err)
	}
	return FromSource(data)
}

// Encode flattens the document and encodes it in format f.
func (d *Document) Encode(f Format, opts *EncodeOptions) ([]byte, error) {
	return EncodePixmap(d.Flatten(), f, opts)
}

// EncodePixmap encodes an already flattened image in format f.
func EncodePixmap(pm *Pixmap, f Format, opts *EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := codec.Encode(&buf, pm.ToImage(), f, opts); err != nil {
		return nil, fmt.Errorf("paintmate: %w", err)
	}
	return buf.Bytes(), nil
}

// Save flattens the document and writes it to path, choosing the format
// from the file extension.
func (d *Document) Save(path string, opts *EncodeOptions) error {
	return SavePixmap(d.Flatten(), path, opts)
}

// SavePixmap encodes pm and writes it to path, choosing the format from
// the file extension. Nothing is written if encoding fails.
func SavePixmap(pm *Pixmap, path string, opts *EncodeOptions) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("paintmate: save: %w", err)
	}
	data, err := EncodePixmap(pm, f, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil { //nolint:gosec // images are not secrets
		return fmt.Errorf("paintmate: create file: %w", err)
	}
	return nil
}
