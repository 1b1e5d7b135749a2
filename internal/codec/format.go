// Package codec decodes and encodes the raster file formats paintmate reads
// and writes. It never looks at layers: decoding yields a single image and
// encoding takes an already flattened one.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// Format identifies a raster file format.
type Format uint8

const (
	// FormatUnknown is the zero Format.
	FormatUnknown Format = iota
	// FormatPNG is Portable Network Graphics (lossless, alpha).
	FormatPNG
	// FormatJPEG is JPEG (lossy, no alpha).
	FormatJPEG
	// FormatGIF is GIF (palette, 1-bit alpha).
	FormatGIF
	// FormatBMP is Windows bitmap.
	FormatBMP
	// FormatTIFF is TIFF.
	FormatTIFF
	// FormatWebP is WebP. Decode only.
	FormatWebP

	formatCount
)

type formatInfo struct {
	name      string
	ext       string
	aliases   []string
	canEncode bool
}

var formatTable = [formatCount]formatInfo{
	FormatUnknown: {name: "unknown"},
	FormatPNG:     {name: "PNG", ext: ".png", canEncode: true},
	FormatJPEG:    {name: "JPEG", ext: ".jpg", aliases: []string{".jpeg", ".jpe"}, canEncode: true},
	FormatGIF:     {name: "GIF", ext: ".gif", canEncode: true},
	FormatBMP:     {name: "BMP", ext: ".bmp", canEncode: true},
	FormatTIFF:    {name: "TIFF", ext: ".tiff", aliases: []string{".tif"}, canEncode: true},
	FormatWebP:    {name: "WebP", ext: ".webp"},
}

// String returns the format name.
func (f Format) String() string {
	if f >= formatCount {
		return formatTable[FormatUnknown].name
	}
	return formatTable[f].name
}

// Extension returns the canonical file extension, including the dot.
func (f Format) Extension() string {
	if f >= formatCount {
		return ""
	}
	return formatTable[f].ext
}

// CanEncode reports whether Encode supports f.
func (f Format) CanEncode() bool {
	return f < formatCount && formatTable[f].canEncode
}

// FormatFromPath chooses a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return FormatUnknown, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	for f := FormatPNG; f < formatCount; f++ {
		info := formatTable[f]
		if ext == info.ext {
			return f, nil
		}
		for _, a := range info.aliases {
			if ext == a {
				return f, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// ParseFormat looks up a format by name ("png", "JPEG") or extension
// (".tif").
func ParseFormat(name string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(key, ".") {
		key = "." + key
	}
	return FormatFromPath("x" + key)
}

// Detect identifies the format of encoded image data by its magic bytes.
// It returns FormatUnknown for data it does not recognize.
func Detect(data []byte) Format {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return FormatUnknown
	}
	switch kind.Extension {
	case "png":
		return FormatPNG
	case "jpg":
		return FormatJPEG
	case "gif":
		return FormatGIF
	case "bmp":
		return FormatBMP
	case "tif":
		return FormatTIFF
	case "webp":
		return FormatWebP
	default:
		return FormatUnknown
	}
}
