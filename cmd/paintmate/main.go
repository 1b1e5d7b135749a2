// Command paintmate composes layered images from the command line.
//
// Layers are stacked bottom to top over either an input image (-in) or a
// blank canvas, then flattened and written to -out:
//
//	paintmate -in photo.jpg -layer shadow.png:multiply:0.6 -layer glow.png:screen -out result.png
//
// Adjustments apply to the top layer before flattening.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/paintmate"
	"github.com/gogpu/paintmate/adjust"
	"github.com/gogpu/paintmate/editor"
	"github.com/gogpu/paintmate/internal/config"
)

// layerSpec is one -layer flag: path[:mode[:opacity]].
type layerSpec struct {
	path    string
	mode    paintmate.BlendMode
	opacity float64
}

func parseLayerSpec(s string) (layerSpec, error) {
	spec := layerSpec{mode: paintmate.BlendNormal, opacity: 1}
	parts := strings.Split(s, ":")
	if len(parts) > 3 || parts[0] == "" {
		return spec, fmt.Errorf("want path[:mode[:opacity]], got %q", s)
	}
	spec.path = parts[0]
	if len(parts) > 1 && parts[1] != "" {
		m, err := paintmate.ParseBlendMode(parts[1])
		if err != nil {
			return spec, err
		}
		spec.mode = m
	}
	if len(parts) > 2 {
		o, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || o < 0 || o > 1 {
			return spec, fmt.Errorf("opacity %q is not in [0, 1]", parts[2])
		}
		spec.opacity = o
	}
	return spec, nil
}

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath, "configuration file")
		input      = flag.String("in", "", "base image (default: blank canvas)")
		width      = flag.Int("width", 0, "blank canvas width (default from config)")
		height     = flag.Int("height", 0, "blank canvas height (default from config)")
		brightness = flag.Float64("brightness", 0, "brightness change in [-1, 1]")
		contrast   = flag.Float64("contrast", 0, "contrast change in [-1, 1]")
		hue        = flag.Float64("hue", 0, "hue rotation in degrees")
		saturation = flag.Float64("saturation", 1, "saturation factor")
		blurRadius = flag.Float64("blur", 0, "gaussian blur radius in pixels")
		rotate     = flag.Float64("rotate", 0, "rotate the whole image clockwise by degrees")
		output     = flag.String("out", "", "output file; the extension selects the format")
		verbose    = flag.Bool("v", false, "debug logging")
		layers     []layerSpec
	)
	flag.Func("layer", "layer `path[:mode[:opacity]]` to stack on top (repeatable)", func(s string) error {
		spec, err := parseLayerSpec(s)
		if err != nil {
			return err
		}
		layers = append(layers, spec)
		return nil
	})
	flag.Parse()

	if *output == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	level := cfg.LogLevel()
	if *verbose {
		level = slog.LevelDebug
	}
	paintmate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	if *width > 0 {
		w = *width
	}
	if *height > 0 {
		h = *height
	}
	e, err := editor.New(
		editor.WithCanvasSize(w, h),
		editor.WithHistoryCapacity(cfg.History.Capacity),
		editor.WithBrush(editor.Brush{Size: cfg.Brush.Size, Color: cfg.BrushColor(), Opacity: cfg.Brush.Opacity}),
		editor.WithJPEGQuality(cfg.Export.JPEGQuality),
	)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	if *input != "" {
		if err := e.OpenFile(*input); err != nil {
			log.Fatalf("Failed to open: %v", err)
		}
	}

	for _, spec := range layers {
		if err := addLayer(e, spec); err != nil {
			log.Fatalf("Failed to add layer %s: %v", spec.path, err)
		}
	}

	if err := applyAdjustments(e, *brightness, *contrast, *hue, *saturation, *blurRadius); err != nil {
		log.Fatalf("Failed to adjust: %v", err)
	}
	if *rotate != 0 {
		angle := *rotate
		if err := e.ApplyTransform(func(pm *paintmate.Pixmap) *paintmate.Pixmap {
			return adjust.Rotate(pm, angle)
		}); err != nil {
			log.Fatalf("Failed to rotate: %v", err)
		}
	}

	if err := e.SaveFile(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	doc := e.Document()
	log.Printf("Saved %s (%dx%d, %d layers)\n", *output, doc.Width(), doc.Height(), doc.LayerCount())
}

// addLayer stacks the image at spec.path as a new top layer, resampling
// it to the canvas size if needed.
func addLayer(e *editor.Editor, spec layerSpec) error {
	src, err := paintmate.LoadDocument(spec.path)
	if err != nil {
		return err
	}
	doc := e.Document()
	pm := src.Flatten()
	if pm.Width() != doc.Width() || pm.Height() != doc.Height() {
		pm = adjust.Resize(pm, doc.Width(), doc.Height())
	}

	name := strings.TrimSuffix(filepath.Base(spec.path), filepath.Ext(spec.path))
	e.AddLayer(name)
	if err := e.ApplyAdjustment(func(*paintmate.Pixmap) *paintmate.Pixmap { return pm }); err != nil {
		return err
	}
	i := e.Document().ActiveIndex()
	e.SetLayerBlendMode(i, spec.mode)
	e.SetLayerOpacity(i, spec.opacity)
	return nil
}

func applyAdjustments(e *editor.Editor, brightness, contrast, hue, saturation, blurRadius float64) error {
	var steps []func(*paintmate.Pixmap) *paintmate.Pixmap
	if brightness != 0 {
		steps = append(steps, func(pm *paintmate.Pixmap) *paintmate.Pixmap { return adjust.Brightness(pm, brightness) })
	}
	if contrast != 0 {
		steps = append(steps, func(pm *paintmate.Pixmap) *paintmate.Pixmap { return adjust.Contrast(pm, contrast) })
	}
	if hue != 0 || saturation != 1 {
		steps = append(steps, func(pm *paintmate.Pixmap) *paintmate.Pixmap { return adjust.HueSaturation(pm, hue, saturation) })
	}
	if blurRadius > 0 {
		steps = append(steps, func(pm *paintmate.Pixmap) *paintmate.Pixmap { return adjust.Blur(pm, blurRadius) })
	}
	for _, step := range steps {
		if err := e.ApplyAdjustment(step); err != nil {
			return err
		}
	}
	return nil
}
