// Package adjust provides stateless pixel-buffer transforms for paintmate
// documents: color adjustments, convolution filters and geometric
// operations.
//
// Every function takes a *paintmate.Pixmap and returns a new one; the input
// is never modified. Results are applied to a document with
// Document.ReplaceActivePixels (color adjustments and filters) or
// Document.Transform (geometric operations).
//
// Color adjustments work on the color channels only and keep each pixel's
// alpha unchanged. Filters and resampling operate on premultiplied pixels
// so that transparent areas do not bleed color into their neighbours.
package adjust
