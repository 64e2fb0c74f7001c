// Package render draws bitmaps and search results for people to look at.
//
// Three outputs are provided:
//   - Text: one character per pixel, for terminals and logs
//   - Image, PNG and PNGBase64: scaled raster output with optional cell grid
//   - Viewer: an interactive, scrollable terminal view built on tcell
//
// All of them take an optional *detection.Segment. Pixels on the segment's
// outline are highlighted; for squares the interior is left as is in Text and
// Viewer and lightly tinted in raster output.
//
// Colours are given as "#RRGGBB" strings and parsed with go-colorful. Invalid
// colours fall back to the defaults rather than failing the render.
package render
