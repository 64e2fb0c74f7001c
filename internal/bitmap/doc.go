// Package bitmap loads, stores and converts binary bitmaps.
//
// A Bitmap is a rectangular grid of 0/1 pixels read from a small text format
// or converted from a raster image. The shape searches in package detection
// operate on bitmaps produced here; this package does all of the I/O so the
// searches never have to.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based (row, column) pairs:
//   - Row: vertical position (0 = top row)
//   - Col: horizontal position (0 = leftmost column)
//
// Note that this is the reverse of the (x, y) order used by the image
// package. Conversions in this package take care of the swap.
//
// # Text Format
//
//	<height> <width>
//	<width values of 0 or 1> ... repeated <height> times
//
// Both dimensions must lie in [1, MaxSize]. Values may be split across lines
// arbitrarily. Exactly height*width values must follow the header.
//
// # Error Handling
//
// Parse and Load return typed errors so callers can report the category of a
// malformed file:
//   - *FormatError: missing header, non-integer token or trailing data
//   - *RangeError: dimension outside [1, MaxSize] or pixel other than 0/1
//   - *SizeMismatchError: too few or too many pixel values
//
// I/O failures are wrapped with fmt.Errorf and can be unwrapped with errors.Is.
//
// # Thread Safety
//
// The BitmapCache type is safe for concurrent use. Bitmaps are never mutated
// after construction, so any number of goroutines may read one concurrently.
package bitmap
