package bitmap

import "fmt"

// FormatError reports a token that is not an integer, a missing header or
// trailing content after the pixel data.
type FormatError struct {
	Line   int    // 1-based line of the offending token, 0 if unknown
	Token  string // offending token, empty at end of input
	Reason string
}

func (e *FormatError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("bitmap format error on line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("bitmap format error on line %d: %s: %q", e.Line, e.Reason, e.Token)
}

// RangeError reports a dimension or pixel value outside its allowed range.
type RangeError struct {
	What  string // "height", "width" or "pixel"
	Value int
	Min   int
	Max   int
	Line  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bitmap %s %d on line %d outside range [%d,%d]", e.What, e.Value, e.Line, e.Min, e.Max)
}

// SizeMismatchError reports a pixel count different from height*width.
// Got is a lower bound when the data is too long: reading stops at the first
// extra value.
type SizeMismatchError struct {
	Want int
	Got  int
}

func (e *SizeMismatchError) Error() string {
	if e.Got > e.Want {
		return fmt.Sprintf("bitmap has more than %d pixel values", e.Want)
	}
	return fmt.Sprintf("bitmap has %d pixel values, want %d", e.Got, e.Want)
}
