package detection

// Grid is the read-only view of a bitmap used by the searches.
//
// Value returns the raw stored value; At reports whether the pixel is set
// (Value == 1). Implementations must not change while a search is running.
type Grid interface {
	Height() int
	Width() int
	Value(row, col int) int
	At(row, col int) bool
}

// Point is a pixel position. Both fields are 0-based.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Segment is the result of a search: the two end points of a line, or the
// top-left and bottom-right corners of a square. Both corners are inclusive.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Length returns the number of pixels along the longer side of the segment.
func (s Segment) Length() int {
	dr := s.End.Row - s.Start.Row
	dc := s.End.Col - s.Start.Col
	if dr > dc {
		return dr + 1
	}
	return dc + 1
}

// Contains reports whether (row, col) lies inside the segment's bounding box.
func (s Segment) Contains(row, col int) bool {
	return row >= s.Start.Row && row <= s.End.Row && col >= s.Start.Col && col <= s.End.Col
}

// OnBorder reports whether (row, col) lies on the outline of the segment's
// bounding box. For lines this is every pixel of the line; for squares it is
// the border that the square search requires to be set.
func (s Segment) OnBorder(row, col int) bool {
	if !s.Contains(row, col) {
		return false
	}
	return row == s.Start.Row || row == s.End.Row || col == s.Start.Col || col == s.End.Col
}

// IsValid reports whether g has positive dimensions and contains only 0 and 1.
func IsValid(g Grid) bool {
	height, width := g.Height(), g.Width()
	if height <= 0 || width <= 0 {
		return false
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if v := g.Value(row, col); v != 0 && v != 1 {
				return false
			}
		}
	}
	return true
}
