package detection

import "fmt"

// Shape names one of the searches.
type Shape string

const (
	ShapeHLine  Shape = "hline"
	ShapeVLine  Shape = "vline"
	ShapeSquare Shape = "square"
)

// Shapes lists every search in the order they are usually reported.
var Shapes = []Shape{ShapeHLine, ShapeVLine, ShapeSquare}

// ParseShape converts a shape name into a Shape.
func ParseShape(name string) (Shape, error) {
	switch s := Shape(name); s {
	case ShapeHLine, ShapeVLine, ShapeSquare:
		return s, nil
	}
	return "", fmt.Errorf("unknown shape: %s", name)
}

// Result is a search outcome in a form suitable for JSON output.
type Result struct {
	Shape  Shape `json:"shape"`
	Found  bool  `json:"found"`
	Start  Point `json:"start"`
	End    Point `json:"end"`
	Length int   `json:"length"`
}

// Segment returns the located segment, or false when nothing was found.
func (r Result) Segment() (Segment, bool) {
	return Segment{Start: r.Start, End: r.End}, r.Found
}

// Find runs the search selected by shape.
func Find(g Grid, shape Shape) (Result, error) {
	var (
		seg   Segment
		found bool
	)
	switch shape {
	case ShapeHLine:
		seg, found = FindHLine(g)
	case ShapeVLine:
		seg, found = FindVLine(g)
	case ShapeSquare:
		seg, found = FindSquare(g)
	default:
		return Result{}, fmt.Errorf("unknown shape: %s", shape)
	}

	r := Result{Shape: shape, Found: found}
	if found {
		r.Start, r.End = seg.Start, seg.End
		r.Length = seg.Length()
	}
	return r, nil
}

// FindAll runs every search in Shapes order.
func FindAll(g Grid) []Result {
	results := make([]Result, 0, len(Shapes))
	for _, s := range Shapes {
		r, _ := Find(g, s)
		results = append(results, r)
	}
	return results
}
