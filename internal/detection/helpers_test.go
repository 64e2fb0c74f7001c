package detection

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/ironsheep/figsearch/internal/bitmap"
)

// grid builds a bitmap from a picture where '1' or '#' marks a set pixel and
// any other character an unset one. Rows are separated by newlines; blank
// lines and surrounding spaces are ignored.
func grid(t *testing.T, picture string) *bitmap.Bitmap {
	t.Helper()
	var rows [][]uint8
	for _, line := range strings.Split(picture, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.ReplaceAll(line, " ", "")
		row := make([]uint8, len(line))
		for i, ch := range line {
			if ch == '1' || ch == '#' {
				row[i] = 1
			}
		}
		rows = append(rows, row)
	}
	if len(rows) > 0 {
		for i, row := range rows {
			if len(row) != len(rows[0]) {
				t.Fatalf("picture row %d has %d pixels, want %d", i, len(row), len(rows[0]))
			}
		}
	}
	return bitmap.FromRows(rows)
}

// randomGrid returns a height x width bitmap in which each pixel is set with
// the given probability.
func randomGrid(rng *rand.Rand, height, width int, density float64) *bitmap.Bitmap {
	pix := make([]uint8, height*width)
	for i := range pix {
		if rng.Float64() < density {
			pix[i] = 1
		}
	}
	return bitmap.New(height, width, pix)
}

// seg is shorthand for a segment literal in "r1 c1 r2 c2" order.
func seg(r1, c1, r2, c2 int) Segment {
	return Segment{Start: Point{Row: r1, Col: c1}, End: Point{Row: r2, Col: c2}}
}
