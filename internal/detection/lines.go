package detection

// FindHLine finds the longest horizontal run of set pixels.
//
// Rows are scanned top to bottom and each row left to right. A run ends at
// the first unset pixel or at the right edge. A run replaces the current best
// only when it is strictly longer, so among runs of equal length the first
// one encountered wins.
//
// The returned segment runs from (row, first column) to (row, last column).
// The boolean is false when the grid has no set pixel at all.
func FindHLine(g Grid) (Segment, bool) {
	height, width := g.Height(), g.Width()

	var best Segment
	bestLen := 0

	for row := 0; row < height; row++ {
		length, start := 0, 0
		for col := 0; col <= width; col++ {
			if col < width && g.At(row, col) {
				if length == 0 {
					start = col
				}
				length++
				continue
			}
			// col == width finalises a run touching the right edge
			if length > bestLen {
				bestLen = length
				best = Segment{
					Start: Point{Row: row, Col: start},
					End:   Point{Row: row, Col: col - 1},
				}
			}
			length = 0
		}
	}

	return best, bestLen > 0
}

// FindVLine finds the longest vertical run of set pixels.
//
// Columns are scanned left to right and each column top to bottom. A run ends
// at the first unset pixel or at the bottom edge. A strictly longer run always
// replaces the current best. A run of equal length replaces it only when it
// starts on a smaller row, so ties go to the run starting highest in the
// bitmap and, among those, to the leftmost column. This differs from
// FindHLine, where ties always keep the first run found.
//
// The returned segment runs from (first row, col) to (last row, col).
// The boolean is false when the grid has no set pixel at all.
func FindVLine(g Grid) (Segment, bool) {
	height, width := g.Height(), g.Width()

	var best Segment
	bestLen := 0

	for col := 0; col < width; col++ {
		length, start := 0, 0
		for row := 0; row <= height; row++ {
			if row < height && g.At(row, col) {
				if length == 0 {
					start = row
				}
				length++
				continue
			}
			if length > 0 && (length > bestLen || (length == bestLen && start < best.Start.Row)) {
				bestLen = length
				best = Segment{
					Start: Point{Row: start, Col: col},
					End:   Point{Row: row - 1, Col: col},
				}
			}
			length = 0
		}
	}

	return best, bestLen > 0
}
