package detection

// FindSquare finds the largest axis-aligned square whose border is made
// entirely of set pixels. Pixels strictly inside the border are not examined,
// and a single set pixel counts as a square of side 1.
//
// # Algorithm
//
//  1. Anchors (candidate top-left corners) are visited in row-major order.
//  2. For each anchor, side lengths are grown while the square still fits in
//     the grid. Growth starts one past the side of the best square found so
//     far: once a square of side n is known, only sides > n can replace it.
//  3. A candidate is accepted when its left and right columns and its top
//     and bottom rows are all set. An accepted candidate becomes the new best
//     and growth continues from there at the same anchor.
//
// The result is therefore the largest bordered square in the grid, and among
// squares of that size the one whose anchor comes first in row-major order.
//
// # Performance
//
// Worst case is O(h·w·min(h,w)²) border checks. The starting-size rule and
// skipping anchors whose corner pixel is unset keep typical inputs far below
// that; for the maximum 1000×1000 grid the search stays bounded and
// deterministic.
//
// The returned segment holds the top-left and bottom-right corners. The
// boolean is false when the grid has no set pixel at all.
func FindSquare(g Grid) (Segment, bool) {
	height, width := g.Height(), g.Width()

	var best Segment
	side := 0

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if !g.At(row, col) {
				continue
			}
			// span is the offset from the anchor to the far corner
			for span := side; row+span < height && col+span < width; span++ {
				if !borderSet(g, row, col, span) {
					continue
				}
				best = Segment{
					Start: Point{Row: row, Col: col},
					End:   Point{Row: row + span, Col: col + span},
				}
				side = span + 1
			}
		}
	}

	return best, side > 0
}

// borderSet reports whether every pixel on the border of the square anchored
// at (row, col) with the given span is set. The vertical sides are checked
// top to bottom first, then the horizontal sides left to right.
func borderSet(g Grid, row, col, span int) bool {
	for r := row; r <= row+span; r++ {
		if !g.At(r, col) || !g.At(r, col+span) {
			return false
		}
	}
	for c := col; c <= col+span; c++ {
		if !g.At(row, c) || !g.At(row+span, c) {
			return false
		}
	}
	return true
}
