// Package detection provides shape searches over binary bitmaps.
//
// Three independent searches are available:
//
//   - FindHLine: longest horizontal run of set pixels
//   - FindVLine: longest vertical run of set pixels
//   - FindSquare: largest square whose four border lines are set
//
// plus IsValid, which checks that a grid has positive dimensions and holds
// only 0 and 1.
//
// # Coordinate System
//
// Results are reported as (row, column) pairs:
//   - Origin (0, 0) at the top-left pixel
//   - Row increases downward
//   - Col increases rightward
//   - Both corners of a Segment are inclusive
//
// # Tie Breaking
//
// Each search has a fixed rule for equal-sized candidates, and callers rely
// on the exact coordinates:
//   - FindHLine keeps the first run found scanning row by row
//   - FindVLine keeps the run with the smallest start row, then the leftmost
//   - FindSquare keeps the first anchor in row-major order
//
// # Not Found
//
// Every search returns (Segment, bool). A false result means the grid has no
// set pixel; it is an ordinary outcome, not an error. The searches themselves
// never fail.
//
// # Thread Safety
//
// The searches are pure functions of their Grid and keep no state between
// calls. Concurrent searches over the same grid are safe as long as nothing
// mutates it.
package detection
