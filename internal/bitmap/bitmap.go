package bitmap

import "strconv"

// MaxSize is the largest accepted height or width of a bitmap.
const MaxSize = 1000

// Bitmap is a rectangular grid of pixel values stored row-major in a single
// contiguous buffer.
//
// A Bitmap produced by Load or Parse only ever holds 0 and 1. Bitmaps built
// with New keep whatever values the caller supplies, which is why Valid
// exists. A Bitmap must not be mutated once it has been handed to a scanner;
// none of the methods here mutate it.
type Bitmap struct {
	height int
	width  int
	pix    []uint8
}

// New creates a bitmap of the given dimensions backed by pix.
//
// pix is taken over by the bitmap and indexed as row*width+col. If pix is
// nil a zeroed buffer is allocated. New panics if len(pix) does not match
// height*width, which is a programming error rather than an input error.
func New(height, width int, pix []uint8) *Bitmap {
	if height < 0 || width < 0 {
		panic("bitmap: negative bitmap dimensions")
	}
	if pix == nil {
		pix = make([]uint8, height*width)
	}
	if len(pix) != height*width {
		panic("bitmap: pixel buffer does not match bitmap dimensions")
	}
	return &Bitmap{height: height, width: width, pix: pix}
}

// FromRows builds a bitmap from a slice of equally sized rows.
// It is mostly useful in tests and for small literal bitmaps.
func FromRows(rows [][]uint8) *Bitmap {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	pix := make([]uint8, 0, height*width)
	for i, row := range rows {
		if len(row) != width {
			panic("bitmap: ragged rows passed to FromRows at row " + strconv.Itoa(i))
		}
		pix = append(pix, row...)
	}
	return New(height, width, pix)
}

// Height returns the number of rows.
func (b *Bitmap) Height() int { return b.height }

// Width returns the number of columns.
func (b *Bitmap) Width() int { return b.width }

// Value returns the raw value stored at (row, col).
func (b *Bitmap) Value(row, col int) int {
	return int(b.pix[row*b.width+col])
}

// At reports whether the pixel at (row, col) is set.
func (b *Bitmap) At(row, col int) bool {
	return b.pix[row*b.width+col] == 1
}

// Valid reports whether the bitmap has positive dimensions and only 0/1 values.
func (b *Bitmap) Valid() bool {
	if b.height <= 0 || b.width <= 0 {
		return false
	}
	for _, v := range b.pix {
		if v != 0 && v != 1 {
			return false
		}
	}
	return true
}

// Ones returns the number of set pixels.
func (b *Bitmap) Ones() int {
	n := 0
	for _, v := range b.pix {
		if v == 1 {
			n++
		}
	}
	return n
}
