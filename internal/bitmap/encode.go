package bitmap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// WriteTo writes the bitmap in canonical text form: the header line
// "<height> <width>" followed by one line per row with values separated by
// single spaces. Parse accepts this output unchanged.
func (b *Bitmap) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64

	k, err := fmt.Fprintf(bw, "%d %d\n", b.height, b.width)
	n += int64(k)
	if err != nil {
		return n, err
	}

	line := make([]byte, 0, 2*b.width)
	for row := 0; row < b.height; row++ {
		line = line[:0]
		for col := 0; col < b.width; col++ {
			if col > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendUint(line, uint64(b.pix[row*b.width+col]), 10)
		}
		line = append(line, '\n')
		k, err := bw.Write(line)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}

// String returns the canonical text form of the bitmap.
func (b *Bitmap) String() string {
	var buf bytes.Buffer
	b.WriteTo(&buf)
	return buf.String()
}
