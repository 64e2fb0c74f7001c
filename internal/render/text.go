package render

import (
	"bufio"
	"io"

	"github.com/ironsheep/figsearch/internal/bitmap"
	"github.com/ironsheep/figsearch/internal/detection"
)

// Characters used by Text.
const (
	TextOn        = '#'
	TextOff       = '.'
	TextHighlight = '@'
)

// Text writes the bitmap as one line of characters per row: TextOn for set
// pixels, TextOff for unset ones and TextHighlight for pixels on the outline
// of seg. seg may be nil.
func Text(w io.Writer, b *bitmap.Bitmap, seg *detection.Segment) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, b.Width()+1)
	for row := 0; row < b.Height(); row++ {
		line = line[:0]
		for col := 0; col < b.Width(); col++ {
			switch {
			case seg != nil && seg.OnBorder(row, col):
				line = append(line, TextHighlight)
			case b.At(row, col):
				line = append(line, TextOn)
			default:
				line = append(line, TextOff)
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
