package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/figsearch/internal/bitmap"
	"github.com/ironsheep/figsearch/internal/detection"
)

// Default colours and limits for PNG output.
const (
	DefaultScale     = 8
	MaxScale         = 64
	MaxOutputSide    = 4096
	DefaultOn        = "#000000"
	DefaultOff       = "#FFFFFF"
	DefaultHighlight = "#FF0000"

	// interiorTint is how far the inside of a highlighted square is blended
	// toward the highlight colour.
	interiorTint = 0.25
)

// Options controls PNG rendering.
type Options struct {
	// Scale is the size in output pixels of one bitmap cell. Zero selects
	// DefaultScale. The scale is reduced as needed to stay within MaxScale and
	// MaxOutputSide, but never below 1.
	Scale int

	// On, Off and Highlight are "#RRGGBB" colours for set pixels, unset pixels
	// and pixels on the located segment. Empty or invalid values fall back to
	// the defaults.
	On        string
	Off       string
	Highlight string

	// Grid draws a one pixel line between cells when Scale is at least 4.
	Grid bool
}

func (o Options) scaleFor(b *bitmap.Bitmap) int {
	scale := o.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	side := max(b.Width(), b.Height())
	if side*scale > MaxOutputSide {
		scale = max(1, MaxOutputSide/side)
	}
	return scale
}

// PNGResult contains a rendered bitmap encoded as base64 PNG.
type PNGResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Scale       int    `json:"scale"`
}

// Image renders a bitmap as a raster image.
//
// Each cell becomes a Scale×Scale block. When seg is non-nil, cells on the
// segment's outline are drawn in the highlight colour and the inside of a
// square is tinted toward it.
func Image(b *bitmap.Bitmap, seg *detection.Segment, opts Options) image.Image {
	scale := opts.scaleFor(b)

	on := parseHexColor(opts.On, DefaultOn)
	off := parseHexColor(opts.Off, DefaultOff)
	hi := parseHexColor(opts.Highlight, DefaultHighlight)

	width, height := b.Width(), b.Height()
	cells := image.NewNRGBA(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := off
			if b.At(row, col) {
				c = on
			}
			if seg != nil {
				switch {
				case seg.OnBorder(row, col):
					c = hi
				case seg.Contains(row, col):
					c = c.BlendLab(hi, interiorTint)
				}
			}
			cells.SetNRGBA(col, row, toNRGBA(c))
		}
	}

	if scale == 1 {
		return cells
	}

	result := imaging.Resize(cells, width*scale, height*scale, imaging.NearestNeighbor)

	if opts.Grid && scale >= 4 {
		gridColor := toNRGBA(off.BlendLab(on, 0.25))
		bounds := result.Bounds()

		// Draw vertical lines
		for x := scale; x < bounds.Dx(); x += scale {
			for y := 0; y < bounds.Dy(); y++ {
				result.SetNRGBA(x, y, gridColor)
			}
		}

		// Draw horizontal lines
		for y := scale; y < bounds.Dy(); y += scale {
			for x := 0; x < bounds.Dx(); x++ {
				result.SetNRGBA(x, y, gridColor)
			}
		}
	}

	return result
}

// PNG renders a bitmap and writes it to w as PNG.
func PNG(w io.Writer, b *bitmap.Bitmap, seg *detection.Segment, opts Options) error {
	if err := png.Encode(w, Image(b, seg, opts)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// PNGBase64 renders a bitmap and returns it as base64 PNG.
func PNGBase64(b *bitmap.Bitmap, seg *detection.Segment, opts Options) (*PNGResult, error) {
	var buf bytes.Buffer
	if err := PNG(&buf, b, seg, opts); err != nil {
		return nil, err
	}

	scale := opts.scaleFor(b)
	return &PNGResult{
		Width:       b.Width() * scale,
		Height:      b.Height() * scale,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Scale:       scale,
	}, nil
}

// parseHexColor parses a colour like "#FF0000" or "#F00", falling back to def
// when hex is empty or malformed.
func parseHexColor(hex, def string) colorful.Color {
	if hex != "" {
		if hex[0] != '#' {
			hex = "#" + hex
		}
		if c, err := colorful.Hex(hex); err == nil {
			return c
		}
	}
	c, _ := colorful.Hex(def)
	return c
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
