package bitmap

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// DefaultThreshold is the gray level separating ink from background when
// importing raster images.
const DefaultThreshold = 128

// ImportOptions controls how a raster image is turned into a bitmap.
type ImportOptions struct {
	// Threshold is the gray level (0-255) at or above which a pixel counts as
	// background. Zero selects DefaultThreshold.
	Threshold uint8

	// Invert marks light pixels as set instead of dark ones.
	Invert bool

	// Edges runs a Sobel filter before thresholding so that outlines, rather
	// than filled areas, become set pixels. Strong edges come out light, so
	// with Edges set light pixels are set unless Invert is also given.
	Edges bool
}

// FromImage converts a raster image into a bitmap.
//
// The image is converted to grayscale, optionally edge filtered, and
// thresholded; by default dark pixels (gray level below the threshold)
// become 1. Images larger than MaxSize in either direction are first scaled
// down to fit, preserving aspect ratio.
func FromImage(img image.Image, opts ImportOptions) (*Bitmap, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("cannot import empty image")
	}

	var src image.Image = img
	if bounds.Dx() > MaxSize || bounds.Dy() > MaxSize {
		src = imaging.Fit(img, MaxSize, MaxSize, imaging.Box)
	}

	level := opts.Threshold
	if level == 0 {
		level = DefaultThreshold
	}
	var gray image.Image = imaging.Grayscale(src)
	if opts.Edges {
		gray = effect.Sobel(gray)
	}
	bw := segment.Threshold(gray, level)
	setLight := opts.Invert != opts.Edges

	b := bw.Bounds()
	height, width := b.Dy(), b.Dx()
	pix := make([]uint8, height*width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			light := bw.GrayAt(b.Min.X+x, b.Min.Y+y).Y != 0
			if light == setLight {
				pix[y*width+x] = 1
			}
		}
	}

	return New(height, width, pix), nil
}

// FromImageFile decodes a PNG, JPEG, GIF, BMP or TIFF file and converts it
// with FromImage.
func FromImageFile(path string, opts ImportOptions) (*Bitmap, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return FromImage(img, opts)
}
