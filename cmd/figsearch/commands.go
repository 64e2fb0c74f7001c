package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/figsearch/internal/bitmap"
	"github.com/ironsheep/figsearch/internal/detection"
	"github.com/ironsheep/figsearch/internal/render"
)

// newScreen creates the terminal screen for the view command.
var newScreen = tcell.NewScreen

// TestCmd validates a bitmap file.
type TestCmd struct {
	File string `arg:"" help:"Bitmap file." type:"path"`
}

func (c *TestCmd) Run(rc *runContext) error {
	b, err := bitmap.Load(c.File)
	if err != nil {
		return err
	}
	if !detection.IsValid(b) {
		return fmt.Errorf("bitmap %s failed validation", c.File)
	}
	fmt.Fprintln(rc.stdout, "Valid")
	return nil
}

// HLineCmd finds the longest horizontal line.
type HLineCmd struct {
	File string `arg:"" help:"Bitmap file." type:"path"`
}

func (c *HLineCmd) Run(rc *runContext) error {
	return runSearch(rc, c.File, detection.ShapeHLine)
}

// VLineCmd finds the longest vertical line.
type VLineCmd struct {
	File string `arg:"" help:"Bitmap file." type:"path"`
}

func (c *VLineCmd) Run(rc *runContext) error {
	return runSearch(rc, c.File, detection.ShapeVLine)
}

// SquareCmd finds the largest bordered square.
type SquareCmd struct {
	File string `arg:"" help:"Bitmap file." type:"path"`
}

func (c *SquareCmd) Run(rc *runContext) error {
	return runSearch(rc, c.File, detection.ShapeSquare)
}

// runSearch loads path, runs one search and prints "r1 c1 r2 c2" or
// "Not found".
func runSearch(rc *runContext, path string, shape detection.Shape) error {
	b, err := bitmap.Load(path)
	if err != nil {
		return err
	}

	r, err := detection.Find(b, shape)
	if err != nil {
		return err
	}
	if rc.debug {
		log.Printf("%s on %dx%d bitmap: found=%v", shape, b.Height(), b.Width(), r.Found)
	}

	seg, ok := r.Segment()
	if !ok {
		fmt.Fprintln(rc.stdout, "Not found")
		return nil
	}
	if rc.display {
		if err := render.Text(rc.stdout, b, &seg); err != nil {
			return fmt.Errorf("failed to display bitmap: %w", err)
		}
	}
	fmt.Fprintf(rc.stdout, "%d %d %d %d\n", seg.Start.Row, seg.Start.Col, seg.End.Row, seg.End.Col)
	return nil
}

// loadWithResult loads path and, unless shape is "none", runs that search.
func loadWithResult(path, shape string) (*bitmap.Bitmap, *detection.Result, error) {
	b, err := bitmap.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if shape == "" || shape == "none" {
		return b, nil, nil
	}

	s, err := detection.ParseShape(shape)
	if err != nil {
		return nil, nil, &ArgumentError{Err: err}
	}
	r, err := detection.Find(b, s)
	if err != nil {
		return nil, nil, err
	}
	return b, &r, nil
}

// RenderCmd writes a PNG rendering of a bitmap.
type RenderCmd struct {
	File      string `arg:"" help:"Bitmap file." type:"path"`
	Output    string `short:"o" required:"" help:"Output PNG path." type:"path"`
	Shape     string `help:"Search whose result is highlighted." enum:"none,hline,vline,square" default:"none"`
	Scale     int    `help:"Output pixels per bitmap cell." default:"8"`
	On        string `help:"Colour of set pixels." default:"#000000"`
	Off       string `help:"Colour of unset pixels." default:"#FFFFFF"`
	Highlight string `help:"Colour of the highlighted shape." default:"#FF0000" env:"FIGSEARCH_HIGHLIGHT"`
	Grid      bool   `help:"Draw lines between cells."`
}

func (c *RenderCmd) Run(rc *runContext) error {
	b, r, err := loadWithResult(c.File, c.Shape)
	if err != nil {
		return err
	}

	var seg *detection.Segment
	if r != nil {
		if sg, ok := r.Segment(); ok {
			seg = &sg
		}
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	opts := render.Options{Scale: c.Scale, On: c.On, Off: c.Off, Highlight: c.Highlight, Grid: c.Grid}
	if err := render.PNG(f, b, seg, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if rc.debug {
		log.Printf("rendered %s to %s", c.File, c.Output)
	}
	return nil
}

// ViewCmd shows a bitmap in the terminal.
type ViewCmd struct {
	File      string `arg:"" help:"Bitmap file." type:"path"`
	Shape     string `help:"Search whose result is highlighted." enum:"none,hline,vline,square" default:"none"`
	Highlight string `help:"Colour of the highlighted shape." default:"#FF0000" env:"FIGSEARCH_HIGHLIGHT"`
}

func (c *ViewCmd) Run(rc *runContext) error {
	b, r, err := loadWithResult(c.File, c.Shape)
	if err != nil {
		return err
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	render.NewViewer(screen, b, r, render.Options{Highlight: c.Highlight}).Run()
	return nil
}

// ImportCmd converts a raster image into a bitmap file.
type ImportCmd struct {
	Image     string `arg:"" help:"PNG, JPEG, GIF, BMP or TIFF image." type:"existingfile"`
	Output    string `short:"o" help:"Output bitmap path (default stdout)." type:"path"`
	Threshold uint8  `help:"Gray level at or above which a pixel is background." default:"128"`
	Invert    bool   `help:"Treat light pixels as set."`
	Edges     bool   `help:"Keep outlines only (Sobel edge filter before thresholding)."`
}

func (c *ImportCmd) Run(rc *runContext) error {
	b, err := bitmap.FromImageFile(c.Image, bitmap.ImportOptions{
		Threshold: c.Threshold,
		Invert:    c.Invert,
		Edges:     c.Edges,
	})
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err := b.WriteTo(rc.stdout)
		return err
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return f.Close()
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(rc *runContext) error {
	fmt.Fprintf(rc.stdout, "figsearch %s\n", Version)
	fmt.Fprintf(rc.stdout, "  Build time: %s\n", BuildTime)
	fmt.Fprintf(rc.stdout, "  Git commit: %s\n", GitCommit)
	return nil
}
