package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/figsearch/internal/bitmap"
	"github.com/ironsheep/figsearch/internal/detection"
)

// Runes drawn by the terminal viewer.
const (
	viewOn  = '█'
	viewOff = '·'
)

// Viewer shows a bitmap on a terminal screen with an optional search result
// highlighted. The bitmap scrolls when it is larger than the screen; the last
// screen line is a status bar.
//
// The caller owns the screen: it must be initialised before Run and finalised
// afterwards.
type Viewer struct {
	screen tcell.Screen
	bitmap *bitmap.Bitmap
	result *detection.Result

	top, left int

	onStyle     tcell.Style
	offStyle    tcell.Style
	hiStyle     tcell.Style
	statusStyle tcell.Style
}

// NewViewer creates a viewer. result may be nil to show the bitmap alone.
// Only the Highlight colour of opts is used.
func NewViewer(screen tcell.Screen, b *bitmap.Bitmap, result *detection.Result, opts Options) *Viewer {
	r, g, bl := parseHexColor(opts.Highlight, DefaultHighlight).Clamped().RGB255()
	return &Viewer{
		screen:      screen,
		bitmap:      b,
		result:      result,
		onStyle:     tcell.StyleDefault,
		offStyle:    tcell.StyleDefault.Dim(true),
		hiStyle:     tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(bl))),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// segment returns the highlighted segment, if any.
func (v *Viewer) segment() *detection.Segment {
	if v.result == nil || !v.result.Found {
		return nil
	}
	seg, _ := v.result.Segment()
	return &seg
}

// Draw renders the visible part of the bitmap and the status bar.
func (v *Viewer) Draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	rows := height - 1
	seg := v.segment()

	for y := 0; y < rows; y++ {
		row := v.top + y
		if row >= v.bitmap.Height() {
			break
		}
		for x := 0; x < width; x++ {
			col := v.left + x
			if col >= v.bitmap.Width() {
				break
			}
			ch, style := viewOff, v.offStyle
			if v.bitmap.At(row, col) {
				ch, style = viewOn, v.onStyle
			}
			if seg != nil && seg.OnBorder(row, col) {
				style = v.hiStyle
			}
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}

	if height > 0 {
		status := v.status()
		for x := 0; x < width; x++ {
			ch := ' '
			if x < len(status) {
				ch = rune(status[x])
			}
			v.screen.SetContent(x, height-1, ch, nil, v.statusStyle)
		}
	}

	v.screen.Show()
}

func (v *Viewer) status() string {
	s := fmt.Sprintf("%dx%d", v.bitmap.Height(), v.bitmap.Width())
	if v.result != nil {
		if v.result.Found {
			s += fmt.Sprintf("  %s %d %d %d %d", v.result.Shape,
				v.result.Start.Row, v.result.Start.Col, v.result.End.Row, v.result.End.Col)
		} else {
			s += fmt.Sprintf("  %s not found", v.result.Shape)
		}
	}
	return s + fmt.Sprintf("  [%d,%d]  hjkl/arrows scroll, q quit", v.top, v.left)
}

// HandleEvent applies one event. It returns false when the viewer should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.scroll(-1, 0)
		case tcell.KeyDown:
			v.scroll(1, 0)
		case tcell.KeyLeft:
			v.scroll(0, -1)
		case tcell.KeyRight:
			v.scroll(0, 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				v.scroll(-1, 0)
			case 'j':
				v.scroll(1, 0)
			case 'h':
				v.scroll(0, -1)
			case 'l':
				v.scroll(0, 1)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.scroll(0, 0)
	}
	return true
}

// scroll moves the viewport, keeping it within the bitmap.
func (v *Viewer) scroll(dRow, dCol int) {
	width, height := v.screen.Size()
	maxTop := max(0, v.bitmap.Height()-(height-1))
	maxLeft := max(0, v.bitmap.Width()-width)
	v.top = min(max(v.top+dRow, 0), maxTop)
	v.left = min(max(v.left+dCol, 0), maxLeft)
}

// Run draws the viewer and processes events until the user quits or the
// screen is finalised.
func (v *Viewer) Run() {
	for {
		v.Draw()
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if !v.HandleEvent(ev) {
			return
		}
	}
}
