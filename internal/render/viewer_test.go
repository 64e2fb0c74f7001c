package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/figsearch/internal/bitmap"
	"github.com/ironsheep/figsearch/internal/detection"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to initialize screen: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// statusLine reads the last screen row as a string.
func statusLine(screen tcell.Screen) string {
	width, height := screen.Size()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, height-1)
		sb.WriteRune(mainc)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestViewer_Draw(t *testing.T) {
	screen := newTestScreen(t, 20, 5)
	b := bitmap.FromRows([][]uint8{
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
	})
	r, err := detection.Find(b, detection.ShapeHLine)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	v := NewViewer(screen, b, &r, Options{})
	v.Draw()

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != viewOn {
		t.Errorf("cell (0,0): got %c, want %c", mainc, viewOn)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("cell (0,0) not drawn in highlight colour, got %v", fg)
	}

	mainc, _, style, _ = screen.GetContent(3, 0)
	if mainc != viewOff {
		t.Errorf("cell (0,3): got %c, want %c", mainc, viewOff)
	}
	if _, _, attr := style.Decompose(); attr&tcell.AttrDim == 0 {
		t.Error("unset cell not dimmed")
	}

	mainc, _, style, _ = screen.GetContent(0, 2)
	if mainc != viewOn {
		t.Errorf("cell (2,0): got %c, want %c", mainc, viewOn)
	}
	if fg, _, _ := style.Decompose(); fg == tcell.NewRGBColor(255, 0, 0) {
		t.Error("cell outside the line drawn in highlight colour")
	}

	status := statusLine(screen)
	if !strings.HasPrefix(status, "3x4  hline 0 0 0 2") {
		t.Errorf("status line %q does not describe the result", status)
	}
	_, _, style, _ = screen.GetContent(0, 4)
	if _, _, attr := style.Decompose(); attr&tcell.AttrReverse == 0 {
		t.Error("status line not drawn in reverse video")
	}
}

func TestViewer_NotFound(t *testing.T) {
	screen := newTestScreen(t, 40, 4)
	b := bitmap.New(2, 2, nil)
	r, _ := detection.Find(b, detection.ShapeSquare)

	NewViewer(screen, b, &r, Options{}).Draw()

	if status := statusLine(screen); !strings.Contains(status, "square not found") {
		t.Errorf("status line %q does not report the missing square", status)
	}
}

func TestViewer_Scroll(t *testing.T) {
	screen := newTestScreen(t, 4, 3)
	pix := make([]uint8, 10*10)
	pix[5*10+6] = 1
	b := bitmap.New(10, 10, pix)

	v := NewViewer(screen, b, nil, Options{})

	keys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
	}
	for _, ev := range keys {
		if !v.HandleEvent(ev) {
			t.Fatalf("viewer quit on %v", ev.Name())
		}
	}
	for i := 0; i < 3; i++ {
		v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	}
	if v.top != 5 || v.left != 2 {
		t.Fatalf("viewport at [%d,%d], want [5,2]", v.top, v.left)
	}

	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone))
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone))
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone))
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone))
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone))
	v.Draw()

	// Viewport is clamped so the last column stays on screen.
	if v.left != 6 {
		t.Errorf("left = %d, want 6", v.left)
	}
	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != viewOn {
		t.Errorf("pixel (5,6) not shown at top-left after scrolling, got %c", mainc)
	}

	for i := 0; i < 20; i++ {
		v.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
		v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	}
	if v.top != 0 || v.left != 0 {
		t.Errorf("viewport at [%d,%d] after scrolling back, want [0,0]", v.top, v.left)
	}
}

func TestViewer_HandleEvent_Quit(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	v := NewViewer(screen, bitmap.New(1, 1, nil), nil, Options{})

	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}
	for _, tt := range tests {
		if v.HandleEvent(tt.ev) {
			t.Errorf("%s did not quit the viewer", tt.name)
		}
	}
}

func TestViewer_Run(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	v := NewViewer(screen, bitmap.New(2, 2, nil), nil, Options{})

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		v.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}
