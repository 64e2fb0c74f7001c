package bitmap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
)

// maxLineBytes bounds a single input line. A full-size bitmap written on one
// line needs roughly 2*MaxSize*MaxSize bytes.
const maxLineBytes = 4 * MaxSize * MaxSize

// BitmapCache provides thread-safe caching of loaded bitmaps to avoid redundant
// disk reads and parsing.
//
// Bitmaps are keyed by the exact path string given to Load. Cached bitmaps are
// shared between callers and must be treated as read-only, which every
// operation in this module already does.
//
// # Memory Management
//
// Cached bitmaps remain in memory until explicitly removed via Evict() or
// Clear(). A full-size bitmap costs about one megabyte.
type BitmapCache struct {
	mu      sync.RWMutex
	bitmaps map[string]*Bitmap
}

// NewBitmapCache creates and initializes a new empty bitmap cache.
func NewBitmapCache() *BitmapCache {
	return &BitmapCache{
		bitmaps: make(map[string]*Bitmap),
	}
}

// Load retrieves a bitmap from the cache or loads it from disk if not cached.
//
// Files that fail to parse are not cached, so a corrected file can be loaded
// again under the same path.
func (c *BitmapCache) Load(path string) (*Bitmap, error) {
	c.mu.RLock()
	if b, ok := c.bitmaps[path]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	b, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.bitmaps[path] = b
	c.mu.Unlock()

	return b, nil
}

// Clear removes all bitmaps from the cache.
func (c *BitmapCache) Clear() {
	c.mu.Lock()
	c.bitmaps = make(map[string]*Bitmap)
	c.mu.Unlock()
}

// Evict removes a specific bitmap from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *BitmapCache) Evict(path string) {
	c.mu.Lock()
	delete(c.bitmaps, path)
	c.mu.Unlock()
}

// Load reads and parses a bitmap file.
//
// Open failures are returned wrapped; format problems are returned as
// *FormatError, *RangeError or *SizeMismatchError so callers can tell them
// apart with errors.As.
func Load(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bitmap: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a bitmap in text form:
//
//	<height> <width>
//	<width values of 0 or 1> ... repeated <height> times
//
// Values are separated by any whitespace; line breaks carry no meaning. Both
// dimensions must lie in [1, MaxSize], exactly height*width pixel values must
// follow and nothing may come after them.
func Parse(r io.Reader) (*Bitmap, error) {
	tz := newTokenizer(r)

	height, err := tz.dimension("height")
	if err != nil {
		return nil, err
	}
	width, err := tz.dimension("width")
	if err != nil {
		return nil, err
	}

	want := height * width
	pix := make([]uint8, want)
	for i := 0; i < want; i++ {
		tok, line, ok := tz.next()
		if !ok {
			if err := tz.err(); err != nil {
				return nil, err
			}
			return nil, &SizeMismatchError{Want: want, Got: i}
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &FormatError{Line: line, Token: tok, Reason: "pixel is not an integer"}
		}
		if v != 0 && v != 1 {
			return nil, &RangeError{What: "pixel", Value: v, Min: 0, Max: 1, Line: line}
		}
		pix[i] = uint8(v)
	}

	if tok, line, ok := tz.next(); ok {
		if _, err := strconv.Atoi(tok); err == nil {
			return nil, &SizeMismatchError{Want: want, Got: want + 1}
		}
		return nil, &FormatError{Line: line, Token: tok, Reason: "unexpected data after pixels"}
	}
	if err := tz.err(); err != nil {
		return nil, err
	}

	return New(height, width, pix), nil
}

// tokenizer splits its input into whitespace separated fields while keeping
// track of line numbers for error messages.
type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
	line   int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, int, bool) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			return "", t.line, false
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]
	return tok, t.line, true
}

func (t *tokenizer) err() error {
	if err := t.sc.Err(); err != nil {
		return fmt.Errorf("failed to read bitmap: %w", err)
	}
	return nil
}

func (t *tokenizer) dimension(what string) (int, error) {
	tok, line, ok := t.next()
	if !ok {
		if err := t.err(); err != nil {
			return 0, err
		}
		return 0, &FormatError{Line: line, Reason: "missing " + what}
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &FormatError{Line: line, Token: tok, Reason: what + " is not an integer"}
	}
	if v < 1 || v > MaxSize {
		return 0, &RangeError{What: what, Value: v, Min: 1, Max: MaxSize, Line: line}
	}
	return v, nil
}

// BitmapInfo contains summary information about a bitmap.
type BitmapInfo struct {
	// Height is the number of rows.
	Height int `json:"height"`

	// Width is the number of columns.
	Width int `json:"width"`

	// Ones is the number of set pixels.
	Ones int `json:"ones"`

	// Density is Ones divided by the pixel count, rounded to three decimals.
	Density float64 `json:"density"`

	// Valid reports whether the bitmap passes Bitmap.Valid.
	Valid bool `json:"valid"`
}

// Describe returns summary information about a bitmap.
func Describe(b *Bitmap) *BitmapInfo {
	info := &BitmapInfo{
		Height: b.Height(),
		Width:  b.Width(),
		Ones:   b.Ones(),
		Valid:  b.Valid(),
	}
	if total := b.Height() * b.Width(); total > 0 {
		info.Density = math.Round(float64(info.Ones)/float64(total)*1000) / 1000
	}
	return info
}
