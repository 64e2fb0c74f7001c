package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/figsearch/internal/bitmap"
	"github.com/ironsheep/figsearch/internal/detection"
	"github.com/ironsheep/figsearch/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "bitmap_info", "bitmap_square").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.debug {
		log.Printf("tool call %s: %s", params.Name, params.Arguments)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Bitmap Information
	case "bitmap_info":
		return s.handleBitmapInfo(args)
	case "bitmap_validate":
		return s.handleBitmapValidate(args)

	// Shape Searches
	case "bitmap_hline":
		return s.handleBitmapSearch(args, detection.ShapeHLine)
	case "bitmap_vline":
		return s.handleBitmapSearch(args, detection.ShapeVLine)
	case "bitmap_square":
		return s.handleBitmapSearch(args, detection.ShapeSquare)
	case "bitmap_find_all":
		return s.handleBitmapFindAll(args)

	// Rendering
	case "bitmap_render":
		return s.handleBitmapRender(args)

	// Conversion
	case "bitmap_import":
		return s.handleBitmapImport(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// load returns the bitmap at path, bypassing the cache when reload is set.
func (s *Server) load(path string, reload bool) (*bitmap.Bitmap, error) {
	if path == "" {
		return nil, fmt.Errorf("missing required argument: path")
	}
	if reload {
		s.cache.Evict(path)
	}
	return s.cache.Load(path)
}

// === Bitmap Information Handlers ===

type bitmapPathArgs struct {
	Path   string `json:"path"`
	Reload bool   `json:"reload"`
}

func (s *Server) handleBitmapInfo(args json.RawMessage) (interface{}, error) {
	var a bitmapPathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.load(a.Path, a.Reload)
	if err != nil {
		return nil, err
	}
	return bitmap.Describe(b), nil
}

// ValidateResult reports whether a file is a well-formed bitmap.
type ValidateResult struct {
	Valid     bool   `json:"valid"`
	Height    int    `json:"height,omitempty"`
	Width     int    `json:"width,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error,omitempty"`
}

// handleBitmapValidate always reads the file from disk, since validation is
// usually requested right after the file was edited.
func (s *Server) handleBitmapValidate(args json.RawMessage) (interface{}, error) {
	var a bitmapPathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("missing required argument: path")
	}

	s.cache.Evict(a.Path)
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return &ValidateResult{ErrorKind: errorKind(err), Error: err.Error()}, nil
	}
	return &ValidateResult{
		Valid:  detection.IsValid(b),
		Height: b.Height(),
		Width:  b.Width(),
	}, nil
}

// errorKind names the category of a load error.
func errorKind(err error) string {
	var (
		formatErr *bitmap.FormatError
		rangeErr  *bitmap.RangeError
		sizeErr   *bitmap.SizeMismatchError
	)
	switch {
	case errors.As(err, &formatErr):
		return "format"
	case errors.As(err, &rangeErr):
		return "range"
	case errors.As(err, &sizeErr):
		return "size_mismatch"
	default:
		return "io"
	}
}

// === Shape Search Handlers ===

func (s *Server) handleBitmapSearch(args json.RawMessage, shape detection.Shape) (interface{}, error) {
	var a bitmapPathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.load(a.Path, a.Reload)
	if err != nil {
		return nil, err
	}
	return detection.Find(b, shape)
}

// FindAllResult contains the outcome of every search on one bitmap.
type FindAllResult struct {
	Results []detection.Result `json:"results"`
}

func (s *Server) handleBitmapFindAll(args json.RawMessage) (interface{}, error) {
	var a bitmapPathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.load(a.Path, a.Reload)
	if err != nil {
		return nil, err
	}
	return &FindAllResult{Results: detection.FindAll(b)}, nil
}

// === Rendering Handlers ===

type bitmapRenderArgs struct {
	Path           string `json:"path"`
	Shape          string `json:"shape"`
	Scale          int    `json:"scale"`
	HighlightColor string `json:"highlight_color"`
	Grid           bool   `json:"grid"`
}

func (s *Server) handleBitmapRender(args json.RawMessage) (interface{}, error) {
	var a bitmapRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.load(a.Path, false)
	if err != nil {
		return nil, err
	}

	var seg *detection.Segment
	if a.Shape != "" && a.Shape != "none" {
		shape, err := detection.ParseShape(a.Shape)
		if err != nil {
			return nil, err
		}
		r, err := detection.Find(b, shape)
		if err != nil {
			return nil, err
		}
		if sg, ok := r.Segment(); ok {
			seg = &sg
		}
	}

	return render.PNGBase64(b, seg, render.Options{
		Scale:     a.Scale,
		Highlight: a.HighlightColor,
		Grid:      a.Grid,
	})
}

// === Conversion Handlers ===

type bitmapImportArgs struct {
	Path      string `json:"path"`
	Threshold int    `json:"threshold"`
	Invert    bool   `json:"invert"`
	Edges     bool   `json:"edges"`
	Output    string `json:"output"`
}

// ImportResult describes a bitmap produced from a raster image.
type ImportResult struct {
	bitmap.BitmapInfo
	Output string `json:"output,omitempty"`
	Bitmap string `json:"bitmap,omitempty"`
}

func (s *Server) handleBitmapImport(args json.RawMessage) (interface{}, error) {
	var a bitmapImportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Threshold < 0 || a.Threshold > 255 {
		return nil, fmt.Errorf("threshold %d outside range [0,255]", a.Threshold)
	}

	b, err := bitmap.FromImageFile(a.Path, bitmap.ImportOptions{
		Threshold: uint8(a.Threshold),
		Invert:    a.Invert,
		Edges:     a.Edges,
	})
	if err != nil {
		return nil, err
	}

	result := &ImportResult{BitmapInfo: *bitmap.Describe(b)}
	if a.Output == "" {
		result.Bitmap = b.String()
		return result, nil
	}

	if err := writeBitmapFile(a.Output, b); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Output)
	result.Output = a.Output
	return result, nil
}

func writeBitmapFile(path string, b *bitmap.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create bitmap file: %w", err)
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write bitmap file: %w", err)
	}
	return f.Close()
}
