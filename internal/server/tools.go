package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool's "path" argument.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the bitmap text file",
}

// reloadProperty lets a client force a fresh read of a file that changed on disk.
var reloadProperty = map[string]interface{}{
	"type":        "boolean",
	"description": "Discard any cached copy and read the file again",
	"default":     false,
}

// searchTool builds the definition for one of the shape searches.
func searchTool(name, description string) Tool {
	return Tool{
		Name:        name,
		Description: description,
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path":   pathProperty,
				"reload": reloadProperty,
			},
			"required": []string{"path"},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Bitmap Information
		{
			Name:        "bitmap_info",
			Description: "Load a bitmap file and return its dimensions, number of set pixels and density.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"reload": reloadProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "bitmap_validate",
			Description: "Check whether a file is a valid bitmap. Returns valid=false with the reason instead of failing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Shape Searches
		searchTool("bitmap_hline", "Find the first longest horizontal line of set pixels. Coordinates are 0-based (row, col)."),
		searchTool("bitmap_vline", "Find the longest vertical line of set pixels; on ties the line starting on the smallest row wins."),
		searchTool("bitmap_square", "Find the first largest square whose four border lines are all set pixels."),
		searchTool("bitmap_find_all", "Run the horizontal line, vertical line and square searches in one call."),

		// Rendering
		{
			Name:        "bitmap_render",
			Description: "Render a bitmap as base64-encoded PNG, optionally highlighting the result of a search.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"shape": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"none", "hline", "vline", "square"},
						"description": "Search whose result is highlighted (default none)",
						"default":     "none",
					},
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Output pixels per bitmap cell (default 8)",
						"default":     8,
					},
					"highlight_color": map[string]interface{}{
						"type":        "string",
						"description": "Highlight colour as hex (default #FF0000)",
						"default":     "#FF0000",
					},
					"grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw lines between cells",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// Conversion
		{
			Name:        "bitmap_import",
			Description: "Convert a PNG, JPEG, GIF, BMP or TIFF image into a bitmap by thresholding. Dark pixels become 1 unless invert is set.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Gray level at or above which a pixel is background; 0 selects the default of 128",
						"default":     128,
					},
					"invert": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat light pixels as set",
						"default":     false,
					},
					"edges": map[string]interface{}{
						"type":        "boolean",
						"description": "Keep outlines only by running an edge filter before thresholding",
						"default":     false,
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the bitmap text file. If omitted the text is returned.",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
