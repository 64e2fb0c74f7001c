// Package server implements the MCP (Model Context Protocol) server for bitmap
// shape searches.
//
// This package provides a JSON-RPC 2.0 server that exposes the searches of
// package detection, together with loading, rendering and image import,
// through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Bitmap Information:
//   - bitmap_info: Dimensions, set pixel count and density
//   - bitmap_validate: Check a file and report why it is malformed
//
// Shape Searches:
//   - bitmap_hline: Longest horizontal line
//   - bitmap_vline: Longest vertical line
//   - bitmap_square: Largest square with a fully set border
//   - bitmap_find_all: All three searches at once
//
// Rendering and Conversion:
//   - bitmap_render: PNG rendering with the search result highlighted
//   - bitmap_import: Threshold a raster image into a bitmap
//
// A search that finds nothing is a successful call with "found": false.
//
// # Bitmap Caching
//
// Loaded bitmaps are cached by path for the lifetime of the process. Search
// tools accept "reload": true to re-read a file; bitmap_validate always
// re-reads.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
