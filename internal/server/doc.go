// Package server implements the MCP (Model Context Protocol) server for HSLuv
// color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color conversion
// and color-aware image operations through the MCP protocol.
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
// Color Conversion:
//   - color_convert: Convert hex or rgb/xyz/luv/lch/hsluv/hpluv values to every space
//   - color_gamut_bounds: Gamut boundary lines and chroma limits at a lightness
//   - color_palette: Evenly spaced HSLuv or HPLuv palette, optionally rendered
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_cache_clear: Drop every cached image
//
// Image Color Operations:
//   - image_sample_color: Get color at pixel in every space
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_colors: Extract a palette annotated with HSLuv
//   - image_adjust_hsluv: Hue, saturation and lightness edits in HSLuv space
//
// # Image Caching
//
// Images are cached by path and reused across tool calls for the lifetime
// of the server process.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC error responses:
//   - -32602: bad arguments, including color components outside their range
//   - -32601: unknown method
//   - -32000: other tool failures such as unreadable images
//
// The error's data field carries the Go error string.
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
