package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorSpaces are the values accepted for a "space" argument.
var colorSpaces = []string{"rgb", "xyz", "luv", "lch", "hsluv", "hpluv"}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func regionProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Conversion
		{
			Name: "color_convert",
			Description: "Convert a color to every supported representation: sRGB, CIE XYZ, CIE LUV, LCH, HSLuv and HPLuv, plus hex. " +
				"Give either a hex string or a space with three values. RGB and XYZ components are 0-1; " +
				"L, S and HSLuv/HPLuv lightness are 0-100; hues are degrees. " +
				"HPLuv saturation in the output exceeds 100 for saturated colors, so such results cannot be passed back as hpluv input.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Color as #rrggbb or #rgb. Takes precedence over space/values.",
					},
					"space": map[string]interface{}{
						"type":        "string",
						"enum":        colorSpaces,
						"description": "Color space of values",
					},
					"values": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"minItems":    3,
						"maxItems":    3,
						"description": "The three components in the order of the space's name (e.g. h, s, l for hsluv)",
					},
				},
			},
		},
		{
			Name: "color_gamut_bounds",
			Description: "Describe the sRGB gamut at a lightness in CIE LUV: the six boundary lines, the largest chroma " +
				"safe for every hue (HPLuv's scale), and optionally the largest chroma for one hue (HSLuv's scale).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lightness": map[string]interface{}{
						"type":        "number",
						"description": "Lightness, 0-100",
					},
					"hue": map[string]interface{}{
						"type":        "number",
						"description": "Optional hue in degrees, 0-360",
					},
				},
				"required": []string{"lightness"},
			},
		},
		{
			Name:        "color_palette",
			Description: "Generate a palette of evenly spaced hues with the same saturation and lightness. HSLuv gives the most vivid colors; HPLuv gives equal chroma across hues.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors (1-64). Default 6",
						"default":     6,
					},
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation, 0-100. Default 100",
						"default":     100,
					},
					"lightness": map[string]interface{}{
						"type":        "number",
						"description": "Lightness, 0-100. Default 60",
						"default":     60,
					},
					"start_hue": map[string]interface{}{
						"type":        "number",
						"description": "Hue of the first color in degrees. Default 0",
						"default":     0,
					},
					"space": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"hsluv", "hpluv"},
						"description": "Space the palette is built in. Default hsluv",
						"default":     "hsluv",
					},
					"render": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return a labeled PNG swatch as base64. Default false",
						"default":     false,
					},
				},
			},
		},

		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and pixel storage. The image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Drop any cached copy and decode the file again, picking up changes on disk",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_cache_clear",
			Description: "Drop every cached image to free memory. Later calls decode files from disk again.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Image Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel in every representation (hex, sRGB, XYZ, LUV, LCH, HSLuv, HPLuv) plus its alpha.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points to sample, each with an optional label",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors of an image or region, each annotated with HSLuv and HPLuv.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
					"sort_by": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"frequency", "hue", "lightness"},
						"description": "Order of the returned colors. Default frequency",
						"default":     "frequency",
					},
					"region": regionProperty("Optional region to analyze. Omit for the whole image."),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_adjust_hsluv",
			Description: "Rotate hue, scale saturation and shift lightness of an image in HSLuv or HPLuv space. Returns the result as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"hue_shift": map[string]interface{}{
						"type":        "number",
						"description": "Degrees to rotate hue. Default 0",
						"default":     0,
					},
					"saturation_scale": map[string]interface{}{
						"type":        "number",
						"description": "Saturation multiplier; 0 gives grayscale. Default 1",
						"default":     1,
					},
					"lightness_shift": map[string]interface{}{
						"type":        "number",
						"description": "Points added to lightness (-100 to 100). Default 0",
						"default":     0,
					},
					"space": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"hsluv", "hpluv"},
						"description": "Space the adjustment is made in. Default hsluv",
						"default":     "hsluv",
					},
					"region": regionProperty("Optional region to adjust and return. Omit for the whole image."),
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
