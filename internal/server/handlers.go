package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/ironsheep/hsluv-tools-mcp/internal/hsluv"
	"github.com/ironsheep/hsluv-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "image_load").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// argsError marks a tool failure caused by the caller's arguments.
type argsError struct {
	err error
}

func (e *argsError) Error() string { return e.err.Error() }
func (e *argsError) Unwrap() error { return e.err }

func invalidArgs(err error) error {
	return &argsError{err: err}
}

// decodeArgs unmarshals tool arguments, reporting failures as invalid params.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return invalidArgs(fmt.Errorf("invalid arguments: %w", err))
	}
	return nil
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Errors caused by the arguments, including out-of-range color components,
// return code -32602. Other tool failures return -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var ae *argsError
		var be *hsluv.BoundsError
		if errors.As(err, &ae) || errors.As(err, &be) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	text, err := marshalResult(result)
	if err != nil {
		log.Printf("Failed to marshal %s result: %v", params.Name, err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate hsluv or imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if s.debug {
		log.Printf("Tool call: %s %s", name, args)
	}

	switch name {
	// Color Conversion
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_gamut_bounds":
		return s.handleColorGamutBounds(args)
	case "color_palette":
		return s.handleColorPalette(args)

	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_cache_clear":
		return s.handleImageCacheClear()

	// Image Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_adjust_hsluv":
		return s.handleImageAdjustHSLuv(args)

	default:
		return nil, invalidArgs(fmt.Errorf("unknown tool: %s", name))
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

// marshalResult converts a tool result to pretty-printed JSON. Results
// holding NaN or Inf, such as a LUV input whose u/v overflow the inverse
// chain, fail here.
func marshalResult(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("result is not representable as JSON: %w", err)
	}
	return string(b), nil
}

// regionArgs is the JSON form of imaging.Region.
type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r *regionArgs) region() *imaging.Region {
	if r == nil {
		return nil
	}
	return &imaging.Region{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
}

// === Color Conversion Handlers ===

type colorConvertArgs struct {
	Hex    string    `json:"hex"`
	Space  string    `json:"space"`
	Values []float64 `json:"values"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	if a.Hex != "" {
		c, err := hsluv.ConvertHex(a.Hex)
		if err != nil {
			return nil, invalidArgs(err)
		}
		return c, nil
	}

	if a.Space == "" {
		return nil, invalidArgs(errors.New("either hex or space and values is required"))
	}
	space, err := hsluv.ParseSpace(a.Space)
	if err != nil {
		return nil, invalidArgs(err)
	}
	if len(a.Values) != 3 {
		return nil, invalidArgs(fmt.Errorf("%s needs 3 values, got %d", space, len(a.Values)))
	}
	return hsluv.Convert(space, a.Values[0], a.Values[1], a.Values[2])
}

type colorGamutBoundsArgs struct {
	Lightness float64  `json:"lightness"`
	Hue       *float64 `json:"hue"`
}

// gamutBoundsResult describes the sRGB gamut at one lightness.
type gamutBoundsResult struct {
	Lightness float64 `json:"lightness"`

	// Lines are the six hexagon edges, omitted when lightness is so close to
	// 0 that some edges are undefined.
	Lines []hsluv.Line `json:"lines,omitempty"`

	MaxSafeChroma float64  `json:"max_safe_chroma"`
	Hue           *float64 `json:"hue,omitempty"`
	MaxChroma     *float64 `json:"max_chroma,omitempty"`

	// Unbounded is set when the ray at Hue meets no edge.
	Unbounded bool `json:"unbounded,omitempty"`
}

func (s *Server) handleColorGamutBounds(args json.RawMessage) (interface{}, error) {
	var a colorGamutBoundsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	hue := 0.0
	if a.Hue != nil {
		hue = *a.Hue
	}
	// Hue follows the HSLuv range, so 360 is accepted.
	if _, err := hsluv.NewHSLuv(hue, 0, a.Lightness); err != nil {
		return nil, err
	}

	bounds := hsluv.GetBounds(a.Lightness)
	result := &gamutBoundsResult{
		Lightness:     a.Lightness,
		MaxSafeChroma: bounds.MaxSafeChroma(),
	}
	if finiteBounds(bounds) {
		result.Lines = bounds[:]
	}

	if a.Hue != nil {
		result.Hue = a.Hue
		if c := bounds.MaxChroma(hue); c == hsluv.Unbounded {
			result.Unbounded = true
		} else {
			result.MaxChroma = &c
		}
	}
	return result, nil
}

// finiteBounds reports whether every line can be encoded as JSON.
func finiteBounds(b hsluv.Bounds) bool {
	for _, l := range b {
		for _, v := range []float64{l.Slope, l.Intercept} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

type colorPaletteArgs struct {
	Count      int      `json:"count"`
	Saturation *float64 `json:"saturation"`
	Lightness  *float64 `json:"lightness"`
	StartHue   float64  `json:"start_hue"`
	Space      string   `json:"space"`
	Render     bool     `json:"render"`
}

func (s *Server) handleColorPalette(args json.RawMessage) (interface{}, error) {
	var a colorPaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	opts := imaging.PaletteOptions{
		Count:      a.Count,
		Saturation: 100,
		Lightness:  60,
		StartHue:   a.StartHue,
		Space:      hsluv.SpaceHSLuv,
	}
	if opts.Count == 0 {
		opts.Count = 6
	}
	if a.Saturation != nil {
		opts.Saturation = *a.Saturation
	}
	if a.Lightness != nil {
		opts.Lightness = *a.Lightness
	}
	if a.Space != "" {
		space, err := hsluv.ParseSpace(a.Space)
		if err != nil {
			return nil, invalidArgs(err)
		}
		opts.Space = space
	}

	palette, err := imaging.GeneratePalette(opts)
	if err != nil {
		return nil, invalidArgs(err)
	}

	if a.Render {
		swatch, err := imaging.RenderSwatch(palette.Colors)
		if err != nil {
			return nil, err
		}
		palette.Swatch = swatch
	}
	return palette, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path   string `json:"path"`
	Reload bool   `json:"reload"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Reload && s.cache.Evict(a.Path) && s.debug {
		log.Printf("Evicted cached image: %s", a.Path)
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// cacheClearResult reports how many images image_cache_clear dropped.
type cacheClearResult struct {
	Cleared int `json:"cleared"`
}

func (s *Server) handleImageCacheClear() (interface{}, error) {
	return &cacheClearResult{Cleared: s.cache.Clear()}, nil
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Image Color Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageDominantColorsArgs struct {
	Path   string      `json:"path"`
	Count  int         `json:"count"`
	SortBy string      `json:"sort_by"`
	Region *regionArgs `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, a.Region.region(), a.SortBy)
}

type imageAdjustHSLuvArgs struct {
	Path            string      `json:"path"`
	HueShift        float64     `json:"hue_shift"`
	SaturationScale *float64    `json:"saturation_scale"`
	LightnessShift  float64     `json:"lightness_shift"`
	Space           string      `json:"space"`
	Region          *regionArgs `json:"region,omitempty"`
}

func (s *Server) handleImageAdjustHSLuv(args json.RawMessage) (interface{}, error) {
	var a imageAdjustHSLuvArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	adj := imaging.Adjustment{
		HueShift:        a.HueShift,
		SaturationScale: 1,
		LightnessShift:  a.LightnessShift,
	}
	if a.SaturationScale != nil {
		adj.SaturationScale = *a.SaturationScale
	}
	if a.Space != "" {
		space, err := hsluv.ParseSpace(a.Space)
		if err != nil {
			return nil, invalidArgs(err)
		}
		adj.Space = space
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.AdjustHSLuv(img, a.Region.region(), adj)
}
