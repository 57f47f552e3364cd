package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"

	"github.com/ironsheep/hsluv-tools-mcp/internal/hsluv"
)

// Adjustment describes a per-pixel edit in HSLuv or HPLuv space.
type Adjustment struct {
	// Space is "hsluv" (default) or "hpluv".
	Space hsluv.Space `json:"space"`

	// HueShift rotates hue by this many degrees. Negative values rotate
	// backwards.
	HueShift float64 `json:"hue_shift"`

	// SaturationScale multiplies saturation. 1 leaves it unchanged, 0 makes
	// the image gray.
	SaturationScale float64 `json:"saturation_scale"`

	// LightnessShift is added to lightness, in percentage points.
	LightnessShift float64 `json:"lightness_shift"`
}

// AdjustResult is the adjusted image plus the settings that produced it.
type AdjustResult struct {
	EncodedImage
	Adjustment Adjustment `json:"adjustment"`
}

// AdjustHSLuv applies adj to every pixel of img (or of region, if non-nil)
// and returns the result as PNG.
//
// Lightness is clamped to [0, 100] and saturation to [0, 100] in HSLuv, so
// the result stays in gamut. HPLuv saturation is only clamped below; colors
// pushed past the sRGB gamut are clamped per channel when encoded. Alpha
// is preserved and fully transparent pixels are left untouched.
func AdjustHSLuv(img image.Image, region *Region, adj Adjustment) (*AdjustResult, error) {
	switch adj.Space {
	case "":
		adj.Space = hsluv.SpaceHSLuv
	case hsluv.SpaceHSLuv, hsluv.SpaceHPLuv:
	default:
		return nil, fmt.Errorf("adjustment space must be hsluv or hpluv, got %q", adj.Space)
	}
	if adj.SaturationScale < 0 {
		return nil, fmt.Errorf("saturation_scale must not be negative, got %g", adj.SaturationScale)
	}

	src, err := cropRegion(img, region)
	if err != nil {
		return nil, err
	}

	out := adjust.Apply(src, func(c color.RGBA) color.RGBA {
		rgb, ok := hsluv.RGBFromColor(c)
		if !ok {
			return c
		}
		px := adj.apply(rgb).NRGBA()
		px.A = c.A
		return color.RGBAModel.Convert(px).(color.RGBA)
	})

	enc, err := encodePNG(out)
	if err != nil {
		return nil, err
	}
	return &AdjustResult{EncodedImage: *enc, Adjustment: adj}, nil
}

func (adj Adjustment) apply(c hsluv.RGB) hsluv.RGB {
	if adj.Space == hsluv.SpaceHPLuv {
		p := c.HPLuv()
		p.H = rotateHue(p.H, adj.HueShift)
		p.S = math.Max(0, p.S*adj.SaturationScale)
		p.L = clampPercent(p.L + adj.LightnessShift)
		return p.RGB()
	}

	h := c.HSLuv()
	h.H = rotateHue(h.H, adj.HueShift)
	h.S = clampPercent(h.S * adj.SaturationScale)
	h.L = clampPercent(h.L + adj.LightnessShift)
	return h.RGB()
}

// rotateHue returns h+shift wrapped into [0, 360).
func rotateHue(h, shift float64) float64 {
	h = math.Mod(h+shift, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
