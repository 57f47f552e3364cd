package hsluv

import (
	"fmt"
	"strings"
)

// Space names a color space accepted by Convert.
type Space string

const (
	SpaceRGB   Space = "rgb"
	SpaceXYZ   Space = "xyz"
	SpaceLUV   Space = "luv"
	SpaceLCH   Space = "lch"
	SpaceHSLuv Space = "hsluv"
	SpaceHPLuv Space = "hpluv"
)

// Spaces lists every supported space in conversion-graph order.
var Spaces = []Space{SpaceRGB, SpaceXYZ, SpaceLUV, SpaceLCH, SpaceHSLuv, SpaceHPLuv}

// ParseSpace returns the Space named by s, ignoring case.
func ParseSpace(s string) (Space, error) {
	sp := Space(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Spaces {
		if sp == known {
			return sp, nil
		}
	}
	return "", fmt.Errorf("unknown color space %q", s)
}

// Conversions holds one color in every supported representation.
type Conversions struct {
	Hex     string `json:"hex"`
	InGamut bool   `json:"in_gamut"`
	RGB     RGB    `json:"rgb"`
	XYZ     XYZ    `json:"xyz"`
	LUV     LUV    `json:"luv"`
	LCH     LCH    `json:"lch"`
	HSLuv   HSLuv  `json:"hsluv"`
	HPLuv   HPLuv  `json:"hpluv"`
}

// gamutTolerance absorbs rounding in the inverse chain.
const gamutTolerance = 1e-9

// ConversionsFromLCH fills every representation starting from LCH. The
// input value is kept as given; the others are derived along the graph.
func ConversionsFromLCH(c LCH) Conversions {
	luv := c.LUV()
	xyz := luv.XYZ()
	rgb := xyz.RGB()
	return Conversions{
		Hex:     rgb.Hex(),
		InGamut: rgb.InGamut(gamutTolerance),
		RGB:     rgb,
		XYZ:     xyz,
		LUV:     luv,
		LCH:     c,
		HSLuv:   c.HSLuv(),
		HPLuv:   c.HPLuv(),
	}
}

// ConversionsFromRGB fills every representation starting from sRGB.
func ConversionsFromRGB(c RGB) Conversions {
	xyz := c.XYZ()
	out := ConversionsFromXYZ(xyz)
	out.RGB = c
	out.Hex = c.Hex()
	out.InGamut = c.InGamut(gamutTolerance)
	return out
}

// ConversionsFromXYZ fills every representation starting from XYZ.
func ConversionsFromXYZ(c XYZ) Conversions {
	out := ConversionsFromLUV(c.LUV())
	out.XYZ = c
	return out
}

// ConversionsFromLUV fills every representation starting from LUV.
func ConversionsFromLUV(c LUV) Conversions {
	out := ConversionsFromLCH(c.LCH())
	out.LUV = c
	return out
}

// ConversionsFromHSLuv fills every representation starting from HSLuv.
func ConversionsFromHSLuv(c HSLuv) Conversions {
	out := ConversionsFromLCH(c.LCH())
	out.HSLuv = c
	return out
}

// ConversionsFromHPLuv fills every representation starting from HPLuv.
func ConversionsFromHPLuv(c HPLuv) Conversions {
	out := ConversionsFromLCH(c.LCH())
	out.HPLuv = c
	return out
}

// Convert validates three components in the given space and returns the
// color in every representation. Invalid components yield a *BoundsError.
func Convert(space Space, a, b, c float64) (Conversions, error) {
	switch space {
	case SpaceRGB:
		v, err := NewRGB(a, b, c)
		if err != nil {
			return Conversions{}, err
		}
		return ConversionsFromRGB(v), nil
	case SpaceXYZ:
		v, err := NewXYZ(a, b, c)
		if err != nil {
			return Conversions{}, err
		}
		return ConversionsFromXYZ(v), nil
	case SpaceLUV:
		v, err := NewLUV(a, b, c)
		if err != nil {
			return Conversions{}, err
		}
		return ConversionsFromLUV(v), nil
	case SpaceLCH:
		v, err := NewLCH(a, b, c)
		if err != nil {
			return Conversions{}, err
		}
		return ConversionsFromLCH(v), nil
	case SpaceHSLuv:
		v, err := NewHSLuv(a, b, c)
		if err != nil {
			return Conversions{}, err
		}
		return ConversionsFromHSLuv(v), nil
	case SpaceHPLuv:
		v, err := NewHPLuv(a, b, c)
		if err != nil {
			return Conversions{}, err
		}
		return ConversionsFromHPLuv(v), nil
	}
	return Conversions{}, fmt.Errorf("unknown color space %q", space)
}

// ConvertHex parses a hex color and returns it in every representation.
func ConvertHex(hex string) (Conversions, error) {
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return Conversions{}, err
	}
	return ConversionsFromRGB(rgb), nil
}
