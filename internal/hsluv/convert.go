package hsluv

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLuvFromRGB converts sRGB to HSLuv via XYZ, LUV and LCH.
func HSLuvFromRGB(c RGB) HSLuv {
	return HSLuvFromLCH(LCHFromLUV(LUVFromXYZ(XYZFromRGB(c))))
}

// RGBFromHSLuv converts HSLuv to sRGB via LCH, LUV and XYZ.
func RGBFromHSLuv(c HSLuv) RGB {
	return RGBFromXYZ(XYZFromLUV(LUVFromLCH(LCHFromHSLuv(c))))
}

// HPLuvFromRGB converts sRGB to HPLuv via XYZ, LUV and LCH.
func HPLuvFromRGB(c RGB) HPLuv {
	return HPLuvFromLCH(LCHFromLUV(LUVFromXYZ(XYZFromRGB(c))))
}

// RGBFromHPLuv converts HPLuv to sRGB via LCH, LUV and XYZ.
func RGBFromHPLuv(c HPLuv) RGB {
	return RGBFromXYZ(XYZFromLUV(LUVFromLCH(LCHFromHPLuv(c))))
}

// HSLuv converts c to HSLuv.
func (c RGB) HSLuv() HSLuv { return HSLuvFromRGB(c) }

// HPLuv converts c to HPLuv.
func (c RGB) HPLuv() HPLuv { return HPLuvFromRGB(c) }

// RGB converts c to sRGB.
func (c HSLuv) RGB() RGB { return RGBFromHSLuv(c) }

// RGB converts c to sRGB.
func (c HPLuv) RGB() RGB { return RGBFromHPLuv(c) }

// HSLuvToRGB converts HSLuv components to sRGB components.
func HSLuvToRGB(h, s, l float64) (r, g, b float64) {
	return RGBFromHSLuv(HSLuv{H: h, S: s, L: l}).Values()
}

// HPLuvToRGB converts HPLuv components to sRGB components.
func HPLuvToRGB(h, s, l float64) (r, g, b float64) {
	return RGBFromHPLuv(HPLuv{H: h, S: s, L: l}).Values()
}

// RGBToHSLuv converts sRGB components to HSLuv components.
func RGBToHSLuv(r, g, b float64) (h, s, l float64) {
	return HSLuvFromRGB(RGB{Red: r, Green: g, Blue: b}).Values()
}

// RGBToHPLuv converts sRGB components to HPLuv components.
func RGBToHPLuv(r, g, b float64) (h, s, l float64) {
	return HPLuvFromRGB(RGB{Red: r, Green: g, Blue: b}).Values()
}

// RGBFromHex parses "#rrggbb" or the short "#rgb" form.
func RGBFromHex(hex string) (RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGB{Red: c.R, Green: c.G, Blue: c.B}, nil
}

// Hex formats c as "#rrggbb". Out-of-gamut channels are clamped first.
func (c RGB) Hex() string {
	return c.colorful().Clamped().Hex()
}

// HSLuvFromHex parses a hex color and converts it to HSLuv.
func HSLuvFromHex(hex string) (HSLuv, error) {
	c, err := RGBFromHex(hex)
	if err != nil {
		return HSLuv{}, err
	}
	return HSLuvFromRGB(c), nil
}

// HPLuvFromHex parses a hex color and converts it to HPLuv.
func HPLuvFromHex(hex string) (HPLuv, error) {
	c, err := RGBFromHex(hex)
	if err != nil {
		return HPLuv{}, err
	}
	return HPLuvFromRGB(c), nil
}

// Hex converts c to sRGB and formats it as "#rrggbb".
func (c HSLuv) Hex() string { return RGBFromHSLuv(c).Hex() }

// Hex converts c to sRGB and formats it as "#rrggbb".
func (c HPLuv) Hex() string { return RGBFromHPLuv(c).Hex() }

// RGBFromColor converts any color.Color to RGB, undoing alpha
// premultiplication. It reports false for fully transparent colors, whose
// channels carry no information.
func RGBFromColor(col color.Color) (RGB, bool) {
	c, ok := colorful.MakeColor(col)
	if !ok {
		return RGB{}, false
	}
	return RGB{Red: c.R, Green: c.G, Blue: c.B}, true
}

// NRGBA returns c as an opaque 8-bit color, clamping out-of-gamut channels.
func (c RGB) NRGBA() color.NRGBA {
	r, g, b := c.colorful().Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: c.Red, G: c.Green, B: c.Blue}
}
