package hsluv

const (
	blackThreshold = 1e-8
	whiteThreshold = 99.9999999
	grayThreshold  = 1e-8
)

// isBlack reports whether lightness l is indistinguishable from black.
func isBlack(l float64) bool { return l < blackThreshold }

// isWhite reports whether lightness l is indistinguishable from white.
func isWhite(l float64) bool { return l > whiteThreshold }

// isGray reports whether a chroma or saturation is too small to carry a hue.
func isGray(x float64) bool { return x < grayThreshold }

// isAchromaticLightness reports whether l is at either end of the
// lightness axis, where the gamut collapses to a point.
func isAchromaticLightness(l float64) bool { return isBlack(l) || isWhite(l) }

// LCHFromHSLuv converts HSLuv to LCH. Saturation 100 lands exactly on the
// gamut boundary for the color's hue.
func LCHFromHSLuv(c HSLuv) LCH {
	out := LCH{L: c.L}
	if !isAchromaticLightness(c.L) {
		out.C = MaxChromaForLightnessHue(c.L, c.H) * (c.S / 100)
	}
	if !isGray(c.S) {
		out.H = c.H
	}
	return out
}

// HSLuvFromLCH converts LCH to HSLuv. Saturation exceeds 100 for colors
// outside the sRGB gamut.
func HSLuvFromLCH(c LCH) HSLuv {
	out := HSLuv{L: c.L}
	if !isGray(c.C) {
		out.H = c.H
	}
	if !isAchromaticLightness(c.L) {
		out.S = c.C / MaxChromaForLightnessHue(c.L, c.H) * 100
	}
	return out
}

// LCHFromHPLuv converts HPLuv to LCH using the hue-independent chroma
// bound, so equal saturation means equal chroma across hues.
func LCHFromHPLuv(c HPLuv) LCH {
	out := LCH{L: c.L}
	if !isAchromaticLightness(c.L) {
		out.C = MaxSafeChromaForLightness(c.L) * (c.S / 100)
	}
	if !isGray(c.S) {
		out.H = c.H
	}
	return out
}

// HPLuvFromLCH converts LCH to HPLuv. Saturated colors routinely exceed
// 100, since HPLuv only covers pastels.
func HPLuvFromLCH(c LCH) HPLuv {
	out := HPLuv{L: c.L}
	if !isGray(c.C) {
		out.H = c.H
	}
	if !isAchromaticLightness(c.L) {
		out.S = c.C / MaxSafeChromaForLightness(c.L) * 100
	}
	return out
}

// HSLuv converts c to HSLuv.
func (c LCH) HSLuv() HSLuv { return HSLuvFromLCH(c) }

// HPLuv converts c to HPLuv.
func (c LCH) HPLuv() HPLuv { return HPLuvFromLCH(c) }

// LCH converts c to LCH.
func (c HSLuv) LCH() LCH { return LCHFromHSLuv(c) }

// LCH converts c to LCH.
func (c HPLuv) LCH() LCH { return LCHFromHPLuv(c) }
