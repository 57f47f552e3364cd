package hsluv

import "math"

// LightnessFromY maps relative luminance Y (white = 1) to CIE L*.
func LightnessFromY(y float64) float64 {
	if y <= epsilon {
		return y * kappa
	}
	return 116*math.Cbrt(y) - 16
}

// YFromLightness is the inverse of LightnessFromY.
func YFromLightness(l float64) float64 {
	if l <= 8 {
		return l / kappa
	}
	t := (l + 16) / 116
	return t * t * t
}

// LUVFromXYZ converts XYZ to CIE LUV relative to the D65 white point.
//
// Black (L* below 1e-8) maps to u = v = 0 without evaluating the
// chromaticity quotient, which is 0/0 at the origin.
func LUVFromXYZ(c XYZ) LUV {
	l := LightnessFromY(c.Y)
	if isBlack(l) {
		return LUV{L: l}
	}

	denom := c.X + 15*c.Y + 3*c.Z
	varU := 4 * c.X / denom
	varV := 9 * c.Y / denom
	return LUV{
		L: l,
		U: 13 * l * (varU - refU),
		V: 13 * l * (varV - refV),
	}
}

// XYZFromLUV converts CIE LUV to XYZ. Lightness at or below 1e-8 is black.
func XYZFromLUV(c LUV) XYZ {
	if c.L <= blackThreshold {
		return XYZ{}
	}

	varU := c.U/(13*c.L) + refU
	varV := c.V/(13*c.L) + refV
	y := YFromLightness(c.L)
	x := -(9 * y * varU) / ((varU-4)*varV - varU*varV)
	z := (9*y - 15*varV*y - varV*x) / (3 * varV)
	return XYZ{X: x, Y: y, Z: z}
}

// LUV converts c to CIE LUV.
func (c XYZ) LUV() LUV { return LUVFromXYZ(c) }

// XYZ converts c to XYZ.
func (c LUV) XYZ() XYZ { return XYZFromLUV(c) }
