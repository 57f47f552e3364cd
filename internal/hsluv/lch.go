package hsluv

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// LCHFromLUV converts LUV to its polar form. Hue is in [0, 360) and is
// forced to 0 for achromatic colors, where atan2 carries no information.
func LCHFromLUV(c LUV) LCH {
	chroma := math.Sqrt(c.U*c.U + c.V*c.V)
	if isGray(chroma) {
		return LCH{L: c.L, C: chroma}
	}

	hue := math.Atan2(c.V, c.U) * radToDeg
	if hue < 0 {
		hue += 360
	}
	return LCH{L: c.L, C: chroma, H: hue}
}

// LUVFromLCH converts LCH back to Cartesian LUV.
func LUVFromLCH(c LCH) LUV {
	hrad := c.H * degToRad
	return LUV{
		L: c.L,
		U: math.Cos(hrad) * c.C,
		V: math.Sin(hrad) * c.C,
	}
}

// LCH converts c to LCH.
func (c LUV) LCH() LCH { return LCHFromLUV(c) }

// LUV converts c to LUV.
func (c LCH) LUV() LUV { return LUVFromLCH(c) }
