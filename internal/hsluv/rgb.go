package hsluv

// RGBFromXYZ converts XYZ to sRGB. The result is not clamped: XYZ colors
// outside the sRGB gamut produce channels outside [0, 1].
func RGBFromXYZ(c XYZ) RGB {
	lin := m.mul(vec3{c.X, c.Y, c.Z})
	return RGB{
		Red:   fromLinear(lin[0]),
		Green: fromLinear(lin[1]),
		Blue:  fromLinear(lin[2]),
	}
}

// XYZFromRGB converts sRGB to XYZ.
func XYZFromRGB(c RGB) XYZ {
	xyz := mInv.mul(vec3{toLinear(c.Red), toLinear(c.Green), toLinear(c.Blue)})
	return XYZ{X: xyz[0], Y: xyz[1], Z: xyz[2]}
}

// XYZ converts c to XYZ.
func (c RGB) XYZ() XYZ { return XYZFromRGB(c) }

// RGB converts c to sRGB.
func (c XYZ) RGB() RGB { return RGBFromXYZ(c) }

// InGamut reports whether every channel lies in [0, 1], allowing for
// the given tolerance on either side.
func (c RGB) InGamut(tolerance float64) bool {
	in := func(v float64) bool { return v >= -tolerance && v <= 1+tolerance }
	return in(c.Red) && in(c.Green) && in(c.Blue)
}

// Clamped returns c with every channel clamped to [0, 1].
func (c RGB) Clamped() RGB {
	return RGB{Red: clamp01(c.Red), Green: clamp01(c.Green), Blue: clamp01(c.Blue)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
