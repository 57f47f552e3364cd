package hsluv

import "math"

// Unbounded is returned by MaxChromaForLightnessHue when no boundary line
// lies ahead of the ray, which happens only at degenerate lightness.
const Unbounded = math.MaxFloat64

// Line is one edge of the sRGB gamut projected onto the (u, v) plane at a
// fixed lightness, in slope-intercept form.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// DistanceFromOrigin returns the perpendicular distance from the
// achromatic pole to l.
func (l Line) DistanceFromOrigin() float64 {
	return math.Abs(l.Intercept) / math.Sqrt(l.Slope*l.Slope+1)
}

// RayLengthUntilIntersect returns the signed distance from the origin,
// along the ray at angle theta (radians), to the point where the ray
// meets l. A negative length means the line is behind the origin.
func (l Line) RayLengthUntilIntersect(theta float64) float64 {
	return l.Intercept / (math.Sin(theta) - l.Slope*math.Cos(theta))
}

// Bounds holds the six gamut edges for one lightness, ordered red t=0,
// red t=1, green t=0, green t=1, blue t=0, blue t=1.
type Bounds [6]Line

// GetBounds computes the edges of the hexagon that the RGB cube casts onto
// the LUV chromaticity plane at lightness l. Each pair of lines pins one
// channel of linear RGB to 0 and to 1.
func GetBounds(l float64) Bounds {
	var bounds Bounds

	tl := l + 16
	sub1 := tl * tl * tl / 1560896
	sub2 := l / kappa
	if sub1 > epsilon {
		sub2 = sub1
	}

	for channel, row := range m {
		top1 := (284517*row[0] - 94839*row[2]) * sub2
		for t := 0; t < 2; t++ {
			tf := float64(t)
			top2 := (838422*row[2]+769860*row[1]+731718*row[0])*l*sub2 - 769860*tf*l
			bottom := (632260*row[2]-126452*row[1])*sub2 + 126452*tf

			bounds[channel*2+t] = Line{
				Slope:     top1 / bottom,
				Intercept: top2 / bottom,
			}
		}
	}

	return bounds
}

// MaxSafeChroma returns the largest chroma that is inside the gamut for
// every hue: the distance from the pole to the nearest edge.
func (b Bounds) MaxSafeChroma() float64 {
	best := math.MaxFloat64
	for _, line := range b {
		// NaN edges (L = 0) fail the comparison and are skipped.
		if d := line.DistanceFromOrigin(); d < best {
			best = d
		}
	}
	return best
}

// MaxChroma returns the distance from the pole to the gamut boundary along
// hue h (degrees), or Unbounded if no edge lies ahead of the ray.
func (b Bounds) MaxChroma(h float64) float64 {
	hrad := h * degToRad
	best := Unbounded
	for _, line := range b {
		length := line.RayLengthUntilIntersect(hrad)
		if length >= 0 && length < best {
			best = length
		}
	}
	return best
}

// MaxSafeChromaForLightness returns the largest chroma that stays in the
// sRGB gamut at lightness l regardless of hue. HPLuv scales saturation by
// this value.
func MaxSafeChromaForLightness(l float64) float64 {
	return GetBounds(l).MaxSafeChroma()
}

// MaxChromaForLightnessHue returns the largest in-gamut chroma at
// lightness l and hue h (degrees). HSLuv scales saturation by this value.
func MaxChromaForLightnessHue(l, h float64) float64 {
	return GetBounds(l).MaxChroma(h)
}
