package hsluv

import (
	"fmt"
	"math"
)

// RGB is a device sRGB color with components in [0, 1].
type RGB struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// XYZ is a CIE 1931 XYZ color relative to the D65 white point. Components
// are nominally in [0, 1]; transforms may produce values slightly outside.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LUV is a CIE L*u*v* color. L is in [0, 100]; U and V are signed and
// unbounded.
type LUV struct {
	L float64 `json:"l"`
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// LCH is the cylindrical form of LUV: lightness, chroma and hue in degrees.
type LCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// HSLuv is a human-friendly alternative to HSL. Saturation is a percentage
// of the maximum chroma available at the given lightness and hue, so every
// HSLuv color with S and L in [0, 100] maps into the sRGB gamut.
type HSLuv struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-100 percent
	L float64 `json:"l"` // Lightness: 0-100 percent
}

// HPLuv is the pastel variant of HSLuv. Its saturation is relative to the
// largest chroma that is in gamut for every hue at the given lightness.
type HPLuv struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Values returns the components as a tuple.
func (c RGB) Values() (red, green, blue float64) { return c.Red, c.Green, c.Blue }

// Values returns the components as a tuple.
func (c XYZ) Values() (x, y, z float64) { return c.X, c.Y, c.Z }

// Values returns the components as a tuple.
func (c LUV) Values() (l, u, v float64) { return c.L, c.U, c.V }

// Values returns the components as a tuple.
func (c LCH) Values() (l, ch, h float64) { return c.L, c.C, c.H }

// Values returns the components as a tuple.
func (c HSLuv) Values() (h, s, l float64) { return c.H, c.S, c.L }

// Values returns the components as a tuple.
func (c HPLuv) Values() (h, s, l float64) { return c.H, c.S, c.L }

// BoundsError reports a component that lies outside the domain of its
// color space.
type BoundsError struct {
	Space string  // Color space name, e.g. "hsluv"
	Field string  // Component name, e.g. "lightness"
	Value float64 // Offending value
	Min   float64
	Max   float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %s out of range [%g, %g]: %g", e.Space, e.Field, e.Min, e.Max, e.Value)
}

// checkRange returns a *BoundsError unless min <= v <= max. NaN is always
// rejected.
func checkRange(space, field string, v, min, max float64) error {
	if v >= min && v <= max {
		return nil
	}
	return &BoundsError{Space: space, Field: field, Value: v, Min: min, Max: max}
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// NewRGB returns an RGB color after checking every channel is in [0, 1].
func NewRGB(red, green, blue float64) (RGB, error) {
	if err := firstError(
		checkRange("rgb", "red", red, 0, 1),
		checkRange("rgb", "green", green, 0, 1),
		checkRange("rgb", "blue", blue, 0, 1),
	); err != nil {
		return RGB{}, err
	}
	return RGB{Red: red, Green: green, Blue: blue}, nil
}

// NewXYZ returns an XYZ color after checking every component is in [0, 1].
func NewXYZ(x, y, z float64) (XYZ, error) {
	if err := firstError(
		checkRange("xyz", "x", x, 0, 1),
		checkRange("xyz", "y", y, 0, 1),
		checkRange("xyz", "z", z, 0, 1),
	); err != nil {
		return XYZ{}, err
	}
	return XYZ{X: x, Y: y, Z: z}, nil
}

// NewLUV returns a LUV color. Only lightness is bounded; u and v must be
// finite.
func NewLUV(l, u, v float64) (LUV, error) {
	if err := firstError(
		checkRange("luv", "lightness", l, 0, 100),
		checkFinite("luv", "u", u),
		checkFinite("luv", "v", v),
	); err != nil {
		return LUV{}, err
	}
	return LUV{L: l, U: u, V: v}, nil
}

// NewLCH returns an LCH color. Lightness is in [0, 100], chroma is
// non-negative and hue is in [0, 360).
func NewLCH(l, c, h float64) (LCH, error) {
	if err := firstError(
		checkRange("lch", "lightness", l, 0, 100),
		checkRange("lch", "chroma", c, 0, math.MaxFloat64),
		checkRange("lch", "hue", h, 0, 360),
	); err != nil {
		return LCH{}, err
	}
	if h == 360 {
		return LCH{}, &BoundsError{Space: "lch", Field: "hue", Value: h, Min: 0, Max: 360}
	}
	return LCH{L: l, C: c, H: h}, nil
}

// NewHSLuv returns an HSLuv color after checking hue is in [0, 360] and
// saturation and lightness are in [0, 100].
func NewHSLuv(h, s, l float64) (HSLuv, error) {
	if err := checkHSL("hsluv", h, s, l); err != nil {
		return HSLuv{}, err
	}
	return HSLuv{H: h, S: s, L: l}, nil
}

// NewHPLuv is NewHSLuv for the HPLuv space.
func NewHPLuv(h, s, l float64) (HPLuv, error) {
	if err := checkHSL("hpluv", h, s, l); err != nil {
		return HPLuv{}, err
	}
	return HPLuv{H: h, S: s, L: l}, nil
}

func checkHSL(space string, h, s, l float64) error {
	return firstError(
		checkRange(space, "hue", h, 0, 360),
		checkRange(space, "saturation", s, 0, 100),
		checkRange(space, "lightness", l, 0, 100),
	)
}

func checkFinite(space, field string, v float64) error {
	return checkRange(space, field, v, -math.MaxFloat64, math.MaxFloat64)
}
