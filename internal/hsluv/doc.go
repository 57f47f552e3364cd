// Package hsluv converts colors between sRGB, CIE XYZ, CIE LUV, LCH, HSLuv
// and HPLuv, and exposes the sRGB gamut boundary in LUV space.
//
// HSLuv and HPLuv are cylindrical spaces built on CIE LCH(uv). Unlike plain
// HSL, their saturation axis is scaled against the actual sRGB gamut, so
// any hue, saturation and lightness in range converts to a displayable
// color, and lightness tracks perceived brightness.
//
// # Conversion Graph
//
//	RGB <-> XYZ <-> LUV <-> LCH <-> HSLuv
//	                            \-> HPLuv
//
// Every edge has a forward and an inverse function (RGBFromXYZ /
// XYZFromRGB and so on) plus method shorthands on the value types.
// HSLuvFromRGB, RGBFromHSLuv, HPLuvFromRGB and RGBFromHPLuv compose the
// full chain.
//
// # Gamut Boundary
//
// At a fixed lightness the RGB cube projects onto the (u, v) plane as a
// hexagon. GetBounds returns its six edges. MaxChromaForLightnessHue casts
// a ray at a given hue and returns the distance to the nearest edge it
// hits; HSLuv divides chroma by this value. MaxSafeChromaForLightness
// returns the radius of the largest circle inside the hexagon; HPLuv
// divides chroma by that instead, trading range for a hue-independent
// scale.
//
// # Achromatic Colors
//
// Lightness below 1e-8 (black) or above 99.9999999 (white) forces chroma
// and saturation to 0. Chroma or saturation below 1e-8 (gray) forces hue
// to 0. The same predicates are applied in both directions so that
// forward and inverse conversions agree.
//
// # Validation
//
// Conversion functions accept any float64 and never fail; out-of-gamut
// inputs produce out-of-range outputs rather than being clamped. Use the
// NewRGB, NewHSLuv, ... constructors to validate untrusted input. They
// return a *BoundsError naming the offending field.
//
// Conversion output is not always valid constructor input. HPLuv saturation
// of a saturated sRGB color exceeds 100 (pure red is about 427), so passing
// it back through NewHPLuv fails. Convert through HSLuv or RGB instead.
//
// # Thread Safety
//
// All functions are pure and allocation-free and may be called
// concurrently.
package hsluv
