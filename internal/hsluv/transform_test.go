package hsluv

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

// approx compares float64 fields to within 1e-9.
var approx = cmpopts.EquateApprox(0, 1e-9)

func TestPureRed(t *testing.T) {
	red := RGB{Red: 1}

	xyz := red.XYZ()
	wantXYZ := XYZ{X: 0.4123907992659595, Y: 0.21263900587151036, Z: 0.01933081871559185}
	if diff := cmp.Diff(wantXYZ, xyz, approx); diff != "" {
		t.Errorf("XYZ mismatch (-want +got):\n%s", diff)
	}

	luv := xyz.LUV()
	wantLUV := LUV{L: 53.23711559542937, U: 175.0098221628849, V: 37.76509362555986}
	if diff := cmp.Diff(wantLUV, luv, approx); diff != "" {
		t.Errorf("LUV mismatch (-want +got):\n%s", diff)
	}

	lch := luv.LCH()
	wantLCH := LCH{L: 53.23711559542937, C: 179.03809692362097, H: 12.177050630061162}
	if diff := cmp.Diff(wantLCH, lch, approx); diff != "" {
		t.Errorf("LCH mismatch (-want +got):\n%s", diff)
	}

	back := lch.LUV().XYZ().RGB()
	assert.InDelta(t, 1.0, back.Red, 1e-8)
	assert.InDelta(t, 0.0, back.Green, 1e-8)
	assert.InDelta(t, 0.0, back.Blue, 1e-8)

	hsl := lch.HSLuv()
	assert.InDelta(t, 12.177050630061162, hsl.H, 1e-8)
	assert.InDelta(t, 100.0, hsl.S, 1e-8)
	assert.InDelta(t, 53.23711559542937, hsl.L, 1e-8)
}

func TestGray(t *testing.T) {
	gray := RGB{Red: 0.5, Green: 0.5, Blue: 0.5}

	lch := gray.XYZ().LUV().LCH()
	assert.Less(t, lch.C, 1e-6)
	assert.Equal(t, 0.0, lch.H)

	hsl := gray.HSLuv()
	assert.Equal(t, 0.0, hsl.H)
	assert.Less(t, hsl.S, 1e-6)
	assert.InDelta(t, 53.38896474111432, hsl.L, 1e-9)

	hpl := gray.HPLuv()
	assert.Equal(t, 0.0, hpl.H)
	assert.Less(t, hpl.S, 1e-6)
}

func TestBlackAndWhite(t *testing.T) {
	black := RGB{}
	luv := black.XYZ().LUV()
	assert.Equal(t, LUV{}, luv, "black must not propagate 0/0 chromaticity")
	assert.Equal(t, XYZ{}, LUV{L: 1e-9, U: 12, V: -4}.XYZ())
	assert.Equal(t, HSLuv{}, black.HSLuv())
	assert.Equal(t, HPLuv{}, black.HPLuv())

	white := RGB{Red: 1, Green: 1, Blue: 1}
	hsl := white.HSLuv()
	assert.Equal(t, 0.0, hsl.H)
	assert.Equal(t, 0.0, hsl.S)
	assert.InDelta(t, 100.0, hsl.L, 1e-9)

	back := hsl.RGB()
	assert.InDelta(t, 1.0, back.Red, 1e-8)
	assert.InDelta(t, 1.0, back.Green, 1e-8)
	assert.InDelta(t, 1.0, back.Blue, 1e-8)
}

func TestLightnessCompanding(t *testing.T) {
	assert.Equal(t, 0.0, LightnessFromY(0))
	assert.InDelta(t, 100.0, LightnessFromY(1), 1e-12)
	assert.InDelta(t, 8.0, LightnessFromY(epsilon), 1e-9)

	for _, l := range []float64{0, 0.5, 7.9, 8, 8.1, 25, 50, 75, 99.5, 100} {
		assert.InDelta(t, l, LightnessFromY(YFromLightness(l)), 1e-10, "lightness %v", l)
	}
}

func TestRoundTripRGB(t *testing.T) {
	steps := []float64{0, 0.01, 0.04, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				c := RGB{Red: r, Green: g, Blue: b}

				got := c.XYZ().RGB()
				if diff := cmp.Diff(c, got, cmpopts.EquateApprox(0, 1e-8)); diff != "" {
					t.Fatalf("RGB->XYZ->RGB %v (-want +got):\n%s", c, diff)
				}

				got = c.HSLuv().RGB()
				if diff := cmp.Diff(c, got, cmpopts.EquateApprox(0, 1e-8)); diff != "" {
					t.Fatalf("RGB->HSLuv->RGB %v (-want +got):\n%s", c, diff)
				}

				got = c.HPLuv().RGB()
				if diff := cmp.Diff(c, got, cmpopts.EquateApprox(0, 1e-8)); diff != "" {
					t.Fatalf("RGB->HPLuv->RGB %v (-want +got):\n%s", c, diff)
				}
			}
		}
	}
}

func TestLCHHueRange(t *testing.T) {
	for h := 0.0; h < 360; h += 7.5 {
		rad := h * math.Pi / 180
		lch := LUV{L: 50, U: 30 * math.Cos(rad), V: 30 * math.Sin(rad)}.LCH()
		assert.GreaterOrEqual(t, lch.H, 0.0)
		assert.Less(t, lch.H, 360.0)
		assert.InDelta(t, 30.0, lch.C, 1e-12)
		if h > 0 {
			assert.InDelta(t, h, lch.H, 1e-9)
		}
	}

	// atan2(0, 0) carries no hue.
	assert.Equal(t, LCH{L: 42}, LUV{L: 42}.LCH())
}

func TestAchromaticGuards(t *testing.T) {
	for _, h := range []float64{0, 45, 180, 359} {
		lch := HSLuv{H: h, S: 0, L: 60}.LCH()
		assert.Equal(t, 0.0, lch.C, "hue %v", h)
		assert.Equal(t, 0.0, lch.H, "hue %v", h)

		lch = HPLuv{H: h, S: 0, L: 60}.LCH()
		assert.Equal(t, 0.0, lch.C, "hue %v", h)
		assert.Equal(t, 0.0, lch.H, "hue %v", h)
	}

	assert.Equal(t, 0.0, LCH{L: 60, C: 0, H: 200}.HSLuv().H)
	assert.Equal(t, 0.0, LCH{L: 60, C: 0, H: 200}.HPLuv().H)

	for _, l := range []float64{0, 1e-9, 99.99999999, 100} {
		for _, s := range []float64{0, 50, 100} {
			assert.Equal(t, 0.0, HSLuv{H: 120, S: s, L: l}.LCH().C, "hsluv l=%v s=%v", l, s)
			assert.Equal(t, 0.0, HPLuv{H: 120, S: s, L: l}.LCH().C, "hpluv l=%v s=%v", l, s)
		}
		assert.Equal(t, 0.0, LCH{L: l, C: 80, H: 120}.HSLuv().S, "lightness %v", l)
		assert.Equal(t, 0.0, LCH{L: l, C: 80, H: 120}.HPLuv().S, "lightness %v", l)
	}
}

func TestOutOfGamutNotClamped(t *testing.T) {
	// Full HPLuv saturation is in gamut; HSLuv saturation above 100 is not.
	over := HSLuv{H: 12.177050630061162, S: 120, L: 53.23711559542937}.RGB()
	assert.False(t, over.InGamut(1e-9))
	assert.Greater(t, over.Red, 1.0)

	// Pure red is far outside the pastel range.
	assert.Greater(t, RGB{Red: 1}.HPLuv().S, 100.0)
}

func TestTupleHelpers(t *testing.T) {
	h, s, l := RGBToHSLuv(1, 0, 0)
	assert.InDelta(t, 12.177050630061162, h, 1e-8)
	assert.InDelta(t, 100.0, s, 1e-8)
	assert.InDelta(t, 53.23711559542937, l, 1e-8)

	r, g, b := HSLuvToRGB(h, s, l)
	assert.InDelta(t, 1.0, r, 1e-8)
	assert.InDelta(t, 0.0, g, 1e-8)
	assert.InDelta(t, 0.0, b, 1e-8)

	h, s, l = RGBToHPLuv(0.2, 0.4, 0.6)
	r, g, b = HPLuvToRGB(h, s, l)
	assert.InDelta(t, 0.2, r, 1e-8)
	assert.InDelta(t, 0.4, g, 1e-8)
	assert.InDelta(t, 0.6, b, 1e-8)
}
