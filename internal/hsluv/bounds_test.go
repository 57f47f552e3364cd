package hsluv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBounds(t *testing.T) {
	want := Bounds{
		{Slope: -8.021739130434781, Intercept: -318.5281509120491},
		{Slope: 1.7136369050402815, Intercept: -301.39159129591684},
		{Slope: 1.3259649910233395, Intercept: -182.4777708884052},
		{Slope: -0.5881184326178706, Intercept: -358.4889217606728},
		{Slope: -0.12162162162162163, Intercept: 55.459496007885924},
		{Slope: -0.06114251821449107, Intercept: -123.49275783291912},
	}

	got := GetBounds(50)
	for i := range want {
		assert.InEpsilon(t, want[i].Slope, got[i].Slope, 1e-12, "line %d slope", i)
		assert.InEpsilon(t, want[i].Intercept, got[i].Intercept, 1e-12, "line %d intercept", i)
	}
}

func TestLineGeometry(t *testing.T) {
	assert.Equal(t, 5.0, Line{Slope: 0, Intercept: 5}.DistanceFromOrigin())
	assert.Equal(t, 5.0, Line{Slope: 0, Intercept: -5}.DistanceFromOrigin())
	assert.InDelta(t, math.Sqrt2, Line{Slope: 1, Intercept: 2}.DistanceFromOrigin(), 1e-15)

	horizontal := Line{Slope: 0, Intercept: 5}
	assert.InDelta(t, 5.0, horizontal.RayLengthUntilIntersect(math.Pi/2), 1e-12)
	assert.InDelta(t, -5.0, horizontal.RayLengthUntilIntersect(-math.Pi/2), 1e-12)
	assert.InDelta(t, 5*math.Sqrt2, horizontal.RayLengthUntilIntersect(math.Pi/4), 1e-12)
}

func TestMaxChromaKnownValues(t *testing.T) {
	assert.InDelta(t, 39.40312603554298, MaxSafeChromaForLightness(50), 1e-9)

	tests := []struct {
		hue  float64
		want float64
	}{
		{0, 137.61884523630928},
		{90, 55.459496007885924},
		{180, 39.70811637385979},
		{270, 123.49275783291912},
		{12.177050630061776, 168.1515751944557},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, MaxChromaForLightnessHue(50, tt.hue), 1e-9, "hue %v", tt.hue)
	}

	// The pure red primary sits on a corner of the hexagon.
	red := RGB{Red: 1}.XYZ().LUV().LCH()
	assert.InDelta(t, red.C, MaxChromaForLightnessHue(red.L, red.H), 1e-9)
}

func TestBoundaryTightness(t *testing.T) {
	for l := 0.5; l < 100; l += 3.5 {
		for h := 0.0; h < 360; h += 11.25 {
			lch := HSLuv{H: h, S: 100, L: l}.LCH()
			require.Equal(t, MaxChromaForLightnessHue(l, h), lch.C, "l=%v h=%v", l, h)

			hsl := lch.HSLuv()
			assert.InDelta(t, 100.0, hsl.S, 1e-9, "l=%v h=%v", l, h)

			rgb := lch.LUV().XYZ().RGB()
			assert.True(t, rgb.InGamut(1e-9), "l=%v h=%v rgb=%v", l, h, rgb)
		}
	}
}

func TestSafeChromaBelowHueChroma(t *testing.T) {
	for l := 1.0; l < 100; l += 4.5 {
		safe := MaxSafeChromaForLightness(l)
		for h := 0.0; h < 360; h += 2.5 {
			assert.LessOrEqual(t, safe, MaxChromaForLightnessHue(l, h)+1e-9, "l=%v h=%v", l, h)
		}

		// Full HPLuv saturation is in gamut for every hue.
		for h := 0.0; h < 360; h += 30 {
			rgb := HPLuv{H: h, S: 100, L: l}.RGB()
			assert.True(t, rgb.InGamut(1e-9), "l=%v h=%v rgb=%v", l, h, rgb)
		}
	}
}

func TestDegenerateLightness(t *testing.T) {
	assert.Equal(t, 0.0, MaxSafeChromaForLightness(0))
	assert.Equal(t, Unbounded, MaxChromaForLightnessHue(0, 0))

	assert.Less(t, MaxSafeChromaForLightness(99.99999999), 1e-7)
	assert.Less(t, MaxChromaForLightnessHue(99.99999999, 200), 1e-6)
}

func TestMaxChromaAllBehind(t *testing.T) {
	var b Bounds
	for i := range b {
		b[i] = Line{Slope: 0, Intercept: -1}
	}
	assert.Equal(t, Unbounded, b.MaxChroma(90))
	assert.Equal(t, 1.0, b.MaxSafeChroma())
}

func TestBoundsAllocationFree(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = MaxChromaForLightnessHue(50, 120)
		_ = MaxSafeChromaForLightness(50)
	})
	assert.Zero(t, allocs)
}
