package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/hsluv-tools-mcp/internal/hsluv"
)

var identity = Adjustment{SaturationScale: 1}

func TestAdjustHSLuv_Identity(t *testing.T) {
	img := createPatternImage(20, 20)

	result, err := AdjustHSLuv(img, nil, identity)
	if err != nil {
		t.Fatalf("AdjustHSLuv failed: %v", err)
	}
	if result.Adjustment.Space != hsluv.SpaceHSLuv {
		t.Errorf("default space: got %s, want hsluv", result.Adjustment.Space)
	}

	out := decodeResult(t, &result.EncodedImage)
	for _, p := range []image.Point{{2, 2}, {18, 2}, {2, 18}, {18, 18}} {
		wr, wg, wb, _ := rgbAt(img, p.X, p.Y)
		gr, gg, gb, ga := rgbAt(out, p.X, p.Y)
		if wr != gr || wg != gg || wb != gb || ga != 255 {
			t.Errorf("pixel %v: got (%d,%d,%d,%d), want (%d,%d,%d,255)", p, gr, gg, gb, ga, wr, wg, wb)
		}
	}
}

func TestAdjustHSLuv_Desaturate(t *testing.T) {
	img := fillImage(4, 4, color.RGBA{255, 0, 0, 255})

	for _, space := range []hsluv.Space{hsluv.SpaceHSLuv, hsluv.SpaceHPLuv} {
		t.Run(string(space), func(t *testing.T) {
			result, err := AdjustHSLuv(img, nil, Adjustment{Space: space})
			if err != nil {
				t.Fatalf("AdjustHSLuv failed: %v", err)
			}

			r, g, b, _ := rgbAt(decodeResult(t, &result.EncodedImage), 1, 1)
			if r != g || g != b {
				t.Errorf("zero saturation should give gray, got (%d,%d,%d)", r, g, b)
			}
			// Lightness is kept, so red turns into a mid gray.
			if r < 100 || r > 150 {
				t.Errorf("gray level %d does not match red's lightness", r)
			}
		})
	}
}

func TestAdjustHSLuv_HueRotation(t *testing.T) {
	img := fillImage(4, 4, color.RGBA{255, 0, 0, 255})
	red := hsluv.RGB{Red: 1}.HSLuv()

	result, err := AdjustHSLuv(img, nil, Adjustment{HueShift: 120, SaturationScale: 1})
	if err != nil {
		t.Fatalf("AdjustHSLuv failed: %v", err)
	}

	px, _ := hsluv.RGBFromColor(decodeResult(t, &result.EncodedImage).At(0, 0))
	got := px.HSLuv()
	want := rotateHue(red.H, 120)
	if d := got.H - want; d > 1 || d < -1 {
		t.Errorf("hue: got %.2f, want %.2f", got.H, want)
	}
	if d := got.L - red.L; d > 0.5 || d < -0.5 {
		t.Errorf("lightness drifted: got %.2f, want %.2f", got.L, red.L)
	}
}

func TestAdjustHSLuv_LightnessClamp(t *testing.T) {
	img := fillImage(4, 4, color.RGBA{40, 80, 160, 255})

	result, err := AdjustHSLuv(img, nil, Adjustment{SaturationScale: 1, LightnessShift: 150})
	if err != nil {
		t.Fatalf("AdjustHSLuv failed: %v", err)
	}
	if r, g, b, _ := rgbAt(decodeResult(t, &result.EncodedImage), 0, 0); r != 255 || g != 255 || b != 255 {
		t.Errorf("lightness past 100 should give white, got (%d,%d,%d)", r, g, b)
	}
}

func TestAdjustHSLuv_PreservesAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{0, 0, 255, 128})

	result, err := AdjustHSLuv(img, nil, identity)
	if err != nil {
		t.Fatalf("AdjustHSLuv failed: %v", err)
	}
	out := decodeResult(t, &result.EncodedImage)

	if _, _, b, a := rgbAt(out, 0, 0); a != 128 || b < 250 {
		t.Errorf("translucent blue: got b=%d a=%d, want b~255 a=128", b, a)
	}
	if _, _, _, a := rgbAt(out, 1, 0); a != 0 {
		t.Errorf("transparent pixel: got alpha %d, want 0", a)
	}
}

func TestAdjustHSLuv_Region(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := AdjustHSLuv(img, &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, identity)
	if err != nil {
		t.Fatalf("AdjustHSLuv failed: %v", err)
	}
	if result.Width != 50 || result.Height != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", result.Width, result.Height)
	}
}

func TestAdjustHSLuv_Errors(t *testing.T) {
	img := createPatternImage(10, 10)

	tests := []struct {
		name   string
		region *Region
		adj    Adjustment
	}{
		{"bad space", nil, Adjustment{Space: "lch", SaturationScale: 1}},
		{"negative saturation", nil, Adjustment{SaturationScale: -1}},
		{"bad region", &Region{X1: 0, Y1: 0, X2: 20, Y2: 5}, identity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := AdjustHSLuv(img, tt.region, tt.adj); err == nil {
				t.Error("AdjustHSLuv should fail")
			}
		})
	}
}

func TestRotateHue(t *testing.T) {
	tests := []struct {
		h, shift, want float64
	}{
		{10, 20, 30},
		{350, 20, 10},
		{10, -20, 350},
		{0, 720, 0},
		{180, -540, 0},
	}
	for _, tt := range tests {
		if got := rotateHue(tt.h, tt.shift); got != tt.want {
			t.Errorf("rotateHue(%v, %v) = %v, want %v", tt.h, tt.shift, got, tt.want)
		}
	}
}
