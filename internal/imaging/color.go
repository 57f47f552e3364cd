package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/hsluv-tools-mcp/internal/hsluv"
)

// ColorResult is a sampled pixel in every supported color representation.
//
// The embedded hsluv.Conversions carries hex, RGB, XYZ, LUV, LCH, HSLuv and
// HPLuv. Alpha is reported separately because the color spaces are opaque;
// the channels of a translucent pixel are un-premultiplied before conversion.
type ColorResult struct {
	hsluv.Conversions
	Alpha uint8 `json:"alpha"` // Opacity (0 = transparent, 255 = opaque)
}

// SampleColor reads the pixel at (x, y) and converts it to every color space.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y).
//   - error: Non-nil if coordinates are outside the image bounds.
//
// A fully transparent pixel has no meaningful color; it is reported as black
// with Alpha 0.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	px := img.At(x, y)
	_, _, _, a := px.RGBA()
	rgb, _ := hsluv.RGBFromColor(px)

	return &ColorResult{
		Conversions: hsluv.ConversionsFromRGB(rgb),
		Alpha:       uint8(a >> 8),
	}, nil
}

// LabeledPoint is a pixel coordinate with an optional label such as
// "button_background".
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult combines a color sample with its location and label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point in one call. An out-of-bounds point
// fails the whole call; no partial results are returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// ColorFrequency is one palette entry of DominantColors.
type ColorFrequency struct {
	Hex        string      `json:"hex"`        // Quantized color "#rrggbb"
	Percentage float64     `json:"percentage"` // Share of opaque pixels (0-100)
	RGB        hsluv.RGB   `json:"rgb"`
	HSLuv      hsluv.HSLuv `json:"hsluv"`
	HPLuv      hsluv.HPLuv `json:"hpluv"`
}

// DominantColorsResult lists the most common colors of an image.
type DominantColorsResult struct {
	Colors        []ColorFrequency `json:"colors"`
	SampledPixels int              `json:"sampled_pixels"`
	Downscaled    bool             `json:"downscaled"`
}

// Palette orderings accepted by DominantColors.
const (
	SortByFrequency = "frequency"
	SortByHue       = "hue"
	SortByLightness = "lightness"
)

// maxAnalysisSide bounds the longer side of the image DominantColors scans.
// Larger images are shrunk with imaging.Fit first.
const maxAnalysisSide = 512

// quantStep is the per-channel bucket width used to group similar colors.
const quantStep = 16

// DominantColors extracts the count most common colors from an image or
// region and annotates each with its HSLuv and HPLuv coordinates.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return.
//   - region: Optional region to analyze; nil means the whole image.
//   - sortBy: SortByFrequency (default), SortByHue or SortByLightness.
//     The top count colors are always chosen by frequency; sortBy only
//     orders the result.
//
// # Color Quantization
//
// Each 8-bit channel is rounded down to a multiple of 16, so #f0f0f0 and
// #fafafa share a bucket. Fully transparent pixels are skipped.
func DominantColors(img image.Image, count int, region *Region, sortBy string) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	switch sortBy {
	case "":
		sortBy = SortByFrequency
	case SortByFrequency, SortByHue, SortByLightness:
	default:
		return nil, fmt.Errorf("unknown sort order: %s", sortBy)
	}

	src, err := cropRegion(img, region)
	if err != nil {
		return nil, err
	}

	downscaled := false
	if b := src.Bounds(); b.Dx() > maxAnalysisSide || b.Dy() > maxAnalysisSide {
		src = imaging.Fit(src, maxAnalysisSide, maxAnalysisSide, imaging.Box)
		downscaled = true
	}

	type bucket struct{ r, g, b uint8 }
	counts := make(map[bucket]int)
	total := 0

	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgb, ok := hsluv.RGBFromColor(src.At(x, y))
			if !ok {
				continue
			}
			px := rgb.NRGBA()
			counts[bucket{px.R / quantStep * quantStep, px.G / quantStep * quantStep, px.B / quantStep * quantStep}]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for k, n := range counts {
		rgb := hsluv.RGB{Red: float64(k.r) / 255, Green: float64(k.g) / 255, Blue: float64(k.b) / 255}
		colors = append(colors, ColorFrequency{
			Hex:        rgb.Hex(),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        rgb,
			HSLuv:      rgb.HSLuv(),
			HPLuv:      rgb.HPLuv(),
		})
	}

	// Hex breaks ties so the output does not depend on map order.
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})
	if len(colors) > count {
		colors = colors[:count]
	}

	switch sortBy {
	case SortByHue:
		sort.SliceStable(colors, func(i, j int) bool { return colors[i].HSLuv.H < colors[j].HSLuv.H })
	case SortByLightness:
		sort.SliceStable(colors, func(i, j int) bool { return colors[i].HSLuv.L < colors[j].HSLuv.L })
	}

	return &DominantColorsResult{
		Colors:        colors,
		SampledPixels: total,
		Downscaled:    downscaled,
	}, nil
}
