package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/hsluv-tools-mcp/internal/hsluv"
)

// MaxPaletteSize is the largest palette GeneratePalette will build.
const MaxPaletteSize = 64

// PaletteOptions configures GeneratePalette.
type PaletteOptions struct {
	Count      int         // Number of colors, 1 to MaxPaletteSize
	Saturation float64     // 0-100
	Lightness  float64     // 0-100
	StartHue   float64     // Hue of the first color in degrees, wrapped into [0, 360)
	Space      hsluv.Space // hsluv (default) or hpluv
}

// PaletteResult holds a generated palette and, optionally, its swatch.
type PaletteResult struct {
	Space  hsluv.Space         `json:"space"`
	Colors []hsluv.Conversions `json:"colors"`
	Swatch *EncodedImage       `json:"swatch,omitempty"`
}

// GeneratePalette returns Count colors with evenly spaced hues and the same
// saturation and lightness.
//
// In HSLuv every color sits at the same fraction of its hue's gamut, so
// full saturation gives the most vivid palette possible. In HPLuv every
// color has the same chroma, which keeps the palette visually balanced at
// the cost of vividness.
func GeneratePalette(opts PaletteOptions) (*PaletteResult, error) {
	if opts.Count < 1 || opts.Count > MaxPaletteSize {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", MaxPaletteSize, opts.Count)
	}
	if opts.Space == "" {
		opts.Space = hsluv.SpaceHSLuv
	}

	step := 360 / float64(opts.Count)
	colors := make([]hsluv.Conversions, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		h := rotateHue(opts.StartHue, float64(i)*step)

		var (
			c   hsluv.Conversions
			err error
		)
		switch opts.Space {
		case hsluv.SpaceHSLuv, hsluv.SpaceHPLuv:
			c, err = hsluv.Convert(opts.Space, h, opts.Saturation, opts.Lightness)
		default:
			return nil, fmt.Errorf("palette space must be hsluv or hpluv, got %q", opts.Space)
		}
		if err != nil {
			return nil, fmt.Errorf("palette color %d: %w", i, err)
		}
		colors = append(colors, c)
	}

	return &PaletteResult{Space: opts.Space, Colors: colors}, nil
}

// Swatch geometry, in pixels.
const (
	swatchCellWidth  = 80
	swatchCellHeight = 64
	swatchColumns    = 8
	swatchLabelPad   = 4
)

// labelLightness is the HSLuv lightness above which labels are drawn dark.
const labelLightness = 60

// RenderSwatch draws one labeled cell per color, up to eight per row, and
// returns the result as PNG. Each cell shows the color's hex code in black
// or white, whichever contrasts better with its HSLuv lightness.
func RenderSwatch(colors []hsluv.Conversions) (*EncodedImage, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colors to render")
	}

	cols := len(colors)
	if cols > swatchColumns {
		cols = swatchColumns
	}
	rows := (len(colors) + swatchColumns - 1) / swatchColumns

	canvas := imaging.New(cols*swatchCellWidth, rows*swatchCellHeight, color.White)
	face := basicfont.Face7x13

	for i, c := range colors {
		cell := image.Rect(0, 0, swatchCellWidth, swatchCellHeight).Add(image.Pt(
			(i%swatchColumns)*swatchCellWidth,
			(i/swatchColumns)*swatchCellHeight,
		))
		draw.Draw(canvas, cell, image.NewUniform(c.RGB.NRGBA()), image.Point{}, draw.Src)

		var ink color.Color = color.White
		if c.HSLuv.L > labelLightness {
			ink = color.Black
		}
		d := &font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(ink),
			Face: face,
			Dot:  fixed.P(cell.Min.X+swatchLabelPad, cell.Max.Y-swatchLabelPad-face.Descent),
		}
		d.DrawString(c.Hex)
	}

	return encodePNG(canvas)
}
