package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region is a rectangle within an image. (X1, Y1) is the inclusive top-left
// corner and (X2, Y2) the exclusive bottom-right corner.
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// Rect returns r as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// validate checks that r is non-empty and lies inside bounds.
func (r Region) validate(bounds image.Rectangle) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if !r.Rect().In(bounds) {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

// cropRegion returns the part of img covered by region, or img itself when
// region is nil. The crop is rebased to start at (0, 0).
func cropRegion(img image.Image, region *Region) (image.Image, error) {
	if region == nil {
		return img, nil
	}
	if err := region.validate(img.Bounds()); err != nil {
		return nil, err
	}
	return imaging.Crop(img, region.Rect()), nil
}

// EncodedImage is a PNG image ready to return to an MCP client.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// encodePNG encodes img as base64 PNG.
func encodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b := img.Bounds()
	return &EncodedImage{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
