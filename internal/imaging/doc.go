// Package imaging provides the image operations behind the MCP server's
// image tools: loading and caching, pixel sampling, palette extraction,
// HSLuv-space adjustment, and palette swatch rendering.
//
// Colors are converted with package hsluv, so every sample and palette
// entry is reported in sRGB, XYZ, LUV, LCH, HSLuv and HPLuv at once.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner.
// For regions, (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Alpha
//
// Go images usually store premultiplied color. Samples are un-premultiplied
// before conversion, fully transparent pixels carry no color and are
// skipped by DominantColors, and AdjustHSLuv preserves each pixel's alpha.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless
// and never modify their input images.
//
// # Output Images
//
// Functions that produce images return an EncodedImage holding a base64
// PNG, ready to embed in a JSON tool result.
package imaging
