package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// cachedImage is a decoded image together with the format name reported
// by the decoder.
type cachedImage struct {
	img    image.Image
	format string
}

// ImageCache keeps decoded images keyed by path so repeated tool calls on
// the same file skip disk I/O and decoding.
//
// Each entry also remembers the format name reported by the decoder, which
// LoadImageInfo reports without reopening the file.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images stay in memory until removed with Evict or Clear. The
// server exposes both: image_load with reload evicts one path, and
// image_cache_clear drops everything.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Sample or adjust img...
//	cache.Evict("/path/to/image.png") // Next Load reads the file again
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]cachedImage
}

// NewImageCache creates an empty image cache, ready for concurrent use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cachedImage),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats
//     are PNG, JPEG and GIF.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the
//     format and color model (e.g., *image.NRGBA, *image.Paletted,
//     *image.YCbCr).
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The path string is the cache key, so a relative and an absolute path to
// the same file are cached separately.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a valid PNG, JPEG, or GIF image
func (c *ImageCache) Load(path string) (image.Image, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.img, nil
}

func (c *ImageCache) load(path string) (cachedImage, error) {
	c.mu.RLock()
	entry, ok := c.images[path]
	c.mu.RUnlock()
	if ok {
		return entry, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cachedImage{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return cachedImage{}, fmt.Errorf("failed to decode image: %w", err)
	}

	entry = cachedImage{img: img, format: format}
	c.mu.Lock()
	c.images[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache and returns how many were
// dropped.
//
// After Clear, every path is decoded from disk again on its next Load.
func (c *ImageCache) Clear() int {
	c.mu.Lock()
	n := len(c.images)
	c.images = make(map[string]cachedImage)
	c.mu.Unlock()
	return n
}

// Evict removes one image from the cache.
//
// Parameters:
//   - path: The exact path string used when the image was loaded.
//
// Returns:
//   - bool: True if an entry was removed. A path that is not cached is
//     left alone and reports false.
//
// After eviction, the next Load for this path reads the file again, which
// picks up changes made on disk since the first load.
func (c *ImageCache) Evict(path string) bool {
	c.mu.Lock()
	_, ok := c.images[path]
	delete(c.images, path)
	c.mu.Unlock()
	return ok
}

// ImageInfo describes a loaded image file.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the decoder name: "png", "jpeg" or "gif".
	Format string `json:"format"`

	// ColorModel names the pixel storage: "rgba", "nrgba", "rgba64",
	// "nrgba64", "gray", "gray16", "paletted", "ycbcr" or "other".
	ColorModel string `json:"color_model"`

	// ColorDepth is "8-bit" or "16-bit" per channel.
	ColorDepth string `json:"color_depth"`

	HasAlpha      bool  `json:"has_alpha"`
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image into the cache and describes it.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//
// Returns:
//   - *ImageInfo: Metadata about the image.
//   - error: Non-nil if the image cannot be loaded or the file cannot be stat'd.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	info := &ImageInfo{
		Width:         entry.img.Bounds().Dx(),
		Height:        entry.img.Bounds().Dy(),
		Format:        entry.format,
		ColorModel:    "other",
		ColorDepth:    "8-bit",
		FileSizeBytes: stat.Size(),
	}

	switch img := entry.img.(type) {
	case *image.RGBA:
		info.ColorModel, info.HasAlpha = "rgba", true
	case *image.NRGBA:
		info.ColorModel, info.HasAlpha = "nrgba", true
	case *image.RGBA64:
		info.ColorModel, info.HasAlpha, info.ColorDepth = "rgba64", true, "16-bit"
	case *image.NRGBA64:
		info.ColorModel, info.HasAlpha, info.ColorDepth = "nrgba64", true, "16-bit"
	case *image.Gray:
		info.ColorModel = "gray"
	case *image.Gray16:
		info.ColorModel, info.ColorDepth = "gray16", "16-bit"
	case *image.Paletted:
		info.ColorModel = "paletted"
		info.HasAlpha = hasTransparentEntry(img.Palette)
	case *image.YCbCr:
		info.ColorModel = "ycbcr"
	}

	return info, nil
}

// hasTransparentEntry reports whether any palette color is not fully opaque.
func hasTransparentEntry(p []color.Color) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return true
		}
	}
	return false
}

// DimensionsResult is the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns an image's size, loading it into the cache if needed.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	return &DimensionsResult{
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
