// Package media acquires and prepares the raster content embedded in the
// report: item photos fetched over HTTP and scannable codes generated for
// video references. Fetching is the only concurrent part of generation;
// results are buffered and handed back to the renderer in plan order.
package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Default display bounds for embedded photos, in pixels. Mirrors the source
// tool's limits so re-encoded images stay small.
const (
	maxPhotoWidth  = 1000
	maxPhotoHeight = 800
)

const jpegQuality = 85

// Image is a processed raster ready for embedding: JPEG bytes plus pixel
// dimensions.
type Image struct {
	JPEG   []byte
	Width  int
	Height int
}

// Process decodes raw image bytes (JPEG, PNG, GIF, WebP, BMP or TIFF),
// downscales anything larger than the display bounds with aspect ratio
// preserved, and re-encodes to JPEG.
func Process(data []byte) (*Image, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("media: decoding image: %w", err)
	}

	b := src.Bounds()
	w, h := FitWithin(b.Dx(), b.Dy(), maxPhotoWidth, maxPhotoHeight)
	if w != b.Dx() || h != b.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("media: encoding %s image as JPEG: %w", format, err)
	}
	return &Image{JPEG: buf.Bytes(), Width: w, Height: h}, nil
}

// FitWithin scales (w, h) down to fit inside (maxW, maxH) preserving aspect
// ratio. Dimensions already inside the bounds are returned unchanged.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	ratio := float64(w) / float64(h)
	if w > maxW {
		w = maxW
		h = int(float64(w) / ratio)
	}
	if h > maxH {
		h = maxH
		w = int(float64(h) * ratio)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
