package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"
)

// DefaultMaxPixels caps the pixel count of an image sent to a
// recognizer. Scans above the cap are downscaled; very large pages
// slow Tesseract down without improving accuracy.
const DefaultMaxPixels = 4_000_000

// PrepareImage re-encodes an input payload as PNG, downscaling it when
// it exceeds maxPixels. Zero maxPixels means DefaultMaxPixels. Images
// at or under the cap pass through unchanged.
func PrepareImage(data []byte, maxPixels int) ([]byte, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels <= maxPixels {
		return data, nil
	}

	scale := math.Sqrt(float64(maxPixels) / float64(pixels))
	w := int(float64(bounds.Dx()) * scale)
	h := int(float64(bounds.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode scaled image: %w", err)
	}
	return buf.Bytes(), nil
}
