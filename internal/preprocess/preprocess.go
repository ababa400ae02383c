package preprocess

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// maxDimension caps the longer edge before the recognition call;
	// larger uploads are downscaled to keep request sizes reasonable
	maxDimension = 2048

	jpegQuality = 90
)

// Processor normalizes uploaded menu photos: decodes jpeg/png/webp/tiff,
// downscales oversized images and re-encodes as JPEG for the recognition
// service.
type Processor struct {
	maxDim int
}

// New creates a Processor with the default size limit
func New() *Processor {
	return &Processor{maxDim: maxDimension}
}

// Process returns the normalized image bytes
func (p *Processor) Process(ctx context.Context, data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > p.maxDim || h > p.maxDim {
		scale := float64(p.maxDim) / float64(w)
		if h > w {
			scale = float64(p.maxDim) / float64(h)
		}
		nw := int(float64(w) * scale)
		nh := int(float64(h) * scale)

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
