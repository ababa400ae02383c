package preprocess

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestProcess_ReencodesAsJPEG(t *testing.T) {
	p := New()

	out, err := p.Process(context.Background(), encodePNG(t, 640, 480))
	if err != nil {
		t.Fatalf("Process() unexpected error = %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not decodable JPEG: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("small images must keep their dimensions, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestProcess_DownscalesOversizedImages(t *testing.T) {
	p := New()

	out, err := p.Process(context.Background(), encodePNG(t, 4096, 1024))
	if err != nil {
		t.Fatalf("Process() unexpected error = %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not decodable JPEG: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 2048 {
		t.Errorf("expected width capped at 2048, got %d", b.Dx())
	}
	if b.Dy() != 512 {
		t.Errorf("expected aspect ratio preserved, got height %d", b.Dy())
	}
}

func TestProcess_RejectsGarbage(t *testing.T) {
	p := New()

	if _, err := p.Process(context.Background(), []byte("not an image")); err == nil {
		t.Error("expected error for undecodable input")
	}
}
