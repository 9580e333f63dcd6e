package media_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/sbeeredd04/trecgen/internal/media"
)

func TestFitWithin(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{500, 400, 1000, 800, 500, 400},   // already inside
		{1000, 800, 1000, 800, 1000, 800}, // exactly at the bounds
		{2000, 800, 1000, 800, 1000, 400}, // width-limited
		{1000, 1600, 1000, 800, 500, 800}, // height-limited
		{2000, 1600, 1000, 800, 1000, 800},
		{4000, 100, 1000, 800, 1000, 25},
		{0, 0, 1000, 800, 0, 0}, // degenerate input passes through
	}
	for _, tc := range cases {
		w, h := media.FitWithin(tc.w, tc.h, tc.maxW, tc.maxH)
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("FitWithin(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
				tc.w, tc.h, tc.maxW, tc.maxH, w, h, tc.wantW, tc.wantH)
		}
	}
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestProcessPassesSmallImage(t *testing.T) {
	img, err := media.Process(testPNG(t, 640, 480))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if img.Width != 640 || img.Height != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", img.Width, img.Height)
	}
	decoded, err := jpeg.Decode(bytes.NewReader(img.JPEG))
	if err != nil {
		t.Fatalf("output is not valid JPEG: %v", err)
	}
	if decoded.Bounds().Dx() != 640 {
		t.Errorf("decoded width = %d", decoded.Bounds().Dx())
	}
}

func TestProcessDownscalesLargeImage(t *testing.T) {
	img, err := media.Process(testPNG(t, 2000, 500))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if img.Width != 1000 || img.Height != 250 {
		t.Errorf("dimensions = %dx%d, want 1000x250", img.Width, img.Height)
	}
}

func TestProcessRejectsGarbage(t *testing.T) {
	if _, err := media.Process([]byte("not an image at all")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestQRCode(t *testing.T) {
	data, err := media.QRCode("https://example.com/videos/walkthrough.mp4", 512)
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 512 {
		t.Errorf("QR size = %dx%d, want 512x512", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCode128(t *testing.T) {
	data, err := media.Code128("INS-2024-0117", 400, 60)
	if err != nil {
		t.Fatalf("code128: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 60 {
		t.Errorf("strip size = %dx%d, want 400x60", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
