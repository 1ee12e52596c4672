package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// createTestPNG generates a small solid-color PNG for tests.
func createTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestValidateImagePNG(t *testing.T) {
	format, err := ValidateImage(createTestPNG(t))
	if err != nil {
		t.Fatalf("ValidateImage failed on valid PNG: %v", err)
	}
	if format != "png" {
		t.Errorf("Expected format png, got %q", format)
	}
}

func TestValidateImageRejectsGarbage(t *testing.T) {
	_, err := ValidateImage([]byte("definitely not an image"))
	if err == nil {
		t.Error("Expected error for non-image data")
	}
}

func TestValidateImageRejectsEmpty(t *testing.T) {
	_, err := ValidateImage(nil)
	if err == nil {
		t.Error("Expected error for empty data")
	}
}
