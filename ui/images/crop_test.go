package images

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// gradient fills an image with position-dependent colors so pixel identity
// survives comparisons across crops.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}

func TestExtractRegion_ExactDimensions(t *testing.T) {
	src := gradient(100, 80)
	out, err := ExtractRegion(src, image.Rect(10, 20, 50, 60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 40 {
		t.Fatalf("expected 40x40, got %v", out.Bounds())
	}
}

func TestExtractRegion_Lossless(t *testing.T) {
	src := gradient(100, 80)
	const sx, sy = 10, 20
	out, err := ExtractRegion(src, image.Rect(sx, sy, sx+40, sy+30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for py := 0; py < 30; py++ {
		for px := 0; px < 40; px++ {
			if out.RGBAAt(px, py) != src.RGBAAt(sx+px, sy+py) {
				t.Fatalf("pixel (%d,%d) differs from source (%d,%d)", px, py, sx+px, sy+py)
			}
		}
	}
}

func TestExtractRegion_SecondCropStillLossless(t *testing.T) {
	src := gradient(200, 200)
	first, err := ExtractRegion(src, image.Rect(50, 50, 150, 150))
	if err != nil {
		t.Fatalf("first crop: %v", err)
	}
	second, err := ExtractRegion(first, image.Rect(10, 10, 40, 40))
	if err != nil {
		t.Fatalf("second crop: %v", err)
	}
	if second.RGBAAt(0, 0) != src.RGBAAt(60, 60) {
		t.Fatalf("second crop resampled: %v vs %v", second.RGBAAt(0, 0), src.RGBAAt(60, 60))
	}
}

func TestExtractRegion_EmptyRegion(t *testing.T) {
	src := gradient(10, 10)
	if _, err := ExtractRegion(src, image.Rect(3, 3, 3, 8)); !errors.Is(err, ErrEmptyCrop) {
		t.Fatalf("expected ErrEmptyCrop, got %v", err)
	}
}

func TestExtractRegion_OutsideSource(t *testing.T) {
	src := gradient(10, 10)
	if _, err := ExtractRegion(src, image.Rect(20, 20, 30, 30)); !errors.Is(err, ErrEmptyCrop) {
		t.Fatalf("expected ErrEmptyCrop for disjoint region, got %v", err)
	}
}

func TestExtractRegion_NilSource(t *testing.T) {
	if _, err := ExtractRegion(nil, image.Rect(0, 0, 1, 1)); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestScaleToFit_ReturnsOriginalWhenSmall(t *testing.T) {
	src := gradient(50, 40)
	if out := ScaleToFit(src, 100, 100); out != image.Image(src) {
		t.Fatalf("expected original image back")
	}
}

func TestScaleToFit_PreservesAspectWithinBounds(t *testing.T) {
	src := gradient(200, 100)
	out := ScaleToFit(src, 100, 100)
	b := out.Bounds()
	if b.Dx() > 100 || b.Dy() > 100 {
		t.Fatalf("scaled image exceeds bounds: %v", b)
	}
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("aspect not preserved: %v", b)
	}
}
