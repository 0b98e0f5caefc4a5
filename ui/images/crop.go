package images

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// ErrEmptyCrop indicates a crop region with no area.
var ErrEmptyCrop = errors.New("crop region has no area")

// ExtractRegion copies the pixels of r out of src into a fresh image whose
// bounds are exactly r's size. The copy is a direct pixel transfer with no
// resampling, so cropping stays lossless against the source resolution.
func ExtractRegion(src image.Image, r image.Rectangle) (*image.RGBA, error) {
	if src == nil {
		return nil, errors.New("nil source image")
	}
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return nil, ErrEmptyCrop
	}
	clipped := r.Intersect(src.Bounds())
	if clipped.Dx() <= 0 || clipped.Dy() <= 0 {
		return nil, fmt.Errorf("region %v outside source %v: %w", r, src.Bounds(), ErrEmptyCrop)
	}
	out := image.NewRGBA(image.Rect(0, 0, clipped.Dx(), clipped.Dy()))
	draw.Draw(out, out.Bounds(), src, clipped.Min, draw.Src)
	return out, nil
}
