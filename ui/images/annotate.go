package images

import (
	"image"
	"image/color"
)

// Preview marker colors.
var (
	calibrationColor = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	monthColor       = color.RGBA{R: 40, G: 90, B: 220, A: 255}
	cropColor        = color.RGBA{R: 30, G: 180, B: 90, A: 255}
)

// DrawCalibrationMarker paints a cross at (x, y).
func DrawCalibrationMarker(dst *image.RGBA, x, y int) {
	drawCross(dst, x, y, 6, calibrationColor)
}

// DrawMonthMarker paints a filled square dot at (x, y).
func DrawMonthMarker(dst *image.RGBA, x, y int) {
	drawDot(dst, x, y, 3, monthColor)
}

// DrawCropRect outlines the crop rectangle.
func DrawCropRect(dst *image.RGBA, r image.Rectangle) {
	if dst == nil || r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		setIfInside(dst, x, r.Min.Y, cropColor)
		setIfInside(dst, x, r.Max.Y-1, cropColor)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		setIfInside(dst, r.Min.X, y, cropColor)
		setIfInside(dst, r.Max.X-1, y, cropColor)
	}
}

func drawCross(dst *image.RGBA, x, y, arm int, c color.RGBA) {
	if dst == nil {
		return
	}
	for d := -arm; d <= arm; d++ {
		setIfInside(dst, x+d, y, c)
		setIfInside(dst, x, y+d, c)
	}
}

func drawDot(dst *image.RGBA, x, y, radius int, c color.RGBA) {
	if dst == nil {
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			setIfInside(dst, x+dx, y+dy, c)
		}
	}
}

func setIfInside(dst *image.RGBA, x, y int, c color.RGBA) {
	if (image.Point{X: x, Y: y}).In(dst.Bounds()) {
		dst.SetRGBA(x, y, c)
	}
}
