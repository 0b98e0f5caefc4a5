package geom

import (
	"image"
	"math"
)

// Point is a location in canvas raster coordinates.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle in canvas raster coordinates.
type Box struct {
	X, Y, W, H float64
}

// Empty reports whether the box has no area after rounding to whole pixels.
func (b Box) Empty() bool {
	return math.Round(b.W) <= 0 || math.Round(b.H) <= 0
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.W && p.Y >= b.Y && p.Y <= b.Y+b.H
}

// Rect converts the box to an image.Rectangle, rounding each field.
func (b Box) Rect() image.Rectangle {
	x := int(math.Round(b.X))
	y := int(math.Round(b.Y))
	w := int(math.Round(b.W))
	h := int(math.Round(b.H))
	return image.Rect(x, y, x+w, y+h)
}

// DisplayMap converts on-screen display coordinates to canvas raster
// coordinates. The preview may be shown at a different size than the raster,
// so the ratios must be recomputed from the current sizes on every event.
type DisplayMap struct {
	RasterW, RasterH   float64
	DisplayW, DisplayH float64
}

// ToRaster maps a display-space position to raster space.
func (m DisplayMap) ToRaster(dispX, dispY float64) Point {
	if m.DisplayW <= 0 || m.DisplayH <= 0 {
		return Point{X: dispX, Y: dispY}
	}
	return Point{
		X: dispX * m.RasterW / m.DisplayW,
		Y: dispY * m.RasterH / m.DisplayH,
	}
}

// ClampBox rounds b to whole pixels and clamps it into
// [0, rasterW] x [0, rasterH]. The result is always fully contained in the
// raster and the operation is idempotent.
func ClampBox(b Box, rasterW, rasterH float64) Box {
	x := clamp(math.Round(b.X), 0, rasterW)
	y := clamp(math.Round(b.Y), 0, rasterH)
	w := clamp(math.Round(b.W), 0, rasterW-x)
	h := clamp(math.Round(b.H), 0, rasterH-y)
	return Box{X: x, Y: y, W: w, H: h}
}

// BoxToOriginal scales a raster-space box into original-image pixel space.
// Each field is scaled and rounded independently; used only on the crop path
// against the original full-resolution image.
func BoxToOriginal(b Box, origW, origH, rasterW, rasterH float64) Box {
	if rasterW <= 0 || rasterH <= 0 {
		return b
	}
	sx := origW / rasterW
	sy := origH / rasterH
	return Box{
		X: math.Round(b.X * sx),
		Y: math.Round(b.Y * sy),
		W: math.Round(b.W * sx),
		H: math.Round(b.H * sy),
	}
}

// FromCorners builds a box from two opposite corners in any drag direction.
func FromCorners(a, b Point) Box {
	x0, x1 := a.X, b.X
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := a.Y, b.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
