package chart

import "math"

// minPixelRange is the smallest vertical distance between the two reference
// points that still yields a usable mapping.
const minPixelRange = 1e-6

// Calibration converts raster-space positions to data-axis values. It is
// built from the bottom and top reference clicks plus the axis values the
// user assigned to them, and is immutable once constructed.
type Calibration struct {
	bottomY float64 // raster Y of the vmin reference
	topY    float64 // raster Y of the vmax reference
	vmin    float64
	vmax    float64
}

// NewCalibration builds the pixel-to-value mapping from the bottom and top
// reference points. Only the vertical coordinates participate: the axis is
// assumed vertical, so X is ignored throughout. vmin > vmax is permitted and
// produces a negative-slope mapping.
func NewCalibration(bottom, top Point, vmin, vmax float64) (*Calibration, error) {
	if !isFinite(vmin) || !isFinite(vmax) {
		return nil, ErrInvalidInput
	}
	if math.Abs(bottom.Y-top.Y) < minPixelRange {
		return nil, ErrInvalidCalibration
	}
	return &Calibration{bottomY: bottom.Y, topY: top.Y, vmin: vmin, vmax: vmax}, nil
}

// ValueAt returns the data-axis value at p. The bottom reference maps to vmin
// and the top reference to vmax exactly; everything else interpolates (or
// extrapolates) linearly along Y.
func (c *Calibration) ValueAt(p Point) float64 {
	pixelRange := c.bottomY - c.topY
	return c.vmin + (c.bottomY-p.Y)/pixelRange*(c.vmax-c.vmin)
}

// Bounds returns the configured axis range.
func (c *Calibration) Bounds() (vmin, vmax float64) {
	return c.vmin, c.vmax
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
