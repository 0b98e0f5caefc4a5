package model

import (
	"image"

	"github.com/soocke/chart-digitizer-go/domain/chart"
	"github.com/soocke/chart-digitizer-go/ui/images"
)

// ChartModel is the single holder of digitizer state: the working raster
// image, the full-resolution original it was derived from, the click store,
// the calibration and the extracted results. Presenters mutate it through
// methods only; there is no ambient global state. No synchronization:
// updates occur on the UI thread.
type ChartModel struct {
	working  *image.RGBA // raster the user clicks on (bounded by canvas size)
	original *image.RGBA // full-resolution reference; crops read from here

	canvasMaxW int
	canvasMaxH int

	store *chart.PointStore
	cal   *chart.Calibration

	rows       []chart.Row
	total      float64
	hasResults bool
}

// NewChartModel returns an empty model. canvasMaxW/H bound the working
// raster: larger originals are shown through a scaled working copy while the
// original is kept for lossless cropping.
func NewChartModel(canvasMaxW, canvasMaxH int) *ChartModel {
	return &ChartModel{canvasMaxW: canvasMaxW, canvasMaxH: canvasMaxH, store: chart.NewPointStore()}
}

// SetImage installs a newly loaded image as both original and working copy
// and clears every derived entity: points, calibration, results.
func (m *ChartModel) SetImage(original *image.RGBA) {
	if m == nil || original == nil {
		return
	}
	m.original = original
	m.working = original
	if scaled, ok := images.ScaleToFit(original, m.canvasMaxW, m.canvasMaxH).(*image.RGBA); ok {
		m.working = scaled
	}
	m.Reset()
}

// ApplyCrop installs the crop result. The cropped image becomes both the new
// original (so a second crop is also lossless) and the working raster at
// exactly the crop's pixel dimensions. Derived state clears as on SetImage.
func (m *ChartModel) ApplyCrop(cropped *image.RGBA) {
	if m == nil || cropped == nil {
		return
	}
	m.original = cropped
	m.working = cropped
	m.Reset()
}

// Reset clears points, calibration and results without touching the image.
func (m *ChartModel) Reset() {
	if m == nil {
		return
	}
	m.store.Reset()
	m.cal = nil
	m.clearResults()
}

// HasImage reports whether a chart has been loaded.
func (m *ChartModel) HasImage() bool { return m != nil && m.working != nil }

// Working returns the raster image the user clicks on.
func (m *ChartModel) Working() *image.RGBA {
	if m == nil {
		return nil
	}
	return m.working
}

// Original returns the full-resolution reference image.
func (m *ChartModel) Original() *image.RGBA {
	if m == nil {
		return nil
	}
	return m.original
}

// RasterSize returns the working raster dimensions.
func (m *ChartModel) RasterSize() (w, h float64) {
	if m == nil || m.working == nil {
		return 0, 0
	}
	b := m.working.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// OriginalSize returns the original image dimensions.
func (m *ChartModel) OriginalSize() (w, h float64) {
	if m == nil || m.original == nil {
		return 0, 0
	}
	b := m.original.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Store exposes the click sequences for rendering.
func (m *ChartModel) Store() *chart.PointStore {
	if m == nil {
		return nil
	}
	return m.store
}

// AddCalibrationPoint appends a reference click (no-op past two).
func (m *ChartModel) AddCalibrationPoint(p chart.Point) bool {
	if m == nil || !m.HasImage() {
		return false
	}
	return m.store.AddCalibration(p)
}

// AddMonthPoint appends a month click. Rejected while uncalibrated or past
// twelve points. complete reports that this click was the twelfth.
func (m *ChartModel) AddMonthPoint(p chart.Point) (added, complete bool) {
	if m == nil || m.cal == nil {
		return false, false
	}
	if !m.store.AddMonth(p) {
		return false, false
	}
	return true, m.store.MonthsComplete()
}

// UndoMonthPoint pops the last month click and drops any computed results.
func (m *ChartModel) UndoMonthPoint() bool {
	if m == nil || !m.store.UndoMonth() {
		return false
	}
	m.clearResults()
	return true
}

// SetCalibration installs the pixel-to-value mapping. Passing nil clears it.
// Results are dropped either way: they derive from the mapping.
func (m *ChartModel) SetCalibration(cal *chart.Calibration) {
	if m == nil {
		return
	}
	m.cal = cal
	m.clearResults()
}

// Calibration returns the current mapping, if any.
func (m *ChartModel) Calibration() (*chart.Calibration, bool) {
	if m == nil || m.cal == nil {
		return nil, false
	}
	return m.cal, true
}

// Calibrated reports whether a mapping exists.
func (m *ChartModel) Calibrated() bool { return m != nil && m.cal != nil }

// SetResults stores the extracted rows and annual total.
func (m *ChartModel) SetResults(rows []chart.Row, total float64) {
	if m == nil {
		return
	}
	m.rows = rows
	m.total = total
	m.hasResults = true
}

// Results returns the extracted rows, the annual total, and whether results
// exist.
func (m *ChartModel) Results() ([]chart.Row, float64, bool) {
	if m == nil || !m.hasResults {
		return nil, 0, false
	}
	return m.rows, m.total, true
}

func (m *ChartModel) clearResults() {
	m.rows = nil
	m.total = 0
	m.hasResults = false
}
