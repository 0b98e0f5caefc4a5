package presenter

import (
	"image"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/soocke/chart-digitizer-go/domain/chart"
	"github.com/soocke/chart-digitizer-go/domain/geom"
	"github.com/soocke/chart-digitizer-go/domain/loader"
)

// ChartView narrows what this presenter needs from the view layer.
type ChartView interface {
	BoundsText() (vmin, vmax string)
	ModeText() string
	StartMonthText() string
	ShowStatus(text string)
	ShowError(text string)
	ShowResults(rows []chart.Row, total float64)
	ClearResults()
	RefreshChart()
}

// ChartModelContract narrows the model surface the presenter mutates.
type ChartModelContract interface {
	HasImage() bool
	SetImage(*image.RGBA)
	Store() *chart.PointStore
	AddCalibrationPoint(chart.Point) bool
	AddMonthPoint(chart.Point) (added, complete bool)
	UndoMonthPoint() bool
	SetCalibration(*chart.Calibration)
	Calibration() (*chart.Calibration, bool)
	Calibrated() bool
	SetResults([]chart.Row, float64)
	Reset()
}

// ImageSource starts an asynchronous decode that commits at most once.
type ImageSource interface {
	Load(path string, commit loader.CommitFunc)
}

// ChartPresenter routes raster-space clicks into the point store, builds the
// calibration when the second reference lands, and runs extraction exactly
// when the twelfth month point lands or when mode/start-month change with a
// full set present.
type ChartPresenter struct {
	model  ChartModelContract
	view   ChartView
	loader ImageSource
	logger *slog.Logger

	// Decode commits arrive on loader goroutines; Tick drains the latest
	// one on the UI thread. A single slot so a newer commit always
	// replaces an older one that has not been picked up yet.
	mu      sync.Mutex
	pending *loadResult
}

// loadResult is one decode outcome: either an image or an error.
type loadResult struct {
	img *image.RGBA
	err error
}

func NewChartPresenter(model ChartModelContract, view ChartView, src ImageSource, logger *slog.Logger) *ChartPresenter {
	return &ChartPresenter{
		model:  model,
		view:   view,
		loader: src,
		logger: logger,
	}
}

// OpenImage starts loading a chart file. A newer call supersedes any decode
// still in flight.
func (p *ChartPresenter) OpenImage(path string) {
	if p == nil || p.loader == nil {
		return
	}
	path = strings.TrimSpace(path)
	if path == "" {
		p.view.ShowError("enter an image path first")
		return
	}
	p.view.ShowStatus("loading " + path)
	p.loader.Load(path, func(img *image.RGBA, err error) {
		p.mu.Lock()
		p.pending = &loadResult{img: img, err: err}
		p.mu.Unlock()
	})
}

// InstallImage installs an already-decoded image (screen grab path).
func (p *ChartPresenter) InstallImage(img *image.RGBA) {
	if p == nil || img == nil {
		return
	}
	if p.logger != nil {
		b := img.Bounds()
		p.logger.Debug("image installed", "width", b.Dx(), "height", b.Dy())
	}
	p.model.SetImage(img)
	p.view.ClearResults()
	p.view.RefreshChart()
	p.view.ShowStatus("chart loaded; click the bottom axis reference")
}

// Tick delivers the newest decode result on the UI thread. Older commits
// that were superseded before a tick ran are never installed.
func (p *ChartPresenter) Tick() {
	if p == nil {
		return
	}
	p.mu.Lock()
	res := p.pending
	p.pending = nil
	p.mu.Unlock()
	if res == nil {
		return
	}
	if res.err != nil {
		if p.logger != nil {
			p.logger.Error("image load", "error", res.err)
		}
		p.view.ShowError(res.err.Error())
		return
	}
	p.InstallImage(res.img)
}

// Click handles a pointer press at a raster-space point while crop mode is
// off: the first two clicks are axis references, the rest are month points.
func (p *ChartPresenter) Click(pt geom.Point) {
	if p == nil {
		return
	}
	if !p.model.HasImage() {
		p.view.ShowError("load a chart image first")
		return
	}
	store := p.model.Store()
	if !store.CalibrationComplete() {
		p.model.AddCalibrationPoint(pt)
		p.view.RefreshChart()
		if store.CalibrationComplete() {
			p.rebuildCalibration()
		} else {
			p.view.ShowStatus("click the top axis reference")
		}
		return
	}
	if !p.model.Calibrated() {
		// Two references exist but the bounds were bad; retry with the
		// current entries before rejecting the click.
		if !p.rebuildCalibration() {
			return
		}
	}
	added, complete := p.model.AddMonthPoint(pt)
	if !added {
		p.view.ShowStatus("all twelve month points are placed")
		return
	}
	p.view.RefreshChart()
	if complete {
		p.computeResults()
	} else {
		p.view.ShowStatus("month point " + strconv.Itoa(store.MonthCount()) + " of 12")
	}
}

// BoundsChanged re-derives the calibration from the entry fields and, when a
// full month set exists, recomputes the results against the new mapping.
func (p *ChartPresenter) BoundsChanged() {
	if p == nil || !p.model.Store().CalibrationComplete() {
		return
	}
	if p.rebuildCalibration() && p.model.Store().MonthsComplete() {
		p.computeResults()
	}
}

// OptionsChanged recomputes results after a mode or start-month change.
func (p *ChartPresenter) OptionsChanged() {
	if p == nil {
		return
	}
	if p.model.Calibrated() && p.model.Store().MonthsComplete() {
		p.computeResults()
	}
}

// Undo removes the most recent month point.
func (p *ChartPresenter) Undo() {
	if p == nil {
		return
	}
	if p.model.UndoMonthPoint() {
		p.view.ClearResults()
		p.view.RefreshChart()
		p.view.ShowStatus("removed last month point")
	}
}

// ResetAll clears points, calibration and results, keeping the image.
func (p *ChartPresenter) ResetAll() {
	if p == nil {
		return
	}
	p.model.Reset()
	p.view.ClearResults()
	p.view.RefreshChart()
	p.view.ShowStatus("cleared; click the bottom axis reference")
}

// rebuildCalibration parses the bound entries and installs the mapping.
// Reports success; failures surface on the view and clear the mapping.
func (p *ChartPresenter) rebuildCalibration() bool {
	refs := p.model.Store().CalibrationPoints()
	if len(refs) != chart.MaxCalibrationPoints {
		return false
	}
	vminText, vmaxText := p.view.BoundsText()
	vmin, err1 := strconv.ParseFloat(strings.TrimSpace(vminText), 64)
	vmax, err2 := strconv.ParseFloat(strings.TrimSpace(vmaxText), 64)
	if err1 != nil || err2 != nil {
		p.model.SetCalibration(nil)
		p.view.ShowError(chart.ErrInvalidInput.Error())
		return false
	}
	cal, err := chart.NewCalibration(refs[0], refs[1], vmin, vmax)
	if err != nil {
		p.model.SetCalibration(nil)
		p.view.ShowError(err.Error())
		return false
	}
	p.model.SetCalibration(cal)
	p.view.ShowStatus("calibrated; click twelve month points")
	return true
}

func (p *ChartPresenter) computeResults() {
	cal, ok := p.model.Calibration()
	if !ok {
		return
	}
	mode := chart.ParseMode(p.view.ModeText())
	startIdx, err := chart.ParseStartMonth(p.view.StartMonthText())
	if err != nil {
		startIdx = 0
	}
	rows, total, err := chart.ComputeResults(p.model.Store().MonthPoints(), cal, mode, startIdx)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("extraction", "error", err)
		}
		return
	}
	p.model.SetResults(rows, total)
	p.view.ShowResults(rows, total)
	p.view.ShowStatus("extraction complete")
}
