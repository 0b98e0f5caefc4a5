package presenter

import (
	"errors"
	"image"
	"log/slog"

	"github.com/soocke/chart-digitizer-go/domain/crop"
	"github.com/soocke/chart-digitizer-go/domain/geom"
	"github.com/soocke/chart-digitizer-go/ui/images"
)

// CropView is the view surface the crop workflow touches.
type CropView interface {
	ShowStatus(text string)
	ShowError(text string)
	ClearResults()
	RefreshChart()
}

// CropModelContract narrows the model surface used by the crop workflow.
type CropModelContract interface {
	HasImage() bool
	Original() *image.RGBA
	RasterSize() (w, h float64)
	OriginalSize() (w, h float64)
	ApplyCrop(*image.RGBA)
}

// CropPresenter feeds pointer events into the crop FSM while crop mode is
// enabled and performs the lossless apply against the original image.
type CropPresenter struct {
	model   CropModelContract
	fsm     *crop.FSM
	view    CropView
	logger  *slog.Logger
	enabled bool
}

func NewCropPresenter(model CropModelContract, fsm *crop.FSM, view CropView, logger *slog.Logger) *CropPresenter {
	return &CropPresenter{model: model, fsm: fsm, view: view, logger: logger}
}

// Enabled reports whether pointer events currently belong to the crop
// workflow.
func (c *CropPresenter) Enabled() bool { return c != nil && c.enabled }

// Toggle flips crop mode. Turning it off discards any selection.
func (c *CropPresenter) Toggle() {
	if c == nil {
		return
	}
	if c.enabled {
		c.enabled = false
		c.fsm.Cancel()
		c.view.RefreshChart()
		c.view.ShowStatus("crop mode off")
		return
	}
	if !c.model.HasImage() {
		c.view.ShowError("load a chart image first")
		return
	}
	// The raster may have changed since the FSM was built.
	rw, rh := c.model.RasterSize()
	c.fsm.SetRaster(rw, rh)
	c.enabled = true
	c.view.ShowStatus("crop mode on; drag a rectangle")
}

// Press, Move and Release forward raster-space pointer events to the FSM and
// keep the preview rectangle live.
func (c *CropPresenter) Press(p geom.Point) {
	if !c.Enabled() {
		return
	}
	c.fsm.Press(p)
	c.view.RefreshChart()
}

func (c *CropPresenter) Move(p geom.Point) {
	if !c.Enabled() {
		return
	}
	c.fsm.Move(p)
	c.view.RefreshChart()
}

func (c *CropPresenter) Release() {
	if !c.Enabled() {
		return
	}
	c.fsm.Release()
	c.view.RefreshChart()
}

// Box exposes the live selection for preview rendering.
func (c *CropPresenter) Box() (geom.Box, bool) {
	if c == nil || !c.enabled {
		return geom.Box{}, false
	}
	return c.fsm.Box()
}

// Apply maps the sized selection into original-image space, extracts the
// region losslessly and installs it as the new working image. Failures leave
// all prior state untouched.
func (c *CropPresenter) Apply() {
	if c == nil {
		return
	}
	if c.fsm.Current() != crop.CropSized {
		c.view.ShowStatus("draw a crop rectangle first")
		return
	}
	box, _ := c.fsm.Box()
	rw, rh := c.model.RasterSize()
	ow, oh := c.model.OriginalSize()
	origBox := geom.BoxToOriginal(box, ow, oh, rw, rh)

	region, err := images.ExtractRegion(c.model.Original(), origBox.Rect())
	if err != nil {
		if errors.Is(err, images.ErrEmptyCrop) {
			c.view.ShowError("crop region is empty")
		} else {
			c.view.ShowError(err.Error())
		}
		return
	}
	c.model.ApplyCrop(region)
	c.fsm.Applied()
	nw, nh := c.model.RasterSize()
	c.fsm.SetRaster(nw, nh)
	c.enabled = false
	c.view.ClearResults()
	c.view.RefreshChart()
	c.view.ShowStatus("crop applied; calibration cleared")
	if c.logger != nil {
		c.logger.Info("crop applied", "width", int(nw), "height", int(nh))
	}
}
