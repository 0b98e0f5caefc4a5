package view

import (
	"image"

	"github.com/soocke/chart-digitizer-go/domain/geom"
	"github.com/soocke/chart-digitizer-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RenderSource provides the pixels and click sequences the chart preview
// draws from. The chart model satisfies it.
type RenderSource interface {
	Working() *image.RGBA
	Store() PointSource
	RasterSize() (w, h float64)
}

// PointSource exposes the click sequences for marker rendering.
type PointSource interface {
	CalibrationPoints() []geom.Point
	MonthPoints() []geom.Point
}

// BoxProvider returns the live crop selection, if any.
type BoxProvider func() (geom.Box, bool)

// PointerHandler receives raster-space pointer events.
type PointerHandler struct {
	Press   func(geom.Point)
	Move    func(geom.Point)
	Release func(geom.Point)
}

// ChartView owns the preview label showing the working raster (scaled to fit
// the preview area) with calibration crosses, month dots and the crop
// rectangle drawn on top. Pointer events are mapped from display space back
// to raster space before reaching the handlers.
type ChartView interface {
	Render()
	SetBoxProvider(BoxProvider)
}

type chartView struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo, deleted before replacement

	maxW, maxH int
	dispW      int // current preview size, for event mapping
	dispH      int

	source  func() RenderSource
	boxFn   BoxProvider
	handler PointerHandler
}

// NewChartView grids the preview label at the given row and binds pointer
// events. source is a getter so the view never holds a stale model.
func NewChartView(row, maxW, maxH int, source func() RenderSource, handler PointerHandler) ChartView {
	placeholder := image.NewRGBA(image.Rect(0, 0, maxW/2, maxH/2))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(0), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(2), Padx("0.4m"), Pady("0.4m"))

	v := &chartView{
		label:     label,
		prevPhoto: photo,
		maxW:      maxW,
		maxH:      maxH,
		dispW:     maxW / 2,
		dispH:     maxH / 2,
		source:    source,
		handler:   handler,
	}
	Bind(label, "<Button-1>", Command(func(e *Event) { v.pointer(e, v.handler.Press) }))
	Bind(label, "<B1-Motion>", Command(func(e *Event) { v.pointer(e, v.handler.Move) }))
	Bind(label, "<ButtonRelease-1>", Command(func(e *Event) { v.pointer(e, v.handler.Release) }))
	return v
}

func (v *chartView) SetBoxProvider(fn BoxProvider) { v.boxFn = fn }

// Render redraws the preview from the current model state.
func (v *chartView) Render() {
	if v == nil || v.label == nil || v.source == nil {
		return
	}
	src := v.source()
	if src == nil || src.Working() == nil {
		return
	}
	annotated := cloneRGBA(src.Working())
	if store := src.Store(); store != nil {
		for _, p := range store.CalibrationPoints() {
			images.DrawCalibrationMarker(annotated, int(p.X), int(p.Y))
		}
		for _, p := range store.MonthPoints() {
			images.DrawMonthMarker(annotated, int(p.X), int(p.Y))
		}
	}
	if v.boxFn != nil {
		if box, ok := v.boxFn(); ok {
			images.DrawCropRect(annotated, box.Rect())
		}
	}

	scaled := images.ScaleToFit(annotated, v.maxW, v.maxH)
	b := scaled.Bounds()
	v.dispW, v.dispH = b.Dx(), b.Dy()

	// Replace the previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(images.EncodePNG(scaled)))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}

// pointer converts a display-space event into raster space. The scale
// factors are derived from the current sizes on every event: they change
// whenever a crop or a new load resizes the raster.
func (v *chartView) pointer(e *Event, fn func(geom.Point)) {
	if e == nil || fn == nil {
		return
	}
	src := v.source()
	if src == nil || src.Working() == nil {
		return
	}
	rw, rh := src.RasterSize()
	m := geom.DisplayMap{RasterW: rw, RasterH: rh, DisplayW: float64(v.dispW), DisplayH: float64(v.dispH)}
	fn(m.ToRaster(float64(e.X), float64(e.Y)))
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}
