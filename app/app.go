package app

import (
	"fmt"
	"image"
	"time"

	"github.com/soocke/chart-digitizer-go/domain/geom"
	"github.com/soocke/chart-digitizer-go/domain/grab"
	"github.com/soocke/chart-digitizer-go/ui/model"
	"github.com/soocke/chart-digitizer-go/ui/presenter"
	"github.com/soocke/chart-digitizer-go/ui/theme"
	"github.com/soocke/chart-digitizer-go/ui/view"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// tick drives the presenter loop that drains decode results onto Tk's
// event loop thread.
const tick = 50 * time.Millisecond

type app struct {
	container *AppContainer
	afterID   string
}

func NewApp(title string, c *AppContainer) *app {
	a := &app{container: c}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	w := c.Config.PreviewMaxW + 380
	h := c.Config.PreviewMaxH + 280
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", w, h))
	return a
}

// Start builds the layout, wires the handlers, kicks off the update loop and
// blocks until the window closes.
func (a *app) Start() {
	c := a.container
	theme.InitStyles()

	c.RootView.Build(view.RootHandlers{
		OnLoad: c.Chart.OpenImage,
		OnGrab: a.grabScreen,
		OnToggleCrop: func() {
			c.Crop.Toggle()
			on := c.Crop.Enabled()
			c.RootView.SetCropActive(on)
			c.RootView.Axis.SetEditable(!on)
		},
		OnApplyCrop: func() {
			c.Crop.Apply()
			on := c.Crop.Enabled()
			c.RootView.SetCropActive(on)
			c.RootView.Axis.SetEditable(!on)
		},
		OnUndo:  c.Chart.Undo,
		OnReset: c.Chart.ResetAll,
		OnExit:  a.exitHandler,
		Axis: view.AxisHandlers{
			BoundsApplied:  c.Chart.BoundsChanged,
			OptionsChanged: c.Chart.OptionsChanged,
		},
		Pointer: view.PointerHandler{
			Press:   a.pointerPress,
			Move:    a.pointerMove,
			Release: a.pointerRelease,
		},
		Source: func() view.RenderSource { return renderSource{m: c.Model} },
	})
	c.RootView.Chart.SetBoxProvider(c.Crop.Box)

	c.Loop = presenter.NewLoop(c.Chart, a.scheduleUpdate)
	a.scheduleUpdate()

	App.Wait()
}

// pointerPress routes the click to the crop workflow while crop mode is on,
// otherwise to calibration/month collection.
func (a *app) pointerPress(p geom.Point) {
	if a.container.Crop.Enabled() {
		a.container.Crop.Press(p)
		return
	}
	a.container.Chart.Click(p)
}

func (a *app) pointerMove(p geom.Point) {
	a.container.Crop.Move(p)
}

func (a *app) pointerRelease(geom.Point) {
	a.container.Crop.Release()
}

// grabScreen captures the configured screen region (or the whole screen) and
// installs it as the chart image.
func (a *app) grabScreen() {
	cfg := a.container.Config
	var (
		img *image.RGBA
		err error
	)
	if cfg.GrabW > 0 && cfg.GrabH > 0 {
		r := image.Rect(cfg.GrabX, cfg.GrabY, cfg.GrabX+cfg.GrabW, cfg.GrabY+cfg.GrabH)
		img, err = grab.Region(r)
	} else {
		img, err = grab.Screen()
	}
	if err != nil {
		a.container.RootView.ShowError(err.Error())
		return
	}
	a.container.Chart.InstallImage(img)
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.container.Loop.Tick() })
}

// renderSource adapts the chart model to the preview's narrowed interface.
type renderSource struct {
	m *model.ChartModel
}

func (r renderSource) Working() *image.RGBA       { return r.m.Working() }
func (r renderSource) Store() view.PointSource    { return r.m.Store() }
func (r renderSource) RasterSize() (w, h float64) { return r.m.RasterSize() }
