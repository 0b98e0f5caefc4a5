package app

import (
	"log/slog"

	"github.com/soocke/chart-digitizer-go/config"
	"github.com/soocke/chart-digitizer-go/domain/crop"
	"github.com/soocke/chart-digitizer-go/domain/loader"
	"github.com/soocke/chart-digitizer-go/ui/model"
	"github.com/soocke/chart-digitizer-go/ui/presenter"
	"github.com/soocke/chart-digitizer-go/ui/view"
)

// AppContainer assembles the model, domain services, presenters and the root
// view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger

	Model  *model.ChartModel
	CropSM *crop.FSM
	Loader *loader.Loader

	RootView *view.RootView

	// Presenters
	Chart *presenter.ChartPresenter
	Crop  *presenter.CropPresenter
	Loop  *presenter.Loop
}

// BuildContainer constructs all components. The view layout itself is built
// later, once the Tk root window exists.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Model = model.NewChartModel(cfg.CanvasMaxW, cfg.CanvasMaxH)
	c.Loader = loader.New(logger)
	c.CropSM = crop.NewFSM(logger, 0, 0)
	c.RootView = view.NewRootView(cfg, logger)
	c.Chart = presenter.NewChartPresenter(c.Model, c.RootView, c.Loader, logger)
	c.Crop = presenter.NewCropPresenter(c.Model, c.CropSM, c.RootView, logger)
	return c
}
