package view

import (
	"log/slog"
	"strings"

	"github.com/soocke/chart-digitizer-go/config"
	"github.com/soocke/chart-digitizer-go/domain/chart"
	"github.com/soocke/chart-digitizer-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns the subviews and implements the view contracts the presenters
// consume.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Axis    AxisPanel
	Chart   ChartView
	Results ResultsView
	Help    HelpView

	// Widgets
	StatusLabel *LabelWidget
	pathEntry   *TextWidget
	cropBtn     *ButtonWidget
}

// RootHandlers are invoked on user actions in the root window.
type RootHandlers struct {
	OnLoad       func(path string)
	OnGrab       func()
	OnToggleCrop func()
	OnApplyCrop  func()
	OnUndo       func()
	OnReset      func()
	OnExit       func()

	Axis    AxisHandlers
	Pointer PointerHandler
	Source  func() RenderSource
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(h RootHandlers) {
	if rv == nil {
		return
	}
	// Row 0: toolbar with the image path entry and the action buttons.
	toolbar := Frame()
	Grid(toolbar, Row(0), Column(0), Columnspan(3), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.pathEntry = Text(Height(1), Width(36))
	Grid(rv.pathEntry, In(toolbar), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	col := 1
	makeButton := func(label string, fn func()) *ButtonWidget {
		b := Button(Txt(label), Command(func() {
			if fn != nil {
				fn()
			}
		}))
		Grid(b, In(toolbar), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		col++
		return b
	}
	makeButton("Load", func() {
		if h.OnLoad != nil {
			h.OnLoad(rv.PathText())
		}
	})
	makeButton("Grab Screen", h.OnGrab)
	rv.cropBtn = makeButton("Crop Mode", h.OnToggleCrop)
	makeButton("Apply Crop", h.OnApplyCrop)
	makeButton("Undo", h.OnUndo)
	makeButton("Reset", h.OnReset)
	rv.Help = NewHelpView()
	makeButton("Help", rv.Help.OpenOrFocus)
	makeButton("Dark", func() { theme.ToggleDark() })
	makeButton("Exit", h.OnExit)

	// Rows 1..n: axis form. Below it the chart preview with the results
	// table on its right, then the status line.
	rv.Axis = NewAxisPanel(rv.cfg.DefaultMode, rv.cfg.DefaultStartMonth, h.Axis, rv.logger)
	endRow := rv.Axis.Build(1)
	rv.Chart = NewChartView(endRow, rv.cfg.PreviewMaxW, rv.cfg.PreviewMaxH, h.Source, h.Pointer)
	rv.Results = NewResultsView(endRow, 2)
	rv.StatusLabel = Label(Txt("Load a chart image to begin."), Anchor("w"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StatusLabel, Row(endRow+1), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
}

// PathText returns the trimmed contents of the image path entry.
func (rv *RootView) PathText() string {
	if rv == nil || rv.pathEntry == nil {
		return ""
	}
	parts := rv.pathEntry.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}

// SetCropActive relabels the crop toggle to reflect the current mode.
func (rv *RootView) SetCropActive(on bool) {
	if rv == nil || rv.cropBtn == nil {
		return
	}
	label := "Crop Mode"
	if on {
		label = "Crop Mode (on)"
	}
	rv.cropBtn.Configure(Txt(label))
}

// --- ChartPresenter / CropPresenter view contract methods ---

func (rv *RootView) BoundsText() (string, string) {
	if rv == nil || rv.Axis == nil {
		return "", ""
	}
	return rv.Axis.BoundsText()
}

func (rv *RootView) ModeText() string {
	if rv == nil || rv.Axis == nil {
		return ""
	}
	return rv.Axis.ModeText()
}

func (rv *RootView) StartMonthText() string {
	if rv == nil || rv.Axis == nil {
		return ""
	}
	return rv.Axis.StartMonthText()
}

func (rv *RootView) ShowStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

func (rv *RootView) ShowError(text string) {
	if rv == nil {
		return
	}
	if rv.logger != nil {
		rv.logger.Warn("user error", "message", text)
	}
	if rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt("Error: " + text))
	}
}

func (rv *RootView) ShowResults(rows []chart.Row, total float64) {
	if rv != nil && rv.Results != nil {
		rv.Results.Show(rows, total)
	}
}

func (rv *RootView) ClearResults() {
	if rv != nil && rv.Results != nil {
		rv.Results.Clear()
	}
}

// RefreshChart redraws the preview from the current model state.
func (rv *RootView) RefreshChart() {
	if rv != nil && rv.Chart != nil {
		rv.Chart.Render()
	}
}
