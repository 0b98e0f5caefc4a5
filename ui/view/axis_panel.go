package view

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/chart-digitizer-go/domain/chart"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// AxisPanel encapsulates the calibration form: the two axis bound entries,
// the mode selector and the start-month selector.
type AxisPanel interface {
	Build(startRow int) (endRow int)
	BoundsText() (vmin, vmax string)
	ModeText() string
	StartMonthText() string
	SetEditable(enabled bool)
}

// AxisHandlers are invoked on user actions in the panel.
type AxisHandlers struct {
	BoundsApplied  func()
	OptionsChanged func()
}

type axisPanel struct {
	logger   *slog.Logger
	handlers AxisHandlers

	defaultMode  string
	defaultStart string

	vminEntry *TextWidget
	vmaxEntry *TextWidget
	modeBox   *TComboboxWidget
	startBox  *TComboboxWidget
	applyBtn  *ButtonWidget
	modeVals  []string
	startVals []string
}

// NewAxisPanel creates the form with the given initial mode and start month.
func NewAxisPanel(defaultMode, defaultStart string, handlers AxisHandlers, logger *slog.Logger) AxisPanel {
	return &axisPanel{logger: logger, handlers: handlers, defaultMode: defaultMode, defaultStart: defaultStart}
}

func (v *axisPanel) Build(startRow int) (row int) {
	row = startRow
	makeEntry := func(label, value string) *TextWidget {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(12))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		row++
		return w
	}
	v.vminEntry = makeEntry("Bottom reference value", "0")
	v.vmaxEntry = makeEntry("Top reference value", "100")

	v.applyBtn = Button(Txt("Apply Bounds"), Command(func() {
		if v.handlers.BoundsApplied != nil {
			v.handlers.BoundsApplied()
		}
	}))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++

	v.modeVals = []string{chart.ModeTotal.String(), chart.ModeDailyAverage.String()}
	modeLbl := Label(Txt("Mode"), Anchor("w"))
	Grid(modeLbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"))
	v.modeBox = TCombobox(Values(v.modeVals), Width(14))
	Grid(v.modeBox, Row(row), Column(1), Sticky("we"), Padx("0.4m"))
	v.modeBox.Current(indexOf(v.modeVals, v.defaultMode))
	Bind(v.modeBox, "<<ComboboxSelected>>", Command(func() { v.optionsChanged() }))
	row++

	v.startVals = chart.MonthNames()
	startLbl := Label(Txt("Start month"), Anchor("w"))
	Grid(startLbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"))
	v.startBox = TCombobox(Values(v.startVals), Width(14))
	Grid(v.startBox, Row(row), Column(1), Sticky("we"), Padx("0.4m"))
	v.startBox.Current(indexOf(v.startVals, v.defaultStart))
	Bind(v.startBox, "<<ComboboxSelected>>", Command(func() { v.optionsChanged() }))
	row++
	return row
}

func (v *axisPanel) optionsChanged() {
	if v.handlers.OptionsChanged != nil {
		v.handlers.OptionsChanged()
	}
}

// BoundsText returns the raw entry text; parsing belongs to the presenter.
func (v *axisPanel) BoundsText() (string, string) {
	return entryText(v.vminEntry), entryText(v.vmaxEntry)
}

func (v *axisPanel) ModeText() string {
	return comboText(v.modeBox, v.modeVals, v.defaultMode)
}

func (v *axisPanel) StartMonthText() string {
	return comboText(v.startBox, v.startVals, v.defaultStart)
}

func (v *axisPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range []*TextWidget{v.vminEntry, v.vmaxEntry} {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func entryText(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}

func comboText(w *TComboboxWidget, vals []string, fallback string) string {
	if w == nil {
		return fallback
	}
	idxStr := w.Current(nil)
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx >= len(vals) {
		return fallback
	}
	return vals[idx]
}

func indexOf(vals []string, want string) int {
	for i, v := range vals {
		if strings.EqualFold(v, want) {
			return i
		}
	}
	return 0
}
