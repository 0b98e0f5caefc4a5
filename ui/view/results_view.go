package view

import (
	"fmt"
	"strings"

	"github.com/soocke/chart-digitizer-go/domain/chart"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ResultsView displays the per-month table and the annual total.
type ResultsView interface {
	Show(rows []chart.Row, total float64)
	Clear()
}

type resultsView struct {
	text *TextWidget
}

// NewResultsView grids a read-only text pane at the given cell.
func NewResultsView(row, col int) ResultsView {
	w := Text(Height(16), Width(34))
	Grid(w, Row(row), Column(col), Sticky("ns"), Padx("0.4m"), Pady("0.4m"))
	w.Configure(State("disabled"))
	return &resultsView{text: w}
}

func (v *resultsView) Show(rows []chart.Row, total float64) {
	if v == nil || v.text == nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-5s %12s %12s\n", "Month", "Axis", "Value")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-5s %12.2f %12.2f\n", r.Month, r.AxisValue, r.FinalValue)
	}
	fmt.Fprintf(&b, "\nAnnual total: %.2f\n", total)
	v.set(b.String())
}

func (v *resultsView) Clear() {
	if v == nil || v.text == nil {
		return
	}
	v.set("")
}

// set rewrites the pane contents; the widget stays disabled outside the write.
func (v *resultsView) set(s string) {
	v.text.Configure(State("normal"))
	v.text.Delete("1.0", END)
	v.text.Insert("1.0", s)
	v.text.Configure(State("disabled"))
}
