package view

import (
	"github.com/soocke/chart-digitizer-go/assets"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// HelpView manages the workflow help window.
type HelpView interface {
	OpenOrFocus()
}

type helpView struct {
	win *ToplevelWidget
}

func NewHelpView() HelpView {
	return &helpView{}
}

func (v *helpView) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(1))
	win.WmTitle("Help")
	v.win = win
	text := win.Text(Height(24), Width(72))
	Grid(text, In(win), Row(0), Column(0), Sticky("nsew"), Padx("0.5m"), Pady("0.5m"))
	text.Insert("1.0", assets.HelpText)
	text.Configure(State("disabled"))
	closeBtn := win.Button(Txt("Close [Esc]"), Command(v.close))
	Grid(closeBtn, In(win), Row(1), Column(0), Sticky("we"), Padx("0.5m"), Pady("0.3m"))
	Bind(win, "<Escape>", Command(v.close))
}

func (v *helpView) close() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}
