package presenter

// Loop drives periodic updates from the Tk timer: it drains pending decode
// commits onto the UI thread and reschedules itself. The zero value is
// usable (methods are nil-safe).
type Loop struct {
	Chart    *ChartPresenter
	Schedule func()
}

func NewLoop(chart *ChartPresenter, schedule func()) *Loop {
	return &Loop{Chart: chart, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Chart != nil {
		l.Chart.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
