// Package crop implements the crop selection state machine. The user draws a
// rectangle over the chart preview, may drag it around, and finally applies
// or cancels it. All events arrive on the Tk callback thread, so the machine
// is synchronous; listeners run inline on each transition.
package crop

import (
	"log/slog"

	"github.com/soocke/chart-digitizer-go/domain/geom"
)

// CropState enumerates finite states of the crop workflow.
type CropState int

const (
	// CropIdle: no selection; crop mode off or nothing drawn yet.
	CropIdle CropState = iota
	// CropDrawing: a press landed outside any box; it grows from the origin.
	CropDrawing
	// CropDragging: a press landed inside the sized box; it translates.
	CropDragging
	// CropSized: a committed, clamped box awaits apply, re-draw or cancel.
	CropSized
)

func (s CropState) String() string {
	switch s {
	case CropIdle:
		return "idle"
	case CropDrawing:
		return "drawing"
	case CropDragging:
		return "dragging"
	case CropSized:
		return "sized"
	default:
		return "unknown"
	}
}

// CropListener is called on each successful state transition.
type CropListener func(prev, next CropState)

// FSM tracks the crop selection over the current raster.
type FSM struct {
	state     CropState
	logger    *slog.Logger
	rasterW   float64
	rasterH   float64
	origin    geom.Point // press origin while drawing
	grab      geom.Point // press offset from box origin while dragging
	box       geom.Box
	listeners []CropListener
}

// NewFSM returns an idle machine for a raster of the given size.
func NewFSM(logger *slog.Logger, rasterW, rasterH float64) *FSM {
	return &FSM{state: CropIdle, logger: logger, rasterW: rasterW, rasterH: rasterH}
}

// SetRaster updates the raster dimensions and resets the selection. Called
// when the backing image changes (new load or applied crop).
func (f *FSM) SetRaster(w, h float64) {
	f.rasterW, f.rasterH = w, h
	f.box = geom.Box{}
	f.transition(CropIdle)
}

// Press handles a pointer-down at p (raster space). Inside the sized box it
// begins a drag; anywhere else it begins drawing a fresh box from p.
func (f *FSM) Press(p geom.Point) {
	switch f.state {
	case CropSized:
		if f.box.Contains(p) {
			f.grab = geom.Point{X: p.X - f.box.X, Y: p.Y - f.box.Y}
			f.transition(CropDragging)
			return
		}
		f.beginDraw(p)
	case CropIdle:
		f.beginDraw(p)
	}
}

// Move handles pointer motion while a button is held.
func (f *FSM) Move(p geom.Point) {
	switch f.state {
	case CropDrawing:
		f.box = geom.ClampBox(geom.FromCorners(f.origin, p), f.rasterW, f.rasterH)
	case CropDragging:
		f.box.X = clampTo(p.X-f.grab.X, f.rasterW-f.box.W)
		f.box.Y = clampTo(p.Y-f.grab.Y, f.rasterH-f.box.H)
	}
}

// Release commits the current box.
func (f *FSM) Release() {
	switch f.state {
	case CropDrawing, CropDragging:
		f.box = geom.ClampBox(f.box, f.rasterW, f.rasterH)
		f.transition(CropSized)
	}
}

// Cancel discards the selection, returning to idle. Used when the user
// toggles crop mode off.
func (f *FSM) Cancel() {
	f.box = geom.Box{}
	f.transition(CropIdle)
}

// Applied clears the machine after a successful crop. The caller resets the
// raster separately via SetRaster with the crop dimensions.
func (f *FSM) Applied() {
	f.box = geom.Box{}
	f.transition(CropIdle)
}

// Current returns the machine state.
func (f *FSM) Current() CropState { return f.state }

// Box returns the selection and whether one is being shown (any state with a
// live rectangle: drawing, dragging or sized).
func (f *FSM) Box() (geom.Box, bool) {
	if f.state == CropIdle {
		return geom.Box{}, false
	}
	return f.box, true
}

// AddListener registers a transition listener.
func (f *FSM) AddListener(l CropListener) {
	f.listeners = append(f.listeners, l)
}

func (f *FSM) beginDraw(p geom.Point) {
	f.origin = geom.Point{
		X: clampTo(p.X, f.rasterW),
		Y: clampTo(p.Y, f.rasterH),
	}
	f.box = geom.Box{X: f.origin.X, Y: f.origin.Y}
	f.transition(CropDrawing)
}

func (f *FSM) transition(next CropState) {
	prev := f.state
	if prev == next {
		return
	}
	f.state = next
	if f.logger != nil {
		f.logger.Debug("crop state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range f.listeners {
		l(prev, next)
	}
}

func clampTo(v, hi float64) float64 {
	if hi < 0 {
		hi = 0
	}
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
