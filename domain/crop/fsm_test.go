package crop

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/soocke/chart-digitizer-go/domain/geom"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestFSM() *FSM { return NewFSM(discardLogger, 200, 100) }

type transitionRecorder struct {
	mu  sync.Mutex
	seq []CropState
}

func (r *transitionRecorder) listener(prev, next CropState) {
	r.mu.Lock()
	r.seq = append(r.seq, next)
	r.mu.Unlock()
}

func TestCropFSM_DrawCommitCycle(t *testing.T) {
	f := newTestFSM()
	r := &transitionRecorder{}
	f.AddListener(r.listener)

	f.Press(geom.Point{X: 10, Y: 10})
	if f.Current() != CropDrawing {
		t.Fatalf("expected drawing after press, got %v", f.Current())
	}
	f.Move(geom.Point{X: 60, Y: 40})
	f.Release()
	if f.Current() != CropSized {
		t.Fatalf("expected sized after release, got %v", f.Current())
	}
	box, ok := f.Box()
	if !ok {
		t.Fatalf("expected a live box")
	}
	if box.X != 10 || box.Y != 10 || box.W != 50 || box.H != 30 {
		t.Fatalf("unexpected box %+v", box)
	}
	want := []CropState{CropDrawing, CropSized}
	if len(r.seq) != len(want) || r.seq[0] != want[0] || r.seq[1] != want[1] {
		t.Fatalf("unexpected transition sequence %v", r.seq)
	}
}

func TestCropFSM_DrawNormalizesReverseDrag(t *testing.T) {
	f := newTestFSM()
	f.Press(geom.Point{X: 60, Y: 40})
	f.Move(geom.Point{X: 10, Y: 10})
	f.Release()
	box, _ := f.Box()
	if box.X != 10 || box.Y != 10 || box.W != 50 || box.H != 30 {
		t.Fatalf("reverse drag not normalized: %+v", box)
	}
}

func TestCropFSM_DrawClampsToRaster(t *testing.T) {
	f := newTestFSM()
	f.Press(geom.Point{X: 150, Y: 50})
	f.Move(geom.Point{X: 500, Y: 500})
	f.Release()
	box, _ := f.Box()
	if box.X+box.W > 200 || box.Y+box.H > 100 {
		t.Fatalf("box exceeds raster: %+v", box)
	}
}

func TestCropFSM_PressInsideSizedBoxDrags(t *testing.T) {
	f := newTestFSM()
	f.Press(geom.Point{X: 10, Y: 10})
	f.Move(geom.Point{X: 60, Y: 40})
	f.Release()

	f.Press(geom.Point{X: 20, Y: 20}) // inside
	if f.Current() != CropDragging {
		t.Fatalf("expected dragging, got %v", f.Current())
	}
	f.Move(geom.Point{X: 50, Y: 40})
	f.Release()
	box, _ := f.Box()
	// Size fixed, origin translated by the pointer delta (30, 20).
	if box.W != 50 || box.H != 30 {
		t.Fatalf("drag changed size: %+v", box)
	}
	if box.X != 40 || box.Y != 30 {
		t.Fatalf("unexpected drag position: %+v", box)
	}
}

func TestCropFSM_DragNeverExitsRaster(t *testing.T) {
	f := newTestFSM()
	f.Press(geom.Point{X: 10, Y: 10})
	f.Move(geom.Point{X: 60, Y: 40})
	f.Release()
	f.Press(geom.Point{X: 20, Y: 20})
	f.Move(geom.Point{X: 1000, Y: 1000})
	f.Release()
	box, _ := f.Box()
	if box.X+box.W > 200 || box.Y+box.H > 100 || box.X < 0 || box.Y < 0 {
		t.Fatalf("dragged box out of raster: %+v", box)
	}
	if box.W != 50 || box.H != 30 {
		t.Fatalf("drag changed size: %+v", box)
	}
}

func TestCropFSM_PressOutsideSizedBoxRestartsDrawing(t *testing.T) {
	f := newTestFSM()
	f.Press(geom.Point{X: 10, Y: 10})
	f.Move(geom.Point{X: 30, Y: 30})
	f.Release()

	f.Press(geom.Point{X: 100, Y: 50}) // outside
	if f.Current() != CropDrawing {
		t.Fatalf("expected drawing restart, got %v", f.Current())
	}
	f.Move(geom.Point{X: 120, Y: 70})
	f.Release()
	box, _ := f.Box()
	if box.X != 100 || box.Y != 50 {
		t.Fatalf("new box should start at second press: %+v", box)
	}
}

func TestCropFSM_CancelReturnsToIdle(t *testing.T) {
	f := newTestFSM()
	f.Press(geom.Point{X: 10, Y: 10})
	f.Move(geom.Point{X: 30, Y: 30})
	f.Release()
	f.Cancel()
	if f.Current() != CropIdle {
		t.Fatalf("expected idle after cancel, got %v", f.Current())
	}
	if _, ok := f.Box(); ok {
		t.Fatalf("box should be gone after cancel")
	}
}

func TestCropFSM_SetRasterResets(t *testing.T) {
	f := newTestFSM()
	f.Press(geom.Point{X: 10, Y: 10})
	f.Move(geom.Point{X: 30, Y: 30})
	f.Release()
	f.SetRaster(50, 50)
	if f.Current() != CropIdle {
		t.Fatalf("expected idle after raster change, got %v", f.Current())
	}
}

func TestCropFSM_MoveWhileIdleIsNoOp(t *testing.T) {
	f := newTestFSM()
	f.Move(geom.Point{X: 30, Y: 30})
	f.Release()
	if f.Current() != CropIdle {
		t.Fatalf("idle machine moved: %v", f.Current())
	}
}
