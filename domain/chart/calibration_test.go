package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/soocke/chart-digitizer-go/domain/geom"
)

func TestNewCalibration_EndpointsRoundTrip(t *testing.T) {
	bottom := geom.Point{X: 40, Y: 500}
	top := geom.Point{X: 38, Y: 100}
	cal, err := NewCalibration(bottom, top, 0, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := cal.ValueAt(geom.Point{X: 0, Y: 500}); v != 0 {
		t.Fatalf("bottom reference: expected 0, got %v", v)
	}
	if v := cal.ValueAt(geom.Point{X: 999, Y: 100}); v != 1000 {
		t.Fatalf("top reference: expected 1000, got %v", v)
	}
}

func TestCalibration_KnownMidpoint(t *testing.T) {
	// y=500 -> 0, y=100 -> 1000; a point at y=300 sits at 500 exactly.
	cal, err := NewCalibration(geom.Point{Y: 500}, geom.Point{Y: 100}, 0, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := cal.ValueAt(geom.Point{X: 123, Y: 300}); v != 500 {
		t.Fatalf("expected 500, got %v", v)
	}
}

func TestCalibration_IndependentOfX(t *testing.T) {
	cal, err := NewCalibration(geom.Point{X: 10, Y: 400}, geom.Point{X: 90, Y: 50}, 2, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, y := range []float64{50, 123.4, 225, 400, 700} {
		a := cal.ValueAt(geom.Point{X: 0, Y: y})
		b := cal.ValueAt(geom.Point{X: 1e6, Y: y})
		if a != b {
			t.Fatalf("value depends on X at y=%v: %v vs %v", y, a, b)
		}
	}
}

func TestNewCalibration_DegeneratePoints(t *testing.T) {
	_, err := NewCalibration(geom.Point{Y: 100}, geom.Point{Y: 100 + 1e-9}, 0, 10)
	if !errors.Is(err, ErrInvalidCalibration) {
		t.Fatalf("expected ErrInvalidCalibration, got %v", err)
	}
}

func TestNewCalibration_NonFiniteBounds(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NewCalibration(geom.Point{Y: 500}, geom.Point{Y: 100}, bad, 10); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("vmin=%v: expected ErrInvalidInput, got %v", bad, err)
		}
		if _, err := NewCalibration(geom.Point{Y: 500}, geom.Point{Y: 100}, 0, bad); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("vmax=%v: expected ErrInvalidInput, got %v", bad, err)
		}
	}
}

func TestNewCalibration_InvertedAxisSupported(t *testing.T) {
	// vmin > vmax is a valid negative-slope mapping.
	cal, err := NewCalibration(geom.Point{Y: 500}, geom.Point{Y: 100}, 1000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := cal.ValueAt(geom.Point{Y: 500}); v != 1000 {
		t.Fatalf("bottom should map to vmin=1000, got %v", v)
	}
	if v := cal.ValueAt(geom.Point{Y: 100}); v != 0 {
		t.Fatalf("top should map to vmax=0, got %v", v)
	}
}
