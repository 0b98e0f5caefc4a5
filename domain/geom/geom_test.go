package geom

import (
	"math"
	"testing"
)

func TestDisplayMap_ToRaster(t *testing.T) {
	// Raster 1000x800 shown at 500x400: display coords double.
	m := DisplayMap{RasterW: 1000, RasterH: 800, DisplayW: 500, DisplayH: 400}
	p := m.ToRaster(250, 100)
	if p.X != 500 || p.Y != 200 {
		t.Fatalf("expected (500,200), got (%v,%v)", p.X, p.Y)
	}
}

func TestDisplayMap_DegenerateDisplayPassesThrough(t *testing.T) {
	m := DisplayMap{RasterW: 100, RasterH: 100}
	p := m.ToRaster(7, 9)
	if p.X != 7 || p.Y != 9 {
		t.Fatalf("expected pass-through, got (%v,%v)", p.X, p.Y)
	}
}

func TestClampBox_ContainedInRaster(t *testing.T) {
	b := ClampBox(Box{X: -10, Y: -5, W: 500, H: 500}, 100, 80)
	if b.X != 0 || b.Y != 0 {
		t.Fatalf("origin not clamped: %+v", b)
	}
	if b.X+b.W > 100 || b.Y+b.H > 80 {
		t.Fatalf("box exceeds raster: %+v", b)
	}
}

func TestClampBox_Idempotent(t *testing.T) {
	boxes := []Box{
		{X: -3.7, Y: 2.2, W: 50.5, H: 120.9},
		{X: 90, Y: 70, W: 40, H: 40},
		{X: 10, Y: 10, W: 0, H: 0},
		{X: 200, Y: 200, W: 10, H: 10},
	}
	for _, in := range boxes {
		once := ClampBox(in, 100, 80)
		twice := ClampBox(once, 100, 80)
		if once != twice {
			t.Fatalf("not idempotent for %+v: %+v vs %+v", in, once, twice)
		}
	}
}

func TestBoxToOriginal_ScalesComponentwise(t *testing.T) {
	// Raster 500x400 backed by a 1000x800 original: everything doubles.
	b := BoxToOriginal(Box{X: 10, Y: 20, W: 100, H: 50}, 1000, 800, 500, 400)
	want := Box{X: 20, Y: 40, W: 200, H: 100}
	if b != want {
		t.Fatalf("expected %+v, got %+v", want, b)
	}
}

func TestBoxToOriginal_RoundsEachField(t *testing.T) {
	b := BoxToOriginal(Box{X: 1, Y: 1, W: 1, H: 1}, 3, 3, 2, 2)
	// scale 1.5: each field rounds independently to 2.
	if b.X != 2 || b.Y != 2 || b.W != 2 || b.H != 2 {
		t.Fatalf("unexpected rounding: %+v", b)
	}
}

func TestFromCorners_NormalizesDragDirection(t *testing.T) {
	b := FromCorners(Point{X: 50, Y: 60}, Point{X: 10, Y: 20})
	if b.X != 10 || b.Y != 20 || b.W != 40 || b.H != 40 {
		t.Fatalf("unexpected box %+v", b)
	}
}

func TestBox_Contains(t *testing.T) {
	b := Box{X: 10, Y: 10, W: 20, H: 20}
	if !b.Contains(Point{X: 10, Y: 10}) || !b.Contains(Point{X: 30, Y: 30}) {
		t.Fatalf("edges should be inside")
	}
	if b.Contains(Point{X: 31, Y: 15}) {
		t.Fatalf("point outside reported inside")
	}
}

func TestBox_EmptyAfterRounding(t *testing.T) {
	if !(Box{W: 0.4, H: 10}).Empty() {
		t.Fatalf("sub-pixel width should be empty")
	}
	if (Box{W: 1, H: 1}).Empty() {
		t.Fatalf("1x1 box should not be empty")
	}
	if math.Round(0.5) != 1 {
		t.Fatalf("rounding convention changed")
	}
}
