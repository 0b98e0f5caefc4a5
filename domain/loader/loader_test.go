package loader

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "chart.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func waitCommit(t *testing.T, ch chan *image.RGBA) *image.RGBA {
	t.Helper()
	select {
	case img := <-ch:
		return img
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for commit")
		return nil
	}
}

func TestLoader_DecodesFile(t *testing.T) {
	path := writeTestPNG(t, 8, 6)
	l := New(discardLogger)
	done := make(chan *image.RGBA, 1)
	l.Load(path, func(img *image.RGBA, err error) {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		done <- img
	})
	img := waitCommit(t, done)
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Fatalf("unexpected dimensions %v", img.Bounds())
	}
}

func TestLoader_ReportsDecodeError(t *testing.T) {
	l := New(discardLogger)
	errs := make(chan error, 1)
	l.Load(filepath.Join(t.TempDir(), "missing.png"), func(img *image.RGBA, err error) {
		errs <- err
	})
	select {
	case err := <-errs:
		if err == nil {
			t.Fatalf("expected error for missing file")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for error")
	}
}

func TestLoader_StaleDecodeNeverCommits(t *testing.T) {
	l := New(discardLogger)
	release := make(chan struct{})
	started := make(chan struct{}, 2)
	l.decode = func(ctx context.Context, path string) (*image.RGBA, error) {
		started <- struct{}{}
		if path == "slow" {
			<-release // simulate a long first decode
		}
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), ctx.Err()
	}

	commits := make(chan string, 2)
	l.Load("slow", func(img *image.RGBA, err error) { commits <- "slow" })
	<-started
	l.Load("fast", func(img *image.RGBA, err error) { commits <- "fast" })
	<-started

	if got := <-commits; got != "fast" {
		t.Fatalf("expected fast load to commit, got %q", got)
	}
	close(release)

	// The superseded decode must be discarded silently.
	select {
	case got := <-commits:
		t.Fatalf("stale decode committed: %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestToRGBA_AnchorsAtOrigin(t *testing.T) {
	gray := image.NewGray(image.Rect(10, 10, 20, 25))
	out := ToRGBA(gray)
	if out.Bounds().Min != (image.Point{}) {
		t.Fatalf("bounds not anchored: %v", out.Bounds())
	}
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 15 {
		t.Fatalf("unexpected size %v", out.Bounds())
	}
}
