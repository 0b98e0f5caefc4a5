// Package loader decodes chart images off the UI thread. Each Load cancels
// any decode still in flight, and a generation counter guards the commit so
// a slow decode that finishes after a newer request never overwrites state.
package loader

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"os"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// CommitFunc receives the decoded image or the decode error. It is invoked
// from the decode goroutine; callers hand the result back to the UI thread.
type CommitFunc func(img *image.RGBA, err error)

// Loader serializes image loads. The zero value is not usable; construct
// with New.
type Loader struct {
	logger *slog.Logger
	decode func(ctx context.Context, path string) (*image.RGBA, error)

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// New returns a Loader using the stdlib PNG/JPEG/GIF decoders.
func New(logger *slog.Logger) *Loader {
	return &Loader{logger: logger, decode: decodeFile}
}

// Load starts decoding path, cancelling any prior in-flight load. Exactly one
// of the outstanding loads commits: the most recent one.
func (l *Loader) Load(path string, commit CommitFunc) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	go func() {
		img, err := l.decode(ctx, path)

		l.mu.Lock()
		stale := gen != l.gen
		l.mu.Unlock()
		if stale || ctx.Err() != nil {
			if l.logger != nil {
				l.logger.Debug("stale decode discarded", "path", path)
			}
			return
		}
		if err != nil {
			commit(nil, fmt.Errorf("decode %s: %w", path, err))
			return
		}
		commit(img, nil)
	}()
}

// decodeFile reads and decodes an image file, normalizing to RGBA.
func decodeFile(ctx context.Context, path string) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ToRGBA(src), nil
}

// ToRGBA returns src as *image.RGBA with bounds anchored at the origin,
// copying only when the representation differs.
func ToRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}
