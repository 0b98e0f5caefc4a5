// Package grab captures the screen as an alternative chart source, for bills
// shown in a browser or PDF viewer instead of saved as a file.
package grab

import (
	"image"

	"github.com/vova616/screenshot"
)

// Screen captures the full primary screen.
func Screen() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Region captures the given screen rectangle.
func Region(r image.Rectangle) (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}
