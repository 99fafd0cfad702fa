package ui

import (
	"image"
	"log"

	"fyne.io/fyne/v2"

	"image-rotator/internal/config"
	"image-rotator/internal/render"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, cfg config.Config, src image.Image) fyne.Window {
	win := app.NewWindow(cfg.Title)
	size := fyne.NewSize(cfg.Width, cfg.Height)
	if cfg.Width <= 0 || cfg.Height <= 0 {
		size = NewWindowSize()
	}
	win.Resize(size)
	win.SetFixedSize(true)

	interp, err := render.ParseInterpolator(cfg.Interpolator)
	if err != nil {
		log.Printf("Using %s interpolation: %v", render.DefaultInterpolator, err)
		interp, _ = render.ParseInterpolator("")
	}

	rotator := NewRotator(render.NewRenderer(src, interp), fyne.DoAndWait)
	win.SetContent(rotator.Container())

	win.SetCloseIntercept(func() {
		rotator.Close()
		win.Close()
	})

	return win
}
