// Package window shows images in a desktop window using fyne.
package window

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Window displays an image in a fixed-size desktop window and waits for a
// key press. The fyne event loop can only be entered once per process, so a
// Window supports a single Display call; the tool shows one grid per run.
type Window struct{}

// New returns a desktop window backend.
func New() *Window {
	return &Window{}
}

// Display opens a window named name sized to img, shows img at its native
// resolution, and blocks until any key is pressed. The window and the
// application event loop are torn down before Display returns.
func (w *Window) Display(name string, img image.Image) error {
	a := app.New()
	win := a.NewWindow(name)

	pic := canvas.NewImageFromImage(img)
	pic.FillMode = canvas.ImageFillOriginal
	win.SetContent(pic)

	b := img.Bounds()
	win.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	win.SetFixedSize(true)
	win.CenterOnScreen()

	// Any key releases the window. Closing the window works too.
	win.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) {
		a.Quit()
	})

	// Blocks until a.Quit or the window is closed.
	win.ShowAndRun()
	return nil
}
