// Package display defines the surface a composed grid is shown on.
//
// A Displayer owns exactly one named surface at a time. Display blocks the
// calling goroutine until a key press is observed, then releases the surface
// before returning. Backends live in the subpackages window (desktop),
// term (Kitty graphics terminals) and oled (SSD1322 panels over SPI).
package display

import "image"

// Displayer shows a single image on a named surface.
type Displayer interface {
	// Display shows img on a surface named name, blocks until the next
	// key press, and tears the surface down before returning.
	Display(name string, img image.Image) error
}

// Func adapts a plain function to the Displayer interface.
type Func func(name string, img image.Image) error

// Display calls f(name, img).
func (f Func) Display(name string, img image.Image) error {
	return f(name, img)
}
