// Package term shows images inline in the terminal using the Kitty
// graphics protocol. Works in kitty, Ghostty and other compatible
// terminal emulators.
package term

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/BourgeoisBear/rasterm"
)

// Term displays an image inline in the terminal and waits for a key press
// on the input stream.
type Term struct {
	Out io.Writer
	In  io.Reader
}

// New returns a terminal backend bound to stdout/stdin.
func New() *Term {
	return &Term{Out: os.Stdout, In: os.Stdin}
}

// Display emits img to the terminal under a name heading, then blocks until
// a key (followed by enter, since the terminal stays in cooked mode) is read
// from the input stream.
func (t *Term) Display(name string, img image.Image) error {
	if _, err := fmt.Fprintf(t.Out, "%s\n", name); err != nil {
		return err
	}
	if err := rasterm.KittyWriteImage(t.Out, img, rasterm.KittyImgOpts{}); err != nil {
		return fmt.Errorf("term: write image: %w", err)
	}
	if _, err := fmt.Fprint(t.Out, "\npress a key to close: "); err != nil {
		return err
	}

	// Wait for the key press.
	r := bufio.NewReader(t.In)
	if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
		return fmt.Errorf("term: wait for key: %w", err)
	}
	_, err := fmt.Fprintln(t.Out)
	return err
}
