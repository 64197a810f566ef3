package term

import (
	"bytes"
	"image"
	"strings"
	"testing"
)

func testImage() image.Image {
	return image.NewNRGBA(image.Rect(0, 0, 8, 8))
}

func TestDisplayWritesNameAndImage(t *testing.T) {
	var out bytes.Buffer
	d := &Term{Out: &out, In: strings.NewReader("\n")}

	if err := d.Display("Overview", testImage()); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "Overview\n") {
		t.Errorf("output does not start with the surface name: %q", got[:20])
	}
	// Kitty graphics sequences start with ESC _ G.
	if !strings.Contains(got, "\x1b_G") {
		t.Error("output contains no Kitty graphics sequence")
	}
}

func TestDisplayToleratesEOF(t *testing.T) {
	var out bytes.Buffer
	d := &Term{Out: &out, In: strings.NewReader("")}

	// A closed input stream counts as the key press; the tool must not
	// hang or error when stdin is not a terminal.
	if err := d.Display("Overview", testImage()); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
}
