package oled

import (
	"image"
	"image/color"
	"testing"
)

func TestOptsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Opts
		wantErr bool
	}{
		{"valid 256x64", Opts{W: 256, H: 64}, false},
		{"valid 128x64", Opts{W: 128, H: 64}, false},
		{"valid 2x1 (minimum)", Opts{W: 2, H: 1}, false},
		{"odd width", Opts{W: 255, H: 64}, true},
		{"width zero", Opts{W: 0, H: 64}, true},
		{"width > 480", Opts{W: 512, H: 64}, true},
		{"height zero", Opts{W: 256, H: 0}, true},
		{"height > 128", Opts{W: 256, H: 200}, true},
		{"rotated (valid)", Opts{W: 256, H: 64, Rotated: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPackFrameUniform(t *testing.T) {
	tests := []struct {
		name string
		gray uint8
		want byte
	}{
		{"black", 0x00, 0x00},
		{"white", 0xFF, 0xFF},
		{"mid", 0x80, 0x88},
	}

	rect := image.Rect(0, 0, 16, 4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewGray(image.Rect(0, 0, 8, 2))
			for i := range src.Pix {
				src.Pix[i] = tt.gray
			}

			frame := packFrame(src, rect)
			if got, want := len(frame), 16*4/2; got != want {
				t.Fatalf("frame size = %d, want %d", got, want)
			}
			for i, b := range frame {
				if b != tt.want {
					t.Fatalf("frame[%d] = %#x, want %#x", i, b, tt.want)
				}
			}
		})
	}
}

func TestPackFrameNibbleOrder(t *testing.T) {
	// 2x1 source at panel size: left pixel white, right pixel black.
	// High nibble is the left pixel.
	rect := image.Rect(0, 0, 2, 1)
	src := image.NewGray(rect)
	src.SetGray(0, 0, color.Gray{Y: 0xFF})

	frame := packFrame(src, rect)
	if len(frame) != 1 {
		t.Fatalf("frame size = %d, want 1", len(frame))
	}
	if frame[0] != 0xF0 {
		t.Errorf("frame[0] = %#x, want 0xF0", frame[0])
	}
}

func TestDevBounds(t *testing.T) {
	d := &Dev{rect: image.Rect(0, 0, 256, 64)}
	if got, want := d.Bounds(), image.Rect(0, 0, 256, 64); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestDevString(t *testing.T) {
	d := &Dev{rect: image.Rect(0, 0, 256, 64)}
	if got, want := d.String(), "oled.Dev{256x64}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
