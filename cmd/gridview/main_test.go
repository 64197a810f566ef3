package main

import "testing"

func TestParseCell(t *testing.T) {
	tests := []struct {
		in           string
		wantW, wantH int
		wantErr      bool
	}{
		{"420x300", 420, 300, false},
		{"400X300", 400, 300, false},
		{"1x1", 1, 1, false},
		{"420", 0, 0, true},
		{"0x300", 0, 0, true},
		{"-4x300", 0, 0, true},
		{"wide x tall", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseCell(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCell(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && (w != tt.wantW || h != tt.wantH) {
				t.Errorf("parseCell(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPhotoSet(t *testing.T) {
	if len(photos) != 4 {
		t.Fatalf("photo set has %d entries, want 4", len(photos))
	}
	// Only the original ROI loads as grayscale.
	for i, p := range photos {
		wantGray := p.file == "ROI_image.png"
		if p.gray != wantGray {
			t.Errorf("photos[%d] (%s) gray = %v, want %v", i, p.file, p.gray, wantGray)
		}
	}
}
