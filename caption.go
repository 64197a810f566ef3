package gridview

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/microwell/gridview/imagebgr"
)

// Caption geometry: baseline anchor measured from the tile's top-left
// corner, face scale relative to the base size, and stroke weight in
// passes (each pass offsets one pixel to the right).
const (
	captionX        = 10
	captionY        = 30
	captionScale    = 0.9
	captionBaseSize = 24.0
	captionWeight   = 2
)

// captionColor is pure green: distinct from typical image content.
var captionColor = imagebgr.BGR{G: 255}

var captionFace = mustFace()

// mustFace builds the caption face once at package init. The embedded Go
// Regular font cannot fail to parse; a failure here means a broken build.
func mustFace() font.Face {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic("gridview: parse caption font: " + err.Error())
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    captionBaseSize * captionScale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic("gridview: build caption face: " + err.Error())
	}
	return face
}

// drawCaption renders title onto dst at the fixed caption anchor with
// anti-aliased edges. Drawing happens on a tile copy upstream, never on a
// caller-owned image.
func drawCaption(dst draw.Image, title string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(captionColor),
		Face: captionFace,
	}
	// Repeat with a one-pixel horizontal offset to thicken the stroke.
	for off := 0; off < captionWeight; off++ {
		d.Dot = fixed.P(captionX+off, captionY)
		d.DrawString(title)
	}
}
