package oled

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// packFrame stretches src to the panel rectangle, converts it to 4-bit
// grayscale and packs it in horizontal-nibble order: each byte holds two
// pixels, high nibble left, low nibble right.
func packFrame(src image.Image, rect image.Rectangle) []byte {
	gray := image.NewGray(rect)
	xdraw.ApproxBiLinear.Scale(gray, rect, src, src.Bounds(), xdraw.Src, nil)

	w, h := rect.Dx(), rect.Dy()
	out := make([]byte, w*h/2)
	for y := 0; y < h; y++ {
		row := y * gray.Stride
		for x := 0; x < w; x += 2 {
			left := gray.Pix[row+x] >> 4
			right := gray.Pix[row+x+1] >> 4
			out[y*w/2+x/2] = left<<4 | right
		}
	}
	return out
}
