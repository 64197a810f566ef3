// Package imagebgr provides a 3-channel B-G-R image format for grid composition.
//
// Pixels are stored as three consecutive bytes per pixel in B, G, R order,
// matching the channel layout produced by common camera and microscopy
// pipelines. This package provides the BGR color type and the Image
// implementation used for tiles and composed grids.
package imagebgr

import (
	"image"
	"image/color"
)

// BGR represents a 24-bit color with 8 bits per channel, stored in
// blue-green-red order. There is no alpha channel; BGR is always opaque.
type BGR struct {
	B, G, R uint8
}

// RGBA converts the BGR color to standard 16-bit-per-channel RGBA.
func (c BGR) RGBA() (r, g, b, a uint32) {
	// Scale 8-bit values (0-255) to 16-bit (0-65535).
	// 0xFF * 0x101 = 0xFFFF, 0x80 * 0x101 = 0x8080, etc.
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xFFFF
}

// toBGR converts any color.Color to BGR.
func toBGR(c color.Color) color.Color {
	if c, ok := c.(BGR); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit values; alpha is discarded since BGR is opaque.
	// Grayscale colors replicate naturally: their R, G and B are equal.
	return BGR{B: uint8(b >> 8), G: uint8(g >> 8), R: uint8(r >> 8)}
}

// BGRModel converts colors to BGR.
var BGRModel = color.ModelFunc(toBGR)

// Image is an in-memory image whose pixels are packed BGR triplets.
// It implements both image.Image and draw.Image.
type Image struct {
	Pix    []uint8         // Pixel data, 3 bytes per pixel in B, G, R order
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// New creates a new Image with the specified bounds.
// All pixels start as zero, i.e. fully black.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}

	stride := w * 3
	return &Image{
		Pix:    make([]uint8, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// FromImage copy-converts an arbitrary image into a fresh Image.
// The source is read but never written.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := New(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetBGR(x, y, BGRModel.Convert(src.At(x, y)).(BGR))
		}
	}
	return dst
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return BGRModel
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.BGRAt(x, y)
}

// BGRAt returns the BGR color of the pixel at (x, y).
func (p *Image) BGRAt(x, y int) BGR {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return BGR{}
	}
	i := p.PixOffset(x, y)
	return BGR{B: p.Pix[i], G: p.Pix[i+1], R: p.Pix[i+2]}
}

// Set sets the color of the pixel at (x, y).
// It implements the draw.Image interface.
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	bgr := BGRModel.Convert(c).(BGR)
	p.Pix[i] = bgr.B
	p.Pix[i+1] = bgr.G
	p.Pix[i+2] = bgr.R
}

// SetBGR sets the BGR color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetBGR(x, y int, c BGR) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = c.B
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.R
}

// PixOffset returns the index into Pix of the first byte (blue channel)
// of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Opaque reports whether the image is fully opaque. It always is.
func (p *Image) Opaque() bool {
	return true
}
