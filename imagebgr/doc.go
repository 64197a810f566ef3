// Package imagebgr provides a 3-channel B-G-R image format used for grid tiles.
//
// Each pixel is stored as three consecutive bytes in blue, green, red order,
// the channel layout produced by common camera and microscopy pipelines.
// There is no alpha channel; every pixel is fully opaque.
//
// Memory layout example for a 2-pixel row:
//
//	Pixels:  0          1
//	Colors:  red        green
//	Bytes:   00 00 FF   00 FF 00
//	         (B  G  R)  (B  G  R)
//
// This package provides:
//
// - BGR: a color type holding one 8-bit value per channel
// - BGRModel: a color model for converting standard Go colors to BGR
// - Image: an image.Image and draw.Image implementation over packed BGR bytes
//
// Grayscale colors convert by channel replication: a gray pixel of value v
// becomes the triplet (v, v, v), with no colorization applied.
//
// Example usage:
//
//	// Create a 420x300 image, fully black
//	img := imagebgr.New(image.Rect(0, 0, 420, 300))
//
//	// Set a pixel to pure green
//	img.SetBGR(10, 20, imagebgr.BGR{G: 255})
//
//	// Get a pixel
//	c := img.BGRAt(10, 20)
//	println(c.G) // Output: 255
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(imagebgr.BGR{R: 255}), image.Point{}, draw.Src)
package imagebgr
