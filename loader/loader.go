// Package loader decodes image files from disk for grid composition.
//
// PNG, JPEG, GIF, TIFF and BMP decode through disintegration/imaging;
// .qoi files decode through the QOI reference codec.
package loader

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/kriticalflare/qoi"
)

// Load decodes the image at path. With gray set, the result is a
// single-channel *image.Gray; otherwise the decoded color image is
// returned as-is.
//
// A missing or undecodable file yields an error naming the path. Callers
// treat load failures as fatal: there is no fallback image.
func Load(path string, gray bool) (image.Image, error) {
	img, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	if gray {
		return toGray(img), nil
	}
	return img, nil
}

// open decodes by file extension.
func open(path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".qoi") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return qoi.ImageDecode(f)
	}
	return imaging.Open(path)
}

// toGray converts img to a single-channel grayscale image.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x, y, img.At(x, y))
		}
	}
	return g
}
