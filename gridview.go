// Package gridview composes labeled images into a single grid for review.
//
// See the doc.go overview and the examples under cmd for how to use this
// package.
package gridview

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/microwell/gridview/display"
	"github.com/microwell/gridview/imagebgr"
)

// Default cell geometry and window name, used when Opts leaves them zero.
const (
	DefaultCellW  = 400
	DefaultCellH  = 300
	DefaultWindow = "Image Overview"
)

// Opts configures a grid composition.
type Opts struct {
	// Grid shape. Rows*Cols must cover every supplied image.
	Rows int
	Cols int

	// Cell geometry in pixels (default: 400x300). Every tile is stretched
	// to exactly this size, without preserving aspect ratio.
	CellW int
	CellH int

	// Window is the surface name handed to the display backend
	// (default: "Image Overview").
	Window string
}

// Compose normalizes, captions and tiles images into a single grid image.
//
// Each image is expanded to three channels if grayscale, stretched to the
// cell size and stamped with its title. Cells beyond len(images) are filled
// with black tiles. Tiles are placed in row-major order, matching input
// order. Inputs are never mutated; all processing happens on copies.
//
// Compose panics if len(images) != len(titles) or if the grid is too small
// to hold every image. These are caller bugs, not runtime conditions.
func Compose(images []image.Image, titles []string, opts *Opts) *imagebgr.Image {
	if opts == nil || opts.Rows <= 0 || opts.Cols <= 0 {
		panic("gridview: grid shape must be positive")
	}
	if len(images) != len(titles) {
		panic("gridview: images and titles count mismatch")
	}
	if opts.Rows*opts.Cols < len(images) {
		panic("gridview: grid size is too small")
	}

	cellW, cellH := opts.CellW, opts.CellH
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}

	cells := opts.Rows * opts.Cols
	tiles := make([]*imagebgr.Image, 0, cells)
	for i, img := range images {
		tiles = append(tiles, makeTile(img, titles[i], cellW, cellH))
	}
	// Fill the remaining cells with black tiles.
	for len(tiles) < cells {
		tiles = append(tiles, imagebgr.New(image.Rect(0, 0, cellW, cellH)))
	}

	// Concatenate: tiles left to right within a row, rows top to bottom.
	grid := imagebgr.New(image.Rect(0, 0, opts.Cols*cellW, opts.Rows*cellH))
	for r := 0; r < opts.Rows; r++ {
		for c := 0; c < opts.Cols; c++ {
			dst := image.Rect(c*cellW, r*cellH, (c+1)*cellW, (r+1)*cellH)
			draw.Draw(grid, dst, tiles[r*opts.Cols+c], image.Point{}, draw.Src)
		}
	}
	return grid
}

// Show composes the grid and hands it to d under the window name from opts.
// It blocks until the display backend observes a key press and has released
// the surface. The composition result is observed only through the display.
func Show(d display.Displayer, images []image.Image, titles []string, opts *Opts) error {
	grid := Compose(images, titles, opts)

	name := DefaultWindow
	if opts.Window != "" {
		name = opts.Window
	}
	return d.Display(name, grid)
}

// EnsureBGR normalizes the channel depth of img. Single-channel images are
// expanded to three channels by replicating the gray value; three-channel
// images are returned unchanged. The input is never written.
func EnsureBGR(img image.Image) image.Image {
	if img, ok := img.(*imagebgr.Image); ok {
		return img
	}
	return imagebgr.FromImage(img)
}

// makeTile produces one fully processed grid cell: normalized, stretched to
// w x h and captioned. The source image is only read.
func makeTile(src image.Image, title string, w, h int) *imagebgr.Image {
	norm := EnsureBGR(src)

	tile := imagebgr.New(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(tile, tile.Rect, norm, norm.Bounds(), xdraw.Src, nil)

	drawCaption(tile, title)
	return tile
}
