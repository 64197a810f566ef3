// Package gridview composes labeled images into a single grid image and
// shows it on a display backend until a key is pressed.
//
// The tool exists to eyeball a fixed set of well-plate inspection images
// side by side: the raw well photo, the original and reworked regions of
// interest, and the merge result. It is an interactive diagnostic utility,
// not a service: every failure is fatal and loud.
//
// # Pipeline
//
// For each image/title pair, in input order:
//
//   - grayscale inputs are expanded to three channels by replicating the
//     value; color inputs pass through unchanged
//   - the image is stretched (not letterboxed) to the cell size
//   - the title is drawn in pure green at a fixed top-left anchor
//
// Cells beyond the supplied image count are filled with black tiles. Tiles
// are concatenated left to right into row strips, strips top to bottom into
// the grid.
//
// # Basic Usage
//
//	images := []image.Image{well, roiGray, roiNew, merged}
//	titles := []string{"Well Image", "Original ROI", "New ROI", "Merged Result"}
//
//	err := gridview.Show(window.New(), images, titles, &gridview.Opts{
//		Rows:  2,
//		Cols:  2,
//		CellW: 420,
//		CellH: 300,
//	})
//
// Show blocks until the backend observes a key press and has torn the
// surface down. Compose is the display-free half, returning the grid image
// for callers that want to encode or inspect it instead.
//
// # Preconditions
//
// len(images) must equal len(titles), and Rows*Cols must cover every
// image. Both are caller bugs and panic with a fixed message before any
// pixel is touched. Inputs are never mutated; every processing step runs
// on a copy.
//
// # Display Backends
//
// Three backends implement display.Displayer:
//
//	window  desktop window via fyne (default)
//	term    inline Kitty graphics in the terminal
//	oled    SSD1322 OLED panel over SPI, for headless rigs
//
// All of them show one named surface, block on the next key press and
// release the surface before returning. No concurrent displays are
// supported; the composer is single-threaded and synchronous end to end.
package gridview
