// Command gridview loads the four well-plate inspection images, composes
// them into a captioned 2x2 grid and shows the grid on the selected
// display backend until a key is pressed.
//
// Backends:
//
//	-display window   desktop window (default)
//	-display term     inline Kitty graphics in the terminal
//	-display oled     SSD1322 OLED panel over SPI
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/microwell/gridview"
	"github.com/microwell/gridview/display"
	"github.com/microwell/gridview/display/oled"
	"github.com/microwell/gridview/display/term"
	"github.com/microwell/gridview/display/window"
	"github.com/microwell/gridview/loader"
)

// photo names one image of the fixed review set.
type photo struct {
	file  string
	title string
	gray  bool
}

// photos is the well-plate inspection set, shown in this order.
var photos = []photo{
	{"result_well.png", "Well Image", false},
	{"ROI_image.png", "Original ROI", true},
	{"ROI_image_new.png", "New ROI", false},
	{"merge_finish.png", "Merged Result", false},
}

// config is built once from flags at startup; no process-wide mutable
// state exists beyond it.
type config struct {
	photoDir string
	backend  string
	window   string
	cellW    int
	cellH    int

	// oled backend
	spiBus   string
	dcPin    string
	oledW    int
	oledH    int
	oledFlip bool

	logLevel  string
	logFormat string
}

func main() {
	cfg := parseFlags(os.Args[1:])
	slog.SetDefault(newLogger(cfg.logLevel, cfg.logFormat, os.Stderr))

	if err := run(cfg); err != nil {
		slog.Error("gridview failed", "err", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) *config {
	cfg := &config{}
	fs := flag.NewFlagSet("gridview", flag.ExitOnError)

	fs.StringVar(&cfg.photoDir, "photos", "Photos", "Directory holding the inspection images")
	fs.StringVar(&cfg.backend, "display", "window", "Display backend: window, term or oled")
	fs.StringVar(&cfg.window, "window", "All Images Overview", "Window name")
	cell := fs.String("cell", "420x300", "Grid cell size as WxH in pixels")

	fs.StringVar(&cfg.spiBus, "spi", "", "SPI bus name for the oled backend (empty for default)")
	fs.StringVar(&cfg.dcPin, "dc", "GPIO25", "Data/Command pin name for the oled backend")
	fs.IntVar(&cfg.oledW, "oled-width", 256, "OLED panel width in pixels")
	fs.IntVar(&cfg.oledH, "oled-height", 64, "OLED panel height in pixels")
	fs.BoolVar(&cfg.oledFlip, "oled-rotated", false, "Rotate the OLED panel 180°")

	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "Log format: text or json")

	fs.Parse(args)

	var err error
	cfg.cellW, cfg.cellH, err = parseCell(*cell)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}

// parseCell parses a WxH size such as "420x300".
func parseCell(s string) (w, h int, err error) {
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid cell size %q (expected WxH)", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid cell size %q (dimensions must be positive)", s)
	}
	return w, h, nil
}

func run(cfg *config) error {
	images := make([]image.Image, 0, len(photos))
	titles := make([]string, 0, len(photos))
	for _, p := range photos {
		path := filepath.Join(cfg.photoDir, p.file)
		img, err := loader.Load(path, p.gray)
		if err != nil {
			return err
		}
		slog.Debug("image loaded", "path", path, "bounds", img.Bounds(), "gray", p.gray)
		images = append(images, img)
		titles = append(titles, p.title)
	}

	d, err := newDisplayer(cfg)
	if err != nil {
		return err
	}

	slog.Info("showing grid",
		"backend", cfg.backend,
		"window", cfg.window,
		"cell", fmt.Sprintf("%dx%d", cfg.cellW, cfg.cellH))

	return gridview.Show(d, images, titles, &gridview.Opts{
		Rows:   2,
		Cols:   2,
		CellW:  cfg.cellW,
		CellH:  cfg.cellH,
		Window: cfg.window,
	})
}

// newDisplayer builds the display backend selected by the config.
func newDisplayer(cfg *config) (display.Displayer, error) {
	switch cfg.backend {
	case "window":
		return window.New(), nil
	case "term":
		return term.New(), nil
	case "oled":
		return newOLED(cfg)
	default:
		return nil, fmt.Errorf("unknown display backend %q", cfg.backend)
	}
}

// newOLED brings up the periph.io host and opens the SPI-attached panel.
func newOLED(cfg *config) (display.Displayer, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initialize periph host: %w", err)
	}
	b, err := spireg.Open(cfg.spiBus)
	if err != nil {
		return nil, fmt.Errorf("open SPI bus: %w", err)
	}
	pin := gpioreg.ByName(cfg.dcPin)
	if pin == nil {
		return nil, errors.New("GPIO pin " + cfg.dcPin + " not found")
	}
	return oled.New(b, pin, &oled.Opts{
		W:       cfg.oledW,
		H:       cfg.oledH,
		Rotated: cfg.oledFlip,
	})
}
