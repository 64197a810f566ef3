// Package oled shows images on a SSD1322 OLED panel connected over SPI.
//
// The SSD1322 is a 4-bit grayscale controller supporting up to 480x128
// pixels (commonly 256x64). The composed grid is stretched to the panel
// bounds and quantized to 16 gray levels, so this backend is a coarse
// preview surface for headless imaging rigs rather than a faithful one.
package oled

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Opts is the configuration for the panel.
type Opts struct {
	// Panel dimensions in pixels
	W int // Width (default: 256, must be even and ≤480)
	H int // Height (default: 64, must be ≤128)

	Rotated bool // 180° rotation

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// validate checks the panel geometry against SSD1322 limits.
func (o *Opts) validate() error {
	if o.W <= 0 || o.W%2 != 0 || o.W > 480 {
		return errors.New("oled: width must be even and between 2 and 480")
	}
	if o.H <= 0 || o.H > 128 {
		return errors.New("oled: height must be between 1 and 128")
	}
	return nil
}

// Dev is a display backend driving a SSD1322 panel.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinIO  // Reset pin (optional)

	// Panel geometry
	rect         image.Rectangle
	columnOffset int // For centering on 480-column RAM

	// Key-wait input stream
	in io.Reader

	halted bool
}

// New creates a display backend for a SSD1322 panel connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output. opts can be nil to use defaults (256x64 panel).
func New(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 256, H: 64}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// SSD1322 supports Mode0 or Mode3; Mode0 at 10MHz is conservative
	// (the controller accepts up to 20MHz).
	c, err := p.Connect(10*1000000, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		c:            c,
		dc:           dc,
		rst:          opts.RST,
		rect:         image.Rect(0, 0, opts.W, opts.H),
		columnOffset: (480 - opts.W) / 2,
		in:           os.Stdin,
	}

	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// Display stretches img to the panel, writes it as one full frame, blocks
// until a key (followed by enter) is read from stdin, then powers the panel
// off. The name is unused: the panel has no title surface and the grid
// carries its own captions.
func (d *Dev) Display(name string, img image.Image) error {
	_ = name

	if d.halted {
		return errors.New("oled: halted")
	}

	if err := d.writeFrame(packFrame(img, d.rect)); err != nil {
		return err
	}

	// Wait for the key press, then release the panel.
	r := bufio.NewReader(d.in)
	if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
		return fmt.Errorf("oled: wait for key: %w", err)
	}
	return d.Halt()
}

// Bounds returns the panel bounds.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// SetContrast sets the panel contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("oled: halted")
	}
	return d.sendCommands([]byte{0xC1, contrast})
}

// Halt powers the panel off. The device does not respond to further
// commands until re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE) // Display OFF
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("oled.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// init sends the SSD1322 initialization sequence.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("oled: failed to pull RST low: %w", err)
		}
		time.Sleep(200 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("oled: failed to pull RST high: %w", err)
		}
		time.Sleep(200 * time.Millisecond)
	}

	// Remap settings: adjust for rotation.
	remap1, remap2 := byte(0x14), byte(0x11)
	if opts.Rotated {
		remap1 = 0x06
	}

	cmds := []byte{
		0xFD, 0x12, // Unlock command codes
		0xAE,       // Display OFF
		0xB3, 0xF2, // Clock divider and oscillator frequency
		0xCA, byte(opts.H - 1), // MUX ratio
		0xA2, 0x00, // Display offset
		0xA1, 0x00, // Start line
		0xA0, remap1, remap2, // Remap and dual COM mode
		0xAB, 0x01, // Function selection (enable internal VDD)
		0xB4, 0xA0, 0xFD, // VSL (display enhancement)
		0xC1, 0xFF, // Contrast (max)
		0xC7, 0x0F, // Master contrast
		0xB9,       // Use default grayscale table
		0xB1, 0xE2, // Phase length
		0xD1, 0x82, 0x20, // Display enhancements
		0xBB, 0x1F, // Pre-charge voltage
		0xB6, 0x08, // Second pre-charge period
		0xBE, 0x07, // VCOMH voltage
		0xA6, // Normal display mode
		0xA9, // Exit partial display mode
	}

	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	// Clear display RAM, then turn the display on.
	if err := d.writeFrame(make([]byte, d.rect.Dx()*d.rect.Dy()/2)); err != nil {
		return err
	}
	return d.sendCommand(0xAF)
}

// writeFrame writes one full frame of horizontal-nibble pixel data.
// The data must be exactly rect.Dx() * rect.Dy() / 2 bytes.
func (d *Dev) writeFrame(pixels []byte) error {
	if len(pixels) != d.rect.Dx()*d.rect.Dy()/2 {
		return errors.New("oled: invalid frame size")
	}

	// Column addresses are in nibble pairs on the 480-column RAM.
	colStart := byte(d.columnOffset / 2)
	colEnd := byte((d.columnOffset + d.rect.Dx() - 1) / 2)

	commands := []byte{
		0x15, colStart, colEnd, // Column address
		0x75, 0, byte(d.rect.Dy() - 1), // Row address
		0x5C, // Enable write to RAM
	}
	if err := d.sendCommands(commands); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}
