package memlcd

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math/bits"
	"os"

	"github.com/flavioheleno/niceview/mono"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	cmdWrite byte = 0x01
	cmdVCOM  byte = 0x02
	cmdClear byte = 0x04
)

var debug = os.Getenv("MEMLCD_DEBUG") != ""

// Opts is the configuration for the memory LCD.
type Opts struct {
	// Panel dimensions in pixels
	W int // Width (default: 160, at most 1024)
	H int // Height (default: 68, at most 1023)

	// Optional display enable pin, driven high while the panel is in use
	DISP gpio.PinOut

	// Transfer every line on each Draw instead of only the changed ones
	DisableDiff bool
}

// Dev is the device handle for a Sharp memory LCD.
type Dev struct {
	// Communication
	c    conn.Conn   // SPI connection
	cs   gpio.PinOut // Chip select, active high
	disp gpio.PinOut // Display enable (optional)

	rect   image.Rectangle
	stride int

	// Pixel buffers
	buffer []byte              // Lines as last sent to the panel
	next   *mono.HorizontalLSB // Frame being composed by Draw
	tx     []byte              // Transfer scratch

	vcom   byte
	diff   bool
	halted bool
}

// NewSPI creates a new memory LCD connected via SPI.
//
// The SPI port is configured for 2MHz, Mode0, 8-bit transfers with chip
// select driven manually through cs, since the panel expects it active high.
//
// opts can be nil to use defaults (160x68 panel).
func NewSPI(p spi.Port, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 160, H: 68}
	}
	if opts.W <= 0 || opts.W > 1024 {
		return nil, errors.New("memlcd: width must be between 1 and 1024")
	}
	if opts.H <= 0 || opts.H > 1023 {
		return nil, errors.New("memlcd: height must be between 1 and 1023")
	}
	if cs == nil {
		return nil, errors.New("memlcd: chip select pin is required")
	}

	c, err := p.Connect(2*physic.MegaHertz, spi.Mode0|spi.NoCS, 8)
	if err != nil {
		return nil, fmt.Errorf("memlcd: %w", err)
	}

	rect := image.Rect(0, 0, opts.W, opts.H)
	d := &Dev{
		c:      c,
		cs:     cs,
		disp:   opts.DISP,
		rect:   rect,
		stride: mono.StrideFor(opts.W),
		diff:   !opts.DisableDiff,
		vcom:   cmdVCOM,
	}
	d.buffer = make([]byte, d.stride*opts.H)
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init clears the panel and enables its output.
func (d *Dev) init() error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("memlcd: failed to pull CS low: %w", err)
	}
	if err := d.clear(); err != nil {
		return err
	}
	if d.disp != nil {
		if err := d.disp.Out(gpio.High); err != nil {
			return fmt.Errorf("memlcd: failed to pull DISP high: %w", err)
		}
	}
	return nil
}

// transfer sends w in one chip select window.
func (d *Dev) transfer(w []byte) error {
	if err := d.cs.Out(gpio.High); err != nil {
		return err
	}
	err := d.c.Tx(w, nil)
	if err2 := d.cs.Out(gpio.Low); err == nil {
		err = err2
	}
	return err
}

// command sends a two byte command with the current VCOM level and toggles
// VCOM.
func (d *Dev) command(cmd byte) error {
	err := d.transfer(reverse([]byte{cmd | d.vcom, 0x00}))
	d.vcom ^= cmdVCOM
	return err
}

func (d *Dev) clear() error {
	for i := range d.buffer {
		d.buffer[i] = 0xFF
	}
	if d.next != nil {
		copy(d.next.Pix, d.buffer)
	}
	return d.command(cmdClear)
}

// writeLines sends the given lines of pixels, each d.stride bytes long and
// indexed from the top of the panel, in a single transfer.
func (d *Dev) writeLines(lines []int, pixels []byte) error {
	if len(lines) == 0 {
		return nil
	}
	// The line address is 1-indexed. Heights beyond 8 bits carry the high
	// address bits next to the mode bits of the first byte.
	pad := 0
	switch {
	case d.rect.Dy() >= 512:
		pad = 6
	case d.rect.Dy() >= 256:
		pad = 7
	}
	cmd := cmdWrite | d.vcom
	tx := d.tx[:0]
	for _, y := range lines {
		addr := y + 1
		tx = append(tx, cmd|byte(addr>>8)<<pad, byte(addr))
		tx = append(tx, pixels[y*d.stride:(y+1)*d.stride]...)
	}
	tx = append(tx, 0x00, 0x00)
	d.tx = tx
	if debug {
		log.Printf("memlcd: writing %d lines, %d bytes", len(lines), len(tx))
	}
	err := d.transfer(reverse(tx))
	d.vcom ^= cmdVCOM
	return err
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in mono.HorizontalLSB format.
// The data must be exactly d.stride * d.rect.Dy() bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("memlcd: halted")
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("memlcd: invalid buffer size")
	}
	lines := make([]int, d.rect.Dy())
	for y := range lines {
		lines[y] = y
	}
	if err := d.writeLines(lines, pixels); err != nil {
		return 0, err
	}
	copy(d.buffer, pixels)
	if d.next != nil {
		copy(d.next.Pix, pixels)
	}
	return len(pixels), nil
}

// Draw draws an image onto the display, sending only the lines that changed
// unless Opts.DisableDiff is set.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("memlcd: halted")
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	if d.next == nil {
		d.next = mono.NewHorizontalLSB(d.rect)
		copy(d.next.Pix, d.buffer)
	}

	if srcImg, ok := src.(*mono.HorizontalLSB); ok {
		off := sp.Sub(dst.Min)
		for y := dst.Min.Y; y < dst.Max.Y; y++ {
			for x := dst.Min.X; x < dst.Max.X; x++ {
				d.next.SetBit(x, y, srcImg.BitAt(x+off.X, y+off.Y))
			}
		}
	} else {
		draw.Draw(d.next, dst, src, sp, draw.Src)
	}

	lines := d.changedLines()
	if err := d.writeLines(lines, d.next.Pix); err != nil {
		return err
	}
	copy(d.buffer, d.next.Pix)
	return nil
}

// changedLines returns the lines of the next frame that differ from what the
// panel shows, or every line when differential updates are off.
func (d *Dev) changedLines() []int {
	var lines []int
	for y := 0; y < d.rect.Dy(); y++ {
		start := y * d.stride
		end := start + d.stride
		if !d.diff || !bytes.Equal(d.buffer[start:end], d.next.Pix[start:end]) {
			lines = append(lines, y)
		}
	}
	return lines
}

// Hold toggles VCOM without changing any pixel.
//
// The panel must see a VCOM transition at least once per second; call Hold
// from a ticker while the image is idle.
func (d *Dev) Hold() error {
	if d.halted {
		return errors.New("memlcd: halted")
	}
	return d.command(0x00)
}

// Clear blanks the panel and the frame buffer to white.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("memlcd: halted")
	}
	return d.clear()
}

// Halt blanks the panel and disables its output.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	err := d.clear()
	if d.disp != nil {
		if err2 := d.disp.Out(gpio.Low); err == nil {
			err = err2
		}
	}
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("memlcd.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// reverse mirrors the bit order of every byte of b in place and returns it.
// The panel samples the least significant bit first while most SPI hosts
// shift the most significant bit first.
func reverse(b []byte) []byte {
	for i, v := range b {
		b[i] = bits.Reverse8(v)
	}
	return b
}
