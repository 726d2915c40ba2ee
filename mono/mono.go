package mono

import (
	"image"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// HorizontalLSB is a 1-bit image where each byte holds 8 horizontally adjacent
// pixels, leftmost pixel in the least significant bit.
type HorizontalLSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per row, always even
	Rect   image.Rectangle // Image bounds
}

// NewHorizontalLSB creates a new HorizontalLSB image with the specified bounds.
// All pixels start as image1bit.Off.
func NewHorizontalLSB(r image.Rectangle) *HorizontalLSB {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &HorizontalLSB{Rect: r}
	}
	stride := StrideFor(w)
	return &HorizontalLSB{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// StrideFor returns the number of bytes per row for an image w pixels wide.
// Rows are padded to 16 bits.
func StrideFor(w int) int {
	return (w + 15) / 16 * 2
}

// ColorModel returns the color model of the image.
func (p *HorizontalLSB) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds.
func (p *HorizontalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *HorizontalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y). Out of bounds reads return Off.
func (p *HorizontalLSB) BitAt(x, y int) image1bit.Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return image1bit.Off
	}
	offset, mask := p.pixOffset(x, y)
	return image1bit.Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *HorizontalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, image1bit.BitModel.Convert(c).(image1bit.Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *HorizontalLSB) SetBit(x, y int, b image1bit.Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Fill sets every pixel, padding bits included, to b.
func (p *HorizontalLSB) Fill(b image1bit.Bit) {
	v := byte(0x00)
	if b {
		v = 0xFF
	}
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// Row returns the packed bytes of row y, padding included.
// It returns nil when y is outside the image.
func (p *HorizontalLSB) Row(y int) []byte {
	if y < p.Rect.Min.Y || y >= p.Rect.Max.Y {
		return nil
	}
	start := (y - p.Rect.Min.Y) * p.Stride
	return p.Pix[start : start+p.Stride]
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Bit 0 of each byte holds the leftmost of its 8 pixels.
func (p *HorizontalLSB) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 1 << uint(dx%8)
	return
}
