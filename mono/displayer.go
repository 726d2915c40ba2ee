package mono

import (
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*HorizontalLSB)(nil)

// Size returns the image dimensions. Together with SetPixel and Display it lets
// tinyfont and other tinygo.org/x/drivers consumers draw into the image.
func (p *HorizontalLSB) Size() (x, y int16) {
	return int16(p.Rect.Dx()), int16(p.Rect.Dy())
}

// SetPixel sets the pixel at (x, y), relative to the image origin.
func (p *HorizontalLSB) SetPixel(x, y int16, c color.RGBA) {
	p.SetBit(p.Rect.Min.X+int(x), p.Rect.Min.Y+int(y), image1bit.BitModel.Convert(c).(image1bit.Bit))
}

// Display is a no-op: the image is an offscreen buffer.
func (p *HorizontalLSB) Display() error {
	return nil
}

// RGBA returns b as the color.RGBA value the drivers.Displayer API expects.
func RGBA(b image1bit.Bit) color.RGBA {
	if b {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	return color.RGBA{A: 0xFF}
}
