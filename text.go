package niceview

import (
	"image"

	"github.com/flavioheleno/niceview/mono"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Captions use proggy, slot numbers use Picopixel and readouts use the 7x13
// bitmap face. Heights are measured from the baseline, in pixels.
var (
	captionFont tinyfont.Fonter = &proggy.TinySZ8pt7b
	digitFont   tinyfont.Fonter = &tinyfont.Picopixel
	readoutFace font.Face       = basicfont.Face7x13
)

const (
	captionAscent  = 9
	captionDescent = 2
	digitAscent    = 6
	readoutAscent  = 11
	readoutDescent = 2
	readoutAdvance = 7
)

func drawCaption(img *mono.HorizontalLSB, x, baseline int, s string, c image1bit.Bit) {
	tinyfont.WriteLine(img, captionFont, int16(x), int16(baseline), s, mono.RGBA(c))
}

func captionWidth(s string) int {
	_, outbox := tinyfont.LineWidth(captionFont, s)
	return int(outbox)
}

func drawDigits(img *mono.HorizontalLSB, x, baseline int, s string, c image1bit.Bit) {
	tinyfont.WriteLine(img, digitFont, int16(x), int16(baseline), s, mono.RGBA(c))
}

func drawReadout(img *mono.HorizontalLSB, x, baseline int, s string, c image1bit.Bit) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: readoutFace,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

func readoutWidth(s string) int {
	return font.MeasureString(readoutFace, s).Round()
}
