package niceview

import (
	"image"
	"strconv"
	"strings"

	"github.com/flavioheleno/niceview/mono"
)

// drawBottom renders the profile slots and the active layer into view.
func drawBottom(img *mono.HorizontalLSB, view image.Rectangle, s *State, g *Geometry, p palette, profiles int) {
	o := view.Min
	for i := 0; i < profiles; i++ {
		r := g.ProfileSlot(i).Add(o)
		if i == int(s.ProfileIndex) {
			mono.FillRect(img, r, p.fg)
		} else {
			mono.StrokeRect(img, r, p.fg)
		}
		drawDigits(img, r.Min.X+1, r.Max.Y+1+digitAscent, strconv.Itoa(i+1), p.fg)
	}

	label := layerText(s, view.Dx()/readoutAdvance)
	x := max((view.Dx()-readoutWidth(label))/2, 0)
	drawReadout(img, o.X+x, o.Y+g.LayerBaseline, label, p.fg)
}

// layerText returns the upper-cased layer label, or "LAYER n" when the layer
// has none, cut to at most n characters.
func layerText(s *State, n int) string {
	text := strings.ToUpper(s.LayerLabel)
	if text == "" {
		text = "LAYER " + strconv.Itoa(int(s.LayerIndex))
	}
	if r := []rune(text); len(r) > n {
		text = string(r[:n])
	}
	return text
}
