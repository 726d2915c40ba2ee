package niceview

import (
	"image"
	"strconv"

	"github.com/flavioheleno/niceview/mono"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// drawTop renders the output and battery status into view.
func drawTop(img *mono.HorizontalLSB, view image.Rectangle, s *State, g *Geometry, p palette) {
	o := view.Min

	label := "USB"
	if s.Endpoint == EndpointBLE {
		label = "BT" + strconv.Itoa(int(s.ProfileIndex)+1)
		drawLinkMark(img, g.StatusMark.Add(o), s, p.fg)
	}
	drawCaption(img, o.X+g.EndpointLabel.X, o.Y+g.EndpointLabel.Y, label, p.fg)

	if s.Charging {
		drawBolt(img, g.ChargeBolt.Add(o), p.fg)
	}

	body := g.Battery.Add(o)
	mono.StrokeRect(img, body, p.fg)
	mono.FillRect(img, g.batteryNub().Add(o), p.fg)
	inner := body.Inset(2)
	level := int(min(s.Battery, 100))
	mono.FillRect(img, image.Rect(inner.Min.X, inner.Min.Y, inner.Min.X+inner.Dx()*level/100, inner.Max.Y), p.fg)

	pct := strconv.Itoa(level)
	drawReadout(img, o.X+g.PercentRight-readoutWidth(pct), o.Y+g.PercentBaseline, pct, p.fg)
}

// drawLinkMark shows the link state of the active profile: filled when
// connected, outlined when bonded, crossed when open.
func drawLinkMark(img *mono.HorizontalLSB, r image.Rectangle, s *State, c image1bit.Bit) {
	switch {
	case s.ProfileConnected:
		mono.FillRect(img, r, c)
	case s.ProfileBonded:
		mono.StrokeRect(img, r, c)
	default:
		mono.Line(img, r.Min, r.Max.Sub(image.Pt(1, 1)), c)
		mono.Line(img, image.Pt(r.Max.X-1, r.Min.Y), image.Pt(r.Min.X, r.Max.Y-1), c)
	}
}

func drawBolt(img *mono.HorizontalLSB, r image.Rectangle, c image1bit.Bit) {
	midY := r.Min.Y + r.Dy()/2
	mono.Polyline(img, []image.Point{
		{r.Max.X - 1, r.Min.Y},
		{r.Min.X, midY},
		{r.Max.X - 1, midY},
		{r.Min.X, r.Max.Y - 1},
	}, 1, c)
}
