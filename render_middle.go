package niceview

import (
	"image"
	"strconv"

	"github.com/flavioheleno/niceview/mono"
)

const (
	gaugeFrom  = 225.0
	gaugeSweep = 90.0
)

// NeedleAngle returns the gauge needle direction, in degrees, for sample on a
// scale of [0, scale]. The sample is clamped to the scale and a non-positive
// scale is treated as 100. The result is always within [225, 315].
func NeedleAngle(sample, scale int) float64 {
	if scale <= 0 {
		scale = 100
	}
	v := clamp(sample, 0, scale)
	return gaugeFrom + float64(v)/float64(scale)*gaugeSweep
}

// SpeedMax returns the gauge scale for t: fixedMax when set, otherwise the
// largest sample of the window, with 0 treated as 100.
func SpeedMax(t *Trend, fixedMax int) int {
	if fixedMax > 0 {
		return fixedMax
	}
	if _, hi := t.MinMax(); hi > 0 {
		return int(hi)
	}
	return 100
}

// GraphPoints maps the samples of t onto the graph band of g, oldest first.
// Points are relative to the viewport origin.
//
// With fixedMax set, samples are scaled from [0, fixedMax]. Otherwise they are
// scaled from the window's own [min, max], where a flat window uses a range
// of 1 and lands on the baseline.
func GraphPoints(t *Trend, fixedMax int, g *Geometry) []image.Point {
	step := (g.GraphWidth - 1) / (TrendLen - 1)
	lo, hi := t.MinMax()
	pts := make([]image.Point, TrendLen)
	for i, v := range t {
		var h int
		if fixedMax > 0 {
			h = clamp(int(v), 0, fixedMax) * g.GraphHeight / fixedMax
		} else {
			span := max(int(hi)-int(lo), 1)
			h = (int(v) - int(lo)) * g.GraphHeight / span
		}
		pts[i] = image.Pt(i*step, g.GraphBaseline-h)
	}
	return pts
}

// drawMiddle renders the typing speed gauge and trend graph into view.
func drawMiddle(img *mono.HorizontalLSB, view image.Rectangle, s *State, g *Geometry, p palette, fixedMax int) {
	o := view.Min
	c := g.GaugeCenter.Add(o)
	r := float64(g.GaugeRadius)

	mono.Arc(img, c, g.GaugeRadius, arcFrom, arcTo, p.fg)
	for a := gaugeFrom; a <= gaugeFrom+gaugeSweep; a += gaugeSweep / 2 {
		mono.Line(img, mono.Polar(c, r-tickLength, a), mono.Polar(c, r, a), p.fg)
	}
	latest := int(s.Speed.Latest())
	a := NeedleAngle(latest, SpeedMax(&s.Speed, fixedMax))
	mono.Line(img, mono.Polar(c, float64(g.NeedleInner), a), mono.Polar(c, float64(g.NeedleOuter), a), p.fg)

	// Dotted grid, one row per quarter of the band.
	top := g.GraphBaseline - g.GraphHeight
	for y := top; y <= g.GraphBaseline; y += max(g.GraphHeight/4, 1) {
		for x := 0; x < g.GraphWidth; x += 4 {
			img.SetBit(o.X+x, o.Y+y, p.fg)
		}
	}
	pts := GraphPoints(&s.Speed, fixedMax, g)
	for i := range pts {
		pts[i] = pts[i].Add(o)
	}
	mono.Polyline(img, pts, graphStroke, p.fg)

	drawCaption(img, o.X, o.Y+g.LabelBaseline, "WPM", p.fg)
	wpm := strconv.Itoa(latest)
	drawReadout(img, o.X+g.GraphWidth-readoutWidth(wpm), o.Y+g.LabelBaseline, wpm, p.fg)
}
