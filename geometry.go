package niceview

import (
	"errors"
	"image"
	"strconv"

	"github.com/flavioheleno/niceview/mono"
)

// Geometry holds the element offsets of the three regions. Every position is
// relative to the top-left corner of the region's viewport, in logical
// coordinates.
type Geometry struct {
	// Top region.
	EndpointLabel   image.Point     // baseline origin of "USB" or "BTn"
	StatusMark      image.Rectangle // BLE link mark
	ChargeBolt      image.Rectangle
	Battery         image.Rectangle // body; the terminal nub is drawn past Max.X
	PercentRight    int
	PercentBaseline int

	// Middle region.
	GaugeCenter   image.Point
	GaugeRadius   int
	NeedleInner   int
	NeedleOuter   int
	GraphWidth    int
	GraphHeight   int
	GraphBaseline int
	LabelBaseline int

	// Bottom region.
	ProfileX      int
	ProfileY      int
	ProfilePitch  int
	ProfileSize   int
	LayerBaseline int
}

// DefaultGeometry returns offsets tuned for 68 pixel tiles whose outer regions
// show 46 rows.
func DefaultGeometry() Geometry {
	return Geometry{
		EndpointLabel:   image.Pt(2, 10),
		StatusMark:      image.Rect(24, 3, 30, 9),
		ChargeBolt:      image.Rect(58, 1, 64, 11),
		Battery:         image.Rect(2, 18, 40, 32),
		PercentRight:    67,
		PercentBaseline: 30,

		GaugeCenter:   image.Pt(34, 25),
		GaugeRadius:   22,
		NeedleInner:   8,
		NeedleOuter:   20,
		GraphWidth:    64,
		GraphHeight:   24,
		GraphBaseline: 50,
		LabelBaseline: 66,

		ProfileX:      18,
		ProfileY:      4,
		ProfilePitch:  7,
		ProfileSize:   5,
		LayerBaseline: 32,
	}
}

const (
	arcFrom     = 200.0
	arcTo       = 340.0
	tickLength  = 4
	graphStroke = 2
	nubWidth    = 2
)

// ProfileSlot returns the indicator rectangle of profile slot i.
func (g *Geometry) ProfileSlot(i int) image.Rectangle {
	x := g.ProfileX + i*g.ProfilePitch
	return image.Rect(x, g.ProfileY, x+g.ProfileSize, g.ProfileY+g.ProfileSize)
}

func (g *Geometry) batteryNub() image.Rectangle {
	b := g.Battery
	return image.Rect(b.Max.X, b.Min.Y+b.Dy()/3, b.Max.X+nubWidth, b.Max.Y-b.Dy()/3)
}

// groups returns the bounding boxes of the element groups of r, drawn in a
// viewport width pixels wide.
func (g *Geometry) groups(r Region, profiles, width int) []image.Rectangle {
	switch r {
	case RegionTop:
		lw := max(captionWidth("USB"), captionWidth("BT"+strconv.Itoa(profiles)))
		label := image.Rect(g.EndpointLabel.X, g.EndpointLabel.Y-captionAscent, g.EndpointLabel.X+lw, g.EndpointLabel.Y+captionDescent)
		percent := image.Rect(g.PercentRight-3*readoutAdvance, g.PercentBaseline-readoutAscent, g.PercentRight, g.PercentBaseline+readoutDescent)
		return []image.Rectangle{
			label.Union(g.StatusMark).Union(g.ChargeBolt),
			g.Battery.Union(g.batteryNub()).Union(percent),
		}
	case RegionMiddle:
		c := g.GaugeCenter
		low := max(mono.Polar(c, float64(g.NeedleInner), NeedleAngle(0, 1)).Y, mono.Polar(c, float64(g.GaugeRadius), arcFrom).Y)
		gauge := image.Rect(c.X-g.GaugeRadius, c.Y-max(g.GaugeRadius, g.NeedleOuter), c.X+g.GaugeRadius+1, low+1)
		graph := image.Rect(0, g.GraphBaseline-g.GraphHeight, g.GraphWidth, g.GraphBaseline+graphStroke)
		label := image.Rect(0, g.LabelBaseline-readoutAscent, g.GraphWidth, g.LabelBaseline+readoutDescent)
		return []image.Rectangle{gauge, graph, label}
	case RegionBottom:
		slots := g.ProfileSlot(0).Union(g.ProfileSlot(profiles - 1))
		slots.Max.Y += 1 + digitAscent
		label := image.Rect(0, g.LayerBaseline-readoutAscent, width, g.LayerBaseline+readoutDescent)
		return []image.Rectangle{slots, label}
	}
	return nil
}

// validate checks that every element group fits its viewport and that no two
// groups of a region overlap.
func (g *Geometry) validate(l *Layout, profiles int) error {
	if g.ProfileSize <= 0 || g.ProfilePitch <= g.ProfileSize {
		return errors.New("niceview: profile pitch must exceed a positive profile size")
	}
	if g.GraphWidth < TrendLen || g.GraphHeight <= 0 {
		return errors.New("niceview: graph too small")
	}
	if g.NeedleInner < 0 || g.NeedleOuter <= g.NeedleInner {
		return errors.New("niceview: needle outer radius must exceed inner radius")
	}
	for r := Region(0); r < regionCount; r++ {
		view := l.Viewport(r)
		if view.Empty() {
			continue
		}
		bounds := image.Rectangle{Max: view.Size()}
		groups := g.groups(r, profiles, view.Dx())
		for i, a := range groups {
			if !a.In(bounds) {
				return errors.New("niceview: " + r.String() + " element outside its viewport")
			}
			for _, b := range groups[i+1:] {
				if a.Overlaps(b) {
					return errors.New("niceview: " + r.String() + " elements overlap")
				}
			}
		}
	}
	return nil
}
