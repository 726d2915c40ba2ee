package niceview

import (
	"fmt"
	"image"
	"log"

	"github.com/flavioheleno/niceview/mono"
	"periph.io/x/conn/v3/display"
)

// config is the resolved configuration shared by all widgets of a
// Dispatcher.
type config struct {
	opts    Opts
	geom    Geometry
	layout  Layout
	palette palette
}

// Widget is one status screen instance: three rendered tiles, the frame they
// are composited into and the state they show.
//
// Widgets are created by Dispatcher.Init and live as long as the program.
type Widget struct {
	cfg    *config
	parent display.Drawer
	state  State

	canvas *mono.HorizontalLSB // logical drawing surface, rotation source
	tiles  [regionCount]*mono.HorizontalLSB
	frame  *mono.HorizontalLSB
}

func newWidget(cfg *config, parent display.Drawer) *Widget {
	square := image.Rect(0, 0, cfg.layout.Tile, cfg.layout.Tile)
	w := &Widget{
		cfg:    cfg,
		parent: parent,
		canvas: mono.NewHorizontalLSB(square),
		frame:  mono.NewHorizontalLSB(cfg.layout.Frame()),
	}
	for i := range w.tiles {
		w.tiles[i] = mono.NewHorizontalLSB(square)
	}
	return w
}

func (w *Widget) String() string {
	f := w.cfg.layout.Frame()
	return fmt.Sprintf("niceview.Widget{%dx%d}", f.Dx(), f.Dy())
}

// Frame returns the composited image, the widget's root drawable.
func (w *Widget) Frame() *mono.HorizontalLSB {
	return w.frame
}

// State returns a copy of the state the widget currently shows.
func (w *Widget) State() State {
	return w.state
}

// Tile returns the rotated tile of r.
func (w *Widget) Tile(r Region) *mono.HorizontalLSB {
	return w.tiles[r]
}

// Layout returns the tile placement used by the widget.
func (w *Widget) Layout() *Layout {
	return &w.cfg.layout
}

// redraw renders, composites and flushes every region in m.
func (w *Widget) redraw(m regionMask) {
	for r := Region(0); r < regionCount; r++ {
		if m.has(r) {
			w.render(r)
		}
	}
}

// render draws region r on the canvas, rotates it into its tile and pushes
// the tile's visible part to the frame and the parent.
func (w *Widget) render(r Region) {
	c := w.cfg
	view := c.layout.Viewport(r)
	w.canvas.Fill(c.palette.bg)
	switch r {
	case RegionTop:
		drawTop(w.canvas, view, &w.state, &c.geom, c.palette)
	case RegionMiddle:
		drawMiddle(w.canvas, view, &w.state, &c.geom, c.palette, c.opts.FixedRangeMax)
	case RegionBottom:
		drawBottom(w.canvas, view, &w.state, &c.geom, c.palette, c.opts.Profiles)
	}
	mono.Rotate(w.tiles[r], w.canvas, c.layout.Rotation)
	w.composite(r)
}

// composite copies the visible part of tile r into the frame and flushes it.
func (w *Widget) composite(r Region) {
	vis := w.cfg.layout.Visible(r)
	origin := w.cfg.layout.Origin(r)
	tile := w.tiles[r]
	for y := vis.Min.Y; y < vis.Max.Y; y++ {
		for x := vis.Min.X; x < vis.Max.X; x++ {
			w.frame.SetBit(x, y, tile.BitAt(x-origin.X, y-origin.Y))
		}
	}
	w.flush(vis)
}

func (w *Widget) flush(rect image.Rectangle) {
	if w.parent == nil || rect.Empty() {
		return
	}
	if err := w.parent.Draw(rect, w.frame, rect.Min); err != nil {
		log.Printf("niceview: flush %v to %s: %v", rect, w.parent, err)
	}
}
