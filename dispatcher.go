package niceview

import (
	"errors"

	"periph.io/x/conn/v3/display"
)

// Dispatcher routes status events to the adapters that listen for them and
// owns the registry of widgets they update.
//
// A Dispatcher is not safe for concurrent use: Init, Publish and Refresh must
// all be called from the same goroutine.
type Dispatcher struct {
	src      Source
	cfg      *config
	adapters []listener
	table    map[EventKind][]listener
	registry Registry
}

// New returns a Dispatcher answering payload-less events from src.
//
// opts can be nil to use DefaultOpts.
func New(src Source, opts *Opts) (*Dispatcher, error) {
	if src == nil {
		return nil, errors.New("niceview: source is required")
	}
	o := DefaultOpts()
	if opts != nil {
		o = *opts
	}
	o, err := o.resolve()
	if err != nil {
		return nil, err
	}
	l, err := NewLayout(o.Tile, o.Length, *o.Rotation)
	if err != nil {
		return nil, err
	}
	g := DefaultGeometry()
	if o.Geometry != nil {
		g = *o.Geometry
	}
	if err := g.validate(&l, o.Profiles); err != nil {
		return nil, err
	}

	d := &Dispatcher{
		src:   src,
		cfg:   &config{opts: o, geom: g, layout: l, palette: newPalette(o.Inverted)},
		table: map[EventKind][]listener{},
	}
	d.adapters = newAdapters(&d.cfg.opts)
	for _, a := range d.adapters {
		for _, k := range a.kinds() {
			if o.NoUSB && k == KindPowerSource {
				continue
			}
			d.table[k] = append(d.table[k], a)
		}
	}
	return d, nil
}

// Init creates a widget flushing to parent, fills its state from fresh
// queries, renders all three regions and registers it.
//
// parent can be nil; the widget then only updates its own Frame.
func (d *Dispatcher) Init(parent display.Drawer) *Widget {
	w := newWidget(d.cfg, parent)
	for _, a := range d.adapters {
		a.prime(d.src, w)
	}
	w.redraw(maskAll)
	d.registry.Register(w)
	debugf("niceview: registered %s, %d widgets", w, d.registry.Len())
	return w
}

// Publish delivers ev to every adapter listening for its kind.
func (d *Dispatcher) Publish(ev Event) {
	if ev == nil {
		return
	}
	d.dispatch(ev.Kind(), ev)
}

// Refresh notifies the adapters listening for kind that the value changed
// without a payload. They query the source instead.
func (d *Dispatcher) Refresh(kind EventKind) {
	d.dispatch(kind, nil)
}

func (d *Dispatcher) dispatch(kind EventKind, ev Event) {
	listeners := d.table[kind]
	debugf("niceview: %s event to %d adapters, %d widgets", kind, len(listeners), d.registry.Len())
	for _, l := range listeners {
		l.handle(d.src, &d.registry, ev)
	}
}

// Registry returns the widgets created by Init.
func (d *Dispatcher) Registry() *Registry {
	return &d.registry
}

// Listeners returns the names of the adapters subscribed to kind, in
// dispatch order.
func (d *Dispatcher) Listeners(kind EventKind) []string {
	var names []string
	for _, l := range d.table[kind] {
		names = append(names, l.name())
	}
	return names
}

// Layout returns the tile placement shared by the widgets of d.
func (d *Dispatcher) Layout() *Layout {
	return &d.cfg.layout
}
