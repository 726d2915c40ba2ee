package niceview

// listener is the type-erased face of an adapter, as stored in the dispatch
// table.
type listener interface {
	name() string
	kinds() []EventKind
	handle(src Source, reg *Registry, ev Event)
	prime(src Source, w *Widget)
}

// adapter turns an event (or a nil event, meaning "query everything") into a
// partial state of type T and applies it to every widget.
type adapter[T any] struct {
	Name    string
	Kinds   []EventKind
	Derive  func(src Source, ev Event) T
	Merge   func(s *State, v T)
	Regions regionMask
}

func (a *adapter[T]) name() string       { return a.Name }
func (a *adapter[T]) kinds() []EventKind { return a.Kinds }

func (a *adapter[T]) handle(src Source, reg *Registry, ev Event) {
	v := a.Derive(src, ev)
	reg.ForEach(func(w *Widget) {
		a.Merge(&w.state, v)
		w.redraw(a.Regions)
	})
}

// prime applies freshly queried state to w without rendering.
func (a *adapter[T]) prime(src Source, w *Widget) {
	a.Merge(&w.state, a.Derive(src, nil))
}

type batteryStatus struct {
	level    uint8
	charging bool
}

type layerStatus struct {
	index uint8
	label string
}

type outputStatus struct {
	endpoint  Endpoint
	profile   uint8
	connected bool
	bonded    bool
}

// newAdapters builds the battery, layer, output and speed adapters for o.
func newAdapters(o *Opts) []listener {
	battery := &adapter[batteryStatus]{
		Name:  "battery",
		Kinds: []EventKind{KindBattery, KindPowerSource},
		Derive: func(src Source, ev Event) batteryStatus {
			st := batteryStatus{level: src.BatteryLevel(), charging: src.USBPowered()}
			switch e := ev.(type) {
			case BatteryEvent:
				st.level = e.Level
				if e.Charging != nil {
					st.charging = *e.Charging
				}
			case PowerSourceEvent:
				st.charging = e.USBPowered
			}
			st.level = min(st.level, 100)
			if o.NoUSB {
				st.charging = false
			}
			return st
		},
		Merge: func(s *State, v batteryStatus) {
			s.Battery = v.level
			s.Charging = v.charging
		},
		Regions: maskTop,
	}

	layer := &adapter[layerStatus]{
		Name:  "layer",
		Kinds: []EventKind{KindLayer},
		Derive: func(src Source, ev Event) layerStatus {
			var st layerStatus
			if e, ok := ev.(LayerEvent); ok {
				st = layerStatus{index: e.Index, label: e.Label}
			} else {
				st.index = src.HighestActiveLayer()
			}
			if st.label == "" {
				st.label = src.LayerName(st.index)
			}
			return st
		},
		Merge: func(s *State, v layerStatus) {
			s.LayerIndex = v.index
			s.LayerLabel = v.label
		},
		Regions: maskBottom,
	}

	output := &adapter[outputStatus]{
		Name:  "output",
		Kinds: []EventKind{KindEndpoint, KindProfile, KindPowerSource},
		Derive: func(src Source, ev Event) outputStatus {
			st := outputStatus{
				endpoint:  src.SelectedEndpoint(),
				profile:   src.ActiveProfile(),
				connected: src.ProfileConnected(),
				bonded:    src.ProfileBonded(),
			}
			switch e := ev.(type) {
			case EndpointEvent:
				st.endpoint = e.Endpoint
			case ProfileEvent:
				st.profile = e.Index
				st.connected = e.Connected
				st.bonded = e.Bonded
			}
			st.profile = clamp(st.profile, 0, uint8(o.Profiles-1))
			return st
		},
		Merge: func(s *State, v outputStatus) {
			s.Endpoint = v.endpoint
			s.ProfileIndex = v.profile
			s.ProfileConnected = v.connected
			s.ProfileBonded = v.bonded
		},
		Regions: maskTop | maskBottom,
	}

	speed := &adapter[uint8]{
		Name:  "speed",
		Kinds: []EventKind{KindSpeed},
		Derive: func(src Source, ev Event) uint8 {
			if e, ok := ev.(SpeedEvent); ok {
				return e.WPM
			}
			return src.TypingSpeed()
		},
		Merge: func(s *State, v uint8) {
			s.Speed.Push(v)
		},
		Regions: maskMiddle,
	}

	return []listener{battery, layer, output, speed}
}
