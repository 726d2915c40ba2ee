package niceview

import "strconv"

// EventKind identifies the category of a status event.
type EventKind uint8

const (
	KindPowerSource EventKind = iota
	KindBattery
	KindProfile
	KindEndpoint
	KindLayer
	KindSpeed

	kindCount
)

var kindNames = [kindCount]string{
	KindPowerSource: "power-source",
	KindBattery:     "battery",
	KindProfile:     "profile",
	KindEndpoint:    "endpoint",
	KindLayer:       "layer",
	KindSpeed:       "speed",
}

func (k EventKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Event is a status change notification carrying its payload.
type Event interface {
	Kind() EventKind
}

// PowerSourceEvent reports that external power was connected or removed.
type PowerSourceEvent struct {
	USBPowered bool
}

// BatteryEvent reports a new state of charge. Charging, when non-nil,
// overrides the charging flag otherwise derived from the power source.
type BatteryEvent struct {
	Level    uint8
	Charging *bool
}

// ProfileEvent reports a change of the active BLE profile or its link state.
type ProfileEvent struct {
	Index     uint8
	Connected bool
	Bonded    bool
}

// EndpointEvent reports a change of the selected output transport.
type EndpointEvent struct {
	Endpoint Endpoint
}

// LayerEvent reports a change of the highest active keymap layer. An empty
// Label is resolved through KeymapSource.
type LayerEvent struct {
	Index uint8
	Label string
}

// SpeedEvent reports a typing speed sample in words per minute.
type SpeedEvent struct {
	WPM uint8
}

func (PowerSourceEvent) Kind() EventKind { return KindPowerSource }
func (BatteryEvent) Kind() EventKind     { return KindBattery }
func (ProfileEvent) Kind() EventKind     { return KindProfile }
func (EndpointEvent) Kind() EventKind    { return KindEndpoint }
func (LayerEvent) Kind() EventKind       { return KindLayer }
func (SpeedEvent) Kind() EventKind       { return KindSpeed }

// PowerSource answers battery and external power queries.
type PowerSource interface {
	BatteryLevel() uint8
	USBPowered() bool
}

// EndpointSource answers output transport and BLE profile queries.
type EndpointSource interface {
	SelectedEndpoint() Endpoint
	ActiveProfile() uint8
	ProfileConnected() bool
	ProfileBonded() bool
}

// KeymapSource answers keymap layer queries.
type KeymapSource interface {
	HighestActiveLayer() uint8
	// LayerName returns the configured name of layer index, or "" if it has none.
	LayerName(index uint8) string
}

// SpeedSource answers typing speed queries.
type SpeedSource interface {
	TypingSpeed() uint8
}

// Source is the set of queries used when an event carries no payload for an
// adapter.
type Source interface {
	PowerSource
	EndpointSource
	KeymapSource
	SpeedSource
}

// Snapshot is a Source answering from its fields.
type Snapshot struct {
	Battery    uint8
	USB        bool
	Endpoint   Endpoint
	Profile    uint8
	Connected  bool
	Bonded     bool
	Layer      uint8
	LayerNames []string
	WPM        uint8
}

func (s *Snapshot) BatteryLevel() uint8        { return s.Battery }
func (s *Snapshot) USBPowered() bool           { return s.USB }
func (s *Snapshot) SelectedEndpoint() Endpoint { return s.Endpoint }
func (s *Snapshot) ActiveProfile() uint8       { return s.Profile }
func (s *Snapshot) ProfileConnected() bool     { return s.Connected }
func (s *Snapshot) ProfileBonded() bool        { return s.Bonded }
func (s *Snapshot) HighestActiveLayer() uint8  { return s.Layer }
func (s *Snapshot) TypingSpeed() uint8         { return s.WPM }

func (s *Snapshot) LayerName(index uint8) string {
	if int(index) < len(s.LayerNames) {
		return s.LayerNames[index]
	}
	return ""
}
