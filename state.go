package niceview

import "strconv"

// Endpoint is the transport the keyboard currently reports over.
type Endpoint uint8

const (
	EndpointUSB Endpoint = iota
	EndpointBLE
)

func (e Endpoint) String() string {
	switch e {
	case EndpointUSB:
		return "usb"
	case EndpointBLE:
		return "ble"
	}
	return "endpoint(" + strconv.Itoa(int(e)) + ")"
}

// TrendLen is the number of typing speed samples kept per widget.
const TrendLen = 10

// Trend is a fixed window of typing speed samples, oldest first.
// The zero value is a window of ten zero samples.
type Trend [TrendLen]uint8

// Push drops the oldest sample and appends v as the newest.
func (t *Trend) Push(v uint8) {
	copy(t[:TrendLen-1], t[1:])
	t[TrendLen-1] = v
}

// Latest returns the newest sample.
func (t *Trend) Latest() uint8 {
	return t[TrendLen-1]
}

// MinMax returns the smallest and largest samples in the window.
func (t *Trend) MinMax() (lo, hi uint8) {
	lo, hi = t[0], t[0]
	for _, v := range t[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// State is the latest known value of every displayed quantity.
type State struct {
	Battery  uint8 // 0..100
	Charging bool

	Endpoint         Endpoint
	ProfileIndex     uint8
	ProfileConnected bool
	ProfileBonded    bool

	LayerIndex uint8
	LayerLabel string

	Speed Trend
}
