// Package niceview renders the keyboard status screen of a nice!view memory
// LCD: battery and output status, typing speed and the active layer.
//
// The screen is split into three square tiles. Each tile is drawn upright in
// logical coordinates, rotated to match how the panel is mounted and
// composited into one frame that is flushed to a periph.io display.Drawer.
//
// # Regions
//
//	Region  Content                                   Updated by
//	top     endpoint, BLE link mark, charging, battery  battery, output
//	middle  speed gauge, 10 sample trend graph, WPM    speed
//	bottom  profile slots, layer name                  output, layer
//
// With the default 68 pixel tiles on a 160×68 panel the middle tile is fully
// visible and the outer tiles show 46 rows each; see Layout.
//
// # Basic Usage
//
//	src := &niceview.Snapshot{Battery: 80, Endpoint: niceview.EndpointBLE}
//	d, err := niceview.New(src, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	dev, _ := memlcd.NewSPI(port, cs, nil)
//	w := d.Init(dev)
//
//	d.Publish(niceview.BatteryEvent{Level: 55})
//	d.Publish(niceview.SpeedEvent{WPM: 72})
//	d.Refresh(niceview.KindLayer) // re-query the keymap
//
// Every widget created by Init receives every event. Init, Publish and
// Refresh must be called from a single goroutine.
//
// # Events
//
// Each event kind reaches a fixed set of adapters. An adapter merges the
// event's payload, or freshly queried values when there is none, into the
// state of each widget and re-renders only the regions it owns:
//
//	Kind          Adapters
//	power-source  battery, output
//	battery       battery
//	profile       output
//	endpoint      output
//	layer         layer
//	speed         speed
//
// # Debugging
//
// Set NICEVIEW_DEBUG to log event routing.
package niceview
