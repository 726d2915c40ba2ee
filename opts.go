package niceview

import (
	"errors"

	"github.com/flavioheleno/niceview/mono"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

// Opts contains the widget configuration.
type Opts struct {
	// Tile is the side of the square region tiles, in pixels.
	Tile int
	// Length is the long side of the physical panel, in pixels.
	Length int
	// Rotation is applied to every tile before compositing. Only the four
	// unmirrored rotations are supported. nil uses drivers.Rotation90, the
	// landscape nice!view mounting.
	Rotation *drivers.Rotation
	// Inverted draws white ink on a black background.
	Inverted bool
	// Profiles is the number of BLE profile slots shown.
	Profiles int
	// FixedRangeMax, when non-zero, scales the speed gauge and graph to
	// [0, FixedRangeMax] instead of the window's own range.
	FixedRangeMax int
	// NoUSB ignores power-source events; the charging mark is never shown.
	NoUSB bool
	// Geometry overrides the element offsets. nil uses DefaultGeometry.
	Geometry *Geometry
}

// DefaultOpts returns the configuration for a nice!view mounted on a
// nice!nano: 68 pixel tiles on a 160x68 panel rotated by 90 degrees.
func DefaultOpts() Opts {
	var rot drivers.Rotation = drivers.Rotation90
	return Opts{
		Tile:     68,
		Length:   160,
		Rotation: &rot,
		Profiles: 5,
	}
}

// resolve fills zero and nil fields with defaults and validates the result.
func (o Opts) resolve() (Opts, error) {
	def := DefaultOpts()
	if o.Tile == 0 {
		o.Tile = def.Tile
	}
	if o.Length == 0 {
		o.Length = def.Length
	}
	if o.Profiles == 0 {
		o.Profiles = def.Profiles
	}
	if o.Rotation == nil {
		o.Rotation = def.Rotation
	} else {
		rot := *o.Rotation
		o.Rotation = &rot
	}
	if o.Tile < 0 || o.Length < 0 {
		return o, errors.New("niceview: tile and length must be positive")
	}
	if !mono.Supported(*o.Rotation) {
		return o, errors.New("niceview: unsupported rotation")
	}
	if o.Profiles < 1 || o.Profiles > 256 {
		return o, errors.New("niceview: profiles must be between 1 and 256")
	}
	if o.FixedRangeMax < 0 || o.FixedRangeMax > 255 {
		return o, errors.New("niceview: fixed range max must be between 0 and 255")
	}
	return o, nil
}

// palette holds the two inks of a widget.
type palette struct {
	fg, bg image1bit.Bit
}

func newPalette(inverted bool) palette {
	if inverted {
		return palette{fg: image1bit.On, bg: image1bit.Off}
	}
	return palette{fg: image1bit.Off, bg: image1bit.On}
}
