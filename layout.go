package niceview

import (
	"errors"
	"image"
	"strconv"

	"github.com/flavioheleno/niceview/mono"
	"tinygo.org/x/drivers"
)

// Region names one of the three tiles of a widget.
type Region uint8

const (
	RegionTop Region = iota
	RegionMiddle
	RegionBottom

	regionCount
)

func (r Region) String() string {
	switch r {
	case RegionTop:
		return "top"
	case RegionMiddle:
		return "middle"
	case RegionBottom:
		return "bottom"
	}
	return "region(" + strconv.Itoa(int(r)) + ")"
}

type regionMask uint8

const (
	maskTop    regionMask = 1 << RegionTop
	maskMiddle regionMask = 1 << RegionMiddle
	maskBottom regionMask = 1 << RegionBottom
	maskAll               = maskTop | maskMiddle | maskBottom
)

func (m regionMask) has(r Region) bool {
	return m&(1<<r) != 0
}

// Layout places the three rotated tiles of a widget along the long side of
// the panel.
//
// The middle tile is centered and fully visible. The outer tiles sit flush
// with the panel edges and are clipped where they meet the middle tile, so
// each frame pixel belongs to exactly one tile.
type Layout struct {
	Tile     int
	Length   int
	Rotation drivers.Rotation

	frame    image.Rectangle
	origin   [regionCount]image.Point
	visible  [regionCount]image.Rectangle
	viewport [regionCount]image.Rectangle
}

// NewLayout computes the placement of tile x tile tiles on a panel whose long
// side is length pixels, once turned by rot.
func NewLayout(tile, length int, rot drivers.Rotation) (Layout, error) {
	if tile <= 0 {
		return Layout{}, errors.New("niceview: tile must be positive")
	}
	if length < tile || length > 3*tile {
		return Layout{}, errors.New("niceview: length must be between tile and 3*tile")
	}
	if !mono.Supported(rot) {
		return Layout{}, errors.New("niceview: unsupported rotation")
	}
	l := Layout{Tile: tile, Length: length, Rotation: rot}
	horizontal := rot == drivers.Rotation90 || rot == drivers.Rotation270
	if horizontal {
		l.frame = image.Rect(0, 0, length, tile)
	} else {
		l.frame = image.Rect(0, 0, tile, length)
	}

	mid := (length - tile) / 2
	starts := [3]int{0, mid, length - tile}
	spans := [3][2]int{{0, mid}, {mid, mid + tile}, {mid + tile, length}}

	// Rotation90 and Rotation180 send the logical top edge to the far end
	// of the long axis.
	slots := [regionCount]int{RegionTop: 0, RegionMiddle: 1, RegionBottom: 2}
	if rot == drivers.Rotation90 || rot == drivers.Rotation180 {
		slots[RegionTop], slots[RegionBottom] = 2, 0
	}

	for r := Region(0); r < regionCount; r++ {
		s := slots[r]
		lo, hi := spans[s][0], spans[s][1]
		if horizontal {
			l.origin[r] = image.Pt(starts[s], 0)
			l.visible[r] = image.Rect(lo, 0, hi, tile)
		} else {
			l.origin[r] = image.Pt(0, starts[s])
			l.visible[r] = image.Rect(0, lo, tile, hi)
		}
		l.viewport[r] = mono.SourceRect(rot, tile, l.visible[r].Sub(l.origin[r]))
	}
	return l, nil
}

// Frame returns the bounds of the composited physical image.
func (l *Layout) Frame() image.Rectangle {
	return l.frame
}

// Origin returns where the tile of r is placed in the frame.
func (l *Layout) Origin(r Region) image.Point {
	return l.origin[r]
}

// Visible returns the part of the frame showing the tile of r.
func (l *Layout) Visible(r Region) image.Rectangle {
	return l.visible[r]
}

// Viewport returns the visible part of the tile of r in logical (unrotated)
// coordinates.
func (l *Layout) Viewport(r Region) image.Rectangle {
	return l.viewport[r]
}
