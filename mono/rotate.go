package mono

import (
	"image"

	"tinygo.org/x/drivers"
)

// SourcePoint returns the pixel of a size x size source that lands on (x, y)
// of the destination once the source is turned clockwise by rot.
// Coordinates are relative to the image origin.
//
//	Rotation0:   (x, y)
//	Rotation90:  (y, size-1-x)
//	Rotation180: (size-1-x, size-1-y)
//	Rotation270: (size-1-y, x)
func SourcePoint(rot drivers.Rotation, size, x, y int) (sx, sy int) {
	switch rot {
	case drivers.Rotation90:
		return y, size - 1 - x
	case drivers.Rotation180:
		return size - 1 - x, size - 1 - y
	case drivers.Rotation270:
		return size - 1 - y, x
	default:
		return x, y
	}
}

// SourceRect maps a destination rectangle back to the source rectangle that
// Rotate moves onto it. Both are relative to the image origin.
func SourceRect(rot drivers.Rotation, size int, r image.Rectangle) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	ax, ay := SourcePoint(rot, size, r.Min.X, r.Min.Y)
	bx, by := SourcePoint(rot, size, r.Max.X-1, r.Max.Y-1)
	return image.Rect(min(ax, bx), min(ay, by), max(ax, bx)+1, max(ay, by)+1)
}

// Supported reports whether Rotate implements rot. Mirrored variants are not.
func Supported(rot drivers.Rotation) bool {
	switch rot {
	case drivers.Rotation0, drivers.Rotation90, drivers.Rotation180, drivers.Rotation270:
		return true
	}
	return false
}

// Rotate writes src into dst turned clockwise by rot. Both images must be
// square, of the same size, and must not share pixel storage. Image dimensions
// never change; only pixel placement does.
func Rotate(dst, src *HorizontalLSB, rot drivers.Rotation) {
	size := src.Rect.Dx()
	if size != src.Rect.Dy() || dst.Rect.Size() != src.Rect.Size() {
		panic("mono: rotation requires square images of equal size")
	}
	if rot == drivers.Rotation0 && dst.Stride == src.Stride {
		copy(dst.Pix, src.Pix)
		return
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sx, sy := SourcePoint(rot, size, x, y)
			dst.SetBit(dst.Rect.Min.X+x, dst.Rect.Min.Y+y, src.BitAt(src.Rect.Min.X+sx, src.Rect.Min.Y+sy))
		}
	}
}
