package mono

import (
	"image"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

// fromRows builds a square image from rows of '#' (On) and '.' (Off).
func fromRows(rows ...string) *HorizontalLSB {
	img := NewHorizontalLSB(image.Rect(0, 0, len(rows), len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			img.SetBit(x, y, ch == '#')
		}
	}
	return img
}

func equalPixels(a, b *HorizontalLSB) bool {
	if a.Rect != b.Rect {
		return false
	}
	for y := a.Rect.Min.Y; y < a.Rect.Max.Y; y++ {
		for x := a.Rect.Min.X; x < a.Rect.Max.X; x++ {
			if a.BitAt(x, y) != b.BitAt(x, y) {
				return false
			}
		}
	}
	return true
}

func TestSourcePoint(t *testing.T) {
	tests := []struct {
		name   string
		rot    drivers.Rotation
		x, y   int
		sx, sy int
	}{
		{"0 identity", drivers.Rotation0, 1, 2, 1, 2},
		{"90", drivers.Rotation90, 1, 2, 2, 66},
		{"180", drivers.Rotation180, 1, 2, 66, 65},
		{"270", drivers.Rotation270, 1, 2, 65, 1},
		{"90 corner", drivers.Rotation90, 67, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := SourcePoint(tt.rot, 68, tt.x, tt.y)
			if sx != tt.sx || sy != tt.sy {
				t.Errorf("SourcePoint(%d, 68, %d, %d) = (%d, %d), want (%d, %d)",
					tt.rot, tt.x, tt.y, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestRotate90Fixture(t *testing.T) {
	src := fromRows(
		"##..",
		".#..",
		"....",
		"...#",
	)
	want := fromRows(
		"...#",
		"..##",
		"....",
		"#...",
	)

	dst := NewHorizontalLSB(src.Rect)
	Rotate(dst, src, drivers.Rotation90)

	if !equalPixels(dst, want) {
		t.Errorf("Rotate90 produced %v, want %v", dst.Pix, want.Pix)
	}
}

func TestRotate90MovesOriginToTopRight(t *testing.T) {
	const size = 68
	src := NewHorizontalLSB(image.Rect(0, 0, size, size))
	src.SetBit(0, 0, image1bit.On)

	dst := NewHorizontalLSB(src.Rect)
	Rotate(dst, src, drivers.Rotation90)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			want := image1bit.Bit(x == size-1 && y == 0)
			if got := dst.BitAt(x, y); got != want {
				t.Fatalf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		rot   drivers.Rotation
		turns int
	}{
		{"90 four times", drivers.Rotation90, 4},
		{"270 four times", drivers.Rotation270, 4},
		{"180 twice", drivers.Rotation180, 2},
		{"0 once", drivers.Rotation0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const size = 68
			orig := NewHorizontalLSB(image.Rect(0, 0, size, size))
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					orig.SetBit(x, y, (x*7+y*13)%5 == 0 || x == 3)
				}
			}

			cur := NewHorizontalLSB(orig.Rect)
			copy(cur.Pix, orig.Pix)
			next := NewHorizontalLSB(orig.Rect)
			for i := 0; i < tt.turns; i++ {
				Rotate(next, cur, tt.rot)
				cur, next = next, cur
			}

			if !equalPixels(cur, orig) {
				t.Error("rotation round trip did not restore the original image")
			}
		})
	}
}

func TestRotate90Then270IsIdentity(t *testing.T) {
	src := fromRows(
		"#..",
		"##.",
		"..#",
	)
	mid := NewHorizontalLSB(src.Rect)
	out := NewHorizontalLSB(src.Rect)

	Rotate(mid, src, drivers.Rotation90)
	Rotate(out, mid, drivers.Rotation270)

	if !equalPixels(out, src) {
		t.Error("Rotation270 did not undo Rotation90")
	}
}

func TestRotatePanicsOnNonSquare(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Rotate on a non-square image should panic")
		}
	}()
	src := NewHorizontalLSB(image.Rect(0, 0, 8, 4))
	dst := NewHorizontalLSB(image.Rect(0, 0, 8, 4))
	Rotate(dst, src, drivers.Rotation90)
}

func TestSourceRect(t *testing.T) {
	tests := []struct {
		name string
		rot  drivers.Rotation
		in   image.Rectangle
		want image.Rectangle
	}{
		{"0 identity", drivers.Rotation0, image.Rect(0, 0, 46, 68), image.Rect(0, 0, 46, 68)},
		{"90 right band", drivers.Rotation90, image.Rect(22, 0, 68, 68), image.Rect(0, 0, 68, 46)},
		{"90 left band", drivers.Rotation90, image.Rect(0, 0, 46, 68), image.Rect(0, 22, 68, 68)},
		{"270 left band", drivers.Rotation270, image.Rect(0, 0, 46, 68), image.Rect(0, 0, 68, 46)},
		{"empty", drivers.Rotation90, image.Rectangle{}, image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SourceRect(tt.rot, 68, tt.in); got != tt.want {
				t.Errorf("SourceRect(%d, 68, %v) = %v, want %v", tt.rot, tt.in, got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for _, rot := range []drivers.Rotation{drivers.Rotation0, drivers.Rotation90, drivers.Rotation180, drivers.Rotation270} {
		if !Supported(rot) {
			t.Errorf("Supported(%d) = false, want true", rot)
		}
	}
	if Supported(drivers.Rotation(7)) {
		t.Error("Supported(7) = true, want false")
	}
}
