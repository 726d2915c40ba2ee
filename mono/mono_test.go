package mono

import (
	"image"
	"image/color"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

func TestStrideFor(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"one pixel", 1, 2},
		{"exactly 16", 16, 2},
		{"17 pads to 32", 17, 4},
		{"tile 68", 68, 10},
		{"panel 160", 160, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrideFor(tt.width); got != tt.want {
				t.Errorf("StrideFor(%d) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestNewHorizontalLSB(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"68x68", image.Rect(0, 0, 68, 68), 10, 680},
		{"160x68", image.Rect(0, 0, 160, 68), 20, 1360},
		{"3x2", image.Rect(0, 0, 3, 2), 2, 4},
		{"offset rect", image.Rect(10, 20, 18, 22), 2, 4},
		{"empty", image.Rect(0, 0, 0, 4), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewHorizontalLSB(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestHorizontalLSBBitPacking(t *testing.T) {
	img := NewHorizontalLSB(image.Rect(0, 0, 16, 2))

	img.SetBit(0, 0, image1bit.On)
	img.SetBit(3, 0, image1bit.On)
	img.SetBit(9, 0, image1bit.On)
	img.SetBit(15, 1, image1bit.On)

	// Leftmost pixel lives in bit 0.
	if img.Pix[0] != 0x09 {
		t.Errorf("Pix[0] = 0x%02X, want 0x09", img.Pix[0])
	}
	if img.Pix[1] != 0x02 {
		t.Errorf("Pix[1] = 0x%02X, want 0x02", img.Pix[1])
	}
	if img.Pix[3] != 0x80 {
		t.Errorf("Pix[3] = 0x%02X, want 0x80", img.Pix[3])
	}
}

func TestHorizontalLSBSetGet(t *testing.T) {
	img := NewHorizontalLSB(image.Rect(0, 0, 4, 2))
	pattern := [][4]image1bit.Bit{
		{image1bit.On, image1bit.Off, image1bit.On, image1bit.Off},
		{image1bit.Off, image1bit.On, image1bit.On, image1bit.On},
	}

	for y, row := range pattern {
		for x, b := range row {
			img.SetBit(x, y, b)
		}
	}

	for y, row := range pattern {
		for x, want := range row {
			if got := img.BitAt(x, y); got != want {
				t.Errorf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	img.SetBit(2, 0, image1bit.Off)
	if img.BitAt(2, 0) != image1bit.Off {
		t.Error("SetBit(2, 0, Off) did not clear the pixel")
	}
}

func TestHorizontalLSBAt(t *testing.T) {
	img := NewHorizontalLSB(image.Rect(0, 0, 2, 2))
	img.SetBit(1, 1, image1bit.On)

	c := img.At(1, 1)
	b, ok := c.(image1bit.Bit)
	if !ok {
		t.Fatalf("At(1, 1) returned %T, want image1bit.Bit", c)
	}
	if b != image1bit.On {
		t.Errorf("At(1, 1) = %v, want On", b)
	}
}

func TestHorizontalLSBSet(t *testing.T) {
	img := NewHorizontalLSB(image.Rect(0, 0, 2, 1))

	img.Set(0, 0, color.White)
	if img.BitAt(0, 0) != image1bit.On {
		t.Error("Set(0, 0, color.White) should turn the pixel On")
	}

	img.Set(0, 0, color.Black)
	if img.BitAt(0, 0) != image1bit.Off {
		t.Error("Set(0, 0, color.Black) should turn the pixel Off")
	}
}

func TestHorizontalLSBColorModel(t *testing.T) {
	img := NewHorizontalLSB(image.Rect(0, 0, 4, 4))
	if img.ColorModel() != image1bit.BitModel {
		t.Error("ColorModel() did not return image1bit.BitModel")
	}
}

func TestHorizontalLSBOutOfBounds(t *testing.T) {
	img := NewHorizontalLSB(image.Rect(0, 0, 4, 4))
	img.Fill(image1bit.Off)

	img.SetBit(-1, 0, image1bit.On)
	img.SetBit(0, -1, image1bit.On)
	img.SetBit(4, 0, image1bit.On)
	img.SetBit(0, 4, image1bit.On)

	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X after out-of-bounds writes, want 0", i, b)
		}
	}
	if img.BitAt(-1, 0) != image1bit.Off {
		t.Error("BitAt(-1, 0) should be Off")
	}
}

func TestHorizontalLSBOffsetRect(t *testing.T) {
	img := NewHorizontalLSB(image.Rect(100, 50, 108, 52))

	img.SetBit(101, 50, image1bit.On)
	if img.BitAt(101, 50) != image1bit.On {
		t.Error("SetBit(101, 50, On) then BitAt(101, 50) should be On")
	}
	if img.Pix[0] != 0x02 {
		t.Errorf("Pix[0] = 0x%02X, want 0x02", img.Pix[0])
	}
}

func TestHorizontalLSBFillAndRow(t *testing.T) {
	img := NewHorizontalLSB(image.Rect(0, 0, 10, 3))
	img.Fill(image1bit.On)

	row := img.Row(1)
	if len(row) != img.Stride {
		t.Fatalf("len(Row(1)) = %d, want %d", len(row), img.Stride)
	}
	for i, b := range row {
		if b != 0xFF {
			t.Errorf("Row(1)[%d] = 0x%02X, want 0xFF", i, b)
		}
	}
	if img.Row(3) != nil {
		t.Error("Row(3) should be nil for a 3 row image")
	}
}

func TestHorizontalLSBDisplayer(t *testing.T) {
	img := NewHorizontalLSB(image.Rect(0, 0, 40, 16))

	w, h := img.Size()
	if w != 40 || h != 16 {
		t.Errorf("Size() = (%d, %d), want (40, 16)", w, h)
	}

	img.SetPixel(5, 6, RGBA(image1bit.On))
	if img.BitAt(5, 6) != image1bit.On {
		t.Error("SetPixel(5, 6, white) should turn the pixel On")
	}
	if err := img.Display(); err != nil {
		t.Errorf("Display() = %v, want nil", err)
	}

	img.Fill(image1bit.Off)
	tinyfont.WriteLine(img, &proggy.TinySZ8pt7b, 0, 12, "88", RGBA(image1bit.On))
	lit := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 40; x++ {
			if img.BitAt(x, y) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("tinyfont.WriteLine drew no pixels")
	}
}
