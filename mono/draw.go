package mono

import (
	"image"
	"math"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Line draws a one pixel wide line from p0 to p1, both ends included.
// Pixels outside the image are skipped.
func Line(img *HorizontalLSB, p0, p1 image.Point, c image1bit.Bit) {
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		img.SetBit(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline joins consecutive points with lines. width > 1 thickens the stroke
// downwards by repeating it on the following rows.
func Polyline(img *HorizontalLSB, pts []image.Point, width int, c image1bit.Bit) {
	if width < 1 {
		width = 1
	}
	for i := 1; i < len(pts); i++ {
		for w := 0; w < width; w++ {
			off := image.Pt(0, w)
			Line(img, pts[i-1].Add(off), pts[i].Add(off), c)
		}
	}
}

// FillRect fills r, clipped to the image.
func FillRect(img *HorizontalLSB, r image.Rectangle, c image1bit.Bit) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetBit(x, y, c)
		}
	}
}

// StrokeRect draws the one pixel outline of r.
func StrokeRect(img *HorizontalLSB, r image.Rectangle, c image1bit.Bit) {
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	Line(img, image.Pt(x0, y0), image.Pt(x1, y0), c)
	Line(img, image.Pt(x0, y1), image.Pt(x1, y1), c)
	Line(img, image.Pt(x0, y0), image.Pt(x0, y1), c)
	Line(img, image.Pt(x1, y0), image.Pt(x1, y1), c)
}

// Arc plots the circle of radius r around center between the angles from and
// to, in degrees. Angles grow clockwise because y grows downwards.
func Arc(img *HorizontalLSB, center image.Point, r int, from, to float64, c image1bit.Bit) {
	if to < from {
		from, to = to, from
	}
	// One degree per step leaves gaps past r≈57; scale the step with the radius.
	step := 1.0
	if r > 0 {
		step = math.Min(1.0, 45.0/float64(r))
	}
	for a := from; a <= to; a += step {
		p := Polar(center, float64(r), a)
		img.SetBit(p.X, p.Y, c)
	}
	end := Polar(center, float64(r), to)
	img.SetBit(end.X, end.Y, c)
}

// Polar returns the point at distance r from center along angle deg.
func Polar(center image.Point, r, deg float64) image.Point {
	rad := deg * math.Pi / 180
	return image.Pt(
		center.X+int(math.Round(r*math.Cos(rad))),
		center.Y+int(math.Round(r*math.Sin(rad))),
	)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
