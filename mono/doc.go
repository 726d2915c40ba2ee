// Package mono provides a 1-bit image format laid out the way Sharp memory LCDs
// expect their line data.
//
// Pixels are stored row by row, eight pixels per byte, least significant bit
// first. Every row is padded to a 16-bit boundary because the panel transfers
// whole 16-bit words per gate line.
//
// Memory layout example for a 10-pixel row (stride 2):
//
//	Pixels: 0 1 2 3 4 5 6 7 | 8 9 (padding...)
//	Bits:   b0 ........ b7  | b0 b1
//	Bytes:  Pix[0]          | Pix[1]
//
// A set bit is image1bit.On (white, reflective); a clear bit is image1bit.Off.
//
// This package provides:
//
// - HorizontalLSB: an image.Image / draw.Image that also satisfies
// tinygo.org/x/drivers.Displayer, so tinyfont can write glyphs into it
//
// - Line, Polyline, FillRect, StrokeRect and Arc drawing primitives
//
// - Rotate, SourcePoint and SourceRect: quarter-turn transforms for square tiles
//
// Example usage:
//
//	img := mono.NewHorizontalLSB(image.Rect(0, 0, 68, 68))
//	img.Fill(image1bit.On)
//	mono.Line(img, image.Pt(0, 0), image.Pt(67, 67), image1bit.Off)
//
//	out := mono.NewHorizontalLSB(img.Bounds())
//	mono.Rotate(out, img, drivers.Rotation90)
package mono
