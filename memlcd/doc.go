// Package memlcd controls a Sharp memory LCD via SPI.
//
// Memory LCDs keep one bit per pixel in the panel itself and only need to be
// sent the lines that change. The LS011B7DH03 used on the nice!view is
// 160×68 pixels. This driver implements the display.Drawer interface from
// periph.io.
//
// # Display Characteristics
//
// - 1 bit per pixel; a set bit is white (reflective)
// - Line addressed writes, any subset of lines per transfer
// - VCOM polarity must be inverted at least once per second
// - Chip select is active high
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VIN         → 3.3V
//	SCLK        → SPI Clock (SCLK)
//	MOSI        → SPI Data (MOSI)
//	CS          → GPIO (any available pin)
//	DISP        → Optional: GPIO for display enable
//
// The panel's chip select is active high, so the SPI port's own CS line is not
// used; pass a regular GPIO instead.
//
// # Basic Usage
//
//	host.Init()
//	port, _ := spireg.Open("")
//	cs := gpioreg.ByName("GPIO8")
//	dev, _ := memlcd.NewSPI(port, cs, nil)
//	defer dev.Halt()
//
//	img := mono.NewHorizontalLSB(dev.Bounds())
//	img.Fill(image1bit.On)
//	mono.StrokeRect(img, image.Rect(10, 10, 50, 40), image1bit.Off)
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
//	for range time.Tick(500 * time.Millisecond) {
//		dev.Hold()
//	}
//
// # Drawing Modes
//
// Write sends a full frame of raw mono.HorizontalLSB lines. Draw composes the
// source into a frame buffer and sends only the lines that differ from what
// the panel shows; set Opts.DisableDiff to always send every line.
//
// # Datasheet
//
// https://www.sharpsde.com/fileadmin/products/Displays/Specs/LS011B7DH03_23Jan25_Spec_LD-2023X06.pdf
package memlcd
