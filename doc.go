// Package tftspi controls SPI TFT LCD and OLED modules built around the
// common MIPI DCS and ILI932x-style controllers.
//
// One driver covers the ILI9325, ILI9328, ILI9341, HX8357D, HX8347G/I,
// ILI9486, ILI9488, ILI9225, ST7735S, ST7796S, SSD1283A and the SH1106
// monochrome OLED. This driver implements the display.Drawer interface from
// periph.io.
//
// # Supported Modules
//
//	Model          Chip    Size
//	ILI9325        0x9325  240×320
//	ILI9328        0x9328  240×320
//	ILI9341        0x9341  240×320
//	HX8357D        0x9090  320×480
//	HX8347G        0x7575  240×320
//	HX8347I        0x9595  240×320
//	ILI9486        0x9486  320×480
//	ST7735S        0x7735  128×160
//	ST7735S128     0x7735  128×128
//	SSD1283A       0x1283  130×130
//	SH1106         0x1106  128×64 (monochrome)
//	ILI9488        0x9488  320×480
//	ILI9488RGB666  0x9488  320×480 (18-bit pixels)
//	ILI9225        0x9225  176×220
//	ST7796S        0x7796  320×480
//
// With Model set to Auto the controller is identified during Init; see
// Dev.Identify. Unknown controllers still accept raw pixel pushes but
// windowing, rotation and scrolling do nothing.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDI/MOSI    → SPI Data (MOSI)
//	SDO/MISO    → SPI Data (MISO), optional, for Identify and read back
//	DC/RS       → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RST         → Optional: GPIO for hardware reset
//	LED         → Optional: GPIO for the backlight
//
// Boards without a hardware SPI port can use bus.NewBitBang on plain GPIO
// pins, and the bus package also adapts a tinygo drivers.SPI.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//		"image/color"
//		"image/draw"
//
//		"github.com/flavioheleno/tftspi"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		p, _ := spireg.Open("")
//		defer p.Close()
//
//		dev, _ := tftspi.NewSPI(p, gpioreg.ByName("GPIO24"), &tftspi.Opts{
//			Model: tftspi.ILI9341,
//			RST:   gpioreg.ByName("GPIO25"),
//		})
//		defer dev.Halt()
//
//		dev.FillScreen(tftspi.ColorTo565(0, 0, 255))
//
//		img := image.NewRGBA(image.Rect(0, 0, 64, 64))
//		draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{255, 0, 0, 255}}, image.Point{}, draw.Src)
//		dev.Draw(img.Bounds(), img, image.Point{})
//	}
//
// # Drawing
//
// Colors are RGB565. Controllers that only accept 18-bit pixels get them
// expanded on the wire.
//
// DrawPixel, FillRect and FillScreen address the panel directly. Draw keeps
// a frame buffer and sends only the bounding box of the pixels that changed
// since the previous call. Write sends a whole frame of big-endian RGB565.
//
// Images can also be streamed into a window without a frame buffer:
//
//	dev.SetWindow(0, 0, 99, 99)
//	dev.PushRaw(tftspi.Words(pixels), 100*100, true)
//
// PushRunLength and PushIndexed decode two compact image formats on the
// fly; see the Source implementations Words, Bytes and Reader.
//
// # Rotation and Scrolling
//
// SetRotation turns the logical surface in 90° steps; Width and Height
// follow. VerticalScroll moves a band of rows in hardware.
//
// # Monochrome OLED
//
// The SH1106 has no addressing window. Pixels land in a shadow buffer,
// exposed by MonoBuffer, and reach the panel on Flush. Draw and Write flush
// on their own. The buffer does not rotate: SetRotation is recorded, but
// Bounds, Width and Height keep the native 128x64.
package tftspi
