// Package image565 provides the 16-bit RGB565 image format used by TFT display
// controllers.
//
// Each pixel occupies two bytes stored big-endian, which is the order the
// controllers expect on the wire: red in the top 5 bits, green in the middle
// 6 bits and blue in the low 5 bits.
//
// Memory layout example for a 2-pixel row:
//
//	Pixels: 0       1
//	Colors: 0xF800  0x07E0   (pure red, pure green)
//	Bytes:  F8 00   07 E0
//
// This package provides:
//
// - RGB565: A color type holding one packed 16-bit sample
// - Model: A color model for converting standard Go colors to RGB565
// - Image: An image.Image / draw.Image whose Pix can be streamed to a panel
//
// Example usage:
//
//	img := image565.New(image.Rect(0, 0, 240, 320))
//	img.SetRGB565(10, 20, image565.Pack(0xFF, 0x80, 0x00))
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package image565
